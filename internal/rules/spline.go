package rules

import "errors"

// SplineKey is one control point of a height curve. At is the normalized
// world altitude in [0, 1]; Value is the fill offset the curve yields there.
type SplineKey struct {
	At    float64 `json:"at"`
	Value float64 `json:"value"`
}

// Spline is a piecewise-linear curve over normalized altitude. Keys must be
// sorted by At. Outside the keyed range the curve clamps to its end values.
type Spline []SplineKey

// Eval returns the curve value at t. An empty spline evaluates to 0.5 so a
// landform without a curve still yields mid-height terrain.
func (s Spline) Eval(t float64) float64 {
	if len(s) == 0 {
		return 0.5
	}
	if t <= s[0].At {
		return s[0].Value
	}
	last := s[len(s)-1]
	if t >= last.At {
		return last.Value
	}
	for i := 1; i < len(s); i++ {
		if t <= s[i].At {
			span := s[i].At - s[i-1].At
			if span <= 0 {
				return s[i].Value
			}
			f := (t - s[i-1].At) / span
			return s[i-1].Value + (s[i].Value-s[i-1].Value)*f
		}
	}
	return last.Value
}

// Bounds returns the minimum and maximum value the curve can yield. For an
// empty spline both bounds are 0.5. Linear interpolation never leaves the
// range of the key values, so scanning keys suffices.
func (s Spline) Bounds() (min, max float64) {
	if len(s) == 0 {
		return 0.5, 0.5
	}
	min, max = s[0].Value, s[0].Value
	for _, k := range s[1:] {
		if k.Value < min {
			min = k.Value
		}
		if k.Value > max {
			max = k.Value
		}
	}
	return min, max
}

func (s Spline) validate() error {
	for i := 1; i < len(s); i++ {
		if s[i].At < s[i-1].At {
			return errors.New("keys must be sorted by at")
		}
	}
	return nil
}
