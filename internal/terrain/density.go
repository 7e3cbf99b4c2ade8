package terrain

import (
	"github.com/marc-cr1810/deepbound/internal/noise"
	"github.com/marc-cr1810/deepbound/internal/rules"
)

const (
	densityScale = 4.0
	detailYScale = 0.5

	upheavalFreq  = 1.0 / 4200.0
	upheavalGate  = 0.4
	upheavalFloor = 0.3
	riftScale     = 3.0
	plateauScale  = 1.5
)

// weightedCurve pairs a landform height curve with its blend weight.
type weightedCurve struct {
	weight float64
	curve  rules.Spline
}

// columnProfile carries everything density evaluation needs for one
// column: blended octave vectors, the weighted height curves, the
// column's upheaval sample and precomputed evaluation bounds.
type columnProfile struct {
	amps       []float64
	thresholds []float64
	curves     []weightedCurve

	upheaval      float64
	detailCeiling float64
	minOffset     float64
	maxOffset     float64
}

// prepareColumn blends the landform octave vectors and height curves for
// column x. Vectors blend elementwise; a vector shorter than the blend's
// longest contributes zero beyond its length.
func (g *Generator) prepareColumn(x int, blend landformBlend) *columnProfile {
	p := &columnProfile{}

	maxLen := 0
	for _, e := range blend {
		if n := len(e.landform.OctaveAmplitudes); n > maxLen {
			maxLen = n
		}
		if n := len(e.landform.OctaveThresholds); n > maxLen {
			maxLen = n
		}
	}
	p.amps = make([]float64, maxLen)
	p.thresholds = make([]float64, maxLen)
	p.curves = make([]weightedCurve, 0, len(blend))
	for _, e := range blend {
		for i := 0; i < maxLen; i++ {
			if i < len(e.landform.OctaveAmplitudes) {
				p.amps[i] += e.landform.OctaveAmplitudes[i] * e.weight
			}
			if i < len(e.landform.OctaveThresholds) {
				p.thresholds[i] += e.landform.OctaveThresholds[i] * e.weight
			}
		}
		p.curves = append(p.curves, weightedCurve{weight: e.weight, curve: e.landform.HeightCurve})

		lo, hi := e.landform.HeightCurve.Bounds()
		p.minOffset += lo * e.weight
		p.maxOffset += hi * e.weight
	}

	p.upheaval = g.field.Smooth(noise.Upheaval, float64(x)*upheavalFreq)
	p.detailCeiling = noise.WeightedCeiling(p.amps, p.thresholds)
	return p
}

// densityAt evaluates the signed density of cell (x, y). Positive means
// solid. The base term compares the blended height offset against the
// cell's normalized altitude, upheaval carves rifts or raises plateaus,
// and weighted detail noise roughens the boundary. Detail sampling is
// skipped once the base terms alone decide the sign: the detail sampler
// never yields more than detailCeiling and never goes negative.
func (g *Generator) densityAt(p *columnProfile, x float64, y int) float64 {
	normY := float64(y) / float64(g.worldHeight)

	offset := 0.0
	for _, wc := range p.curves {
		offset += wc.curve.Eval(normY) * wc.weight
	}

	d := (offset-normY)*densityScale + upheavalTerm(p.upheaval, normY)
	if d > p.detailCeiling || d < -p.detailCeiling {
		return d
	}
	return d + g.field.WeightedOctaves(noise.Terrain, x, float64(y)*detailYScale, p.amps, p.thresholds, nil)
}

// upheavalTerm maps the column's upheaval sample into a density
// contribution. Samples inside the dead band do nothing. Outside it the
// effect ramps linearly with the overshoot and is gated to the upper part
// of the world, so rifts carve valleys into the surface instead of
// hollowing out the deep rock.
func upheavalTerm(u, normY float64) float64 {
	if u >= -upheavalGate && u <= upheavalGate {
		return 0
	}
	gate := clamp01((normY - upheavalFloor) / (1 - upheavalFloor))
	if u < 0 {
		return -((-u - upheavalGate) / (1 - upheavalGate)) * gate * riftScale
	}
	return ((u - upheavalGate) / (1 - upheavalGate)) * gate * plateauScale
}

// evalBounds returns the y range outside which density needs no
// evaluation: every cell at or below floorY is solid and every cell
// above ceilY is air regardless of what the noise terms contribute.
func (g *Generator) evalBounds(p *columnProfile) (floorY, ceilY int) {
	h := float64(g.worldHeight)

	top := p.maxOffset + (plateauScale+p.detailCeiling)/densityScale
	ceilY = int(top*h) + 1
	if ceilY > g.worldHeight-1 {
		ceilY = g.worldHeight - 1
	}
	if ceilY < -1 {
		ceilY = -1
	}

	bottom := p.minOffset
	if upheavalFloor < bottom {
		bottom = upheavalFloor
	}
	floorY = int(bottom*h) - 2
	if floorY < -1 {
		floorY = -1
	}
	if floorY > ceilY {
		floorY = ceilY
	}
	return floorY, ceilY
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
