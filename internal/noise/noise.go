// Package noise provides the seeded noise fields world generation samples
// from. Every sampler is a pure function of its inputs and the world seed:
// two Fields built from the same seed return identical values, which the
// rest of the generator relies on for reproducibility.
package noise

import (
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Purpose selects an independent channel of the world seed. Samplers with
// different purposes never correlate even though they share one seed.
type Purpose int

const (
	Terrain Purpose = iota
	TerrainWarp
	LandformPick
	ProvinceWarp
	ProvincePick
	Temperature
	TempDither
	Rainfall
	RainDither
	Upheaval
	Strata
	Shimmer
	Soil
	Ore
	purposeCount
)

const (
	// MaxOctaves bounds the per-purpose simplex banks. Rule tables are
	// validated against it before they reach a Field.
	MaxOctaves = 10

	// BaseFrequency is the first octave frequency used when a sampler is
	// given no explicit schedule. Each following octave doubles it.
	BaseFrequency = 0.0005

	purposeStride = 1_000_003
	octaveStride  = 1000

	perlinAlpha = 2.0
	perlinBeta  = 2.0
	perlinOrder = 3
	perlinGain  = 1.5
	perlinRow   = 0.37
)

// Field owns every noise source derived from one world seed. Construction
// is the only expensive step; sampling allocates nothing and is safe for
// concurrent use.
type Field struct {
	seed    int64
	banks   [purposeCount][MaxOctaves]opensimplex.Noise
	perlins [purposeCount]*perlin.Perlin
}

// New builds the full sampler set for seed.
func New(seed int64) *Field {
	f := &Field{seed: seed}
	for p := Purpose(0); p < purposeCount; p++ {
		sub := f.SubSeed(p)
		for o := 0; o < MaxOctaves; o++ {
			f.banks[p][o] = opensimplex.New(sub + int64(o)*octaveStride)
		}
		f.perlins[p] = perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOrder, sub)
	}
	return f
}

// Seed returns the world seed the field was built from.
func (f *Field) Seed() int64 {
	return f.seed
}

// SubSeed returns the derived seed owned by one purpose channel.
func (f *Field) SubSeed(p Purpose) int64 {
	return f.seed + int64(p)*purposeStride
}

// Fractal sums octaves of simplex noise into a value in [-1, 1].
func (f *Field) Fractal(p Purpose, x, y, frequency float64, octaves int, gain, lacunarity float64) float64 {
	if octaves > MaxOctaves {
		octaves = MaxOctaves
	}
	amplitude := 1.0
	sum := 0.0
	maxAmplitude := 0.0
	for i := 0; i < octaves; i++ {
		sum += f.banks[p][i].Eval2(x*frequency, y*frequency) * amplitude
		maxAmplitude += amplitude
		amplitude *= gain
		frequency *= lacunarity
	}
	if maxAmplitude == 0 {
		return 0
	}
	return sum / maxAmplitude
}

// Ridged sums octaves of folded simplex noise into a value in [-1, 1].
// Folding each octave about zero turns its sign crossings into sharp
// creases, so high values trace connected ridge lines instead of the
// round maxima Fractal produces.
func (f *Field) Ridged(p Purpose, x, y, frequency float64, octaves int, gain, lacunarity float64) float64 {
	if octaves > MaxOctaves {
		octaves = MaxOctaves
	}
	amplitude := 1.0
	sum := 0.0
	maxAmplitude := 0.0
	for i := 0; i < octaves; i++ {
		fold := 1 - math.Abs(f.banks[p][i].Eval2(x*frequency, y*frequency))
		sum += (fold*2 - 1) * amplitude
		maxAmplitude += amplitude
		amplitude *= gain
		frequency *= lacunarity
	}
	if maxAmplitude == 0 {
		return 0
	}
	return sum / maxAmplitude
}

// Smooth samples the slow-varying perlin channel for p, scaled toward the
// unit interval. Suited to fields such as climate that should drift over
// hundreds of columns.
func (f *Field) Smooth(p Purpose, x float64) float64 {
	return clampUnit(f.perlins[p].Noise2D(x, perlinRow) * perlinGain)
}

// WeightedOctaves evaluates the thresholded octave sum
//
//	sum over i of max(0, ((n_i+1)/2 * amps[i]) - thresholds[i])
//
// where n_i is simplex noise in [-1, 1]. Octave i samples at freqs[i] when
// the schedule provides one; missing entries double the previous frequency
// starting from BaseFrequency. Zero-amplitude octaves contribute nothing.
// The result is never negative.
func (f *Field) WeightedOctaves(p Purpose, x, y float64, amps, thresholds, freqs []float64) float64 {
	total := 0.0
	freq := BaseFrequency
	n := len(amps)
	if n > MaxOctaves {
		n = MaxOctaves
	}
	for i := 0; i < n; i++ {
		if i < len(freqs) && freqs[i] > 0 {
			freq = freqs[i]
		} else if i > 0 {
			freq *= 2
		}
		if amps[i] == 0 {
			continue
		}
		th := 0.0
		if i < len(thresholds) {
			th = thresholds[i]
		}
		sample := f.banks[p][i].Eval2(x*freq, y*freq)
		if c := (sample+1)*0.5*amps[i] - th; c > 0 {
			total += c
		}
	}
	return total
}

// WeightedCeiling returns the largest value WeightedOctaves can reach for
// the given amplitude and threshold vectors.
func WeightedCeiling(amps, thresholds []float64) float64 {
	ceiling := 0.0
	n := len(amps)
	if n > MaxOctaves {
		n = MaxOctaves
	}
	for i := 0; i < n; i++ {
		th := 0.0
		if i < len(thresholds) {
			th = thresholds[i]
		}
		if c := amps[i] - th; c > 0 {
			ceiling += c
		}
	}
	return ceiling
}

func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
