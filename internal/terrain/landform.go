package terrain

import (
	"math"

	"github.com/marc-cr1810/deepbound/internal/noise"
	"github.com/marc-cr1810/deepbound/internal/rules"
)

const (
	landformCellSize = 256
	landformWarpAmp  = 80.0
	landformWarpFreq = 1.0 / 600.0
	warpOctaves      = 3
)

// landformEntry weights one landform's contribution to a column.
type landformEntry struct {
	landform *rules.Landform
	weight   float64
}

// landformBlend is the set of landforms shaping one column. Weights are
// positive and sum to 1; a column deep inside a cell has a single entry
// with weight 1.
type landformBlend []landformEntry

// primary returns the entry carrying the greatest weight. Ties keep the
// earlier entry.
func (b landformBlend) primary() *rules.Landform {
	best := b[0]
	for _, e := range b[1:] {
		if e.weight > best.weight {
			best = e
		}
	}
	return best.landform
}

// landformAt resolves the landforms governing column x. Columns map onto
// a coarse cell grid warped by low-frequency noise so cell seams wander
// instead of repeating every cell width; the two nearest cell corners
// pick a landform each and vote with smoothstep weights.
func (g *Generator) landformAt(x int) landformBlend {
	fx := float64(x)
	warped := fx + g.field.Fractal(noise.TerrainWarp, fx, 0, landformWarpFreq, warpOctaves, 0.5, 2)*landformWarpAmp
	cell := math.Floor(warped / landformCellSize)
	frac := warped/landformCellSize - cell

	lo := g.pickLandform(int64(cell))
	hi := g.pickLandform(int64(cell) + 1)
	t := smooth(frac)
	if lo == hi || t <= 0 {
		return landformBlend{{landform: lo, weight: 1}}
	}
	if t >= 1 {
		return landformBlend{{landform: hi, weight: 1}}
	}
	return landformBlend{
		{landform: lo, weight: 1 - t},
		{landform: hi, weight: t},
	}
}

// pickLandform draws the landform for one grid corner. The draw is a
// weighted pick over the rules whose climate admits the corner, keyed by
// a positional hash so the same corner always draws the same landform.
// When climate gates every rule out the first table entry stands in; an
// empty table yields the built-in default so generation always has a
// height curve to work from.
func (g *Generator) pickLandform(cell int64) *rules.Landform {
	if len(g.tables.Landforms) == 0 {
		return &g.defaultLandform
	}
	cornerX := int(cell) * landformCellSize
	temp, rain := g.climate(cornerX)

	total := 0.0
	for i := range g.tables.Landforms {
		lf := &g.tables.Landforms[i]
		if lf.UseClimate && !lf.Climate.Contains(temp, rain) {
			continue
		}
		total += lf.Weight
	}
	if total <= 0 {
		return &g.tables.Landforms[0]
	}

	r := noise.Hash01(g.field.SubSeed(noise.LandformPick), cell) * total
	var candidate *rules.Landform
	for i := range g.tables.Landforms {
		lf := &g.tables.Landforms[i]
		if lf.UseClimate && !lf.Climate.Contains(temp, rain) {
			continue
		}
		candidate = lf
		if r < lf.Weight {
			break
		}
		r -= lf.Weight
	}
	return candidate
}

func smooth(t float64) float64 {
	return t * t * (3 - 2*t)
}
