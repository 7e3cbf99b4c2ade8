package terrain

import (
	"math"

	"github.com/marc-cr1810/deepbound/internal/noise"
	"github.com/marc-cr1810/deepbound/internal/rules"
)

const (
	provinceCellSize = 512
	provinceWarpAmp  = 120.0
	provinceWarpFreq = 1.0 / 900.0
)

// provinceBudgets resolves the per-rock-group thickness budgets for
// column x. Provinces live on their own warped cell grid, coarser than
// landforms; the budgets of the two nearest corners blend linearly so
// caps tighten gradually across province seams. A nil return means no
// province table is loaded and every group is unconstrained.
func (g *Generator) provinceBudgets(x int) map[string]float64 {
	if len(g.tables.Provinces) == 0 {
		return nil
	}
	fx := float64(x)
	warped := fx + g.field.Fractal(noise.ProvinceWarp, fx, 0, provinceWarpFreq, warpOctaves, 0.5, 2)*provinceWarpAmp
	cell := math.Floor(warped / provinceCellSize)
	frac := warped/provinceCellSize - cell

	lo := g.pickProvince(int64(cell))
	hi := g.pickProvince(int64(cell) + 1)
	t := smooth(frac)

	budgets := make(map[string]float64, len(g.strataGroups))
	for _, group := range g.strataGroups {
		budgets[group] = g.groupBudget(lo, group)*(1-t) + g.groupBudget(hi, group)*t
	}
	return budgets
}

// groupBudget reads a province's cap for one rock group. A province
// naming no budgets leaves every group unconstrained; once it names any,
// its budget map is an allow list and absent groups get nothing.
func (g *Generator) groupBudget(p *rules.Province, group string) float64 {
	if len(p.Budgets) == 0 {
		return float64(g.worldHeight)
	}
	return p.Budgets[group]
}

// pickProvince draws the province for one grid corner by positional hash,
// weighted over the whole table.
func (g *Generator) pickProvince(cell int64) *rules.Province {
	total := 0.0
	for i := range g.tables.Provinces {
		total += g.tables.Provinces[i].Weight
	}
	r := noise.Hash01(g.field.SubSeed(noise.ProvincePick), cell) * total

	last := &g.tables.Provinces[0]
	for i := range g.tables.Provinces {
		p := &g.tables.Provinces[i]
		last = p
		if r < p.Weight {
			return p
		}
		r -= p.Weight
	}
	return last
}
