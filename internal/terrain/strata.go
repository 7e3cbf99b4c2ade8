package terrain

import (
	"math"

	"github.com/marc-cr1810/deepbound/internal/content"
	"github.com/marc-cr1810/deepbound/internal/noise"
	"github.com/marc-cr1810/deepbound/internal/rules"
)

const (
	strataBaseCells  = 4.0
	strataScaleCells = 12.0
	minStratumCells  = 2
	strataRowOffset  = 777.0

	shimmerAmp  = 2.0
	shimmerFreq = 0.05
)

// stratumSpan is one placed run of rock, bottom..top inclusive.
type stratumSpan struct {
	bottom int
	top    int
	tile   content.TileID
	group  string
}

// buildStrata allocates rock spans for the column. Rules apply in table
// order: top-down rules stack downward from the surface under a falling
// cursor, bottom-up rules stack upward from the floor over a rising one.
// Each span spends its cell count from its rock group's budget, and a
// rule whose remaining budget cannot fit a minimum span is skipped
// without moving either cursor. The last bottom-up rule that places
// becomes the fallback rock for cells no span covers.
func (g *Generator) buildStrata(col *column, budgets map[string]float64) {
	if len(g.tables.Strata) == 0 || col.surfaceY < 0 {
		return
	}
	used := make(map[string]float64, len(g.strataGroups))
	upper := col.surfaceY
	lower := 0
	fx := float64(col.x)

	for i := range g.tables.Strata {
		st := &g.tables.Strata[i]

		limit := float64(g.worldHeight)
		if budgets != nil {
			if b, ok := budgets[st.Group]; ok {
				limit = b
			}
		}
		remaining := limit - used[st.Group]
		if remaining < minStratumCells {
			continue
		}

		raw := g.field.WeightedOctaves(noise.Strata, fx, float64(i)*strataRowOffset,
			st.Amplitudes, st.Thresholds, st.Frequencies)
		thickness := int(math.Round(strataBaseCells + raw*strataScaleCells))
		if budget := int(remaining); thickness > budget {
			thickness = budget
		}
		if thickness < minStratumCells {
			continue
		}

		var bottom, top int
		if st.Direction == rules.TopDown {
			top = upper
			bottom = top - thickness + 1
			if bottom < 0 {
				bottom = 0
			}
		} else {
			bottom = lower
			top = bottom + thickness - 1
			if top > g.worldHeight-1 {
				top = g.worldHeight - 1
			}
		}
		if top < bottom || top < 0 || bottom > g.worldHeight-1 || top-bottom+1 < minStratumCells {
			continue
		}

		col.strata = append(col.strata, stratumSpan{
			bottom: bottom,
			top:    top,
			tile:   g.strataTiles[i],
			group:  st.Group,
		})
		used[st.Group] += float64(top - bottom + 1)

		if st.Direction == rules.TopDown {
			upper = bottom - 1
		} else {
			lower = top + 1
			col.fallback = g.strataTiles[i]
			col.fallbackGroup = st.Group
		}
	}
}

// rockAt resolves the rock at cell (col.x, y). The span lookup jitters y
// with a little noise so strata boundaries waver instead of running
// ruler-straight; spans win in rule order and cells outside every span
// take the fallback rock.
func (g *Generator) rockAt(col *column, y int) (content.TileID, string) {
	if len(col.strata) == 0 {
		return col.fallback, col.fallbackGroup
	}
	n := g.field.Fractal(noise.Shimmer, float64(col.x), float64(y), shimmerFreq, 1, 0.5, 2)
	yy := y + int(math.Round(n*shimmerAmp))
	if yy < 0 {
		yy = 0
	}
	if yy > g.worldHeight-1 {
		yy = g.worldHeight - 1
	}
	for i := range col.strata {
		s := &col.strata[i]
		if yy >= s.bottom && yy <= s.top {
			return s.tile, s.group
		}
	}
	return col.fallback, col.fallbackGroup
}
