package terrain

import (
	"github.com/marc-cr1810/deepbound/internal/content"
	"github.com/marc-cr1810/deepbound/internal/noise"
)

// applyOres swaps a rock tile for an ore wherever a deposit's cell noise
// exceeds its threshold. Deposits bind to a host rock group; the first
// matching deposit in table order wins. Cells without a rock group, such
// as the deep-rock default under an empty stratum table, never carry ore.
func (g *Generator) applyOres(tile content.TileID, group string, x, y int) content.TileID {
	if group == "" {
		return tile
	}
	for i := range g.tables.Ores {
		ore := &g.tables.Ores[i]
		if !g.oreOK[i] || ore.HostGroup != group {
			continue
		}
		if g.field.Cellular(noise.Ore, i, float64(x), float64(y), ore.Frequency) > ore.Threshold {
			return g.oreTiles[i]
		}
	}
	return tile
}
