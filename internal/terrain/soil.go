package terrain

import (
	"github.com/marc-cr1810/deepbound/internal/noise"
	"github.com/marc-cr1810/deepbound/internal/world"
)

// buildSoil selects the surface layers for the column. Layers apply in
// table order; climate-gated layers only where the column's dithered
// climate admits them, so layer edges wander instead of tracking the
// coarse climate cells. Thickness is hashed per column and rule within
// the min..max band.
func (g *Generator) buildSoil(col *column, temp, rain float64) {
	if col.surfaceY < 0 {
		return
	}
	for i := range g.tables.BlockLayers {
		layer := &g.tables.BlockLayers[i]
		if !g.layerOK[i] {
			continue
		}
		if layer.UseClimate && !layer.Climate.Contains(temp, rain) {
			continue
		}
		thickness := layer.MinThickness
		if span := layer.MaxThickness - layer.MinThickness; span > 0 {
			thickness += int(noise.Hash(g.field.SubSeed(noise.Soil), int64(col.x), int64(i)) % uint64(span+1))
		}
		col.soil = append(col.soil, soilSpan{tile: g.layerTiles[i], thickness: thickness})
	}
}

// stampSoil writes the column's surface layers into one chunk. The walk
// starts at the surface and moves down through the layer stack, stopping
// at the first non-solid cell so carved overhangs keep bare rock
// ceilings. Cells outside the chunk's y range are skipped but still
// advance the walk, so a stack straddling a chunk seam lands
// consistently in both chunks.
func stampSoil(ch *world.Chunk, col *column, lx, baseY int) {
	if col.surfaceY < 0 || len(col.soil) == 0 {
		return
	}
	y := col.surfaceY
	for _, span := range col.soil {
		for n := 0; n < span.thickness; n++ {
			if y < 0 || !col.solidAt(y) {
				return
			}
			if ly := y - baseY; ly >= 0 && ly < world.ChunkSize {
				ch.SetTile(lx, ly, span.tile)
			}
			y--
		}
	}
}
