package terrain

import "github.com/marc-cr1810/deepbound/internal/content"

// column is the cached per-x generation product: climate, the solid mask,
// surface height, rock spans and surface layers. Chunk assembly reads
// columns and never mutates them, so one column can serve every chunk row
// that crosses it.
type column struct {
	x    int
	temp float64
	rain float64

	// surfaceY is the highest solid cell, -1 when the column holds none.
	surfaceY int

	// solid is a bitset over world y, one bit per cell.
	solid []uint64

	strata        []stratumSpan
	fallback      content.TileID
	fallbackGroup string

	soil []soilSpan
}

// soilSpan is one surface layer: a tile repeated for thickness cells.
type soilSpan struct {
	tile      content.TileID
	thickness int
}

func (c *column) solidAt(y int) bool {
	return c.solid[y>>6]&(1<<(uint(y)&63)) != 0
}

func (c *column) setSolid(y int) {
	c.solid[y>>6] |= 1 << (uint(y) & 63)
}
