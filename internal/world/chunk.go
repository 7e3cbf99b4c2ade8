// Package world holds the chunk grid primitives: chunk storage, the
// generated-chunk store and the side-view preview renderer.
package world

import "github.com/marc-cr1810/deepbound/internal/content"

// ChunkSize is the edge length of a chunk in cells. Chunks are square;
// the world height must be a multiple of this.
const ChunkSize = 32

// ChunkCoord addresses a chunk on the chunk grid. X runs horizontally and
// may be negative; Y counts chunk rows upward from the world floor.
type ChunkCoord struct {
	X int
	Y int
}

// Chunk is one generated square of world. Tiles are stored row-major from
// the chunk's lower-left corner. Temp and Rain carry the per-column
// climate sampled during generation, indexed by local x.
type Chunk struct {
	Coord ChunkCoord
	tiles [ChunkSize * ChunkSize]content.TileID

	Temp [ChunkSize]float64
	Rain [ChunkSize]float64
}

// NewChunk returns an empty chunk at the coordinate. All tiles start as
// air.
func NewChunk(coord ChunkCoord) *Chunk {
	return &Chunk{Coord: coord}
}

// Tile returns the tile at local coordinates. Out-of-range coordinates
// read as air.
func (c *Chunk) Tile(lx, ly int) content.TileID {
	if lx < 0 || lx >= ChunkSize || ly < 0 || ly >= ChunkSize {
		return content.Air
	}
	return c.tiles[ly*ChunkSize+lx]
}

// SetTile writes the tile at local coordinates. Out-of-range coordinates
// are ignored.
func (c *Chunk) SetTile(lx, ly int, id content.TileID) {
	if lx < 0 || lx >= ChunkSize || ly < 0 || ly >= ChunkSize {
		return
	}
	c.tiles[ly*ChunkSize+lx] = id
}

// Origin returns the world coordinates of the chunk's lower-left cell.
func (c *Chunk) Origin() (x, y int) {
	return c.Coord.X * ChunkSize, c.Coord.Y * ChunkSize
}

// Equal reports whether two chunks hold identical coordinates, tiles and
// climate.
func (c *Chunk) Equal(o *Chunk) bool {
	if c == nil || o == nil {
		return c == o
	}
	return c.Coord == o.Coord && c.tiles == o.tiles && c.Temp == o.Temp && c.Rain == o.Rain
}

// FloorDiv divides rounding toward negative infinity, so negative world
// coordinates map onto the correct chunk or cell.
func FloorDiv(v, size int) int {
	if size <= 0 {
		return 0
	}
	if v >= 0 {
		return v / size
	}
	return -((-v + size - 1) / size)
}

// FloorMod returns the non-negative remainder matching FloorDiv.
func FloorMod(v, size int) int {
	if size <= 0 {
		return 0
	}
	m := v % size
	if m < 0 {
		m += size
	}
	return m
}
