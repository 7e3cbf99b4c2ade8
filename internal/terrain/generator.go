// Package terrain turns configuration, rule tables and tile content into
// deterministic chunks. Generation is column-first: each world column
// resolves its climate, landform blend, density profile, rock strata and
// surface layers once, and chunks assemble from cached columns. Every
// decision derives from the seed through positional hashing and seeded
// noise, so any chunk can generate on any goroutine in any order and come
// out byte-identical.
package terrain

import (
	"errors"
	"fmt"
	"log"

	"github.com/marc-cr1810/deepbound/internal/config"
	"github.com/marc-cr1810/deepbound/internal/content"
	"github.com/marc-cr1810/deepbound/internal/noise"
	"github.com/marc-cr1810/deepbound/internal/rules"
	"github.com/marc-cr1810/deepbound/internal/world"
)

// Generator produces chunks for one world. It is safe for concurrent use;
// all mutable state lives in the column cache.
type Generator struct {
	field  *noise.Field
	tables *rules.Tables

	worldHeight int
	seaLevel    int

	// Tile IDs resolved per rule at construction, indexed like the rule
	// tables. Unresolvable strata fall back to deep rock; unresolvable
	// layers and ores are disabled via the OK slices.
	strataTiles []content.TileID
	layerTiles  []content.TileID
	layerOK     []bool
	oreTiles    []content.TileID
	oreOK       []bool

	// strataGroups lists the distinct rock groups in table order.
	strataGroups []string

	defaultLandform rules.Landform

	cache *columnCache
}

// New builds a Generator. Unknown tile codes in the tables degrade
// instead of failing: rock strata fall back to deep rock, surface layers
// and ore deposits are skipped.
func New(cfg config.Config, tables *rules.Tables, reg *content.Registry) (*Generator, error) {
	if tables == nil {
		tables = &rules.Tables{}
	}
	if err := tables.Validate(); err != nil {
		return nil, fmt.Errorf("validate rules: %w", err)
	}
	if cfg.Terrain.WorldHeight <= 0 {
		return nil, errors.New("world height must be positive")
	}
	if cfg.Terrain.WorldHeight%world.ChunkSize != 0 {
		return nil, fmt.Errorf("world height must be a multiple of %d", world.ChunkSize)
	}
	if cfg.Terrain.SeaLevel < 0 || cfg.Terrain.SeaLevel > cfg.Terrain.WorldHeight {
		return nil, errors.New("sea level must lie within the world height")
	}
	if reg == nil {
		reg = content.DefaultRegistry()
	}

	g := &Generator{
		field:       noise.New(cfg.Terrain.Seed),
		tables:      tables,
		worldHeight: cfg.Terrain.WorldHeight,
		seaLevel:    cfg.Terrain.SeaLevel,
		cache:       newColumnCache(cfg.Cache.Columns),
		defaultLandform: rules.Landform{
			Code:        "default",
			Weight:      1,
			HeightCurve: rules.Spline{{At: 0, Value: 0.5}},
		},
	}

	g.strataTiles = make([]content.TileID, len(tables.Strata))
	for i, st := range tables.Strata {
		id, ok := reg.Lookup(st.BlockCode)
		if !ok {
			log.Printf("terrain: rock tile %q not registered, using deep rock", st.BlockCode)
			id = content.DeepRock
		}
		g.strataTiles[i] = id
	}
	seen := make(map[string]bool, len(tables.Strata))
	for _, st := range tables.Strata {
		if !seen[st.Group] {
			seen[st.Group] = true
			g.strataGroups = append(g.strataGroups, st.Group)
		}
	}

	g.layerTiles = make([]content.TileID, len(tables.BlockLayers))
	g.layerOK = make([]bool, len(tables.BlockLayers))
	for i, layer := range tables.BlockLayers {
		id, ok := reg.Lookup(layer.BlockCode)
		if !ok {
			log.Printf("terrain: surface tile %q not registered, skipping layer", layer.BlockCode)
			continue
		}
		g.layerTiles[i] = id
		g.layerOK[i] = true
	}

	g.oreTiles = make([]content.TileID, len(tables.Ores))
	g.oreOK = make([]bool, len(tables.Ores))
	for i, ore := range tables.Ores {
		id, ok := reg.Lookup(ore.BlockCode)
		if !ok {
			log.Printf("terrain: ore tile %q not registered, skipping deposit", ore.BlockCode)
			continue
		}
		g.oreTiles[i] = id
		g.oreOK[i] = true
	}

	return g, nil
}

// GenerateChunk produces the chunk at chunk coordinates. The result
// depends only on the generator's configuration and the coordinates,
// never on generation order, caller goroutine or cache state.
func (g *Generator) GenerateChunk(cx, cy int) *world.Chunk {
	ch := world.NewChunk(world.ChunkCoord{X: cx, Y: cy})
	baseX, baseY := ch.Origin()
	for lx := 0; lx < world.ChunkSize; lx++ {
		x := baseX + lx
		col := g.cache.column(x, g.buildColumn)
		ch.Temp[lx] = col.temp
		ch.Rain[lx] = col.rain
		g.fillColumn(ch, col, lx, baseY)
	}
	return ch
}

// fillColumn classifies the chunk's slice of one column. Below the world
// everything reads as deep rock and above it as air; in between, solid
// cells take their stratum rock with ore applied and non-solid cells
// below sea level fill with water.
func (g *Generator) fillColumn(ch *world.Chunk, col *column, lx, baseY int) {
	for ly := 0; ly < world.ChunkSize; ly++ {
		y := baseY + ly
		switch {
		case y < 0:
			ch.SetTile(lx, ly, content.DeepRock)
		case y >= g.worldHeight:
			// air, the zero tile
		case col.solidAt(y):
			tile, group := g.rockAt(col, y)
			ch.SetTile(lx, ly, g.applyOres(tile, group, col.x, y))
		case y < g.seaLevel:
			ch.SetTile(lx, ly, content.Water)
		}
	}
	stampSoil(ch, col, lx, baseY)
}

// buildColumn computes the full generation product for one world column.
func (g *Generator) buildColumn(x int) *column {
	col := &column{
		x:        x,
		surfaceY: -1,
		solid:    make([]uint64, (g.worldHeight+63)/64),
		fallback: content.DeepRock,
	}
	temp, rain := g.climate(x)
	col.temp, col.rain = g.ditherClimate(x, temp, rain)

	prof := g.prepareColumn(x, g.landformAt(x))
	floorY, ceilY := g.evalBounds(prof)

	for y := 0; y <= floorY; y++ {
		col.setSolid(y)
	}
	if floorY >= 0 {
		col.surfaceY = floorY
	}
	fx := float64(x)
	for y := floorY + 1; y <= ceilY; y++ {
		if g.densityAt(prof, fx, y) > 0 {
			col.setSolid(y)
			col.surfaceY = y
		}
	}

	g.buildStrata(col, g.provinceBudgets(x))
	g.buildSoil(col, col.temp, col.rain)
	return col
}

// PrimaryLandform returns the landform contributing the most weight to
// column x. Commands use it for map tinting and distribution reports.
func (g *Generator) PrimaryLandform(x int) rules.Landform {
	return *g.landformAt(x).primary()
}

// CachedColumns reports how many columns the generator currently caches.
func (g *Generator) CachedColumns() int {
	return g.cache.size()
}
