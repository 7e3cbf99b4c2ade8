// Package content maps tile codes such as "deepbound:rock-granite" onto
// the dense numeric ids chunk grids store.
package content

import "fmt"

// TileID indexes a registered tile. The zero id is always air.
type TileID uint16

// Reserved ids present in every registry.
const (
	Air TileID = iota
	Water
	DeepRock
)

// Tile describes one registered tile kind. Color is the flat map color used
// by preview rendering.
type Tile struct {
	Code  string
	Color [3]uint8
	Solid bool
}

// Registry is an explicit tile table. Generators hold a reference and
// resolve rule tile codes to ids once, at construction time; there is no
// process-global registry.
type Registry struct {
	byCode map[string]TileID
	tiles  []Tile
}

// NewRegistry returns a registry holding only the reserved tiles: air,
// water and the deep rock every unresolved stratum falls back to.
func NewRegistry() *Registry {
	r := &Registry{byCode: make(map[string]TileID, 16)}
	for _, t := range []Tile{
		{Code: "deepbound:air"},
		{Code: "deepbound:water", Color: [3]uint8{38, 96, 179}},
		{Code: "deepbound:rock-granite", Color: [3]uint8{125, 118, 110}, Solid: true},
	} {
		r.byCode[t.Code] = TileID(len(r.tiles))
		r.tiles = append(r.tiles, t)
	}
	return r
}

// Register adds a tile and returns its id. Codes must be unique and
// non-empty.
func (r *Registry) Register(t Tile) (TileID, error) {
	if t.Code == "" {
		return 0, fmt.Errorf("tile code must not be empty")
	}
	if _, ok := r.byCode[t.Code]; ok {
		return 0, fmt.Errorf("tile %q already registered", t.Code)
	}
	if len(r.tiles) >= 1<<16 {
		return 0, fmt.Errorf("tile registry full")
	}
	id := TileID(len(r.tiles))
	r.byCode[t.Code] = id
	r.tiles = append(r.tiles, t)
	return id, nil
}

// Lookup resolves a tile code to its id.
func (r *Registry) Lookup(code string) (TileID, bool) {
	id, ok := r.byCode[code]
	return id, ok
}

// Tile returns the definition for id. Unknown ids read as air.
func (r *Registry) Tile(id TileID) Tile {
	if int(id) >= len(r.tiles) {
		return r.tiles[Air]
	}
	return r.tiles[id]
}

// Len returns the number of registered tiles.
func (r *Registry) Len() int {
	return len(r.tiles)
}

// DefaultRegistry returns a registry populated with the built-in palette
// the default rule tables reference.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, t := range []Tile{
		{Code: "deepbound:rock-basalt", Color: [3]uint8{74, 71, 68}, Solid: true},
		{Code: "deepbound:rock-slate", Color: [3]uint8{96, 98, 104}, Solid: true},
		{Code: "deepbound:rock-sandstone", Color: [3]uint8{186, 166, 122}, Solid: true},
		{Code: "deepbound:rock-limestone", Color: [3]uint8{171, 167, 152}, Solid: true},
		{Code: "deepbound:soil-grass", Color: [3]uint8{86, 125, 59}, Solid: true},
		{Code: "deepbound:soil-dirt", Color: [3]uint8{121, 92, 61}, Solid: true},
		{Code: "deepbound:soil-sand", Color: [3]uint8{206, 192, 142}, Solid: true},
		{Code: "deepbound:soil-gravel", Color: [3]uint8{130, 126, 120}, Solid: true},
		{Code: "deepbound:soil-peat", Color: [3]uint8{77, 63, 43}, Solid: true},
		{Code: "deepbound:soil-clay", Color: [3]uint8{152, 122, 96}, Solid: true},
		{Code: "deepbound:ore-iron", Color: [3]uint8{142, 106, 84}, Solid: true},
		{Code: "deepbound:ore-copper", Color: [3]uint8{108, 142, 118}, Solid: true},
	} {
		if _, err := r.Register(t); err != nil {
			panic(err)
		}
	}
	return r
}
