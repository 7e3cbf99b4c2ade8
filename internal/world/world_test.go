package world

import (
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/marc-cr1810/deepbound/internal/content"
)

func TestFloorDivAndMod(t *testing.T) {
	cases := []struct {
		v, size int
		wantDiv int
		wantMod int
	}{
		{0, 32, 0, 0},
		{31, 32, 0, 31},
		{32, 32, 1, 0},
		{65, 32, 2, 1},
		{-1, 32, -1, 31},
		{-32, 32, -1, 0},
		{-33, 32, -2, 31},
		{7, 0, 0, 0},
		{7, -4, 0, 0},
	}
	for _, tc := range cases {
		if got := FloorDiv(tc.v, tc.size); got != tc.wantDiv {
			t.Fatalf("FloorDiv(%d, %d) = %d, want %d", tc.v, tc.size, got, tc.wantDiv)
		}
		if got := FloorMod(tc.v, tc.size); got != tc.wantMod {
			t.Fatalf("FloorMod(%d, %d) = %d, want %d", tc.v, tc.size, got, tc.wantMod)
		}
	}
}

func TestChunkTiles(t *testing.T) {
	ch := NewChunk(ChunkCoord{X: -2, Y: 3})
	if got := ch.Tile(5, 5); got != content.Air {
		t.Fatalf("fresh chunk tile = %d, want air", got)
	}
	ch.SetTile(5, 5, content.DeepRock)
	if got := ch.Tile(5, 5); got != content.DeepRock {
		t.Fatalf("tile after SetTile = %d, want deep rock", got)
	}
	if got := ch.Tile(4, 5); got != content.Air {
		t.Fatalf("neighbor tile = %d, want air", got)
	}

	// Out-of-range access neither panics nor writes.
	ch.SetTile(-1, 0, content.Water)
	ch.SetTile(0, ChunkSize, content.Water)
	if got := ch.Tile(-1, 0); got != content.Air {
		t.Fatalf("out-of-range read = %d, want air", got)
	}

	x, y := ch.Origin()
	if x != -2*ChunkSize || y != 3*ChunkSize {
		t.Fatalf("Origin = %d, %d, want %d, %d", x, y, -2*ChunkSize, 3*ChunkSize)
	}
}

func TestChunkEqual(t *testing.T) {
	a := NewChunk(ChunkCoord{X: 1, Y: 2})
	b := NewChunk(ChunkCoord{X: 1, Y: 2})
	a.SetTile(3, 4, content.DeepRock)
	b.SetTile(3, 4, content.DeepRock)
	a.Temp[0], b.Temp[0] = 12.5, 12.5
	if !a.Equal(b) {
		t.Fatal("identical chunks reported unequal")
	}
	b.SetTile(0, 0, content.Water)
	if a.Equal(b) {
		t.Fatal("differing chunks reported equal")
	}
	if a.Equal(nil) {
		t.Fatal("chunk equal to nil")
	}
	var nilChunk *Chunk
	if !nilChunk.Equal(nil) {
		t.Fatal("nil chunks should compare equal")
	}
}

type countingGen struct {
	mu    sync.Mutex
	calls map[ChunkCoord]int
}

func newCountingGen() *countingGen {
	return &countingGen{calls: make(map[ChunkCoord]int)}
}

func (g *countingGen) GenerateChunk(cx, cy int) *Chunk {
	g.mu.Lock()
	g.calls[ChunkCoord{X: cx, Y: cy}]++
	g.mu.Unlock()
	ch := NewChunk(ChunkCoord{X: cx, Y: cy})
	ch.SetTile(0, 0, content.DeepRock)
	return ch
}

func (g *countingGen) total() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	n := 0
	for _, c := range g.calls {
		n += c
	}
	return n
}

func TestStoreMemoizes(t *testing.T) {
	gen := newCountingGen()
	store := NewStore(gen)

	first := store.Chunk(2, 1)
	second := store.Chunk(2, 1)
	if first != second {
		t.Fatal("repeated access returned a different chunk")
	}
	if got := gen.calls[ChunkCoord{X: 2, Y: 1}]; got != 1 {
		t.Fatalf("generator called %d times, want 1", got)
	}
	if store.Count() != 1 {
		t.Fatalf("Count = %d, want 1", store.Count())
	}
}

func TestStoreConcurrentAccess(t *testing.T) {
	gen := newCountingGen()
	store := NewStore(gen)

	const goroutines = 16
	results := make([]*Chunk, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = store.Chunk(0, 0)
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		if results[i] != results[0] {
			t.Fatal("concurrent accesses returned different chunks")
		}
	}
	if store.Count() != 1 {
		t.Fatalf("Count = %d, want 1", store.Count())
	}
	// Racing goroutines may generate duplicates, but only one survives and
	// the map never grows past it.
	if gen.total() < 1 {
		t.Fatal("generator never called")
	}
}

func TestRenderPreview(t *testing.T) {
	reg := content.DefaultRegistry()
	granite, _ := reg.Lookup("deepbound:rock-granite")

	ch := NewChunk(ChunkCoord{})
	ch.SetTile(0, 0, granite)
	ch.SetTile(1, 0, content.Water)

	img := RenderPreview([]*Chunk{ch}, reg, nil)
	b := img.Bounds()
	if b.Dx() != ChunkSize || b.Dy() != ChunkSize {
		t.Fatalf("image bounds = %v, want %dx%d", b, ChunkSize, ChunkSize)
	}

	// World y=0 is the bottom row, so it lands on the last image row.
	bottom := ChunkSize - 1
	if got := img.NRGBAAt(0, bottom); got == previewBackground {
		t.Fatal("solid cell rendered as background")
	}
	if got := img.NRGBAAt(1, bottom); got == previewBackground {
		t.Fatal("water cell rendered as background")
	}
	if got := img.NRGBAAt(2, bottom); got != previewBackground {
		t.Fatalf("air cell = %v, want background", got)
	}
	if got := img.NRGBAAt(0, 0); got != previewBackground {
		t.Fatalf("top-of-world air = %v, want background", got)
	}
}

func TestRenderPreviewTintsSolidOnly(t *testing.T) {
	reg := content.DefaultRegistry()
	granite, _ := reg.Lookup("deepbound:rock-granite")

	ch := NewChunk(ChunkCoord{})
	ch.SetTile(0, 0, granite)
	ch.SetTile(1, 0, content.Water)

	red := func(int) (mgl64.Vec3, bool) { return mgl64.Vec3{255, 0, 0}, true }
	plain := RenderPreview([]*Chunk{ch}, reg, nil)
	tinted := RenderPreview([]*Chunk{ch}, reg, red)

	bottom := ChunkSize - 1
	if plain.NRGBAAt(0, bottom) == tinted.NRGBAAt(0, bottom) {
		t.Fatal("tint did not change the solid cell")
	}
	if plain.NRGBAAt(1, bottom) != tinted.NRGBAAt(1, bottom) {
		t.Fatal("tint changed the water cell")
	}
}

func TestRenderPreviewSpansNegativeChunks(t *testing.T) {
	reg := content.DefaultRegistry()
	a := NewChunk(ChunkCoord{X: -1, Y: 0})
	b := NewChunk(ChunkCoord{X: 0, Y: 0})
	a.SetTile(0, 0, content.DeepRock)

	img := RenderPreview([]*Chunk{a, b}, reg, nil)
	if got := img.Bounds().Dx(); got != 2*ChunkSize {
		t.Fatalf("width = %d, want %d", got, 2*ChunkSize)
	}
	// The marked cell sits at the far left of the stitched image.
	if got := img.NRGBAAt(0, ChunkSize-1); got == previewBackground {
		t.Fatal("cell from negative chunk missing")
	}
}

func TestWritePreviewPNG(t *testing.T) {
	reg := content.DefaultRegistry()
	ch := NewChunk(ChunkCoord{})
	ch.SetTile(0, 0, content.DeepRock)
	img := RenderPreview([]*Chunk{ch}, reg, nil)

	path := filepath.Join(t.TempDir(), "preview.png")
	if err := WritePreviewPNG(path, img); err != nil {
		t.Fatalf("WritePreviewPNG: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Fatalf("decoded bounds = %v, want %v", decoded.Bounds(), img.Bounds())
	}
}

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in   string
		want mgl64.Vec3
		ok   bool
	}{
		{"#ff0000", mgl64.Vec3{255, 0, 0}, true},
		{"#7dab63", mgl64.Vec3{125, 171, 99}, true},
		{"#000000", mgl64.Vec3{0, 0, 0}, true},
		{"", mgl64.Vec3{}, false},
		{"123456", mgl64.Vec3{}, false},
		{"#12345", mgl64.Vec3{}, false},
		{"#gggggg", mgl64.Vec3{}, false},
	}
	for _, tc := range cases {
		got, ok := ParseHexColor(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ParseHexColor(%q) = %v, %v, want %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
