// Command worldgen generates a band of chunks, reports landform and
// timing statistics and writes a side-view preview image.
package main

import (
	"flag"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/marc-cr1810/deepbound/internal/config"
	"github.com/marc-cr1810/deepbound/internal/content"
	"github.com/marc-cr1810/deepbound/internal/rules"
	"github.com/marc-cr1810/deepbound/internal/terrain"
	"github.com/marc-cr1810/deepbound/internal/world"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a JSON or YAML config file")
		seed       = flag.Int64("seed", 0, "override the world seed")
		chunksX    = flag.Int("chunks-x", 0, "override the number of chunk columns")
		out        = flag.String("out", "", "override the preview output path")
		assetsDir  = flag.String("assets", "", "override the rules asset directory")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("worldgen: %v", err)
	}
	if *seed != 0 {
		cfg.Terrain.Seed = *seed
	}
	if *chunksX > 0 {
		cfg.Run.ChunksX = *chunksX
	}
	if *out != "" {
		cfg.Run.PreviewPath = *out
	}
	if *assetsDir != "" {
		cfg.Assets.Dir = *assetsDir
	}

	tables := rules.Defaults()
	if cfg.Assets.Dir != "" {
		tables, err = rules.Load(cfg.Assets.Dir)
		if err != nil {
			log.Fatalf("worldgen: %v", err)
		}
	}

	reg := content.DefaultRegistry()
	gen, err := terrain.New(cfg, tables, reg)
	if err != nil {
		log.Fatalf("worldgen: %v", err)
	}
	store := world.NewStore(gen)

	rows := cfg.Terrain.WorldHeight / world.ChunkSize
	if cfg.Run.ChunksY < rows {
		rows = cfg.Run.ChunksY
	}
	half := cfg.Run.ChunksX / 2
	var coords []world.ChunkCoord
	for cx := -half; cx < cfg.Run.ChunksX-half; cx++ {
		for cy := 0; cy < rows; cy++ {
			coords = append(coords, world.ChunkCoord{X: cx, Y: cy})
		}
	}

	workers := cfg.Run.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	start := time.Now()
	jobs := make(chan world.ChunkCoord)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range jobs {
				store.Chunk(c.X, c.Y)
			}
		}()
	}
	for _, c := range coords {
		jobs <- c
	}
	close(jobs)
	wg.Wait()
	elapsed := time.Since(start)

	log.Printf("generated %d chunks in %v (%.0f chunks/s), %d columns cached",
		store.Count(), elapsed.Round(time.Millisecond),
		float64(store.Count())/elapsed.Seconds(), gen.CachedColumns())

	minX := -half * world.ChunkSize
	maxX := (cfg.Run.ChunksX - half) * world.ChunkSize
	counts := map[string]int{}
	for x := minX; x < maxX; x++ {
		counts[gen.PrimaryLandform(x).Code]++
	}
	codes := make([]string, 0, len(counts))
	for code := range counts {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		log.Printf("landform %-16s %6.2f%%", code, 100*float64(counts[code])/float64(maxX-minX))
	}

	chunks := make([]*world.Chunk, 0, len(coords))
	for _, c := range coords {
		chunks = append(chunks, store.Chunk(c.X, c.Y))
	}
	tint := func(wx int) (mgl64.Vec3, bool) {
		return world.ParseHexColor(gen.PrimaryLandform(wx).MapColor)
	}
	img := world.RenderPreview(chunks, reg, tint)
	if err := world.WritePreviewPNG(cfg.Run.PreviewPath, img); err != nil {
		log.Fatalf("worldgen: %v", err)
	}
	log.Printf("preview written to %s", cfg.Run.PreviewPath)
}
