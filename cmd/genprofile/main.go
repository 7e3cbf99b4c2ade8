// Command genprofile measures cold-cache chunk generation latency at the
// surface band and prints percentile timings.
package main

import (
	"flag"
	"log"
	"sort"
	"time"

	"github.com/marc-cr1810/deepbound/internal/config"
	"github.com/marc-cr1810/deepbound/internal/content"
	"github.com/marc-cr1810/deepbound/internal/rules"
	"github.com/marc-cr1810/deepbound/internal/terrain"
	"github.com/marc-cr1810/deepbound/internal/world"
)

func main() {
	var (
		seed   = flag.Int64("seed", 1337, "world seed")
		chunks = flag.Int("chunks", 64, "chunks per pass")
		passes = flag.Int("passes", 3, "measurement passes, each with a fresh generator")
	)
	flag.Parse()
	if *chunks <= 0 || *passes <= 0 {
		log.Fatalf("genprofile: chunks and passes must be positive")
	}

	cfg := config.Default()
	cfg.Terrain.Seed = *seed
	tables := rules.Defaults()
	reg := content.DefaultRegistry()

	// Profile the band the surface crosses; it is the expensive row.
	midRow := cfg.Terrain.WorldHeight / world.ChunkSize / 2

	var durations []time.Duration
	start := time.Now()
	for pass := 0; pass < *passes; pass++ {
		gen, err := terrain.New(cfg, tables, reg)
		if err != nil {
			log.Fatalf("genprofile: %v", err)
		}
		for cx := 0; cx < *chunks; cx++ {
			t0 := time.Now()
			gen.GenerateChunk(cx, midRow)
			durations = append(durations, time.Since(t0))
		}
	}
	total := time.Since(start)

	sort.Slice(durations, func(i, j int) bool { return durations[i] < durations[j] })
	pct := func(q float64) time.Duration {
		return durations[int(q*float64(len(durations)-1))]
	}
	columns := *passes * *chunks * world.ChunkSize
	log.Printf("%d chunks over %d passes in %v", len(durations), *passes, total.Round(time.Millisecond))
	log.Printf("p50 %v  p90 %v  max %v", pct(0.5), pct(0.9), durations[len(durations)-1])
	log.Printf("%.0f columns/s", float64(columns)/total.Seconds())
}
