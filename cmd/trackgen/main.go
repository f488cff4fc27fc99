// Command trackgen searches for closed slot-car track layouts built from a
// fixed inventory of turn and straight sections, writes map figures for the
// results and optionally persists them to a layout database.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "modernc.org/sqlite"

	"github.com/slotworks/trackgen/internal/config"
	"github.com/slotworks/trackgen/internal/figure"
	"github.com/slotworks/trackgen/internal/layout"
	"github.com/slotworks/trackgen/internal/search"
	"github.com/slotworks/trackgen/internal/storage/sqlite"
)

var (
	turns        = flag.Int("turns", 6, "Number of turn sections")
	straights    = flag.Int("straights", 0, "Number of straight sections")
	prefix       = flag.String("prefix", "", "Fixed opening sequence, e.g. SLL")
	configPath   = flag.String("config", "", "Path to a JSON geometry config")
	allowCross   = flag.Bool("allow-intersections", false, "Accept self-crossing layouts")
	maxTracks    = flag.Int("max-tracks", 0, "Stop after this many unique layouts (0 = default 100)")
	splitTimeout = flag.Duration("split-timeout", 30*time.Second, "Time budget per turn split (0 = unlimited)")
	seed         = flag.Int64("seed", 0, "Random seed for branch ordering (0 = derive from clock)")
	workers      = flag.Int("workers", 1, "Splits explored concurrently")
	limitRuns    = flag.Bool("limit-runs", false, "Cap each split's contribution to the result set")
	outDir       = flag.String("out", "", "Directory for per-track PNG maps (empty = skip)")
	htmlPath     = flag.String("html", "", "Path for an HTML gallery of all tracks (empty = skip)")
	dbPath       = flag.String("db", "", "SQLite layout database to persist results into (empty = skip)")
)

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	prefixSeq, err := layout.ParseSequence(*prefix)
	if err != nil {
		log.Fatalf("Invalid prefix: %v", err)
	}

	req := search.Request{
		Turns:              *turns,
		Straights:          *straights,
		Prefix:             prefixSeq,
		AllowIntersections: *allowCross,
		MaxTracks:          *maxTracks,
		SplitTimeout:       *splitTimeout,
		Seed:               *seed,
		Workers:            *workers,
		LimitRuns:          *limitRuns,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	engine := search.NewEngine(cfg)
	tracks, results, err := engine.Generate(ctx, req)
	if err != nil && tracks == nil {
		log.Fatalf("Generation failed: %v", err)
	}
	if err != nil {
		log.Printf("Generation interrupted: %v", err)
	}

	exhausted := 0
	for _, r := range results {
		if r.BudgetExhausted {
			exhausted++
		}
	}

	found := tracks.Tracks()
	if len(found) == 0 {
		fmt.Println("No closed layouts found for this inventory.")
		if exhausted > 0 {
			fmt.Printf("(%d splits stopped on the time budget; try -split-timeout)\n", exhausted)
		}
		os.Exit(0)
	}

	fmt.Printf("Found %d unique layout(s):\n", len(found))
	for i, track := range found {
		fmt.Printf("  %2d. %-24s length %.3f m\n", i+1, track.Sequence, track.Length)
	}

	if *outDir != "" {
		paths, err := figure.RenderAll(found, *outDir)
		if err != nil {
			log.Fatalf("Failed to render figures: %v", err)
		}
		fmt.Printf("Wrote %d map(s) to %s\n", len(paths), *outDir)
	}

	if *htmlPath != "" {
		if err := figure.RenderGallery(found, *htmlPath); err != nil {
			log.Fatalf("Failed to render gallery: %v", err)
		}
		fmt.Printf("Wrote gallery to %s\n", *htmlPath)
	}

	if *dbPath != "" {
		db, err := sqlite.Open(*dbPath)
		if err != nil {
			log.Fatalf("Failed to open layout database: %v", err)
		}
		defer db.Close()

		saved, err := sqlite.NewLayoutStore(db).SaveTrackSet(tracks)
		if err != nil {
			log.Fatalf("Failed to persist layouts: %v", err)
		}
		fmt.Printf("Persisted %d new layout(s) to %s\n", saved, *dbPath)
	}
}
