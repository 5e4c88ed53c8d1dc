package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/google/uuid"

	"magrathea/internal/config"
	"magrathea/internal/survey"
	"magrathea/internal/terrain"
)

func main() {
	count := flag.Int("count", 32, "number of seeds to render")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel renders")
	verbose := flag.Bool("v", false, "print per-seed coverage")
	cfg := config.NewConfig()
	cfg.Resolution = 64
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	if *count <= 0 {
		log.Fatalf("count %d must be positive", *count)
	}

	base := uuid.Nil
	if cfg.Seed != "" {
		var err error
		if base, err = cfg.SeedUUID(); err != nil {
			log.Fatal(err)
		}
	}
	light, err := cfg.Light()
	if err != nil {
		log.Fatal(err)
	}
	opts, err := cfg.Options(base)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sum, err := survey.Run(ctx, survey.Options{
		Preset:     cfg.Preset,
		Seeds:      survey.Seeds(base, *count),
		Resolution: cfg.Resolution,
		Workers:    *workers,
		Light:      light,
		Origin:     opts.Origin,
		Radius:     opts.Radius,
		Strategy:   opts.Strategy,
		TieBreak:   opts.TieBreak,
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Survey: %d %s bodies at %d px, strategy %s, tie-break %s, %s\n",
		len(sum.Results), sum.Preset, cfg.Resolution, opts.Strategy, opts.TieBreak, describeLight(light))
	if *verbose {
		for _, r := range sum.Results {
			parts := make([]string, 0, len(r.Stats))
			for _, c := range r.Stats {
				parts = append(parts, fmt.Sprintf("%s %.1f%%", c.Kind, 100*r.Coverage[c.Kind]))
			}
			fmt.Printf("  %s  %s\n", r.Seed, strings.Join(parts, ", "))
		}
		fmt.Println()
	}
	for _, kind := range sum.Kinds() {
		fmt.Printf("  %-14s mean %5.1f%%  present on %d/%d\n",
			kind, 100*sum.Mean[kind], sum.Present[kind], len(sum.Results))
	}
}

func describeLight(l *terrain.Light) string {
	if l == nil {
		return "unlit"
	}
	return fmt.Sprintf("light %s at %.2f sols", l.Color.Hex(), l.Sols)
}
