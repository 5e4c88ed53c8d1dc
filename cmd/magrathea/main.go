package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/src-d/go-billy.v4/osfs"

	"magrathea/internal/app"
	"magrathea/internal/config"
	"magrathea/internal/planet"
	"magrathea/internal/render"
	"magrathea/internal/termview"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("magrathea: ")

	cmd, args := "generate", os.Args[1:]
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cmd, args = args[0], args[1:]
	}

	cfg := config.NewConfig()
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	cfg.Bind(fs)
	_ = fs.Parse(args)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch cmd {
	case "generate":
		err = generate(ctx, cfg)
	case "edit":
		err = edit(cfg)
	case "view":
		err = view(ctx, cfg)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q (want generate, edit or view)\n", cmd)
		os.Exit(2)
	}
	if err != nil && ctx.Err() == nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	gen, err := planet.Lookup(cfg.Preset)
	if err != nil {
		return err
	}
	light, err := cfg.Light()
	if err != nil {
		return err
	}
	// billy filesystems are rooted, so write relative to the output directory
	out := osfs.New(filepath.Dir(cfg.Output))
	name := filepath.Base(cfg.Output)

	for {
		seed, err := cfg.SeedUUID()
		if err != nil {
			return err
		}
		opts, err := cfg.Options(seed)
		if err != nil {
			return err
		}
		res, err := gen.Generate(opts, cfg.Resolution, light)
		if err != nil {
			return err
		}
		if err := render.Save(out, name, res.Image); err != nil {
			return err
		}
		log.Printf("seed %s -> %s (%s)", seed, cfg.Output, formatStats(res.Stats))

		if cfg.Repeat <= 0 {
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(cfg.Repeat):
		}
	}
}

func view(ctx context.Context, cfg *config.Config) error {
	s, err := app.Open(cfg)
	if err != nil {
		return err
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	return termview.New(s, screen).Run(ctx)
}

func formatStats(stats []planet.KindCount) string {
	total := 0
	for _, c := range stats {
		total += c.Count
	}
	parts := make([]string, 0, len(stats))
	for _, c := range stats {
		parts = append(parts, fmt.Sprintf("%s %.1f%%", c.Kind, 100*float64(c.Count)/float64(total)))
	}
	return strings.Join(parts, ", ")
}
