package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"softraster/internal/asset"
	"softraster/internal/batch"
	"softraster/internal/config"
	"softraster/internal/export"
	"softraster/internal/raster"
	"softraster/internal/scene"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run renders the scenes selected by args and returns the process exit code.
func run(args []string) int {
	// CLI flags
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	configFile := fs.String("config", "", "Path to config.json file")
	outputDir := fs.String("output", "", "Output directory (default: renders)")
	assetPath := fs.String("asset", "", "Image used by the squish scene")
	width := fs.Int("width", 0, "Frame width in pixels (default: 800)")
	height := fs.Int("height", 0, "Frame height in pixels (default: 600)")
	scenes := fs.String("scenes", "", "Comma separated scenes to render (default: all)")
	frames := fs.Int("frames", 0, "Frames per scene (default: 1)")
	format := fs.String("format", "", "Output format: "+strings.Join(config.Formats, ", ")+" (default: ppm)")
	supersample := fs.Int("ss", 0, "Supersampling factor (default: 1)")
	workers := fs.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	logLevel := fs.String("log", "", "Log level: debug, info, warn, error (default: info)")
	animate := fs.Bool("animate", false, "Also write each scene as an animated WebP")
	list := fs.Bool("list", false, "List scenes and exit")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *list {
		for _, name := range scene.Names() {
			fmt.Println(name)
		}
		return 0
	}

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			return 1
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		OutputDir:   *outputDir,
		Asset:       *assetPath,
		Width:       *width,
		Height:      *height,
		Scenes:      config.SplitList(*scenes),
		Frames:      *frames,
		Format:      *format,
		Supersample: *supersample,
		Workers:     *workers,
		LogLevel:    *logLevel,
		Animate:     *animate,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	lvl, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	raster.SetLogger(logger)

	var env scene.Env
	if cfg.Asset != "" {
		cache := asset.NewCache()
		img, err := cache.Get(cfg.Asset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading asset: %v\n", err)
			return 1
		}
		env.Asset = img
		fmt.Printf("Asset: %s (%dx%d)\n", cfg.Asset, img.Width, img.Height)
	}

	selected, err := scene.Resolve(cfg.Scenes, env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v (known: %s)\n", err, strings.Join(scene.Names(), ", "))
		return 1
	}

	// Print summary
	fmt.Printf("Software rasterizer → %s\n", strings.ToUpper(cfg.Format))
	fmt.Printf("Scenes: %d, Frames: %d, Size: %dx%d (x%d), Workers: %d\n",
		len(selected), cfg.Frames, cfg.Width, cfg.Height, cfg.Supersample, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()

	// Run batch
	batchCfg := batch.Config{
		OutputDir: cfg.OutputDir,
		Scenes:    selected,
		Width:     cfg.Width,
		Height:    cfg.Height,
		Frames:    cfg.Frames,
		FrameStep: cfg.FrameStep,
		Export:    export.Options{Format: cfg.Format, Supersample: cfg.Supersample},
		Workers:   cfg.Workers,
		Animate:   cfg.Animate,
		Logger:    logger,
	}

	results := batch.Run(ctx, batchCfg)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Written: %d/%d\n", success, len(results))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		for _, e := range errors[:min(len(errors), 20)] {
			fmt.Printf("  %s #%d: %s\n", e.Scene, e.Frame, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, batchCfg, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		return 1
	}
	return 0
}
