// Package batch renders scene frames to disk with a pool of workers.
package batch

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"softraster/internal/export"
	"softraster/internal/raster"
	"softraster/internal/scene"
)

// AnimationFrame marks the Result of a scene's animated file.
const AnimationFrame = -1

const notRendered = "not rendered"

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir string
	Scenes    []scene.Scene
	Width     int
	Height    int
	Frames    int
	FrameStep float64
	Export    export.Options
	Workers   int

	// Animate also writes every scene whose frames all rendered as
	// <OutputDir>/<scene>.webp.
	Animate bool

	// Logger receives progress and failures. Nil uses raster.Logger().
	Logger *slog.Logger
	// Progress is the interval between progress reports; zero means 2s.
	Progress time.Duration
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Scene string
	Frame int
	Time  float64
	// Image is the output path relative to OutputDir.
	Image   string
	Success bool
	Error   string
}

type job struct {
	scene int
	frame int
}

// FramePath returns the path of a frame relative to the output directory.
func FramePath(sceneName string, frame int, format string) string {
	return filepath.Join(sceneName, fmt.Sprintf("%04d%s", frame, export.Ext(format)))
}

// Run renders every frame of every scene using a worker pool. Results are
// ordered scene by scene, frame by frame, followed by one result per
// animation when cfg.Animate is set. Frames not started before ctx is done
// are reported as failed.
func Run(ctx context.Context, cfg Config) []Result {
	log := cfg.Logger
	if log == nil {
		log = raster.Logger()
	}
	workers := max(cfg.Workers, 1)
	total := len(cfg.Scenes) * cfg.Frames
	results := make([]Result, total)
	var animFrames [][]*image.NRGBA
	if cfg.Animate {
		animFrames = make([][]*image.NRGBA, len(cfg.Scenes))
		for i := range animFrames {
			animFrames[i] = make([]*image.NRGBA, cfg.Frames)
		}
	}

	for i, s := range cfg.Scenes {
		for f := 0; f < cfg.Frames; f++ {
			results[i*cfg.Frames+f] = Result{
				Scene: s.Name(),
				Frame: f,
				Time:  float64(f) * cfg.FrameStep,
				Image: FramePath(s.Name(), f, cfg.Export.Format),
				Error: notRendered,
			}
		}
		if err := os.MkdirAll(filepath.Join(cfg.OutputDir, s.Name()), 0o755); err != nil {
			log.Error("create scene directory", "scene", s.Name(), "err", err)
		}
	}

	var processed atomic.Int64
	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	interval := cfg.Progress
	if interval <= 0 {
		interval = 2 * time.Second
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					rate := float64(p) / time.Since(start).Seconds()
					log.Info("progress", "done", p, "total", total, "frames_per_sec", fmt.Sprintf("%.1f", rate))
				}
			}
		}
	}()

	// Worker pool
	jobs := make(chan job, workers*2)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r := newRenderer(cfg)
			for j := range jobs {
				idx := j.scene*cfg.Frames + j.frame
				img, err := r.render(cfg.Scenes[j.scene], &results[idx])
				if err != nil {
					results[idx].Error = err.Error()
					log.Warn("frame failed", "scene", results[idx].Scene, "frame", j.frame, "err", err)
				} else {
					results[idx].Success = true
					results[idx].Error = ""
					if animFrames != nil {
						animFrames[j.scene][j.frame] = img
					}
				}
				processed.Add(1)
			}
		}()
	}

	// Send work
send:
	for i := range cfg.Scenes {
		for f := 0; f < cfg.Frames; f++ {
			select {
			case jobs <- job{scene: i, frame: f}:
			case <-ctx.Done():
				break send
			}
		}
	}
	close(jobs)

	wg.Wait()
	close(done)

	if err := ctx.Err(); err != nil {
		for i := range results {
			if !results[i].Success && results[i].Error == notRendered {
				results[i].Error = err.Error()
			}
		}
	}

	for i, frames := range animFrames {
		results = append(results, writeAnimation(cfg, cfg.Scenes[i].Name(), frames, log))
	}

	log.Info("batch finished", "frames", total, "elapsed", time.Since(start).Round(time.Millisecond))
	return results
}

// renderer owns one worker's private supersampled frame buffer.
type renderer struct {
	cfg    Config
	canvas *raster.Canvas
	err    error
}

func newRenderer(cfg Config) *renderer {
	s := max(cfg.Export.Supersample, 1)
	w, h := cfg.Width*s, cfg.Height*s
	c, err := raster.New(make([]uint32, w*h), w, h)
	return &renderer{cfg: cfg, canvas: c, err: err}
}

// render draws one frame and writes it to disk. The converted image is
// returned when an animation is being collected.
func (r *renderer) render(s scene.Scene, res *Result) (*image.NRGBA, error) {
	if r.err != nil {
		return nil, r.err
	}
	if err := s.Render(r.canvas, res.Time); err != nil {
		return nil, err
	}
	path := filepath.Join(r.cfg.OutputDir, res.Image)
	if err := export.Save(path, r.canvas, r.cfg.Export); err != nil {
		return nil, err
	}
	if !r.cfg.Animate {
		return nil, nil
	}
	return export.Image(r.canvas, r.cfg.Export), nil
}

func writeAnimation(cfg Config, name string, frames []*image.NRGBA, log *slog.Logger) Result {
	res := Result{Scene: name, Frame: AnimationFrame, Image: name + ".webp"}
	for f, img := range frames {
		if img == nil {
			res.Error = fmt.Sprintf("frame %d missing", f)
			log.Warn("animation skipped", "scene", name, "err", res.Error)
			return res
		}
	}
	delay := time.Duration(cfg.FrameStep * float64(time.Second))
	if err := export.SaveAnimation(filepath.Join(cfg.OutputDir, res.Image), frames, delay); err != nil {
		res.Error = err.Error()
		log.Warn("animation failed", "scene", name, "err", err)
		return res
	}
	res.Success = true
	return res
}
