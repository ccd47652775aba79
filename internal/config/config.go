package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Formats lists the output encodings a render run can produce.
var Formats = []string{"ppm", "png", "webp", "bmp", "tiff", "tga"}

// Config holds output paths and render settings.
type Config struct {
	// Paths
	OutputDir string `json:"output_dir"`
	Asset     string `json:"asset"`

	// Render settings
	Width       int      `json:"width"`
	Height      int      `json:"height"`
	Scenes      []string `json:"scenes"`
	Frames      int      `json:"frames"`
	FrameStep   float64  `json:"frame_step"`
	Format      string   `json:"format"`
	Supersample int      `json:"supersample"`
	Workers     int      `json:"workers"`
	LogLevel    string   `json:"log_level"`

	// Animate also writes each scene's frames as one animated WebP.
	Animate bool `json:"animate"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Asset != "" {
		c.Asset = flags.Asset
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if len(flags.Scenes) > 0 {
		c.Scenes = flags.Scenes
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}
	if flags.Animate {
		c.Animate = true
	}

	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
	if c.Asset != "" && !filepath.IsAbs(c.Asset) {
		if abs, err := filepath.Abs(c.Asset); err == nil {
			c.Asset = abs
		}
	}

	// Defaults for render settings
	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 600
	}
	if c.Frames <= 0 {
		c.Frames = 1
	}
	if c.FrameStep <= 0 {
		c.FrameStep = 1.0 / 60
	}
	c.Format = strings.ToLower(c.Format)
	if c.Format == "" {
		c.Format = "ppm"
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate reports settings Resolve cannot repair.
func (c *Config) Validate() error {
	known := false
	for _, f := range Formats {
		if c.Format == f {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("config: unknown format %q (want one of %s)", c.Format, strings.Join(Formats, ", "))
	}
	if c.Format == "ppm" && c.Supersample > 1 {
		return fmt.Errorf("config: supersample %d is not supported for ppm output", c.Supersample)
	}
	if c.Animate && c.Format != "webp" {
		return fmt.Errorf("config: animate requires webp output, got %q", c.Format)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("config: log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir   string
	Asset       string
	Width       int
	Height      int
	Scenes      []string
	Frames      int
	Format      string
	Supersample int
	Workers     int
	LogLevel    string
	Animate     bool
}

// SplitList parses a comma separated flag value, dropping empty entries.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
