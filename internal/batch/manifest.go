package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ManifestEntry represents one written file in the output manifest.
type ManifestEntry struct {
	Scene string  `json:"scene"`
	Frame int     `json:"frame"`
	Time  float64 `json:"time"`
	Image string  `json:"image"`
}

// Manifest is the document written by WriteManifest.
type Manifest struct {
	Width   int             `json:"width"`
	Height  int             `json:"height"`
	Format  string          `json:"format"`
	Entries []ManifestEntry `json:"entries"`
}

// WriteManifest writes the successful results to path as JSON. Image paths
// use forward slashes on every platform.
func WriteManifest(path string, cfg Config, results []Result) error {
	m := Manifest{
		Width:   cfg.Width,
		Height:  cfg.Height,
		Format:  cfg.Export.Format,
		Entries: []ManifestEntry{},
	}
	for _, r := range results {
		if !r.Success {
			continue
		}
		m.Entries = append(m.Entries, ManifestEntry{
			Scene: r.Scene,
			Frame: r.Frame,
			Time:  r.Time,
			Image: filepath.ToSlash(r.Image),
		})
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
