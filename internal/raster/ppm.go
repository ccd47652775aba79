package raster

import (
	"io"

	"softraster/internal/ppm"
)

// WritePPM encodes the view as a binary PPM. Alpha is discarded.
func (c *Canvas) WritePPM(w io.Writer) error {
	return ppm.Encode(w, c)
}

// SaveToPPM writes the view to path as a binary PPM.
func (c *Canvas) SaveToPPM(path string) error {
	Logger().Debug("saving ppm", "path", path, "width", c.width, "height", c.height)
	return ppm.Save(path, c)
}
