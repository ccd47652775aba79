// Package export encodes canvases into image files.
package export

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"softraster/internal/postprocess"
	"softraster/internal/ppm"
	"softraster/internal/raster"
)

// ErrFormat is returned for an unknown output format.
var ErrFormat = errors.New("export: unknown format")

// Options controls how a canvas is written.
type Options struct {
	// Format is one of ppm, png, webp, bmp, tiff or tga.
	Format string

	// Supersample > 1 means the canvas holds an N× render that is filtered
	// down before encoding. PPM output is always written at canvas size.
	Supersample int
}

// Ext returns the file extension, with the dot, used for format.
func Ext(format string) string {
	if format == "tiff" {
		return ".tif"
	}
	return "." + format
}

// ToNRGBA copies the canvas into an image.NRGBA. Alpha is kept as is.
func ToNRGBA(c *raster.Canvas) *image.NRGBA {
	w, h := c.Width(), c.Height()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		dst := img.Pix[y*img.Stride : y*img.Stride+4*w]
		for x, p := range c.Row(y) {
			dst[4*x], dst[4*x+1], dst[4*x+2], dst[4*x+3] = raster.Unpack(p)
		}
	}
	return img
}

// Image converts the canvas to the image written for opts: the canvas
// contents, filtered down when supersampling.
func Image(c *raster.Canvas, opts Options) *image.NRGBA {
	img := ToNRGBA(c)
	if opts.Supersample > 1 {
		w := max(c.Width()/opts.Supersample, 1)
		h := max(c.Height()/opts.Supersample, 1)
		img = postprocess.Downsample(img, w, h)
	}
	return img
}

// Encode writes c to w in the requested format.
func Encode(w io.Writer, c *raster.Canvas, opts Options) error {
	if opts.Format == "ppm" {
		return ppm.Encode(w, c)
	}
	return EncodeImage(w, Image(c, opts), opts.Format)
}

// EncodeImage writes an already converted image in the requested format.
func EncodeImage(w io.Writer, img *image.NRGBA, format string) error {
	var err error
	switch format {
	case "png":
		err = png.Encode(w, img)
	case "webp":
		err = nativewebp.Encode(w, img, nil)
	case "bmp":
		err = bmp.Encode(w, img)
	case "tiff":
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case "tga":
		err = tga.Encode(w, img)
	case "ppm":
		err = ppm.Encode(w, frameOf(img))
	default:
		return fmt.Errorf("%w %q", ErrFormat, format)
	}
	if err != nil {
		return fmt.Errorf("export: encode %s: %w", format, err)
	}
	return nil
}

// Save writes c to path.
func Save(path string, c *raster.Canvas, opts Options) error {
	return writeFile(path, func(w io.Writer) error { return Encode(w, c, opts) })
}

// SaveAnimation writes frames to path as a looping animated WebP, showing
// each frame for delay.
func SaveAnimation(path string, frames []*image.NRGBA, delay time.Duration) error {
	if len(frames) == 0 {
		return fmt.Errorf("export: animation %s: no frames", path)
	}
	ani := &nativewebp.Animation{
		Images:    make([]image.Image, len(frames)),
		Durations: make([]uint, len(frames)),
		Disposals: make([]uint, len(frames)),
	}
	ms := uint(max(delay.Milliseconds(), 1))
	for i, f := range frames {
		ani.Images[i] = f
		ani.Durations[i] = ms
	}
	return writeFile(path, func(w io.Writer) error {
		if err := nativewebp.EncodeAll(w, ani, nil); err != nil {
			return fmt.Errorf("export: encode animation: %w", err)
		}
		return nil
	})
}

func writeFile(path string, encode func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	bw := bufio.NewWriter(f)
	if err := encode(bw); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("export: flush %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: close %s: %w", path, err)
	}
	return nil
}

// frameOf repacks an NRGBA image for the PPM encoder.
func frameOf(img *image.NRGBA) *ppm.Frame {
	b := img.Bounds()
	f := &ppm.Frame{W: b.Dx(), H: b.Dy(), Pix: make([]uint32, b.Dx()*b.Dy())}
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			i := img.PixOffset(b.Min.X+x, b.Min.Y+y)
			f.Pix[y*f.W+x] = raster.Pack(img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3])
		}
	}
	return f
}
