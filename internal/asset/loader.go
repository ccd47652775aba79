// Package asset loads images from disk into packed RGBA pixel buffers that a
// raster.Canvas can draw from.
package asset

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"softraster/internal/ppm"
	"softraster/internal/raster"
)

var (
	// ErrEmpty is returned for images with no pixels.
	ErrEmpty = errors.New("asset: empty image")

	// ErrFormat is returned for files whose extension has no decoder.
	ErrFormat = errors.New("asset: unsupported format")
)

// Image is a decoded picture in the rasterizer's pixel layout.
type Image struct {
	Width, Height int
	Pix           []uint32
}

// decoders maps lower-case file extensions to their decoder. TGA has no
// magic number, so files are matched by name instead of sniffed.
var decoders = map[string]func(io.Reader) (image.Image, error){
	".png":  png.Decode,
	".jpg":  jpeg.Decode,
	".jpeg": jpeg.Decode,
	".gif":  gif.Decode,
	".webp": nativewebp.Decode,
	".tga":  tga.Decode,
	".bmp":  bmp.Decode,
	".tif":  tiff.Decode,
	".tiff": tiff.Decode,
	".ppm": func(r io.Reader) (image.Image, error) {
		f, err := ppm.Decode(r)
		if err != nil {
			return nil, err
		}
		return f.NRGBA(), nil
	},
}

// Load reads and decodes the image at path. The decoder is chosen by
// extension: PNG, JPEG, GIF, WebP, TGA, BMP, TIFF and PPM are supported.
func Load(path string) (*Image, error) {
	ext := strings.ToLower(filepath.Ext(path))
	decode, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("asset: open %s: %w", path, err)
	}
	defer f.Close()

	img, err := decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("asset: decode %s: %w", path, err)
	}
	raster.Logger().Debug("asset decoded", "path", path,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())

	out := FromImage(img)
	if out.Width == 0 || out.Height == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmpty, path)
	}
	return out, nil
}

// FromImage packs any image into an Image.
func FromImage(src image.Image) *Image {
	n := toNRGBA(src)
	b := n.Bounds()
	out := &Image{Width: b.Dx(), Height: b.Dy(), Pix: make([]uint32, b.Dx()*b.Dy())}
	for y := 0; y < out.Height; y++ {
		row := n.Pix[y*n.Stride : y*n.Stride+4*out.Width]
		for x := 0; x < out.Width; x++ {
			out.Pix[y*out.Width+x] = raster.Pack(row[4*x], row[4*x+1], row[4*x+2], row[4*x+3])
		}
	}
	return out
}

// Canvas wraps the pixels of img in a canvas. The canvas shares img's
// storage; callers that only read from it, as Copy does, may share one Image
// across goroutines.
func (img *Image) Canvas() (*raster.Canvas, error) {
	return raster.New(img.Pix, img.Width, img.Height)
}

// toNRGBA converts any image to a zero-origin NRGBA.
func toNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	if n, ok := src.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	switch src.(type) {
	case *image.YCbCr, *image.Gray, *image.Gray16, *image.CMYK:
		// No alpha: draw and force opaque.
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
		for i := 3; i < len(dst.Pix); i += 4 {
			dst.Pix[i] = 255
		}
	default:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
				i := dst.PixOffset(x-b.Min.X, y-b.Min.Y)
				dst.Pix[i] = c.R
				dst.Pix[i+1] = c.G
				dst.Pix[i+2] = c.B
				dst.Pix[i+3] = c.A
			}
		}
	}
	return dst
}
