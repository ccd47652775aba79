// Package ppm reads and writes binary PPM (P6) images holding packed RGBA
// pixels. Alpha is not stored: it is dropped on encode and set to opaque on
// decode.
package ppm

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"strconv"
)

// Magic is the signature of a binary PPM file.
const Magic = "P6"

var (
	// ErrFormat is returned for input that is not a binary PPM.
	ErrFormat = errors.New("ppm: invalid format")

	// ErrUnsupported is returned for PPM files with more than 8 bits per channel.
	ErrUnsupported = errors.New("ppm: unsupported max value")
)

// Image is a source of packed RGBA rows.
type Image interface {
	Width() int
	Height() int
	Row(y int) []uint32
}

// Encode writes img as a binary PPM: the header "P6\n<w> <h> 255\n" followed
// by one R, G, B triplet per pixel in row-major order.
func Encode(w io.Writer, img Image) error {
	width, height := img.Width(), img.Height()
	if _, err := fmt.Fprintf(w, "%s\n%d %d 255\n", Magic, width, height); err != nil {
		return fmt.Errorf("ppm: write header: %w", err)
	}
	line := make([]byte, 3*width)
	for y := 0; y < height; y++ {
		for x, p := range img.Row(y) {
			line[3*x] = byte(p)
			line[3*x+1] = byte(p >> 8)
			line[3*x+2] = byte(p >> 16)
		}
		if _, err := w.Write(line); err != nil {
			return fmt.Errorf("ppm: write row %d: %w", y, err)
		}
	}
	return nil
}

// Save writes img to path as a binary PPM.
func Save(path string, img Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ppm: create %s: %w", path, err)
	}
	bw := bufio.NewWriter(f)
	if err := Encode(bw, img); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("ppm: flush %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("ppm: close %s: %w", path, err)
	}
	return nil
}

// Frame is a decoded PPM with packed RGBA pixels, alpha always 0xFF.
type Frame struct {
	W, H int
	Pix  []uint32
}

// Width returns the width of the frame.
func (f *Frame) Width() int { return f.W }

// Height returns the height of the frame.
func (f *Frame) Height() int { return f.H }

// Row returns row y of the frame.
func (f *Frame) Row(y int) []uint32 { return f.Pix[y*f.W : (y+1)*f.W] }

// MaxPixels bounds width×height of a decoded image.
const MaxPixels = 1 << 28

type header struct {
	width, height, maxVal int
}

// readHeader parses the magic number, the dimensions and the max value. '#'
// comments are skipped. Exactly one whitespace byte follows the max value.
func readHeader(br *bufio.Reader) (header, error) {
	magic := make([]byte, 2)
	if _, err := io.ReadFull(br, magic); err != nil {
		return header{}, fmt.Errorf("%w: read magic: %v", ErrFormat, err)
	}
	if string(magic) != Magic {
		return header{}, fmt.Errorf("%w: magic %q", ErrFormat, magic)
	}
	var vals [3]int
	for i := range vals {
		v, err := readNumber(br)
		if err != nil {
			return header{}, err
		}
		vals[i] = v
	}
	h := header{width: vals[0], height: vals[1], maxVal: vals[2]}
	if h.width > MaxPixels || h.height > MaxPixels ||
		(h.height > 0 && h.width > MaxPixels/h.height) {
		return header{}, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrFormat, h.width, h.height, MaxPixels)
	}
	if h.maxVal <= 0 || h.maxVal > 255 {
		return header{}, fmt.Errorf("%w: %d", ErrUnsupported, h.maxVal)
	}
	return h, nil
}

func readNumber(br *bufio.Reader) (int, error) {
	var digits []byte
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, fmt.Errorf("%w: truncated header: %v", ErrFormat, err)
		}
		switch {
		case b == '#' && len(digits) == 0:
			if _, err := br.ReadString('\n'); err != nil {
				return 0, fmt.Errorf("%w: truncated comment: %v", ErrFormat, err)
			}
		case isSpace(b):
			if len(digits) > 0 {
				return parseNumber(digits)
			}
		case b >= '0' && b <= '9':
			digits = append(digits, b)
		default:
			return 0, fmt.Errorf("%w: unexpected byte %q in header", ErrFormat, b)
		}
	}
}

func parseNumber(digits []byte) (int, error) {
	v, err := strconv.Atoi(string(digits))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	return v, nil
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}

// Decode reads a binary PPM. Samples with a max value below 255 are rescaled
// to the full byte range.
func Decode(r io.Reader) (*Frame, error) {
	br := bufio.NewReader(r)
	h, err := readHeader(br)
	if err != nil {
		return nil, err
	}
	f := &Frame{W: h.width, H: h.height, Pix: make([]uint32, h.width*h.height)}
	line := make([]byte, 3*h.width)
	for y := 0; y < h.height; y++ {
		if _, err := io.ReadFull(br, line); err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrFormat, y, err)
		}
		row := f.Row(y)
		for x := range row {
			r, g, b := line[3*x], line[3*x+1], line[3*x+2]
			if h.maxVal != 255 {
				r, g, b = rescale(r, h.maxVal), rescale(g, h.maxVal), rescale(b, h.maxVal)
			}
			row[x] = uint32(r) | uint32(g)<<8 | uint32(b)<<16 | 0xFF<<24
		}
	}
	return f, nil
}

func rescale(v byte, maxVal int) byte {
	if int(v) >= maxVal {
		return 0xFF
	}
	return byte(int(v) * 255 / maxVal)
}

// NRGBA converts the frame to an image.NRGBA.
func (f *Frame) NRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.W, f.H))
	for i, p := range f.Pix {
		img.Pix[4*i] = byte(p)
		img.Pix[4*i+1] = byte(p >> 8)
		img.Pix[4*i+2] = byte(p >> 16)
		img.Pix[4*i+3] = byte(p >> 24)
	}
	return img
}

func decodeImage(r io.Reader) (image.Image, error) {
	f, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return f.NRGBA(), nil
}

func decodeConfig(r io.Reader) (image.Config, error) {
	h, err := readHeader(bufio.NewReader(r))
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{ColorModel: color.NRGBAModel, Width: h.width, Height: h.height}, nil
}

func init() {
	image.RegisterFormat("ppm", Magic, decodeImage, decodeConfig)
}
