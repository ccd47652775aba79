// Package raster draws 2D primitives into caller-owned 32-bit pixel buffers.
//
// All drawing goes through a Canvas, a view onto a rectangle of pixels
// packed as little-endian RGBA. Writes either replace pixels or composite
// source-over, depending on the canvas mode; antialiased fills always
// composite.
package raster

import (
	"errors"
	"fmt"
)

var (
	// ErrBufferSize is returned when a pixel buffer does not match the
	// requested dimensions.
	ErrBufferSize = errors.New("raster: buffer size mismatch")

	// ErrOutOfBounds is returned when a sub-canvas does not fit inside its
	// backing store.
	ErrOutOfBounds = errors.New("raster: sub-canvas out of bounds")
)

// Canvas is a view onto a rectangle of 32-bit pixels. The pixels are borrowed
// from the caller; a Canvas never allocates pixel storage. Pixel (x, y) lives
// at index y*Stride()+x of the borrowed slice.
//
// A Canvas is not safe for concurrent use. Overlapping sub-canvases must not
// be written at the same time.
type Canvas struct {
	width  int
	height int
	stride int
	pix    []uint32

	blending bool
}

// New wraps buf as a width×height canvas. len(buf) must equal width*height.
func New(buf []uint32, width, height int) (*Canvas, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: negative size %dx%d", ErrBufferSize, width, height)
	}
	if len(buf) != width*height {
		return nil, fmt.Errorf("%w: %d pixels for %dx%d", ErrBufferSize, len(buf), width, height)
	}
	return &Canvas{
		width:  width,
		height: height,
		stride: width,
		pix:    buf,
	}, nil
}

// SubCanvas returns a width×height view whose top-left corner is (x, y) of a
// bufferWidth×bufferHeight pixel store. The view shares pixels with buf.
func SubCanvas(buf []uint32, x, y, width, height, bufferWidth, bufferHeight int) (*Canvas, error) {
	if len(buf) < bufferWidth*bufferHeight {
		return nil, fmt.Errorf("%w: %d pixels for %dx%d", ErrBufferSize, len(buf), bufferWidth, bufferHeight)
	}
	return subCanvas(buf, x, y, width, height, bufferWidth, bufferHeight, bufferWidth)
}

// Sub returns a view of the rectangle (x, y, width, height) of c. The new view
// starts in opaque mode regardless of c's mode.
func (c *Canvas) Sub(x, y, width, height int) (*Canvas, error) {
	return subCanvas(c.pix, x, y, width, height, c.width, c.height, c.stride)
}

func subCanvas(buf []uint32, x, y, width, height, boundWidth, boundHeight, stride int) (*Canvas, error) {
	if x < 0 || y < 0 || width < 0 || height < 0 ||
		x+width > boundWidth || y+height > boundHeight {
		return nil, fmt.Errorf("%w: (%d,%d %dx%d) in %dx%d",
			ErrOutOfBounds, x, y, width, height, boundWidth, boundHeight)
	}
	start := y*stride + x
	if start > len(buf) {
		start = len(buf)
	}
	return &Canvas{
		width:  width,
		height: height,
		stride: stride,
		pix:    buf[start:],
	}, nil
}

// Width returns the width of the view in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the height of the view in pixels.
func (c *Canvas) Height() int { return c.height }

// Stride returns the distance in pixels between the starts of two rows.
func (c *Canvas) Stride() int { return c.stride }

// BeginBlending makes later writes composite source-over instead of replacing.
func (c *Canvas) BeginBlending() { c.blending = true }

// EndBlending restores opaque replacement writes.
func (c *Canvas) EndBlending() { c.blending = false }

// Blending reports whether source-over blending is active.
func (c *Canvas) Blending() bool { return c.blending }

// Buffer returns the borrowed pixels, starting at the view's origin.
func (c *Canvas) Buffer() []uint32 { return c.pix }

// Row returns the pixels of row y. y must be in [0, Height()).
func (c *Canvas) Row(y int) []uint32 {
	start := y * c.stride
	return c.pix[start : start+c.width : start+c.width]
}

// At returns the pixel at (x, y), or 0 outside the view.
func (c *Canvas) At(x, y int) uint32 {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return 0
	}
	return c.pix[y*c.stride+x]
}

// setPixel writes a single pixel in the current mode, ignoring positions
// outside the view.
func (c *Canvas) setPixel(x, y int, color uint32) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.setPixelUnchecked(x, y, color)
}

func (c *Canvas) setPixelUnchecked(x, y int, color uint32) {
	i := y*c.stride + x
	if c.blending {
		c.pix[i] = Blend(c.pix[i], color)
	} else {
		c.pix[i] = color
	}
}

// blendPixelUnchecked always composites, whatever the canvas mode.
func (c *Canvas) blendPixelUnchecked(x, y int, color uint32) {
	i := y*c.stride + x
	c.pix[i] = Blend(c.pix[i], color)
}
