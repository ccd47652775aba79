package scene

import (
	"math"

	"softraster/internal/asset"
	"softraster/internal/raster"
)

// newSquish returns a scene that copies an image into a bottom-centred view
// whose width and height swing in opposition, three times a second. Without
// an asset it squishes a generated tile.
func newSquish(env Env) renderFunc {
	img := env.Asset
	if img == nil {
		img = patternImage(64)
	}
	return func(c *raster.Canvas, t float64) error {
		src, err := img.Canvas()
		if err != nil {
			return err
		}
		c.Fill(Background)
		d := math.Sin(2 * math.Pi * 3 * t)
		base := float64(min(c.Width(), c.Height())) * 2 / 3
		w := min(max(int(base*(1-0.2*d)), 1), c.Width())
		h := min(max(int(base*(1+0.2*d)), 1), c.Height())
		view, err := c.Sub((c.Width()-w)/2, c.Height()-h, w, h)
		if err != nil {
			return err
		}
		view.Copy(src)
		return nil
	}
}

// patternImage draws a size×size tile of coloured quadrants with a ring.
func patternImage(size int) *asset.Image {
	pix := make([]uint32, size*size)
	c, _ := raster.New(pix, size, size)
	colors := wheel(4, 20, 0.6, 0.6)
	half := size / 2
	c.FillRect(0, 0, half, half, colors[0])
	c.FillRect(half, 0, size-half, half, colors[1])
	c.FillRect(0, half, half, size-half, colors[2])
	c.FillRect(half, half, size-half, size-half, colors[3])
	c.FillCircle(half, half, size/3, 0xFFFFFFFF)
	c.FillCircle(half, half, size/4, Background)
	return &asset.Image{Width: size, Height: size, Pix: pix}
}
