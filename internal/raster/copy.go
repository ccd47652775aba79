package raster

// Copy resamples src onto c with nearest-neighbour lookup, writing in c's
// current mode. Destination row y reads source row y*srcHeight/dstHeight and
// destination column x reads source column x*srcWidth/dstWidth.
func (c *Canvas) Copy(src *Canvas) {
	if c.width == 0 || c.height == 0 || src.width == 0 || src.height == 0 {
		return
	}
	for y := 0; y < c.height; y++ {
		sy := y * src.height / c.height
		srcRow := src.Row(sy)
		dstRow := c.Row(y)
		if c.blending {
			for x := range dstRow {
				dstRow[x] = Blend(dstRow[x], srcRow[x*src.width/c.width])
			}
			continue
		}
		for x := range dstRow {
			dstRow[x] = srcRow[x*src.width/c.width]
		}
	}
}
