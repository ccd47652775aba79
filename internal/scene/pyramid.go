package scene

import (
	"math"
	"sort"

	"softraster/internal/mathutil"
	"softraster/internal/raster"
)

const (
	pyramidDepth  = 1.5
	pyramidRadius = 0.5
	edgeColor     = 0xFFE0E0E0
)

type vertex struct {
	p     mathutil.Vec3
	color uint32
}

type face [3]vertex

func (f face) depth() float64 {
	return (f[0].p[2] + f[1].p[2] + f[2].p[2]) / 3
}

// renderPyramid spins a square pyramid about the vertical axis. Each face is
// a colour-interpolated triangle outlined with lines, painted farthest first.
func renderPyramid(c *raster.Canvas, t float64) error {
	c.Fill(Background)
	vp := mathutil.Viewport{Width: c.Width(), Height: c.Height(), FlipY: true}

	apex := vertex{mathutil.Vec3{0, pyramidRadius, pyramidDepth}, 0xFFFFFFFF}
	colors := wheel(4, 90*t, 0.7, 0.6)
	var base [4]vertex
	for k := range base {
		s, co := math.Sincos(t + float64(k)*math.Pi/2)
		base[k] = vertex{
			p:     mathutil.Vec3{co * pyramidRadius, -pyramidRadius, pyramidDepth + s*pyramidRadius},
			color: colors[k],
		}
	}
	faces := make([]face, 0, 6)
	for k := range base {
		faces = append(faces, face{apex, base[k], base[(k+1)%4]})
	}
	faces = append(faces, face{base[0], base[1], base[2]}, face{base[0], base[2], base[3]})
	sort.SliceStable(faces, func(i, j int) bool { return faces[i].depth() > faces[j].depth() })

	for _, f := range faces {
		var xs, ys [3]int
		for i, v := range f {
			x, y, ok := vp.Project(v.p)
			if !ok {
				return nil
			}
			xs[i], ys[i] = int(x), int(y)
		}
		c.FillTriangleMix(xs[0], ys[0], f[0].color, xs[1], ys[1], f[1].color, xs[2], ys[2], f[2].color)
		for i := range f {
			j := (i + 1) % 3
			c.DrawLine(xs[i], ys[i], xs[j], ys[j], edgeColor)
		}
	}
	return nil
}
