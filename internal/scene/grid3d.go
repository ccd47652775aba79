package scene

import (
	"math"
	"sort"

	"softraster/internal/mathutil"
	"softraster/internal/raster"
)

const (
	gridN     = 10
	gridPad   = 0.08
	gridNear  = 0.5
	dotRadius = 0.005
)

type dot struct {
	x, y, r int
	z       float64
	color   uint32
}

// renderGrid3D draws a cube of gridN³ dots in perspective, turning about
// its own centre an eighth of a revolution per second. Dots are drawn back
// to front so nearer ones cover farther ones.
func renderGrid3D(c *raster.Canvas, t float64) error {
	c.Fill(Background)
	vp := mathutil.Viewport{Width: c.Width(), Height: c.Height()}
	size := (gridN - 1) * gridPad
	center := mathutil.Vec3{0, 0, gridNear + size/2}
	rot := mathutil.Euler(0.1*math.Pi*t, 0.25*math.Pi*t, 0)

	dots := make([]dot, 0, gridN*gridN*gridN)
	for ix := 0; ix < gridN; ix++ {
		for iy := 0; iy < gridN; iy++ {
			for iz := 0; iz < gridN; iz++ {
				p := mathutil.Vec3{
					-size/2 + float64(ix)*gridPad,
					-size/2 + float64(iy)*gridPad,
					gridNear + float64(iz)*gridPad,
				}
				p = mathutil.RotateAbout(p, center, rot)
				x, y, ok := vp.Project(p)
				if !ok {
					continue
				}
				color := raster.Pack(uint8(ix*255/gridN), uint8(iy*255/gridN), uint8(iz*255/gridN), 0xFF)
				r := max(int(vp.ScaleAt(dotRadius, p[2])), 1)
				dots = append(dots, dot{int(x), int(y), r, p[2], color})
			}
		}
	}
	sort.Slice(dots, func(i, j int) bool { return dots[i].z > dots[j].z })
	for _, d := range dots {
		c.FillCircleAA(d.x, d.y, d.r, d.color)
	}
	return nil
}
