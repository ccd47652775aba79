package mathutil

import "math"

// RotX returns a 3×3 rotation matrix around the X axis. Angle in radians.
func RotX(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}
}

// RotY returns a 3×3 rotation matrix around the Y axis.
func RotY(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}
}

// RotZ returns a 3×3 rotation matrix around the Z axis.
func RotZ(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}

// Euler returns Rz(z) × Ry(y) × Rx(x): x is applied first.
func Euler(x, y, z float64) Mat3 {
	return Mat3Mul(Mat3Mul(RotZ(z), RotY(y)), RotX(x))
}

// RotateAbout rotates p by m around pivot.
func RotateAbout(p, pivot Vec3, m Mat3) Vec3 {
	return m.MulVec3(p.Sub(pivot)).Add(pivot)
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}

// Rotate2D turns (x, y) by angle radians around (cx, cy).
func Rotate2D(x, y, cx, cy, angle float64) (float64, float64) {
	s, c := math.Sincos(angle)
	dx, dy := x-cx, y-cy
	return cx + dx*c - dy*s, cy + dx*s + dy*c
}
