package mathutil

import (
	"math"
	"testing"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func nearVec(a, b Vec3) bool {
	return near(a[0], b[0]) && near(a[1], b[1]) && near(a[2], b[2])
}

func TestVec3(t *testing.T) {
	a, b := Vec3{1, 0, 0}, Vec3{0, 1, 0}
	if got := a.Cross(b); got != (Vec3{0, 0, 1}) {
		t.Errorf("x × y = %v, want z", got)
	}
	if got := a.Add(b).Sub(a); got != b {
		t.Errorf("a+b-a = %v, want b", got)
	}
	if got := (Vec3{3, 4, 0}).Len(); got != 5 {
		t.Errorf("Len = %v, want 5", got)
	}
	if got := (Vec3{0, 0, 2}).Normalize(); got != (Vec3{0, 0, 1}) {
		t.Errorf("Normalize = %v", got)
	}
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("Normalize(0) = %v, want zero", got)
	}
	if got := Lerp(Vec3{0, 0, 0}, Vec3{2, 4, 6}, 0.5); got != (Vec3{1, 2, 3}) {
		t.Errorf("Lerp = %v", got)
	}
}

func TestRotations(t *testing.T) {
	q := math.Pi / 2
	tests := []struct {
		name string
		m    Mat3
		in   Vec3
		want Vec3
	}{
		{"x turns y into z", RotX(q), Vec3{0, 1, 0}, Vec3{0, 0, 1}},
		{"y turns z into x", RotY(q), Vec3{0, 0, 1}, Vec3{1, 0, 0}},
		{"z turns x into y", RotZ(q), Vec3{1, 0, 0}, Vec3{0, 1, 0}},
		{"euler applies x first", Euler(q, 0, q), Vec3{0, 1, 0}, Vec3{0, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.MulVec3(tt.in); !nearVec(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTransposeInvertsRotation(t *testing.T) {
	m := Euler(0.3, -1.1, 2.0)
	id := Mat3Mul(m, m.Transpose())
	want := Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}
	for i := range id {
		if !near(id[i], want[i]) {
			t.Fatalf("M Mᵀ = %v, want identity", id)
		}
	}
}

func TestRotateAbout(t *testing.T) {
	got := RotateAbout(Vec3{1, 0, 2}, Vec3{0, 0, 2}, RotY(math.Pi))
	if !nearVec(got, Vec3{-1, 0, 2}) {
		t.Errorf("RotateAbout = %v, want (-1,0,2)", got)
	}
	x, y := Rotate2D(2, 1, 1, 1, math.Pi/2)
	if !near(x, 1) || !near(y, 2) {
		t.Errorf("Rotate2D = (%v,%v), want (1,2)", x, y)
	}
	if !near(Deg2Rad(180), math.Pi) {
		t.Error("Deg2Rad(180) != π")
	}
}

func TestProject(t *testing.T) {
	vp := Viewport{Width: 800, Height: 600}
	x, y, ok := vp.Project(Vec3{0, 0, 1})
	if !ok || x != 400 || y != 300 {
		t.Errorf("centre = (%v,%v,%v), want (400,300,true)", x, y, ok)
	}
	x, y, ok = vp.Project(Vec3{1, 1, 2})
	if !ok || x != 600 || y != 450 {
		t.Errorf("(1,1,2) = (%v,%v), want (600,450)", x, y)
	}
	vp.FlipY = true
	if _, y, _ = vp.Project(Vec3{1, 1, 2}); y != 150 {
		t.Errorf("flipped y = %v, want 150", y)
	}
	if _, _, ok = vp.Project(Vec3{0, 0, -1}); ok {
		t.Error("point behind the camera projected")
	}
	if got := vp.ScaleAt(0.01, 2); !near(got, 4) {
		t.Errorf("ScaleAt = %v, want 4", got)
	}
	if got := vp.ScaleAt(1, 0); got != 0 {
		t.Errorf("ScaleAt at z=0 = %v, want 0", got)
	}
}
