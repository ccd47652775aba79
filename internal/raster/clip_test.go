package raster

import "testing"

func TestBoxClip(t *testing.T) {
	tests := []struct {
		name   string
		in     Segment
		want   Segment
		wantOK bool
	}{
		{
			name:   "inside unchanged",
			in:     Segment{1, 2, 10, 12},
			want:   Segment{1, 2, 10, 12},
			wantOK: true,
		},
		{
			name:   "horizontal through",
			in:     Segment{-4, 8, 20, 8},
			want:   Segment{0, 8, 15.9, 8},
			wantOK: true,
		},
		{
			name:   "vertical through",
			in:     Segment{3, -10, 3, 30},
			want:   Segment{3, 0, 3, 15.9},
			wantOK: true,
		},
		{
			name:   "both left",
			in:     Segment{-5, 1, -1, 10},
			wantOK: false,
		},
		{
			name:   "both above",
			in:     Segment{2, 20, 10, 17},
			wantOK: false,
		},
		{
			name:   "corner miss",
			in:     Segment{-10, 1, 1, -10},
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := BoxClip(tt.in, 0, 0, 15.9, 15.9)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v (got %+v)", ok, tt.wantOK, got)
			}
			if ok && got != tt.want {
				t.Errorf("BoxClip = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBoxClipDiagonal(t *testing.T) {
	got, ok := BoxClip(Segment{-5, -5, 20, 20}, 0, 0, 10, 10)
	if !ok {
		t.Fatal("diagonal through the box was rejected")
	}
	want := Segment{0, 0, 10, 10}
	for i, d := range []float32{got.X0 - want.X0, got.Y0 - want.Y0, got.X1 - want.X1, got.Y1 - want.Y1} {
		if d < -1e-4 || d > 1e-4 {
			t.Errorf("coordinate %d off by %g: got %+v, want %+v", i, d, got, want)
		}
	}
}

func TestBoxClipInvertedBox(t *testing.T) {
	if _, ok := BoxClip(Segment{0, 0, 1, 1}, 0, 0, -0.1, 5); ok {
		t.Error("inverted box accepted a segment")
	}
}

func TestBoxClipResultInside(t *testing.T) {
	const xMax, yMax = 31.9, 23.9
	for i := -40; i <= 70; i += 7 {
		for j := -30; j <= 60; j += 9 {
			s := Segment{float32(i), float32(j), float32(70 - i), float32(50 - j)}
			got, ok := BoxClip(s, 0, 0, xMax, yMax)
			if !ok {
				continue
			}
			for _, p := range [][2]float32{{got.X0, got.Y0}, {got.X1, got.Y1}} {
				if p[0] < 0 || p[0] > xMax || p[1] < 0 || p[1] > yMax {
					t.Fatalf("BoxClip(%+v) = %+v, endpoint %v outside the box", s, got, p)
				}
			}
		}
	}
}
