package core

import (
	"math"
	"testing"
)

func TestRectFIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        RectF{X: 0, Y: 0, W: 10, H: 10},
			b:        RectF{X: 5, Y: 5, W: 10, H: 10},
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        RectF{X: 0, Y: 0, W: 10, H: 10},
			b:        RectF{X: 15, Y: 0, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        RectF{X: 0, Y: 0, W: 10, H: 10},
			b:        RectF{X: 0, Y: 15, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "touching edges (no overlap)",
			a:        RectF{X: 0, Y: 0, W: 10, H: 10},
			b:        RectF{X: 10, Y: 0, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "contained rect",
			a:        RectF{X: 0, Y: 0, W: 20, H: 20},
			b:        RectF{X: 5, Y: 5, W: 5, H: 5},
			expected: true,
		},
		{
			name:     "tiny corner overlap",
			a:        RectF{X: 0, Y: 0, W: 10, H: 10},
			b:        RectF{X: 9.5, Y: 9.5, W: 10, H: 10},
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectAround(t *testing.T) {
	r := RectAround(Vec2{X: 100, Y: 50}, 30)

	if r.X != 85 || r.Y != 35 {
		t.Errorf("RectAround top-left = (%v, %v), expected (85, 35)", r.X, r.Y)
	}
	if r.W != 30 || r.H != 30 {
		t.Errorf("RectAround size = (%v, %v), expected (30, 30)", r.W, r.H)
	}
}

func TestVec2Norm(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
		want Vec2
	}{
		{"unit x", Vec2{X: 5, Y: 0}, Vec2{X: 1, Y: 0}},
		{"unit y", Vec2{X: 0, Y: -3}, Vec2{X: 0, Y: -1}},
		{"zero vector", Vec2{}, Vec2{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Norm()
			if math.Abs(got.X-tc.want.X) > 1e-9 || math.Abs(got.Y-tc.want.Y) > 1e-9 {
				t.Errorf("Norm() = %+v, expected %+v", got, tc.want)
			}
		})
	}

	diag := Vec2{X: 3, Y: 4}.Norm()
	if math.Abs(diag.Len()-1.0) > 1e-9 {
		t.Errorf("Norm() length = %v, expected 1", diag.Len())
	}
}

func TestVec2Dist(t *testing.T) {
	a := Vec2{X: 0, Y: 0}
	b := Vec2{X: 3, Y: 4}
	if d := a.Dist(b); math.Abs(d-5) > 1e-9 {
		t.Errorf("Dist() = %v, expected 5", d)
	}
	if d := b.Dist(a); math.Abs(d-5) > 1e-9 {
		t.Errorf("Dist() (reversed) = %v, expected 5", d)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 5) // x in [2,6), y in [3,8)

	inside := [][2]int{{2, 3}, {5, 7}, {3, 5}}
	for _, p := range inside {
		if !r.Contains(p[0], p[1]) {
			t.Errorf("Contains(%d, %d) = false, expected true", p[0], p[1])
		}
	}

	outside := [][2]int{{1, 3}, {2, 2}, {6, 3}, {2, 8}, {-1, -1}}
	for _, p := range outside {
		if r.Contains(p[0], p[1]) {
			t.Errorf("Contains(%d, %d) = true, expected false", p[0], p[1])
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		name          string
		val, min, max float64
		expected      float64
	}{
		{"below min", -5, 0, 10, 0},
		{"above max", 15, 0, 10, 10},
		{"within range", 5, 0, 10, 5},
		{"at min", 0, 0, 10, 0},
		{"at max", 10, 0, 10, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
				t.Errorf("ClampF(%v, %v, %v) = %v, expected %v",
					tc.val, tc.min, tc.max, got, tc.expected)
			}
		})
	}
}
