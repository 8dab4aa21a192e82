package core

import (
	"math"
	"testing"
)

const floatTol = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < floatTol
}

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{X: 1, Y: 2}
	b := Vec2{X: 3, Y: -1}

	sum := a.Add(b)
	if sum.X != 4 || sum.Y != 1 {
		t.Errorf("Add = %v, expected {4 1}", sum)
	}

	diff := a.Sub(b)
	if diff.X != -2 || diff.Y != 3 {
		t.Errorf("Sub = %v, expected {-2 3}", diff)
	}

	scaled := a.Scale(2)
	if scaled.X != 2 || scaled.Y != 4 {
		t.Errorf("Scale = %v, expected {2 4}", scaled)
	}

	if !almostEqual((Vec2{X: 3, Y: 4}).Len(), 5) {
		t.Errorf("Len of {3 4} = %v, expected 5", (Vec2{X: 3, Y: 4}).Len())
	}
}

func TestRotate(t *testing.T) {
	tests := []struct {
		name     string
		p        Vec2
		center   Vec2
		angle    float64
		expected Vec2
	}{
		{"zero rotation", Vec2{X: 3, Y: 4}, Vec2{}, 0, Vec2{X: 3, Y: 4}},
		{"90 degrees about origin", Vec2{X: 1, Y: 0}, Vec2{}, 90, Vec2{X: 0, Y: 1}},
		{"180 degrees about origin", Vec2{X: 1, Y: 0}, Vec2{}, 180, Vec2{X: -1, Y: 0}},
		{"-90 degrees about origin", Vec2{X: 1, Y: 0}, Vec2{}, -90, Vec2{X: 0, Y: -1}},
		{"90 degrees about center", Vec2{X: 2, Y: 1}, Vec2{X: 1, Y: 1}, 90, Vec2{X: 1, Y: 2}},
		{"full turn is identity", Vec2{X: 5, Y: -7}, Vec2{X: 2, Y: 3}, 360, Vec2{X: 5, Y: -7}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Rotate(tc.p, tc.center, tc.angle)
			if !almostEqual(got.X, tc.expected.X) || !almostEqual(got.Y, tc.expected.Y) {
				t.Errorf("Rotate(%v, %v, %v) = %v, expected %v", tc.p, tc.center, tc.angle, got, tc.expected)
			}
		})
	}
}

func TestRotateCenterInvariant(t *testing.T) {
	center := Vec2{X: 4, Y: -2}
	for _, angle := range []float64{0, 33, 90, 181, 270, 359} {
		got := Rotate(center, center, angle)
		if !almostEqual(got.X, center.X) || !almostEqual(got.Y, center.Y) {
			t.Errorf("rotating the center by %v moved it to %v", angle, got)
		}
	}
}

func TestSegmentIntersect(t *testing.T) {
	tests := []struct {
		name       string
		a, b, c, d Vec2
		wantHit    bool
		wantPoint  Vec2
	}{
		{
			name: "crossing at center",
			a:    Vec2{X: 0, Y: 0}, b: Vec2{X: 2, Y: 2},
			c: Vec2{X: 0, Y: 2}, d: Vec2{X: 2, Y: 0},
			wantHit: true, wantPoint: Vec2{X: 1, Y: 1},
		},
		{
			name: "parallel segments",
			a:    Vec2{X: 0, Y: 0}, b: Vec2{X: 2, Y: 0},
			c: Vec2{X: 0, Y: 1}, d: Vec2{X: 2, Y: 1},
			wantHit: false,
		},
		{
			name: "collinear segments do not count",
			a:    Vec2{X: 0, Y: 0}, b: Vec2{X: 2, Y: 0},
			c: Vec2{X: 1, Y: 0}, d: Vec2{X: 3, Y: 0},
			wantHit: false,
		},
		{
			name: "lines cross beyond first segment",
			a:    Vec2{X: 0, Y: 0}, b: Vec2{X: 1, Y: 1},
			c: Vec2{X: 0, Y: 4}, d: Vec2{X: 4, Y: 0},
			wantHit: false,
		},
		{
			name: "lines cross beyond second segment",
			a:    Vec2{X: 0, Y: 0}, b: Vec2{X: 0, Y: 4},
			c: Vec2{X: 1, Y: 2}, d: Vec2{X: 3, Y: 2},
			wantHit: false,
		},
		{
			name: "touching at endpoint",
			a:    Vec2{X: 0, Y: 0}, b: Vec2{X: 2, Y: 0},
			c: Vec2{X: 2, Y: 0}, d: Vec2{X: 2, Y: 2},
			wantHit: true, wantPoint: Vec2{X: 2, Y: 0},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, hit := SegmentIntersect(tc.a, tc.b, tc.c, tc.d)
			if hit != tc.wantHit {
				t.Fatalf("SegmentIntersect hit = %v, expected %v", hit, tc.wantHit)
			}
			if hit && (!almostEqual(p.X, tc.wantPoint.X) || !almostEqual(p.Y, tc.wantPoint.Y)) {
				t.Errorf("intersection point = %v, expected %v", p, tc.wantPoint)
			}
		})
	}
}

func TestRectF(t *testing.T) {
	r := NewRectF(10, 20, 30, 5)

	if r.Right() != 40 {
		t.Errorf("Right() = %v, expected 40", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}
	if r.CenterX() != 25 {
		t.Errorf("CenterX() = %v, expected 25", r.CenterX())
	}

	// Edges are inclusive
	if !r.ContainsX(10) || !r.ContainsX(40) || !r.ContainsX(25) {
		t.Error("ContainsX should include both edges")
	}
	if r.ContainsX(9.999) || r.ContainsX(40.001) {
		t.Error("ContainsX should exclude points outside the span")
	}
}
