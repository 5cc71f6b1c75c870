// seehuhn.de/go/rasterizer - a software triangle rasterizer
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package rasterizer

import (
	"errors"
	"image"
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// countTarget records how often each pixel was written, and the last
// value written.
type countTarget struct {
	w, h   int
	writes []int
	pix    []Pixel
}

func newCountTarget(w, h int) *countTarget {
	return &countTarget{
		w:      w,
		h:      h,
		writes: make([]int, w*h),
		pix:    make([]Pixel, w*h),
	}
}

func (t *countTarget) Width() int  { return t.w }
func (t *countTarget) Height() int { return t.h }

func (t *countTarget) SetPixel(x, y int, p Pixel) {
	if x < 0 || x >= t.w || y < 0 || y >= t.h {
		panic("pixel outside the target")
	}
	t.writes[y*t.w+x]++
	t.pix[y*t.w+x] = p
}

func (t *countTarget) total() int {
	n := 0
	for _, c := range t.writes {
		n += c
	}
	return n
}

// positionShader passes image coordinates through, with no data.
var positionShader = VertexFunc[vec.Vec2, Scalar](func(p vec.Vec2) Vertex[Scalar] {
	return Vertex[Scalar]{Coord: p}
})

// coordShader attaches the vertex position as color, so that the
// interpolated R and G channels equal the sample position.
var coordShader = VertexFunc[vec.Vec2, Color](func(p vec.Vec2) Vertex[Color] {
	return Vertex[Color]{Coord: p, Data: Color{R: p.X, G: p.Y, A: 1}}
})

var white = SolidFragment[Scalar]{Value: Pixel{1, 1, 1, 1}}

func newTestRasterizer(t testing.TB, target Target, opts ...Option) *Rasterizer[vec.Vec2, Scalar] {
	t.Helper()
	r, err := New[vec.Vec2, Scalar](target, positionShader, white, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func p(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func TestNewErrors(t *testing.T) {
	good := newCountTarget(10, 10)
	cases := []struct {
		name   string
		target Target
		vs     VertexShader[vec.Vec2, Scalar]
		fs     FragmentShader[Scalar]
		opts   []Option
		want   error
	}{
		{"nil target", nil, positionShader, white, nil, ErrInvalidTarget},
		{"zero width", newCountTarget(0, 10), positionShader, white, nil, ErrInvalidTarget},
		{"zero height", newCountTarget(10, 0), positionShader, white, nil, ErrInvalidTarget},
		{"zero capacity", good, positionShader, white, []Option{WithCapacity(0)}, ErrInvalidCapacity},
		{"negative capacity", good, positionShader, white, []Option{WithCapacity(-3)}, ErrInvalidCapacity},
		{"nil vertex shader", good, nil, white, nil, ErrNilShader},
		{"nil fragment shader", good, positionShader, nil, nil, ErrNilShader},
		{"nil clamping", good, positionShader, white, []Option{WithClamping(nil)}, ErrNilClamping},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := New[vec.Vec2, Scalar](c.target, c.vs, c.fs, c.opts...)
			if !errors.Is(err, c.want) {
				t.Errorf("expected %v, got %v", c.want, err)
			}
			if r != nil {
				t.Error("expected nil rasterizer on error")
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	r := newTestRasterizer(t, newCountTarget(3, 3))
	if r.Capacity() != DefaultCapacity {
		t.Errorf("expected capacity %d, got %d", DefaultCapacity, r.Capacity())
	}
	if _, ok := r.clamp.(CenterPixel); !ok {
		t.Errorf("expected CenterPixel, got %T", r.clamp)
	}
	if r.Stats() != nil {
		t.Error("expected no statistics by default")
	}
	if r.Pending() != 0 {
		t.Errorf("expected no pending rasterlines, got %d", r.Pending())
	}
}

// TestSmallTriangle checks the rasterlines generated for a small triangle
// with a horizontal top edge.
func TestSmallTriangle(t *testing.T) {
	type span struct{ y, start, end int }
	cases := []struct {
		name      string
		policy    ClampingPolicy
		spans     []span
		fragments int
	}{
		{
			name:   "center",
			policy: CenterPixel{},
			spans: []span{
				{2, 2, 8}, {3, 3, 7}, {4, 3, 7}, {5, 4, 6}, {6, 4, 6}, {7, 5, 5},
			},
			fragments: 18,
		},
		{
			name:   "corner",
			policy: CornerPixel{},
			spans: []span{
				{2, 2, 8}, {3, 3, 8}, {4, 3, 7}, {5, 4, 7}, {6, 4, 6}, {7, 5, 6},
			},
			fragments: 21,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			stats := &Stats{}
			target := newCountTarget(10, 10)
			r := newTestRasterizer(t, target, WithClamping(c.policy), WithStats(stats))

			r.DrawTriangle(p(2, 2), p(8, 2), p(5, 8))

			if r.Pending() != len(c.spans) {
				t.Fatalf("expected %d rasterlines, got %d", len(c.spans), r.Pending())
			}
			for i, line := range r.lines.buf {
				got := span{line.Y, line.StartX, line.EndX}
				if got != c.spans[i] {
					t.Errorf("rasterline %d: expected %v, got %v", i, c.spans[i], got)
				}
			}
			if target.total() != 0 {
				t.Error("pixels written before flush")
			}

			if err := r.Close(); err != nil {
				t.Fatal(err)
			}
			want := Stats{
				Triangles:   1,
				Rasterlines: 6,
				Flushes:     1,
				Fragments:   c.fragments,
			}
			if *stats != want {
				t.Errorf("expected %v, got %v", want, *stats)
			}
			if target.total() != c.fragments {
				t.Errorf("expected %d pixels, got %d", c.fragments, target.total())
			}
		})
	}
}

func TestCulling(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)
	cases := []struct {
		name      string
		a, b, c   vec.Vec2
		discarded bool
	}{
		{"left", p(-5, 1), p(-1, 2), p(-3, 8), true},
		{"right", p(10, 1), p(12, 2), p(11, 5), true},
		{"above", p(1, -5), p(8, -1), p(4, -0.01), true},
		{"below", p(1, 10), p(8, 12), p(4, 11), true},
		{"nan", p(1, 1), p(nan, 5), p(8, 8), true},
		{"inf", p(1, 1), p(5, 5), p(8, inf), true},
		{"touching", p(-5, 1), p(0, 2), p(-3, 8), false},
		{"straddling", p(-5, -5), p(20, 5), p(5, 20), false},
		{"inside", p(1, 1), p(8, 2), p(4, 8), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			stats := &Stats{}
			target := newCountTarget(10, 10)
			r := newTestRasterizer(t, target, WithStats(stats))
			r.DrawTriangle(c.a, c.b, c.c)
			r.Close()

			if stats.Triangles != 1 {
				t.Errorf("expected 1 triangle, got %d", stats.Triangles)
			}
			if got := stats.DiscardedTriangles == 1; got != c.discarded {
				t.Errorf("expected discarded=%t, got %t", c.discarded, got)
			}
			if c.discarded && (stats.Rasterlines != 0 || target.total() != 0) {
				t.Errorf("discarded triangle produced output: %v", *stats)
			}
		})
	}
}

func TestHorizontalTriangle(t *testing.T) {
	stats := &Stats{}
	target := newCountTarget(10, 10)
	r := newTestRasterizer(t, target, WithStats(stats))
	r.DrawTriangle(p(1, 5), p(4, 5), p(8, 5))
	r.Close()

	if stats.DiscardedTriangles != 0 {
		t.Errorf("expected no discarded triangles, got %d", stats.DiscardedTriangles)
	}
	if stats.Rasterlines != 0 || stats.Flushes != 0 || target.total() != 0 {
		t.Errorf("expected no output, got %v", *stats)
	}
}

func TestOrientation(t *testing.T) {
	triangles := [][3]vec.Vec2{
		{p(2, 2), p(8, 2), p(5, 8)},
		{p(1.3, 0.7), p(8.9, 4.2), p(3.6, 9.1)},
		{p(5, 1), p(9, 9), p(1, 9)},
		{p(0.5, 0.5), p(9.5, 5), p(0.5, 9.5)},
	}
	perms := [][3]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
	for i, tri := range triangles {
		for _, policy := range []ClampingPolicy{CenterPixel{}, CornerPixel{}} {
			var ref []int
			for _, perm := range perms {
				target := newCountTarget(10, 10)
				r := newTestRasterizer(t, target, WithClamping(policy))
				r.DrawTriangle(tri[perm[0]], tri[perm[1]], tri[perm[2]])
				r.Close()

				if target.total() == 0 {
					t.Errorf("triangle %d, %T %v: nothing drawn", i, policy, perm)
				}
				if ref == nil {
					ref = target.writes
				} else if !slices.Equal(ref, target.writes) {
					t.Errorf("triangle %d, %T: order %v gives a different image", i, policy, perm)
				}
			}
		}
	}
}

// TestSharedEdge checks that two triangles which share an edge write every
// pixel exactly once.
func TestSharedEdge(t *testing.T) {
	target := newCountTarget(10, 10)
	r := newTestRasterizer(t, target)
	r.DrawTriangle(p(1, 1), p(9, 1), p(9, 9))
	r.DrawTriangle(p(1, 1), p(9, 9), p(1, 9))
	r.Close()

	for y := range 10 {
		for x := range 10 {
			want := 0
			if x >= 1 && x < 9 && y >= 1 && y < 9 {
				want = 1
			}
			if got := target.writes[y*10+x]; got != want {
				t.Errorf("pixel (%d, %d): expected %d writes, got %d", x, y, want, got)
			}
		}
	}
}

// TestFlatTop checks a flat-topped triangle whose bottom vertex lies
// beyond the right end of the top edge.
func TestFlatTop(t *testing.T) {
	for _, policy := range []ClampingPolicy{CenterPixel{}, CornerPixel{}} {
		target := newCountTarget(20, 4)
		r := newTestRasterizer(t, target, WithClamping(policy))
		r.DrawTriangle(p(0, 0), p(10, 0), p(15, 1))
		r.Close()

		// Row 0 samples the triangle at y=0.5 (center) or y=0 (corner).
		var from, to int
		switch policy.(type) {
		case CenterPixel:
			from, to = 7, 12 // sample x+0.5 in [7.5, 12.5)
		case CornerPixel:
			from, to = 0, 10 // x in [0, 10)
		}
		for x := range 20 {
			want := 0
			if x >= from && x < to {
				want = 1
			}
			if got := target.writes[x]; got != want {
				t.Errorf("%T: pixel (%d, 0): expected %d writes, got %d", policy, x, want, got)
			}
		}
	}
}

func TestInterpolation(t *testing.T) {
	cases := []struct {
		name   string
		policy ClampingPolicy
		offset float32
	}{
		{"center", CenterPixel{}, 0.5},
		{"corner", CornerPixel{}, 0},
	}
	triangles := [][3]vec.Vec2{
		{p(0.3, 0.2), p(19.1, 1.7), p(6.2, 18.9)},
		{p(-7.5, 3.3), p(12.25, -4), p(30, 25.5)}, // clipped on all sides
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			target := newCountTarget(20, 20)
			for _, tri := range triangles {
				r, err := New[vec.Vec2, Color](target, coordShader, ColorFragment{}, WithClamping(c.policy))
				if err != nil {
					t.Fatal(err)
				}
				r.DrawTriangle(tri[0], tri[1], tri[2])
				r.Close()
			}

			if target.total() == 0 {
				t.Fatal("nothing drawn")
			}
			for y := range 20 {
				for x := range 20 {
					i := y*20 + x
					if target.writes[i] == 0 {
						continue
					}
					got := target.pix[i]
					wantX := float32(x) + c.offset
					wantY := float32(y) + c.offset
					if math.Abs(float64(got[0]-wantX)) > 1e-4 || math.Abs(float64(got[1]-wantY)) > 1e-4 {
						t.Errorf("pixel (%d, %d): expected data (%g, %g), got (%g, %g)",
							x, y, wantX, wantY, got[0], got[1])
					}
				}
			}
		})
	}
}

func TestAutoFlush(t *testing.T) {
	stats := &Stats{}
	target := newCountTarget(10, 10)
	r := newTestRasterizer(t, target, WithCapacity(4), WithStats(stats))

	r.DrawTriangle(p(2, 2), p(8, 2), p(5, 8)) // six rasterlines
	if stats.Flushes != 1 {
		t.Errorf("expected 1 flush, got %d", stats.Flushes)
	}
	if r.Pending() != 2 {
		t.Errorf("expected 2 pending rasterlines, got %d", r.Pending())
	}
	if target.total() != 6+4+4+2 {
		t.Errorf("expected 16 pixels after the first flush, got %d", target.total())
	}

	r.Close()
	if stats.Flushes != 2 || r.Pending() != 0 {
		t.Errorf("expected 2 flushes and nothing pending, got %d and %d", stats.Flushes, r.Pending())
	}
	if target.total() != 18 {
		t.Errorf("expected 18 pixels, got %d", target.total())
	}
}

func TestFlush(t *testing.T) {
	stats := &Stats{}
	target := newCountTarget(10, 10)
	r := newTestRasterizer(t, target, WithStats(stats))

	r.Flush()
	if stats.Flushes != 0 {
		t.Errorf("flush of an empty buffer was counted")
	}

	r.DrawTriangle(p(1, 1), p(9, 1), p(9, 9))
	r.Flush()
	n := target.total()
	r.Flush()
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}
	if target.total() != n {
		t.Errorf("repeated flushes wrote %d extra pixels", target.total()-n)
	}
	if stats.Flushes != 1 {
		t.Errorf("expected 1 flush, got %d", stats.Flushes)
	}
}

func TestClampedRasterline(t *testing.T) {
	cases := []struct {
		name       string
		x0, x1     float64
		ok         bool
		start, end int
		startData  Scalar
		clamped    bool
	}{
		{"inside", 2.2, 6.7, true, 2, 7, 2.5, false},
		{"left", -5, 3, true, 0, 3, 0.5, true},
		{"right", 6.2, 14, true, 6, 10, 6.5, true},
		{"both", -3, 13, true, 0, 10, 0.5, true},
		{"empty", 4.6, 4.9, true, 5, 5, 5.5, false},
		{"reversed", 5, 2, false, 0, 0, 0, false},
		{"zero width", 3, 3, false, 0, 0, 0, false},
		{"all left", -8, -0.5, false, 0, 0, 0, false},
		{"all right", 10, 12, false, 0, 0, 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			stats := &Stats{}
			r := newTestRasterizer(t, newCountTarget(10, 10), WithStats(stats))

			// data equals the x coordinate
			line, ok := r.clampedRasterline(3, c.x0, c.x1, Scalar(c.x0), Scalar(c.x1))
			if ok != c.ok {
				t.Fatalf("expected ok=%t, got %t", c.ok, ok)
			}
			if stats.Rasterlines != 1 {
				t.Errorf("expected 1 rasterline, got %d", stats.Rasterlines)
			}
			if !ok {
				if stats.DiscardedRasterlines != 1 {
					t.Errorf("expected 1 discarded rasterline, got %d", stats.DiscardedRasterlines)
				}
				return
			}

			if line.Y != 3 || line.StartX != c.start || line.EndX != c.end {
				t.Errorf("expected row 3 [%d, %d), got row %d [%d, %d)",
					c.start, c.end, line.Y, line.StartX, line.EndX)
			}
			if math.Abs(float64(line.StartData-c.startData)) > 1e-9 {
				t.Errorf("expected start data %g, got %g", c.startData, line.StartData)
			}
			if math.Abs(float64(line.Delta-1)) > 1e-9 {
				t.Errorf("expected delta 1, got %g", line.Delta)
			}
			if line.StartX < 0 || line.StartX > line.EndX || line.EndX > 10 {
				t.Errorf("invalid range [%d, %d)", line.StartX, line.EndX)
			}
			if got := stats.ClampedRasterlines == 1; got != c.clamped {
				t.Errorf("expected clamped=%t, got %t", c.clamped, got)
			}
		})
	}
}

func TestRowsOutside(t *testing.T) {
	stats := &Stats{}
	target := newCountTarget(8, 8)
	r := newTestRasterizer(t, target, WithStats(stats))

	// a tall triangle, most of which is above and below the image
	r.DrawTriangle(p(-1e6, -1e6), p(1e6, -1e6), p(4, 1e6))
	r.Close()

	if stats.Rasterlines != 8 {
		t.Errorf("expected 8 visited rows, got %d", stats.Rasterlines)
	}
	if target.total() != 64 {
		t.Errorf("expected the full image to be covered, got %d pixels", target.total())
	}
}

func TestVertexShaderState(t *testing.T) {
	target := newCountTarget(20, 20)
	r, err := New[Textured[Scalar], Scalar](target, &TransformShader[Scalar]{CTM: matrix.Identity}, white)
	if err != nil {
		t.Fatal(err)
	}

	unit := func(x, y float64) Textured[Scalar] {
		return Textured[Scalar]{UV: vec.Vec2{X: x, Y: y}}
	}
	r.DrawTriangle(unit(0, 0), unit(4, 0), unit(0, 4))
	r.Flush()
	small := target.total()

	r.VertexShader().(*TransformShader[Scalar]).CTM = matrix.Matrix{2, 0, 0, 2, 10, 10}
	r.DrawTriangle(unit(0, 0), unit(4, 0), unit(0, 4))
	r.Close()
	large := target.total() - small

	if small == 0 || large < 3*small {
		t.Errorf("expected the scaled triangle to cover about four times the area, got %d and %d", small, large)
	}
	for y := range 10 {
		for x := range 10 {
			if target.writes[y*20+x] > 1 {
				t.Errorf("pixel (%d, %d) written twice", x, y)
			}
		}
	}
	if target.writes[15*20+11] != 1 {
		t.Error("pixel (11, 15) of the transformed triangle not written")
	}
}

func TestSetFragmentShader(t *testing.T) {
	target := newCountTarget(10, 10)
	r := newTestRasterizer(t, target)

	red := SolidFragment[Scalar]{Value: Pixel{1, 0, 0, 1}}
	blue := SolidFragment[Scalar]{Value: Pixel{0, 0, 1, 1}}

	r.SetFragmentShader(red)
	r.DrawTriangle(p(0, 0), p(10, 0), p(0, 10))
	r.SetFragmentShader(blue) // flushes with red
	r.DrawTriangle(p(10, 0), p(10, 10), p(0, 10))
	r.SetFragmentShader(nil) // ignored
	r.Close()

	if got := target.pix[0]; got != red.Value {
		t.Errorf("pixel (0, 0): expected %v, got %v", red.Value, got)
	}
	if got := target.pix[99]; got != blue.Value {
		t.Errorf("pixel (9, 9): expected %v, got %v", blue.Value, got)
	}
	if r.FragmentShader() != FragmentShader[Scalar](blue) {
		t.Errorf("unexpected fragment shader %v", r.FragmentShader())
	}
}

func TestOrderVertices(t *testing.T) {
	cases := []struct {
		v                [3]vec.Vec2
		top, mid, bottom int
	}{
		{[3]vec.Vec2{p(0, 0), p(0, 1), p(0, 2)}, 0, 1, 2},
		{[3]vec.Vec2{p(0, 2), p(0, 1), p(0, 0)}, 2, 1, 0},
		{[3]vec.Vec2{p(0, 1), p(0, 2), p(0, 0)}, 2, 0, 1},
		{[3]vec.Vec2{p(0, 0), p(1, 0), p(0, 2)}, 0, 1, 2},
		{[3]vec.Vec2{p(0, 2), p(1, 2), p(0, 0)}, 2, 1, 0},
		{[3]vec.Vec2{p(3, 5), p(1, 5), p(2, 5)}, 0, 1, 2},
	}
	for _, c := range cases {
		var v [3]Vertex[Scalar]
		for i := range v {
			v[i].Coord = c.v[i]
		}
		top, mid, bottom := orderVertices(&v)
		if top != c.top || mid != c.mid || bottom != c.bottom {
			t.Errorf("%v: expected (%d, %d, %d), got (%d, %d, %d)",
				c.v, c.top, c.mid, c.bottom, top, mid, bottom)
		}
	}
}

func TestFloatImageTarget(t *testing.T) {
	img := NewFloatImage(16, 12)
	r, err := New[vec.Vec2, Scalar](img, positionShader, GrayFragment{})
	if err != nil {
		t.Fatal(err)
	}
	r.DrawTriangle(p(-4, -4), p(40, -4), p(-4, 40))
	r.Close()

	want := Pixel{0, 0, 0, 1}
	for y := range 12 {
		for x := range 16 {
			if got := img.PixelAt(x, y); got != want {
				t.Fatalf("pixel (%d, %d): expected %v, got %v", x, y, want, got)
			}
		}
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 16, 12) {
		t.Errorf("unexpected bounds %v", got)
	}
}

func BenchmarkDrawTriangle(b *testing.B) {
	target := NewFloatImage(256, 256)
	r := newTestRasterizer(b, target)
	for b.Loop() {
		r.DrawTriangle(p(10.3, 5.7), p(250.1, 80.2), p(60.6, 249.9))
		r.Flush()
	}
}
