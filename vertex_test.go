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
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestVertexArithmetic(t *testing.T) {
	a := Vertex[Scalar]{Coord: vec.Vec2{X: 1, Y: 2}, Data: 3}
	b := Vertex[Scalar]{Coord: vec.Vec2{X: 4, Y: 8}, Data: -1}

	cases := []struct {
		name string
		got  Vertex[Scalar]
		want Vertex[Scalar]
	}{
		{"add", a.Add(b), Vertex[Scalar]{Coord: vec.Vec2{X: 5, Y: 10}, Data: 2}},
		{"sub", b.Sub(a), Vertex[Scalar]{Coord: vec.Vec2{X: 3, Y: 6}, Data: -4}},
		{"mul", a.Mul(2), Vertex[Scalar]{Coord: vec.Vec2{X: 2, Y: 4}, Data: 6}},
		{"div", b.Div(4), Vertex[Scalar]{Coord: vec.Vec2{X: 1, Y: 2}, Data: -0.25}},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("%s: expected %v, got %v", c.name, c.want, c.got)
		}
	}

	// the operands must not change
	if a.Coord.X != 1 || a.Data != 3 {
		t.Errorf("receiver modified: %v", a)
	}
}

func TestEdgeStep(t *testing.T) {
	from := Vertex[Scalar]{Coord: vec.Vec2{X: 2, Y: 2}, Data: 0}
	to := Vertex[Scalar]{Coord: vec.Vec2{X: 5, Y: 8}, Data: 12}

	got := edgeStep(from, to)
	want := Vertex[Scalar]{Coord: vec.Vec2{X: 0.5, Y: 1}, Data: 2}
	if got != want {
		t.Errorf("expected %v, got %v", want, got)
	}

	// horizontal edges are covered in a single step
	flat := Vertex[Scalar]{Coord: vec.Vec2{X: 8, Y: 2}, Data: 4}
	got = edgeStep(from, flat)
	want = Vertex[Scalar]{Coord: vec.Vec2{X: 6, Y: 0}, Data: 4}
	if got != want {
		t.Errorf("horizontal: expected %v, got %v", want, got)
	}
}

func TestIsFinite(t *testing.T) {
	cases := []struct {
		x, y float64
		want bool
	}{
		{0, 0, true},
		{-1e300, 1e300, true},
		{math.NaN(), 0, false},
		{0, math.NaN(), false},
		{math.Inf(1), 0, false},
		{0, math.Inf(-1), false},
	}
	for _, c := range cases {
		v := Vertex[Scalar]{Coord: vec.Vec2{X: c.x, Y: c.y}}
		if got := v.isFinite(); got != c.want {
			t.Errorf("(%g, %g): expected %t, got %t", c.x, c.y, c.want, got)
		}
	}
}

func TestPayloads(t *testing.T) {
	c1 := Color{R: 1, G: 0.5, B: 0, A: 1}
	c2 := Color{R: 0, G: 0.5, B: 1, A: 0}
	mid := c1.Add(c2).Div(2)
	if want := (Color{R: 0.5, G: 0.5, B: 0.5, A: 0.5}); mid != want {
		t.Errorf("color: expected %v, got %v", want, mid)
	}
	if d := c1.Sub(c2).Mul(2); d != (Color{R: 2, G: 0, B: -2, A: 2}) {
		t.Errorf("color: unexpected difference %v", d)
	}
	if p := c1.Pixel(); p != (Pixel{1, 0.5, 0, 1}) {
		t.Errorf("color: unexpected pixel %v", p)
	}

	u := UV{X: 1, Y: 2}
	v := UV{X: 3, Y: -2}
	if got := u.Add(v).Mul(0.5); got != (UV{X: 2, Y: 0}) {
		t.Errorf("uv: unexpected average %v", got)
	}
	if got := v.Sub(u).Div(2); got != (UV{X: 1, Y: -2}) {
		t.Errorf("uv: unexpected half difference %v", got)
	}

	var s Scalar = 3
	if got := s.Add(1).Sub(2).Mul(3).Div(4); got != 1.5 {
		t.Errorf("scalar: expected 1.5, got %g", got)
	}
}
