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

	"seehuhn.de/go/geom/vec"
)

// Payload is the arithmetic required on data which is interpolated
// across a triangle, from the vertex stage to the fragment stage.
// Implementations must be value types: the methods return new values
// and must not modify the receiver.
type Payload[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(float64) T
	Div(float64) T
}

// Vertex is the output of the vertex stage: a position in image
// coordinates together with the data to interpolate.
//
// Image coordinates range from (0, 0) at the top-left corner of the image
// to (width, height) at the bottom-right corner.
type Vertex[P Payload[P]] struct {
	Coord vec.Vec2
	Data  P
}

// Add returns the component-wise sum v+w.
func (v Vertex[P]) Add(w Vertex[P]) Vertex[P] {
	return Vertex[P]{Coord: v.Coord.Add(w.Coord), Data: v.Data.Add(w.Data)}
}

// Sub returns the component-wise difference v-w.
func (v Vertex[P]) Sub(w Vertex[P]) Vertex[P] {
	return Vertex[P]{Coord: v.Coord.Sub(w.Coord), Data: v.Data.Sub(w.Data)}
}

// Mul scales coordinate and data by s.
func (v Vertex[P]) Mul(s float64) Vertex[P] {
	return Vertex[P]{Coord: v.Coord.Mul(s), Data: v.Data.Mul(s)}
}

// Div divides coordinate and data by s.
func (v Vertex[P]) Div(s float64) Vertex[P] {
	return Vertex[P]{
		Coord: vec.Vec2{X: v.Coord.X / s, Y: v.Coord.Y / s},
		Data:  v.Data.Div(s),
	}
}

// isFinite reports whether both coordinates are neither infinite nor NaN.
func (v Vertex[P]) isFinite() bool {
	return !math.IsNaN(v.Coord.X) && !math.IsInf(v.Coord.X, 0) &&
		!math.IsNaN(v.Coord.Y) && !math.IsInf(v.Coord.Y, 0)
}

// edgeStep returns the per-scanline increment for walking from one vertex
// to another.  Edges without vertical extent are covered in a single step.
func edgeStep[P Payload[P]](from, to Vertex[P]) Vertex[P] {
	d := to.Sub(from)
	if d.Coord.Y == 0 {
		return d
	}
	return d.Div(d.Coord.Y)
}
