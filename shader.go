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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// VertexShader maps caller-defined vertex data to a position inside the
// image buffer plus the data to interpolate across the triangle.
//
// Vertex is called three times per triangle. It must be deterministic and
// must not depend on the order of the calls.
type VertexShader[In any, P Payload[P]] interface {
	Vertex(in In) Vertex[P]
}

// VertexFunc adapts an ordinary function to the VertexShader interface.
type VertexFunc[In any, P Payload[P]] func(in In) Vertex[P]

// Vertex calls f(in).
func (f VertexFunc[In, P]) Vertex(in In) Vertex[P] {
	return f(in)
}

// FragmentShader computes the value of a single pixel from the
// interpolated vertex data. Fragment is called once for every pixel
// covered by a triangle, at the time the rasterizer is flushed.
type FragmentShader[P any] interface {
	Fragment(in P) Pixel
}

// FragmentFunc adapts an ordinary function to the FragmentShader interface.
type FragmentFunc[P any] func(in P) Pixel

// Fragment calls f(in).
func (f FragmentFunc[P]) Fragment(in P) Pixel {
	return f(in)
}

// Textured is vertex input given in texture space, for use with
// TransformShader.
type Textured[P any] struct {
	UV   vec.Vec2
	Data P
}

// TransformShader maps texture space to image coordinates using an affine
// transformation.  The payload is passed through unchanged.
//
// The CTM can be changed between calls to DrawTriangle, for example via
// [Rasterizer.VertexShader].
type TransformShader[P Payload[P]] struct {
	CTM matrix.Matrix
}

// Vertex implements the VertexShader interface.
func (s *TransformShader[P]) Vertex(in Textured[P]) Vertex[P] {
	m := s.CTM
	return Vertex[P]{
		Coord: vec.Vec2{
			X: m[0]*in.UV.X + m[2]*in.UV.Y + m[4],
			Y: m[1]*in.UV.X + m[3]*in.UV.Y + m[5],
		},
		Data: in.Data,
	}
}

// ColorFragment writes the interpolated color.
type ColorFragment struct{}

// Fragment implements the FragmentShader interface.
func (ColorFragment) Fragment(c Color) Pixel {
	return c.Pixel()
}

// GrayFragment writes the interpolated value as an opaque gray level.
type GrayFragment struct{}

// Fragment implements the FragmentShader interface.
func (GrayFragment) Fragment(s Scalar) Pixel {
	v := float32(s)
	return Pixel{v, v, v, 1}
}

// SolidFragment writes the same value to every covered pixel,
// ignoring the interpolated data.
type SolidFragment[P any] struct {
	Value Pixel
}

// Fragment implements the FragmentShader interface.
func (s SolidFragment[P]) Fragment(P) Pixel {
	return s.Value
}
