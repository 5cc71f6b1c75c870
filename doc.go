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

// Package rasterizer draws shaded triangles into floating point image
// buffers, without the help of a GPU.
//
// The package follows a (very limited) fixed-function graphics pipeline.
// A [VertexShader] maps caller-defined vertex data to image coordinates and
// attaches a payload, which is linearly interpolated across the triangle.
// A [FragmentShader] turns the interpolated payload into a pixel value.
// Payload types implement the [Payload] arithmetic; [Scalar], [Color] and
// [UV] are provided.
//
// Basic usage:
//
//	img := rasterizer.NewFloatImage(256, 256)
//	vs := &rasterizer.TransformShader[rasterizer.Scalar]{CTM: matrix.Scale(256, 256)}
//	r, err := rasterizer.New[rasterizer.Textured[rasterizer.Scalar], rasterizer.Scalar](
//	    img, vs, rasterizer.GrayFragment{})
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//	r.DrawTriangle(
//	    rasterizer.Textured[rasterizer.Scalar]{UV: vec.Vec2{X: 0, Y: 1}, Data: 1},
//	    rasterizer.Textured[rasterizer.Scalar]{UV: vec.Vec2{X: 1, Y: 1}, Data: 0.5},
//	    rasterizer.Textured[rasterizer.Scalar]{UV: vec.Vec2{X: 1, Y: 0}, Data: 0},
//	)
//
// Pixels are only written when buffered rasterlines are flushed, which
// happens when the buffer is full, on [Rasterizer.Flush] and on
// [Rasterizer.Close].
package rasterizer

//go:generate go run ./testcases/export
