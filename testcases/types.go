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

// Package testcases defines triangle meshes for testing and benchmarking
// the rasterizer.
package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name      string        // lowercase a-z, 0-9 and _ only
	Triangles []Triangle    // the geometry to render, before the CTM
	Width     int           // canvas width in pixels
	Height    int           // canvas height in pixels
	CTM       matrix.Matrix // transformation matrix (zero-value means no transform)
}

// Triangle is given by its three corners.
type Triangle [3]vec.Vec2

// Device returns the triangles of tc in image coordinates.
func (tc TestCase) Device() []Triangle {
	m := tc.CTM
	if m == (matrix.Matrix{}) {
		m = matrix.Identity
	}
	res := make([]Triangle, len(tc.Triangles))
	for i, t := range tc.Triangles {
		for j, p := range t {
			res[i][j] = vec.Vec2{
				X: m[0]*p.X + m[2]*p.Y + m[4],
				Y: m[1]*p.X + m[3]*p.Y + m[5],
			}
		}
	}
	return res
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// tri builds a single triangle.
func tri(x1, y1, x2, y2, x3, y3 float64) Triangle {
	return Triangle{pt(x1, y1), pt(x2, y2), pt(x3, y3)}
}
