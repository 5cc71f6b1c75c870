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

package testcases

import "math"

var basicCases = []TestCase{
	{
		Name:      "triangle_small",
		Triangles: []Triangle{tri(2, 2, 8, 2, 5, 8)},
		Width:     10,
		Height:    10,
	},
	{
		Name:      "triangle_flat_top",
		Triangles: []Triangle{tri(10, 10, 54, 10, 32, 54)},
		Width:     64,
		Height:    64,
	},
	{
		Name:      "triangle_flat_bottom",
		Triangles: []Triangle{tri(32, 10, 54, 54, 10, 54)},
		Width:     64,
		Height:    64,
	},
	{
		Name:      "triangle_mid_left",
		Triangles: []Triangle{tri(40, 5, 8, 30, 50, 58)},
		Width:     64,
		Height:    64,
	},
	{
		Name:      "triangle_mid_right",
		Triangles: []Triangle{tri(20, 5, 58, 35, 12, 60)},
		Width:     64,
		Height:    64,
	},
	{
		Name:      "triangle_obtuse",
		Triangles: []Triangle{tri(4, 20, 60, 28, 30, 40)},
		Width:     64,
		Height:    64,
	},
	{
		Name:      "triangle_steep",
		Triangles: []Triangle{tri(30.3, 2.2, 35.8, 61.4, 27.1, 40.6)},
		Width:     64,
		Height:    64,
	},
	{
		Name:      "rectangle",
		Triangles: rectangle(10, 10, 44, 44),
		Width:     64,
		Height:    64,
	},
}

// rectangle builds an axis-aligned rectangle from two triangles.
func rectangle(x0, y0, x1, y1 float64) []Triangle {
	return []Triangle{
		tri(x0, y0, x1, y0, x1, y1),
		tri(x0, y0, x1, y1, x0, y1),
	}
}

// fan builds a regular n-gon, triangulated from its center.
func fan(cx, cy, r float64, n int) []Triangle {
	res := make([]Triangle, n)
	for i := range n {
		a0 := 2 * math.Pi * float64(i) / float64(n)
		a1 := 2 * math.Pi * float64(i+1) / float64(n)
		res[i] = tri(
			cx, cy,
			cx+r*math.Cos(a0), cy+r*math.Sin(a0),
			cx+r*math.Cos(a1), cy+r*math.Sin(a1),
		)
	}
	return res
}

// star builds a five-pointed star, triangulated from its center.
func star(cx, cy, rOuter, rInner float64) []Triangle {
	const n = 10
	var pts [n]struct{ x, y float64 }
	for i := range n {
		r := rOuter
		if i%2 == 1 {
			r = rInner
		}
		a := -math.Pi/2 + math.Pi*float64(i)/5
		pts[i].x = cx + r*math.Cos(a)
		pts[i].y = cy + r*math.Sin(a)
	}
	res := make([]Triangle, n)
	for i := range n {
		p, q := pts[i], pts[(i+1)%n]
		res[i] = tri(cx, cy, p.x, p.y, q.x, q.y)
	}
	return res
}

// grid builds nx×ny square cells, each split along its diagonal.
func grid(x0, y0, cell float64, nx, ny int) []Triangle {
	var res []Triangle
	for j := range ny {
		for i := range nx {
			x := x0 + float64(i)*cell
			y := y0 + float64(j)*cell
			res = append(res, rectangle(x, y, x+cell, y+cell)...)
		}
	}
	return res
}
