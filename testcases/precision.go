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

var precisionCases = []TestCase{
	{
		Name:      "subpixel_offset_00",
		Triangles: offsetTriangle(20, 20, 24, 0.0),
		Width:     64,
		Height:    64,
	},
	{
		Name:      "subpixel_offset_25",
		Triangles: offsetTriangle(20, 20, 24, 0.25),
		Width:     64,
		Height:    64,
	},
	{
		Name:      "subpixel_offset_50",
		Triangles: offsetTriangle(20, 20, 24, 0.5),
		Width:     64,
		Height:    64,
	},
	{
		Name:      "subpixel_offset_75",
		Triangles: offsetTriangle(20, 20, 24, 0.75),
		Width:     64,
		Height:    64,
	},
	{
		Name:      "sliver_horizontal",
		Triangles: []Triangle{tri(4, 30.2, 60, 31.9, 4, 32.7)},
		Width:     64,
		Height:    64,
	},
	{
		Name:      "sliver_vertical",
		Triangles: []Triangle{tri(30.1, 3, 32.8, 3.5, 31.6, 61)},
		Width:     64,
		Height:    64,
	},
	{
		Name:      "tiny",
		Triangles: []Triangle{tri(10.2, 10.3, 12.7, 10.9, 11.1, 12.8)},
		Width:     24,
		Height:    24,
	},
}

// offsetTriangle builds a right triangle with its corner at (x+off, y+off).
func offsetTriangle(x, y, size, off float64) []Triangle {
	x += off
	y += off
	return []Triangle{tri(x, y, x+size, y, x, y+size)}
}
