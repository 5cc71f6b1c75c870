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

var clipCases = []TestCase{
	{
		Name:      "clip_left",
		Triangles: []Triangle{tri(-20, 10, 30, 20, -5, 50)},
		Width:     64,
		Height:    64,
	},
	{
		Name:      "clip_right",
		Triangles: []Triangle{tri(40, 8, 90, 30, 50, 60)},
		Width:     64,
		Height:    64,
	},
	{
		Name:      "clip_top",
		Triangles: []Triangle{tri(10, -30, 50, -10, 30, 40)},
		Width:     64,
		Height:    64,
	},
	{
		Name:      "clip_bottom",
		Triangles: []Triangle{tri(12, 30, 55, 20, 33, 100)},
		Width:     64,
		Height:    64,
	},
	{
		Name:      "clip_all_sides",
		Triangles: []Triangle{tri(-40, -40, 120, -10, 20, 110)},
		Width:     64,
		Height:    64,
	},
	{
		Name:      "clip_far_vertices",
		Triangles: []Triangle{tri(-10000, 20, 10000, 30, 32, 10000)},
		Width:     64,
		Height:    64,
	},
	{
		Name: "clip_partially_outside",
		Triangles: []Triangle{
			tri(-30, -30, -10, -20, -20, -5),
			tri(50, 50, 80, 60, 60, 90),
		},
		Width:  64,
		Height: 64,
	},
}
