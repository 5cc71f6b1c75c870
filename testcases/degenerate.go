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

// degenerateCases contain triangles without area.  Nothing is drawn.
var degenerateCases = []TestCase{
	{
		Name:      "horizontal",
		Triangles: []Triangle{tri(5, 20, 40, 20, 60, 20)},
		Width:     64,
		Height:    64,
	},
	{
		Name:      "vertical",
		Triangles: []Triangle{tri(20, 5, 20, 40, 20, 60)},
		Width:     64,
		Height:    64,
	},
	{
		Name:      "collinear",
		Triangles: []Triangle{tri(4, 4, 20, 20, 40, 40)},
		Width:     64,
		Height:    64,
	},
	{
		Name:      "point",
		Triangles: []Triangle{tri(31.5, 31.5, 31.5, 31.5, 31.5, 31.5)},
		Width:     64,
		Height:    64,
	},
}
