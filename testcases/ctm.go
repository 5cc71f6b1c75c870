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

import "seehuhn.de/go/geom/matrix"

var ctmCases = []TestCase{
	{
		Name:      "scale_2x",
		Triangles: rectangle(0, 0, 20, 20),
		Width:     128,
		Height:    128,
		CTM:       matrix.Scale(2, 2).Translate(24, 24),
	},
	{
		Name:      "scale_half",
		Triangles: fan(0, 0, 40, 24),
		Width:     64,
		Height:    64,
		CTM:       matrix.Scale(0.5, 0.5).Translate(32, 32),
	},
	{
		Name:      "rotate_30deg",
		Triangles: rectangle(-15, -10, 15, 10),
		Width:     64,
		Height:    64,
		CTM:       matrix.RotateDeg(30).Translate(32, 32),
	},
	{
		Name:      "rotate_45deg_grid",
		Triangles: grid(-16, -16, 8, 4, 4),
		Width:     64,
		Height:    64,
		CTM:       matrix.RotateDeg(45).Translate(32, 32),
	},
	{
		Name:      "skew",
		Triangles: []Triangle{tri(0, 10, 30, 10, 10, 50)},
		Width:     64,
		Height:    64,
		CTM:       matrix.Matrix{1, 0, 0.4, 1, 4, 0},
	},
}
