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

var meshCases = []TestCase{
	{
		Name:      "fan_disc",
		Triangles: fan(32.3, 31.7, 25, 36),
		Width:     64,
		Height:    64,
	},
	{
		Name:      "star",
		Triangles: star(32.2, 32.9, 28, 11),
		Width:     64,
		Height:    64,
	},
	{
		Name:      "grid",
		Triangles: grid(4, 4, 8, 7, 7),
		Width:     64,
		Height:    64,
	},
	{
		Name: "overlapping",
		Triangles: []Triangle{
			tri(5, 5, 50, 12, 20, 55),
			tri(58, 6, 30, 60, 10, 30),
		},
		Width:  64,
		Height: 64,
	},
	{
		Name:      "large_disc",
		Triangles: fan(256.4, 255.8, 200, 90),
		Width:     512,
		Height:    512,
	},
}
