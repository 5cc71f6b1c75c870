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

import "seehuhn.de/go/geom/vec"

// Scalar is a single interpolated value.
type Scalar float64

func (s Scalar) Add(t Scalar) Scalar  { return s + t }
func (s Scalar) Sub(t Scalar) Scalar  { return s - t }
func (s Scalar) Mul(f float64) Scalar { return s * Scalar(f) }
func (s Scalar) Div(f float64) Scalar { return s / Scalar(f) }

// Color is an interpolated RGBA color with straight (non-premultiplied)
// alpha.  Channel values are linear light, normally in the range [0, 1].
type Color struct {
	R, G, B, A float64
}

func (c Color) Add(d Color) Color {
	return Color{c.R + d.R, c.G + d.G, c.B + d.B, c.A + d.A}
}

func (c Color) Sub(d Color) Color {
	return Color{c.R - d.R, c.G - d.G, c.B - d.B, c.A - d.A}
}

func (c Color) Mul(f float64) Color {
	return Color{c.R * f, c.G * f, c.B * f, c.A * f}
}

func (c Color) Div(f float64) Color {
	return Color{c.R / f, c.G / f, c.B / f, c.A / f}
}

// Pixel converts c into the format stored in image buffers.
func (c Color) Pixel() Pixel {
	return Pixel{float32(c.R), float32(c.G), float32(c.B), float32(c.A)}
}

// UV is an interpolated texture coordinate.
type UV vec.Vec2

func (u UV) Add(v UV) UV      { return UV(vec.Vec2(u).Add(vec.Vec2(v))) }
func (u UV) Sub(v UV) UV      { return UV(vec.Vec2(u).Sub(vec.Vec2(v))) }
func (u UV) Mul(f float64) UV { return UV(vec.Vec2(u).Mul(f)) }
func (u UV) Div(f float64) UV { return UV{X: u.X / f, Y: u.Y / f} }
