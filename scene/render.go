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

package scene

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/rasterizer"
)

type input = rasterizer.Textured[rasterizer.Color]

// Render draws the scene into a new image.  Additional rasterizer options
// are applied after the ones derived from the scene.
func Render(s *Scene, opts ...rasterizer.Option) (*rasterizer.FloatImage, *rasterizer.Stats, error) {
	if err := s.Validate(); err != nil {
		return nil, nil, err
	}

	img := rasterizer.NewFloatImage(s.Width, s.Height)
	if s.Background != nil {
		bg, _ := toColor(s.Background)
		img.Fill(bg.Pixel())
	}

	clamping, _ := s.clamping()
	stats := &rasterizer.Stats{}
	all := []rasterizer.Option{
		rasterizer.WithClamping(clamping),
		rasterizer.WithStats(stats),
	}
	if s.Capacity > 0 {
		all = append(all, rasterizer.WithCapacity(s.Capacity))
	}
	all = append(all, opts...)

	vs := &rasterizer.TransformShader[rasterizer.Color]{CTM: s.Transform()}
	r, err := rasterizer.New[input, rasterizer.Color](img, vs, rasterizer.ColorFragment{}, all...)
	if err != nil {
		return nil, nil, err
	}
	for _, t := range s.Triangles {
		r.DrawTriangle(t.A.input(), t.B.input(), t.C.input())
	}
	if err := r.Close(); err != nil {
		return nil, nil, err
	}

	// r.Stats differs from stats if the caller passed WithStats.
	return img, r.Stats(), nil
}

func (v Vertex) input() input {
	c, _ := toColor(v.Color)
	return input{
		UV:   vec.Vec2{X: v.X, Y: v.Y},
		Data: c,
	}
}
