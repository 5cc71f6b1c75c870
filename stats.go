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

import "fmt"

// Stats counts the decisions taken by a Rasterizer.
// Statistics never influence the rendered output.
//
// All methods can be called on a nil *Stats, in which case nothing is
// recorded.
type Stats struct {
	Triangles          int // triangles passed to DrawTriangle
	DiscardedTriangles int // triangles rejected before scan conversion

	Rasterlines          int // candidate rasterlines on visible rows
	DiscardedRasterlines int // rasterlines without visible pixels
	ClampedRasterlines   int // rasterlines cut at the image border

	Flushes   int // non-empty flushes
	Fragments int // fragment shader invocations
}

// Reset sets all counters to zero.
func (s *Stats) Reset() {
	if s != nil {
		*s = Stats{}
	}
}

func (s *Stats) String() string {
	if s == nil {
		return "<nil>"
	}
	return fmt.Sprintf("triangles=%d (discarded %d) rasterlines=%d (discarded %d, clamped %d) flushes=%d fragments=%d",
		s.Triangles, s.DiscardedTriangles,
		s.Rasterlines, s.DiscardedRasterlines, s.ClampedRasterlines,
		s.Flushes, s.Fragments)
}

func (s *Stats) addTriangle() {
	if s != nil {
		s.Triangles++
	}
}

func (s *Stats) addDiscardedTriangle() {
	if s != nil {
		s.DiscardedTriangles++
	}
}

func (s *Stats) addRasterline() {
	if s != nil {
		s.Rasterlines++
	}
}

func (s *Stats) addDiscardedRasterline() {
	if s != nil {
		s.DiscardedRasterlines++
	}
}

func (s *Stats) addClampedRasterline() {
	if s != nil {
		s.ClampedRasterlines++
	}
}

func (s *Stats) addFlush() {
	if s != nil {
		s.Flushes++
	}
}

func (s *Stats) addFragments(n int) {
	if s != nil {
		s.Fragments += n
	}
}
