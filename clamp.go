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

import "math"

// ClampingPolicy decides where pixels are sampled.
//
// Triangle edges are walked in continuous image coordinates, but pixels are
// only evaluated at one sample point (the anchor) per row and column.
// ScanlineFor and ColumnFor return the first row/column whose anchor lies
// at or after the given coordinate; the Distance methods return how far
// that anchor is from the coordinate, which is used to move interpolated
// data from the geometric edge to the sample point.
//
// Rows and columns must use the same convention.
type ClampingPolicy interface {
	ScanlineFor(y float64) int
	DistanceToScanlineAnchor(y float64) float64
	ColumnFor(x float64) int
	DistanceToColumnAnchor(x float64) float64
}

// CenterPixel samples every pixel at its center, i.e. pixel (i, j)
// is covered if the point (i+0.5, j+0.5) lies inside the triangle.
// A center on the left or top edge of a triangle belongs to the triangle,
// a center on the right or bottom edge does not.
// This is the default policy.
type CenterPixel struct{}

func (CenterPixel) ScanlineFor(y float64) int { return centerIndex(y) }
func (CenterPixel) ColumnFor(x float64) int   { return centerIndex(x) }

func (CenterPixel) DistanceToScanlineAnchor(y float64) float64 {
	return float64(centerIndex(y)) + 0.5 - y
}

func (CenterPixel) DistanceToColumnAnchor(x float64) float64 {
	return float64(centerIndex(x)) + 0.5 - x
}

func centerIndex(c float64) int {
	return saturate(math.Ceil(c - 0.5))
}

// CornerPixel samples pixel (i, j) at the integer point (i, j).
type CornerPixel struct{}

func (CornerPixel) ScanlineFor(y float64) int { return saturate(math.Ceil(y)) }
func (CornerPixel) ColumnFor(x float64) int   { return saturate(math.Ceil(x)) }

func (CornerPixel) DistanceToScanlineAnchor(y float64) float64 {
	return float64(saturate(math.Ceil(y))) - y
}

func (CornerPixel) DistanceToColumnAnchor(x float64) float64 {
	return float64(saturate(math.Ceil(x))) - x
}

// maxIndex bounds all row and column indices.  Far away coordinates are
// mapped to ±maxIndex, so that index arithmetic cannot overflow.
const maxIndex = 1 << 30

// saturate converts an integral float to an int in [-maxIndex, maxIndex].
// NaN maps to 0.
func saturate(f float64) int {
	switch {
	case f >= maxIndex:
		return maxIndex
	case f <= -maxIndex:
		return -maxIndex
	case f != f:
		return 0
	}
	return int(f)
}
