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

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"
	"golang.org/x/image/draw"

	"seehuhn.de/go/geom/rect"
)

// Pixel is a four-channel floating point pixel value, normally RGBA.
type Pixel [4]float32

// Target is the image buffer a Rasterizer draws into.
//
// Pixels are addressed by column x in [0, Width()) and row y in
// [0, Height()), with row 0 at the top.  The rasterizer only ever calls
// SetPixel with in-range coordinates; it never reads pixels back.
type Target interface {
	Width() int
	Height() int
	SetPixel(x, y int, p Pixel)
}

// FloatImage is an in-memory RGBA image with float32 channels.
// Values are linear light with straight alpha.
type FloatImage struct {
	// Pix holds the pixels in row-major RGBA order.
	Pix []float32

	// Stride is the number of float32 values between vertically adjacent
	// pixels.
	Stride int

	// Rect is the image bounds.  Rect.Min is always (0, 0).
	Rect image.Rectangle
}

// NewFloatImage allocates a transparent black image of the given size.
// Negative sizes are treated as zero.
func NewFloatImage(width, height int) *FloatImage {
	width = max(width, 0)
	height = max(height, 0)
	return &FloatImage{
		Pix:    make([]float32, width*height*4),
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
}

// Width implements the Target interface.
func (img *FloatImage) Width() int {
	return img.Rect.Dx()
}

// Height implements the Target interface.
func (img *FloatImage) Height() int {
	return img.Rect.Dy()
}

// PixOffset returns the index of the first element of Pix for pixel (x, y).
func (img *FloatImage) PixOffset(x, y int) int {
	return y*img.Stride + x*4
}

// SetPixel implements the Target interface.
// Coordinates outside the image are ignored.
func (img *FloatImage) SetPixel(x, y int, p Pixel) {
	if !(image.Point{x, y}.In(img.Rect)) {
		return
	}
	i := img.PixOffset(x, y)
	copy(img.Pix[i:i+4], p[:])
}

// PixelAt returns the pixel at (x, y), or the zero pixel for coordinates
// outside the image.
func (img *FloatImage) PixelAt(x, y int) Pixel {
	if !(image.Point{x, y}.In(img.Rect)) {
		return Pixel{}
	}
	i := img.PixOffset(x, y)
	return Pixel(img.Pix[i : i+4])
}

// Fill sets every pixel to p.
func (img *FloatImage) Fill(p Pixel) {
	for i := 0; i+4 <= len(img.Pix); i += 4 {
		copy(img.Pix[i:i+4], p[:])
	}
}

// Viewport returns the image area in image coordinates.
func (img *FloatImage) Viewport() rect.Rect {
	return rect.Rect{
		LLx: 0,
		LLy: 0,
		URx: float64(img.Rect.Dx()),
		URy: float64(img.Rect.Dy()),
	}
}

// Bounds implements the image.Image interface.
func (img *FloatImage) Bounds() image.Rectangle {
	return img.Rect
}

// ColorModel implements the image.Image interface.
func (img *FloatImage) ColorModel() color.Model {
	return color.NRGBA64Model
}

// At implements the image.Image interface.  Colors are clamped to [0, 1]
// and converted to sRGB.
func (img *FloatImage) At(x, y int) color.Color {
	p := img.PixelAt(x, y)
	return color.NRGBA64{
		R: uint16(encodeSRGB(p[0])*0xffff + 0.5),
		G: uint16(encodeSRGB(p[1])*0xffff + 0.5),
		B: uint16(encodeSRGB(p[2])*0xffff + 0.5),
		A: uint16(clamp01(p[3])*0xffff + 0.5),
	}
}

// ToNRGBA converts the image to 8-bit sRGB.
func (img *FloatImage) ToNRGBA() *image.NRGBA {
	dst := image.NewNRGBA(img.Rect)
	w, h := img.Rect.Dx(), img.Rect.Dy()
	for y := range h {
		src := img.Pix[y*img.Stride:]
		row := dst.Pix[y*dst.Stride:]
		for x := range w {
			row[4*x+0] = uint8(encodeSRGB(src[4*x+0])*255 + 0.5)
			row[4*x+1] = uint8(encodeSRGB(src[4*x+1])*255 + 0.5)
			row[4*x+2] = uint8(encodeSRGB(src[4*x+2])*255 + 0.5)
			row[4*x+3] = uint8(clamp01(src[4*x+3])*255 + 0.5)
		}
	}
	return dst
}

// Preview returns an 8-bit copy of the image, scaled to the given size.
func (img *FloatImage) Preview(width, height int) *image.NRGBA {
	src := img.ToNRGBA()
	dst := image.NewNRGBA(image.Rect(0, 0, max(width, 1), max(height, 1)))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// encodeSRGB applies the sRGB transfer function to a clamped linear value.
func encodeSRGB(v float32) float32 {
	v = clamp01(v)
	if v <= 0.0031308 {
		return 12.92 * v
	}
	return 1.055*math32.Pow(v, 1/2.4) - 0.055
}

// clamp01 clamps v to [0, 1].  NaN maps to 0.
func clamp01(v float32) float32 {
	if math32.IsNaN(v) {
		return 0
	}
	return math32.Max(0, math32.Min(1, v))
}
