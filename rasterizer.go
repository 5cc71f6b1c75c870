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
	"context"
	"fmt"
	"log/slog"

	"seehuhn.de/go/geom/rect"
)

// Rasterizer draws triangles into a Target.
//
// Triangles are first converted into rasterlines, which are buffered.
// The fragment shader only runs when the buffer is flushed: automatically
// when it is full, and explicitly via Flush or Close.  Close must be
// called when drawing is complete, otherwise buffered rasterlines are lost.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer[In any, P Payload[P]] struct {
	vs VertexShader[In, P]
	fs FragmentShader[P]

	target Target
	clip   rect.Rect // visible area in image coordinates
	width  int
	height int

	clamp ClampingPolicy
	lines rasterlines[P]
	stats *Stats
	log   *slog.Logger
}

// New returns a Rasterizer which draws into target.
//
// The target must have positive width and height.  The target is not
// owned by the rasterizer; it must stay valid until the last call to
// Flush or Close.
func New[In any, P Payload[P]](target Target, vs VertexShader[In, P], fs FragmentShader[P], opts ...Option) (*Rasterizer[In, P], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if target == nil {
		return nil, fmt.Errorf("%w: nil", ErrInvalidTarget)
	}
	w, h := target.Width(), target.Height()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidTarget, w, h)
	}
	if o.capacity < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, o.capacity)
	}
	if vs == nil || fs == nil {
		return nil, ErrNilShader
	}
	if o.clamping == nil {
		return nil, ErrNilClamping
	}
	if o.logger == nil {
		o.logger = Logger()
	}

	r := &Rasterizer[In, P]{
		vs:     vs,
		fs:     fs,
		target: target,
		clip:   rect.Rect{LLx: 0, LLy: 0, URx: float64(w), URy: float64(h)},
		width:  w,
		height: h,
		clamp:  o.clamping,
		lines:  newRasterlines[P](o.capacity),
		stats:  o.stats,
		log:    o.logger,
	}
	r.log.Debug("rasterizer created",
		"width", w, "height", h,
		"capacity", o.capacity,
		"clamping", fmt.Sprintf("%T", o.clamping))
	return r, nil
}

// VertexShader returns the vertex shader.  Shader state, for example a
// transformation matrix, may be modified between calls to DrawTriangle.
func (r *Rasterizer[In, P]) VertexShader() VertexShader[In, P] {
	return r.vs
}

// SetVertexShader replaces the vertex shader.  Rasterlines which are
// already buffered are not affected.
func (r *Rasterizer[In, P]) SetVertexShader(vs VertexShader[In, P]) {
	if vs != nil {
		r.vs = vs
	}
}

// FragmentShader returns the fragment shader.
func (r *Rasterizer[In, P]) FragmentShader() FragmentShader[P] {
	return r.fs
}

// SetFragmentShader replaces the fragment shader.  Buffered rasterlines
// are flushed with the old shader first.
func (r *Rasterizer[In, P]) SetFragmentShader(fs FragmentShader[P]) {
	if fs == nil {
		return
	}
	r.Flush()
	r.fs = fs
}

// Stats returns the statistics collector given via [WithStats], or nil.
func (r *Rasterizer[In, P]) Stats() *Stats {
	return r.stats
}

// Pending returns the number of buffered rasterlines.
func (r *Rasterizer[In, P]) Pending() int {
	return len(r.lines.buf)
}

// Capacity returns the maximal number of buffered rasterlines.
func (r *Rasterizer[In, P]) Capacity() int {
	return r.lines.cap
}

// DrawTriangle converts a triangle into rasterlines.
// The image is only written to when the rasterlines are flushed.
//
// Triangles which are completely outside the image, and triangles with
// non-finite vertex coordinates, are discarded.
func (r *Rasterizer[In, P]) DrawTriangle(a, b, c In) {
	r.stats.addTriangle()

	vertices := [3]Vertex[P]{
		r.vs.Vertex(a),
		r.vs.Vertex(b),
		r.vs.Vertex(c),
	}

	if !r.isVisible(&vertices) {
		r.stats.addDiscardedTriangle()
		if r.log.Enabled(context.Background(), slog.LevelDebug) {
			r.log.Debug("triangle discarded",
				"p1", vertices[0].Coord,
				"p2", vertices[1].Coord,
				"p3", vertices[2].Coord)
		}
		return
	}

	r.rasterizeTriangle(&vertices)
}

// Flush runs the fragment shader for all buffered rasterlines and writes
// the results to the target.  Flush does nothing if no rasterlines are
// buffered.
func (r *Rasterizer[In, P]) Flush() {
	if r.lines.isEmpty() {
		return
	}

	r.stats.addFlush()
	r.log.Debug("flush", "rasterlines", len(r.lines.buf))
	for i := range r.lines.buf {
		r.renderRasterline(&r.lines.buf[i])
	}
	r.lines.clear()
}

// Close flushes all buffered rasterlines.  It is safe to call Close more
// than once.  The returned error is always nil.
func (r *Rasterizer[In, P]) Close() error {
	r.Flush()
	return nil
}

// isVisible implements the early rejection test.  A triangle is invisible
// if all three vertices are beyond the same side of the image.
func (r *Rasterizer[In, P]) isVisible(v *[3]Vertex[P]) bool {
	for i := range v {
		if !v[i].isFinite() {
			return false
		}
	}

	p1, p2, p3 := v[0].Coord, v[1].Coord, v[2].Coord
	clip := r.clip
	switch {
	case p1.X < clip.LLx && p2.X < clip.LLx && p3.X < clip.LLx:
		return false
	case p1.Y < clip.LLy && p2.Y < clip.LLy && p3.Y < clip.LLy:
		return false
	case p1.X >= clip.URx && p2.X >= clip.URx && p3.X >= clip.URx:
		return false
	case p1.Y >= clip.URy && p2.Y >= clip.URy && p3.Y >= clip.URy:
		return false
	}
	return true
}

// rasterizeTriangle walks the two active edges of the triangle from the
// top vertex down, emitting one rasterline per scanline.  The upper part
// (top to mid) and the lower part (mid to bottom) differ in one edge.
func (r *Rasterizer[In, P]) rasterizeTriangle(v *[3]Vertex[P]) {
	iTop, iMid, iBottom := orderVertices(v)
	top, mid, bottom := v[iTop], v[iMid], v[iBottom]

	minV := r.clamp.ScanlineFor(top.Coord.Y)
	midV := r.clamp.ScanlineFor(mid.Coord.Y)
	maxV := r.clamp.ScanlineFor(bottom.Coord.Y) - 1

	// The middle vertex is on the left if it lies left of the long edge
	// from top to bottom.  Zero-height edges make slope comparisons
	// unreliable, so the side is taken from the cross product instead.
	topMid := mid.Coord.Sub(top.Coord)
	topBottom := bottom.Coord.Sub(top.Coord)
	leftToMid := topMid.X*topBottom.Y-topBottom.X*topMid.Y < 0

	left, right := top, top
	var leftAdd, rightAdd Vertex[P]
	if leftToMid {
		leftAdd = edgeStep(top, mid)
		rightAdd = edgeStep(top, bottom)
	} else {
		leftAdd = edgeStep(top, bottom)
		rightAdd = edgeStep(top, mid)
	}

	// Move both edges from the vertex to the anchor of the first scanline.
	d := r.clamp.DistanceToScanlineAnchor(top.Coord.Y)
	left = left.Add(leftAdd.Mul(d))
	right = right.Add(rightAdd.Mul(d))

	y := r.walk(minV, min(midV, r.height), &left, &right, leftAdd, rightAdd)
	if midV >= r.height {
		return
	}

	// Restart the edge which ended at the middle vertex.
	d = r.clamp.DistanceToScanlineAnchor(mid.Coord.Y)
	if leftToMid {
		leftAdd = edgeStep(mid, bottom)
		left = mid.Add(leftAdd.Mul(d))
	} else {
		rightAdd = edgeStep(mid, bottom)
		right = mid.Add(rightAdd.Mul(d))
	}

	r.walk(y, min(maxV+1, r.height), &left, &right, leftAdd, rightAdd)
}

// walk emits rasterlines for the scanlines y in [from, to) and advances
// the edges accordingly.  Scanlines above the image are skipped in a
// single step.  The return value is the first scanline not processed.
func (r *Rasterizer[In, P]) walk(from, to int, left, right *Vertex[P], leftAdd, rightAdd Vertex[P]) int {
	y := from
	if y < 0 {
		n := min(-y, to-y)
		if n > 0 {
			*left = left.Add(leftAdd.Mul(float64(n)))
			*right = right.Add(rightAdd.Mul(float64(n)))
			y += n
		}
	}
	for ; y < to; y++ {
		line, ok := r.clampedRasterline(y, left.Coord.X, right.Coord.X, left.Data, right.Data)
		if ok {
			r.append(line)
		}
		*left = left.Add(leftAdd)
		*right = right.Add(rightAdd)
	}
	return y
}

// orderVertices returns the indices of the top, middle and bottom vertex.
// If all vertices are on the same height, the input order is kept.
func orderVertices[P Payload[P]](v *[3]Vertex[P]) (top, mid, bottom int) {
	for i := 1; i < 3; i++ {
		if v[i].Coord.Y < v[top].Coord.Y {
			top = i
		}
	}
	for i := 1; i < 3; i++ {
		if v[i].Coord.Y > v[bottom].Coord.Y {
			bottom = i
		}
	}
	if v[top].Coord.Y == v[bottom].Coord.Y {
		return 0, 1, 2
	}
	mid = 3 - top - bottom
	return top, mid, bottom
}

// clampedRasterline constructs the rasterline for row y, where the
// triangle extends from x0 to x1 with data d0 and d1 at these positions.
// The result is restricted to the image columns.  If no part of the
// rasterline is visible, ok is false.
func (r *Rasterizer[In, P]) clampedRasterline(y int, x0, x1 float64, d0, d1 P) (line Rasterline[P], ok bool) {
	r.stats.addRasterline()
	if !(x0 < x1) || x1 < r.clip.LLx || x0 >= r.clip.URx {
		r.stats.addDiscardedRasterline()
		return line, false
	}

	step := d1.Sub(d0).Div(x1 - x0)
	isClamped := false

	// Move the start to the first visible column anchor.
	startX := r.clamp.ColumnFor(x0)
	delta := r.clamp.DistanceToColumnAnchor(x0)
	if startX < 0 {
		delta += float64(-startX)
		startX = 0
		isClamped = true
	}
	d0 = d0.Add(step.Mul(delta))

	endX := r.clamp.ColumnFor(x1)
	if endX > r.width {
		endX = r.width
		isClamped = true
	}
	if endX < startX {
		endX = startX
	}

	if isClamped {
		r.stats.addClampedRasterline()
	}

	return Rasterline[P]{
		Y:         y,
		StartX:    startX,
		EndX:      endX,
		StartData: d0,
		Delta:     step,
	}, true
}

func (r *Rasterizer[In, P]) append(line Rasterline[P]) {
	r.lines.append(line)
	if r.lines.isFull() {
		r.Flush()
	}
}

func (r *Rasterizer[In, P]) renderRasterline(line *Rasterline[P]) {
	data := line.StartData
	for x := line.StartX; x < line.EndX; x++ {
		r.target.SetPixel(x, line.Y, r.fs.Fragment(data))
		data = data.Add(line.Delta)
	}
	r.stats.addFragments(line.EndX - line.StartX)
}
