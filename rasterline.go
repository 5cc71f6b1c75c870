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

// DefaultCapacity is the default number of rasterlines buffered before
// they are written to the image.
const DefaultCapacity = 4096

// Rasterline is a horizontal run of pixels [StartX, EndX) on row Y.
// The fragment data for pixel StartX+i is StartData + i*Delta.
type Rasterline[P any] struct {
	Y         int
	StartX    int
	EndX      int
	StartData P
	Delta     P
}

// rasterlines is a bounded queue of rasterlines waiting to be drawn.
type rasterlines[P any] struct {
	buf []Rasterline[P]
	cap int
}

func newRasterlines[P any](capacity int) rasterlines[P] {
	return rasterlines[P]{
		buf: make([]Rasterline[P], 0, capacity),
		cap: capacity,
	}
}

func (l *rasterlines[P]) append(line Rasterline[P]) {
	l.buf = append(l.buf, line)
}

func (l *rasterlines[P]) isEmpty() bool {
	return len(l.buf) == 0
}

func (l *rasterlines[P]) isFull() bool {
	return len(l.buf) >= l.cap
}

// clear empties the queue, keeping the allocated storage.
func (l *rasterlines[P]) clear() {
	clear(l.buf)
	l.buf = l.buf[:0]
}
