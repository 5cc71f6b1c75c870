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
	"errors"
	"log/slog"
)

// Configuration errors returned by New.
var (
	ErrInvalidTarget   = errors.New("rasterizer: invalid target image")
	ErrInvalidCapacity = errors.New("rasterizer: rasterline capacity must be positive")
	ErrNilShader       = errors.New("rasterizer: shader must not be nil")
	ErrNilClamping     = errors.New("rasterizer: clamping policy must not be nil")
)

// Option configures a Rasterizer during creation.
//
// Example:
//
//	stats := &rasterizer.Stats{}
//	r, err := rasterizer.New[MyInput, rasterizer.Scalar](img, vs, fs,
//	    rasterizer.WithCapacity(256),
//	    rasterizer.WithStats(stats))
type Option func(*options)

type options struct {
	capacity int
	clamping ClampingPolicy
	stats    *Stats
	logger   *slog.Logger
}

func defaultOptions() options {
	return options{
		capacity: DefaultCapacity,
		clamping: CenterPixel{},
	}
}

// WithCapacity sets the number of rasterlines which are buffered before
// the fragment stage runs.  The default is [DefaultCapacity].
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithClamping sets the pixel sampling convention.
// The default is [CenterPixel].
func WithClamping(p ClampingPolicy) Option {
	return func(o *options) {
		o.clamping = p
	}
}

// WithStats makes the rasterizer record its decisions in s.
func WithStats(s *Stats) Option {
	return func(o *options) {
		o.stats = s
	}
}

// WithLogger sets the logger for this rasterizer, overriding the package
// logger set by [SetLogger].
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
