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

// Package scene describes overlay images made of colored triangles,
// stored as TOML or YAML files, and renders them with the rasterizer.
//
// A minimal scene in TOML:
//
//	width = 64
//	height = 64
//	background = [0, 0, 0, 1]
//
//	[[triangles]]
//	a = { x = 8, y = 8, color = [1, 0, 0] }
//	b = { x = 56, y = 16, color = [0, 1, 0] }
//	c = { x = 24, y = 56, color = [0, 0, 1] }
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/rasterizer"
)

// Errors returned when loading scenes.
var (
	ErrFormat  = errors.New("scene: unsupported file format")
	ErrInvalid = errors.New("scene: invalid scene")
)

// Format identifies a scene file encoding.
type Format int

const (
	TOML Format = iota
	YAML
)

func (f Format) String() string {
	switch f {
	case TOML:
		return "toml"
	case YAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatForPath chooses the format from the file name extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrFormat, path)
	}
}

// Scene is an image made of colored triangles.
type Scene struct {
	Width      int       `toml:"width" yaml:"width"`
	Height     int       `toml:"height" yaml:"height"`
	Background []float64 `toml:"background" yaml:"background"`

	// Unit selects unit-square coordinates: (0, 0) is the top-left and
	// (1, 1) the bottom-right image corner.  Otherwise vertex coordinates
	// are in pixels.
	Unit bool `toml:"unit" yaml:"unit"`

	// CTM, if set, is an additional affine transformation (six numbers,
	// in PDF order) applied to all vertices before the unit scaling.
	CTM []float64 `toml:"ctm" yaml:"ctm"`

	// Capacity is the rasterline buffer size; zero selects the default.
	Capacity int `toml:"capacity" yaml:"capacity"`

	// Clamping is "center" (default) or "corner".
	Clamping string `toml:"clamping" yaml:"clamping"`

	Triangles []Triangle `toml:"triangles" yaml:"triangles"`
}

// Triangle is a triangle with per-vertex colors.
type Triangle struct {
	A Vertex `toml:"a" yaml:"a"`
	B Vertex `toml:"b" yaml:"b"`
	C Vertex `toml:"c" yaml:"c"`
}

// Vertex is a triangle corner.  Color has three (RGB, opaque) or four
// (RGBA) components in linear light.
type Vertex struct {
	X     float64   `toml:"x" yaml:"x"`
	Y     float64   `toml:"y" yaml:"y"`
	Color []float64 `toml:"color" yaml:"color"`
}

// Load reads a scene file.  The format is chosen by the file name extension.
func Load(path string) (*Scene, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Decode reads and validates a scene.  Unknown fields are rejected.
func Decode(r io.Reader, format Format) (*Scene, error) {
	s := &Scene{}
	switch format {
	case TOML:
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(s); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(s); err != nil {
			if errors.Is(err, io.EOF) {
				err = errors.New("empty document")
			}
			return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrFormat, format)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the scene for consistency.
func (s *Scene) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalid, s.Width, s.Height)
	}
	if s.Background != nil {
		if _, err := toColor(s.Background); err != nil {
			return fmt.Errorf("%w: background: %w", ErrInvalid, err)
		}
	}
	if len(s.CTM) != 0 && len(s.CTM) != 6 {
		return fmt.Errorf("%w: ctm needs 6 elements, got %d", ErrInvalid, len(s.CTM))
	}
	if s.Capacity < 0 {
		return fmt.Errorf("%w: negative capacity %d", ErrInvalid, s.Capacity)
	}
	if _, err := s.clamping(); err != nil {
		return err
	}
	for i, t := range s.Triangles {
		for j, v := range [3]Vertex{t.A, t.B, t.C} {
			if _, err := toColor(v.Color); err != nil {
				return fmt.Errorf("%w: triangle %d, vertex %c: %w", ErrInvalid, i, 'a'+j, err)
			}
		}
	}
	return nil
}

// Transform returns the map from scene coordinates to image coordinates.
func (s *Scene) Transform() matrix.Matrix {
	m := matrix.Identity
	if len(s.CTM) == 6 {
		m = matrix.Matrix(s.CTM)
	}
	if s.Unit {
		w, h := float64(s.Width), float64(s.Height)
		m = matrix.Matrix{m[0] * w, m[1] * h, m[2] * w, m[3] * h, m[4] * w, m[5] * h}
	}
	return m
}

func (s *Scene) clamping() (rasterizer.ClampingPolicy, error) {
	switch strings.ToLower(s.Clamping) {
	case "", "center":
		return rasterizer.CenterPixel{}, nil
	case "corner":
		return rasterizer.CornerPixel{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown clamping %q", ErrInvalid, s.Clamping)
	}
}

func toColor(c []float64) (rasterizer.Color, error) {
	switch len(c) {
	case 3:
		return rasterizer.Color{R: c[0], G: c[1], B: c[2], A: 1}, nil
	case 4:
		return rasterizer.Color{R: c[0], G: c[1], B: c[2], A: c[3]}, nil
	default:
		return rasterizer.Color{}, fmt.Errorf("color needs 3 or 4 components, got %d", len(c))
	}
}
