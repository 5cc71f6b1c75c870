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

// Command trirender renders a triangle scene file to a PNG image.
//
// Usage:
//
//	trirender [options] scene.toml|scene.yaml
//
// Options:
//
//	-o <file>     output file (default: scene name with .png extension)
//	-preview <n>  also write a preview scaled to at most n pixels
//	-stats        print rasterizer statistics
//	-v            log debug information to stderr
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"seehuhn.de/go/rasterizer"
	"seehuhn.de/go/rasterizer/scene"
)

func main() {
	out := flag.String("o", "", "output file")
	preview := flag.Int("preview", 0, "maximal size of an additional preview image")
	showStats := flag.Bool("stats", false, "print rasterizer statistics")
	verbose := flag.Bool("v", false, "verbose output")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: trirender [options] scene.toml|scene.yaml\n\n")
		fmt.Fprintf(os.Stderr, "Render a triangle scene to a PNG image.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		flag.Usage()
		os.Exit(1)
	}
	in := args[0]
	if *out == "" {
		*out = strings.TrimSuffix(in, filepath.Ext(in)) + ".png"
	}

	if *verbose {
		rasterizer.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(in, *out, *preview, *showStats); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(in, out string, preview int, showStats bool) error {
	s, err := scene.Load(in)
	if err != nil {
		return err
	}

	img, stats, err := scene.Render(s)
	if err != nil {
		return err
	}
	if showStats {
		fmt.Println(stats)
	}

	if err := writePNG(out, img.ToNRGBA()); err != nil {
		return err
	}

	if preview > 0 {
		w, h := previewSize(s.Width, s.Height, preview)
		name := strings.TrimSuffix(out, filepath.Ext(out)) + "-preview.png"
		if err := writePNG(name, img.Preview(w, h)); err != nil {
			return err
		}
	}
	return nil
}

// previewSize scales width×height to fit into limit×limit, keeping the
// aspect ratio.
func previewSize(width, height, limit int) (int, int) {
	if width >= height {
		return limit, max(1, height*limit/width)
	}
	return max(1, width*limit/height), limit
}

func writePNG(name string, img image.Image) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("cannot create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}
