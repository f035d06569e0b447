// Copyright 2026 The juliascale Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart renders scaling charts as images, HTML pages and
// spreadsheets.
//
// Rendering is deterministic: the same chart and options always
// produce the same bytes.
package chart

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hpclab/juliascale/scaling"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"
)

// A Format is an image file format.
type Format int

const (
	PNG Format = iota
	JPEG
	TIFF
	SVG
)

var formatNames = []string{"png", "jpeg", "tiff", "svg"}

func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Ext returns the file extension for f, including the leading dot.
func (f Format) Ext() string {
	if f == JPEG {
		return ".jpg"
	}
	return "." + f.String()
}

// ParseFormat returns the format named s, which may also be a file
// extension.
func ParseFormat(s string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(s), ".") {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "tif", "tiff":
		return TIFF, nil
	case "svg":
		return SVG, nil
	}
	return 0, fmt.Errorf("unknown image format %q", s)
}

// Options controls the size of rendered images.
type Options struct {
	Width, Height vg.Length
	DPI           int // Ignored for SVG
}

// DefaultOptions returns 10x6 inch images at 100 DPI.
func DefaultOptions() Options {
	return Options{Width: 10 * vg.Inch, Height: 6 * vg.Inch, DPI: 100}
}

const pointRad = 3

// Plot builds a line plot of c. Every series is drawn as a line with
// circle markers, and aggregated series get error bars spanning the
// range of their trials. A series without points appears only in the
// legend.
func Plot(c *scaling.Chart) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	colors, err := seriesColors(len(c.Series))
	if err != nil {
		return nil, err
	}
	for i, s := range c.Series {
		xys := make(plotter.XYs, len(s.Points))
		for j, pt := range s.Points {
			xys[j].X, xys[j].Y = pt.X, pt.Y
		}
		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", s.Label, err)
		}
		line.LineStyle.Color = colors[i]
		points.GlyphStyle.Color = colors[i]
		points.GlyphStyle.Shape = draw.CircleGlyph{}
		points.GlyphStyle.Radius = vg.Points(pointRad)
		p.Legend.Add(s.Label, line, points)
		if len(xys) == 0 {
			continue
		}
		p.Add(line, points)

		if s.Aggregated() {
			bars, err := plotter.NewYErrorBars(errorPoints(s.Points))
			if err != nil {
				return nil, fmt.Errorf("series %q: %w", s.Label, err)
			}
			bars.LineStyle.Color = colors[i]
			p.Add(bars)
		}
	}
	return p, nil
}

// seriesColors returns n colors from the Set1 palette, reusing
// colors if there are more series than the palette has.
func seriesColors(n int) ([]color.Color, error) {
	k := min(max(n, 3), 9)
	pal, err := brewer.GetPalette(brewer.TypeQualitative, "Set1", k)
	if err != nil {
		return nil, err
	}
	cs := pal.Colors()
	out := make([]color.Color, n)
	for i := range out {
		out[i] = cs[i%len(cs)]
	}
	return out, nil
}

// errorPoints adapts points to plotter.YErrorer.
type errorPoints []scaling.Point

func (e errorPoints) Len() int { return len(e) }

func (e errorPoints) XY(i int) (x, y float64) { return e[i].X, e[i].Y }

func (e errorPoints) YError(i int) (lo, hi float64) { return e[i].Y - e[i].Lo, e[i].Hi - e[i].Y }

// WriteImage renders c in format f and writes it to w.
func WriteImage(w io.Writer, c *scaling.Chart, f Format, o Options) error {
	p, err := Plot(c)
	if err != nil {
		return err
	}
	def := DefaultOptions()
	if o.Width <= 0 || o.Height <= 0 {
		o.Width, o.Height = def.Width, def.Height
	}
	if o.DPI <= 0 {
		o.DPI = def.DPI
	}

	var can vg.CanvasWriterTo
	if f == SVG {
		can = vgsvg.New(o.Width, o.Height)
	} else {
		img := vgimg.NewWith(vgimg.UseWH(o.Width, o.Height), vgimg.UseDPI(o.DPI), vgimg.UseBackgroundColor(color.White))
		switch f {
		case PNG:
			can = vgimg.PngCanvas{Canvas: img}
		case JPEG:
			can = vgimg.JpegCanvas{Canvas: img}
		case TIFF:
			can = vgimg.TiffCanvas{Canvas: img}
		default:
			return fmt.Errorf("unsupported image format %v", f)
		}
	}
	p.Draw(draw.New(can))
	_, err = can.WriteTo(w)
	return err
}

// Save renders c to the file path, choosing the format from its
// extension. The file is replaced atomically, so a failed render
// leaves any existing file untouched and creates no new one.
func Save(path string, c *scaling.Chart, o Options) error {
	f, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return writeAtomic(path, func(w io.Writer) error {
		return WriteImage(w, c, f, o)
	})
}

// writeAtomic writes a file by calling write on a temporary file in
// the same directory and renaming it to path.
func writeAtomic(path string, write func(w io.Writer) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()
	if err = write(tmp); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	// CreateTemp uses mode 0600.
	if err = os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
