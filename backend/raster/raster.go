// Package raster renders a finalized clay pass into an image in software.
// It is used for snapshots in tests and the clayid CLI.
package raster

import (
	"fmt"
	"image"
	"io"

	"github.com/fogleman/gg"

	"github.com/go-theft-auto/clay"
)

// Options controls snapshot rendering.
type Options struct {
	Background   clay.Color
	HoverOutline clay.Color // Outline drawn around hovered elements; zero alpha disables it
	OutlineWidth float64
}

// DefaultOptions draws on dark grey with a yellow hover outline.
func DefaultOptions() Options {
	return Options{
		Background:   clay.Color{R: 30, G: 30, B: 36, A: 255},
		HoverOutline: clay.Color{R: 255, G: 214, B: 0, A: 255},
		OutlineWidth: 2,
	}
}

// Snapshot draws the last finalized pass of ctx.
func Snapshot(ctx *clay.Context, opts Options) image.Image {
	return draw(ctx, opts).Image()
}

// WritePNG draws the last finalized pass of ctx and encodes it as PNG.
func WritePNG(w io.Writer, ctx *clay.Context, opts Options) error {
	if err := draw(ctx, opts).EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}

func draw(ctx *clay.Context, opts Options) *gg.Context {
	d := ctx.LayoutDimensions()
	dc := gg.NewContext(max(int(d.Width), 1), max(int(d.Height), 1))

	setColor(dc, opts.Background)
	dc.Clear()

	frame := ctx.Frame()
	for _, e := range frame {
		if e.BackgroundColor.A == 0 {
			continue
		}
		setColor(dc, e.BackgroundColor)
		dc.DrawRectangle(float64(e.Box.X), float64(e.Box.Y), float64(e.Box.Width), float64(e.Box.Height))
		dc.Fill()
	}

	// Outlines go on top so nested hovered elements stay visible.
	if opts.HoverOutline.A > 0 && opts.OutlineWidth > 0 {
		setColor(dc, opts.HoverOutline)
		dc.SetLineWidth(opts.OutlineWidth)
		for _, e := range frame {
			if !e.Hovered || e.Depth == 0 {
				continue
			}
			dc.DrawRectangle(float64(e.Box.X), float64(e.Box.Y), float64(e.Box.Width), float64(e.Box.Height))
			dc.Stroke()
		}
	}

	return dc
}

// setColor passes the straight-alpha channels through unchanged.
func setColor(dc *gg.Context, c clay.Color) {
	dc.SetRGBA255(int(c.R), int(c.G), int(c.B), int(c.A))
}
