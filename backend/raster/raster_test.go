package raster_test

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/go-theft-auto/clay"
	"github.com/go-theft-auto/clay/backend/raster"
)

func newScene(t *testing.T) *clay.Context {
	t.Helper()
	ctx := clay.NewContext(clay.Dimensions{Width: 100, Height: 100})
	ctx.BeginLayout()
	ctx.Element(clay.ElementDeclaration{
		ID:              clay.ID("Red"),
		Box:             clay.BoundingBox{X: 10, Y: 10, Width: 40, Height: 40},
		BackgroundColor: clay.Color{R: 255, A: 255},
	}, nil)
	ctx.EndLayout()
	return ctx
}

func TestSnapshotFillsElements(t *testing.T) {
	ctx := newScene(t)
	opts := raster.DefaultOptions()
	opts.HoverOutline = clay.ColorTransparent

	img := raster.Snapshot(ctx, opts)

	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 100 {
		t.Fatalf("bounds = %v", b)
	}
	r, g, b, _ := img.At(30, 30).RGBA()
	if r>>8 != 255 || g != 0 || b != 0 {
		t.Errorf("inside element = %v, want red", img.At(30, 30))
	}
	want := color.NRGBAModel.Convert(opts.Background.ToRGBA())
	if got := color.NRGBAModel.Convert(img.At(80, 80)); got != want {
		t.Errorf("background = %v, want %v", got, want)
	}
}

func TestWritePNG(t *testing.T) {
	ctx := newScene(t)
	ctx.SetPointerState(clay.Vector2{X: 30, Y: 30}, false)

	var buf bytes.Buffer
	if err := raster.WritePNG(&buf, ctx, raster.DefaultOptions()); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 100 {
		t.Errorf("width = %d", img.Bounds().Dx())
	}
}
