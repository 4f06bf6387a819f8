package clay

import (
	"image/color"
	"unsafe"
)

// Color is an 8-bit per channel RGBA color.
//
// The layout is fixed to four byte-sized channels in r, g, b, a order so that
// a Color can be handed to a host graphics library (image/color.RGBA, a GL
// vertex attribute of normalized UNSIGNED_BYTE x4, raylib's Color) without
// converting each field. Channels are straight (not premultiplied) alpha.
type Color struct {
	R, G, B, A uint8
}

// Layout must stay binary-compatible with color.RGBA.
var (
	_ [unsafe.Sizeof(Color{}) - unsafe.Sizeof(color.RGBA{})]struct{}
	_ [unsafe.Sizeof(color.RGBA{}) - unsafe.Sizeof(Color{})]struct{}
	_ [unsafe.Offsetof(Color{}.A) - unsafe.Offsetof(color.RGBA{}.A)]struct{}
	_ [unsafe.Offsetof(color.RGBA{}.A) - unsafe.Offsetof(Color{}.A)]struct{}
)

// Common colors.
var (
	ColorTransparent = Color{}
	ColorBlack       = Color{0, 0, 0, 255}
	ColorWhite       = Color{255, 255, 255, 255}
)

// FromRGBA reinterprets a host color.RGBA as a Color.
func FromRGBA(c color.RGBA) Color {
	return Color(c)
}

// ToRGBA reinterprets c as a host color.RGBA.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA(c)
}

// RGBA implements color.Color. The channels are treated as straight alpha
// and premultiplied here, matching color.NRGBA.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA(c).RGBA()
}

// Floats returns the channels normalized to [0, 1].
func (c Color) Floats() (r, g, b, a float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255
}

// Blend mixes c toward other by t in [0, 1].
func (c Color) Blend(other Color, t float32) Color {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return other
	}
	mix := func(a, b uint8) uint8 {
		return uint8(float32(a) + (float32(b)-float32(a))*t + 0.5)
	}
	return Color{mix(c.R, other.R), mix(c.G, other.G), mix(c.B, other.B), mix(c.A, other.A)}
}
