package frame

import "image/color"

// Color is a non-alpha-premultiplied 32-bit color.
type Color struct {
	R, G, B, A uint8
}

// Some well-known colors.
var (
	Transparent = Color{}
	Black       = Color{0, 0, 0, 0xff}
	White       = Color{0xff, 0xff, 0xff, 0xff}
)

// RGBA is part of interface color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

var _ color.Color = Color{}

// ColorOf converts any color into a Color.
func ColorOf(c color.Color) Color {
	if c == nil {
		return Transparent
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{n.R, n.G, n.B, n.A}
}

// IsTransparent is true for fully transparent colors. Transparent colors
// are never painted.
func (c Color) IsTransparent() bool {
	return c.A == 0
}
