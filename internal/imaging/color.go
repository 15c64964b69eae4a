package imaging

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Bit layout of a packed color word. Red occupies bits 23:16, green 15:8,
// blue 7:0. Bits above 23 are zero on encode and ignored on decode, so a
// word carrying an alpha byte decodes to the same color as one without.
const (
	blueShift  = 0
	greenShift = 8
	redShift   = 16

	channelMask = 0xff
)

// Color is an RGB color with 8-bit components.
//
// Each component ranges from 0 to 255, where:
//   - 0 represents no intensity (black for all components)
//   - 255 represents full intensity (white for all components)
type Color struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// Pack combines three 8-bit channel values into a single packed word.
//
// The result's low 24 bits exactly reproduce the inputs under the Unpack
// functions; the high byte is always zero. Pack and the Unpack functions
// are exact inverses over the full uint8 domain.
func Pack(r, g, b uint8) uint32 {
	return uint32(r)<<redShift | uint32(g)<<greenShift | uint32(b)<<blueShift
}

// UnpackRed extracts the red channel from a packed word.
func UnpackRed(w uint32) uint8 {
	return uint8(w >> redShift & channelMask)
}

// UnpackGreen extracts the green channel from a packed word.
func UnpackGreen(w uint32) uint8 {
	return uint8(w >> greenShift & channelMask)
}

// UnpackBlue extracts the blue channel from a packed word.
func UnpackBlue(w uint32) uint8 {
	return uint8(w >> blueShift & channelMask)
}

// Unpack decodes a packed word into a Color. Bits above 23 are discarded,
// so a word containing an alpha byte unpacks to the same Color as one
// without it.
func Unpack(w uint32) Color {
	return Color{R: UnpackRed(w), G: UnpackGreen(w), B: UnpackBlue(w)}
}

// Packed returns the color as a single packed word.
func (c Color) Packed() uint32 {
	return Pack(c.R, c.G, c.B)
}

// Hex returns the color in "#RRGGBB" format.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ParseHex parses a hex color string such as "#FF0000" or "ff0000" into a
// Color. The leading '#' is optional.
func ParseHex(s string) (Color, error) {
	if len(s) > 0 && s[0] != '#' {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, nil
}
