package imaging

import (
	"fmt"
	"io"
)

// rgbTemplate is the fixed-width per-pixel format used by Dump: each
// channel is printed as a 3-digit, space-padded decimal.
const rgbTemplate = "(%3d, %3d, %3d) "

// Dump writes a human-readable rendering of the buffer to w, one line per
// row, each pixel as its "(red, green, blue)" triple. Intended for manual
// inspection and tests, not persistence.
func Dump(w io.Writer, b *Buffer) error {
	for row := 0; row < b.Height(); row++ {
		for col := 0; col < b.Width(); col++ {
			c := b.At(row, col)
			if _, err := fmt.Fprintf(w, rgbTemplate, c.R, c.G, c.B); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
