package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// ToImage renders the buffer as a fully opaque *image.RGBA.
func ToImage(b *Buffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width(), b.Height()))
	for row := 0; row < b.Height(); row++ {
		for col := 0; col < b.Width(); col++ {
			c := b.At(row, col)
			img.SetRGBA(col, row, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
		}
	}
	return img
}

// Save writes the buffer to path. The format is chosen by file extension,
// PNG being the expected one; the output carries no transparency channel.
// I/O and encoding failures are returned to the caller.
func Save(b *Buffer, path string) error {
	if err := imaging.Save(ToImage(b), path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}
