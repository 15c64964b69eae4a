package imaging

// Rotate rotates the buffer by the given number of degrees clockwise.
//
// Valid input is a non-negative multiple of 90. Any other value leaves the
// image unchanged: the original buffer is returned as-is, with no error.
// Callers relying on this no-op contract include the script mode, where a
// bad degree simply does nothing.
//
// The rotation is applied as (degrees/90) mod 4 quarter-turn steps. Each
// step maps a source cell (i, j) of an HxW buffer to destination cell
// (j, H-1-i) of the resulting WxH buffer. Four consecutive steps reproduce
// the original buffer exactly.
func Rotate(b *Buffer, degrees int) *Buffer {
	if degrees < 0 || degrees%90 != 0 {
		return b
	}

	for turns := (degrees / 90) % 4; turns > 0; turns-- {
		b = rotate90(b)
	}
	return b
}

// rotate90 performs a single clockwise quarter turn into a fresh buffer.
func rotate90(src *Buffer) *Buffer {
	h := src.Height()
	w := src.Width()
	dst := New(w, h)

	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			dst.setPacked(j, h-1-i, src.atPacked(i, j))
		}
	}
	return dst
}
