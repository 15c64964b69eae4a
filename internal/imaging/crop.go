package imaging

// Crop extracts the rectangular region with top-left corner (y1, x1)
// inclusive and bottom-right corner (y2, x2) exclusive into a new buffer.
//
// Validity follows the editor's policy for bad parameters: if the region
// lies outside the buffer or is empty (y1 >= y2 or x1 >= x2), the original
// buffer is returned unchanged.
func Crop(b *Buffer, y1, x1, y2, x2 int) *Buffer {
	if y1 < 0 || x1 < 0 || y2 > b.Height() || x2 > b.Width() {
		return b
	}
	if y1 >= y2 || x1 >= x2 {
		return b
	}

	out := New(y2-y1, x2-x1)
	for row := 0; row < out.Height(); row++ {
		for col := 0; col < out.Width(); col++ {
			out.setPacked(row, col, b.atPacked(y1+row, x1+col))
		}
	}
	return out
}
