package imaging

// DownSample shrinks the buffer by integer scale factors, averaging each
// heightScale x widthScale block of source cells into one output cell.
//
// Valid input requires 1 <= heightScale <= H, 1 <= widthScale <= W, and both
// scales dividing their dimension exactly. Any violation leaves the image
// unchanged: the original buffer is returned as-is, no error.
//
// Each channel is summed over the whole block and divided once with
// truncating integer division, so the result is a true block average rather
// than an iterated pairwise one. The output is always a fresh buffer; the
// source is never written, even when a scale factor is 1.
func DownSample(b *Buffer, heightScale, widthScale int) *Buffer {
	h := b.Height()
	w := b.Width()

	if heightScale < 1 || heightScale > h {
		return b
	}
	if widthScale < 1 || widthScale > w {
		return b
	}
	if h%heightScale != 0 || w%widthScale != 0 {
		return b
	}

	out := New(h/heightScale, w/widthScale)
	blockCells := heightScale * widthScale

	for a := 0; a < out.Height(); a++ {
		for bcol := 0; bcol < out.Width(); bcol++ {
			var sumR, sumG, sumB int
			for c := 0; c < heightScale; c++ {
				for d := 0; d < widthScale; d++ {
					word := b.atPacked(a*heightScale+c, bcol*widthScale+d)
					sumR += int(UnpackRed(word))
					sumG += int(UnpackGreen(word))
					sumB += int(UnpackBlue(word))
				}
			}
			out.setPacked(a, bcol, Pack(
				uint8(sumR/blockCells),
				uint8(sumG/blockCells),
				uint8(sumB/blockCells),
			))
		}
	}
	return out
}
