package imaging

// Patch composites src onto dst with its top-left corner at
// (startRow, startCol), skipping source cells whose color equals
// transparent. It returns the number of cells actually written.
//
// The placement must satisfy all of:
//  1. 0 <= startRow <= dst.Height() and 0 <= startCol <= dst.Width()
//  2. src fits inside dst: src.Height() <= dst.Height() and
//     src.Width() <= dst.Width()
//  3. the patch fits at the offset: startRow+src.Height() <= dst.Height()
//     and startCol+src.Width() <= dst.Width()
//
// If any check fails the destination is left untouched and the count is 0,
// with no error. The transparent color is compared by exact packed-word
// equality, so only a pixel matching all three channels is skipped.
//
// Patch mutates dst in place; it is the only transform that does.
func Patch(dst *Buffer, startRow, startCol int, src *Buffer, transparent Color) int {
	if startRow < 0 || startRow > dst.Height() {
		return 0
	}
	if startCol < 0 || startCol > dst.Width() {
		return 0
	}
	if src.Height() > dst.Height() || src.Width() > dst.Width() {
		return 0
	}
	if startRow+src.Height() > dst.Height() || startCol+src.Width() > dst.Width() {
		return 0
	}

	trans := transparent.Packed()
	patched := 0

	for a := 0; a < src.Height(); a++ {
		for b := 0; b < src.Width(); b++ {
			word := src.atPacked(a, b)
			if word == trans {
				continue
			}
			dst.setPacked(a+startRow, b+startCol, word)
			patched++
		}
	}
	return patched
}
