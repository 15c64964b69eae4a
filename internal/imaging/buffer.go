package imaging

import "fmt"

// Buffer is a rectangular, row-major grid of packed color words.
//
// A Buffer owns its cells: construction and Clone always allocate fresh
// storage, and no operation shares pixel memory between two buffers. The
// shape is fixed for the lifetime of the buffer; operations that change
// shape (rotate, downsample, crop) construct a new Buffer.
//
// Dimensions are stored explicitly, so degenerate buffers (height or width
// zero) keep their other dimension.
type Buffer struct {
	height int
	width  int
	pix    []uint32 // row-major, len == height*width
}

// New creates a zero-filled (black) buffer of the given dimensions.
// Negative dimensions are treated as zero.
func New(height, width int) *Buffer {
	if height < 0 {
		height = 0
	}
	if width < 0 {
		width = 0
	}
	return &Buffer{
		height: height,
		width:  width,
		pix:    make([]uint32, height*width),
	}
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	c := &Buffer{
		height: b.height,
		width:  b.width,
		pix:    make([]uint32, len(b.pix)),
	}
	copy(c.pix, b.pix)
	return c
}

// Height returns the number of rows.
func (b *Buffer) Height() int { return b.height }

// Width returns the number of columns.
func (b *Buffer) Width() int { return b.width }

// At returns the color at (row, col).
//
// Out-of-range coordinates are a programming error and panic: every
// transform validates its bounds before touching cells, so an invalid
// index can only come from a broken caller, not from user input.
func (b *Buffer) At(row, col int) Color {
	return Unpack(b.pix[b.offset(row, col)])
}

// Set writes the color at (row, col). Panics on out-of-range coordinates,
// like At.
func (b *Buffer) Set(row, col int, c Color) {
	b.pix[b.offset(row, col)] = c.Packed()
}

// atPacked and setPacked skip the Color round-trip for transform loops
// that move whole words.
func (b *Buffer) atPacked(row, col int) uint32 {
	return b.pix[b.offset(row, col)]
}

func (b *Buffer) setPacked(row, col int, w uint32) {
	b.pix[b.offset(row, col)] = w
}

func (b *Buffer) offset(row, col int) int {
	if row < 0 || row >= b.height || col < 0 || col >= b.width {
		panic(fmt.Sprintf("imaging: index (%d,%d) outside %dx%d buffer", row, col, b.height, b.width))
	}
	return row*b.width + col
}

// Equal reports whether two buffers have the same shape and identical
// cell contents.
func (b *Buffer) Equal(o *Buffer) bool {
	if b.height != o.height || b.width != o.width {
		return false
	}
	for i, w := range b.pix {
		if o.pix[i] != w {
			return false
		}
	}
	return true
}
