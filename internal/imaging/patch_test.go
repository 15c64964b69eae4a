package imaging

import "testing"

func TestPatch_CountsAndMasking(t *testing.T) {
	dst := New(4, 4)
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			dst.Set(row, col, gray(50))
		}
	}

	transparent := Color{R: 160, G: 150, B: 140}
	src := bufferFrom(t, [][]Color{
		{gray(1), transparent},
		{gray(3), gray(4)},
	})

	got := Patch(dst, 0, 0, src, transparent)

	if got != 3 {
		t.Errorf("patched count: got %d, want 3", got)
	}
	if dst.At(0, 0) != gray(1) || dst.At(1, 0) != gray(3) || dst.At(1, 1) != gray(4) {
		t.Error("opaque source cells were not copied")
	}
	if dst.At(0, 1) != gray(50) {
		t.Errorf("transparent cell overwrote destination: got %v, want %v", dst.At(0, 1), gray(50))
	}
}

func TestPatch_Offset(t *testing.T) {
	dst := New(4, 4)
	src := bufferFrom(t, [][]Color{
		{gray(9), gray(8)},
		{gray(7), gray(6)},
	})

	got := Patch(dst, 2, 1, src, Color{R: 255, G: 255, B: 255})

	if got != 4 {
		t.Fatalf("patched count: got %d, want 4", got)
	}
	if dst.At(2, 1) != gray(9) || dst.At(2, 2) != gray(8) || dst.At(3, 1) != gray(7) || dst.At(3, 2) != gray(6) {
		t.Error("patch not placed at the given offset")
	}
	if dst.At(0, 0) != (Color{}) || dst.At(1, 3) != (Color{}) {
		t.Error("cells outside the patch were modified")
	}
}

func TestPatch_ExactFit(t *testing.T) {
	// A source as large as the destination fits at (0,0), and a
	// full-width source at startColumn 0 is a legal placement.
	dst := New(3, 3)
	src := bufferFrom(t, [][]Color{
		{gray(1), gray(2), gray(3)},
	})

	if got := Patch(dst, 2, 0, src, Color{R: 255, G: 255, B: 255}); got != 3 {
		t.Errorf("full-width patch at bottom row: got %d, want 3", got)
	}

	whole := New(3, 3)
	full := bufferFrom(t, [][]Color{
		{gray(1), gray(1), gray(1)},
		{gray(1), gray(1), gray(1)},
		{gray(1), gray(1), gray(1)},
	})
	if got := Patch(whole, 0, 0, full, Color{R: 255, G: 255, B: 255}); got != 9 {
		t.Errorf("same-size patch: got %d, want 9", got)
	}
}

func TestPatch_AllTransparent(t *testing.T) {
	dst := New(2, 2)
	snapshot := dst.Clone()
	transparent := Color{R: 5, G: 6, B: 7}
	src := bufferFrom(t, [][]Color{
		{transparent, transparent},
	})

	if got := Patch(dst, 0, 0, src, transparent); got != 0 {
		t.Errorf("patched count: got %d, want 0", got)
	}
	if !dst.Equal(snapshot) {
		t.Error("fully transparent patch modified the destination")
	}
}

func TestPatch_OutOfBounds(t *testing.T) {
	white := Color{R: 255, G: 255, B: 255}
	src := bufferFrom(t, [][]Color{
		{gray(1), gray(2)},
		{gray(3), gray(4)},
	})
	big := New(5, 5)

	tests := []struct {
		name               string
		startRow, startCol int
		src                *Buffer
	}{
		{"negative row", -1, 0, src},
		{"negative column", 0, -1, src},
		{"row past height", 5, 0, src},
		{"column past width", 0, 5, src},
		{"source taller than destination", 0, 0, big},
		{"hangs off bottom", 3, 0, src},
		{"hangs off right", 0, 3, src},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := New(4, 4)
			snapshot := dst.Clone()

			if got := Patch(dst, tt.startRow, tt.startCol, tt.src, white); got != 0 {
				t.Errorf("patched count: got %d, want 0", got)
			}
			if !dst.Equal(snapshot) {
				t.Error("invalid placement modified the destination")
			}
		})
	}
}
