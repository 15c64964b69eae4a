package imaging

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeTestPNG encodes a small image with distinct channel values per
// pixel and returns its path.
func writeTestPNG(t *testing.T, height, width int) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(y*width + x),
				G: uint8(10 + y),
				B: uint8(20 + x),
				A: 0xff,
			})
		}
	}

	path := filepath.Join(t.TempDir(), "test.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode test png: %v", err)
	}
	return path
}

func TestOpen(t *testing.T) {
	path := writeTestPNG(t, 2, 3)

	b, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if b.Height() != 2 || b.Width() != 3 {
		t.Fatalf("dimensions: got %dx%d, want 2x3", b.Height(), b.Width())
	}
	for row := 0; row < 2; row++ {
		for col := 0; col < 3; col++ {
			want := Color{R: uint8(row*3 + col), G: uint8(10 + row), B: uint8(20 + col)}
			if got := b.At(row, col); got != want {
				t.Errorf("cell (%d,%d): got %v, want %v", row, col, got, want)
			}
		}
	}
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "does-not-exist.png"))
	if err == nil {
		t.Fatal("Open should fail for a missing file")
	}
}

func TestFromImage_NonRGBLayout(t *testing.T) {
	// Paletted images take the best-effort path: a warning is logged and
	// the channels still come through.
	palette := color.Palette{
		color.NRGBA{R: 0, G: 0, B: 0, A: 0xff},
		color.NRGBA{R: 200, G: 100, B: 50, A: 0xff},
	}
	img := image.NewPaletted(image.Rect(0, 0, 2, 1), palette)
	img.SetColorIndex(1, 0, 1)

	b := FromImage(img)

	if b.Height() != 1 || b.Width() != 2 {
		t.Fatalf("dimensions: got %dx%d, want 1x2", b.Height(), b.Width())
	}
	if got := b.At(0, 0); got != (Color{}) {
		t.Errorf("cell (0,0): got %v, want black", got)
	}
	if got := b.At(0, 1); got != (Color{R: 200, G: 100, B: 50}) {
		t.Errorf("cell (0,1): got %v, want {200 100 50}", got)
	}
}

func TestFromImage_OffsetBounds(t *testing.T) {
	// Images whose bounds do not start at the origin must be read
	// relative to their own minimum.
	img := image.NewNRGBA(image.Rect(5, 7, 7, 8))
	img.SetNRGBA(5, 7, color.NRGBA{R: 1, A: 0xff})
	img.SetNRGBA(6, 7, color.NRGBA{R: 2, A: 0xff})

	b := FromImage(img)

	if b.Height() != 1 || b.Width() != 2 {
		t.Fatalf("dimensions: got %dx%d, want 1x2", b.Height(), b.Width())
	}
	if b.At(0, 0) != (Color{R: 1}) || b.At(0, 1) != (Color{R: 2}) {
		t.Error("offset bounds read from the wrong cells")
	}
}

func TestCache_LoadOnce(t *testing.T) {
	path := writeTestPNG(t, 2, 2)
	cache := NewCache()

	first, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	second, err := cache.Load(path)
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}

	if first != second {
		t.Error("second Load did not return the cached buffer")
	}
}

func TestCache_Evict(t *testing.T) {
	path := writeTestPNG(t, 2, 2)
	cache := NewCache()

	first, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	cache.Evict(path)

	second, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load after Evict failed: %v", err)
	}
	if first == second {
		t.Error("Load after Evict returned the evicted buffer")
	}
	// Evicting an unknown path is a no-op.
	cache.Evict("never-loaded.png")
}

func TestCache_Clear(t *testing.T) {
	path := writeTestPNG(t, 2, 2)
	cache := NewCache()

	first, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	cache.Clear()

	second, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load after Clear failed: %v", err)
	}
	if first == second {
		t.Error("Load after Clear returned a cleared buffer")
	}
}

func TestInfo(t *testing.T) {
	path := writeTestPNG(t, 4, 6)

	info, err := Info(path)
	if err != nil {
		t.Fatalf("Info failed: %v", err)
	}

	if info.Width != 6 || info.Height != 4 {
		t.Errorf("dimensions: got %dx%d, want 6x4", info.Width, info.Height)
	}
	if info.Format != "png" {
		t.Errorf("format: got %s, want png", info.Format)
	}
	if info.FileSizeBytes <= 0 {
		t.Errorf("file size: got %d, want > 0", info.FileSizeBytes)
	}
}

func TestInfo_MissingFile(t *testing.T) {
	_, err := Info(filepath.Join(t.TempDir(), "missing.png"))
	if err == nil {
		t.Fatal("Info should fail for a missing file")
	}
}
