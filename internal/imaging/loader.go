package imaging

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"

	"github.com/anthonynsimon/bild/clone"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP format decoder

	"github.com/sarenap/imgedit/internal/logging"
)

// Open decodes the image file at path into a Buffer.
//
// PNG, JPEG, GIF, TIFF, BMP and WebP are recognized. If the decoded pixel
// layout is not a plain 8-bit RGB/RGBA one, a warning is logged and decoding
// proceeds anyway with best-effort channel extraction; any alpha channel is
// discarded. Failure to locate, read or decode the file returns an error.
func Open(path string) (*Buffer, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	return FromImage(img), nil
}

// FromImage converts a decoded image into a Buffer, packing each pixel's
// RGB channels and dropping alpha.
//
// Images whose native layout is not RGB/RGBA (paletted GIFs, YCbCr JPEGs,
// grayscale) are normalized to 8-bit RGBA first; this is the permissive
// path the loader warns about rather than rejecting.
func FromImage(img image.Image) *Buffer {
	switch img.(type) {
	case *image.RGBA, *image.NRGBA, *image.RGBA64, *image.NRGBA64:
	default:
		logging.GetLogger().Warnf("unsupported pixel layout %T, extracting channels best-effort", img)
	}

	rgba := clone.AsRGBA(img)
	bounds := rgba.Bounds()
	b := New(bounds.Dy(), bounds.Dx())

	for row := 0; row < b.Height(); row++ {
		for col := 0; col < b.Width(); col++ {
			i := rgba.PixOffset(bounds.Min.X+col, bounds.Min.Y+row)
			b.setPacked(row, col, Pack(rgba.Pix[i], rgba.Pix[i+1], rgba.Pix[i+2]))
		}
	}
	return b
}

// Cache provides thread-safe caching of decoded buffers keyed by file path,
// so a patch source applied repeatedly is read from disk once.
//
// Cached buffers are shared: callers must not mutate a buffer obtained from
// the cache (Clone it first). Entries remain until Evict or Clear.
type Cache struct {
	mu      sync.RWMutex
	buffers map[string]*Buffer
}

// NewCache creates an empty buffer cache ready for concurrent use.
func NewCache() *Cache {
	return &Cache{
		buffers: make(map[string]*Buffer),
	}
}

// Load returns the cached buffer for path, decoding it from disk on first
// use. The cache key is the exact path string, so relative and absolute
// paths to the same file occupy separate entries.
func (c *Cache) Load(path string) (*Buffer, error) {
	c.mu.RLock()
	if b, ok := c.buffers[path]; ok {
		c.mu.RUnlock()
		return b, nil
	}
	c.mu.RUnlock()

	b, err := Open(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.buffers[path] = b
	c.mu.Unlock()

	return b, nil
}

// Evict removes a single entry from the cache. Unknown paths are ignored.
func (c *Cache) Evict(path string) {
	c.mu.Lock()
	delete(c.buffers, path)
	c.mu.Unlock()
}

// Clear removes all cached buffers.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.buffers = make(map[string]*Buffer)
	c.mu.Unlock()
}

// ImageInfo contains metadata about an image file on disk.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the detected image format, based on file extension:
	// "png", "jpeg", "gif", "tiff", "bmp", "webp" or "unknown".
	Format string `json:"format"`

	// HasAlpha indicates whether the file carries an alpha channel.
	// The editor discards alpha on load; this reports what was stored.
	HasAlpha bool `json:"has_alpha"`

	// FileSizeBytes is the size of the file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// Info loads an image file and reports its dimensions, format, alpha
// presence and file size.
func Info(path string) (*ImageInfo, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format := "unknown"
	switch filepath.Ext(path) {
	case ".png":
		format = "png"
	case ".jpg", ".jpeg":
		format = "jpeg"
	case ".gif":
		format = "gif"
	case ".tif", ".tiff":
		format = "tiff"
	case ".bmp":
		format = "bmp"
	case ".webp":
		format = "webp"
	}

	hasAlpha := false
	switch img.(type) {
	case *image.RGBA, *image.NRGBA, *image.RGBA64, *image.NRGBA64:
		hasAlpha = true
	}

	bounds := img.Bounds()
	return &ImageInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        format,
		HasAlpha:      hasAlpha,
		FileSizeBytes: stat.Size(),
	}, nil
}
