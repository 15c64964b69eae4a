package editor

import (
	"errors"
	"io"
	"sync"

	"go.uber.org/zap"

	"github.com/sarenap/imgedit/internal/imaging"
	"github.com/sarenap/imgedit/internal/logging"
)

// ErrNoImage is returned by operations invoked before any image is loaded.
var ErrNoImage = errors.New("no image loaded")

// Session owns the single current image of an editing workflow.
//
// Every operation replaces or mutates that one buffer under the session
// mutex, so concurrent callers of one session are serialized rather than
// interleaved. Transform parameters that fail validation leave the current
// image unchanged per the core's no-op contract; only I/O failures and
// operating on an empty session are errors.
type Session struct {
	mu     sync.Mutex
	buf    *imaging.Buffer
	cache  *imaging.Cache
	logger *zap.SugaredLogger
}

// NewSession creates an empty session with its own patch-source cache.
func NewSession() *Session {
	return &Session{
		cache:  imaging.NewCache(),
		logger: logging.GetLogger(),
	}
}

// Open loads the file at path as the session's current image, replacing
// any previous one.
func (s *Session) Open(path string) error {
	b, err := imaging.Open(path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.buf = b
	s.mu.Unlock()

	s.logger.Debugf("opened %s (%dx%d)", path, b.Height(), b.Width())
	return nil
}

// Save writes the current image to path.
func (s *Session) Save(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.buf == nil {
		return ErrNoImage
	}
	return imaging.Save(s.buf, path)
}

// Rotate rotates the current image clockwise by the given degrees. An
// invalid degree leaves the image unchanged.
func (s *Session) Rotate(degrees int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.buf == nil {
		return ErrNoImage
	}
	out := imaging.Rotate(s.buf, degrees)
	if out == s.buf {
		s.logger.Debugf("rotate %d left image unchanged", degrees)
	}
	s.buf = out
	return nil
}

// DownSample block-averages the current image by the given scale factors.
// Invalid factors leave the image unchanged.
func (s *Session) DownSample(heightScale, widthScale int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.buf == nil {
		return ErrNoImage
	}
	out := imaging.DownSample(s.buf, heightScale, widthScale)
	if out == s.buf {
		s.logger.Debugf("downsample %dx%d left image unchanged", heightScale, widthScale)
	}
	s.buf = out
	return nil
}

// Crop replaces the current image with the region (y1,x1)-(y2,x2). An
// invalid region leaves the image unchanged.
func (s *Session) Crop(y1, x1, y2, x2 int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.buf == nil {
		return ErrNoImage
	}
	out := imaging.Crop(s.buf, y1, x1, y2, x2)
	if out == s.buf {
		s.logger.Debugf("crop (%d,%d)-(%d,%d) left image unchanged", y1, x1, y2, x2)
	}
	s.buf = out
	return nil
}

// Patch composites the image file at path onto the current image at
// (startRow, startCol), skipping pixels equal to transparent. It returns
// the number of pixels written; an out-of-bounds placement writes nothing
// and returns 0. The patch source is read through the session cache, so
// repeated patches from one file decode it once.
func (s *Session) Patch(startRow, startCol int, path string, transparent imaging.Color) (int, error) {
	src, err := s.cache.Load(path)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.buf == nil {
		return 0, ErrNoImage
	}
	n := imaging.Patch(s.buf, startRow, startCol, src, transparent)
	if n == 0 {
		s.logger.Debugf("patch %s at (%d,%d) wrote no pixels", path, startRow, startCol)
	}
	return n, nil
}

// Dump writes the current image's debug rendering to w.
func (s *Session) Dump(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.buf == nil {
		return ErrNoImage
	}
	return imaging.Dump(w, s.buf)
}

// Size reports the current image's dimensions. ok is false when no image
// has been loaded.
func (s *Session) Size() (height, width int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.buf == nil {
		return 0, 0, false
	}
	return s.buf.Height(), s.buf.Width(), true
}

// Buffer returns the current image, or nil if none is loaded. The caller
// must not mutate it outside the session.
func (s *Session) Buffer() *imaging.Buffer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf
}
