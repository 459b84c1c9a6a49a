// Package debug writes screenshots of the rendered scene.
package debug

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/carscene/internal/logger"
)

// ErrPixelSize is returned when a pixel buffer does not match its dimensions.
var ErrPixelSize = errors.New("pixel data size mismatch")

// Screenshots names and writes PNG captures into one directory.
type Screenshots struct {
	dir    string
	prefix string
	now    func() time.Time
	log    *zap.Logger
}

// NewScreenshots writes into dir with file names starting with prefix.
// An empty dir means the working directory.
func NewScreenshots(dir, prefix string) *Screenshots {
	return &Screenshots{
		dir:    dir,
		prefix: prefix,
		now:    time.Now,
		log:    logger.Named("screenshot"),
	}
}

// Filename returns the path a capture of the given frame would be written to.
func (s *Screenshots) Filename(frame int) string {
	name := fmt.Sprintf("%s_%s_f%05d.png", s.prefix, s.now().Format("2006-01-02_15-04-05"), frame)
	if s.dir == "" {
		return name
	}
	return filepath.Join(s.dir, name)
}

// SavePixels writes bottom-up RGBA rows, as read back from GL, to a new PNG
// and returns its path.
func (s *Screenshots) SavePixels(pixels []byte, width, height, frame int) (string, error) {
	img, err := FlipRows(pixels, width, height)
	if err != nil {
		return "", err
	}
	return s.Save(img, frame)
}

// Save encodes img to a new PNG and returns its path.
func (s *Screenshots) Save(img image.Image, frame int) (string, error) {
	if s.dir != "" {
		if err := os.MkdirAll(s.dir, 0o755); err != nil {
			return "", fmt.Errorf("creating screenshot dir: %w", err)
		}
	}

	path := s.Filename(frame)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating screenshot: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("writing screenshot: %w", err)
	}

	s.log.Info("screenshot saved", zap.String("path", path), zap.Int("frame", frame))
	return path, nil
}

// FlipRows copies bottom-up RGBA rows into a top-down image.
func FlipRows(pixels []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 || len(pixels) != width*height*4 {
		return nil, fmt.Errorf("%w: %dx%d needs %d bytes, got %d",
			ErrPixelSize, width, height, max(width*height*4, 0), len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	row := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * row
		copy(img.Pix[y*img.Stride:y*img.Stride+row], pixels[src:src+row])
	}
	return img, nil
}
