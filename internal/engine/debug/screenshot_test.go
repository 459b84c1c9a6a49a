package debug

import (
	"errors"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 9, 18, 30, 5, 0, time.UTC)
}

func TestFlipRows(t *testing.T) {
	// 1x2: bottom row red, top row blue.
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	img, err := FlipRows(pixels, 1, 2)
	if err != nil {
		t.Fatalf("FlipRows: %v", err)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("top pixel = %v, want blue", got)
	}
	if got := img.RGBAAt(0, 1); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("bottom pixel = %v, want red", got)
	}
}

func TestFlipRowsSizeMismatch(t *testing.T) {
	tests := []struct {
		name          string
		size          int
		width, height int
	}{
		{"short", 7, 1, 2},
		{"long", 12, 1, 2},
		{"zero width", 0, 0, 2},
		{"negative", 4, -1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FlipRows(make([]byte, tt.size), tt.width, tt.height)
			if !errors.Is(err, ErrPixelSize) {
				t.Errorf("err = %v, want ErrPixelSize", err)
			}
		})
	}
}

func TestFilename(t *testing.T) {
	s := NewScreenshots("shots", "carscene")
	s.now = fixedClock

	want := filepath.Join("shots", "carscene_2024-03-09_18-30-05_f00042.png")
	if got := s.Filename(42); got != want {
		t.Errorf("Filename = %q, want %q", got, want)
	}

	s.dir = ""
	if got := s.Filename(7); strings.Contains(got, string(filepath.Separator)) {
		t.Errorf("Filename without dir = %q, want a bare name", got)
	}
}

func TestSavePixels(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	s := NewScreenshots(dir, "test")
	s.now = fixedClock

	pixels := make([]byte, 2*3*4)
	for i := range pixels {
		pixels[i] = byte(i)
	}

	path, err := s.SavePixels(pixels, 2, 3, 1)
	if err != nil {
		t.Fatalf("SavePixels: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 3 {
		t.Errorf("bounds = %v, want 2x3", b)
	}
}

func TestSavePixelsRejectsBadBuffer(t *testing.T) {
	dir := t.TempDir()
	s := NewScreenshots(dir, "test")

	if _, err := s.SavePixels([]byte{1, 2, 3}, 2, 2, 0); !errors.Is(err, ErrPixelSize) {
		t.Fatalf("err = %v, want ErrPixelSize", err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("bad buffer left %d files behind", len(entries))
	}
}
