// Package snapshot writes rendered frames to PNG files.
package snapshot

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// Writer saves images under a directory with timestamped names.
type Writer struct {
	outputDir string
	prefix    string
	now       func() time.Time
}

// NewWriter creates a writer for outputDir; files are named <prefix>_<timestamp>.png.
func NewWriter(outputDir, prefix string) *Writer {
	return &Writer{
		outputDir: outputDir,
		prefix:    prefix,
		now:       time.Now,
	}
}

// GenerateFilename returns the path the next Save would use.
func (w *Writer) GenerateFilename() string {
	name := fmt.Sprintf("%s_%s.png", w.prefix, w.now().Format("2006-01-02_15-04-05"))
	if w.outputDir != "" {
		name = filepath.Join(w.outputDir, name)
	}
	return name
}

// Save writes img under a generated name and returns the path.
func (w *Writer) Save(img image.Image) (string, error) {
	path := w.GenerateFilename()
	if err := SaveTo(path, img); err != nil {
		return "", err
	}
	return path, nil
}

// SaveTo writes img as PNG to path, creating parent directories.
func SaveTo(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return file.Close()
}

// FlipRows converts bottom-up RGBA rows, as read back from OpenGL, into an image.
func FlipRows(pixels []byte, width, height int) (*image.RGBA, error) {
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowSize
		dst := y * img.Stride
		copy(img.Pix[dst:dst+rowSize], pixels[src:src+rowSize])
	}
	return img, nil
}
