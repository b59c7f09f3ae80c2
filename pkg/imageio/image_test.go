package imageio

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// createTestFramebuffer fills a small framebuffer with a gradient, including overexposed values
func createTestFramebuffer(width, height int) *renderer.Framebuffer {
	fb := renderer.NewFramebuffer(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			fb.Pixels[fb.Index(x, y)] = core.NewVec3(
				float64(x)/float64(width),
				float64(y)/float64(height),
				1.5,
			)
		}
	}
	return fb
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
	}{
		{"image.ppm", FormatPPM},
		{"out/render.PPM", FormatPPM},
		{"render.png", FormatPNG},
		{"render.PNG", FormatPNG},
		{"no-extension", FormatPPM},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := FormatFromPath(tt.path); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	fb := createTestFramebuffer(8, 4)
	expected := FromFramebuffer(fb)

	for _, name := range []string{"image.ppm", "image.png"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)

			if err := Save(path, fb); err != nil {
				t.Fatalf("Save failed: %v", err)
			}

			loaded, err := LoadImage(path)
			if err != nil {
				t.Fatalf("LoadImage failed: %v", err)
			}

			if loaded.Width != expected.Width || loaded.Height != expected.Height {
				t.Fatalf("Expected %dx%d, got %dx%d", expected.Width, expected.Height, loaded.Width, loaded.Height)
			}
			if !bytes.Equal(loaded.Pix, expected.Pix) {
				t.Errorf("Pixel data differs after round trip")
			}
		})
	}
}

func TestSave_TruncatesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "image.ppm")
	if err := os.WriteFile(path, bytes.Repeat([]byte{0xAA}, 4096), 0644); err != nil {
		t.Fatalf("Failed to seed file: %v", err)
	}

	fb := createTestFramebuffer(2, 2)
	if err := Save(path, fb); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	expectedSize := len("P6\n2 2\n255\n") + 2*2*3
	if len(data) != expectedSize {
		t.Errorf("Expected %d bytes, got %d", expectedSize, len(data))
	}
}

func TestSave_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "image.ppm")
	if err := Save(path, createTestFramebuffer(2, 2)); err == nil {
		t.Error("Expected error when the output directory does not exist")
	}
}

func TestEncode_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, createTestFramebuffer(1, 1), Format("tiff")); err == nil {
		t.Error("Expected error for unsupported format")
	}
}

func TestToColors(t *testing.T) {
	img := &RGBImage{Width: 1, Height: 1, Pix: []byte{255, 0, 51}}
	colors := img.ToColors()

	expected := core.NewVec3(1, 0, 0.2)
	if colors[0].Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected %v, got %v", expected, colors[0])
	}
}
