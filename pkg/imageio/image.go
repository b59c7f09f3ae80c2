package imageio

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// Format identifies an output file format
type Format string

const (
	FormatPPM Format = "ppm"
	FormatPNG Format = "png"
)

// FormatFromPath picks the output format from a file extension, defaulting to PPM
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG
	default:
		return FormatPPM
	}
}

// EncodePNG writes the raster as an opaque PNG
func EncodePNG(w io.Writer, img *RGBImage) error {
	if err := png.Encode(w, img.ToRGBA()); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// Encode writes the framebuffer in the given format
func Encode(w io.Writer, fb *renderer.Framebuffer, format Format) error {
	img := FromFramebuffer(fb)
	switch format {
	case FormatPPM:
		return EncodePPM(w, img)
	case FormatPNG:
		return EncodePNG(w, img)
	default:
		return fmt.Errorf("unsupported image format %q", format)
	}
}

// Save encodes the framebuffer and writes it to path, truncating any existing file.
// Encoding happens in memory first so a failure never leaves a partial image behind.
func Save(path string, fb *renderer.Framebuffer) error {
	var buf bytes.Buffer
	if err := Encode(&buf, fb, FormatFromPath(path)); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	defer file.Close()

	if _, err := buf.WriteTo(file); err != nil {
		return fmt.Errorf("failed to write image file: %w", err)
	}
	return file.Close()
}

// LoadImage loads a PPM, PNG or JPEG image as an RGB raster
func LoadImage(filename string) (*RGBImage, error) {
	// Open file
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	if strings.EqualFold(filepath.Ext(filename), ".ppm") {
		return DecodePPM(file)
	}

	// Decode image (auto-detects PNG/JPEG from file header)
	decoded, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return FromImage(decoded), nil
}
