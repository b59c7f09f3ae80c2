package imageio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// ErrInvalidPPM is returned when a stream is not a binary 8-bit PPM
var ErrInvalidPPM = errors.New("invalid PPM")

// EncodePPM writes the raster as a binary PPM (P6) with a maximum value of 255
func EncodePPM(w io.Writer, img *RGBImage) error {
	if _, err := fmt.Fprintf(w, "P6\n%d %d\n255\n", img.Width, img.Height); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}
	if _, err := w.Write(img.Pix); err != nil {
		return fmt.Errorf("failed to write PPM pixels: %w", err)
	}
	return nil
}

// DecodePPM reads a binary PPM (P6) with a maximum value of 255
func DecodePPM(r io.Reader) (*RGBImage, error) {
	br := bufio.NewReader(r)

	var magic string
	var width, height, maxVal int
	if _, err := fmt.Fscan(br, &magic, &width, &height, &maxVal); err != nil {
		return nil, fmt.Errorf("%w: failed to read header: %v", ErrInvalidPPM, err)
	}
	if magic != "P6" {
		return nil, fmt.Errorf("%w: unsupported magic %q", ErrInvalidPPM, magic)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: invalid size %dx%d", ErrInvalidPPM, width, height)
	}
	if maxVal != 255 {
		return nil, fmt.Errorf("%w: unsupported max value %d", ErrInvalidPPM, maxVal)
	}

	// Exactly one whitespace byte separates the header from the pixel data
	if _, err := br.ReadByte(); err != nil {
		return nil, fmt.Errorf("%w: missing pixel data: %v", ErrInvalidPPM, err)
	}

	img := &RGBImage{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*3),
	}
	if _, err := io.ReadFull(br, img.Pix); err != nil {
		return nil, fmt.Errorf("%w: truncated pixel data: %v", ErrInvalidPPM, err)
	}

	return img, nil
}
