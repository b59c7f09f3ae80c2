package imageio

import (
	"image"
	"image/color"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// RGBImage is an 8-bit, row-major, top-row-first RGB raster
type RGBImage struct {
	Width  int
	Height int
	Pix    []byte // 3 bytes per pixel in R, G, B order
}

// quantize maps a color component to a byte after clamping it to [0, 1]
func quantize(c float64) byte {
	return byte(255.999 * max(0, min(1, c)))
}

// FromFramebuffer clamps and quantizes every pixel of a framebuffer
func FromFramebuffer(fb *renderer.Framebuffer) *RGBImage {
	img := &RGBImage{
		Width:  fb.Width,
		Height: fb.Height,
		Pix:    make([]byte, 0, len(fb.Pixels)*3),
	}

	for _, pixel := range fb.Pixels {
		img.Pix = append(img.Pix, quantize(pixel.X), quantize(pixel.Y), quantize(pixel.Z))
	}

	return img
}

// At returns the bytes of pixel (x, y)
func (img *RGBImage) At(x, y int) (r, g, b byte) {
	i := (x + y*img.Width) * 3
	return img.Pix[i], img.Pix[i+1], img.Pix[i+2]
}

// ToRGBA converts the raster to an opaque image.RGBA
func (img *RGBImage) ToRGBA() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			r, g, b := img.At(x, y)
			out.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return out
}

// ToColors converts the raster back to colors in [0, 1]
func (img *RGBImage) ToColors() []core.Vec3 {
	pixels := make([]core.Vec3, img.Width*img.Height)
	for i := range pixels {
		pixels[i] = core.NewVec3(
			float64(img.Pix[i*3])/255.0,
			float64(img.Pix[i*3+1])/255.0,
			float64(img.Pix[i*3+2])/255.0,
		)
	}
	return pixels
}

// FromImage converts any decoded image to an RGB raster, dropping alpha
func FromImage(src image.Image) *RGBImage {
	bounds := src.Bounds()
	img := &RGBImage{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Pix:    make([]byte, 0, bounds.Dx()*bounds.Dy()*3),
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			// RGBA returns uint32 in [0, 65535]
			r, g, b, _ := src.At(x, y).RGBA()
			img.Pix = append(img.Pix, byte(r>>8), byte(g>>8), byte(b>>8))
		}
	}

	return img
}
