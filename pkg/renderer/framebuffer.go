package renderer

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Framebuffer is a flat, row-major buffer of unclamped pixel colors
type Framebuffer struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Index x + y*Width
}

// NewFramebuffer allocates a framebuffer for the given dimensions
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// Index returns the slot for pixel (x, y)
func (fb *Framebuffer) Index(x, y int) int {
	return x + y*fb.Width
}

// At returns the color stored for pixel (x, y)
func (fb *Framebuffer) At(x, y int) core.Vec3 {
	return fb.Pixels[fb.Index(x, y)]
}

// Row returns the slice backing scanline y.
// Distinct rows never share elements, so each can be handed to a different worker.
func (fb *Framebuffer) Row(y int) []core.Vec3 {
	start := y * fb.Width
	return fb.Pixels[start : start+fb.Width : start+fb.Width]
}
