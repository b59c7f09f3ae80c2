package renderer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// FieldOfView is the fixed vertical field of view in radians (60 degrees)
const FieldOfView = math.Pi / 3

// Camera is a pinhole camera at the origin looking down -Z with +Y up
type Camera struct {
	origin     core.Vec3
	halfWidth  float64
	halfHeight float64
	planeZ     float64
}

// NewCamera creates a camera for an image of the given size
func NewCamera(width, height int) *Camera {
	// Image plane distance so that the image height spans the field of view
	tanFov := 2 * math.Tan(FieldOfView/2)

	return &Camera{
		origin:     core.NewVec3(0, 0, 0),
		halfWidth:  float64(width) * 0.5,
		halfHeight: float64(height) * 0.5,
		planeZ:     -float64(height) / tanFov,
	}
}

// GetRay returns the origin and unit direction through the centre of pixel (x, y).
// Row 0 is the top of the image, so y is flipped into world space.
func (c *Camera) GetRay(x, y int) (origin, direction core.Vec3) {
	dir := core.NewVec3(
		float64(x)+0.5-c.halfWidth,
		-float64(y)+0.5+c.halfHeight,
		c.planeZ,
	)
	return c.origin, dir.Normalize()
}
