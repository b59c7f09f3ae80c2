package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material

	radiusSquared float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) Sphere {
	return Sphere{
		Center:        center,
		Radius:        radius,
		Material:      mat,
		radiusSquared: radius * radius,
	}
}

// RadiusSquared returns the cached squared radius
func (s Sphere) RadiusSquared() float64 {
	return s.radiusSquared
}

// Intersect returns the distance along a unit-length direction to the sphere surface.
// The near root is used unless the ray starts past the point of closest approach
// (including origins inside the sphere), in which case the far root is used.
// A tangent ray counts as a hit.
func (s Sphere) Intersect(origin, direction core.Vec3) (float64, bool) {
	// Vector from ray origin to sphere center
	l := s.Center.Subtract(origin)
	tca := l.Dot(direction)

	// Squared distance from the center to the ray line
	d2 := l.Dot(l) - tca*tca
	if d2 > s.radiusSquared {
		return 0, false
	}

	thc := math.Sqrt(s.radiusSquared - d2)
	t0 := tca - thc
	if tca < thc {
		t0 = tca + thc
	}

	// Intersection behind the origin
	if t0 < 0 {
		return 0, false
	}

	return t0, true
}

// Normal returns the outward unit normal at a point on the surface
func (s Sphere) Normal(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}
