package integrator

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// CastRay computes the unclamped color seen along a ray with a unit-length direction.
	// Implementations must only read the scene so that many goroutines can share it.
	CastRay(origin, direction core.Vec3, scene *scene.Scene) core.Vec3
}
