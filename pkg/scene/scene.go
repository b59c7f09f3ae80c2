package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// MaxDistance bounds the visible world: nearest hits at or beyond it count as misses
const MaxDistance = 1000.0

// Scene contains all the elements needed for rendering.
// A scene must be fully built before rendering starts and is only read afterwards.
type Scene struct {
	Spheres []geometry.Sphere   // Objects in the scene
	Lights  []lights.PointLight // Lights in the scene
}

// Hit describes the nearest surface found along a ray
type Hit struct {
	Point    core.Vec3         // Point of intersection
	Normal   core.Vec3         // Outward unit surface normal
	Material material.Material // Copy of the surface material
	Distance float64           // Ray parameter of the intersection
}

// NewScene creates a scene from the given spheres and lights
func NewScene(spheres []geometry.Sphere, pointLights []lights.PointLight) *Scene {
	return &Scene{
		Spheres: spheres,
		Lights:  pointLights,
	}
}

// Intersect finds the nearest sphere hit along a ray with a unit-length direction
func (s *Scene) Intersect(origin, direction core.Vec3) (Hit, bool) {
	nearest := -1
	nearestDist := math.MaxFloat64

	for i := range s.Spheres {
		if dist, ok := s.Spheres[i].Intersect(origin, direction); ok && dist < nearestDist {
			nearestDist = dist
			nearest = i
		}
	}

	if nearest < 0 || nearestDist >= MaxDistance {
		return Hit{}, false
	}

	sphere := &s.Spheres[nearest]
	point := origin.Add(direction.Multiply(nearestDist))

	return Hit{
		Point:    point,
		Normal:   sphere.Normal(point),
		Material: sphere.Material,
		Distance: nearestDist,
	}, true
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Spheres)
}
