package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewReferenceScene creates the fixed scene: four spheres lit by three point lights
func NewReferenceScene() *Scene {
	// Create materials
	ivory := material.NewIvory()
	redRubber := material.NewRedRubber()

	spheres := []geometry.Sphere{
		geometry.NewSphere(core.NewVec3(-3, 0, -16), 2, ivory),
		geometry.NewSphere(core.NewVec3(-1.0, -1.5, -12), 2, redRubber),
		geometry.NewSphere(core.NewVec3(1.5, -0.5, -18), 3, redRubber),
		geometry.NewSphere(core.NewVec3(7, 5, -18), 4, ivory),
	}

	pointLights := []lights.PointLight{
		lights.NewPointLight(core.NewVec3(-20, 20, 20), 1.5),
		lights.NewPointLight(core.NewVec3(30, 50, -25), 1.8),
		lights.NewPointLight(core.NewVec3(30, 20, 30), 1.7),
	}

	return NewScene(spheres, pointLights)
}
