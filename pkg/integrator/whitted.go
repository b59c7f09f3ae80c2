package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Config contains shading configuration
type Config struct {
	Background core.Vec3 // Color returned when a ray hits nothing
	ShadowBias float64   // Offset along the normal for shadow ray origins
}

// DefaultConfig returns the standard background and shadow bias
func DefaultConfig() Config {
	return Config{
		Background: core.NewVec3(0.2, 0.7, 0.8),
		ShadowBias: 1e-3,
	}
}

// WhittedIntegrator shades primary hits with Phong direct lighting and hard shadows.
// It does not follow reflected or refracted rays.
type WhittedIntegrator struct {
	config Config
}

// NewWhittedIntegrator creates a new Whitted integrator
func NewWhittedIntegrator(config Config) *WhittedIntegrator {
	return &WhittedIntegrator{config: config}
}

// CastRay computes the color for a single ray
func (w *WhittedIntegrator) CastRay(origin, direction core.Vec3, sc *scene.Scene) core.Vec3 {
	hit, isHit := sc.Intersect(origin, direction)
	if !isHit {
		return w.config.Background
	}

	var diffuseIntensity, specularIntensity float64

	for _, light := range sc.Lights {
		lightDir, lightDistance := light.Illuminate(hit.Point)

		if w.inShadow(hit, lightDir, lightDistance, sc) {
			continue
		}

		diffuseIntensity += light.Intensity * math.Max(0, lightDir.Dot(hit.Normal))

		// Mirror of the light direction about the normal, compared against the view ray
		reflected := lightDir.Negate().Reflect(hit.Normal).Negate()
		specularIntensity += math.Pow(math.Max(0, reflected.Dot(direction)), hit.Material.SpecularExponent) * light.Intensity
	}

	// Highlights are uniform white and not tinted by the diffuse color
	diffuse := hit.Material.DiffuseColor.Multiply(diffuseIntensity * hit.Material.DiffuseWeight())
	specular := core.Splat(specularIntensity * hit.Material.SpecularWeight())
	return diffuse.Add(specular)
}

// inShadow reports whether anything lies between the hit point and the light
func (w *WhittedIntegrator) inShadow(hit scene.Hit, lightDir core.Vec3, lightDistance float64, sc *scene.Scene) bool {
	shadowOrigin := w.shadowOrigin(hit, lightDir)

	occluder, isHit := sc.Intersect(shadowOrigin, lightDir)
	if !isHit {
		return false
	}

	return occluder.Point.Subtract(shadowOrigin).Length() < lightDistance
}

// shadowOrigin offsets the hit point to the side of the surface facing the light
func (w *WhittedIntegrator) shadowOrigin(hit scene.Hit, lightDir core.Vec3) core.Vec3 {
	offset := hit.Normal.Multiply(w.config.ShadowBias)
	if lightDir.Dot(hit.Normal) < 0 {
		return hit.Point.Subtract(offset)
	}
	return hit.Point.Add(offset)
}
