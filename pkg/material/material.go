package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Material holds Phong shading parameters for a surface.
// Materials are small values and are copied into hit results rather than shared by pointer.
type Material struct {
	DiffuseColor     core.Vec3 // Base surface color for the diffuse term
	Albedo           core.Vec3 // X weights the diffuse term, Y weights the specular term
	SpecularExponent float64   // Phong exponent controlling highlight size
}

// NewMaterial creates a new Phong material
func NewMaterial(albedo, diffuseColor core.Vec3, specularExponent float64) Material {
	return Material{
		DiffuseColor:     diffuseColor,
		Albedo:           albedo,
		SpecularExponent: specularExponent,
	}
}

// DiffuseWeight returns the weight applied to the diffuse term
func (m Material) DiffuseWeight() float64 {
	return m.Albedo.X
}

// SpecularWeight returns the weight applied to the specular term
func (m Material) SpecularWeight() float64 {
	return m.Albedo.Y
}

// NewIvory creates the off-white, fairly glossy material used by the reference scene
func NewIvory() Material {
	return NewMaterial(core.NewVec3(0.6, 0.3, 0), core.NewVec3(0.4, 0.4, 0.3), 50)
}

// NewRedRubber creates the matte red material used by the reference scene
func NewRedRubber() Material {
	return NewMaterial(core.NewVec3(0.9, 0.1, 0), core.NewVec3(0.3, 0.1, 0.1), 10)
}
