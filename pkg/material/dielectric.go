package material

import (
	"fmt"
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both reflect and refract
type Dielectric struct {
	RefractiveIndex float64 // Index of refraction (e.g., 1.5 for glass)
}

// NewDielectric creates a new dielectric material. A non-positive
// refractive index is a configuration error.
func NewDielectric(refractiveIndex float64) (*Dielectric, error) {
	if refractiveIndex <= 0 {
		return nil, fmt.Errorf("dielectric refractive index must be positive, got %g", refractiveIndex)
	}
	return &Dielectric{RefractiveIndex: refractiveIndex}, nil
}

// Scatter implements the Material interface for dielectric scattering
func (d *Dielectric) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	// Dielectrics always attenuate by 1.0 (no color absorption for clear glass)
	attenuation := core.NewVec3(1.0, 1.0, 1.0)

	// Determine if we're entering or exiting the material
	var refractionRatio float64
	if hit.FrontFace {
		refractionRatio = 1.0 / d.RefractiveIndex // Ray is entering the material (from air to glass)
	} else {
		refractionRatio = d.RefractiveIndex // Ray is exiting the material (from glass to air)
	}

	// Normalize the incoming ray direction
	unitDirection := rayIn.Direction.Normalize()

	// Calculate the cosine of the angle between ray and normal
	cosTheta := math.Min(-unitDirection.Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	// Check for total internal reflection
	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || Reflectance(cosTheta, refractionRatio) > sampler.Get1D() {
		// Reflect
		direction = unitDirection.Reflect(hit.Normal)
	} else {
		// Refract
		direction = unitDirection.Refract(hit.Normal, refractionRatio)
	}

	scattered := core.NewRay(hit.Point, direction)

	return core.ScatterResult{
		Scattered:   scattered,
		Attenuation: attenuation,
	}, true
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractionRatio float64) float64 {
	// Calculate R0 for normal incidence
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
