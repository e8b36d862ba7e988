package material

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Vec3 // Base color/reflectance
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements the Material interface for lambertian scattering.
// A diffuse surface always scatters; the outgoing direction is a
// cosine-weighted sample of the hemisphere around the surface normal.
func (l *Lambertian) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	scatterDirection := core.SampleCosineHemisphere(hit.Normal, sampler.Get2D())

	// Guard against a degenerate sample that cancels the normal
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}

	scattered := core.NewRay(hit.Point, scatterDirection)

	return core.ScatterResult{
		Scattered:   scattered,
		Attenuation: l.Albedo,
	}, true
}
