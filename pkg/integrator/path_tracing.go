package integrator

import (
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// Epsilon for the lower intersection bound. Excluding a small interval
// around the ray origin prevents a scattered ray from re-intersecting the
// surface it just left ("shadow acne").
const tMinEpsilon = 0.001

// PathTracer implements recursive path tracing: rays bounce through the
// scene accumulating material attenuation until they miss, are absorbed,
// or exhaust the depth budget
type PathTracer struct{}

// NewPathTracer creates a new path tracing integrator
func NewPathTracer() *PathTracer {
	return &PathTracer{}
}

// RayColor computes the color for a single ray by recursively following
// scattered rays through the scene. The recursion has three terminal
// cases: depth exhaustion (black), a miss (background color), and
// absorption (black).
func (pt *PathTracer) RayColor(ray core.Ray, world core.Hittable, background Background, sampler core.Sampler, depth int) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	hit, isHit := world.Hit(ray, tMinEpsilon, math.Inf(1))
	if !isHit {
		return background.At(ray)
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		// Material absorbed the ray
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	incoming := pt.RayColor(scatter.Scattered, world, background, sampler, depth-1)
	return scatter.Attenuation.MultiplyVec(incoming)
}
