package integrator

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// Background is a vertical gradient sky evaluated from a ray direction.
// It is the only geometry-independent color source in the scene.
type Background struct {
	Top    core.Vec3 // Color straight up
	Bottom core.Vec3 // Color straight down
}

// NewBackground creates a gradient background
func NewBackground(top, bottom core.Vec3) Background {
	return Background{Top: top, Bottom: bottom}
}

// At returns the background color for a ray that missed all geometry
func (b Background) At(ray core.Ray) core.Vec3 {
	// Normalize the ray direction to get consistent results
	unitDirection := ray.Direction.Normalize()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return b.Bottom.Multiply(1.0 - t).Add(b.Top.Multiply(t))
}

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the color contribution of a single ray
	RayColor(ray core.Ray, world core.Hittable, background Background, sampler core.Sampler, depth int) core.Vec3
}
