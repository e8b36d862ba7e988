package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a new sphere. Invalid geometry is a configuration
// error and is rejected before any rendering happens.
func NewSphere(center core.Vec3, radius float64, material core.Material) (*Sphere, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("sphere radius must be positive, got %g", radius)
	}
	if !isFinite(center) {
		return nil, fmt.Errorf("sphere center must be finite, got %v", center)
	}
	if material == nil {
		return nil, fmt.Errorf("sphere material must not be nil")
	}
	return &Sphere{Center: center, Radius: radius, Material: material}, nil
}

// NewInnerSphere creates a sphere whose reported normal points toward its
// center. Used for the inner boundary of hollow shells, where a ray inside
// the shell should see the surface as entering the enclosed medium.
func NewInnerSphere(center core.Vec3, radius float64, material core.Material) (*Sphere, error) {
	s, err := NewSphere(center, radius, material)
	if err != nil {
		return nil, err
	}
	s.Radius = -s.Radius
	return s, nil
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	// Vector from ray origin to sphere center
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	// Discriminant
	discriminant := halfB*halfB - a*c

	// No intersection if discriminant is negative
	if discriminant < 0 {
		return nil, false
	}

	// Find the nearest intersection point within the valid range
	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		// Try the farther intersection point
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			// Both intersections are outside valid range
			return nil, false
		}
	}

	// Create hit record with material
	hitRecord := &core.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	// Calculate outward normal (from center to hit point).
	// Dividing by a negative radius flips it inward for inner shells.
	outwardNormal := hitRecord.Point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	hitRecord.SetFaceNormal(ray, outwardNormal)

	return hitRecord, true
}

func isFinite(v core.Vec3) bool {
	return !math.IsInf(v.X, 0) && !math.IsNaN(v.X) &&
		!math.IsInf(v.Y, 0) && !math.IsNaN(v.Y) &&
		!math.IsInf(v.Z, 0) && !math.IsNaN(v.Z)
}
