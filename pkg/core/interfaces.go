package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Hittable interface for objects that can be hit by rays
type Hittable interface {
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)
}

// Material interface for objects that can scatter rays.
// The boolean result is false when the material absorbs the ray,
// which terminates the light path.
type Material interface {
	Scatter(rayIn Ray, hit HitRecord, sampler Sampler) (ScatterResult, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray  // The outgoing scattered ray
	Attenuation Vec3 // Color attenuation per channel
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Surface normal at intersection, unit length, opposing the ray
	T         float64  // Parameter t along the ray
	FrontFace bool     // Whether ray hit the front face
	Material  Material // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Multiply(-1)
	}
}
