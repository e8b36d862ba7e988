package renderer

import (
	"fmt"
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// CameraConfig contains camera configuration
type CameraConfig struct {
	Center        core.Vec3 // Camera position (look-from)
	LookAt        core.Vec3 // Point the camera looks at
	Up            core.Vec3 // View-up vector
	VFov          float64   // Vertical field of view in degrees
	AspectRatio   float64   // Width / height
	Aperture      float64   // Lens diameter; 0 disables depth of field
	FocusDistance float64   // Distance to the focus plane; 0 = auto (distance to LookAt)
}

// MergeCameraConfig merges override values into a base config.
// Zero-valued override fields keep the base value.
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	merged := base
	if !override.Center.Equals(core.Vec3{}) {
		merged.Center = override.Center
	}
	if !override.LookAt.Equals(core.Vec3{}) {
		merged.LookAt = override.LookAt
	}
	if !override.Up.Equals(core.Vec3{}) {
		merged.Up = override.Up
	}
	if override.VFov != 0 {
		merged.VFov = override.VFov
	}
	if override.AspectRatio != 0 {
		merged.AspectRatio = override.AspectRatio
	}
	if override.Aperture != 0 {
		merged.Aperture = override.Aperture
	}
	if override.FocusDistance != 0 {
		merged.FocusDistance = override.FocusDistance
	}
	return merged
}

// Camera maps normalized image-plane coordinates to world-space rays,
// with optional lens sampling for depth of field. The orthonormal basis
// is derived once at construction and never mutated.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3 // Orthonormal camera basis
	lensRadius      float64
}

// NewCamera creates a camera from a configuration
func NewCamera(config CameraConfig) (*Camera, error) {
	if config.VFov <= 0 || config.VFov >= 180 {
		return nil, fmt.Errorf("camera vertical fov must be in (0, 180) degrees, got %g", config.VFov)
	}
	if config.AspectRatio <= 0 {
		return nil, fmt.Errorf("camera aspect ratio must be positive, got %g", config.AspectRatio)
	}
	if config.Aperture < 0 {
		return nil, fmt.Errorf("camera aperture must be non-negative, got %g", config.Aperture)
	}

	view := config.Center.Subtract(config.LookAt)
	if view.NearZero() {
		return nil, fmt.Errorf("camera center and look-at must not coincide")
	}

	focusDistance := config.FocusDistance
	if focusDistance == 0 {
		// Auto-focus on the look-at point
		focusDistance = view.Length()
	}

	// Viewport dimensions from the vertical field of view
	theta := config.VFov * math.Pi / 180.0
	halfHeight := math.Tan(theta / 2)
	viewportHeight := 2.0 * halfHeight
	viewportWidth := config.AspectRatio * viewportHeight

	// Orthonormal basis: w points backward, u right, v up
	w := view.Normalize()
	uCross := config.Up.Cross(w)
	if uCross.NearZero() {
		return nil, fmt.Errorf("camera up vector must not be parallel to the view direction")
	}
	u := uCross.Normalize()
	v := w.Cross(u)

	origin := config.Center
	horizontal := u.Multiply(viewportWidth * focusDistance)
	vertical := v.Multiply(viewportHeight * focusDistance)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDistance))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
	}, nil
}

// GetRay generates a ray for screen coordinates (s, t) where 0 <= s,t <= 1.
// With a nonzero aperture the ray origin is jittered across the lens disk
// and aimed through the focus plane, producing depth of field.
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	offset := core.Vec3{}
	if c.lensRadius > 0 {
		rd := core.SamplePointInUnitDisk(sampler.Get2D()).Multiply(c.lensRadius)
		offset = c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))
	}

	origin := c.origin.Add(offset)
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	return core.NewRay(origin, direction)
}

// GetCameraForward returns the direction the camera is looking
func (c *Camera) GetCameraForward() core.Vec3 {
	return c.w.Negate()
}
