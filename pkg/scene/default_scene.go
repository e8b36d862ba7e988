package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/integrator"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// NewDefaultScene creates a default scene with spheres of every material
// variant over a large ground sphere
func NewDefaultScene(cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	// Default camera configuration
	defaultCameraConfig := renderer.CameraConfig{
		Center:        core.NewVec3(0, 0.75, 2), // Position camera higher and farther back
		LookAt:        core.NewVec3(0, 0.5, -1), // Look at the center sphere
		Up:            core.NewVec3(0, 1, 0),    // Standard up direction
		VFov:          40.0,                     // Narrower field of view for focus effect
		AspectRatio:   16.0 / 9.0,
		Aperture:      0.05, // Slight depth of field blur
		FocusDistance: 0.0,  // Auto-calculate focus distance
	}

	// Apply any overrides using the reusable merge function
	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	// Gradient sky: blue above, white below
	background := integrator.NewBackground(
		core.NewVec3(0.5, 0.7, 1.0),
		core.NewVec3(1.0, 1.0, 1.0),
	)

	s := NewScene(cameraConfig, background)

	// Create materials
	lambertianGreen := material.NewLambertian(core.NewVec3(0.48, 0.48, 0.0))
	lambertianBlue := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	lambertianRed := material.NewLambertian(core.NewVec3(0.65, 0.25, 0.2))
	metalSilver, err := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)
	if err != nil {
		return nil, err
	}
	metalGold, err := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)
	if err != nil {
		return nil, err
	}
	materialGlass, err := material.NewDielectric(1.5)
	if err != nil {
		return nil, err
	}

	// Ground: a large sphere tangent to y=0
	if err := s.AddSphere(core.NewVec3(0, -1000, 0), 1000, lambertianGreen); err != nil {
		return nil, err
	}

	// Three spheres with different materials
	if err := s.AddSphere(core.NewVec3(0, 0.5, -1), 0.5, lambertianRed); err != nil {
		return nil, err
	}
	if err := s.AddSphere(core.NewVec3(-1, 0.5, -1), 0.5, metalSilver); err != nil {
		return nil, err
	}
	if err := s.AddSphere(core.NewVec3(1, 0.5, -1), 0.5, metalGold); err != nil {
		return nil, err
	}

	// Solid glass sphere
	if err := s.AddSphere(core.NewVec3(0.5, 0.25, -0.5), 0.25, materialGlass); err != nil {
		return nil, err
	}

	// Hollow glass sphere with a blue sphere inside
	if err := s.AddSphere(core.NewVec3(-0.5, 0.25, -0.5), 0.25, materialGlass); err != nil {
		return nil, err
	}
	if err := s.AddInnerSphere(core.NewVec3(-0.5, 0.25, -0.5), 0.24, materialGlass); err != nil {
		return nil, err
	}
	if err := s.AddSphere(core.NewVec3(-0.5, 0.25, -0.5), 0.20, lambertianBlue); err != nil {
		return nil, err
	}

	return s, nil
}
