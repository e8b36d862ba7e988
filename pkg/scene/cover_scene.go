package scene

import (
	"math/rand"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/integrator"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// NewCoverScene creates the randomized many-sphere scene: a grid of small
// spheres with mixed materials around three large ones, rendered with a
// wide depth-of-field camera. The layout is deterministic for a given seed.
func NewCoverScene(seed int64, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	random := rand.New(rand.NewSource(seed))

	defaultCameraConfig := renderer.CameraConfig{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20.0,
		AspectRatio:   16.0 / 9.0,
		Aperture:      0.1,
		FocusDistance: 10.0,
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	background := integrator.NewBackground(
		core.NewVec3(0.5, 0.7, 1.0),
		core.NewVec3(1.0, 1.0, 1.0),
	)

	s := NewScene(cameraConfig, background)
	s.Sampling = SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}

	// Ground sphere
	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	if err := s.AddSphere(core.NewVec3(0, -1000, 0), 1000, ground); err != nil {
		return nil, err
	}

	// Grid of small spheres with randomly chosen materials
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				0.2,
				float64(b)+0.9*random.Float64(),
			)

			// Keep clear of the three large spheres
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			mat, err := randomMaterial(random)
			if err != nil {
				return nil, err
			}
			if err := s.AddSphere(center, 0.2, mat); err != nil {
				return nil, err
			}
		}
	}

	// Three large feature spheres: glass, diffuse, mirror
	glass, err := material.NewDielectric(1.5)
	if err != nil {
		return nil, err
	}
	if err := s.AddSphere(core.NewVec3(0, 1, 0), 1.0, glass); err != nil {
		return nil, err
	}

	brown := material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))
	if err := s.AddSphere(core.NewVec3(-4, 1, 0), 1.0, brown); err != nil {
		return nil, err
	}

	mirror, err := material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)
	if err != nil {
		return nil, err
	}
	if err := s.AddSphere(core.NewVec3(4, 1, 0), 1.0, mirror); err != nil {
		return nil, err
	}

	return s, nil
}

// randomMaterial picks a material variant: mostly diffuse, some metal,
// occasionally glass
func randomMaterial(random *rand.Rand) (core.Material, error) {
	choice := random.Float64()
	switch {
	case choice < 0.8:
		albedo := core.NewVec3(
			random.Float64()*random.Float64(),
			random.Float64()*random.Float64(),
			random.Float64()*random.Float64(),
		)
		return material.NewLambertian(albedo), nil
	case choice < 0.95:
		albedo := core.NewVec3(
			0.5*(1+random.Float64()),
			0.5*(1+random.Float64()),
			0.5*(1+random.Float64()),
		)
		return material.NewMetal(albedo, 0.5*random.Float64())
	default:
		return material.NewDielectric(1.5)
	}
}
