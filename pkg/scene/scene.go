package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/integrator"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	World        *geometry.List // Objects in the scene
	CameraConfig renderer.CameraConfig
	Background   integrator.Background
	Sampling     SamplingConfig
}

// SamplingConfig contains the scene's recommended sampling configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// NewScene creates an empty scene with the given camera and background
func NewScene(cameraConfig renderer.CameraConfig, background integrator.Background) *Scene {
	return &Scene{
		World:        geometry.NewList(),
		CameraConfig: cameraConfig,
		Background:   background,
		Sampling: SamplingConfig{
			SamplesPerPixel: 50,
			MaxDepth:        50,
		},
	}
}

// AddSphere adds a sphere primitive to the scene. Invalid geometry or a
// nil material is reported as a configuration error before rendering.
func (s *Scene) AddSphere(center core.Vec3, radius float64, material core.Material) error {
	sphere, err := geometry.NewSphere(center, radius, material)
	if err != nil {
		return err
	}
	s.World.Add(sphere)
	return nil
}

// AddInnerSphere adds a sphere whose normal points inward, for the inner
// boundary of hollow shells
func (s *Scene) AddInnerSphere(center core.Vec3, radius float64, material core.Material) error {
	sphere, err := geometry.NewInnerSphere(center, radius, material)
	if err != nil {
		return err
	}
	s.World.Add(sphere)
	return nil
}

// Camera builds the camera described by the scene's camera configuration
func (s *Scene) Camera() (*renderer.Camera, error) {
	return renderer.NewCamera(s.CameraConfig)
}
