package material

import (
	"math/rand"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

func TestNewMetal_FuzzValidation(t *testing.T) {
	tests := []struct {
		name    string
		fuzz    float64
		wantErr bool
	}{
		{"perfect mirror", 0.0, false},
		{"moderate fuzz", 0.5, false},
		{"maximum fuzz", 1.0, false},
		{"fuzz above 1", 1.5, true},
		{"negative fuzz", -0.5, true},
	}

	albedo := core.NewVec3(0.8, 0.8, 0.8)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMetal(albedo, tt.fuzz)
			if (err != nil) != tt.wantErr {
				t.Errorf("Expected error=%t, got err=%v", tt.wantErr, err)
			}
		})
	}
}

func TestMetal_PerfectReflection(t *testing.T) {
	// With fuzz=0 the scattered direction is the exact mirror direction
	albedo := core.NewVec3(0.9, 0.9, 0.9)
	metal, err := NewMetal(albedo, 0.0)
	if err != nil {
		t.Fatalf("NewMetal failed: %v", err)
	}
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	// Ray hitting surface at 45 degrees
	rayIn := core.NewRay(core.NewVec3(0, 1, 1), core.NewVec3(0, -1, -1).Normalize())
	hit := core.HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 0, 1), // Surface normal pointing up
	}

	scatter, didScatter := metal.Scatter(rayIn, hit, sampler)
	if !didScatter {
		t.Fatal("Metal should scatter")
	}

	// For perfect reflection: incident (0, -1, -1) normalized reflects to (0, -0.707, 0.707)
	expected := core.NewVec3(0, -1, 1).Normalize()
	actual := scatter.Scattered.Direction.Normalize()

	if actual.Subtract(expected).Length() > 1e-10 {
		t.Errorf("Perfect reflection failed: expected %v, got %v", expected, actual)
	}

	// Check that attenuation equals albedo
	if !scatter.Attenuation.Equals(albedo) {
		t.Errorf("Attenuation should equal albedo: expected %v, got %v", albedo, scatter.Attenuation)
	}
}

func TestMetal_FuzzyReflection(t *testing.T) {
	// Test fuzzy reflection behavior
	albedo := core.NewVec3(0.8, 0.8, 0.8)
	metal, err := NewMetal(albedo, 0.5) // Moderate fuzziness
	if err != nil {
		t.Fatalf("NewMetal failed: %v", err)
	}
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	rayIn := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))
	hit := core.HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 0, 1),
	}

	// Test multiple scatters to verify fuzziness introduces variation
	directions := make([]core.Vec3, 10)
	for i := 0; i < 10; i++ {
		scatter, didScatter := metal.Scatter(rayIn, hit, sampler)
		if !didScatter {
			t.Fatalf("Metal should scatter on iteration %d", i)
		}
		directions[i] = scatter.Scattered.Direction.Normalize()
	}

	// With fuzziness, directions should vary (not all identical)
	allSame := true
	for i := 1; i < len(directions); i++ {
		if directions[i].Subtract(directions[0]).Length() > 1e-10 {
			allSame = false
			break
		}
	}
	if allSame {
		t.Error("Fuzzy metal should produce varying reflection directions")
	}

	// All scattered rays should still be above the surface
	for i, dir := range directions {
		if dir.Dot(hit.Normal) <= 0 {
			t.Errorf("Scattered ray %d should be above surface, got dot product %f", i, dir.Dot(hit.Normal))
		}
	}
}

func TestMetal_GrazingAbsorption(t *testing.T) {
	// At grazing incidence with maximum fuzz, the perturbed direction often
	// dips below the surface; those rays must be absorbed, never scattered
	// into the surface
	metal, err := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 1.0)
	if err != nil {
		t.Fatalf("NewMetal failed: %v", err)
	}
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(123)))

	// Nearly parallel to the surface
	rayIn := core.NewRay(core.NewVec3(-1, 0.01, 0), core.NewVec3(1, -0.01, 0).Normalize())
	hit := core.HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 1, 0),
	}

	absorbed := 0
	for i := 0; i < 1000; i++ {
		scatter, didScatter := metal.Scatter(rayIn, hit, sampler)
		if !didScatter {
			absorbed++
			continue
		}
		if scatter.Scattered.Direction.Dot(hit.Normal) <= 0 {
			t.Fatalf("Scattered ray %v points into the surface", scatter.Scattered.Direction)
		}
	}

	if absorbed == 0 {
		t.Error("Expected some absorption at grazing incidence with maximum fuzz")
	}
}
