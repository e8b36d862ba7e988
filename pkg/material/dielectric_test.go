package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

func TestNewDielectric_Validation(t *testing.T) {
	tests := []struct {
		name    string
		index   float64
		wantErr bool
	}{
		{"glass", 1.5, false},
		{"vacuum matched", 1.0, false},
		{"diamond", 2.4, false},
		{"zero index", 0, true},
		{"negative index", -1.5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDielectric(tt.index)
			if (err != nil) != tt.wantErr {
				t.Errorf("Expected error=%t, got err=%v", tt.wantErr, err)
			}
		})
	}
}

func TestDielectric_AlwaysScattersWithUnitAttenuation(t *testing.T) {
	// A clear dielectric absorbs nothing: it always scatters with
	// attenuation (1,1,1), whether it reflects or refracts
	glass, err := NewDielectric(1.5)
	if err != nil {
		t.Fatalf("NewDielectric failed: %v", err)
	}
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	hit := core.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 0, 1),
		FrontFace: true,
	}
	rayIn := core.NewRay(core.NewVec3(1, 0, 1), core.NewVec3(-1, 0, -1).Normalize())

	white := core.NewVec3(1, 1, 1)
	for i := 0; i < 100; i++ {
		scatter, didScatter := glass.Scatter(rayIn, hit, sampler)
		if !didScatter {
			t.Fatal("Dielectric should always scatter")
		}
		if !scatter.Attenuation.Equals(white) {
			t.Fatalf("Expected attenuation (1,1,1), got %v", scatter.Attenuation)
		}
	}
}

func TestDielectric_VacuumMatchedPassthrough(t *testing.T) {
	// With refractive index 1.0 there is no interface: rays pass through
	// with zero directional change
	vacuum, err := NewDielectric(1.0)
	if err != nil {
		t.Fatalf("NewDielectric failed: %v", err)
	}
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	tests := []struct {
		name      string
		direction core.Vec3
		frontFace bool
		normal    core.Vec3
	}{
		{"head-on entering", core.NewVec3(0, 0, -1), true, core.NewVec3(0, 0, 1)},
		{"oblique entering", core.NewVec3(1, 0, -2).Normalize(), true, core.NewVec3(0, 0, 1)},
		{"oblique exiting", core.NewVec3(0.5, 0.1, -1).Normalize(), false, core.NewVec3(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := core.HitRecord{
				Point:     core.NewVec3(0, 0, 0),
				Normal:    tt.normal,
				FrontFace: tt.frontFace,
			}
			rayIn := core.NewRay(tt.direction.Negate(), tt.direction)

			for i := 0; i < 10; i++ {
				scatter, didScatter := vacuum.Scatter(rayIn, hit, sampler)
				if !didScatter {
					t.Fatal("Dielectric should always scatter")
				}
				got := scatter.Scattered.Direction.Normalize()
				if got.Subtract(tt.direction).Length() > 1e-9 {
					t.Fatalf("Expected unbent direction %v, got %v", tt.direction, got)
				}
			}
		})
	}
}

func TestDielectric_TotalInternalReflection(t *testing.T) {
	// A ray exiting glass at a steep angle cannot refract (sin > 1) and
	// must reflect instead
	glass, err := NewDielectric(1.5)
	if err != nil {
		t.Fatalf("NewDielectric failed: %v", err)
	}
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	// Critical angle for glass-to-air is ~41.8 degrees; use 60 degrees
	theta := 60.0 * math.Pi / 180
	direction := core.NewVec3(math.Sin(theta), -math.Cos(theta), 0)
	hit := core.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: false, // Exiting the medium
	}
	rayIn := core.NewRay(direction.Negate(), direction)

	expected := direction.Reflect(hit.Normal)
	for i := 0; i < 100; i++ {
		scatter, didScatter := glass.Scatter(rayIn, hit, sampler)
		if !didScatter {
			t.Fatal("Dielectric should always scatter")
		}
		got := scatter.Scattered.Direction.Normalize()
		if got.Subtract(expected).Length() > 1e-9 {
			t.Fatalf("Expected mirror reflection %v, got %v", expected, got)
		}
	}
}

func TestDielectric_RefractionRatioBySide(t *testing.T) {
	// Entering glass bends the ray toward the normal; the refracted angle
	// must satisfy Snell's law with ratio 1/1.5
	glass, err := NewDielectric(1.5)
	if err != nil {
		t.Fatalf("NewDielectric failed: %v", err)
	}

	theta := 45.0 * math.Pi / 180
	direction := core.NewVec3(math.Sin(theta), -math.Cos(theta), 0)
	hit := core.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: true,
	}
	rayIn := core.NewRay(direction.Negate(), direction)

	// Find a refraction event; Schlick reflectance at 45 degrees is low,
	// so most samples refract
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	sawRefraction := false
	for i := 0; i < 1000; i++ {
		scatter, _ := glass.Scatter(rayIn, hit, sampler)
		dir := scatter.Scattered.Direction.Normalize()
		if dir.Y >= 0 {
			continue // Reflected sample
		}
		sawRefraction = true
		sinOut := math.Abs(dir.X)
		expectedSin := math.Sin(theta) / 1.5
		if math.Abs(sinOut-expectedSin) > 1e-9 {
			t.Fatalf("Snell's law violated: expected sin=%f, got %f", expectedSin, sinOut)
		}
	}
	if !sawRefraction {
		t.Error("Expected at least one refraction event")
	}
}

func TestReflectance_SchlickApproximation(t *testing.T) {
	// At normal incidence the Schlick formula reduces to r0
	ratio := 1.0 / 1.5
	r0 := math.Pow((1-ratio)/(1+ratio), 2)
	if got := Reflectance(1.0, ratio); math.Abs(got-r0) > 1e-12 {
		t.Errorf("Expected r0=%f at normal incidence, got %f", r0, got)
	}

	// At grazing incidence reflectance approaches 1
	if got := Reflectance(0.0, ratio); math.Abs(got-1.0) > 1e-12 {
		t.Errorf("Expected reflectance 1 at grazing incidence, got %f", got)
	}

	// Reflectance grows monotonically as the angle steepens
	prev := Reflectance(1.0, ratio)
	for cos := 0.9; cos >= 0; cos -= 0.1 {
		cur := Reflectance(cos, ratio)
		if cur < prev {
			t.Fatalf("Reflectance should grow as cosine decreases: R(%f)=%f < %f", cos, cur, prev)
		}
		prev = cur
	}
}
