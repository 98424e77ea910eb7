package lights

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestLight_Types(t *testing.T) {
	tests := []struct {
		name     string
		light    Light
		expected LightType
	}{
		{"ambient", NewAmbientLight(0.2), LightTypeAmbient},
		{"point", NewPointLight(0.6, core.NewVec3(2, 1, 0)), LightTypePoint},
		{"directional", NewDirectionalLight(0.2, core.NewVec3(1, 4, 4)), LightTypeDirectional},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.light.Type(); got != tt.expected {
				t.Errorf("Expected type %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestTotalIntensity(t *testing.T) {
	all := []Light{
		NewAmbientLight(0.2),
		NewPointLight(0.6, core.NewVec3(2, 1, 0)),
		NewDirectionalLight(0.2, core.NewVec3(1, 4, 4)),
	}

	if got := TotalIntensity(all); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("Expected total 1.0, got %f", got)
	}
	if got := TotalIntensity(nil); got != 0 {
		t.Errorf("Expected total 0 for no lights, got %f", got)
	}
}
