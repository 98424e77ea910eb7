package scene

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// NewDefaultScene creates the classic four-sphere scene: three colored
// spheres above a huge yellow ground sphere, lit by one ambient, one
// point, and one directional light summing to full intensity.
func NewDefaultScene() *Scene {
	spheres := []*geometry.Sphere{
		geometry.NewShinySphere(core.NewVec3(0, -1, 3), 1, core.NewColor(255, 0, 0), 500, 0.2),
		geometry.NewShinySphere(core.NewVec3(2, 0, 4), 1, core.NewColor(0, 0, 255), 500, 0.3),
		geometry.NewShinySphere(core.NewVec3(-2, 0, 4), 1, core.NewColor(0, 255, 0), 10, 0.4),
		geometry.NewShinySphere(core.NewVec3(0, -5001, 0), 5000, core.NewColor(255, 255, 0), 1000, 0.5),
	}

	sceneLights := []lights.Light{
		lights.NewAmbientLight(0.2),
		lights.NewPointLight(0.6, core.NewVec3(2, 1, 0)),
		lights.NewDirectionalLight(0.2, core.NewVec3(1, 4, 4)),
	}

	s, err := NewScene(spheres, sceneLights, core.NewColor(0, 0, 0))
	if err != nil {
		// The built-in lights sum to exactly 1.0
		panic(err)
	}
	return s
}

// NewMirrorScene creates a variant of the default scene with highly
// reflective spheres, useful for exercising deep reflection bounces.
func NewMirrorScene() *Scene {
	spheres := []*geometry.Sphere{
		geometry.NewShinySphere(core.NewVec3(0, -1, 3), 1, core.NewColor(220, 220, 220), 800, 0.9),
		geometry.NewShinySphere(core.NewVec3(2, 0, 4), 1, core.NewColor(0, 0, 255), 500, 0.8),
		geometry.NewShinySphere(core.NewVec3(-2, 0, 4), 1, core.NewColor(0, 255, 0), 10, 0.8),
		geometry.NewShinySphere(core.NewVec3(0, -5001, 0), 5000, core.NewColor(255, 255, 0), 1000, 0.5),
	}

	sceneLights := []lights.Light{
		lights.NewAmbientLight(0.2),
		lights.NewPointLight(0.6, core.NewVec3(2, 1, 0)),
		lights.NewDirectionalLight(0.2, core.NewVec3(1, 4, 4)),
	}

	s, err := NewScene(spheres, sceneLights, core.NewColor(0, 0, 0))
	if err != nil {
		panic(err)
	}
	return s
}

// ByName returns a built-in scene by name
func ByName(name string) (*Scene, error) {
	switch name {
	case "default":
		return NewDefaultScene(), nil
	case "mirrors":
		return NewMirrorScene(), nil
	default:
		return nil, fmt.Errorf("unknown scene: %q", name)
	}
}

// Names lists the built-in scene names
func Names() []string {
	return []string{"default", "mirrors"}
}
