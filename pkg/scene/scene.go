package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// ErrInvalidLightConfiguration is returned when the lights in a scene
// sum to more than full intensity.
var ErrInvalidLightConfiguration = errors.New("invalid light configuration")

// MaxTotalIntensity is the largest total light intensity a scene may carry.
// Anything above it would push fully-lit surfaces past the channel range
// before clamping, which is a configuration error rather than a runtime
// condition.
const MaxTotalIntensity = 1.0

// Scene contains all the elements needed for rendering. It is built
// once and read-only for the duration of a render pass.
type Scene struct {
	Spheres    []*geometry.Sphere
	Lights     []lights.Light
	Background core.Color
}

// NewScene creates a scene, rejecting light configurations whose total
// intensity exceeds MaxTotalIntensity. A sum of exactly 1.0 is valid.
func NewScene(spheres []*geometry.Sphere, sceneLights []lights.Light, background core.Color) (*Scene, error) {
	if total := lights.TotalIntensity(sceneLights); total > MaxTotalIntensity {
		return nil, fmt.Errorf("%w: total light intensity %.3f exceeds %.1f",
			ErrInvalidLightConfiguration, total, MaxTotalIntensity)
	}

	return &Scene{
		Spheres:    spheres,
		Lights:     sceneLights,
		Background: background,
	}, nil
}
