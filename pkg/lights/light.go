package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

type LightType string

const (
	LightTypeAmbient     LightType = "ambient"
	LightTypePoint       LightType = "point"
	LightTypeDirectional LightType = "directional"
)

// Light is the closed set of light sources the shader understands:
// ambient, point, and directional. Each variant carries exactly the
// payload it needs, so an invalid combination (say, a point light
// without a position) cannot be constructed.
type Light interface {
	Type() LightType
	Intensity() float64
}

// AmbientLight contributes its intensity everywhere, unconditionally
type AmbientLight struct {
	intensity float64
}

// NewAmbientLight creates an ambient light
func NewAmbientLight(intensity float64) *AmbientLight {
	return &AmbientLight{intensity: intensity}
}

func (l *AmbientLight) Type() LightType    { return LightTypeAmbient }
func (l *AmbientLight) Intensity() float64 { return l.intensity }

// PointLight radiates from a fixed position
type PointLight struct {
	intensity float64
	Position  core.Vec3
}

// NewPointLight creates a point light at the given position
func NewPointLight(intensity float64, position core.Vec3) *PointLight {
	return &PointLight{intensity: intensity, Position: position}
}

func (l *PointLight) Type() LightType    { return LightTypePoint }
func (l *PointLight) Intensity() float64 { return l.intensity }

// DirectionalLight radiates along a fixed direction from infinitely far
// away. Direction points from the surface toward the light and is not
// required to be normalized.
type DirectionalLight struct {
	intensity float64
	Direction core.Vec3
}

// NewDirectionalLight creates a directional light
func NewDirectionalLight(intensity float64, direction core.Vec3) *DirectionalLight {
	return &DirectionalLight{intensity: intensity, Direction: direction}
}

func (l *DirectionalLight) Type() LightType    { return LightTypeDirectional }
func (l *DirectionalLight) Intensity() float64 { return l.intensity }

// TotalIntensity sums the intensities of all lights
func TotalIntensity(all []Light) float64 {
	total := 0.0
	for _, light := range all {
		total += light.Intensity()
	}
	return total
}
