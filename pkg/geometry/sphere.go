package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Sphere is the only primitive the tracer renders. Reflective is the
// fraction of the final color taken from the reflected ray, in [0, 1].
type Sphere struct {
	Center     core.Vec3
	Radius     float64
	Color      core.Color
	Specular   SpecularExponent
	Reflective float64
}

// NewSphere creates a matte sphere with no specular highlight
func NewSphere(center core.Vec3, radius float64, color core.Color, reflective float64) *Sphere {
	return &Sphere{
		Center:     center,
		Radius:     radius,
		Color:      color,
		Reflective: reflective,
	}
}

// NewShinySphere creates a sphere with a specular highlight
func NewShinySphere(center core.Vec3, radius float64, color core.Color, specular, reflective float64) *Sphere {
	return &Sphere{
		Center:     center,
		Radius:     radius,
		Color:      color,
		Specular:   Shininess(specular),
		Reflective: reflective,
	}
}

// IntersectRay solves the ray-sphere quadratic and returns both roots,
// unordered and unfiltered. Callers filter by their own parametric range.
// Returns false when the ray misses the sphere or its direction is
// degenerate (zero length).
func (s *Sphere) IntersectRay(ray core.Ray) (t1, t2 float64, ok bool) {
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	if a == 0 {
		return 0, 0, false
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, 0, false
	}

	sqrtD := math.Sqrt(discriminant)
	t1 = (-b + sqrtD) / (2 * a)
	t2 = (-b - sqrtD) / (2 * a)
	return t1, t2, true
}

// NormalAt returns the outward unit normal at a point on the sphere surface
func (s *Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}
