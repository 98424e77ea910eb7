package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestSphere_IntersectRay_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, core.NewColor(255, 0, 0), 0)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	if t1, t2, ok := sphere.IntersectRay(ray); ok {
		t.Errorf("Expected miss, got roots t1=%f t2=%f", t1, t2)
	}
}

func TestSphere_IntersectRay_ThroughCenter(t *testing.T) {
	// A ray aimed through the center must yield roots at
	// centerDistance-radius and centerDistance+radius.
	tests := []struct {
		name           string
		center         core.Vec3
		radius         float64
		origin         core.Vec3
		centerDistance float64
	}{
		{
			name:           "unit sphere on z axis",
			center:         core.NewVec3(0, 0, 5),
			radius:         1.0,
			origin:         core.NewVec3(0, 0, 0),
			centerDistance: 5.0,
		},
		{
			name:           "large sphere off axis",
			center:         core.NewVec3(0, 10, 0),
			radius:         3.0,
			origin:         core.NewVec3(0, 0, 0),
			centerDistance: 10.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sphere := NewSphere(tt.center, tt.radius, core.NewColor(255, 0, 0), 0)
			direction := tt.center.Subtract(tt.origin).Normalize()
			ray := core.NewRay(tt.origin, direction)

			t1, t2, ok := sphere.IntersectRay(ray)
			if !ok {
				t.Fatal("Expected hit, got miss")
			}

			near := math.Min(t1, t2)
			far := math.Max(t1, t2)
			const tolerance = 1e-9
			if math.Abs(near-(tt.centerDistance-tt.radius)) > tolerance {
				t.Errorf("Expected near root %f, got %f", tt.centerDistance-tt.radius, near)
			}
			if math.Abs(far-(tt.centerDistance+tt.radius)) > tolerance {
				t.Errorf("Expected far root %f, got %f", tt.centerDistance+tt.radius, far)
			}
		})
	}
}

func TestSphere_IntersectRay_ScaleInvariant(t *testing.T) {
	// Hit points must not depend on the direction's length.
	sphere := NewSphere(core.NewVec3(0, 0, 5), 1.0, core.NewColor(255, 0, 0), 0)
	origin := core.NewVec3(0, 0, 0)

	unit := core.NewRay(origin, core.NewVec3(0, 0, 1))
	scaled := core.NewRay(origin, core.NewVec3(0, 0, 4))

	_, uT2, ok := sphere.IntersectRay(unit)
	if !ok {
		t.Fatal("Expected hit with unit direction")
	}
	_, sT2, ok := sphere.IntersectRay(scaled)
	if !ok {
		t.Fatal("Expected hit with scaled direction")
	}

	uPoint := unit.At(uT2)
	sPoint := scaled.At(sT2)
	if uPoint.Subtract(sPoint).Length() > 1e-9 {
		t.Errorf("Hit points differ: unit %v vs scaled %v", uPoint, sPoint)
	}
}

func TestSphere_IntersectRay_DegenerateDirection(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 5), 1.0, core.NewColor(255, 0, 0), 0)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 0))

	if _, _, ok := sphere.IntersectRay(ray); ok {
		t.Error("Expected zero-length direction to report a miss")
	}
}

func TestSphere_NormalAt(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, 3), 2.0, core.NewColor(255, 0, 0), 0)

	normal := sphere.NormalAt(core.NewVec3(3, 2, 3))
	expected := core.NewVec3(1, 0, 0)
	if normal.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected normal %v, got %v", expected, normal)
	}
	if math.Abs(normal.Length()-1.0) > 1e-9 {
		t.Errorf("Expected unit normal, got length %f", normal.Length())
	}
}
