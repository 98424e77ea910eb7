package geometry

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Hit records the nearest intersection along a ray
type Hit struct {
	Sphere *Sphere
	T      float64
}

// ClosestIntersection finds the nearest sphere hit by the ray with a
// root strictly inside the open range (tMin, tMax). The comparison
// against the running minimum is a strict <, so the first sphere in
// iteration order wins ties. Returns false when nothing is hit.
func ClosestIntersection(spheres []*Sphere, ray core.Ray, tMin, tMax float64) (Hit, bool) {
	closest := Hit{T: tMax}
	found := false

	for _, sphere := range spheres {
		t1, t2, ok := sphere.IntersectRay(ray)
		if !ok {
			continue
		}
		if t1 > tMin && t1 < closest.T {
			closest = Hit{Sphere: sphere, T: t1}
			found = true
		}
		if t2 > tMin && t2 < closest.T {
			closest = Hit{Sphere: sphere, T: t2}
			found = true
		}
	}

	return closest, found
}
