package renderer

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// DefaultPlaneDistance is the distance from the camera origin to the
// projection plane.
const DefaultPlaneDistance = 0.5

// Camera is a pinhole camera: rays start at the origin and pass
// through a projection plane at a fixed distance.
type Camera struct {
	Origin        core.Vec3
	PlaneDistance float64
}

// NewCamera creates a camera at the given origin with the default
// projection plane distance
func NewCamera(origin core.Vec3) *Camera {
	return &Camera{Origin: origin, PlaneDistance: DefaultPlaneDistance}
}

// RayThrough maps centered canvas coordinates to a viewing ray. The
// coordinates range over [-width/2, width/2) and [-height/2, height/2)
// with +y pointing up. The direction is aspect-corrected and left
// unnormalized; the intersection math is scale-invariant.
func (c *Camera) RayThrough(x, y, width, height int) core.Ray {
	aspectRatio := float64(width) / float64(height)
	direction := core.NewVec3(
		float64(x)/float64(width)*aspectRatio,
		float64(y)/float64(height),
		c.PlaneDistance,
	)
	return core.NewRay(c.Origin, direction)
}
