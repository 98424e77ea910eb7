package renderer

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// ErrInvalidDimensions is returned when the requested render has a
// non-positive width or height, or a negative recursion depth.
var ErrInvalidDimensions = errors.New("invalid render dimensions")

const (
	// primaryTMin keeps primary rays from hitting anything between the
	// camera origin and the projection plane.
	primaryTMin = 1.0
	// secondaryTMin offsets shadow and reflection rays off the surface
	// they start on to avoid self-intersection.
	secondaryTMin = 0.001
)

// Config contains rendering configuration
type Config struct {
	MaxDepth   int // Maximum reflection recursion depth
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		MaxDepth:   3,
		NumWorkers: 0,
	}
}

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Raytracer renders a scene through a camera into a framebuffer
type Raytracer struct {
	scene  *scene.Scene
	camera *Camera
	width  int
	height int
	config Config
	logger core.Logger
}

// NewRaytracer creates a new raytracer. A nil logger falls back to the
// default stdout logger.
func NewRaytracer(s *scene.Scene, camera *Camera, width, height int, config Config, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Raytracer{
		scene:  s,
		camera: camera,
		width:  width,
		height: height,
		config: config,
		logger: logger,
	}
}

// Render traces every pixel and returns the finished framebuffer.
// Rows are rendered in parallel; the output is deterministic regardless
// of worker count because each pixel depends only on the immutable
// scene. Cancelling the context aborts between rows.
func (rt *Raytracer) Render(ctx context.Context) (*Framebuffer, error) {
	if rt.width <= 0 || rt.height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rt.width, rt.height)
	}
	if rt.config.MaxDepth < 0 {
		return nil, fmt.Errorf("%w: negative max depth %d", ErrInvalidDimensions, rt.config.MaxDepth)
	}

	fb := NewFramebuffer(rt.width, rt.height)

	pool := NewWorkerPool(rt.config.NumWorkers, rt.height)
	rt.logger.Printf("Rendering %dx%d at depth %d using %d workers...\n",
		rt.width, rt.height, rt.config.MaxDepth, pool.NumWorkers())

	pool.Start(ctx, func(task RowTask) {
		rt.renderRow(task.Y, fb)
	})

	for y := 0; y < rt.height; y++ {
		pool.Submit(RowTask{Y: y})
	}
	pool.Close()

	for result := range pool.Results() {
		if result.Err != nil {
			return nil, result.Err
		}
	}

	return fb, nil
}

// renderRow traces one row of pixels. Rows write disjoint framebuffer
// regions, so no locking is needed.
func (rt *Raytracer) renderRow(y int, fb *Framebuffer) {
	cy := rt.height/2 - 1 - y
	for x := 0; x < rt.width; x++ {
		cx := x - rt.width/2
		ray := rt.camera.RayThrough(cx, cy, rt.width, rt.height)
		fb.Set(x, y, rt.traceRay(ray, primaryTMin, math.Inf(1), rt.config.MaxDepth))
	}
}

// traceRay returns the color seen along a ray: the nearest sphere's
// locally shaded color blended with the reflected color, or the scene
// background on a miss. Depth strictly decreases on recursion.
func (rt *Raytracer) traceRay(ray core.Ray, tMin, tMax float64, depth int) core.Color {
	hit, ok := geometry.ClosestIntersection(rt.scene.Spheres, ray, tMin, tMax)
	if !ok {
		return rt.scene.Background
	}

	point := ray.At(hit.T)
	normal := hit.Sphere.NormalAt(point)
	view := ray.Direction.Negate()
	intensity := rt.computeLighting(point, normal, view, hit.Sphere.Specular)
	localColor := hit.Sphere.Color.Illuminate(intensity)

	reflective := hit.Sphere.Reflective
	if depth <= 0 || reflective <= 0 {
		return localColor
	}

	reflected := view.Reflect(normal)
	reflectedColor := rt.traceRay(core.NewRay(point, reflected), secondaryTMin, math.Inf(1), depth-1)

	return localColor.Illuminate(1 - reflective).Add(reflectedColor.Illuminate(reflective))
}

// computeLighting accumulates the scalar light intensity at a surface
// point. The normal must be a unit vector; light and view directions
// carry their own lengths in the formulas. The result is not clamped,
// color combination clamps later.
func (rt *Raytracer) computeLighting(point, normal, view core.Vec3, specular geometry.SpecularExponent) float64 {
	intensity := 0.0

	for _, light := range rt.scene.Lights {
		var lightDir core.Vec3
		switch l := light.(type) {
		case *lights.AmbientLight:
			intensity += l.Intensity()
			continue
		case *lights.PointLight:
			lightDir = l.Position.Subtract(point)
		case *lights.DirectionalLight:
			lightDir = l.Direction
		default:
			continue
		}

		// An occluder anywhere toward the light blocks it entirely,
		// even past a point light's position.
		shadowRay := core.NewRay(point, lightDir)
		if _, blocked := geometry.ClosestIntersection(rt.scene.Spheres, shadowRay, secondaryTMin, math.Inf(1)); blocked {
			continue
		}

		nDotL := normal.Dot(lightDir)
		if nDotL > 0 {
			intensity += light.Intensity() * nDotL / (normal.Length() * lightDir.Length())
		}

		if exponent, ok := specular.Value(); ok {
			reflected := lightDir.Reflect(normal)
			rDotV := reflected.Dot(view)
			if rDotV > 0 {
				intensity += light.Intensity() * math.Pow(rDotV/(reflected.Length()*view.Length()), exponent)
			}
		}
	}

	return intensity
}
