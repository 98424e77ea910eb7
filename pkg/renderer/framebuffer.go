package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Framebuffer is a row-major grid of colors with a top-left origin.
// It is the renderer's only output; display layers convert it to
// whatever pixel format they need.
type Framebuffer struct {
	width, height int
	pixels        []core.Color
}

// NewFramebuffer creates a framebuffer of the given dimensions
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		pixels: make([]core.Color, width*height),
	}
}

// Width returns the framebuffer width in pixels
func (f *Framebuffer) Width() int { return f.width }

// Height returns the framebuffer height in pixels
func (f *Framebuffer) Height() int { return f.height }

// At returns the color at pixel (x, y)
func (f *Framebuffer) At(x, y int) core.Color {
	return f.pixels[y*f.width+x]
}

// Set writes the color at pixel (x, y)
func (f *Framebuffer) Set(x, y int, c core.Color) {
	f.pixels[y*f.width+x] = c
}

// Equal reports whether two framebuffers have identical dimensions and
// pixel contents
func (f *Framebuffer) Equal(other *Framebuffer) bool {
	if f.width != other.width || f.height != other.height {
		return false
	}
	for i := range f.pixels {
		if f.pixels[i] != other.pixels[i] {
			return false
		}
	}
	return true
}

// ToImage converts the framebuffer to an RGBA image
func (f *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			c := f.At(x, y)
			img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}
	return img
}
