package core

// Color represents an 8-bit RGB color. Channel arithmetic saturates at
// the [0, 255] range rather than wrapping.
type Color struct {
	R, G, B uint8
}

// NewColor creates a new Color
func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Illuminate returns the color scaled channel-wise by the given
// intensity, clamped to the valid channel range. Negative intensities
// clamp to black.
func (c Color) Illuminate(intensity float64) Color {
	return Color{
		R: clampChannel(float64(c.R) * intensity),
		G: clampChannel(float64(c.G) * intensity),
		B: clampChannel(float64(c.B) * intensity),
	}
}

// Add returns the channel-wise sum of two colors, clamped to 255.
func (c Color) Add(other Color) Color {
	return Color{
		R: clampChannel(float64(c.R) + float64(other.R)),
		G: clampChannel(float64(c.G) + float64(other.G)),
		B: clampChannel(float64(c.B) + float64(other.B)),
	}
}

func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
