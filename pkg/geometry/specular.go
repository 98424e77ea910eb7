package geometry

// SpecularExponent is an optional shininess exponent. The zero value
// marks a matte surface that receives no specular term at all, which is
// distinct from a surface with a tiny exponent.
type SpecularExponent struct {
	exponent float64
	valid    bool
}

// Shininess creates a present specular exponent
func Shininess(exponent float64) SpecularExponent {
	return SpecularExponent{exponent: exponent, valid: true}
}

// Value returns the exponent and whether it is present
func (e SpecularExponent) Value() (float64, bool) {
	return e.exponent, e.valid
}
