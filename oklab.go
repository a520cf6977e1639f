package main

import (
	"math"
)

// OKLab is a perceptual opponent color representation.
// Mixing aurora hues here instead of in rgb keeps the
// in-between colors from turning muddy.
type OKLab struct {
	L, A, B float64
}

func (lab OKLab) Add(other OKLab) OKLab {
	lab.L += other.L
	lab.A += other.A
	lab.B += other.B
	return lab
}

func (lab OKLab) Scale(s float64) OKLab {
	lab.L *= s
	lab.A *= s
	lab.B *= s
	return lab
}

func MixOKLab(a, b OKLab, t float64) OKLab {
	return OKLab{
		L: Lerp(a.L, b.L, t),
		A: Lerp(a.A, b.A, t),
		B: Lerp(a.B, b.B, t),
	}
}

// OKLabFromLinear converts display linear rgb to OKLab.
// Matrices are from Björn Ottosson's reference implementation.
func OKLabFromLinear(c FColor) OKLab {
	l := 0.4122214708*c.R + 0.5363325363*c.G + 0.0514459929*c.B
	m := 0.2119034982*c.R + 0.6806995451*c.G + 0.1073969566*c.B
	s := 0.0883024619*c.R + 0.2817188376*c.G + 0.6299787005*c.B

	lc := math.Cbrt(l)
	mc := math.Cbrt(m)
	sc := math.Cbrt(s)

	return OKLab{
		L: 0.2104542553*lc + 0.7936177850*mc - 0.0040720468*sc,
		A: 1.9779984951*lc - 2.4285922050*mc + 0.4505937099*sc,
		B: 0.0259040371*lc + 0.7827717662*mc - 0.8086757660*sc,
	}
}

// ToLinear converts OKLab back to display linear rgb.
// Reconstructs the intermediate cone basis, cubes it,
// then applies the fixed linear matrix.
func (lab OKLab) ToLinear() FColor {
	lc := lab.L + 0.3963377774*lab.A + 0.2158037573*lab.B
	mc := lab.L - 0.1055613458*lab.A - 0.0638541728*lab.B
	sc := lab.L - 0.0894841775*lab.A - 1.2914855480*lab.B

	l := lc * lc * lc
	m := mc * mc * mc
	s := sc * sc * sc

	return FColor{
		R: 4.0767416621*l - 3.3077115913*m + 0.2309699292*s,
		G: -1.2684380046*l + 2.6097574011*m - 0.3413193965*s,
		B: -0.0041960863*l - 0.7034186147*m + 1.7076147010*s,
	}
}
