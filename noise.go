package main

import (
	"math"
)

// =================================
// hash
// =================================

// Hash21 is a deterministic pseudo random value in [0, 1).
// Same input always gives the same output, which is what
// keeps every frame reproducible.
func Hash21(p FPoint) float64 {
	return Fract(math.Sin(p.Dot(FPt(127.1, 311.7))) * 43758.5453123)
}

// Hash22 gives two independent pseudo random values in [0, 1).
func Hash22(p FPoint) FPoint {
	return FPoint{
		X: Fract(math.Sin(p.Dot(FPt(127.1, 311.7))) * 43758.5453123),
		Y: Fract(math.Sin(p.Dot(FPt(269.5, 183.3))) * 43758.5453123),
	}
}

// =================================
// noise
// =================================

// ValueNoise is smoothed lattice noise in [0, 1].
func ValueNoise(p FPoint) float64 {
	i := p.Floor()
	f := p.Fract()

	// cubic hermite weights
	ux := f.X * f.X * (3 - 2*f.X)
	uy := f.Y * f.Y * (3 - 2*f.Y)

	a := Hash21(i)
	b := Hash21(i.Add(FPt(1, 0)))
	c := Hash21(i.Add(FPt(0, 1)))
	d := Hash21(i.Add(FPt(1, 1)))

	return Lerp(Lerp(a, b, ux), Lerp(c, d, ux), uy)
}

// Fbm sums ValueNoise octaves at doubling frequency and
// halving amplitude. Stays below 1 for any octave count.
func Fbm(p FPoint, octaves int) float64 {
	value := 0.0
	amplitude := 0.5

	for range octaves {
		value += amplitude * ValueNoise(p)
		p = p.Scale(2)
		amplitude *= 0.5
	}

	return value
}
