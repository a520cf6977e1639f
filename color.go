package main

import (
	"fmt"
	"image/color"
	"math"

	css "github.com/mazznoer/csscolorparser"
)

// =================================
// FColor
// =================================

// FColor is a display linear rgb triple used while shading.
// Components are unbounded, additive layers can push them
// above 1. They get clamped when converted for display.
type FColor struct {
	R, G, B float64
}

func FCol(r, g, b float64) FColor {
	return FColor{R: r, G: g, B: b}
}

func (c FColor) Add(d FColor) FColor {
	c.R += d.R
	c.G += d.G
	c.B += d.B
	return c
}

func (c FColor) Scale(s float64) FColor {
	c.R *= s
	c.G *= s
	c.B *= s
	return c
}

func (c FColor) Lerp(d FColor, t float64) FColor {
	return FColor{
		R: Lerp(c.R, d.R, t),
		G: Lerp(c.G, d.G, t),
		B: Lerp(c.B, d.B, t),
	}
}

func (c FColor) IsZero() bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}

// =================================
// conversions
// =================================

func ColorToNRGBA(clr color.Color) color.NRGBA {
	if clr == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(clr).(color.NRGBA)
}

func ColorNormalized(clr color.Color) FColor {
	c := ColorToNRGBA(clr)
	return FColor{
		R: f64(c.R) / 255,
		G: f64(c.G) / 255,
		B: f64(c.B) / 255,
	}
}

func ColorToString(clr color.Color) string {
	c := ColorToNRGBA(clr)
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

func ParseColorString(str string) (color.NRGBA, error) {
	c, err := css.Parse(str)

	if err != nil {
		return color.NRGBA{}, err
	}

	nrgba := color.NRGBA{
		R: uint8(255 * c.R),
		G: uint8(255 * c.G),
		B: uint8(255 * c.B),
		A: uint8(255 * c.A),
	}

	return nrgba, nil
}

// ParseFColor parses a css color string into a linear FColor.
func ParseFColor(str string) (FColor, error) {
	nrgba, err := ParseColorString(str)
	if err != nil {
		return FColor{}, err
	}

	sc := ColorNormalized(nrgba)

	return FColor{
		R: SRGBToLinear(sc.R),
		G: SRGBToLinear(sc.G),
		B: SRGBToLinear(sc.B),
	}, nil
}

func SRGBToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func LinearToSRGB(v float64) float64 {
	v = Clamp(v, 0, 1)
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

// LinearToSRGB8 clamps and gamma encodes one channel for display.
func LinearToSRGB8(v float64) uint8 {
	return uint8(LinearToSRGB(v)*255 + 0.5)
}
