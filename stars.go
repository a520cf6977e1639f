package main

import (
	"math"
)

// Stars sums three procedural star layers. Layers overlap
// additively, there is no occlusion between them.
func (s *SkyShader) Stars(coord FPoint, t float64) FColor {
	var sum FColor

	for i := range s.Params.StarLayers {
		sum = sum.Add(s.starLayer(&s.Params.StarLayers[i], coord, t))
	}

	return sum
}

func (s *SkyShader) starLayer(layer *StarLayerParams, coord FPoint, t float64) FColor {
	cell := coord.Scale(layer.GridScale)
	id := cell.Floor()

	h := Hash21(id.Add(FPt(layer.Seed, layer.Seed)))

	// most cells are empty
	if h < layer.Threshold {
		return FColor{}
	}

	// everything about the star derives from the cell id,
	// never from mutable state
	offset := Hash22(id.Add(FPt(layer.Seed+17.0, layer.Seed+17.0)))
	center := offset.Scale(0.6).Add(FPt(0.2, 0.2)) // keep stars off cell edges

	sizeHash := Hash21(id.Add(FPt(layer.Seed+29.0, layer.Seed+29.0)))
	radius := Lerp(layer.MinRadius, layer.MaxRadius, sizeHash)

	dist := cell.Sub(id).Sub(center).Length()
	falloff := 1 - SmoothStep(0, radius, dist)
	if falloff <= 0 {
		return FColor{}
	}

	// rescale the existence hash into a brightness so rarer
	// (higher hash) stars run brighter
	brightness := Remap(h, layer.Threshold, 1, 0.3, 1) * layer.Brightness

	twinkle := 0.75 + 0.25*math.Sin(t*s.Params.TwinkleSpeed+h*97.0)

	clr := s.starColor(id, layer.Seed)

	return clr.Scale(brightness * falloff * twinkle)
}

// starColor picks among three spectral classes and blends
// toward the neighboring class by a temperature factor.
func (s *SkyShader) starColor(id FPoint, seed float64) FColor {
	pal := &s.palette

	temp := Hash21(id.Add(FPt(seed+57.0, seed+57.0)))

	switch {
	case temp < 1.0/3.0:
		return pal.StarWarm.Lerp(pal.StarWhite, temp*3)
	case temp < 2.0/3.0:
		return pal.StarWhite.Lerp(pal.StarBlue, temp*3-1)
	default:
		return pal.StarBlue
	}
}

// dust is a faint sparkle field filling the space between
// stars, drifting slowly sideways.
func (s *SkyShader) dust(coord FPoint, t float64) FColor {
	p := &s.Params

	n := ValueNoise(coord.Scale(p.DustScale).Add(FPt(t*0.05, 0)))
	amount := SmoothStep(p.DustThreshold, 1, n) * p.DustBrightness

	return FCol(amount, amount, amount)
}
