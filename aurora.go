package main

import (
	"math"
)

// Aurora returns the combined band color (already scaled by
// intensity) and the total intensity in [0, 1].
func (s *SkyShader) Aurora(coord FPoint, t float64) (FColor, float64) {
	var clr FColor
	intensity := 0.0

	for i := range s.Params.Bands {
		bandClr, bandInt := s.auroraBand(&s.Params.Bands[i], &s.palette.BandAnchors[i], coord, t)
		clr = clr.Add(bandClr)
		intensity += bandInt
	}

	return clr, Clamp(intensity, 0, 1)
}

func (s *SkyShader) auroraBand(band *AuroraBandParams, anchors *[4]OKLab, coord FPoint, t float64) (FColor, float64) {
	intensity := s.bandIntensity(band, coord, t)
	if intensity <= 0 {
		return FColor{}, 0
	}

	lab := s.bandHue(band, anchors, coord, t)

	// scale in the opponent space, then convert
	rgb := lab.Scale(intensity).ToLinear()

	// additive glow, darkened toward the pure hue as the
	// band gets stronger
	pure := lab.ToLinear()
	glow := pure.Scale(0.2).Lerp(pure, intensity)
	rgb = rgb.Add(glow.Scale(intensity * s.Params.GlowStrength))

	// opponent space mixing can dip a channel slightly below
	// zero, keep the band strictly additive
	rgb.R = max(rgb.R, 0)
	rgb.G = max(rgb.G, 0)
	rgb.B = max(rgb.B, 0)

	return rgb, intensity
}

// bandIntensity builds the band shape:
// large scale fbm -> sine displaced curtain -> flow sine ->
// height mask -> noise valley suppression -> shimmer ->
// pulse gates. Every factor is bounded so the result is
// clamped to [0, 1] only to absorb the surge boost.
func (s *SkyShader) bandIntensity(band *AuroraBandParams, coord FPoint, t float64) float64 {
	p := &s.Params

	n := Fbm(FPt(coord.X*band.NoiseScale.X+t*band.ScrollSpeed, coord.Y*band.NoiseScale.Y), 4)

	dispX := coord.X + math.Sin(coord.Y*band.WaveFreq+t*0.5)*band.WaveAmp*n

	flow := 0.5 + 0.5*math.Sin(dispX*band.FlowFreq+n*3+t*band.FlowSpeed+band.Phase)

	mask := auroraHeightMask(coord.Y, band.CenterY)

	intensity := flow * mask * SmoothStep(0.2, 0.7, n) * band.Strength

	// fine grained shimmer on top of the primary shape
	detail := Fbm(coord.Scale(p.ShimmerScale).Add(FPt(t*0.3, -t*0.2)), 3)
	intensity *= Lerp(p.ShimmerMin, 1, detail)

	// infrequent surge pulse
	surge := 0.5 + 0.5*math.Sin(t*(2*math.Pi)/p.SurgePeriod+band.Phase)
	if surge > p.SurgeLevel {
		intensity *= 1 + p.SurgeStrength*SmoothStep(p.SurgeLevel, 1, surge)
	}

	// infrequent curtain rays cutting vertical gaps
	curtain := 0.5 + 0.5*math.Sin(t*(2*math.Pi)/p.CurtainPeriod+band.Phase*1.7)
	if curtain > p.CurtainLevel {
		ray := 0.5 + 0.5*math.Sin(coord.X*p.CurtainFreq+n*4)
		ray = ray * ray * ray
		intensity *= 1 - p.CurtainDepth*SmoothStep(p.CurtainLevel, 1, curtain)*(1-ray)
	}

	return Clamp(intensity, 0, 1)
}

// bandHue mixes the four anchors in OKLab. Two slow
// sinusoids pick within each anchor pair and the distance
// from screen center shifts between the pairs.
func (s *SkyShader) bandHue(band *AuroraBandParams, anchors *[4]OKLab, coord FPoint, t float64) OKLab {
	t1 := 0.5 + 0.5*math.Sin(t*band.HueSpeed1+band.Phase)
	t2 := 0.5 + 0.5*math.Sin(t*band.HueSpeed2+band.Phase+1.7)

	c1 := MixOKLab(anchors[0], anchors[1], t1)
	c2 := MixOKLab(anchors[2], anchors[3], t2)

	distCenter := coord.Sub(FPt(0.5, 0.5)).Length()
	distFactor := SmoothStep(0, 0.8, distCenter)

	return MixOKLab(c1, c2, distFactor)
}

// auroraHeightMask concentrates the band around centerY and
// fades it toward the top and bottom of the frame.
// At y == centerY it evaluates to exactly 1.
func auroraHeightMask(y, centerY float64) float64 {
	return SmoothStep(0, 0.7, 1-2*math.Abs(y-centerY))
}
