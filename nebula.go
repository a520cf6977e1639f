package main

// Nebula is a low amplitude colored haze. One fbm field
// drives opacity, an independent one drives the hue blend,
// and a thresholded mask limits the haze to patches.
func (s *SkyShader) Nebula(coord FPoint, t float64) FColor {
	p := &s.Params
	pal := &s.palette

	drift := FPt(t*p.NebulaDrift, t*p.NebulaDrift*0.6)

	opacity := Fbm(coord.Scale(p.NebulaScale).Add(drift), 4)
	hue := Fbm(coord.Scale(p.NebulaScale).Add(FPt(37.2, 17.8)).Sub(drift), 4)

	mask := SmoothStep(p.NebulaMaskLow, p.NebulaMaskHigh, opacity)
	if mask <= 0 {
		return FColor{}
	}

	clr := pal.NebulaA.Lerp(pal.NebulaB, hue)

	return clr.Scale(mask * p.NebulaStrength)
}
