package main

// SkyShader evaluates the whole night sky for one point.
// It is a pure function of (coord, time): no state survives
// between calls, so pixels can be shaded in any order and
// on any number of goroutines.
type SkyShader struct {
	Params SkyParams

	palette skyPalette
}

// skyPalette holds the color params parsed once up front so
// the per pixel path never touches strings.
type skyPalette struct {
	Top, Bottom FColor

	StarWarm  FColor
	StarWhite FColor
	StarBlue  FColor

	NebulaA FColor
	NebulaB FColor

	CometColors []FColor

	BandAnchors [2][4]OKLab
}

func NewSkyShader(params SkyParams) (*SkyShader, error) {
	s := &SkyShader{Params: params}

	if err := s.compilePalette(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *SkyShader) compilePalette() error {
	p := &s.Params
	pal := &s.palette

	var err error

	if pal.Top, err = ParseFColor(p.TopColor); err != nil {
		return err
	}
	if pal.Bottom, err = ParseFColor(p.BottomColor); err != nil {
		return err
	}
	if pal.StarWarm, err = ParseFColor(p.StarWarm); err != nil {
		return err
	}
	if pal.StarWhite, err = ParseFColor(p.StarWhite); err != nil {
		return err
	}
	if pal.StarBlue, err = ParseFColor(p.StarBlue); err != nil {
		return err
	}
	if pal.NebulaA, err = ParseFColor(p.NebulaColorA); err != nil {
		return err
	}
	if pal.NebulaB, err = ParseFColor(p.NebulaColorB); err != nil {
		return err
	}

	pal.CometColors = make([]FColor, len(p.Comets))
	for i := range p.Comets {
		if pal.CometColors[i], err = ParseFColor(p.Comets[i].Color); err != nil {
			return err
		}
	}

	for bi := range p.Bands {
		for ai, anchor := range p.Bands[bi].Anchors {
			clr, err := ParseFColor(anchor)
			if err != nil {
				return err
			}
			pal.BandAnchors[bi][ai] = OKLabFromLinear(clr)
		}
	}

	return nil
}

// Shade computes the final color and alpha for one normalized
// coordinate in [0,1] x [0,1] at time t seconds.
func (s *SkyShader) Shade(coord FPoint, t float64) (FColor, float64) {
	p := &s.Params

	stars := s.Stars(coord, t)

	// The first fractions of a second produce an ugly
	// under seeded transient in the animated layers, so the
	// warmup window shows just the gradient and the stars.
	if t < p.WarmupTime {
		return s.background(coord).Add(stars), p.AlphaFloor
	}

	base := s.background(coord)
	base = base.Add(s.Nebula(coord, t))
	base = base.Add(stars)
	base = base.Add(s.dust(coord, t))
	base = base.Add(s.ShootingStars(coord, t))

	auroraColor, intensity := s.Aurora(coord, t)

	// Cap keeps the densest aurora from fully hiding the sky.
	blend := Clamp(intensity*p.AuroraBlendScale, 0, p.AuroraBlendCap)
	out := base.Lerp(auroraColor, blend)

	// Re-add a slice of raw star light so the point lights
	// stay crisp through the aurora.
	out = out.Add(stars.Scale(p.StarReAdd))

	alpha := intensity*p.AlphaScale + p.AlphaFloor

	return out, alpha
}

// background is the vertical gradient darkened by a vignette.
func (s *SkyShader) background(coord FPoint) FColor {
	p := &s.Params
	pal := &s.palette

	grad := pal.Top.Lerp(pal.Bottom, coord.Y)

	distCenter := coord.Sub(FPt(0.5, 0.5)).Length()
	vignette := 1 - p.Vignette*SmoothStep(0.4, 0.85, distCenter)

	return grad.Scale(vignette)
}
