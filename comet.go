package main

import (
	"math"
)

// ShootingStars evaluates every configured comet and sums
// the visible ones. The comet count is a fixed table, so
// this is a bounded loop.
func (s *SkyShader) ShootingStars(coord FPoint, t float64) FColor {
	var sum FColor

	for i := range s.Params.Comets {
		sum = sum.Add(s.comet(&s.Params.Comets[i], s.palette.CometColors[i], coord, t))
	}

	return sum
}

func (s *SkyShader) comet(c *CometParams, clr FColor, coord FPoint, t float64) FColor {
	// Periodic gate. Comets spend most of the cycle hidden,
	// no state is stored between frames for this.
	trigger := 0.5 + 0.5*math.Sin(t*(2*math.Pi)/c.TriggerPeriod+c.Phase)
	if trigger <= c.TriggerLevel {
		return FColor{}
	}

	progress := Fract(t*c.Speed + c.Phase)

	dir := FPt(math.Cos(c.Angle), math.Sin(c.Angle))
	head := FPt(c.StartX, c.StartY).Add(dir.Scale(progress * c.Travel))

	rel := coord.Sub(head)

	// signed distance along the trail and distance off the
	// trail axis, the trail is an anisotropic tube
	along := rel.Dot(dir)
	perp := math.Abs(rel.Dot(FPt(-dir.Y, dir.X)))

	// the trail lives behind the head
	if along > 0 || along < -c.Length {
		return FColor{}
	}

	tube := (1 - SmoothStep(0, c.Width, perp)) * SmoothStep(-c.Length, 0, along)
	if tube <= 0 {
		return FColor{}
	}

	// fade in at cycle start, fade out at cycle end
	fade := SmoothStep(0, 0.15, progress) * (1 - SmoothStep(0.85, 1, progress))

	return clr.Scale(tube * fade * c.Brightness)
}
