package main

import (
	"math"
	"math/rand"
	"testing"
)

func TestShootingStarsGateForcedOff(t *testing.T) {
	// with a trigger level the pulse can never reach, every
	// comet must contribute exactly zero
	params := DefaultSkyParams()
	for i := range params.Comets {
		params.Comets[i].TriggerLevel = 1.1
	}

	shader := newTestShader(t, params)

	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 10000; i++ {
		coord := FPt(rng.Float64(), rng.Float64())
		time := rng.Float64() * 300

		if got := shader.ShootingStars(coord, time); !got.IsZero() {
			t.Fatalf("ShootingStars(%v, %v) = %v, want exactly zero", coord, time, got)
		}
	}
}

func TestCometVisibleOnTrail(t *testing.T) {
	params := DefaultSkyParams()
	params.Comets = []CometParams{{
		StartX: 0.5, StartY: 0.5,
		Angle: 0, Travel: 0,
		Speed: 0, Length: 0.2, Width: 0.002,
		TriggerPeriod: 10, TriggerLevel: 0.9,
		// phase puts the trigger pulse at its peak at t=0
		// and the cycle progress mid way
		Phase:      math.Pi / 2,
		Brightness: 1,
		Color:      "#ffffff",
	}}

	shader := newTestShader(t, params)

	// head sits at the start point, the queried coordinate is
	// the head itself
	got := shader.ShootingStars(FPt(0.5, 0.5), 0)

	if got.IsZero() {
		t.Fatalf("comet head gave zero contribution")
	}

	// far away from the trail there is nothing
	if got := shader.ShootingStars(FPt(0.1, 0.9), 0); !got.IsZero() {
		t.Errorf("far coordinate gave %v, want zero", got)
	}
}

func TestCometTrailAnisotropy(t *testing.T) {
	params := DefaultSkyParams()
	params.Comets = []CometParams{{
		StartX: 0.5, StartY: 0.5,
		Angle: 0, Travel: 0,
		Speed: 0, Length: 0.2, Width: 0.002,
		TriggerPeriod: 10, TriggerLevel: 0.9,
		Phase:         math.Pi / 2,
		Brightness:    1,
		Color:         "#ffffff",
	}}

	shader := newTestShader(t, params)

	// behind the head, along the trail axis
	along := shader.ShootingStars(FPt(0.4, 0.5), 0)
	if along.IsZero() {
		t.Errorf("point on the trail axis gave zero")
	}

	// same distance but perpendicular to the axis
	perp := shader.ShootingStars(FPt(0.5, 0.4), 0)
	if !perp.IsZero() {
		t.Errorf("point off the trail axis gave %v, want zero", perp)
	}

	// ahead of the head
	ahead := shader.ShootingStars(FPt(0.6, 0.5), 0)
	if !ahead.IsZero() {
		t.Errorf("point ahead of the head gave %v, want zero", ahead)
	}
}
