package main

import (
	"math"
	"math/rand"
	"testing"
)

func TestAuroraIntensityBounds(t *testing.T) {
	shader := newTestShader(t, DefaultSkyParams())

	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 20000; i++ {
		coord := FPt(rng.Float64(), rng.Float64())
		time := rng.Float64() * 600

		_, intensity := shader.Aurora(coord, time)

		if intensity < 0 || intensity > 1 {
			t.Fatalf("Aurora(%v, %v) intensity = %v, want [0, 1]", coord, time, intensity)
		}
	}
}

func TestAuroraDeterministic(t *testing.T) {
	shader := newTestShader(t, DefaultSkyParams())

	rng := rand.New(rand.NewSource(2))

	for i := 0; i < 1000; i++ {
		coord := FPt(rng.Float64(), rng.Float64())
		time := rng.Float64() * 100

		clr1, int1 := shader.Aurora(coord, time)
		clr2, int2 := shader.Aurora(coord, time)

		if clr1 != clr2 || int1 != int2 {
			t.Fatalf("Aurora(%v, %v) not deterministic", coord, time)
		}
	}
}

func TestAuroraHeightMaskPeak(t *testing.T) {
	// at the band center the mask is exactly
	// smoothstep(0, 0.7, 1.0) = 1
	if got := auroraHeightMask(0.5, 0.5); got != 1 {
		t.Errorf("height mask at center = %v, want 1", got)
	}

	// fades to nothing at the frame edges
	if got := auroraHeightMask(0, 0.5); got != 0 {
		t.Errorf("height mask at top = %v, want 0", got)
	}
	if got := auroraHeightMask(1, 0.5); got != 0 {
		t.Errorf("height mask at bottom = %v, want 0", got)
	}
}

func TestBandHueAtScreenCenter(t *testing.T) {
	// at screen center the distance factor is zero, so the
	// hue must reduce to the pure anchor0/anchor1 blend with
	// no pull toward the second pair
	shader := newTestShader(t, DefaultSkyParams())

	band := &shader.Params.Bands[0]
	anchors := &shader.palette.BandAnchors[0]

	for _, time := range []float64{0, 1.5, 17.2, 301} {
		got := shader.bandHue(band, anchors, FPt(0.5, 0.5), time)

		t1 := 0.5 + 0.5*math.Sin(time*band.HueSpeed1+band.Phase)
		want := MixOKLab(anchors[0], anchors[1], t1)

		if got != want {
			t.Errorf("bandHue at center, t=%v : got %v, want %v", time, got, want)
		}
	}
}

func TestBandIntensityFactorsBounded(t *testing.T) {
	// strength above 1 is the only way a band could escape
	// [0, 1] before the clamp; defaults must not do that
	params := DefaultSkyParams()
	for i, band := range params.Bands {
		if band.Strength > 1 {
			t.Errorf("band %d strength = %v, want at most 1", i, band.Strength)
		}
	}
}
