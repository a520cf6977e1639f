package main

import (
	"math"
	"math/rand"
	"testing"
)

func TestHash21Bounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 100000; i++ {
		p := FPt(
			rng.Float64()*2000-1000,
			rng.Float64()*2000-1000,
		)

		h := Hash21(p)

		if h < 0 || h >= 1 {
			t.Fatalf("Hash21(%v) = %v, want [0, 1)", p, h)
		}
	}
}

func TestHash21Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	for i := 0; i < 1000; i++ {
		p := FPt(rng.Float64()*100, rng.Float64()*100)

		first := Hash21(p)
		for j := 0; j < 10; j++ {
			if got := Hash21(p); got != first {
				t.Fatalf("Hash21(%v) changed between calls : %v vs %v", p, first, got)
			}
		}
	}
}

func TestHash22Bounds(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 10000; i++ {
		p := FPt(rng.Float64()*500, rng.Float64()*500)

		h := Hash22(p)

		if h.X < 0 || h.X >= 1 || h.Y < 0 || h.Y >= 1 {
			t.Fatalf("Hash22(%v) = %v, want both in [0, 1)", p, h)
		}
	}
}

func TestValueNoiseBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(4))

	for i := 0; i < 100000; i++ {
		p := FPt(
			rng.Float64()*200-100,
			rng.Float64()*200-100,
		)

		n := ValueNoise(p)

		if n < 0 || n > 1 {
			t.Fatalf("ValueNoise(%v) = %v, want [0, 1]", p, n)
		}
	}
}

func TestValueNoiseAtLattice(t *testing.T) {
	// at integer lattice points the interpolation weights are
	// zero, so the noise collapses to the corner hash
	for x := -5; x <= 5; x++ {
		for y := -5; y <= 5; y++ {
			p := FPt(f64(x), f64(y))

			if got, want := ValueNoise(p), Hash21(p); got != want {
				t.Errorf("ValueNoise(%v) = %v, want corner hash %v", p, got, want)
			}
		}
	}
}

func TestFbmOctaveDecay(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	for i := 0; i < 1000; i++ {
		p := FPt(rng.Float64()*50, rng.Float64()*50)

		for octaves := 1; octaves < 8; octaves++ {
			diff := math.Abs(Fbm(p, octaves+1) - Fbm(p, octaves))
			bound := math.Pow(0.5, f64(octaves+1))

			if diff > bound+1e-12 {
				t.Fatalf("adding octave %d changed Fbm(%v) by %v, bound is %v",
					octaves+1, p, diff, bound)
			}
		}
	}
}

func TestFbmBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(6))

	for i := 0; i < 10000; i++ {
		p := FPt(rng.Float64()*100-50, rng.Float64()*100-50)

		n := Fbm(p, 4)

		if n < 0 || n >= 1 {
			t.Fatalf("Fbm(%v, 4) = %v, want [0, 1)", p, n)
		}
	}
}

func TestSmoothStep(t *testing.T) {
	if got := SmoothStep(0, 1, -1); got != 0 {
		t.Errorf("SmoothStep below edge0 = %v, want 0", got)
	}
	if got := SmoothStep(0, 1, 2); got != 1 {
		t.Errorf("SmoothStep above edge1 = %v, want 1", got)
	}
	if got := SmoothStep(0, 1, 0.5); got != 0.5 {
		t.Errorf("SmoothStep(0, 1, 0.5) = %v, want 0.5", got)
	}
	if got := SmoothStep(0, 0.7, 1.0); got != 1 {
		t.Errorf("SmoothStep(0, 0.7, 1.0) = %v, want 1", got)
	}
}
