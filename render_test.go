package main

import (
	"bytes"
	"testing"
)

func TestShadePixelsWorkerCountIndependence(t *testing.T) {
	// pixels share no state, so the worker count must not
	// change a single byte
	shader := newTestShader(t, DefaultSkyParams())

	const w, h = 64, 36
	const time = 7.3

	reference := make([]byte, w*h*4)
	ShadePixels(shader, reference, w, h, time, 1)

	for _, workers := range []int{2, 3, 7, 16, 100} {
		pixels := make([]byte, w*h*4)
		ShadePixels(shader, pixels, w, h, time, workers)

		if !bytes.Equal(pixels, reference) {
			t.Fatalf("%d workers produced different pixels than 1 worker", workers)
		}
	}
}

func TestShadePixelsDeterministic(t *testing.T) {
	shader := newTestShader(t, DefaultSkyParams())

	const w, h = 48, 27
	const time = 42.0

	first := make([]byte, w*h*4)
	second := make([]byte, w*h*4)

	ShadePixels(shader, first, w, h, time, 4)
	ShadePixels(shader, second, w, h, time, 4)

	if !bytes.Equal(first, second) {
		t.Fatalf("two renders of the same frame differ")
	}
}

func TestShadePixelsOpaque(t *testing.T) {
	shader := newTestShader(t, DefaultSkyParams())

	const w, h = 16, 16

	pixels := make([]byte, w*h*4)
	ShadePixels(shader, pixels, w, h, 3, 2)

	for i := 3; i < len(pixels); i += 4 {
		if pixels[i] != 0xff {
			t.Fatalf("pixel %d has alpha %d, display buffer must be opaque", i/4, pixels[i])
		}
	}
}
