package main

import (
	"math"
	"reflect"
	"testing"
)

func TestSkyParamsJsonRoundTrip(t *testing.T) {
	params := DefaultSkyParams()

	jsonBytes, err := SkyParamsToJson(params)
	if err != nil {
		t.Fatalf("failed to marshal params : %v", err)
	}

	loaded, err := SkyParamsFromJson(jsonBytes)
	if err != nil {
		t.Fatalf("failed to unmarshal params : %v", err)
	}

	if !reflect.DeepEqual(params, loaded) {
		t.Fatalf("params changed over a json round trip")
	}
}

func TestDefaultParamsBuildShader(t *testing.T) {
	if _, err := NewSkyShader(DefaultSkyParams()); err != nil {
		t.Fatalf("default params do not compile : %v", err)
	}
}

func TestBadColorRejected(t *testing.T) {
	params := DefaultSkyParams()
	params.TopColor = "not a color"

	if _, err := NewSkyShader(params); err == nil {
		t.Fatalf("expected an error for a bad color string")
	}
}

func TestParseFColor(t *testing.T) {
	white, err := ParseFColor("#ffffff")
	if err != nil {
		t.Fatalf("failed to parse white : %v", err)
	}

	if math.Abs(white.R-1) > 1e-9 || math.Abs(white.G-1) > 1e-9 || math.Abs(white.B-1) > 1e-9 {
		t.Errorf("white parsed as %v, want 1 1 1", white)
	}

	black, err := ParseFColor("black")
	if err != nil {
		t.Fatalf("failed to parse black : %v", err)
	}

	if !black.IsZero() {
		t.Errorf("black parsed as %v, want 0 0 0", black)
	}
}
