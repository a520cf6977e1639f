package main

import (
	"encoding/json"
	"os"
)

// Every tunable of the sky shader lives in this table so the
// whole look can be audited, saved and reloaded in one place.
// Color fields are css color strings.

type StarLayerParams struct {
	GridScale  float64 // cells across the unit square
	Threshold  float64 // cell hash must exceed this for a star to exist
	Seed       float64 // per layer hash offset
	MinRadius  float64 // in cell units
	MaxRadius  float64
	Brightness float64
}

type CometParams struct {
	StartX, StartY float64 // head position at progress 0
	Angle          float64 // trajectory angle in radians
	Travel         float64 // distance covered over one cycle
	Speed          float64 // cycles per second
	Length         float64 // trail length
	Width          float64 // trail half width
	TriggerPeriod  float64 // seconds per visibility pulse
	TriggerLevel   float64 // pulse must exceed this to show
	Phase          float64
	Brightness     float64
	Color          string
}

type AuroraBandParams struct {
	Anchors     [4]string // hue anchors, mixed in OKLab
	CenterY     float64   // vertical center of the band
	NoiseScale  FPoint    // vertically stretched noise frequency
	ScrollSpeed float64   // horizontal noise drift
	WaveFreq    float64   // sine frequency of the curtain displacement
	WaveAmp     float64
	FlowFreq    float64 // horizontal frequency of the flow sine
	FlowSpeed   float64
	HueSpeed1   float64 // anchor 0 to 1 blend oscillation
	HueSpeed2   float64 // anchor 2 to 3 blend oscillation
	Phase       float64
	Strength    float64 // overall intensity scale, keep at most 1
}

type SkyParams struct {
	// background
	TopColor    string
	BottomColor string
	Vignette    float64

	// stars
	StarLayers   [3]StarLayerParams
	StarWarm     string // cool yellow orange class
	StarWhite    string
	StarBlue     string // blue white class
	TwinkleSpeed float64

	// dust sparkle
	DustScale      float64
	DustThreshold  float64
	DustBrightness float64

	// nebula
	NebulaScale    float64
	NebulaDrift    float64
	NebulaMaskLow  float64
	NebulaMaskHigh float64
	NebulaColorA   string
	NebulaColorB   string
	NebulaStrength float64

	// shooting stars
	Comets []CometParams

	// aurora
	Bands         [2]AuroraBandParams
	ShimmerScale  float64
	ShimmerMin    float64 // shimmer modulates intensity between min and 1
	GlowStrength  float64
	SurgePeriod   float64
	SurgeLevel    float64
	SurgeStrength float64
	CurtainPeriod float64
	CurtainLevel  float64
	CurtainFreq   float64
	CurtainDepth  float64 // how far rays cut into the band, 0 to 1

	// compositing
	AuroraBlendScale float64
	AuroraBlendCap   float64 // below 1 so stars stay visible through the aurora
	StarReAdd        float64
	AlphaScale       float64
	AlphaFloor       float64
	WarmupTime       float64 // seconds of star only frames at startup
}

func DefaultSkyParams() SkyParams {
	return SkyParams{
		TopColor:    "#02020a",
		BottomColor: "#0a0f22",
		Vignette:    0.35,

		StarLayers: [3]StarLayerParams{
			{GridScale: 60, Threshold: 0.970, Seed: 0, MinRadius: 0.08, MaxRadius: 0.16, Brightness: 0.35},
			{GridScale: 35, Threshold: 0.985, Seed: 43.7, MinRadius: 0.10, MaxRadius: 0.22, Brightness: 0.70},
			{GridScale: 15, Threshold: 0.992, Seed: 91.3, MinRadius: 0.14, MaxRadius: 0.30, Brightness: 1.00},
		},
		StarWarm:     "#ffd9a0",
		StarWhite:    "#ffffff",
		StarBlue:     "#bcd4ff",
		TwinkleSpeed: 3.0,

		DustScale:      180,
		DustThreshold:  0.93,
		DustBrightness: 0.05,

		NebulaScale:    3.0,
		NebulaDrift:    0.008,
		NebulaMaskLow:  0.45,
		NebulaMaskHigh: 0.75,
		NebulaColorA:   "#141034",
		NebulaColorB:   "#251335",
		NebulaStrength: 0.55,

		Comets: []CometParams{
			{
				StartX: 0.1, StartY: 0.15, Angle: 0.35, Travel: 1.1,
				Speed: 0.22, Length: 0.22, Width: 0.0022,
				TriggerPeriod: 11, TriggerLevel: 0.93, Phase: 0,
				Brightness: 1.6, Color: "#e8f2ff",
			},
			{
				StartX: 0.85, StartY: 0.08, Angle: 2.65, Travel: 1.0,
				Speed: 0.31, Length: 0.17, Width: 0.0018,
				TriggerPeriod: 17, TriggerLevel: 0.95, Phase: 2.4,
				Brightness: 1.2, Color: "#fff1dc",
			},
			{
				StartX: 0.4, StartY: 0.05, Angle: 0.9, Travel: 0.9,
				Speed: 0.26, Length: 0.14, Width: 0.0015,
				TriggerPeriod: 23, TriggerLevel: 0.96, Phase: 4.1,
				Brightness: 1.0, Color: "#e0fff4",
			},
		},

		Bands: [2]AuroraBandParams{
			{
				Anchors:     [4]string{"#21e884", "#19c8b4", "#2b6ede", "#8a3ce0"},
				CenterY:     0.5,
				NoiseScale:  FPt(2.2, 5.5),
				ScrollSpeed: 0.06,
				WaveFreq:    4.0,
				WaveAmp:     0.10,
				FlowFreq:    6.0,
				FlowSpeed:   0.55,
				HueSpeed1:   0.21,
				HueSpeed2:   0.13,
				Phase:       0,
				Strength:    1.0,
			},
			{
				Anchors:     [4]string{"#e84a6f", "#ff7aa8", "#b03ce0", "#6e2bde"},
				CenterY:     0.32,
				NoiseScale:  FPt(2.7, 6.2),
				ScrollSpeed: 0.045,
				WaveFreq:    3.3,
				WaveAmp:     0.08,
				FlowFreq:    5.1,
				FlowSpeed:   0.42,
				HueSpeed1:   0.17,
				HueSpeed2:   0.11,
				Phase:       2.9,
				Strength:    0.38,
			},
		},
		ShimmerScale: 9.0,
		ShimmerMin:   0.7,
		GlowStrength: 0.35,

		SurgePeriod:   47,
		SurgeLevel:    0.92,
		SurgeStrength: 0.6,

		CurtainPeriod: 31,
		CurtainLevel:  0.88,
		CurtainFreq:   42,
		CurtainDepth:  0.55,

		AuroraBlendScale: 1.1,
		AuroraBlendCap:   0.85,
		StarReAdd:        0.35,
		AlphaScale:       0.9,
		AlphaFloor:       0.1,
		WarmupTime:       0.1,
	}
}

// =================================
// json save and load
// =================================

const SkyParamsPath = "sky_params.json"

func SkyParamsToJson(params SkyParams) ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(params, "", "    ")
	if err != nil {
		return nil, err
	}

	return jsonBytes, nil
}

func SkyParamsFromJson(paramsJson []byte) (SkyParams, error) {
	params := DefaultSkyParams()

	err := json.Unmarshal(paramsJson, &params)
	if err != nil {
		return SkyParams{}, err
	}

	return params, nil
}

func SaveSkyParams(params SkyParams) error {
	jsonBytes, err := SkyParamsToJson(params)
	if err != nil {
		return err
	}

	return os.WriteFile(SkyParamsPath, jsonBytes, 0644)
}

// LoadSkyParams reads the param file if it exists,
// otherwise returns the defaults.
func LoadSkyParams() (SkyParams, error) {
	jsonBytes, err := os.ReadFile(SkyParamsPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSkyParams(), nil
		}
		return SkyParams{}, err
	}

	return SkyParamsFromJson(jsonBytes)
}
