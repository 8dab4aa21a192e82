package config

import (
	_ "embed"
)

//go:embed defaults/lander.yaml
var defaultLanderYAML []byte

// DefaultLanderConfig returns the default Moon Lander tuning.
// Values mirror defaults/lander.yaml and serve as the last-resort
// fallback if the embedded YAML fails to parse.
func DefaultLanderConfig() LanderConfig {
	return LanderConfig{
		World: World{
			Width:  900,
			Height: 650,
		},
		Physics: Physics{
			Gravity:      0.12,
			MainThrust:   0.22,
			SideThrust:   0.08,
			RotSpeed:     120,
			FuelStart:    100.0,
			FuelMainBurn: 20.0,
			FuelRCSBurn:  6.0,
		},
		Terrain: TerrainParams{
			Step:          30,
			Roughness:     35,
			BandMin:       0.35,
			BandMax:       0.85,
			StartMin:      0.45,
			StartMax:      0.70,
			PadWidth:      120,
			PadHeight:     8,
			PadMinFrac:    0.15,
			PadMaxFrac:    0.80,
			FlattenMargin: 30,
		},
		Landing: Landing{
			MaxAngle: 8,
			MaxVX:    1.8,
			MaxVY:    2.5,
		},
		Scoring: Scoring{
			LandBase:     100,
			CrashPenalty: 50,
			GentleBonus:  20,
			GentleVYCost: 4,
		},
	}
}
