package lander

import (
	"testing"

	"github.com/lunarcade/lander/internal/config"
	"github.com/lunarcade/lander/internal/core"
)

// flatWorld builds a flat terrain at the given height with a pad
// centered at padX, using default dimensions.
func flatWorld(surfaceY, padX float64) (Terrain, core.RectF, config.LanderConfig) {
	cfg := config.DefaultLanderConfig()

	var pts []core.Vec2
	for x := 0.0; x <= cfg.World.Width; x += float64(cfg.Terrain.Step) {
		pts = append(pts, core.Vec2{X: x, Y: surfaceY})
	}

	pad := core.NewRectF(
		padX-cfg.Terrain.PadWidth/2,
		surfaceY-cfg.Terrain.PadHeight/2,
		cfg.Terrain.PadWidth,
		cfg.Terrain.PadHeight,
	)
	return Terrain{points: pts}, pad, cfg
}

// vehicleAt places a vehicle touching the surface so its body crosses
// the terrain polyline.
func vehicleAt(x, y float64, cfg config.LanderConfig) *Vehicle {
	return NewVehicle(x, y, cfg.Physics, cfg.World)
}

func TestClassifyNoContact(t *testing.T) {
	terrain, pad, cfg := flatWorld(400, 450)
	v := vehicleAt(450, 100, cfg)

	if got := Classify(v, terrain, pad, cfg.Landing); got != OutcomeNone {
		t.Errorf("high above terrain: Classify = %v, expected None", got)
	}
}

func TestClassifySafeLanding(t *testing.T) {
	terrain, pad, cfg := flatWorld(400, 450)
	v := vehicleAt(450, 388, cfg) // Feet at 402, just through the surface

	if got := Classify(v, terrain, pad, cfg.Landing); got != OutcomeLand {
		t.Errorf("slow upright on pad: Classify = %v, expected Land", got)
	}
}

func TestClassifyThresholds(t *testing.T) {
	tests := []struct {
		name     string
		angle    float64
		vx, vy   float64
		expected Outcome
	}{
		{"all zero", 0, 0, 0, OutcomeLand},
		{"vertical speed at limit", 0, 0, 2.5, OutcomeLand},
		{"vertical speed over limit", 0, 0, 2.6, OutcomeCrash},
		{"horizontal speed at limit", 0, 1.8, 0, OutcomeLand},
		{"horizontal speed over limit", 0, 1.9, 0, OutcomeCrash},
		{"tilt at limit", 8, 0, 0, OutcomeLand},
		{"tilt over limit", 9, 0, 0, OutcomeCrash},
		{"tilt at limit the other way", -8, 0, 0, OutcomeLand},
		{"wrapped tilt within limit", 355, 0, 0, OutcomeLand},
		{"wrapped tilt over limit", 350, 0, 0, OutcomeCrash},
		{"upside down", 180, 0, 0, OutcomeCrash},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			terrain, pad, cfg := flatWorld(400, 450)
			v := vehicleAt(450, 388, cfg)
			v.Angle = tc.angle
			v.Vel = core.Vec2{X: tc.vx, Y: tc.vy}

			if got := Classify(v, terrain, pad, cfg.Landing); got != tc.expected {
				t.Errorf("Classify = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestClassifyOffPadContact(t *testing.T) {
	terrain, pad, cfg := flatWorld(400, 450)

	// Gentle and upright, but nowhere near the pad
	v := vehicleAt(150, 388, cfg)

	if got := Classify(v, terrain, pad, cfg.Landing); got != OutcomeCrash {
		t.Errorf("touchdown off the pad: Classify = %v, expected Crash", got)
	}
}

func TestClassifyOneFootOffPad(t *testing.T) {
	terrain, pad, cfg := flatWorld(400, 450)

	// Straddling the pad's left edge: left foot hangs off
	v := vehicleAt(pad.X+5, 388, cfg)

	if got := Classify(v, terrain, pad, cfg.Landing); got != OutcomeCrash {
		t.Errorf("one foot off the pad: Classify = %v, expected Crash", got)
	}
}

func TestClassifyContactIsFinal(t *testing.T) {
	terrain, pad, cfg := flatWorld(400, 450)

	// Fast contact on the pad is a crash, never a continuation
	v := vehicleAt(450, 388, cfg)
	v.Vel = core.Vec2{Y: 10}

	if got := Classify(v, terrain, pad, cfg.Landing); got != OutcomeCrash {
		t.Errorf("fast pad contact: Classify = %v, expected Crash", got)
	}
}

func TestOutcomeString(t *testing.T) {
	if OutcomeNone.String() != "None" || OutcomeLand.String() != "Land" || OutcomeCrash.String() != "Crash" {
		t.Error("Outcome String mismatch")
	}
	if Outcome(99).String() != "Unknown" {
		t.Error("unknown outcome should stringify as Unknown")
	}
}
