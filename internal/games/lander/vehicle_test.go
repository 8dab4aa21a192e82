package lander

import (
	"math"
	"testing"

	"github.com/lunarcade/lander/internal/config"
)

const testDt = 1.0 / 60.0

func newTestVehicle() *Vehicle {
	cfg := config.DefaultLanderConfig()
	return NewVehicle(cfg.World.Width/2, 120, cfg.Physics, cfg.World)
}

func TestVehicleGravity(t *testing.T) {
	v := newTestVehicle()
	startY := v.Pos.Y

	for i := 0; i < 10; i++ {
		v.Update(testDt, Controls{})
	}

	if v.Pos.Y <= startY {
		t.Errorf("vehicle should fall under gravity: started at %v, now at %v", startY, v.Pos.Y)
	}
	if v.Vel.Y <= 0 {
		t.Errorf("downward velocity should build up, got %v", v.Vel.Y)
	}
	// No fuel spent while coasting
	if v.Fuel != v.phys.FuelStart {
		t.Errorf("coasting should not burn fuel, got %v", v.Fuel)
	}
}

func TestVehicleThrustCountersGravity(t *testing.T) {
	v := newTestVehicle()

	// Upright main engine: net acceleration is gravity - thrust < 0
	v.Update(testDt, Controls{Thrust: true})

	if v.Vel.Y >= 0 {
		t.Errorf("upright thrust should push the vehicle up, vy = %v", v.Vel.Y)
	}
}

func TestVehicleThrustReportsFiring(t *testing.T) {
	v := newTestVehicle()

	if v.Update(testDt, Controls{}) {
		t.Error("engine reported firing with no input")
	}
	if !v.Update(testDt, Controls{Thrust: true}) {
		t.Error("engine should report firing")
	}

	v.Fuel = 0
	if v.Update(testDt, Controls{Thrust: true}) {
		t.Error("engine cannot fire with an empty tank")
	}
}

func TestVehicleFuelBurn(t *testing.T) {
	v := newTestVehicle()
	start := v.Fuel

	v.Update(testDt, Controls{Thrust: true})
	afterMain := v.Fuel
	if afterMain >= start {
		t.Error("main engine should burn fuel")
	}

	v.Update(testDt, Controls{StrafeLeft: true})
	if v.Fuel >= afterMain {
		t.Error("RCS should burn fuel")
	}

	// Fuel never goes negative
	v.Fuel = 0.001
	for i := 0; i < 100; i++ {
		v.Update(testDt, Controls{Thrust: true, RotateLeft: true, StrafeRight: true})
		if v.Fuel < 0 {
			t.Fatalf("fuel went negative: %v", v.Fuel)
		}
	}
}

func TestVehicleRotationNeedsFuel(t *testing.T) {
	v := newTestVehicle()

	v.Update(testDt, Controls{RotateRight: true})
	if v.Angle <= 0 {
		t.Errorf("rotate right should increase the angle, got %v", v.Angle)
	}
	angleWithFuel := v.Angle

	v.Fuel = 0
	v.Update(testDt, Controls{RotateRight: true})
	if v.Angle != angleWithFuel {
		t.Errorf("rotation with empty tank moved the heading: %v -> %v", angleWithFuel, v.Angle)
	}
}

func TestVehicleRotationSymmetry(t *testing.T) {
	v := newTestVehicle()

	v.Update(testDt, Controls{RotateLeft: true})
	if v.Angle >= 0 {
		t.Errorf("rotate left should decrease the angle, got %v", v.Angle)
	}
}

func TestVehicleStrafe(t *testing.T) {
	left := newTestVehicle()
	left.Update(testDt, Controls{StrafeLeft: true})
	if left.Vel.X >= 0 {
		t.Errorf("strafe left should push left, vx = %v", left.Vel.X)
	}

	right := newTestVehicle()
	right.Update(testDt, Controls{StrafeRight: true})
	if right.Vel.X <= 0 {
		t.Errorf("strafe right should push right, vx = %v", right.Vel.X)
	}
}

func TestVehicleHorizontalWrap(t *testing.T) {
	v := newTestVehicle()

	// Push past the left wrap band
	v.Pos.X = -wrapMargin - 1
	v.Vel.X = -1
	v.Update(testDt, Controls{})
	if v.Pos.X < v.world.Width/2 {
		t.Errorf("vehicle should wrap to the right side, x = %v", v.Pos.X)
	}

	v = newTestVehicle()
	v.Pos.X = v.world.Width + wrapMargin + 1
	v.Vel.X = 1
	v.Update(testDt, Controls{})
	if v.Pos.X > v.world.Width/2 {
		t.Errorf("vehicle should wrap to the left side, x = %v", v.Pos.X)
	}
}

func TestVehicleCeiling(t *testing.T) {
	v := newTestVehicle()
	v.Pos.Y = ceilingY + 1
	v.Vel.Y = -50 // Flying up fast

	v.Update(testDt, Controls{})

	if v.Pos.Y < ceilingY {
		t.Errorf("vehicle should stop at the ceiling, y = %v", v.Pos.Y)
	}
	if v.Vel.Y < 0 {
		t.Errorf("upward velocity should be cancelled at the ceiling, vy = %v", v.Vel.Y)
	}
}

func TestVehicleKillLine(t *testing.T) {
	v := newTestVehicle()
	v.Pos.Y = v.world.Height + killMargin
	v.Vel.Y = 5

	v.Update(testDt, Controls{})

	if v.Alive {
		t.Error("vehicle below the kill line should be destroyed")
	}
}

func TestVehicleTerminalStatesFreeze(t *testing.T) {
	landed := newTestVehicle()
	landed.Landed = true
	before := *landed
	if landed.Update(testDt, Controls{Thrust: true}) {
		t.Error("landed vehicle should not fire")
	}
	if landed.Pos != before.Pos || landed.Fuel != before.Fuel {
		t.Error("landed vehicle should not move or burn")
	}

	dead := newTestVehicle()
	dead.Alive = false
	before = *dead
	dead.Update(testDt, Controls{Thrust: true})
	if dead.Pos != before.Pos || dead.Fuel != before.Fuel {
		t.Error("destroyed vehicle should not move or burn")
	}
}

func TestVehicleFootPoints(t *testing.T) {
	v := newTestVehicle()

	lf, rf := v.FootPoints()
	if lf.X >= rf.X {
		t.Errorf("upright feet should be ordered left-right: %v, %v", lf, rf)
	}
	if math.Abs(lf.Y-rf.Y) > 1e-9 {
		t.Errorf("upright feet should share a height: %v vs %v", lf.Y, rf.Y)
	}
	if lf.Y <= v.Pos.Y {
		t.Error("feet should hang below the vehicle center")
	}

	// A half-turn puts the feet above the center
	v.Angle = 180
	lf, _ = v.FootPoints()
	if lf.Y >= v.Pos.Y {
		t.Error("inverted feet should be above the vehicle center")
	}
}

func TestVehicleWorldPolygonClosed(t *testing.T) {
	v := newTestVehicle()
	poly := v.WorldPolygon()

	if len(poly) != len(bodyLocal) {
		t.Fatalf("polygon has %d points, expected %d", len(poly), len(bodyLocal))
	}

	// All points stay near the vehicle center
	for i, p := range poly {
		if p.Sub(v.Pos).Len() > bodyHeight+footSpan {
			t.Errorf("point %d is too far from the center: %v", i, p)
		}
	}
}
