package lander

import (
	"math"

	"github.com/lunarcade/lander/internal/config"
	"github.com/lunarcade/lander/internal/core"
)

// Body dimensions in local space, world units. The body is a triangle-ish
// hull with two landing legs; the leg tips are the foot points used for
// touchdown alignment checks.
const (
	bodyHeight = 28
	bodyWidth  = 18
	footSpan   = 8 // leg tip offset beyond the hull
)

// World boundary rules, world units.
const (
	wrapMargin = 30 // horizontal wrap band outside the world edges
	ceilingY   = 20 // soft ceiling; upward motion stops here
	killMargin = 50 // falling this far below the world is fatal
)

// bodyLocal is the closed hull outline in local space, centered on the
// vehicle position with y growing downward.
var bodyLocal = []core.Vec2{
	{X: 0, Y: -bodyHeight / 2},                   // top
	{X: bodyWidth / 2, Y: bodyHeight / 2},        // right bottom
	{X: bodyWidth/2 + footSpan, Y: bodyHeight / 2}, // right foot
	{X: bodyWidth / 2, Y: bodyHeight / 2},        // back to right bottom
	{X: -bodyWidth / 2, Y: bodyHeight / 2},       // left bottom
	{X: -bodyWidth/2 - footSpan, Y: bodyHeight / 2}, // left foot
	{X: -bodyWidth / 2, Y: bodyHeight / 2},       // left bottom again, closes the legs
}

var (
	leftFootLocal  = core.Vec2{X: -bodyWidth/2 - footSpan, Y: bodyHeight / 2}
	rightFootLocal = core.Vec2{X: bodyWidth/2 + footSpan, Y: bodyHeight / 2}
)

// Controls is the level-triggered input snapshot for one tick.
type Controls struct {
	RotateLeft  bool
	RotateRight bool
	Thrust      bool
	StrafeLeft  bool
	StrafeRight bool
}

// Vehicle owns the lander's kinematic state. It is mutated only by
// Update; Update is a no-op once the vehicle is landed or destroyed.
type Vehicle struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Angle  float64 // degrees, 0 = upright, increasing clockwise
	Fuel   float64
	Alive  bool
	Landed bool

	phys  config.Physics
	world config.World
}

// NewVehicle creates a live vehicle at (x, y) with a full tank.
func NewVehicle(x, y float64, phys config.Physics, world config.World) *Vehicle {
	return &Vehicle{
		Pos:   core.Vec2{X: x, Y: y},
		Fuel:  phys.FuelStart,
		Alive: true,
		phys:  phys,
		world: world,
	}
}

// WorldPolygon returns the body outline rotated by the heading and
// translated to the vehicle position.
func (v *Vehicle) WorldPolygon() []core.Vec2 {
	pts := make([]core.Vec2, len(bodyLocal))
	for i, lp := range bodyLocal {
		pts[i] = core.Rotate(v.Pos.Add(lp), v.Pos, v.Angle)
	}
	return pts
}

// FootPoints returns the two leg tips in world space.
func (v *Vehicle) FootPoints() (left, right core.Vec2) {
	left = core.Rotate(v.Pos.Add(leftFootLocal), v.Pos, v.Angle)
	right = core.Rotate(v.Pos.Add(rightFootLocal), v.Pos, v.Angle)
	return left, right
}

// Update applies one tick of control input and integrates motion.
// Returns whether the main engine fired this tick.
//
// Accelerations are tuned as per-tick deltas: the integration step adds
// them unscaled. dt only scales the rotation rate and the fuel burn.
func (v *Vehicle) Update(dt float64, in Controls) bool {
	if !v.Alive || v.Landed {
		return false
	}

	// Rotation and its burn are coupled: with the tank empty the
	// heading does not move either.
	if in.RotateLeft && v.Fuel > 0 {
		v.Angle -= v.phys.RotSpeed * dt
		v.burn(v.phys.FuelRCSBurn * dt)
	}
	if in.RotateRight && v.Fuel > 0 {
		v.Angle += v.phys.RotSpeed * dt
		v.burn(v.phys.FuelRCSBurn * dt)
	}

	thrusting := false
	acc := core.Vec2{Y: v.phys.Gravity}

	if in.Thrust && v.Fuel > 0 {
		// Main engine pushes along the ship's local up.
		acc = acc.Add(core.Rotate(core.Vec2{Y: -v.phys.MainThrust}, core.Vec2{}, v.Angle))
		thrusting = true
		v.burn(v.phys.FuelMainBurn * dt)
	}
	if in.StrafeLeft && v.Fuel > 0 {
		acc.X -= v.phys.SideThrust
		v.burn(v.phys.FuelRCSBurn * dt)
	}
	if in.StrafeRight && v.Fuel > 0 {
		acc.X += v.phys.SideThrust
		v.burn(v.phys.FuelRCSBurn * dt)
	}

	// Semi-implicit Euler
	v.Vel = v.Vel.Add(acc)
	v.Pos = v.Pos.Add(v.Vel)

	// Horizontal wrap-around
	if v.Pos.X < -wrapMargin {
		v.Pos.X = v.world.Width + wrapMargin
	}
	if v.Pos.X > v.world.Width+wrapMargin {
		v.Pos.X = -wrapMargin
	}

	// Soft ceiling: stop upward motion near the top of the world
	if v.Pos.Y < ceilingY {
		v.Pos.Y = ceilingY
		v.Vel.Y = math.Max(v.Vel.Y, 0)
	}

	// Falling out the bottom is fatal
	if v.Pos.Y > v.world.Height+killMargin {
		v.Alive = false
	}

	return thrusting
}

// burn consumes fuel, flooring at zero.
func (v *Vehicle) burn(amount float64) {
	v.Fuel = math.Max(0, v.Fuel-amount)
}
