package lander

// Snapshot captures the session state for determinism testing.
type Snapshot struct {
	Tick   uint64
	Seed   int64
	Phase  Phase
	Score  int
	Best   int
	X      float64
	Y      float64
	VX     float64
	VY     float64
	Angle  float64
	Fuel   float64
	Alive  bool
	Landed bool
	PadX   float64
	PadY   float64
}

// Snapshot returns the current session snapshot for determinism
// verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:   g.tick,
		Seed:   g.seed,
		Phase:  g.phase,
		Score:  g.score,
		Best:   g.best,
		X:      g.vehicle.Pos.X,
		Y:      g.vehicle.Pos.Y,
		VX:     g.vehicle.Vel.X,
		VY:     g.vehicle.Vel.Y,
		Angle:  g.vehicle.Angle,
		Fuel:   g.vehicle.Fuel,
		Alive:  g.vehicle.Alive,
		Landed: g.vehicle.Landed,
		PadX:   g.pad.X,
		PadY:   g.pad.Y,
	}
}
