// Package config provides YAML-based tuning for the lander simulation.
package config

// LanderConfig contains all tuning for the Moon Lander game.
// Physics constants are expressed in world units (see World): accelerations
// are per-tick deltas, burn rates and rotation speed are per-second.
type LanderConfig struct {
	World   World         `yaml:"world"`
	Physics Physics       `yaml:"physics"`
	Terrain TerrainParams `yaml:"terrain"`
	Landing Landing       `yaml:"landing"`
	Scoring Scoring       `yaml:"scoring"`
}

// World defines the fixed simulation space. The renderer projects this
// onto the terminal grid; physics never sees cell units.
type World struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Physics defines the vehicle's kinematic parameters.
type Physics struct {
	Gravity      float64 `yaml:"gravity"`        // Downward acceleration per tick
	MainThrust   float64 `yaml:"main_thrust"`    // Acceleration when main engine on
	SideThrust   float64 `yaml:"side_thrust"`    // Sideways RCS acceleration
	RotSpeed     float64 `yaml:"rot_speed"`      // Degrees per second when rotating
	FuelStart    float64 `yaml:"fuel_start"`     // Fuel units at spawn
	FuelMainBurn float64 `yaml:"fuel_main_burn"` // Fuel per second, main engine
	FuelRCSBurn  float64 `yaml:"fuel_rcs_burn"`  // Fuel per second, RCS
}

// TerrainParams defines terrain generation. Band limits are fractions of
// the world height, pad placement limits fractions of the world width.
type TerrainParams struct {
	Step          int     `yaml:"step"`           // Horizontal distance between points
	Roughness     int     `yaml:"roughness"`      // Max per-step vertical delta
	BandMin       float64 `yaml:"band_min"`       // Lowest terrain y as fraction of height
	BandMax       float64 `yaml:"band_max"`       // Highest terrain y as fraction of height
	StartMin      float64 `yaml:"start_min"`      // First point band, low end
	StartMax      float64 `yaml:"start_max"`      // First point band, high end
	PadWidth      float64 `yaml:"pad_width"`      // Landing pad width
	PadHeight     float64 `yaml:"pad_height"`     // Landing pad height
	PadMinFrac    float64 `yaml:"pad_min_frac"`   // Leftmost pad center as fraction of width
	PadMaxFrac    float64 `yaml:"pad_max_frac"`   // Rightmost pad center as fraction of width
	FlattenMargin float64 `yaml:"flatten_margin"` // Extra flattened terrain beyond pad edges
}

// Landing defines the safe-touchdown thresholds.
type Landing struct {
	MaxAngle float64 `yaml:"max_angle"` // Degrees from upright, wrap-aware
	MaxVX    float64 `yaml:"max_vx"`    // Horizontal speed, world units per tick
	MaxVY    float64 `yaml:"max_vy"`    // Vertical speed, world units per tick
}

// Scoring defines attempt scoring.
type Scoring struct {
	LandBase     int     `yaml:"land_base"`      // Points for any safe landing
	CrashPenalty int     `yaml:"crash_penalty"`  // Points deducted on crash
	GentleBonus  float64 `yaml:"gentle_bonus"`   // Max bonus for soft vertical speed
	GentleVYCost float64 `yaml:"gentle_vy_cost"` // Bonus lost per unit of |vy|
}
