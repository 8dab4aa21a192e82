package lander

import (
	"math"
	"math/rand"

	"github.com/lunarcade/lander/internal/config"
	"github.com/lunarcade/lander/internal/core"
)

// defaultPadFrac places the pad at mid-screen height when the flattening
// band never matched a terrain point (pad pushed against a world edge).
const defaultPadFrac = 0.6

// Terrain is the ground polyline, ordered left to right with strictly
// increasing x at a fixed horizontal step. Immutable once generated;
// regenerating with the same seed yields an identical polyline.
type Terrain struct {
	points []core.Vec2
}

// Points returns the ordered terrain points. Callers must not mutate
// the returned slice.
func (t Terrain) Points() []core.Vec2 {
	return t.points
}

// HeightAt returns the terrain surface y at world x by linear
// interpolation between the surrounding points. X outside the polyline
// is clamped to the nearest endpoint.
func (t Terrain) HeightAt(x float64) float64 {
	pts := t.points
	if len(pts) == 0 {
		return 0
	}
	if x <= pts[0].X {
		return pts[0].Y
	}
	last := pts[len(pts)-1]
	if x >= last.X {
		return last.Y
	}

	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		if x >= a.X && x <= b.X {
			if b.X == a.X {
				return a.Y
			}
			f := (x - a.X) / (b.X - a.X)
			return a.Y + f*(b.Y-a.Y)
		}
	}
	return last.Y
}

// GenerateTerrain builds the ground polyline and the landing pad for a
// seed. The random draw order is fixed (start height, per-step deltas,
// pad center) so the same seed always reproduces the same world.
func GenerateTerrain(seed int64, cfg config.LanderConfig) (Terrain, core.RectF) {
	rng := rand.New(rand.NewSource(seed))
	w, h := cfg.World.Width, cfg.World.Height
	tp := cfg.Terrain

	bandLo := math.Floor(h * tp.BandMin)
	bandHi := math.Floor(h * tp.BandMax)

	// Jagged polyline with gentle variation, clamped into the vertical
	// band so the ground never reaches the screen edges.
	var pts []core.Vec2
	y := float64(randBetween(rng, int(h*tp.StartMin), int(h*tp.StartMax)))
	step := float64(tp.Step)
	for x := 0.0; x <= w; x += step {
		pts = append(pts, core.Vec2{X: x, Y: y})
		y += float64(randBetween(rng, -tp.Roughness, tp.Roughness))
		y = core.ClampF(y, bandLo, bandHi)
	}

	// Pick a pad center away from the extreme edges, then flatten every
	// terrain point near it to the height first seen entering the band.
	padX := float64(randBetween(rng, int(w*tp.PadMinFrac), int(w*tp.PadMaxFrac)))
	lo := padX - tp.PadWidth/2 - tp.FlattenMargin
	hi := padX + tp.PadWidth/2 + tp.FlattenMargin

	var padY float64
	havePadY := false
	for i := range pts {
		if pts[i].X >= lo && pts[i].X <= hi {
			if !havePadY {
				padY = pts[i].Y
				havePadY = true
			}
			pts[i].Y = padY
		}
	}
	if !havePadY {
		padY = math.Floor(h * defaultPadFrac)
	}

	pad := core.NewRectF(padX-tp.PadWidth/2, padY-tp.PadHeight/2, tp.PadWidth, tp.PadHeight)
	return Terrain{points: pts}, pad
}

// randBetween returns a uniform integer in [lo, hi], both ends inclusive.
func randBetween(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}
