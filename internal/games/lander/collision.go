package lander

import (
	"math"

	"github.com/lunarcade/lander/internal/config"
	"github.com/lunarcade/lander/internal/core"
)

// Outcome classifies one tick's terrain contact.
type Outcome int

const (
	OutcomeNone  Outcome = iota // no contact, flight continues
	OutcomeLand                 // safe touchdown on the pad
	OutcomeCrash                // any other contact
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "None"
	case OutcomeLand:
		return "Land"
	case OutcomeCrash:
		return "Crash"
	default:
		return "Unknown"
	}
}

// Tolerance band around the pad's top edge within which the lower foot
// counts as resting on the pad, world units.
const (
	footBandAbove = 14
	footBandBelow = 10
)

// Classify tests every body edge against every terrain segment and, on
// any intersection, grades the touchdown from the foot positions, the
// heading and the velocity. Once geometry intersects the outcome is
// final: contact off the pad, too fast or too tilted is a crash, never
// a continuation.
func Classify(v *Vehicle, t Terrain, pad core.RectF, rules config.Landing) Outcome {
	poly := v.WorldPolygon()
	pts := t.Points()

	hit := false
outer:
	for i := range poly {
		a := poly[i]
		b := poly[(i+1)%len(poly)]
		for j := 0; j+1 < len(pts); j++ {
			if _, ok := core.SegmentIntersect(a, b, pts[j], pts[j+1]); ok {
				hit = true
				break outer
			}
		}
	}
	if !hit {
		return OutcomeNone
	}

	lf, rf := v.FootPoints()
	feetInX := pad.ContainsX(lf.X) && pad.ContainsX(rf.X)

	// Lower foot (larger y, since y grows downward) must sit in the
	// band around the pad's top edge.
	lower := math.Max(lf.Y, rf.Y)
	feetOnY := lower >= pad.Y-footBandAbove && lower <= pad.Y+footBandBelow

	// Near-upright, wrap-aware: 359 degrees is one degree of tilt.
	a := math.Mod(v.Angle, 360)
	if a < 0 {
		a += 360
	}
	angleOK := a <= rules.MaxAngle || 360-a <= rules.MaxAngle

	speedOK := math.Abs(v.Vel.X) <= rules.MaxVX && math.Abs(v.Vel.Y) <= rules.MaxVY

	if feetInX && feetOnY && angleOK && speedOK {
		return OutcomeLand
	}
	return OutcomeCrash
}
