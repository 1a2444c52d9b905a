package rig

import (
	"math"

	"github.com/gogpu/sweep/brep"
)

// biteTrack holds the gripper open for the first half, then closes it.
func biteTrack(open, closed float64) Track {
	return Track{{T: 0, V: open}, {T: 0.5, V: open}, {T: 1, V: closed}}
}

// Robot1Motion is the first arm of the two-robot demo. It stands at x=4 and
// swings across the workspace over t in [0, 1].
func Robot1Motion() ArmMotion {
	return ArmMotion{
		Position: []Track{Const(4), Const(0), Const(0)},
		Hips:     Linear(0, math.Pi/5, 1, -math.Pi/4),
		Shoulder: Linear(0, -math.Pi/4, 1, math.Pi/4),
		Elbow:    Const(math.Pi / 2),
		Wrist:    Linear(0, 0, 1, math.Pi/2),
		Bite:     biteTrack(1, 0.5),
	}
}

// Robot2Motion is the second arm of the two-robot demo, standing at x=-4.
func Robot2Motion() ArmMotion {
	return ArmMotion{
		Position: []Track{Const(-4), Const(0), Const(0)},
		Hips:     Linear(0, -math.Pi, 1, -3*math.Pi/4),
		Shoulder: Linear(0, math.Pi/2, 1, -math.Pi/2),
		Elbow:    Linear(0, -math.Pi/2, 1, -math.Pi/4),
		Wrist:    Linear(0, 0, 1, -math.Pi/2),
		Bite:     biteTrack(1, 0.5),
	}
}

// GantryDemoMotion is the assembly-line gantry: the beam travels the full
// rails while the carriage crosses and rises.
func GantryDemoMotion() GantryMotion {
	return GantryMotion{
		Travel:   Linear(0, -2, 1, 2),
		Crossing: Linear(0, -1.8, 1, 1.8),
		Height:   Linear(0, 0, 1, 1.8),
		Bite:     biteTrack(0.25, 0.02),
	}
}

// Bar is a 4×4×4 cube turning a quarter of a right angle per unit time about
// the y axis.
type Bar struct{}

// AddTo appends the bar posed at time t.
func (Bar) AddTo(dst *brep.Solid, t float64) error {
	b := newBuilder(dst)
	b.ctx.RotateMoving(1, t*math.Pi/4, math.Pi/4)
	b.add(armBase)
	return b.done("bar", t)
}
