package rig

import (
	"github.com/gogpu/sweep/brep"
)

// Parts of the gantry robot.
var (
	gantryNearBase  = box([2]float64{-2, 2}, [2]float64{1, 1.1}, [2]float64{-2.2, -2})
	gantryFarBase   = box([2]float64{-2, 2}, [2]float64{1, 1.1}, [2]float64{2, 2.2})
	gantryCrossBeam = box([2]float64{-0.1, 0.1}, [2]float64{1.1, 1.4}, [2]float64{-2.2, 2.2})
	gantryArm       = box([2]float64{0.1, 0.3}, [2]float64{-0.8, 1.2}, [2]float64{-0.2, 0.2})
	gantryJaw       = box([2]float64{0.09, 0.31}, [2]float64{-0.9, -0.8}, [2]float64{-0.25, 0.25})
	gantryTooth     = box([2]float64{0.09, 0.31}, [2]float64{-1.4, -0.9}, [2]float64{-0.02, 0.02})
)

// GantryBoundaries is the number of boundaries one posed gantry contributes.
const GantryBoundaries = 7 * 6

// GantryMotion drives a gantry robot: a cross beam traveling along x on two
// fixed rails, a carriage crossing along z and a vertical arm whose gripper
// opens to Bite.
type GantryMotion struct {
	Travel   Track `yaml:"travel"`
	Crossing Track `yaml:"crossing"`
	Height   Track `yaml:"height"`
	Bite     Track `yaml:"bite"`
}

// Validate checks every track.
func (m GantryMotion) Validate() error {
	for _, tr := range []Track{m.Travel, m.Crossing, m.Height, m.Bite} {
		if err := tr.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// AddTo appends the gantry posed at time t.
func (m GantryMotion) AddTo(dst *brep.Solid, t float64) error {
	travel, dTravel := m.Travel.At(t)
	crossing, dCrossing := m.Crossing.At(t)
	height, dHeight := m.Height.At(t)
	bite, dBite := m.Bite.At(t)

	b := newBuilder(dst)
	c := b.ctx

	b.add(gantryNearBase)
	b.add(gantryFarBase)

	c.TranslateMoving(brep.Vec{travel, 0, 0}, brep.Vec{dTravel, 0, 0})
	b.add(gantryCrossBeam)

	c.TranslateMoving(brep.Vec{0, height, crossing}, brep.Vec{0, dHeight, dCrossing})
	b.add(gantryArm)
	b.add(gantryJaw)

	c.Push()
	c.TranslateMoving(brep.Vec{0, 0, bite}, brep.Vec{0, 0, dBite})
	b.add(gantryTooth)
	b.pop()

	c.TranslateMoving(brep.Vec{0, 0, -bite}, brep.Vec{0, 0, -dBite})
	b.add(gantryTooth)

	return b.done("gantry", t)
}
