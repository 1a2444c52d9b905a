package rig

import (
	"fmt"
	"math"

	"github.com/gogpu/sweep/brep"
)

// Parts of the jointed arm, in their local frames.
var (
	armBase  = box([2]float64{-2, 2}, [2]float64{-2, 2}, [2]float64{-2, 2})
	armPivot = box([2]float64{-1, 1}, [2]float64{-1, 1}, [2]float64{-1, 1})
	armLink  = box([2]float64{0, 1}, [2]float64{-1, 1}, [2]float64{-1, 5})
	armJaw   = box([2]float64{-0.5, 0.5}, [2]float64{-1.5, 1.5}, [2]float64{0, 0.5})
	armTooth = box([2]float64{-0.5, 0.5}, [2]float64{-0.2, 0.2}, [2]float64{0, 1.5})
)

// ArmBoundaries is the number of boundaries one posed arm contributes.
const ArmBoundaries = 9 * 6

// ArmMotion drives a six-joint robot arm: a base at Position, a hip turning
// about the vertical, shoulder and elbow hinges, a wrist and a two-toothed
// gripper whose teeth sit Bite away from the jaw center.
// Angles are in radians.
type ArmMotion struct {
	Position []Track `yaml:"position"`
	Hips     Track   `yaml:"hips"`
	Shoulder Track   `yaml:"shoulder"`
	Elbow    Track   `yaml:"elbow"`
	Wrist    Track   `yaml:"wrist"`
	Bite     Track   `yaml:"bite"`
}

// Validate checks the shape of the motion and every track.
func (m ArmMotion) Validate() error {
	if len(m.Position) != 3 {
		return fmt.Errorf("%w: arm position needs 3 tracks, got %d", ErrInvalidTrack, len(m.Position))
	}
	for _, tr := range append([]Track{m.Hips, m.Shoulder, m.Elbow, m.Wrist, m.Bite}, m.Position...) {
		if err := tr.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// AddTo appends the arm posed at time t.
func (m ArmMotion) AddTo(dst *brep.Solid, t float64) error {
	pos, dPos := at3(m.Position, t)
	hips, dHips := m.Hips.At(t)
	shoulder, dShoulder := m.Shoulder.At(t)
	elbow, dElbow := m.Elbow.At(t)
	wrist, dWrist := m.Wrist.At(t)
	bite, dBite := m.Bite.At(t)

	b := newBuilder(dst)
	c := b.ctx

	// Stand the arm up: local z becomes world y.
	c.Rotate(0, -math.Pi/2)
	c.TranslateMoving(vec3(pos), vec3(dPos))
	b.add(armBase)

	c.Translate(brep.Vec{0, 0, 3})
	c.RotateMoving(2, hips, dHips)
	b.add(armPivot)

	c.Translate(brep.Vec{1, 0, 1})
	c.RotateMoving(0, shoulder, dShoulder)
	b.add(armLink)

	c.Translate(brep.Vec{-0.5, 0, 4})
	c.RotateMoving(0, elbow, dElbow)
	c.Push()
	c.Scale(brep.Vec{0.5, 1, 1})
	b.add(armPivot)
	b.pop()

	c.Translate(brep.Vec{-1.5, 0, 0})
	b.add(armLink)

	c.Translate(brep.Vec{0.5, 0, 5.5})
	c.RotateMoving(2, wrist, dWrist)
	c.Push()
	c.Scale(brep.Vec{0.5, 0.5, 0.5})
	b.add(armPivot)
	b.pop()

	c.Translate(brep.Vec{0, 0, 0.5})
	b.add(armJaw)

	c.Push()
	c.TranslateMoving(brep.Vec{0, bite, 0.5}, brep.Vec{0, dBite, 0})
	b.add(armTooth)
	b.pop()

	c.TranslateMoving(brep.Vec{0, -bite, 0.5}, brep.Vec{0, -dBite, 0})
	b.add(armTooth)

	return b.done("arm", t)
}
