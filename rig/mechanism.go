package rig

import (
	"fmt"

	"github.com/gogpu/sweep"
	"github.com/gogpu/sweep/brep"
)

// Mechanism is an animated assembly of rigid parts.
type Mechanism interface {
	// AddTo appends the boundaries of the mechanism posed at time t to dst.
	AddTo(dst *brep.Solid, t float64) error
}

// SolidAt returns a sweep.SolidFunc that gathers the boundaries of all
// mechanisms at each time into one solid.
func SolidAt(mechs ...Mechanism) sweep.SolidFunc {
	return func(t float64) (*brep.Solid, error) {
		s := brep.NewSolid(3, false)
		for _, m := range mechs {
			if err := m.AddTo(s, t); err != nil {
				return nil, err
			}
		}
		sweep.Logger().Debug("rig: posed mechanisms",
			"t", t,
			"mechanisms", len(mechs),
			"boundaries", len(s.Boundaries))
		return s, nil
	}
}

// builder places parts into a destination solid through a fresh context.
type builder struct {
	ctx *sweep.Context
	dst *brep.Solid
	err error
}

func newBuilder(dst *brep.Solid) *builder {
	return &builder{
		ctx: sweep.NewContext(3, sweep.WithPopPolicy(sweep.PopStrict)),
		dst: dst,
	}
}

// add transforms a part by the current pose and appends its boundaries.
func (b *builder) add(part *brep.Solid) {
	if b.err != nil {
		return
	}
	placed, err := b.ctx.ApplySolid(part)
	if err != nil {
		b.err = err
		return
	}
	for _, bd := range placed.Boundaries {
		b.dst.AddBoundary(bd)
	}
}

func (b *builder) pop() {
	if err := b.ctx.Pop(); err != nil && b.err == nil {
		b.err = err
	}
}

func (b *builder) done(name string, t float64) error {
	if b.err != nil {
		return fmt.Errorf("rig: %s at t=%g: %w", name, t, b.err)
	}
	return nil
}

func box(x, y, z [2]float64) *brep.Solid {
	return brep.Hypercube([][2]float64{x, y, z})
}

func vec3(v [3]float64) brep.Vec {
	return brep.Vec{v[0], v[1], v[2]}
}
