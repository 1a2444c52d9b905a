// Package sweep builds swept envelopes of boundary-represented solids.
//
// # Overview
//
// sweep lifts a d-dimensional solid (see package brep) into a
// (d+1)-dimensional one, either by moving it along a polyline path or by
// sweeping a moving solid through a sequence of animation times. The second
// form turns a mechanism's motion into a space-time solid that an external
// kernel can intersect or slice.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/sweep"
//		"github.com/gogpu/sweep/brep"
//	)
//
//	square := brep.Hypercube([][2]float64{{0, 1}, {0, 1}})
//
//	// Straight extension into a box
//	box, err := sweep.ExtrudePath(square, []brep.Vec{{0, 0, 0}, {0, 0, 1}})
//
//	// A square sliding along x over t in [0, 1]
//	moving := func(t float64) (*brep.Solid, error) {
//		c := sweep.NewContext(2)
//		c.TranslateMoving(brep.Vec{2 * t, 0}, brep.Vec{2, 0})
//		return c.ApplySolid(square)
//	}
//	envelope, err := sweep.ExtrudeTime(moving, sweep.Samples(0, 1, 5))
//
// # Transform Context
//
// A [Context] places primitives in space like a classic matrix stack
// (Push, Pop, Translate, Rotate, Scale) and carries the derivative of the
// pose alongside it. The *Moving variants take the rate of change of their
// argument; the derivative propagates by the product rule, so transformed
// geometry comes out with exact boundary velocities and no finite
// differencing.
//
// # Time sweeps
//
// [ExtrudeTime] is a ruled approximation: between two samples each boundary
// moves in a straight line at the velocity it had at the first sample.
// Rotating parts therefore need enough samples for the chords to follow
// their arcs.
//
// # Errors
//
// Construction fails fast with one of the sentinel errors (ErrDimensionMismatch,
// ErrDegenerateSegment, ErrSingularTransform, ...) and never returns a
// partial solid.
package sweep
