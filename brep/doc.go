// Package brep is a small boundary-representation kernel for flat
// (hyperplane-bounded) solids of any dimension.
//
// # Overview
//
// A [Solid] of dimension d is described by the [Boundary] pieces that enclose
// it. Each boundary is a [Hyperplane] (unit normal, reference point and
// tangent-space basis) restricted by a Domain: a solid of dimension d-1
// expressed in the hyperplane's tangent coordinates. Domains recurse down to
// dimension 0, where a solid is either everything (ContainsInfinity) or
// nothing.
//
//	square := brep.Hypercube([][2]float64{{0, 1}, {0, 1}})
//	square.ContainsPoint(brep.Vec{0.5, 0.5}) // true
//
// # Velocity
//
// Hyperplanes may carry a Velocity: the rate of change of the reference
// point with respect to an animation parameter. The sweep package attaches
// it when transforming geometry and consumes it when sweeping through time.
//
// # Scope
//
// Only flat boundaries are supported. Boolean operations and slicing are
// not part of this package.
package brep
