// Package rig builds the animated mechanisms that the sweep package turns
// into space-time solids: a jointed robot arm, a gantry robot from an
// assembly line, and a rotating bar.
//
// Joint values come from [Track] keyframes. Tracks are piecewise linear and
// report their exact slope, which the builders pass to the *Moving
// transforms of a [sweep.Context], so every boundary of the resulting solid
// carries an exact velocity.
//
// Each call to a builder creates its own Context, so mechanisms can be built
// from several goroutines at once.
package rig
