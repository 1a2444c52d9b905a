package sweep

import (
	"fmt"
	"math"
	"time"

	"github.com/gogpu/sweep/brep"
	"github.com/gogpu/sweep/metrics"
)

// SolidFunc returns the solid at animation time t. Every boundary's
// hyperplane should carry its Velocity (the derivative of its reference
// point with respect to t); a nil velocity is treated as stationary.
// Functions built on a Context get velocities from ApplySolid.
type SolidFunc func(t float64) (*brep.Solid, error)

// ExtrudeTime sweeps a time-parameterized family of d-dimensional solids
// across the sample times and returns the (d+1)-dimensional envelope, with
// time as the new last axis.
//
// Each interval [t(i), t(i+1)] is a ruled sweep: every boundary of the solid
// at t(i) moves at its instantaneous velocity for the whole interval. The
// true trajectory between samples is not followed, so accuracy depends only
// on how densely the times are sampled.
//
// The result starts with a Leading cap at times[0], holds one ruled
// boundary per boundary per interval, and ends with a Trailing cap at the
// last time. Times must strictly increase.
func ExtrudeTime(solidAt SolidFunc, times []float64) (*brep.Solid, error) {
	start := time.Now()
	out, err := extrudeTime(solidAt, times)
	if err != nil {
		return nil, err
	}
	Logger().Debug("sweep: time extrusion",
		"dimension", out.Dimension,
		"samples", len(times),
		"boundaries", len(out.Boundaries))
	currentMetrics().ObserveExtrusion(metrics.KindTime, len(out.Boundaries), time.Since(start))
	return out, nil
}

func extrudeTime(solidAt SolidFunc, times []float64) (*brep.Solid, error) {
	if len(times) < 2 {
		return nil, fmt.Errorf("%w: %d time samples", ErrTooFewPoints, len(times))
	}
	for i := 0; i+1 < len(times); i++ {
		dt := times[i+1] - times[i]
		if math.Abs(dt) <= extentEpsilon {
			return nil, fmt.Errorf("%w: time interval %d at t=%g", ErrDegenerateSegment, i, times[i])
		}
		if dt < 0 {
			return nil, fmt.Errorf("%w: interval %d from t=%g to t=%g", ErrUnorderedSamples, i, times[i], times[i+1])
		}
	}

	solid, err := solidAt(times[0])
	if err != nil {
		return nil, fmt.Errorf("solid at t=%g: %w", times[0], err)
	}
	d := solid.Dimension
	extrusion := brep.NewSolid(d+1, solid.ContainsInfinity)
	extrusion.AddBoundary(capBoundary(solid, timePoint(d, times[0]), brep.Leading))

	for i := 0; i+1 < len(times); i++ {
		t, dt := times[i], times[i+1]-times[i]
		origin := timePoint(d, t)
		for j, b := range solid.Boundaries {
			drift := b.Manifold.Velocity
			if drift == nil {
				drift = brep.Zero(d)
			}
			eb, err := extrudeBoundary(b, d, origin, drift, dt)
			if err != nil {
				return nil, fmt.Errorf("time interval %d, boundary %d: %w", i, j, err)
			}
			extrusion.AddBoundary(eb)
		}

		next := times[i+1]
		solid, err = solidAt(next)
		if err != nil {
			return nil, fmt.Errorf("solid at t=%g: %w", next, err)
		}
		if solid.Dimension != d {
			return nil, fmt.Errorf("%w: solid at t=%g has dimension %d, want %d", ErrDimensionMismatch, next, solid.Dimension, d)
		}
	}

	extrusion.AddBoundary(capBoundary(solid, timePoint(d, times[len(times)-1]), brep.Trailing))
	return extrusion, nil
}

// timePoint returns the point at the origin of d-space lifted to time t.
func timePoint(d int, t float64) brep.Vec {
	p := brep.Zero(d + 1)
	p[d] = t
	return p
}

// Samples returns n evenly spaced times from t1 to t2 inclusive.
// It returns nil when n < 2.
func Samples(t1, t2 float64, n int) []float64 {
	if n < 2 {
		return nil
	}
	times := make([]float64, n)
	last := n - 1
	for i := range times {
		times[i] = (t1*float64(last-i) + t2*float64(i)) / float64(last)
	}
	return times
}
