package sweep

import (
	"fmt"
	"math"
	"time"

	"github.com/gogpu/sweep/brep"
	"github.com/gogpu/sweep/metrics"
)

// extentEpsilon is the smallest segment extent along the new axis that is
// not treated as degenerate.
const extentEpsilon = 1e-12

// ExtrudePath sweeps a d-dimensional solid along a polyline path in
// (d+1)-dimensional space and returns the (d+1)-dimensional solid it covers.
//
// Each segment (p, q) moves the solid linearly from p to q; the segment's
// extent is q[d] - p[d], the advance along the new axis, and must be
// nonzero. For every segment and every boundary of solid the result holds
// one ruled boundary whose domain is the boundary's own domain extruded over
// the segment's extent. A cap at path[0] and a cap at the last point close
// the ends; both have a copy of solid as domain. The start cap is Leading
// (normal -e_d) and the end cap Trailing, swapped when the path ends lower
// along the new axis than it starts, so both caps face outward.
//
// The result has (len(path)-1)·len(solid.Boundaries) + 2 boundaries.
func ExtrudePath(solid *brep.Solid, path []brep.Vec) (*brep.Solid, error) {
	start := time.Now()
	out, err := extrudePath(solid, path)
	if err != nil {
		return nil, err
	}
	Logger().Debug("sweep: path extrusion",
		"dimension", out.Dimension,
		"segments", len(path)-1,
		"boundaries", len(out.Boundaries))
	currentMetrics().ObserveExtrusion(metrics.KindPath, len(out.Boundaries), time.Since(start))
	return out, nil
}

func extrudePath(solid *brep.Solid, path []brep.Vec) (*brep.Solid, error) {
	d := solid.Dimension
	if len(path) < 2 {
		return nil, fmt.Errorf("%w: path has %d points", ErrTooFewPoints, len(path))
	}
	for i, p := range path {
		if len(p) != d+1 {
			return nil, fmt.Errorf("%w: path point %d has dimension %d, want %d", ErrDimensionMismatch, i, len(p), d+1)
		}
	}

	extrusion := brep.NewSolid(d+1, false)
	for i := 0; i+1 < len(path); i++ {
		p, q := path[i], path[i+1]
		tangent := q.Sub(p)
		extent := tangent[d]
		if math.Abs(extent) <= extentEpsilon {
			return nil, fmt.Errorf("%w: path segment %d", ErrDegenerateSegment, i)
		}
		drift := tangent[:d].Mul(1 / extent)
		for j, b := range solid.Boundaries {
			eb, err := extrudeBoundary(b, d, p, drift, extent)
			if err != nil {
				return nil, fmt.Errorf("path segment %d, boundary %d: %w", i, j, err)
			}
			extrusion.AddBoundary(eb)
		}
	}

	first, last := path[0], path[len(path)-1]
	startSide, endSide := brep.Leading, brep.Trailing
	if last[d] < first[d] {
		// A descending path starts at the top face.
		startSide, endSide = brep.Trailing, brep.Leading
	}
	extrusion.AddBoundary(capBoundary(solid, first, startSide))
	extrusion.AddBoundary(capBoundary(solid, last, endSide))
	return extrusion, nil
}

// extrudeBoundary lifts one boundary of a d-dimensional solid into a ruled
// boundary of the (d+1)-dimensional extrusion. The boundary starts at origin
// and moves by drift per unit advance along the new axis, for extent units.
//
// The lifted normal [n, -n·drift] is orthogonal to the lifted tangent
// columns [t, 0] and to the sweep direction [drift, 1].
func extrudeBoundary(b *brep.Boundary, d int, origin, drift brep.Vec, extent float64) (*brep.Boundary, error) {
	h := b.Manifold
	if h.Dimension() != d || len(drift) != d {
		return nil, fmt.Errorf("%w: manifold dimension %d, drift dimension %d, want %d",
			ErrDimensionMismatch, h.Dimension(), len(drift), d)
	}

	normal := h.Normal.Extend(-h.Normal.Dot(drift)).Normalize()
	point := h.Point.Extend(0).Add(origin)
	tangent := make([]brep.Vec, 0, d)
	for _, col := range h.Tangent {
		tangent = append(tangent, col.Extend(0))
	}
	tangent = append(tangent, drift.Extend(1))

	domain, err := extrudeDomain(b.Domain, extent)
	if err != nil {
		return nil, err
	}
	return &brep.Boundary{
		Manifold: &brep.Hyperplane{Normal: normal, Point: point, Tangent: tangent},
		Domain:   domain,
	}, nil
}

// extrudeDomain extends a boundary's domain by the sweep coordinate, which
// runs over [0, extent] (or [extent, 0] when extent is negative) along the
// domain's new last axis.
func extrudeDomain(domain *brep.Solid, extent float64) (*brep.Solid, error) {
	lo, hi := 0.0, extent
	if extent < 0 {
		lo, hi = extent, 0
	}
	if domain.Dimension == 0 {
		return brep.Interval(lo, hi), nil
	}
	k := domain.Dimension
	from, to := brep.Zero(k+1), brep.Zero(k+1)
	from[k], to[k] = lo, hi
	return extrudePath(domain, []brep.Vec{from, to})
}

// capBoundary closes one end of an extrusion with a hyperplane normal to the
// new axis, anchored at anchor, with a copy of solid as its domain.
func capBoundary(solid *brep.Solid, anchor brep.Vec, side brep.CapSide) *brep.Boundary {
	d := solid.Dimension
	h := brep.AxisAligned(d+1, d, 0, side).Translate(anchor)
	return &brep.Boundary{Manifold: h, Domain: solid.Clone()}
}
