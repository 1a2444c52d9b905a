package brep

import (
	"fmt"
	"math"
)

// rayEpsilon bounds distances and alignments treated as zero during
// point containment.
const rayEpsilon = 1e-12

// Boundary is one codimension-1 piece of a solid: a hyperplane restricted to
// Domain, a solid of one lower dimension in the hyperplane's tangent
// coordinates.
type Boundary struct {
	Manifold *Hyperplane `json:"manifold"`
	Domain   *Solid      `json:"domain"`
}

// Solid is a region of Dimension-space enclosed by its boundaries.
// ContainsInfinity reports whether the region is unbounded (the complement
// of what the boundaries enclose). A dimension-0 solid has no boundaries and
// is either everything or nothing.
type Solid struct {
	Dimension        int         `json:"dimension"`
	ContainsInfinity bool        `json:"containsInfinity"`
	Boundaries       []*Boundary `json:"boundaries"`
}

// NewSolid creates a solid with no boundaries.
func NewSolid(dimension int, containsInfinity bool) *Solid {
	return &Solid{Dimension: dimension, ContainsInfinity: containsInfinity}
}

// AddBoundary appends a boundary to the solid.
func (s *Solid) AddBoundary(b *Boundary) {
	s.Boundaries = append(s.Boundaries, b)
}

// Clone returns a deep copy of the solid, including all domains.
func (s *Solid) Clone() *Solid {
	out := &Solid{
		Dimension:        s.Dimension,
		ContainsInfinity: s.ContainsInfinity,
		Boundaries:       make([]*Boundary, len(s.Boundaries)),
	}
	for i, b := range s.Boundaries {
		out.Boundaries[i] = &Boundary{Manifold: b.Manifold.Clone(), Domain: b.Domain.Clone()}
	}
	return out
}

// Validate checks that every boundary's hyperplane and domain agree with the
// solid's dimension, recursively.
func (s *Solid) Validate() error {
	if s.Dimension < 0 {
		return fmt.Errorf("%w: negative dimension %d", ErrInvalidGeometry, s.Dimension)
	}
	if s.Dimension == 0 {
		if len(s.Boundaries) != 0 {
			return fmt.Errorf("%w: dimension 0 solid with %d boundaries", ErrInvalidGeometry, len(s.Boundaries))
		}
		return nil
	}
	for i, b := range s.Boundaries {
		if b == nil || b.Manifold == nil || b.Domain == nil {
			return fmt.Errorf("%w: boundary %d incomplete", ErrInvalidGeometry, i)
		}
		h := b.Manifold
		if len(h.Normal) != s.Dimension || len(h.Point) != s.Dimension || len(h.Tangent) != s.Dimension-1 {
			return fmt.Errorf("%w: boundary %d manifold does not match dimension %d", ErrInvalidGeometry, i, s.Dimension)
		}
		if h.Velocity != nil && len(h.Velocity) != s.Dimension {
			return fmt.Errorf("%w: boundary %d velocity dimension %d", ErrInvalidGeometry, i, len(h.Velocity))
		}
		if b.Domain.Dimension != s.Dimension-1 {
			return fmt.Errorf("%w: boundary %d domain dimension %d, want %d",
				ErrInvalidGeometry, i, b.Domain.Dimension, s.Dimension-1)
		}
		if err := b.Domain.Validate(); err != nil {
			return fmt.Errorf("boundary %d domain: %w", i, err)
		}
	}
	return nil
}

// ContainsPoint reports whether p lies inside the solid.
//
// A ray is cast from p in a fixed generic direction; the nearest boundary it
// crosses within that boundary's domain decides the answer: leaving through
// an outward-facing boundary means p is inside. With no crossing the answer
// is ContainsInfinity. Points exactly on a boundary are not classified
// reliably.
func (s *Solid) ContainsPoint(p Vec) bool {
	if s.Dimension == 0 {
		return s.ContainsInfinity
	}
	dir := probeDirection(s.Dimension)
	inside := s.ContainsInfinity
	closest := math.Inf(1)
	for _, b := range s.Boundaries {
		h := b.Manifold
		alignment := h.Normal.Dot(dir)
		if math.Abs(alignment) < rayEpsilon {
			continue
		}
		dist := h.Normal.Dot(h.Point.Sub(p)) / alignment
		if dist < -rayEpsilon || dist >= closest {
			continue
		}
		u, err := h.DomainPoint(p.Add(dir.Mul(dist)))
		if err != nil || !b.Domain.ContainsPoint(u) {
			continue
		}
		closest = dist
		inside = alignment > 0
	}
	return inside
}

// probeDirection returns a unit direction unlikely to graze the edges of
// axis-aligned or rationally placed geometry.
func probeDirection(n int) Vec {
	seed := [...]float64{0.7548776662, 0.5698402910, 0.4301597090, 0.3247179572, 0.2451223338}
	dir := make(Vec, n)
	for i := range dir {
		dir[i] = seed[i%len(seed)] + 0.01*float64(i/len(seed))
	}
	return dir.Normalize()
}
