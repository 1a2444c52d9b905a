package brep

import "fmt"

// Interval returns the 1-D solid [lo, hi].
func Interval(lo, hi float64) *Solid {
	s := NewSolid(1, false)
	s.AddBoundary(&Boundary{Manifold: AxisAligned(1, 0, lo, Leading), Domain: NewSolid(0, true)})
	s.AddBoundary(&Boundary{Manifold: AxisAligned(1, 0, hi, Trailing), Domain: NewSolid(0, true)})
	return s
}

// Hypercube returns the axis-aligned box with the given per-axis bounds.
// The dimension is len(bounds). For each axis the lower face (Leading) is
// added before the upper face (Trailing).
func Hypercube(bounds [][2]float64) *Solid {
	dim := len(bounds)
	s := NewSolid(dim, false)
	for i := range bounds {
		var domain *Solid
		if dim > 1 {
			rest := make([][2]float64, 0, dim-1)
			rest = append(rest, bounds[:i]...)
			rest = append(rest, bounds[i+1:]...)
			domain = Hypercube(rest)
		} else {
			domain = NewSolid(0, true)
		}
		s.AddBoundary(&Boundary{Manifold: AxisAligned(dim, i, bounds[i][0], Leading), Domain: domain})
		s.AddBoundary(&Boundary{Manifold: AxisAligned(dim, i, bounds[i][1], Trailing), Domain: domain})
	}
	return s
}

// FacetedPolygon builds a 2-D solid from the vertices of a simple polygon in
// counter-clockwise order. Each edge becomes a boundary whose domain is the
// interval spanned by its two endpoints along the edge direction.
func FacetedPolygon(points []Vec) (*Solid, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("%w: polygon needs at least 3 points, got %d", ErrInvalidGeometry, len(points))
	}
	s := NewSolid(2, false)
	prev := points[len(points)-1]
	for i, p := range points {
		if len(p) != 2 {
			return nil, fmt.Errorf("%w: polygon point %d has dimension %d", ErrInvalidGeometry, i, len(p))
		}
		edge := p.Sub(prev)
		if edge.Length() == 0 {
			return nil, fmt.Errorf("%w: polygon edge %d has zero length", ErrInvalidGeometry, i)
		}
		tangent := edge.Normalize()
		normal := Vec{tangent[1], -tangent[0]}
		h := &Hyperplane{
			Normal:  normal,
			Point:   normal.Mul(normal.Dot(p)),
			Tangent: []Vec{tangent},
		}
		s.AddBoundary(&Boundary{Manifold: h, Domain: Interval(tangent.Dot(prev), tangent.Dot(p))})
		prev = p
	}
	return s, nil
}
