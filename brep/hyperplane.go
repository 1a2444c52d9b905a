package brep

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrInvalidGeometry is returned for geometry whose dimensions do not agree
// or whose normal has zero length.
var ErrInvalidGeometry = errors.New("brep: invalid geometry")

// CapSide selects which way an axis-aligned hyperplane faces.
type CapSide int

const (
	// Leading faces the negative axis direction (the start of a sweep,
	// or the lower face of a box).
	Leading CapSide = iota
	// Trailing faces the positive axis direction.
	Trailing
)

// String returns the side name.
func (s CapSide) String() string {
	switch s {
	case Leading:
		return "leading"
	case Trailing:
		return "trailing"
	default:
		return fmt.Sprintf("CapSide(%d)", int(s))
	}
}

// Hyperplane is an oriented flat manifold of codimension 1.
//
// Points on the hyperplane are Point + Σ u[i]·Tangent[i], where u is the
// domain coordinate. Normal is unit length and orthogonal to every tangent
// column. Velocity, when non-nil, is the rate of change of Point with
// respect to the animation parameter.
type Hyperplane struct {
	Normal   Vec   `json:"normal"`
	Point    Vec   `json:"point"`
	Tangent  []Vec `json:"tangent"`
	Velocity Vec   `json:"velocity,omitempty"`
}

// NewHyperplane creates a hyperplane, normalizing the normal.
// The tangent space must hold len(normal)-1 columns of dimension len(normal).
func NewHyperplane(normal, point Vec, tangent []Vec) (*Hyperplane, error) {
	n := len(normal)
	if n == 0 || len(point) != n || len(tangent) != n-1 {
		return nil, fmt.Errorf("%w: normal %d, point %d, tangent columns %d",
			ErrInvalidGeometry, n, len(point), len(tangent))
	}
	for i, col := range tangent {
		if len(col) != n {
			return nil, fmt.Errorf("%w: tangent column %d has dimension %d, want %d",
				ErrInvalidGeometry, i, len(col), n)
		}
	}
	length := normal.Length()
	if length == 0 {
		return nil, fmt.Errorf("%w: zero normal", ErrInvalidGeometry)
	}
	return &Hyperplane{
		Normal:  normal.Mul(1 / length),
		Point:   point.Clone(),
		Tangent: cloneColumns(tangent),
	}, nil
}

// AxisAligned returns the hyperplane x[axis] = position in dimension dim.
// Its tangent space is the identity with the axis column removed, so domain
// coordinates are the remaining coordinates in order.
func AxisAligned(dim, axis int, position float64, side CapSide) *Hyperplane {
	normal := Axis(dim, axis)
	if side == Leading {
		normal[axis] = -1
	}
	tangent := make([]Vec, 0, dim-1)
	for i := 0; i < dim; i++ {
		if i != axis {
			tangent = append(tangent, Axis(dim, i))
		}
	}
	point := Zero(dim)
	point[axis] = position
	return &Hyperplane{Normal: normal, Point: point, Tangent: tangent}
}

// Dimension returns the dimension of the ambient space.
func (h *Hyperplane) Dimension() int { return len(h.Normal) }

// Clone returns a deep copy of the hyperplane.
func (h *Hyperplane) Clone() *Hyperplane {
	return &Hyperplane{
		Normal:   h.Normal.Clone(),
		Point:    h.Point.Clone(),
		Tangent:  cloneColumns(h.Tangent),
		Velocity: h.Velocity.Clone(),
	}
}

// Translate returns a copy of the hyperplane moved by delta.
func (h *Hyperplane) Translate(delta Vec) *Hyperplane {
	out := h.Clone()
	out.Point = h.Point.Add(delta)
	return out
}

// Evaluate maps a domain coordinate to a point in the ambient space.
func (h *Hyperplane) Evaluate(u Vec) Vec {
	p := h.Point.Clone()
	for i, col := range h.Tangent {
		for k := range p {
			p[k] += u[i] * col[k]
		}
	}
	return p
}

// DomainPoint returns the domain coordinate of the projection of p onto the
// hyperplane, solving Tangent·u = p - Point in the least-squares sense.
func (h *Hyperplane) DomainPoint(p Vec) (Vec, error) {
	n := h.Dimension()
	if len(p) != n {
		return nil, fmt.Errorf("%w: point dimension %d, want %d", ErrInvalidGeometry, len(p), n)
	}
	if n == 1 {
		return Vec{}, nil
	}
	t := mat.NewDense(n, n-1, nil)
	for j, col := range h.Tangent {
		for i := range col {
			t.Set(i, j, col[i])
		}
	}
	rhs := mat.NewVecDense(n, p.Sub(h.Point))
	var u mat.VecDense
	if err := u.SolveVec(t, rhs); err != nil {
		return nil, fmt.Errorf("%w: degenerate tangent space: %v", ErrInvalidGeometry, err)
	}
	return Vec(u.RawVector().Data), nil
}

func cloneColumns(cols []Vec) []Vec {
	out := make([]Vec, len(cols))
	for i, c := range cols {
		out[i] = c.Clone()
	}
	return out
}
