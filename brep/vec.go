package brep

import "math"

// Vec is a point or displacement in n-dimensional space.
// The length of the slice is the dimension.
type Vec []float64

// Zero returns the zero vector of dimension n.
func Zero(n int) Vec {
	return make(Vec, n)
}

// Axis returns the unit vector along axis i in dimension n.
func Axis(n, i int) Vec {
	v := make(Vec, n)
	v[i] = 1
	return v
}

// Dim returns the dimension of the vector.
func (v Vec) Dim() int { return len(v) }

// Clone returns a copy of the vector. Clone of nil is nil.
func (v Vec) Clone() Vec {
	if v == nil {
		return nil
	}
	out := make(Vec, len(v))
	copy(out, v)
	return out
}

// Add returns v + w. Both vectors must have the same dimension.
func (v Vec) Add(w Vec) Vec {
	out := make(Vec, len(v))
	for i := range v {
		out[i] = v[i] + w[i]
	}
	return out
}

// Sub returns v - w. Both vectors must have the same dimension.
func (v Vec) Sub(w Vec) Vec {
	out := make(Vec, len(v))
	for i := range v {
		out[i] = v[i] - w[i]
	}
	return out
}

// Mul returns the vector scaled by s.
func (v Vec) Mul(s float64) Vec {
	out := make(Vec, len(v))
	for i := range v {
		out[i] = v[i] * s
	}
	return out
}

// Dot returns the dot product of two vectors of the same dimension.
func (v Vec) Dot(w Vec) float64 {
	var sum float64
	for i := range v {
		sum += v[i] * w[i]
	}
	return sum
}

// Length returns the Euclidean length of the vector.
func (v Vec) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns a unit vector in the same direction.
// Returns the zero vector if v has zero length.
func (v Vec) Normalize() Vec {
	length := v.Length()
	if length == 0 {
		return Zero(len(v))
	}
	return v.Mul(1 / length)
}

// Extend returns a copy of v with extra components appended.
func (v Vec) Extend(components ...float64) Vec {
	out := make(Vec, len(v), len(v)+len(components))
	copy(out, v)
	return append(out, components...)
}

// ApproxEqual reports whether v and w have the same dimension and every
// component differs by at most tol.
func (v Vec) ApproxEqual(w Vec, tol float64) bool {
	if len(v) != len(w) {
		return false
	}
	for i := range v {
		if math.Abs(v[i]-w[i]) > tol {
			return false
		}
	}
	return true
}
