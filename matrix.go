package sweep

import (
	"fmt"
	"math"

	"github.com/gogpu/sweep/brep"
	"gonum.org/v1/gonum/mat"
)

// Matrix is a homogeneous affine transformation of n-dimensional space,
// stored row-major as an (n+1)×(n+1) matrix:
//
//	| A  b |
//	| 0  1 |
//
// This represents the transformation x' = A·x + b. Derivative matrices
// (see [TranslationRate], [ScalingRate], [RotationRate]) share the layout
// but carry 0 in the homogeneous corner.
//
// Matrix values are immutable: every method returns a new matrix.
type Matrix struct {
	n int
	m []float64
}

// Identity returns the identity transformation of n-dimensional space.
func Identity(n int) Matrix {
	out := Zero(n)
	for i := 0; i <= n; i++ {
		out.m[i*(n+1)+i] = 1
	}
	return out
}

// Zero returns the all-zero matrix for n-dimensional space.
func Zero(n int) Matrix {
	return Matrix{n: n, m: make([]float64, (n+1)*(n+1))}
}

// Translation creates a translation matrix by v.
func Translation(v brep.Vec) Matrix {
	out := Identity(len(v))
	for i, x := range v {
		out.set(i, out.n, x)
	}
	return out
}

// TranslationRate is the derivative of Translation(v) when v changes at rate dv.
func TranslationRate(dv brep.Vec) Matrix {
	out := Zero(len(dv))
	for i, x := range dv {
		out.set(i, out.n, x)
	}
	return out
}

// Scaling creates a scaling matrix with per-axis factors v.
func Scaling(v brep.Vec) Matrix {
	out := Identity(len(v))
	for i, x := range v {
		out.set(i, i, x)
	}
	return out
}

// ScalingRate is the derivative of Scaling(v) when v changes at rate dv.
func ScalingRate(dv brep.Vec) Matrix {
	out := Zero(len(dv))
	for i, x := range dv {
		out.set(i, i, x)
	}
	return out
}

// Rotation creates a rotation of n-dimensional space about axis (angle in
// radians). The rotation acts in the plane of the two axes that follow axis
// cyclically: axis 0 turns y toward z, axis 1 turns z toward x, axis 2 turns
// x toward y. In 2-D only axis 2 is meaningful.
//
// Rotation panics if axis is not 0, 1 or 2 or the rotation plane does not
// fit in n dimensions.
func Rotation(n, axis int, angle float64) Matrix {
	i, j := rotationPlane(n, axis)
	return PlaneRotation(n, i, j, angle)
}

// RotationRate is the derivative of Rotation(n, axis, angle) when the angle
// changes at rate omega.
func RotationRate(n, axis int, angle, omega float64) Matrix {
	i, j := rotationPlane(n, axis)
	return PlaneRotationRate(n, i, j, angle, omega)
}

// PlaneRotation creates a rotation turning axis i toward axis j.
func PlaneRotation(n, i, j int, angle float64) Matrix {
	checkPlane(n, i, j)
	cos, sin := math.Cos(angle), math.Sin(angle)
	out := Identity(n)
	out.set(i, i, cos)
	out.set(i, j, -sin)
	out.set(j, i, sin)
	out.set(j, j, cos)
	return out
}

// PlaneRotationRate is the derivative of PlaneRotation(n, i, j, angle) when
// the angle changes at rate omega.
func PlaneRotationRate(n, i, j int, angle, omega float64) Matrix {
	checkPlane(n, i, j)
	cos, sin := math.Cos(angle), math.Sin(angle)
	out := Zero(n)
	out.set(i, i, -sin*omega)
	out.set(i, j, -cos*omega)
	out.set(j, i, cos*omega)
	out.set(j, j, -sin*omega)
	return out
}

func rotationPlane(n, axis int) (int, int) {
	if axis < 0 || axis > 2 {
		panic(fmt.Sprintf("sweep: rotation axis %d out of range [0, 2]", axis))
	}
	return (axis + 1) % 3, (axis + 2) % 3
}

func checkPlane(n, i, j int) {
	if i < 0 || j < 0 || i >= n || j >= n || i == j {
		panic(fmt.Sprintf("sweep: rotation plane (%d, %d) invalid in dimension %d", i, j, n))
	}
}

// Dimension returns n, the dimension of the space the matrix transforms.
func (m Matrix) Dimension() int { return m.n }

// At returns the entry at row i, column j.
func (m Matrix) At(i, j int) float64 {
	return m.m[i*(m.n+1)+j]
}

func (m Matrix) set(i, j int, v float64) {
	m.m[i*(m.n+1)+j] = v
}

// Multiply multiplies two matrices (m * other).
func (m Matrix) Multiply(other Matrix) Matrix {
	size := m.n + 1
	out := Zero(m.n)
	for i := 0; i < size; i++ {
		for k := 0; k < size; k++ {
			a := m.m[i*size+k]
			if a == 0 {
				continue
			}
			for j := 0; j < size; j++ {
				out.m[i*size+j] += a * other.m[k*size+j]
			}
		}
	}
	return out
}

// Add returns the entry-wise sum m + other.
func (m Matrix) Add(other Matrix) Matrix {
	out := Zero(m.n)
	for i := range m.m {
		out.m[i] = m.m[i] + other.m[i]
	}
	return out
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p brep.Vec) brep.Vec {
	out := m.TransformVector(p)
	for i := range out {
		out[i] += m.At(i, m.n)
	}
	return out
}

// TransformVector applies the linear block to a vector (no translation).
func (m Matrix) TransformVector(v brep.Vec) brep.Vec {
	out := make(brep.Vec, m.n)
	for i := 0; i < m.n; i++ {
		var sum float64
		for j := 0; j < m.n; j++ {
			sum += m.At(i, j) * v[j]
		}
		out[i] = sum
	}
	return out
}

// NormalTransform returns the inverse transpose of the linear block, as a
// matrix with no translation. Normals transformed by it stay orthogonal to
// tangents transformed by m, including under non-uniform scale.
//
// It returns ErrSingularTransform if the linear block is not invertible.
func (m Matrix) NormalTransform() (Matrix, error) {
	a := mat.NewDense(m.n, m.n, nil)
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			a.Set(i, j, m.At(i, j))
		}
	}
	var inv mat.Dense
	if err := inv.Inverse(a); err != nil {
		return Matrix{}, fmt.Errorf("%w: %v", ErrSingularTransform, err)
	}
	out := Identity(m.n)
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			v := inv.At(j, i)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return Matrix{}, ErrSingularTransform
			}
			out.set(i, j, v)
		}
	}
	return out, nil
}

// IsIdentity returns true if the matrix is exactly the identity.
func (m Matrix) IsIdentity() bool {
	return m.Equal(Identity(m.n), 0)
}

// IsZero returns true if every entry is exactly zero.
func (m Matrix) IsZero() bool {
	for _, v := range m.m {
		if v != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether both matrices have the same dimension and every
// entry differs by at most tol.
func (m Matrix) Equal(other Matrix, tol float64) bool {
	if m.n != other.n {
		return false
	}
	for i := range m.m {
		if math.Abs(m.m[i]-other.m[i]) > tol {
			return false
		}
	}
	return true
}

// String formats the matrix row by row.
func (m Matrix) String() string {
	size := m.n + 1
	s := ""
	for i := 0; i < size; i++ {
		s += fmt.Sprint(m.m[i*size : (i+1)*size])
		if i < size-1 {
			s += "\n"
		}
	}
	return s
}
