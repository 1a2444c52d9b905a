package sweep

import (
	"math"
	"testing"

	"github.com/gogpu/sweep/brep"
)

// wellFormedTolerance bounds unit-length and orthogonality errors.
const wellFormedTolerance = 1e-9

func unitSquare() *brep.Solid {
	return brep.Hypercube([][2]float64{{0, 1}, {0, 1}})
}

func straightPath() []brep.Vec {
	return []brep.Vec{{0, 0, 0}, {0, 0, 1}}
}

// checkWellFormed verifies unit normals orthogonal to every tangent column
// and consistent domain dimensions, recursively.
func checkWellFormed(t *testing.T, s *brep.Solid) {
	t.Helper()
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	var walk func(s *brep.Solid, path string)
	walk = func(s *brep.Solid, path string) {
		for i, b := range s.Boundaries {
			h := b.Manifold
			if math.Abs(h.Normal.Length()-1) > wellFormedTolerance {
				t.Errorf("%s boundary %d: |normal| = %v", path, i, h.Normal.Length())
			}
			for j, col := range h.Tangent {
				if d := h.Normal.Dot(col); math.Abs(d) > wellFormedTolerance {
					t.Errorf("%s boundary %d: normal·tangent[%d] = %v", path, i, j, d)
				}
			}
			walk(b.Domain, path+"/domain")
		}
	}
	walk(s, "solid")
}

// finiteDifference estimates the derivative of f at t with a forward step h.
func finiteDifference(f func(t float64) brep.Vec, t, h float64) brep.Vec {
	return f(t + h).Sub(f(t)).Mul(1 / h)
}
