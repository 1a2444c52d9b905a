package brep

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func unitSquare() *Solid {
	return Hypercube([][2]float64{{0, 1}, {0, 1}})
}

func TestHypercubeStructure(t *testing.T) {
	cube := Hypercube([][2]float64{{-1, 1}, {0, 2}, {3, 4}})
	if cube.Dimension != 3 {
		t.Fatalf("Dimension = %d, want 3", cube.Dimension)
	}
	if len(cube.Boundaries) != 6 {
		t.Fatalf("len(Boundaries) = %d, want 6", len(cube.Boundaries))
	}
	if err := cube.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	for i, b := range cube.Boundaries {
		h := b.Manifold
		if math.Abs(h.Normal.Length()-1) > 1e-15 {
			t.Errorf("boundary %d normal not unit: %v", i, h.Normal)
		}
		for j, col := range h.Tangent {
			if d := h.Normal.Dot(col); d != 0 {
				t.Errorf("boundary %d tangent %d not orthogonal: %v", i, j, d)
			}
		}
		if len(b.Domain.Boundaries) != 4 {
			t.Errorf("boundary %d domain has %d boundaries, want 4", i, len(b.Domain.Boundaries))
		}
	}
	// Lower z face sits at z=3 facing down.
	z := cube.Boundaries[4].Manifold
	if !z.Normal.ApproxEqual(Vec{0, 0, -1}, 0) || z.Point[2] != 3 {
		t.Errorf("lower z face = %+v", z)
	}
}

func TestContainsPoint(t *testing.T) {
	cube := Hypercube([][2]float64{{0, 1}, {0, 2}, {0, 3}})
	tests := []struct {
		name string
		p    Vec
		want bool
	}{
		{"center", Vec{0.5, 1, 1.5}, true},
		{"near corner", Vec{0.05, 0.05, 0.05}, true},
		{"outside x", Vec{1.5, 1, 1.5}, false},
		{"outside negative", Vec{-0.5, -0.5, -0.5}, false},
		{"far away", Vec{10, 10, 10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cube.ContainsPoint(tt.p); got != tt.want {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestContainsPointInfinity(t *testing.T) {
	empty := NewSolid(2, false)
	if empty.ContainsPoint(Vec{0, 0}) {
		t.Error("empty solid contains a point")
	}
	full := NewSolid(2, true)
	if !full.ContainsPoint(Vec{0, 0}) {
		t.Error("full solid does not contain a point")
	}
}

func TestInterval(t *testing.T) {
	iv := Interval(-1, 2)
	for _, x := range []float64{-0.5, 0, 1.9} {
		if !iv.ContainsPoint(Vec{x}) {
			t.Errorf("Interval(-1,2) should contain %v", x)
		}
	}
	for _, x := range []float64{-1.5, 2.1} {
		if iv.ContainsPoint(Vec{x}) {
			t.Errorf("Interval(-1,2) should not contain %v", x)
		}
	}
}

func TestFacetedPolygon(t *testing.T) {
	triangle, err := FacetedPolygon([]Vec{{0, 0}, {4, 0}, {0, 4}})
	if err != nil {
		t.Fatalf("FacetedPolygon() = %v", err)
	}
	if err := triangle.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	if len(triangle.Boundaries) != 3 {
		t.Fatalf("len(Boundaries) = %d, want 3", len(triangle.Boundaries))
	}
	// The closing edge runs from (0,4) to (0,0), so its outward normal is -x.
	if n := triangle.Boundaries[0].Manifold.Normal; !n.ApproxEqual(Vec{-1, 0}, 1e-15) {
		t.Errorf("first edge normal = %v, want (-1, 0)", n)
	}
	if !triangle.ContainsPoint(Vec{1, 1}) {
		t.Error("triangle should contain (1,1)")
	}
	if triangle.ContainsPoint(Vec{3, 3}) {
		t.Error("triangle should not contain (3,3)")
	}

	if _, err := FacetedPolygon([]Vec{{0, 0}, {1, 0}}); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("two points: err = %v, want ErrInvalidGeometry", err)
	}
	if _, err := FacetedPolygon([]Vec{{0, 0}, {0, 0}, {1, 1}}); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("repeated point: err = %v, want ErrInvalidGeometry", err)
	}
}

func TestDomainPoint(t *testing.T) {
	h, err := NewHyperplane(Vec{0, 0, 2}, Vec{1, 1, 1}, []Vec{{2, 0, 0}, {1, 1, 0}})
	if err != nil {
		t.Fatalf("NewHyperplane() = %v", err)
	}
	if !h.Normal.ApproxEqual(Vec{0, 0, 1}, 0) {
		t.Errorf("normal not normalized: %v", h.Normal)
	}
	u := Vec{0.25, -1.5}
	p := h.Evaluate(u)
	got, err := h.DomainPoint(p)
	if err != nil {
		t.Fatalf("DomainPoint() = %v", err)
	}
	if !got.ApproxEqual(u, 1e-12) {
		t.Errorf("DomainPoint(Evaluate(%v)) = %v", u, got)
	}
}

func TestNewHyperplaneErrors(t *testing.T) {
	tests := []struct {
		name    string
		normal  Vec
		point   Vec
		tangent []Vec
	}{
		{"zero normal", Vec{0, 0}, Vec{0, 0}, []Vec{{1, 0}}},
		{"point dimension", Vec{1, 0}, Vec{0}, []Vec{{0, 1}}},
		{"tangent count", Vec{1, 0}, Vec{0, 0}, nil},
		{"tangent dimension", Vec{1, 0}, Vec{0, 0}, []Vec{{0, 1, 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewHyperplane(tt.normal, tt.point, tt.tangent); !errors.Is(err, ErrInvalidGeometry) {
				t.Errorf("err = %v, want ErrInvalidGeometry", err)
			}
		})
	}
}

func TestCloneIsDeep(t *testing.T) {
	sq := unitSquare()
	c := sq.Clone()
	c.Boundaries[0].Manifold.Point[0] = 42
	c.Boundaries[0].Domain.Boundaries[0].Manifold.Point[0] = 42
	if sq.Boundaries[0].Manifold.Point[0] == 42 || sq.Boundaries[0].Domain.Boundaries[0].Manifold.Point[0] == 42 {
		t.Error("Clone shares geometry with the original")
	}
}

func TestSaveLoad(t *testing.T) {
	sq := unitSquare()
	sq.Boundaries[1].Manifold.Velocity = Vec{0.5, 0}

	var buf bytes.Buffer
	if err := Save(&buf, sq); err != nil {
		t.Fatalf("Save() = %v", err)
	}
	got, err := Load(&buf)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if got.Dimension != 2 || len(got.Boundaries) != 4 {
		t.Fatalf("loaded solid = dim %d, %d boundaries", got.Dimension, len(got.Boundaries))
	}
	if v := got.Boundaries[1].Manifold.Velocity; !v.ApproxEqual(Vec{0.5, 0}, 0) {
		t.Errorf("velocity = %v, want (0.5, 0)", v)
	}
	if got.Boundaries[0].Manifold.Velocity != nil {
		t.Errorf("velocity should stay unset, got %v", got.Boundaries[0].Manifold.Velocity)
	}
	if !got.ContainsPoint(Vec{0.5, 0.5}) {
		t.Error("loaded square lost its interior")
	}
}

func TestLoadRejectsInconsistentGeometry(t *testing.T) {
	const bad = `{"dimension":2,"containsInfinity":false,"boundaries":[
		{"manifold":{"normal":[1,0,0],"point":[0,0],"tangent":[[0,1]]},
		 "domain":{"dimension":1,"containsInfinity":true,"boundaries":null}}]}`
	if _, err := Load(bytes.NewBufferString(bad)); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("Load() err = %v, want ErrInvalidGeometry", err)
	}
}
