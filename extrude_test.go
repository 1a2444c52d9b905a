package sweep

import (
	"errors"
	"testing"

	"github.com/gogpu/sweep/brep"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmp.Options{cmpopts.EquateApprox(0, 1e-12), cmpopts.EquateEmpty()}

func TestExtrudePathStraightExtension(t *testing.T) {
	square := unitSquare()
	box, err := ExtrudePath(square, straightPath())
	if err != nil {
		t.Fatalf("ExtrudePath() = %v", err)
	}
	if box.Dimension != 3 {
		t.Fatalf("Dimension = %d, want 3", box.Dimension)
	}
	if len(box.Boundaries) != 6 {
		t.Fatalf("len(Boundaries) = %d, want 6", len(box.Boundaries))
	}
	checkWellFormed(t, box)

	for i, b := range square.Boundaries {
		want := b.Manifold.Normal.Extend(0)
		if got := box.Boundaries[i].Manifold.Normal; !got.ApproxEqual(want, 0) {
			t.Errorf("lateral %d normal = %v, want %v", i, got, want)
		}
	}
	leading, trailing := box.Boundaries[4].Manifold, box.Boundaries[5].Manifold
	if !leading.Normal.ApproxEqual(brep.Vec{0, 0, -1}, 0) || !leading.Point.ApproxEqual(brep.Vec{0, 0, 0}, 0) {
		t.Errorf("leading cap = %+v", leading)
	}
	if !trailing.Normal.ApproxEqual(brep.Vec{0, 0, 1}, 0) || !trailing.Point.ApproxEqual(brep.Vec{0, 0, 1}, 0) {
		t.Errorf("trailing cap = %+v", trailing)
	}

	tests := []struct {
		p    brep.Vec
		want bool
	}{
		{brep.Vec{0.5, 0.5, 0.5}, true},
		{brep.Vec{0.1, 0.9, 0.2}, true},
		{brep.Vec{0.5, 0.5, 1.5}, false},
		{brep.Vec{0.5, 0.5, -0.5}, false},
		{brep.Vec{1.5, 0.5, 0.5}, false},
	}
	for _, tt := range tests {
		if got := box.ContainsPoint(tt.p); got != tt.want {
			t.Errorf("ContainsPoint(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestExtrudePathBoundaryCount(t *testing.T) {
	triangle, err := brep.FacetedPolygon([]brep.Vec{{0, 0}, {2, 0}, {0, 1}})
	if err != nil {
		t.Fatalf("FacetedPolygon() = %v", err)
	}
	tests := []struct {
		name  string
		solid *brep.Solid
		path  []brep.Vec
	}{
		{"square, one segment", unitSquare(), straightPath()},
		{"square, bent path", unitSquare(), []brep.Vec{{0, 0, 0}, {1, 0, 1}, {1, 2, 2}, {0, 0, 4}}},
		{"triangle, two segments", triangle, []brep.Vec{{0, 0, 0}, {0.5, 0.5, 1}, {0, 0, 3}}},
		{"interval", brep.Interval(-1, 1), []brep.Vec{{0, 0}, {1, 1}, {1, 3}, {0, 4}, {0, 5}}},
		{"cube", brep.Hypercube([][2]float64{{0, 1}, {0, 1}, {0, 1}}), []brep.Vec{{0, 0, 0, 0}, {0.2, 0, 0, 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtrudePath(tt.solid, tt.path)
			if err != nil {
				t.Fatalf("ExtrudePath() = %v", err)
			}
			if got.Dimension != tt.solid.Dimension+1 {
				t.Errorf("Dimension = %d, want %d", got.Dimension, tt.solid.Dimension+1)
			}
			want := (len(tt.path)-1)*len(tt.solid.Boundaries) + 2
			if len(got.Boundaries) != want {
				t.Errorf("len(Boundaries) = %d, want %d", len(got.Boundaries), want)
			}
			checkWellFormed(t, got)
		})
	}
}

func TestExtrudePathCapFidelity(t *testing.T) {
	square := unitSquare()
	path := []brep.Vec{{0.5, 0, 0}, {1, 1, 2}, {0, 3, 3}}
	got, err := ExtrudePath(square, path)
	if err != nil {
		t.Fatalf("ExtrudePath() = %v", err)
	}
	leading := got.Boundaries[len(got.Boundaries)-2]
	trailing := got.Boundaries[len(got.Boundaries)-1]

	for name, cap := range map[string]*brep.Boundary{"leading": leading, "trailing": trailing} {
		if diff := cmp.Diff(square, cap.Domain, approx); diff != "" {
			t.Errorf("%s cap domain mismatch (-want +got):\n%s", name, diff)
		}
		if cap.Domain == square {
			t.Errorf("%s cap shares the input solid", name)
		}
	}
	if !leading.Manifold.Point.ApproxEqual(path[0], 0) {
		t.Errorf("leading anchor = %v, want %v", leading.Manifold.Point, path[0])
	}
	if !trailing.Manifold.Point.ApproxEqual(path[2], 0) {
		t.Errorf("trailing anchor = %v, want %v", trailing.Manifold.Point, path[2])
	}
}

func TestExtrudePathSheared(t *testing.T) {
	prism, err := ExtrudePath(unitSquare(), []brep.Vec{{0, 0, 0}, {1, 0, 1}})
	if err != nil {
		t.Fatalf("ExtrudePath() = %v", err)
	}
	checkWellFormed(t, prism)

	// Lateral face x=1 leans with the path: normal ∝ (1, 0, -1).
	want := brep.Vec{1, 0, -1}.Normalize()
	if n := prism.Boundaries[1].Manifold.Normal; !n.ApproxEqual(want, 1e-15) {
		t.Errorf("sheared normal = %v, want %v", n, want)
	}
	tests := []struct {
		p    brep.Vec
		want bool
	}{
		{brep.Vec{0.5, 0.5, 0.1}, true},
		{brep.Vec{1.5, 0.5, 0.9}, true},
		{brep.Vec{0.5, 0.5, 0.9}, false},
	}
	for _, tt := range tests {
		if got := prism.ContainsPoint(tt.p); got != tt.want {
			t.Errorf("ContainsPoint(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestExtrudePathInterval(t *testing.T) {
	band, err := ExtrudePath(brep.Interval(0, 2), []brep.Vec{{0, 0}, {1, 1}, {1, 3}})
	if err != nil {
		t.Fatalf("ExtrudePath() = %v", err)
	}
	checkWellFormed(t, band)

	// Dimension-0 domains become the interval [0, extent] directly.
	d := band.Boundaries[0].Domain
	if d.Dimension != 1 || len(d.Boundaries) != 2 {
		t.Fatalf("synthesized domain = dim %d with %d boundaries", d.Dimension, len(d.Boundaries))
	}
	if diff := cmp.Diff(brep.Interval(0, 1), d, approx); diff != "" {
		t.Errorf("synthesized domain mismatch (-want +got):\n%s", diff)
	}

	tests := []struct {
		p    brep.Vec
		want bool
	}{
		{brep.Vec{0.2, 0.1}, true},
		{brep.Vec{2, 2}, true},
		{brep.Vec{0.2, 2}, false},
		{brep.Vec{2, 3.5}, false},
	}
	for _, tt := range tests {
		if got := band.ContainsPoint(tt.p); got != tt.want {
			t.Errorf("ContainsPoint(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestExtrudePathNegativeExtent(t *testing.T) {
	got, err := ExtrudePath(unitSquare(), []brep.Vec{{0, 0, 1}, {0, 0, 0}})
	if err != nil {
		t.Fatalf("ExtrudePath() = %v", err)
	}
	checkWellFormed(t, got)

	// The sweep coordinate of a lateral domain runs over [-1, 0].
	domain := got.Boundaries[0].Domain
	if !domain.ContainsPoint(brep.Vec{0.5, -0.5}) {
		t.Error("lateral domain should contain (0.5, -0.5)")
	}
	if domain.ContainsPoint(brep.Vec{0.5, 0.5}) {
		t.Error("lateral domain should not contain (0.5, 0.5)")
	}
}

func TestExtrudePathDescendingCapsFaceOutward(t *testing.T) {
	down, err := ExtrudePath(unitSquare(), []brep.Vec{{0, 0, 1}, {0, 0, 0}})
	if err != nil {
		t.Fatalf("ExtrudePath() = %v", err)
	}
	n := len(down.Boundaries)
	top, bottom := down.Boundaries[n-2].Manifold, down.Boundaries[n-1].Manifold
	if !top.Normal.ApproxEqual(brep.Vec{0, 0, 1}, 0) || !top.Point.ApproxEqual(brep.Vec{0, 0, 1}, 0) {
		t.Errorf("start cap: normal %v at %v, want +z at z=1", top.Normal, top.Point)
	}
	if !bottom.Normal.ApproxEqual(brep.Vec{0, 0, -1}, 0) || !bottom.Point.ApproxEqual(brep.Vec{0, 0, 0}, 0) {
		t.Errorf("end cap: normal %v at %v, want -z at z=0", bottom.Normal, bottom.Point)
	}

	up, err := ExtrudePath(unitSquare(), straightPath())
	if err != nil {
		t.Fatalf("ExtrudePath() = %v", err)
	}
	tests := []struct {
		point brep.Vec
		want  bool
	}{
		{brep.Vec{0.5, 0.5, 0.95}, true},
		{brep.Vec{0.5, 0.5, 0.05}, true},
		{brep.Vec{0.3, 0.7, 0.5}, true},
		{brep.Vec{0.5, 0.5, 1.5}, false},
		{brep.Vec{0.5, 0.5, -0.5}, false},
		{brep.Vec{1.5, 0.5, 0.5}, false},
	}
	for _, tt := range tests {
		if got := down.ContainsPoint(tt.point); got != tt.want {
			t.Errorf("descending ContainsPoint(%v) = %v, want %v", tt.point, got, tt.want)
		}
		if got := up.ContainsPoint(tt.point); got != tt.want {
			t.Errorf("ascending ContainsPoint(%v) = %v, want %v", tt.point, got, tt.want)
		}
	}
}

func TestExtrudePathErrors(t *testing.T) {
	tests := []struct {
		name string
		path []brep.Vec
		want error
	}{
		{"no lift", []brep.Vec{{0, 0, 0}, {1, 0, 0}}, ErrDegenerateSegment},
		{"repeated height", []brep.Vec{{0, 0, 0}, {0, 0, 1}, {2, 1, 1}}, ErrDegenerateSegment},
		{"tiny lift", []brep.Vec{{0, 0, 0}, {0, 1, 1e-14}}, ErrDegenerateSegment},
		{"wrong dimension", []brep.Vec{{0, 0}, {0, 1}}, ErrDimensionMismatch},
		{"mixed dimension", []brep.Vec{{0, 0, 0}, {0, 0, 1, 0}}, ErrDimensionMismatch},
		{"single point", []brep.Vec{{0, 0, 0}}, ErrTooFewPoints},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtrudePath(unitSquare(), tt.path)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if got != nil {
				t.Error("a partial solid was returned")
			}
		})
	}
}
