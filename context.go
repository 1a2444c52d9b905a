package sweep

import (
	"fmt"

	"github.com/gogpu/sweep/brep"
)

// Context is the transform state of one scene-construction pass.
// It maintains the current pose, the derivative of the pose with respect to
// the animation parameter (the rate), and a stack of saved pairs.
//
// Transformations compose on the right, so each call acts in the local frame
// left by the previous ones. The rate follows the product rule:
//
//	rate' = rate·F + pose·dF
//
// where F is the new factor and dF its derivative. A Context is not safe for
// concurrent use; give each construction its own.
type Context struct {
	dim   int
	pose  Matrix
	rate  Matrix
	stack []frame

	popPolicy  PopPolicy
	underflows int
}

// frame is one saved (pose, rate) pair.
type frame struct {
	pose Matrix
	rate Matrix
}

// NewContext creates a transform context for dim-dimensional space with the
// identity pose and a zero rate.
func NewContext(dim int, opts ...ContextOption) *Context {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return &Context{
		dim:       dim,
		pose:      Identity(dim),
		rate:      Zero(dim),
		stack:     make([]frame, 0, 8),
		popPolicy: options.popPolicy,
	}
}

// Dimension returns the dimension of the space the context transforms.
func (c *Context) Dimension() int { return c.dim }

// Pose returns the current transformation matrix.
func (c *Context) Pose() Matrix { return c.pose }

// Rate returns the derivative of the pose with respect to the animation
// parameter.
func (c *Context) Rate() Matrix { return c.rate }

// Depth returns the number of saved states.
func (c *Context) Depth() int { return len(c.stack) }

// UnbalancedPops returns how many times Pop found the stack empty.
func (c *Context) UnbalancedPops() int { return c.underflows }

// Push saves the current pose and rate.
func (c *Context) Push() {
	c.stack = append(c.stack, frame{pose: c.pose, rate: c.rate})
}

// Pop restores the last saved pose and rate.
//
// On an empty stack the behavior depends on the PopPolicy: PopPermissive
// resets to the identity pose and zero rate and returns nil, PopStrict
// returns ErrUnbalancedStack.
func (c *Context) Pop() error {
	if len(c.stack) == 0 {
		if c.popPolicy == PopStrict {
			return ErrUnbalancedStack
		}
		c.underflows++
		Logger().Warn("sweep: pop on empty transform stack, resetting to identity",
			"dimension", c.dim, "count", c.underflows)
		currentMetrics().IncUnbalancedPop()
		c.pose = Identity(c.dim)
		c.rate = Zero(c.dim)
		return nil
	}

	top := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.pose = top.pose
	c.rate = top.rate
	return nil
}

// Transform composes a factor f with derivative df into the current pose.
func (c *Context) Transform(f, df Matrix) {
	c.checkDimension(f.Dimension())
	c.checkDimension(df.Dimension())
	c.rate = c.rate.Multiply(f).Add(c.pose.Multiply(df))
	c.pose = c.pose.Multiply(f)
}

// Translate applies a static translation.
func (c *Context) Translate(v brep.Vec) {
	c.Transform(Translation(v), Zero(c.dim))
}

// TranslateMoving applies a translation by v that is changing at rate dv.
func (c *Context) TranslateMoving(v, dv brep.Vec) {
	c.Transform(Translation(v), TranslationRate(dv))
}

// Scale applies a static per-axis scaling.
func (c *Context) Scale(v brep.Vec) {
	c.Transform(Scaling(v), Zero(c.dim))
}

// ScaleMoving applies a per-axis scaling by v that is changing at rate dv.
func (c *Context) ScaleMoving(v, dv brep.Vec) {
	c.Transform(Scaling(v), ScalingRate(dv))
}

// Rotate applies a static rotation about axis (angle in radians).
// See Rotation for the axis convention.
func (c *Context) Rotate(axis int, angle float64) {
	c.Transform(Rotation(c.dim, axis, angle), Zero(c.dim))
}

// RotateMoving applies a rotation about axis whose angle is changing at
// angular velocity omega.
func (c *Context) RotateMoving(axis int, angle, omega float64) {
	c.Transform(Rotation(c.dim, axis, angle), RotationRate(c.dim, axis, angle, omega))
}

// RotatePlane applies a rotation turning axis i toward axis j, changing at
// angular velocity omega. It works in any dimension.
func (c *Context) RotatePlane(i, j int, angle, omega float64) {
	c.Transform(PlaneRotation(c.dim, i, j, angle), PlaneRotationRate(c.dim, i, j, angle, omega))
}

// ApplyPoint transforms a point by the current pose.
func (c *Context) ApplyPoint(p brep.Vec) brep.Vec {
	c.checkDimension(len(p))
	return c.pose.TransformPoint(p)
}

// PointVelocity returns the velocity of the transformed point p, the
// derivative of ApplyPoint(p) with respect to the animation parameter.
func (c *Context) PointVelocity(p brep.Vec) brep.Vec {
	c.checkDimension(len(p))
	return c.rate.TransformPoint(p)
}

// ApplySolid returns a copy of s with every boundary's hyperplane
// transformed by the current pose and annotated with its velocity.
// Domains are shared with s.
func (c *Context) ApplySolid(s *brep.Solid) (*brep.Solid, error) {
	if s.Dimension != c.dim {
		return nil, fmt.Errorf("%w: solid dimension %d, context dimension %d", ErrDimensionMismatch, s.Dimension, c.dim)
	}
	normals, err := c.pose.NormalTransform()
	if err != nil {
		return nil, err
	}
	out := brep.NewSolid(s.Dimension, s.ContainsInfinity)
	out.Boundaries = make([]*brep.Boundary, 0, len(s.Boundaries))
	for i, b := range s.Boundaries {
		h, err := c.applyHyperplane(b.Manifold, normals)
		if err != nil {
			return nil, fmt.Errorf("boundary %d: %w", i, err)
		}
		out.AddBoundary(&brep.Boundary{Manifold: h, Domain: b.Domain})
	}
	return out, nil
}

// ApplyBoundary returns a copy of b with its hyperplane transformed by the
// current pose. The domain is shared with b.
func (c *Context) ApplyBoundary(b *brep.Boundary) (*brep.Boundary, error) {
	h, err := c.ApplyHyperplane(b.Manifold)
	if err != nil {
		return nil, err
	}
	return &brep.Boundary{Manifold: h, Domain: b.Domain}, nil
}

// ApplyHyperplane returns a copy of h transformed by the current pose.
//
// The point and tangent columns map through the pose, the normal through the
// inverse transpose of its linear block. The velocity is the derivative of
// the transformed point: pose·v + rate·[point, 1], where v is h's own
// velocity (zero when unset).
func (c *Context) ApplyHyperplane(h *brep.Hyperplane) (*brep.Hyperplane, error) {
	normals, err := c.pose.NormalTransform()
	if err != nil {
		return nil, err
	}
	return c.applyHyperplane(h, normals)
}

func (c *Context) applyHyperplane(h *brep.Hyperplane, normals Matrix) (*brep.Hyperplane, error) {
	if h.Dimension() != c.dim {
		return nil, fmt.Errorf("%w: hyperplane dimension %d, context dimension %d", ErrDimensionMismatch, h.Dimension(), c.dim)
	}
	tangent := make([]brep.Vec, len(h.Tangent))
	for i, col := range h.Tangent {
		tangent[i] = c.pose.TransformVector(col)
	}
	normal := normals.TransformVector(h.Normal).Normalize()
	velocity := c.rate.TransformPoint(h.Point)
	if h.Velocity != nil {
		velocity = velocity.Add(c.pose.TransformVector(h.Velocity))
	}
	return &brep.Hyperplane{
		Normal:   normal,
		Point:    c.pose.TransformPoint(h.Point),
		Tangent:  tangent,
		Velocity: velocity,
	}, nil
}

func (c *Context) checkDimension(n int) {
	if n != c.dim {
		panic(fmt.Sprintf("sweep: operand dimension %d, context dimension %d", n, c.dim))
	}
}
