package sweep

import "errors"

// Errors returned by the transform stack and the extruders. They are wrapped
// with the offending segment or boundary index; compare with errors.Is.
var (
	// ErrDimensionMismatch is returned when a path point, a time sample or a
	// piece of geometry does not have the dimension the operation expects.
	ErrDimensionMismatch = errors.New("sweep: dimension mismatch")

	// ErrDegenerateSegment is returned when a path or time segment has zero
	// extent along the new axis.
	ErrDegenerateSegment = errors.New("sweep: degenerate segment")

	// ErrSingularTransform is returned when the pose's linear block cannot
	// be inverted to correct normals.
	ErrSingularTransform = errors.New("sweep: singular transform")

	// ErrUnbalancedStack is returned by Pop on an empty stack under PopStrict.
	ErrUnbalancedStack = errors.New("sweep: pop on empty transform stack")

	// ErrTooFewPoints is returned when a path or time sequence has fewer
	// than two entries.
	ErrTooFewPoints = errors.New("sweep: need at least two samples")

	// ErrUnorderedSamples is returned when time samples decrease.
	ErrUnorderedSamples = errors.New("sweep: time samples must increase")
)
