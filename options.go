package sweep

import "fmt"

// PopPolicy decides what Pop does when the transform stack is empty.
type PopPolicy int

const (
	// PopPermissive resets the context to the identity pose and zero rate,
	// logs a warning and counts the event. Scene code that reuses one
	// context across independent branches relies on this.
	PopPermissive PopPolicy = iota

	// PopStrict leaves the context unchanged and returns ErrUnbalancedStack.
	PopStrict
)

// String returns the policy name.
func (p PopPolicy) String() string {
	switch p {
	case PopPermissive:
		return "permissive"
	case PopStrict:
		return "strict"
	default:
		return fmt.Sprintf("PopPolicy(%d)", int(p))
	}
}

// ContextOption configures a Context during creation.
// Use functional options to customize Context behavior.
//
// Example:
//
//	// Default: permissive pops
//	c := sweep.NewContext(3)
//
//	// Fail on unbalanced pops
//	c := sweep.NewContext(3, sweep.WithPopPolicy(sweep.PopStrict))
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	popPolicy PopPolicy
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		popPolicy: PopPermissive,
	}
}

// WithPopPolicy sets how Pop handles an empty stack.
func WithPopPolicy(p PopPolicy) ContextOption {
	return func(o *contextOptions) {
		o.popPolicy = p
	}
}
