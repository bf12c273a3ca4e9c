// errors.go classifies the two kinds of failure the engine can produce:
// expected rejections, compared by value like the teacher's errorXxx
// sentinels, and invariant violations, which carry a stack trace because
// they indicate a bug rather than bad input.

package engine

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	errInvalidSquare  = fmt.Errorf("invalid square")
	errNotCoLinear    = fmt.Errorf("squares are not on the same row or column")
	errIllegalQuery   = fmt.Errorf("illegal query: square is not occupied by the querying color")
	errNoMoveToUndo   = fmt.Errorf("no move to undo")
)

// InvariantError is a fatal domain error: a programmer error in the engine
// itself, never a consequence of caller input. It must not be handled
// locally — it is meant to propagate to the driver, which prints the
// failing invariant name and exits.
type InvariantError struct {
	Invariant string
	cause     error
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violation [%s]: %v", e.Invariant, e.cause)
}

func (e *InvariantError) Unwrap() error {
	return e.cause
}

// newInvariantError wraps cause with a stack trace (via pkg/errors) and
// names the invariant that was found broken.
func newInvariantError(invariant string, cause error) *InvariantError {
	return &InvariantError{Invariant: invariant, cause: errors.WithStack(cause)}
}

// panicInvariant raises a fatal domain error. Called only from code paths
// that the rules engine's own bookkeeping should make unreachable.
func panicInvariant(invariant string, format string, args ...interface{}) {
	panic(newInvariantError(invariant, fmt.Errorf(format, args...)))
}
