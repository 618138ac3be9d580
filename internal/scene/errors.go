package scene

import (
	"errors"
	"fmt"
)

// Domain errors for scene construction and configuration.
var (
	// ErrDuplicateName indicates two organelles in one diagram share a name.
	ErrDuplicateName = errors.New("scene: duplicate organelle name")

	// ErrNonFinite indicates a NaN or Inf coordinate or size.
	ErrNonFinite = errors.New("scene: non-finite value")

	// ErrOutOfRange indicates a percent coordinate outside [0, 100].
	ErrOutOfRange = errors.New("scene: value out of range")

	// ErrUnknownScene indicates a scene name with no registered builder.
	ErrUnknownScene = errors.New("scene: unknown scene")

	// ErrUnknownTimeline indicates an animation referencing an undeclared timeline.
	ErrUnknownTimeline = errors.New("scene: unknown timeline")
)

// ValidationError wraps an error with the offending organelle. For a
// duplicate name Index is the later entry; the wrapped error names the
// earlier one.
type ValidationError struct {
	Index   int
	Name    string
	Field   string
	Wrapped error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("organelle %d (%s) %s: %v", e.Index, e.Name, e.Field, e.Wrapped)
	}
	return fmt.Sprintf("organelle %d (%s): %v", e.Index, e.Name, e.Wrapped)
}

func (e *ValidationError) Unwrap() error {
	return e.Wrapped
}
