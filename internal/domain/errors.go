package domain

import "errors"

// Common domain errors
var (
	ErrNotFound       = errors.New("resource not found")
	ErrDuplicate      = errors.New("duplicate record")
	ErrForeignKey     = errors.New("referenced record does not exist")
	ErrCheckViolation = errors.New("value rejected by check constraint")
)

// ConstraintError is returned by repositories when the store rejects a write.
// Kind is one of ErrDuplicate, ErrForeignKey or ErrCheckViolation.
type ConstraintError struct {
	Kind       error
	Constraint string
}

func (e *ConstraintError) Error() string {
	return e.Kind.Error() + " (" + e.Constraint + ")"
}

func (e *ConstraintError) Unwrap() error {
	return e.Kind
}

// ConstraintName returns the constraint behind err, or "" when err is not a ConstraintError.
func ConstraintName(err error) string {
	var ce *ConstraintError
	if errors.As(err, &ce) {
		return ce.Constraint
	}
	return ""
}
