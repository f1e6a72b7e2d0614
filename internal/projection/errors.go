package projection

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is the only failure kind of the engine.
var ErrInvalidParameter = errors.New("invalid parameter")

// ParamError names the offending field. It unwraps to ErrInvalidParameter.
type ParamError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ParamError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %s=%v %s", ErrInvalidParameter, e.Field, e.Value, e.Reason)
}

func (e *ParamError) Unwrap() error {
	return ErrInvalidParameter
}

// IsInvalidParameter reports whether err came from parameter validation.
func IsInvalidParameter(err error) bool {
	return errors.Is(err, ErrInvalidParameter)
}
