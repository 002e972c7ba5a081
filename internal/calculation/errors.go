package calculation

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument is wrapped by every input validation failure.
// Callers test for it with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidArgument)
}

func requireFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalidf("%s must be a finite number, got %v", name, v)
	}
	return nil
}

func requireNonNegative(name string, v float64) error {
	if err := requireFinite(name, v); err != nil {
		return err
	}
	if v < 0 {
		return invalidf("%s cannot be negative, got %v", name, v)
	}
	return nil
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
