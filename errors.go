package era

import (
	"errors"
	"fmt"
)

// ErrInvalidPrecision indicates a numeric precision outside the supported 6-11 range.
var ErrInvalidPrecision = errors.New("era: invalid precision")

// InvalidPrecisionError carries the rejected precision rank.
type InvalidPrecisionError struct {
	Value int
}

func (e *InvalidPrecisionError) Error() string {
	return fmt.Sprintf("era: unsupported precision value %d; values %d-%d are supported",
		e.Value, minPrecisionRank, maxPrecisionRank)
}

// Is reports ErrInvalidPrecision as a match so callers can test with errors.Is.
func (e *InvalidPrecisionError) Is(target error) bool {
	return target == ErrInvalidPrecision
}
