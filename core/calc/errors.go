// core/calc/errors.go
package calc

import (
	"errors"
	"fmt"
)

// Error kinds. Callers test with errors.Is.
//
// ErrInvalidInput marks a missing or empty required measurement; it is
// detected before any arithmetic. ErrDomain marks input on which the
// requested formula is mathematically undefined or physically
// inconsistent; it is detected at the point the operation would fail.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrDomain       = errors.New("domain error")
)

// Missing reports a required measurement that is absent or empty.
func Missing(attr string) error {
	return invalidf("%s is required", attr)
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrInvalidInput)...)
}

func domainf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrDomain)...)
}
