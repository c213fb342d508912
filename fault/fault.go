// Package fault defines the error kinds shared by every seqkit package.
//
// All failures are synchronous contract violations reported to the immediate
// caller. Match them with errors.Is:
//
//	if _, err := ranges.Random(ranges.Until(5, 5)); errors.Is(err, fault.ErrRange) {
//		// empty range
//	}
package fault

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

var (
	// ErrInvalidArgument is returned for negative or non-integer sizes and
	// lengths, and for empty inputs that must not be empty.
	ErrInvalidArgument = errors.New("seqkit: invalid argument")

	// ErrRange is returned for ill-formed numeric ranges, such as equal bounds
	// under an exclusive policy or a negative window size.
	ErrRange = errors.New("seqkit: range error")

	// ErrDomain is returned when a numeric input lies outside the domain of
	// the operation (non-finite operands, zero divisors).
	ErrDomain = errors.New("seqkit: domain error")
)

// InvalidArgumentf wraps ErrInvalidArgument with a formatted message and a
// stack trace.
func InvalidArgumentf(format string, args ...any) error {
	return pkgerrors.Wrapf(ErrInvalidArgument, format, args...)
}

// Rangef wraps ErrRange with a formatted message and a stack trace.
func Rangef(format string, args ...any) error {
	return pkgerrors.Wrapf(ErrRange, format, args...)
}

// Domainf wraps ErrDomain with a formatted message and a stack trace.
func Domainf(format string, args ...any) error {
	return pkgerrors.Wrapf(ErrDomain, format, args...)
}

// Is reports whether err belongs to one of the seqkit error kinds.
func Is(err error) bool {
	return errors.Is(err, ErrInvalidArgument) || errors.Is(err, ErrRange) || errors.Is(err, ErrDomain)
}
