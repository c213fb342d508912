// Package option holds the Option type returned by the seq terminals that may
// find nothing (First, Last, Nth, Find, Reduce).
package option

import (
	"fmt"

	"github.com/charmingruby/seqkit/fault"
)

// Option is either a value of type T or nothing. The zero value is None.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps value. Some(nil) is present for nil-capable types.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, ok: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromOk builds an Option from the usual value, ok pair.
func FromOk[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Get returns the value and whether it was present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// GetOrElse returns the value, or fallback when empty.
func (o Option[T]) GetOrElse(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// OrError returns the value, or an error wrapping fault.ErrInvalidArgument
// that names what was missing.
func (o Option[T]) OrError(what string) (T, error) {
	if o.ok {
		return o.value, nil
	}
	var zero T
	return zero, fault.InvalidArgumentf("no %s", what)
}

// Map transforms the value when present.
func Map[T any, U any](o Option[T], fn func(T) U) Option[U] {
	if o.ok {
		return Some(fn(o.value))
	}
	return None[U]()
}

// FlatMap chains an Option-valued function.
func FlatMap[T any, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if o.ok {
		return fn(o.value)
	}
	return None[U]()
}

// Tap calls fn with the value when present and returns o unchanged.
func Tap[T any](o Option[T], fn func(T)) Option[T] {
	if o.ok {
		fn(o.value)
	}
	return o
}

// String renders Some(v) or None.
func (o Option[T]) String() string {
	if o.ok {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}
