// Package seq offers lazy, pull-based sequences with an explicit cleanup
// contract.
//
// An Iterator yields values on demand through Next. Every source wrapped by an
// Iterator is released exactly once: when it is exhausted, when Close is
// called (even before the first Next), or when a callback panics inside a
// combinator. Combinators forward Close to every source they wrap.
package seq

import (
	"errors"
	"iter"
)

// Iterator is a lazy, pull-based iterator. Copies share the same underlying
// source, so closing one copy closes them all. An Iterator is not safe for
// concurrent use.
type Iterator[T any] struct {
	src *source[T]
}

type source[T any] struct {
	next     func() (T, bool, error)
	close    func() error
	done     bool
	closed   bool
	err      error
	closeErr error
}

func newIter[T any](next func() (T, bool, error), closeFn func() error) Iterator[T] {
	return Iterator[T]{src: &source[T]{next: next, close: closeFn}}
}

// Next yields the next value. When ok is false, iteration is complete and the
// underlying source has been released; check Err for a failure.
func (it Iterator[T]) Next() (T, bool) {
	var zero T
	s := it.src
	if s == nil || s.done {
		return zero, false
	}
	completed := false
	defer func() {
		if !completed {
			s.stop()
		}
	}()
	v, ok, err := s.next()
	completed = true
	if err != nil && s.err == nil {
		s.err = err
	}
	if !ok || err != nil {
		s.stop()
		return zero, false
	}
	return v, true
}

// Close stops the iterator and releases its source. It is safe to call more
// than once; the release itself runs only the first time.
func (it Iterator[T]) Close() error {
	if it.src == nil {
		return nil
	}
	it.src.stop()
	return it.src.closeErr
}

// Err returns the first error raised by the source or by releasing it.
func (it Iterator[T]) Err() error {
	if it.src == nil {
		return nil
	}
	return it.src.err
}

func (s *source[T]) stop() {
	s.done = true
	if s.closed {
		return
	}
	s.closed = true
	if s.close == nil {
		return
	}
	s.closeErr = s.close()
	if s.closeErr != nil && s.err == nil {
		s.err = s.closeErr
	}
}

// Pair represents two related values.
type Pair[A any, B any] struct {
	First  A
	Second B
}

// Empty returns an iterator that yields nothing.
func Empty[T any]() Iterator[T] {
	return newIter(func() (T, bool, error) {
		var zero T
		return zero, false, nil
	}, nil)
}

// FromSlice creates an iterator over the provided slice without copying.
func FromSlice[T any](values []T) Iterator[T] {
	idx := 0
	return newIter(func() (T, bool, error) {
		if idx >= len(values) {
			var zero T
			return zero, false, nil
		}
		v := values[idx]
		idx++
		return v, true, nil
	}, nil)
}

// Of is FromSlice over its arguments.
func Of[T any](values ...T) Iterator[T] {
	return FromSlice(values)
}

// FromFunc builds an iterator over an arbitrary pull source. next reports
// ok=false at exhaustion; a non-nil error ends the iteration and is surfaced
// through Err. release may be nil and runs exactly once.
func FromFunc[T any](next func() (T, bool, error), release func() error) Iterator[T] {
	return newIter(next, release)
}

// FromSeq adapts a range-over-func sequence. The sequence is driven through
// iter.Pull and its stop function is the release hook.
func FromSeq[T any](s iter.Seq[T]) Iterator[T] {
	pull, stop := iter.Pull(s)
	return newIter(func() (T, bool, error) {
		v, ok := pull()
		return v, ok, nil
	}, func() error {
		stop()
		return nil
	})
}

// Generate yields fn() forever.
func Generate[T any](fn func() T) Iterator[T] {
	return newIter(func() (T, bool, error) {
		return fn(), true, nil
	}, nil)
}

// Repeat yields value forever.
func Repeat[T any](value T) Iterator[T] {
	return newIter(func() (T, bool, error) {
		return value, true, nil
	}, nil)
}

// RepeatN yields value exactly n times. Negative n yields nothing.
func RepeatN[T any](value T, n int) Iterator[T] {
	return Take(Repeat(value), n)
}

// Iterate yields seed, fn(seed), fn(fn(seed)), and so on.
func Iterate[T any](seed T, fn func(T) T) Iterator[T] {
	cur := seed
	started := false
	return newIter(func() (T, bool, error) {
		if started {
			cur = fn(cur)
		}
		started = true
		return cur, true, nil
	}, nil)
}

// Range yields the integers from from up to, but excluding, to. It counts
// down when from > to.
func Range(from, to int) Iterator[int] {
	step := 1
	if from > to {
		step = -1
	}
	cur := from
	return newIter(func() (int, bool, error) {
		if cur == to {
			return 0, false, nil
		}
		v := cur
		cur += step
		return v, true, nil
	}, nil)
}

// RangeThrough is Range including to.
func RangeThrough(from, to int) Iterator[int] {
	step := 1
	if from > to {
		step = -1
	}
	cur := from
	finished := false
	return newIter(func() (int, bool, error) {
		if finished {
			return 0, false, nil
		}
		v := cur
		if cur == to {
			finished = true
		} else {
			cur += step
		}
		return v, true, nil
	}, nil)
}

// All adapts the iterator to a range-over-func sequence. Breaking out of the
// loop closes the iterator.
//
//	for v := range seq.All(it) {
//		...
//	}
func All[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		defer func() { _ = it.Close() }()
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

func closeAll(closers ...func() error) func() error {
	return func() error {
		errs := make([]error, 0, len(closers))
		for _, c := range closers {
			errs = append(errs, c())
		}
		return errors.Join(errs...)
	}
}
