package seq

import "github.com/charmingruby/seqkit/option"

// ToSlice drains the iterator into a slice. A source failure is dropped; use
// Collect to observe it.
func ToSlice[T any](it Iterator[T]) []T {
	values, _ := Collect(it)
	return values
}

// Collect drains the iterator and reports the first error raised by the
// source or by releasing it.
func Collect[T any](it Iterator[T]) ([]T, error) {
	out := []T{}
	for {
		v, ok := it.Next()
		if !ok {
			return out, it.Err()
		}
		out = append(out, v)
	}
}

// ForEach calls fn for every value.
func ForEach[T any](it Iterator[T], fn func(T)) error {
	for {
		v, ok := it.Next()
		if !ok {
			return it.Err()
		}
		fn(v)
	}
}

// Count drains the iterator and returns how many values it yielded.
func Count[T any](it Iterator[T]) (int, error) {
	n := 0
	for {
		if _, ok := it.Next(); !ok {
			return n, it.Err()
		}
		n++
	}
}

// First returns the first value and closes the iterator.
func First[T any](it Iterator[T]) option.Option[T] {
	defer func() { _ = it.Close() }()
	v, ok := it.Next()
	return option.FromOk(v, ok)
}

// Last drains the iterator and returns its final value.
func Last[T any](it Iterator[T]) option.Option[T] {
	last := option.None[T]()
	for {
		v, ok := it.Next()
		if !ok {
			return last
		}
		last = option.Some(v)
	}
}

// Nth returns the value at zero-based index n and closes the iterator.
func Nth[T any](it Iterator[T], n int) option.Option[T] {
	if n < 0 {
		_ = it.Close()
		return option.None[T]()
	}
	return First(Drop(it, n))
}

// Find returns the first value accepted by pred and closes the iterator.
func Find[T any](it Iterator[T], pred func(T) bool) option.Option[T] {
	return First(FilterIter(it, pred))
}

// Any reports whether some value satisfies pred, stopping at the first match.
func Any[T any](it Iterator[T], pred func(T) bool) bool {
	return Find(it, pred).IsSome()
}

// Every reports whether every value satisfies pred, stopping at the first
// mismatch.
func Every[T any](it Iterator[T], pred func(T) bool) bool {
	return Find(it, func(v T) bool { return !pred(v) }).IsNone()
}

// Reduce folds the values with fn, seeded by the first one. An empty iterator
// reduces to None.
func Reduce[T any](it Iterator[T], fn func(T, T) T) option.Option[T] {
	acc, ok := it.Next()
	if !ok {
		return option.None[T]()
	}
	for {
		v, ok := it.Next()
		if !ok {
			return option.Some(acc)
		}
		acc = fn(acc, v)
	}
}

// Fold reduces the values from left to right starting at init.
func Fold[T any, B any](it Iterator[T], init B, fn func(B, T) B) B {
	acc := init
	for {
		v, ok := it.Next()
		if !ok {
			return acc
		}
		acc = fn(acc, v)
	}
}

// GroupBy drains the iterator into buckets keyed by key, preserving order
// within each bucket.
func GroupBy[T any, K comparable](it Iterator[T], key func(T) K) map[K][]T {
	out := make(map[K][]T)
	for {
		v, ok := it.Next()
		if !ok {
			return out
		}
		k := key(v)
		out[k] = append(out[k], v)
	}
}
