package seq

import "github.com/charmingruby/seqkit/fault"

// MapIter lazily applies fn over it.
func MapIter[A any, B any](it Iterator[A], fn func(A) B) Iterator[B] {
	return newIter(func() (B, bool, error) {
		v, ok := it.Next()
		if !ok {
			var zero B
			return zero, false, it.Err()
		}
		return fn(v), true, nil
	}, it.Close)
}

// FilterIter lazily keeps the values accepted by pred.
func FilterIter[T any](it Iterator[T], pred func(T) bool) Iterator[T] {
	return newIter(func() (T, bool, error) {
		for {
			v, ok := it.Next()
			if !ok {
				var zero T
				return zero, false, it.Err()
			}
			if pred(v) {
				return v, true, nil
			}
		}
	}, it.Close)
}

// Tap calls fn for every value passing through.
func Tap[T any](it Iterator[T], fn func(T)) Iterator[T] {
	return MapIter(it, func(v T) T {
		fn(v)
		return v
	})
}

// Take yields at most n values. The source is released as soon as the n-th
// value has been yielded, so it is never pulled past that point. Take(it, 0)
// never pulls from it.
func Take[T any](it Iterator[T], n int) Iterator[T] {
	count := 0
	return newIter(func() (T, bool, error) {
		var zero T
		if count >= n {
			return zero, false, nil
		}
		v, ok := it.Next()
		if !ok {
			return zero, false, it.Err()
		}
		count++
		if count == n {
			_ = it.Close()
		}
		return v, true, nil
	}, it.Close)
}

// Drop skips the first n values.
func Drop[T any](it Iterator[T], n int) Iterator[T] {
	skipped := false
	return newIter(func() (T, bool, error) {
		var zero T
		if !skipped {
			skipped = true
			for range max(n, 0) {
				if _, ok := it.Next(); !ok {
					return zero, false, it.Err()
				}
			}
		}
		v, ok := it.Next()
		if !ok {
			return zero, false, it.Err()
		}
		return v, true, nil
	}, it.Close)
}

// TakeWhile yields values while pred holds and stops at the first rejection.
func TakeWhile[T any](it Iterator[T], pred func(T) bool) Iterator[T] {
	return newIter(func() (T, bool, error) {
		var zero T
		v, ok := it.Next()
		if !ok {
			return zero, false, it.Err()
		}
		if !pred(v) {
			return zero, false, nil
		}
		return v, true, nil
	}, it.Close)
}

// DropWhile skips values while pred holds and yields everything after.
func DropWhile[T any](it Iterator[T], pred func(T) bool) Iterator[T] {
	dropping := true
	return newIter(func() (T, bool, error) {
		for {
			v, ok := it.Next()
			if !ok {
				var zero T
				return zero, false, it.Err()
			}
			if dropping && pred(v) {
				continue
			}
			dropping = false
			return v, true, nil
		}
	}, it.Close)
}

// Zip pairs values from a and b until either is exhausted. Both sources are
// released once the shorter one runs out.
func Zip[A any, B any](a Iterator[A], b Iterator[B]) Iterator[Pair[A, B]] {
	return newIter(func() (Pair[A, B], bool, error) {
		va, ok := a.Next()
		if !ok {
			return Pair[A, B]{}, false, a.Err()
		}
		vb, ok := b.Next()
		if !ok {
			return Pair[A, B]{}, false, b.Err()
		}
		return Pair[A, B]{First: va, Second: vb}, true, nil
	}, closeAll(a.Close, b.Close))
}

// ZipN yields one slice per step holding the next value of every source, in
// order. It stops when any source is exhausted and then releases all of them.
// Zero sources yield nothing.
func ZipN[T any](its ...Iterator[T]) Iterator[[]T] {
	closers := make([]func() error, len(its))
	for i, it := range its {
		closers[i] = it.Close
	}
	return newIter(func() ([]T, bool, error) {
		if len(its) == 0 {
			return nil, false, nil
		}
		row := make([]T, len(its))
		for i, it := range its {
			v, ok := it.Next()
			if !ok {
				return nil, false, it.Err()
			}
			row[i] = v
		}
		return row, true, nil
	}, closeAll(closers...))
}

// FlatMapIter maps every value to an inner iterator and yields the inner
// values in order. An inner iterator is started only after the previous one
// is exhausted. Closing the result releases the active inner iterator and the
// outer one.
func FlatMapIter[A any, B any](it Iterator[A], fn func(A) Iterator[B]) Iterator[B] {
	var inner Iterator[B]
	return newIter(func() (B, bool, error) {
		var zero B
		for {
			if v, ok := inner.Next(); ok {
				return v, true, nil
			}
			if err := inner.Err(); err != nil {
				return zero, false, err
			}
			a, ok := it.Next()
			if !ok {
				return zero, false, it.Err()
			}
			inner = fn(a)
		}
	}, func() error {
		return closeAll(inner.Close, it.Close)()
	})
}

// Flatten yields the values of every inner iterator in order.
func Flatten[T any](its Iterator[Iterator[T]]) Iterator[T] {
	return FlatMapIter(its, func(inner Iterator[T]) Iterator[T] { return inner })
}

// Concat yields the values of each iterator in turn. Closing the result
// releases every source, including the ones not yet started.
func Concat[T any](its ...Iterator[T]) Iterator[T] {
	closers := make([]func() error, len(its))
	for i, it := range its {
		closers[i] = it.Close
	}
	idx := 0
	return newIter(func() (T, bool, error) {
		for idx < len(its) {
			cur := its[idx]
			if v, ok := cur.Next(); ok {
				return v, true, nil
			}
			if err := cur.Err(); err != nil {
				var zero T
				return zero, false, err
			}
			idx++
		}
		var zero T
		return zero, false, nil
	}, closeAll(closers...))
}

// Window yields overlapping windows of size consecutive values, each a fresh
// slice. A source shorter than size yields nothing. Size zero yields one empty
// window per position, len+1 in total. Negative sizes fail with fault.ErrRange.
func Window[T any](it Iterator[T], size int) Iterator[[]T] {
	if size < 0 {
		return failed[[]T](fault.Rangef("window size %d", size), it.Close)
	}
	if size == 0 {
		first := true
		return newIter(func() ([]T, bool, error) {
			if first {
				first = false
				return []T{}, true, nil
			}
			if _, ok := it.Next(); !ok {
				return nil, false, it.Err()
			}
			return []T{}, true, nil
		}, it.Close)
	}
	var buf []T
	return newIter(func() ([]T, bool, error) {
		if buf == nil {
			buf = make([]T, 0, size)
			for len(buf) < size {
				v, ok := it.Next()
				if !ok {
					return nil, false, it.Err()
				}
				buf = append(buf, v)
			}
		} else {
			v, ok := it.Next()
			if !ok {
				return nil, false, it.Err()
			}
			copy(buf, buf[1:])
			buf[size-1] = v
		}
		out := make([]T, size)
		copy(out, buf)
		return out, true, nil
	}, it.Close)
}

// Chunk yields consecutive non-overlapping groups of size values. A trailing
// group shorter than size is dropped. Sizes below one fail with
// fault.ErrRange.
func Chunk[T any](it Iterator[T], size int) Iterator[[]T] {
	if size <= 0 {
		return failed[[]T](fault.Rangef("chunk size %d", size), it.Close)
	}
	return newIter(func() ([]T, bool, error) {
		group := make([]T, 0, size)
		for len(group) < size {
			v, ok := it.Next()
			if !ok {
				return nil, false, it.Err()
			}
			group = append(group, v)
		}
		return group, true, nil
	}, it.Close)
}

// Distinct yields each value the first time it is seen.
func Distinct[T comparable](it Iterator[T]) Iterator[T] {
	return DistinctBy(it, func(v T) T { return v })
}

// DistinctBy yields each value whose key has not been seen before.
func DistinctBy[T any, K comparable](it Iterator[T], key func(T) K) Iterator[T] {
	seen := make(map[K]struct{})
	return FilterIter(it, func(v T) bool {
		k := key(v)
		if _, dup := seen[k]; dup {
			return false
		}
		seen[k] = struct{}{}
		return true
	})
}

func failed[T any](err error, release func() error) Iterator[T] {
	return newIter(func() (T, bool, error) {
		var zero T
		return zero, false, err
	}, release)
}
