// Package combin builds combinatorial structures on top of seq: shuffles,
// permutations, cartesian products, windows and prefixes.
package combin

import (
	"math/rand/v2"
	"slices"

	"github.com/charmingruby/seqkit/fault"
	"github.com/charmingruby/seqkit/ranges"
	"github.com/charmingruby/seqkit/seq"
)

// Shuffle returns a uniformly shuffled copy of items using the global random
// source. items is left untouched.
func Shuffle[T any](items []T) []T {
	return ShuffleWith(nil, items)
}

// ShuffleWith is Shuffle drawing from src, or from the global source when src
// is nil.
func ShuffleWith[T any](src *rand.Rand, items []T) []T {
	out := make([]T, len(items))
	for i, v := range items {
		j, _ := ranges.RandomWith(src, ranges.Through(0, i))
		if j < i {
			out[i] = out[j]
		}
		out[j] = v
	}
	return out
}

// Permutations lists every ordering of items lazily, in lexicographic order of
// positions, starting with items itself. Each yielded slice is a fresh copy.
// An empty input has exactly one permutation, the empty one.
func Permutations[T any](items []T) seq.Iterator[[]T] {
	src := slices.Clone(items)
	idx, err := ranges.Integers(0, len(src), false)
	started := false
	return seq.FromFunc(func() ([]T, bool, error) {
		if err != nil {
			return nil, false, err
		}
		if started && !nextPermutation(idx) {
			return nil, false, nil
		}
		started = true
		out := make([]T, len(idx))
		for k, i := range idx {
			out[k] = src[i]
		}
		return out, true, nil
	}, nil)
}

// nextPermutation rearranges p into its lexicographic successor and reports
// false when p is already the last permutation.
func nextPermutation(p []int) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	slices.Reverse(p[i+1:])
	return true
}

// CartesianProduct pairs every element of a with every element of b,
// row-major.
func CartesianProduct[A any, B any](a []A, b []B) []seq.Pair[A, B] {
	return seq.ToSlice(CartesianProductIter(seq.FromSlice(a), b))
}

// CartesianProductIter is the lazy form of CartesianProduct. The left side may
// be infinite; the right side is walked once per left value.
func CartesianProductIter[A any, B any](a seq.Iterator[A], b []B) seq.Iterator[seq.Pair[A, B]] {
	return seq.FlatMapIter(a, func(x A) seq.Iterator[seq.Pair[A, B]] {
		return seq.MapIter(seq.FromSlice(b), func(y B) seq.Pair[A, B] {
			return seq.Pair[A, B]{First: x, Second: y}
		})
	})
}

// SlidingWindow yields every window of n consecutive values. It fails with
// fault.ErrRange for negative n, closing it.
func SlidingWindow[T any](it seq.Iterator[T], n int) (seq.Iterator[[]T], error) {
	if n < 0 {
		_ = it.Close()
		return seq.Empty[[]T](), fault.Rangef("window size %d", n)
	}
	return seq.Window(it, n), nil
}

// Prefixes yields the empty prefix and then every longer prefix of it. Each
// yielded slice is a fresh copy.
func Prefixes[T any](it seq.Iterator[T]) seq.Iterator[[]T] {
	var acc []T
	started := false
	return seq.FromFunc(func() ([]T, bool, error) {
		if started {
			v, ok := it.Next()
			if !ok {
				return nil, false, it.Err()
			}
			acc = append(acc, v)
		}
		started = true
		return append(make([]T, 0, len(acc)), acc...), true, nil
	}, it.Close)
}

// Chunk splits items into consecutive groups of exactly size elements,
// dropping a shorter trailing group. Sizes below one fail with
// fault.ErrRange.
func Chunk[T any](items []T, size int) ([][]T, error) {
	out, err := seq.Collect(seq.Chunk(seq.FromSlice(items), size))
	if err != nil {
		return nil, err
	}
	return out, nil
}
