package ranges

import (
	"slices"

	"github.com/charmingruby/seqkit/digits"
	"github.com/charmingruby/seqkit/fault"
)

// Fixed returns a fresh slice holding exactly n copies of value.
func Fixed[T any](n int, value T) ([]T, error) {
	if n < 0 {
		return nil, fault.InvalidArgumentf("fixed size %d", n)
	}
	return digits.ExpandN(uint64(n), fill[T]{value: value}), nil
}

// FixedFunc returns a fresh slice of length n where element i is factory(i).
// factory runs once per index, in ascending order.
func FixedFunc[T any](n int, factory func(i int) T) ([]T, error) {
	if n < 0 {
		return nil, fault.InvalidArgumentf("fixed size %d", n)
	}
	idx := indexes(n)
	out := make([]T, len(idx))
	for k, i := range idx {
		out[k] = factory(i)
	}
	return out, nil
}

// PadStart prepends copies of value until items reaches length. Longer inputs
// come back as a copy.
func PadStart[T any](items []T, length int, value T) []T {
	if len(items) >= length {
		return slices.Clone(items)
	}
	pad, _ := Fixed(length-len(items), value)
	return append(pad, items...)
}

// PadEnd appends copies of value until items reaches length. Longer inputs
// come back as a copy.
func PadEnd[T any](items []T, length int, value T) []T {
	if len(items) >= length {
		return slices.Clone(items)
	}
	pad, _ := Fixed(length-len(items), value)
	return slices.Concat(items, pad)
}

type fill[T any] struct {
	value T
}

func (f fill[T]) Unit(d digits.Digit) []T {
	return slices.Repeat([]T{f.value}, int(d))
}

func (fill[T]) Repeat10(c []T) []T {
	return slices.Repeat(c, 10)
}

func (fill[T]) Append(a, b []T) []T {
	return slices.Concat(a, b)
}
