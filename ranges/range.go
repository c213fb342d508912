// Package ranges generates integer ranges and fixed-size containers.
//
// Materialization goes through digits.Expand: a container of n elements is
// composed from per-digit blocks in O(digits(n)) composition steps rather
// than n single appends.
package ranges

import (
	"math"
	"strconv"

	"github.com/charmingruby/seqkit/digits"
	"github.com/charmingruby/seqkit/fault"
	"github.com/charmingruby/seqkit/seq"
)

// Range is an integer interval walked from From towards To. Direction follows
// the bounds: From > To counts down. To is part of the range only when
// Inclusive is set.
type Range struct {
	From      int
	To        int
	Inclusive bool
}

// Until returns the range [from, to).
func Until(from, to int) Range {
	return Range{From: from, To: to}
}

// Through returns the range [from, to].
func Through(from, to int) Range {
	return Range{From: from, To: to, Inclusive: true}
}

// Step is +1 for ascending ranges and -1 for descending ones.
func (r Range) Step() int {
	if r.From > r.To {
		return -1
	}
	return 1
}

// Len is the number of values in the range. It fails with fault.ErrRange when
// the count does not fit in an int.
func (r Range) Len() (int, error) {
	var dist uint64
	if r.To >= r.From {
		dist = uint64(r.To) - uint64(r.From)
	} else {
		dist = uint64(r.From) - uint64(r.To)
	}
	if r.Inclusive {
		if dist >= math.MaxInt {
			return 0, fault.Rangef("range %s has more than %d values", r, math.MaxInt)
		}
		dist++
	}
	if dist > math.MaxInt {
		return 0, fault.Rangef("range %s has more than %d values", r, math.MaxInt)
	}
	return int(dist), nil
}

// At returns the i-th value of the range without bounds checking.
func (r Range) At(i int) int {
	return r.From + r.Step()*i
}

// Contains reports whether v is one of the range's values.
func (r Range) Contains(v int) bool {
	lo, hi := min(r.From, r.To), max(r.From, r.To)
	if v < lo || v > hi {
		return false
	}
	return r.Inclusive || v != r.To
}

// Values materializes the range.
func (r Range) Values() ([]int, error) {
	return Integers(r.From, r.To, r.Inclusive)
}

// Iter walks the range lazily.
func (r Range) Iter() seq.Iterator[int] {
	if r.Inclusive {
		return seq.RangeThrough(r.From, r.To)
	}
	return seq.Range(r.From, r.To)
}

// String renders the range in interval notation.
func (r Range) String() string {
	closing := ")"
	if r.Inclusive {
		closing = "]"
	}
	return "[" + strconv.Itoa(r.From) + ", " + strconv.Itoa(r.To) + closing
}

// Integers materializes the integers from from towards to, descending when
// from > to. Equal bounds yield nothing, or just from when inclusive.
func Integers(from, to int, inclusive bool) ([]int, error) {
	r := Range{From: from, To: to, Inclusive: inclusive}
	n, err := r.Len()
	if err != nil {
		return nil, err
	}
	out := indexes(n)
	step := r.Step()
	for i := range out {
		out[i] = from + step*out[i]
	}
	return out, nil
}

// indexes returns 0..n-1 built by digit expansion.
func indexes(n int) []int {
	return digits.ExpandN(uint64(n), indexComposer{})
}

// indexComposer builds ascending index runs. Every container it produces is
// exactly 0..len-1, so shifting a copy by the length of what precedes it
// keeps the run contiguous.
type indexComposer struct{}

func (indexComposer) Unit(d digits.Digit) []int {
	out := make([]int, d)
	for i := range out {
		out[i] = i
	}
	return out
}

func (indexComposer) Repeat10(c []int) []int {
	out := make([]int, 0, 10*len(c))
	for k := range 10 {
		shift := k * len(c)
		for _, v := range c {
			out = append(out, v+shift)
		}
	}
	return out
}

func (indexComposer) Append(a, b []int) []int {
	out := make([]int, len(a), len(a)+len(b))
	copy(out, a)
	for _, v := range b {
		out = append(out, v+len(a))
	}
	return out
}
