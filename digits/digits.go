// Package digits decomposes natural numbers into decimal digits and builds
// containers of exactly n elements by composing per-digit blocks, taking
// O(digits(n)) composition steps instead of n increments.
package digits

import (
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/charmingruby/seqkit/fault"
)

// Digit is a single decimal digit in [0, 9].
type Digit uint8

// String renders the digit as its ASCII character.
func (d Digit) String() string {
	return string(rune('0' + d))
}

// ToDigits returns the decimal digits of n, most significant first.
// ToDigits(0) is [0]. Negative values are rejected.
func ToDigits[T constraints.Integer](n T) ([]Digit, error) {
	if n < 0 {
		return nil, fault.InvalidArgumentf("digits of negative %d", n)
	}
	return fromDecimal(strconv.FormatUint(uint64(n), 10)), nil
}

func fromDecimal(s string) []Digit {
	ds := make([]Digit, len(s))
	for i := range len(s) {
		ds[i] = Digit(s[i] - '0')
	}
	return ds
}

// Join concatenates digits back into their decimal string.
func Join(ds []Digit) string {
	var b strings.Builder
	b.Grow(len(ds))
	for _, d := range ds {
		b.WriteByte(byte('0' + d))
	}
	return b.String()
}

// Value reassembles the digits into the number they represent. The second
// result is false when the value does not fit in a uint64 or a digit is out
// of range.
func Value(ds []Digit) (uint64, bool) {
	var v uint64
	for _, d := range ds {
		if d > 9 {
			return 0, false
		}
		if v > (^uint64(0)-uint64(d))/10 {
			return 0, false
		}
		v = v*10 + uint64(d)
	}
	return v, true
}
