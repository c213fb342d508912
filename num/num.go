// Package num holds the numeric primitives used across seqkit: divisor-signed
// modulo, decimal rounding, gcd, wheel-based primality and clamping.
package num

import (
	"cmp"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/charmingruby/seqkit/fault"
)

// Modulo returns a modulo b with the sign of b, unlike the truncating %
// operator which follows the sign of a. The result lies in [0, |b|) up to sign.
//
// Example:
//
//	Modulo(-4, 3) // 2
//	Modulo(4, -3) // -2
func Modulo[T constraints.Integer](a, b T) (T, error) {
	if b == 0 {
		return 0, fault.Domainf("modulo by zero")
	}
	r := a % b
	// Same as ((a % b) + b) % b without the intermediate overflow.
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r, nil
}

// ModuloFloat is Modulo over float64 using the truncating remainder of
// math.Mod. Non-finite operands and a zero divisor yield NaN and ErrDomain.
func ModuloFloat(a, b float64) (float64, error) {
	if !isFinite(a) || !isFinite(b) {
		return math.NaN(), fault.Domainf("modulo of non-finite operands %v, %v", a, b)
	}
	if b == 0 {
		return math.NaN(), fault.Domainf("modulo by zero")
	}
	return math.Mod(math.Mod(a, b)+b, b), nil
}

// RoundAt rounds value to the given decimal place, half up. A negative place
// rounds to tens, hundreds and so on.
//
// Example:
//
//	RoundAt(3.14159, 3) // 3.142
//	RoundAt(12345, -2)  // 12300
func RoundAt(value float64, place int) float64 {
	if place < 0 {
		factor := math.Pow10(-place)
		return math.Floor(value/factor+0.5) * factor
	}
	factor := math.Pow10(place)
	return math.Floor(value*factor+0.5) / factor
}

// GCD reduces values pairwise with gcd(a, b) = gcd(b, a mod b) and
// gcd(a, 0) = a. The result is never negative. At least one value is required.
func GCD[T constraints.Integer](values ...T) (T, error) {
	if len(values) == 0 {
		return 0, fault.InvalidArgumentf("gcd needs at least one value")
	}
	result := values[0]
	for _, v := range values[1:] {
		result = euclid(result, v)
	}
	if result < 0 {
		result = -result
	}
	return result, nil
}

func euclid[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Clamp bounds value into [lo, hi]. Reversed bounds are swapped first, so
// Clamp(10, 5, 0) behaves like Clamp(0, 5, 10).
func Clamp[T cmp.Ordered](lo, value, hi T) T {
	if lo > hi {
		lo, hi = hi, lo
	}
	return max(lo, min(value, hi))
}

// Factorial returns n!. Negative n is an invalid argument and n > 20 does not
// fit in a uint64.
func Factorial(n int) (uint64, error) {
	if n < 0 {
		return 0, fault.InvalidArgumentf("factorial of negative %d", n)
	}
	if n > 20 {
		return 0, fault.Rangef("factorial of %d overflows uint64", n)
	}
	result := uint64(1)
	for i := uint64(2); i <= uint64(n); i++ {
		result *= i
	}
	return result, nil
}

// InRangeUntil reports whether v is an integer with from <= v < to.
func InRangeUntil(v, from, to float64) bool {
	return isInteger(v) && from <= v && v < to
}

// InRangeThrough reports whether v is an integer with from <= v <= to.
func InRangeThrough(v, from, to float64) bool {
	return isInteger(v) && from <= v && v <= to
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func isInteger(f float64) bool {
	return isFinite(f) && f == math.Trunc(f)
}
