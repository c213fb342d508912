package num

import (
	"math"

	"golang.org/x/exp/constraints"
)

// wheel holds the gaps between consecutive integers coprime to 2*3*5*7,
// starting from 11. One full turn advances by 210.
var wheel = [48]uint64{
	2, 4, 2, 4, 6, 2, 6, 4, 2, 4, 6, 6, 2, 6, 4, 2, 6, 4, 6, 8, 4, 2, 4, 2,
	4, 8, 6, 4, 6, 2, 4, 6, 2, 6, 6, 4, 2, 4, 6, 2, 6, 4, 2, 4, 2, 10, 2, 10,
}

var basePrimes = [...]uint64{2, 3, 5, 7}

// maxExactInteger is 2^53. Every float64 at or above it is an even integer.
const maxExactInteger = 1 << 53

// Wheel returns a copy of the 2-3-5-7 wheel increments used by IsPrime.
func Wheel() []uint64 {
	out := make([]uint64, len(wheel))
	copy(out, wheel[:])
	return out
}

// IsPrime reports whether n is a prime number. NaN, infinities, non-integers
// and values <= 1 are not prime.
func IsPrime(n float64) bool {
	if n <= 1 || !isInteger(n) {
		return false
	}
	if n >= maxExactInteger {
		return false
	}
	return isPrime(uint64(n))
}

// IsPrimeInt is IsPrime for integer types.
func IsPrimeInt[T constraints.Integer](n T) bool {
	if n <= 1 {
		return false
	}
	return isPrime(uint64(n))
}

func isPrime(n uint64) bool {
	for _, p := range basePrimes {
		if n == p {
			return true
		}
	}
	for _, p := range basePrimes {
		if n%p == 0 {
			return false
		}
	}
	limit := uint64(math.Sqrt(float64(n))) + 1
	i := uint64(11)
	for c := 0; i < limit; c++ {
		if n%i == 0 {
			return false
		}
		i += wheel[c%len(wheel)]
	}
	return true
}
