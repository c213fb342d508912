package ranges

import (
	"math/rand/v2"

	"github.com/charmingruby/seqkit/fault"
)

// Random picks one of the range's values uniformly using the global source.
func Random(r Range) (int, error) {
	return RandomWith(nil, r)
}

// RandomWith picks one of the range's values uniformly from src, or from the
// global source when src is nil. An empty range fails with fault.ErrRange.
func RandomWith(src *rand.Rand, r Range) (int, error) {
	n, err := r.Len()
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, fault.Rangef("random value from empty range %s", r)
	}
	var i int
	if src == nil {
		i = rand.IntN(n)
	} else {
		i = src.IntN(n)
	}
	return r.At(i), nil
}

// RandomUntil picks from [0, to).
func RandomUntil(to int) (int, error) {
	return Random(Until(0, to))
}

// RandomThrough picks from [0, to].
func RandomThrough(to int) (int, error) {
	return Random(Through(0, to))
}
