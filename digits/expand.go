package digits

// Composer knows how to build containers of a given element type C for
// Expand. Implementations decide what an element is; Expand only relies on
// sizes.
type Composer[C any] interface {
	// Unit builds a container of exactly d elements.
	Unit(d Digit) C
	// Repeat10 concatenates ten copies of c.
	Repeat10(c C) C
	// Append returns a followed by b.
	Append(a, b C) C
}

// Expand builds a container holding exactly the number represented by ds
// elements. For ds = prefix ++ [last] the result is
//
//	Append(Unit(last), Repeat10(Expand(prefix)))
//
// where prefix represents floor(n/10), and the empty sequence expands to
// Unit(0). One recursive step is taken per digit.
func Expand[C any](ds []Digit, c Composer[C]) C {
	if len(ds) == 0 {
		return c.Unit(0)
	}
	last := ds[len(ds)-1]
	rest := Expand(ds[:len(ds)-1], c)
	return c.Append(c.Unit(last), c.Repeat10(rest))
}

// ExpandN is Expand over the digits of n.
func ExpandN[C any](n uint64, c Composer[C]) C {
	ds, _ := ToDigits(n)
	return Expand(ds, c)
}

// ComposerFuncs adapts plain functions to a Composer.
type ComposerFuncs[C any] struct {
	UnitFunc     func(d Digit) C
	Repeat10Func func(c C) C
	AppendFunc   func(a, b C) C
}

// Unit implements Composer.
func (f ComposerFuncs[C]) Unit(d Digit) C { return f.UnitFunc(d) }

// Repeat10 implements Composer.
func (f ComposerFuncs[C]) Repeat10(c C) C { return f.Repeat10Func(c) }

// Append implements Composer.
func (f ComposerFuncs[C]) Append(a, b C) C { return f.AppendFunc(a, b) }

// Count is a Composer over plain sizes. Expand(ds, Count{}) returns the value
// of ds, which makes it handy to check a decomposition without allocating.
type Count struct{}

// Unit implements Composer.
func (Count) Unit(d Digit) uint64 { return uint64(d) }

// Repeat10 implements Composer.
func (Count) Repeat10(c uint64) uint64 { return c * 10 }

// Append implements Composer.
func (Count) Append(a, b uint64) uint64 { return a + b }
