package seq_test

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charmingruby/seqkit/fault"
	"github.com/charmingruby/seqkit/seq"
)

var errBoom = errors.New("boom")

// resource yields 0..n-1 and records how it was used.
type resource struct {
	n        int
	failAt   int
	closeErr error
	pulls    int
	releases int
}

func (r *resource) iter() seq.Iterator[int] {
	return seq.FromFunc(func() (int, bool, error) {
		if r.pulls >= r.n {
			return 0, false, nil
		}
		r.pulls++
		if r.pulls == r.failAt {
			return 0, false, errBoom
		}
		return r.pulls - 1, true, nil
	}, func() error {
		r.releases++
		return r.closeErr
	})
}

func TestTakeReleasesAfterLastValue(t *testing.T) {
	r := &resource{n: 10}
	got := seq.ToSlice(seq.Take(r.iter(), 2))
	assert.Equal(t, []int{0, 1}, got)
	assert.Equal(t, 2, r.pulls)
	assert.Equal(t, 1, r.releases)
}

func TestTakeZeroNeverPulls(t *testing.T) {
	r := &resource{n: 10}
	got := seq.ToSlice(seq.Take(r.iter(), 0))
	assert.Empty(t, got)
	assert.Zero(t, r.pulls)
	assert.Equal(t, 1, r.releases)
}

func TestTakeFromInfinite(t *testing.T) {
	assert.Equal(t, []string{"x", "x", "x"}, seq.ToSlice(seq.Take(seq.Repeat("x"), 3)))
	assert.Equal(t, []int{7, 7}, seq.ToSlice(seq.RepeatN(7, 2)))
	assert.Empty(t, seq.ToSlice(seq.RepeatN(7, -1)))

	r := &resource{n: math.MaxInt}
	assert.Equal(t, []int{0, 1, 2}, seq.ToSlice(seq.Take(r.iter(), 3)))
	assert.Equal(t, 1, r.releases)
}

func TestCloseBeforeFirstNext(t *testing.T) {
	r := &resource{n: 3}
	it := seq.MapIter(r.iter(), func(v int) int { return v * 2 })
	require.NoError(t, it.Close())
	require.NoError(t, it.Close())
	_, ok := it.Next()
	assert.False(t, ok)
	assert.Zero(t, r.pulls)
	assert.Equal(t, 1, r.releases)
}

func TestExhaustionReleasesOnce(t *testing.T) {
	r := &resource{n: 3}
	it := r.iter()
	assert.Equal(t, []int{0, 1, 2}, seq.ToSlice(it))
	_, ok := it.Next()
	assert.False(t, ok)
	require.NoError(t, it.Close())
	assert.Equal(t, 1, r.releases)
}

func TestPanicReleasesSource(t *testing.T) {
	r := &resource{n: 10}
	it := seq.MapIter(r.iter(), func(v int) int {
		if v == 3 {
			panic("bad value")
		}
		return v
	})
	assert.PanicsWithValue(t, "bad value", func() { seq.ToSlice(it) })
	assert.Equal(t, 1, r.releases)
	assert.Equal(t, 4, r.pulls)

	r = &resource{n: 10}
	filtered := seq.FilterIter(r.iter(), func(int) bool { panic("pred") })
	assert.Panics(t, func() { seq.First(filtered) })
	assert.Equal(t, 1, r.releases)
}

func TestSourceErrorSurfaces(t *testing.T) {
	r := &resource{n: 10, failAt: 3}
	got, err := seq.Collect(seq.MapIter(r.iter(), func(v int) int { return v + 1 }))
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, 1, r.releases)
}

func TestReleaseErrorSurfaces(t *testing.T) {
	r := &resource{n: 2, closeErr: errBoom}
	_, err := seq.Collect(r.iter())
	assert.ErrorIs(t, err, errBoom)

	r = &resource{n: 5, closeErr: errBoom}
	it := seq.Take(r.iter(), 1)
	assert.Equal(t, []int{0}, seq.ToSlice(it))
	assert.ErrorIs(t, it.Err(), errBoom)
}

func TestZipReleasesBoth(t *testing.T) {
	a := &resource{n: 2}
	b := &resource{n: 5}
	got := seq.ToSlice(seq.Zip(a.iter(), seq.MapIter(b.iter(), func(v int) string {
		return string(rune('a' + v))
	})))
	want := []seq.Pair[int, string]{{First: 0, Second: "a"}, {First: 1, Second: "b"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("zip mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1, a.releases)
	assert.Equal(t, 1, b.releases)
	assert.Equal(t, 2, b.pulls)
}

func TestZipN(t *testing.T) {
	got := seq.ToSlice(seq.ZipN(seq.Of(1, 2, 3), seq.Of(4, 5), seq.Repeat(0)))
	assert.Equal(t, [][]int{{1, 4, 0}, {2, 5, 0}}, got)
	assert.Empty(t, seq.ToSlice(seq.ZipN[int]()))
}

func TestFlatMapStartsInnerAfterPrevious(t *testing.T) {
	var events []string
	inner := func(id int) seq.Iterator[int] {
		started := false
		left := 2
		return seq.FromFunc(func() (int, bool, error) {
			if !started {
				started = true
				events = append(events, "start", string(rune('0'+id)))
			}
			if left == 0 {
				return 0, false, nil
			}
			left--
			return id, true, nil
		}, func() error {
			events = append(events, "release", string(rune('0'+id)))
			return nil
		})
	}
	got := seq.ToSlice(seq.FlatMapIter(seq.Of(1, 2, 3), inner))
	assert.Equal(t, []int{1, 1, 2, 2, 3, 3}, got)
	assert.Equal(t, []string{
		"start", "1", "release", "1",
		"start", "2", "release", "2",
		"start", "3", "release", "3",
	}, events)
}

func TestFlatMapCloseReleasesActiveInner(t *testing.T) {
	outer := &resource{n: 5}
	inners := []*resource{}
	it := seq.FlatMapIter(outer.iter(), func(int) seq.Iterator[int] {
		r := &resource{n: 3}
		inners = append(inners, r)
		return r.iter()
	})
	assert.Equal(t, []int{0, 1, 2, 0}, seq.ToSlice(seq.Take(it, 4)))
	require.Len(t, inners, 2)
	assert.Equal(t, 1, inners[0].releases)
	assert.Equal(t, 1, inners[1].releases)
	assert.Equal(t, 1, outer.releases)
}

func TestFlattenAndConcat(t *testing.T) {
	nested := seq.Of(seq.Of(1, 2), seq.Empty[int](), seq.Of(3))
	assert.Equal(t, []int{1, 2, 3}, seq.ToSlice(seq.Flatten(nested)))

	a := &resource{n: 3}
	b := &resource{n: 3}
	it := seq.Concat(a.iter(), b.iter())
	assert.Equal(t, 0, seq.First(it).GetOrElse(-1))
	assert.Equal(t, 1, a.releases)
	assert.Equal(t, 1, b.releases)
	assert.Zero(t, b.pulls)

	assert.Equal(t, []int{1, 2, 3, 4}, seq.ToSlice(seq.Concat(seq.Of(1, 2), seq.Of(3, 4))))
}

func TestDropAndWhile(t *testing.T) {
	assert.Equal(t, []int{3, 4}, seq.ToSlice(seq.Drop(seq.Range(0, 5), 3)))
	assert.Equal(t, []int{0, 1}, seq.ToSlice(seq.Drop(seq.Range(0, 2), -4)))
	assert.Empty(t, seq.ToSlice(seq.Drop(seq.Range(0, 2), 9)))

	lessThan := func(n int) func(int) bool { return func(v int) bool { return v < n } }
	assert.Equal(t, []int{0, 1, 2}, seq.ToSlice(seq.TakeWhile(seq.Iterate(0, inc), lessThan(3))))
	assert.Equal(t, []int{3, 4, 0}, seq.ToSlice(seq.DropWhile(seq.Of(1, 2, 3, 4, 0), lessThan(3))))

	r := &resource{n: 100}
	seq.ToSlice(seq.TakeWhile(r.iter(), lessThan(5)))
	assert.Equal(t, 6, r.pulls)
	assert.Equal(t, 1, r.releases)
}

func TestRanges(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2}, seq.ToSlice(seq.Range(0, 3)))
	assert.Equal(t, []int{3, 2, 1}, seq.ToSlice(seq.Range(3, 0)))
	assert.Empty(t, seq.ToSlice(seq.Range(4, 4)))
	assert.Equal(t, []int{4}, seq.ToSlice(seq.RangeThrough(4, 4)))
	assert.Equal(t, []int{-1, -2, -3}, seq.ToSlice(seq.RangeThrough(-1, -3)))
	assert.Equal(t, []int{math.MaxInt - 1, math.MaxInt}, seq.ToSlice(seq.RangeThrough(math.MaxInt-1, math.MaxInt)))
}

func TestWindow(t *testing.T) {
	assert.Equal(t, [][]int{{1, 2}, {2, 3}, {3, 4}}, seq.ToSlice(seq.Window(seq.Of(1, 2, 3, 4), 2)))
	assert.Empty(t, seq.ToSlice(seq.Window(seq.Of(1, 2, 3, 4), 5)))
	assert.Equal(t, [][]int{{}, {}, {}, {}}, seq.ToSlice(seq.Window(seq.Of(1, 2, 3), 0)))

	windows := seq.ToSlice(seq.Window(seq.Of(1, 2, 3), 2))
	windows[0][0] = 99
	assert.Equal(t, 2, windows[1][0])

	r := &resource{n: 3}
	_, err := seq.Collect(seq.Window(r.iter(), -1))
	assert.ErrorIs(t, err, fault.ErrRange)
	assert.Equal(t, 1, r.releases)
	assert.Zero(t, r.pulls)
}

func TestWindowOverInfinite(t *testing.T) {
	got := seq.ToSlice(seq.Take(seq.Window(seq.Iterate(1, inc), 3), 2))
	assert.Equal(t, [][]int{{1, 2, 3}, {2, 3, 4}}, got)
}

func TestChunk(t *testing.T) {
	assert.Equal(t, [][]int{{1, 2}, {3, 4}}, seq.ToSlice(seq.Chunk(seq.Of(1, 2, 3, 4, 5), 2)))
	_, err := seq.Collect(seq.Chunk(seq.Of(1), 0))
	assert.ErrorIs(t, err, fault.ErrRange)
}

func TestDistinct(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, seq.ToSlice(seq.Distinct(seq.Of(1, 2, 1, 3, 2))))
	byLen := seq.DistinctBy(seq.Of("a", "bb", "c", "dd", "eee"), func(s string) int { return len(s) })
	assert.Equal(t, []string{"a", "bb", "eee"}, seq.ToSlice(byLen))
}

func TestTerminals(t *testing.T) {
	assert.Equal(t, "Some(0)", seq.First(seq.Range(0, 10)).String())
	assert.True(t, seq.First(seq.Empty[int]()).IsNone())
	assert.Equal(t, 9, seq.Last(seq.Range(0, 10)).GetOrElse(-1))
	assert.Equal(t, 4, seq.Nth(seq.Iterate(0, inc), 4).GetOrElse(-1))
	assert.True(t, seq.Nth(seq.Range(0, 3), -1).IsNone())
	assert.Equal(t, 12, seq.Find(seq.Iterate(1, inc), func(v int) bool { return v%12 == 0 }).GetOrElse(-1))
	assert.Equal(t, 10, seq.Reduce(seq.Range(0, 5), func(a, b int) int { return a + b }).GetOrElse(-1))
	assert.True(t, seq.Reduce(seq.Empty[int](), func(a, b int) int { return a + b }).IsNone())
	assert.Equal(t, "abc", seq.Fold(seq.Of("a", "b", "c"), "", func(acc, s string) string { return acc + s }))
	assert.True(t, seq.Any(seq.Iterate(0, inc), func(v int) bool { return v > 100 }))
	assert.False(t, seq.Every(seq.Iterate(0, inc), func(v int) bool { return v < 100 }))
	assert.Equal(t, map[bool][]int{true: {0, 2}, false: {1, 3}}, seq.GroupBy(seq.Range(0, 4), func(v int) bool { return v%2 == 0 }))

	n, err := seq.Count(seq.Range(0, 7))
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	var seen []int
	require.NoError(t, seq.ForEach(seq.Tap(seq.Of(1, 2), func(v int) { seen = append(seen, -v) }), func(v int) {
		seen = append(seen, v)
	}))
	assert.Equal(t, []int{-1, 1, -2, 2}, seen)
}

func TestFirstReleases(t *testing.T) {
	r := &resource{n: 10}
	assert.Equal(t, 5, seq.Find(r.iter(), func(v int) bool { return v == 5 }).GetOrElse(-1))
	assert.Equal(t, 6, r.pulls)
	assert.Equal(t, 1, r.releases)
}

func TestFromSeqStopsProducer(t *testing.T) {
	stopped := false
	producer := func(yield func(int) bool) {
		defer func() { stopped = true }()
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	}
	assert.Equal(t, []int{0, 1, 2}, seq.ToSlice(seq.Take(seq.FromSeq(producer), 3)))
	assert.True(t, stopped)
}

func TestAllBreakCloses(t *testing.T) {
	r := &resource{n: 10}
	sum := 0
	for v := range seq.All(r.iter()) {
		if v == 3 {
			break
		}
		sum += v
	}
	assert.Equal(t, 3, sum)
	assert.Equal(t, 1, r.releases)
}

func TestZeroIterator(t *testing.T) {
	var it seq.Iterator[int]
	_, ok := it.Next()
	assert.False(t, ok)
	assert.NoError(t, it.Close())
	assert.NoError(t, it.Err())
}

func TestGenerate(t *testing.T) {
	n := 0
	got := seq.ToSlice(seq.Take(seq.Generate(func() int { n++; return n * n }), 4))
	assert.Equal(t, []int{1, 4, 9, 16}, got)
}

func inc(v int) int { return v + 1 }
