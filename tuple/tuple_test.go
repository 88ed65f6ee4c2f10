package tuple

import (
	"testing"

	"github.com/go-quicktest/qt"
)

// seq returns the integers from lo to hi-1 as a non-nil slice.
func seq(lo, hi int) []any {
	s := make([]any, 0, hi-lo)
	for i := lo; i < hi; i++ {
		s = append(s, i)
	}
	return s
}

// checkSplit returns a function that checks the result of
// splitting a tuple holding the integers 0 through n-1 at k.
func checkSplit(t testing.TB, k, n int) func(l, r Tuple) {
	return func(l, r Tuple) {
		t.Helper()
		qt.Check(t, qt.Equals(l.Len(), k))
		qt.Check(t, qt.Equals(r.Len(), n-k))
		qt.Check(t, qt.DeepEquals(l.Values(), seq(0, k)))
		qt.Check(t, qt.DeepEquals(r.Values(), seq(k, n)))
	}
}

func TestJoinExample(t *testing.T) {
	j := Join_3_3(MkT3(1, 'b', 3.0), MkT3('a', 5, true))
	qt.Assert(t, qt.Equals(j, T6[int, rune, float64, rune, int, bool]{1, 'b', 3.0, 'a', 5, true}))
	qt.Assert(t, qt.Equals(j.Len(), 6))

	l, r := Split_3_3(j)
	qt.Assert(t, qt.Equals(l, MkT3(1, 'b', 3.0)))
	qt.Assert(t, qt.Equals(r, MkT3('a', 5, true)))

	qt.Assert(t, qt.Equals(j.At4(), 5))
}

func TestJoinEmpty(t *testing.T) {
	x := MkT3("x", 2, false)
	qt.Assert(t, qt.Equals(Join_0_3(MkT0(), x), x))
	qt.Assert(t, qt.Equals(Join_3_0(x, MkT0()), x))
	qt.Assert(t, qt.Equals(Join_0_0(MkT0(), MkT0()), MkT0()))
}

func TestJoinOrder(t *testing.T) {
	a, b := MkT1("a"), MkT1("b")
	qt.Assert(t, qt.Equals(Join_1_1(a, b), MkT2("a", "b")))
	qt.Assert(t, qt.Equals(Join_1_1(b, a), MkT2("b", "a")))
}

func TestJoinAssociative(t *testing.T) {
	a, b, c := MkT2(1, "one"), MkT1(2.0), MkT2('3', true)
	qt.Assert(t, qt.Equals(
		Join_3_2(Join_2_1(a, b), c),
		Join_2_3(a, Join_1_2(b, c)),
	))
}

func TestSplitBoundaries(t *testing.T) {
	x := MkT3("x", 2, false)

	l0, r0 := Split_0_3(x)
	qt.Assert(t, qt.Equals(l0, MkT0()))
	qt.Assert(t, qt.Equals(r0, x))

	l3, r3 := Split_3_0(x)
	qt.Assert(t, qt.Equals(l3, x))
	qt.Assert(t, qt.Equals(r3, MkT0()))

	e0, e1 := Split_0_0(MkT0())
	qt.Assert(t, qt.Equals(e0, MkT0()))
	qt.Assert(t, qt.Equals(e1, MkT0()))
}

func TestSplitJoinRoundTrip(t *testing.T) {
	a := MkT4(1, "two", 3.0, '4')
	b := MkT2([2]int{5, 6}, struct{ X int }{7})
	l, r := Split_4_2(Join_4_2(a, b))
	qt.Assert(t, qt.Equals(l, a))
	qt.Assert(t, qt.Equals(r, b))

	x := MkT5(0, "1", 2.0, '3', true)
	l0, r0 := Split_0_5(x)
	qt.Check(t, qt.Equals(Join_0_5(l0, r0), x))
	l1, r1 := Split_1_4(x)
	qt.Check(t, qt.Equals(Join_1_4(l1, r1), x))
	l2, r2 := Split_2_3(x)
	qt.Check(t, qt.Equals(Join_2_3(l2, r2), x))
	l3, r3 := Split_3_2(x)
	qt.Check(t, qt.Equals(Join_3_2(l3, r3), x))
	l4, r4 := Split_4_1(x)
	qt.Check(t, qt.Equals(Join_4_1(l4, r4), x))
	l5, r5 := Split_5_0(x)
	qt.Check(t, qt.Equals(Join_5_0(l5, r5), x))
}

func TestIndexLeavesTupleUnchanged(t *testing.T) {
	x := MkT3([]int{1, 2}, "s", 3)
	s := x.At0()
	s[0] = 100
	qt.Assert(t, qt.Equals(x.At1(), "s"))
	qt.Assert(t, qt.Equals(x.At2(), 3))
	// The slice header is copied; its backing array is shared.
	qt.Assert(t, qt.DeepEquals(x.A0, []int{100, 2}))

	y := MkT2(1, 2)
	v := y.At0()
	v++
	qt.Assert(t, qt.Equals(y, MkT2(1, 2)))
	qt.Assert(t, qt.Equals(v, 2))
}

func TestT(t *testing.T) {
	a, b, c := MkT3(1, "b", true).T()
	qt.Assert(t, qt.Equals(a, 1))
	qt.Assert(t, qt.Equals(b, "b"))
	qt.Assert(t, qt.Equals(c, true))
	qt.Assert(t, qt.Equals(MkT1(5).T(), 5))
}

func TestValues(t *testing.T) {
	qt.Assert(t, qt.IsNotNil(MkT0().Values()))
	qt.Assert(t, qt.HasLen(MkT0().Values(), 0))
	qt.Assert(t, qt.DeepEquals(MkT3(1, "b", true).Values(), []any{1, "b", true}))
}

func TestPtrs(t *testing.T) {
	a := MkT2(1, "a")
	b := MkT1(2.0)
	j := Join_2_1(Ptrs2(&a), Ptrs1(&b))
	*j.A0 = 10
	*j.A2 = 20.0
	qt.Assert(t, qt.Equals(a, MkT2(10, "a")))
	qt.Assert(t, qt.Equals(b, MkT1(20.0)))

	l, r := Split_1_1(Ptrs2(&a))
	*r.A0 = "z"
	qt.Assert(t, qt.Equals(*l.A0, 10))
	qt.Assert(t, qt.Equals(a.A1, "z"))

	var e T0
	qt.Assert(t, qt.Equals(Ptrs0(&e), MkT0()))
}

func TestMax(t *testing.T) {
	qt.Assert(t, qt.IsTrue(Max >= 16))
	qt.Assert(t, qt.Equals(MkT16(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15).Len(), 16))
}

func TestPtrsLongTuple(t *testing.T) {
	x := MkT16(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15)
	p := Ptrs16(&x)
	*p.A15 = 150
	l, r := Split_8_8(p)
	*l.A0 = -1
	qt.Assert(t, qt.Equals(*r.A7, 150))
	qt.Assert(t, qt.Equals(x.At0(), -1))
	qt.Assert(t, qt.Equals(x.At15(), 150))
}

func TestCheckSplitDetectsShortSuffix(t *testing.T) {
	var tb recordingTB
	checkSplit(&tb, 1, 3)(MkT1(0), MkT1(1))
	qt.Assert(t, qt.IsTrue(tb.failed))

	tb = recordingTB{}
	checkSplit(&tb, 1, 3)(MkT1(0), MkT2(1, 2))
	qt.Assert(t, qt.IsFalse(tb.failed))
}

// recordingTB records failures instead of reporting them.
type recordingTB struct {
	testing.TB
	failed bool
}

func (tb *recordingTB) Helper() {}
func (tb *recordingTB) Name() string { return "recording" }
func (tb *recordingTB) Log(...any) {}
func (tb *recordingTB) Logf(string, ...any) {}
func (tb *recordingTB) Error(...any) { tb.failed = true }
func (tb *recordingTB) Errorf(string, ...any) { tb.failed = true }
func (tb *recordingTB) Fatal(...any) { tb.failed = true }
func (tb *recordingTB) Fatalf(string, ...any) { tb.failed = true }
func (tb *recordingTB) Fail() { tb.failed = true }
func (tb *recordingTB) FailNow() { tb.failed = true }
func (tb *recordingTB) Failed() bool { return tb.failed }
