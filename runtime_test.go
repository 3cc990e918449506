package propagate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sublee/propagate"
)

// reading mirrors the generated code of:
//
//	type reading interface {
//		propagate.Enum
//		Value(float64) propagate.Good
//		Range(float64, float64) propagate.Good
//		Offline() propagate.Bad
//		Calibrating(int)
//	}
type reading struct {
	variant     uint8
	value       float64
	range0      float64
	range1      float64
	calibrating int
}

func readingValue(v float64) reading      { return reading{variant: 0, value: v} }
func readingRange(v0, v1 float64) reading { return reading{variant: 1, range0: v0, range1: v1} }
func readingOffline() reading             { return reading{variant: 2} }
func readingCalibrating(v int) reading    { return reading{variant: 3, calibrating: v} }

func (e reading) String() string {
	return [...]string{"Value", "Range", "Offline", "Calibrating"}[e.variant]
}

func (e reading) Value() (float64, bool)          { return e.value, e.variant == 0 }
func (e reading) Range() (float64, float64, bool) { return e.range0, e.range1, e.variant == 1 }
func (e reading) Calibrating() (int, bool)        { return e.calibrating, e.variant == 3 }

func (e reading) VariantIndex() int { return int(e.variant) }
func (reading) GoodIndexes() string { return "\x03" }
func (reading) BadIndexes() string  { return "\x04" }

func (e reading) ExtractGood(target any) bool {
	switch target := target.(type) {
	case *float64:
		switch e.variant {
		case 0:
			*target = e.value
		default:
			return false
		}
	case *propagate.Tuple2[float64, float64]:
		switch e.variant {
		case 1:
			*target = propagate.Tuple2[float64, float64]{V0: e.range0, V1: e.range1}
		default:
			return false
		}
	default:
		panic(propagate.Unsupported("reading", "good", target))
	}
	return true
}

func (e *reading) ExtractGoodRef(target any) bool {
	switch target := target.(type) {
	case **float64:
		switch e.variant {
		case 0:
			*target = &e.value
		default:
			return false
		}
	case *propagate.Tuple2[*float64, *float64]:
		switch e.variant {
		case 1:
			*target = propagate.Tuple2[*float64, *float64]{V0: &e.range0, V1: &e.range1}
		default:
			return false
		}
	default:
		panic(propagate.Unsupported("reading", "good", target))
	}
	return true
}

func (e reading) ExtractBad(target any) bool {
	switch target := target.(type) {
	case *struct{}:
		switch e.variant {
		case 2:
			*target = struct{}{}
		default:
			return false
		}
	default:
		panic(propagate.Unsupported("reading", "bad", target))
	}
	return true
}

func (e *reading) ExtractBadRef(target any) bool {
	switch target := target.(type) {
	case **struct{}:
		switch e.variant {
		case 2:
			*target = propagate.UnitRef()
		default:
			return false
		}
	default:
		panic(propagate.Unsupported("reading", "bad", target))
	}
	return true
}

func (e *reading) ConstructGood(payload any) {
	switch payload := payload.(type) {
	case float64:
		*e = readingValue(payload)
	case propagate.Tuple2[float64, float64]:
		*e = readingRange(payload.V0, payload.V1)
	default:
		panic(propagate.Unsupported("reading", "good", payload))
	}
}

func (e *reading) ConstructBad(payload any) {
	switch payload := payload.(type) {
	case struct{}:
		*e = readingOffline()
	default:
		panic(propagate.Unsupported("reading", "bad", payload))
	}
}

// answer mirrors a two-state enum: Yes(int) is good and No(string) is bad.
type answer struct {
	variant uint8
	yes     int
	no      string
}

func (e answer) ExtractGood(target any) bool {
	switch target := target.(type) {
	case *int:
		if e.variant != 0 {
			return false
		}
		*target = e.yes
	default:
		panic(propagate.Unsupported("answer", "good", target))
	}
	return true
}

func (e answer) ExtractBad(target any) bool {
	switch target := target.(type) {
	case *string:
		if e.variant != 1 {
			return false
		}
		*target = e.no
	default:
		panic(propagate.Unsupported("answer", "bad", target))
	}
	return true
}

func (answer) ExactlyTwoDistinctVariants() {}

// liar claims two states but has a third variant which is neither.
type liar struct{ answer }

func (e liar) ExtractGood(target any) bool { return e.variant != 2 && e.answer.ExtractGood(target) }
func (e liar) ExtractBad(target any) bool  { return e.variant != 2 && e.answer.ExtractBad(target) }

func TestTakeGood(t *testing.T) {
	v, ok := propagate.TakeGood[float64](readingValue(1.5)).Get()
	assert.True(t, ok)
	assert.Equal(t, 1.5, v)

	r, ok := propagate.TakeGood[propagate.Tuple2[float64, float64]](readingRange(1, 2)).Get()
	assert.True(t, ok)
	lo, hi := r.Unpack()
	assert.Equal(t, 1.0, lo)
	assert.Equal(t, 2.0, hi)
}

func TestTakeFallback(t *testing.T) {
	tests := []reading{readingRange(1, 2), readingOffline(), readingCalibrating(3)}
	for _, e := range tests {
		t.Run(e.String(), func(t *testing.T) {
			out := propagate.TakeGood[float64](e)
			assert.False(t, out.IsKept())

			alt, ok := out.Alt()
			assert.True(t, ok)
			assert.Equal(t, e, alt)
		})
	}
}

func TestTakeBad(t *testing.T) {
	_, ok := propagate.TakeBad[struct{}](readingOffline()).Get()
	assert.True(t, ok)

	alt, ok := propagate.TakeBad[struct{}](readingValue(1)).Alt()
	assert.True(t, ok)
	assert.Equal(t, readingValue(1), alt)
}

func TestTakeRef(t *testing.T) {
	e := readingRange(1, 2)
	r, ok := propagate.TakeGoodRef[propagate.Tuple2[*float64, *float64]](&e).Get()
	require.True(t, ok)
	*r.V1 = 10

	lo, hi, ok := e.Range()
	assert.True(t, ok)
	assert.Equal(t, 1.0, lo)
	assert.Equal(t, 10.0, hi)

	// Fallback returns the same pointer.
	alt, ok := propagate.TakeGoodRef[*float64](&e).Alt()
	assert.True(t, ok)
	assert.Same(t, &e, alt)

	offline := readingOffline()
	unit, ok := propagate.TakeBadRef[*struct{}](&offline).Get()
	assert.True(t, ok)
	assert.Same(t, propagate.UnitRef(), unit)
}

func TestTakeUnsupported(t *testing.T) {
	assert.PanicsWithError(t, "propagate: reading has no good variant for *string", func() {
		propagate.TakeGood[string](readingValue(1))
	})
}

func TestFromGoodAndBad(t *testing.T) {
	value := readingValue(3)
	v, ok := propagate.TakeGood[float64](value).Get()
	require.True(t, ok)
	assert.Equal(t, value, propagate.FromGood[reading](v))

	rng := readingRange(4, 5)
	r, ok := propagate.TakeGood[propagate.Tuple2[float64, float64]](rng).Get()
	require.True(t, ok)
	assert.Equal(t, rng, propagate.FromGood[reading](r))
	assert.Equal(t, rng, propagate.FromGood[reading](propagate.NewTuple2(4.0, 5.0)))

	assert.Equal(t, readingOffline(), propagate.FromBad[reading](struct{}{}))
	assert.Panics(t, func() { propagate.FromBad[reading](42) })
}

func TestClassified(t *testing.T) {
	tests := []struct {
		e         reading
		good, bad bool
	}{
		{readingValue(1), true, false},
		{readingRange(1, 2), true, false},
		{readingOffline(), false, true},
		{readingCalibrating(1), false, false},
	}
	for _, tt := range tests {
		t.Run(tt.e.String(), func(t *testing.T) {
			assert.Equal(t, tt.good, propagate.IsGood(tt.e))
			assert.Equal(t, tt.bad, propagate.IsBad(tt.e))
		})
	}
}

func TestBit(t *testing.T) {
	table := "\x05\x80"
	want := []bool{true, false, true, false, false, false, false, false, false, false, false, false, false, false, false, true}
	for i, bit := range want {
		assert.Equal(t, bit, propagate.Bit(table, i), "bit %d", i)
	}
}

func TestTwoStates(t *testing.T) {
	n, ok := propagate.TwoStates[int, string](answer{variant: 0, yes: 42}).Get()
	assert.True(t, ok)
	assert.Equal(t, 42, n)

	s, ok := propagate.TwoStates[int, string](answer{variant: 1, no: "nope"}).Alt()
	assert.True(t, ok)
	assert.Equal(t, "nope", s)
}

func TestTwoStatesPanics(t *testing.T) {
	assert.PanicsWithValue(t, "propagate: encountered a non-binary variant for type propagate_test.liar; this should never happen", func() {
		propagate.TwoStates[int, string](liar{answer{variant: 2}})
	})
}

// same is a two-state enum whose good and bad variants both carry int.
type same struct {
	variant uint8
	v       int
}

func (e same) ExtractGood(target any) bool {
	if e.variant != 0 {
		return false
	}
	*target.(*int) = e.v
	return true
}

func (e same) ExtractBad(target any) bool {
	if e.variant != 1 {
		return false
	}
	*target.(*int) = e.v
	return true
}

func (same) ExactlyTwoDistinctVariants() {}

func TestInner(t *testing.T) {
	assert.Equal(t, 1, propagate.Inner[int](same{variant: 0, v: 1}))
	assert.Equal(t, 2, propagate.Inner[int](same{variant: 1, v: 2}))
}

func TestOutcome(t *testing.T) {
	kept := propagate.Keep[int, string](1)
	assert.True(t, kept.IsKept())
	assert.Equal(t, 1, kept.Or(2))
	assert.Equal(t, 1, kept.OrElse(func(string) int { return 3 }))
	_, ok := kept.Alt()
	assert.False(t, ok)

	alt := propagate.Alternate[int]("x")
	assert.False(t, alt.IsKept())
	assert.Equal(t, 2, alt.Or(2))
	assert.Equal(t, 3, alt.OrElse(func(s string) int { return len(s) + 2 }))
	_, ok = alt.Get()
	assert.False(t, ok)
}

func TestTuple(t *testing.T) {
	a, b, c := propagate.NewTuple3(1, "two", 3.0).Unpack()
	assert.Equal(t, 1, a)
	assert.Equal(t, "two", b)
	assert.Equal(t, 3.0, c)

	tup := propagate.NewTuple8(0, 1, 2, 3, 4, 5, 6, 7)
	assert.Equal(t, 7, tup.V7)
}
