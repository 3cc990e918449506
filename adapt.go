package propagate

// The adapters below give the common binary results of Go the same surface
// as generated two-state enums, so [TakeGood], [TakeBad], [TwoStates], [IsGood]
// and [IsBad] work on them directly.

// Tables of two-state values: variant 0 is good and variant 1 is bad.
const (
	goodFirst = "\x01"
	badSecond = "\x02"
)

// Result adapts the results of a function returning a value and an error. It
// is good with the value if the error is nil, and bad with the error
// otherwise.
type Result[T any] struct {
	value T
	err   error
}

// Try wraps a value and an error into a [Result].
//
//	n, ok := propagate.TakeGood[int](propagate.Try(strconv.Atoi(s))).Get()
func Try[T any](value T, err error) Result[T] {
	return Result[T]{value: value, err: err}
}

// Unwrap returns the value and the error.
func (r Result[T]) Unwrap() (T, error) { return r.value, r.err }

// ExtractGood implements [GoodExtractor].
func (r Result[T]) ExtractGood(target any) bool {
	switch target := target.(type) {
	case *T:
		if r.err != nil {
			return false
		}
		*target = r.value
	default:
		panic(Unsupported("Result", "good", target))
	}
	return true
}

// ExtractBad implements [BadExtractor].
func (r Result[T]) ExtractBad(target any) bool {
	switch target := target.(type) {
	case *error:
		if r.err == nil {
			return false
		}
		*target = r.err
	default:
		panic(Unsupported("Result", "bad", target))
	}
	return true
}

// ExtractGoodRef implements [GoodRefExtractor].
func (r *Result[T]) ExtractGoodRef(target any) bool {
	switch target := target.(type) {
	case **T:
		if r.err != nil {
			return false
		}
		*target = &r.value
	default:
		panic(Unsupported("Result", "good", target))
	}
	return true
}

// ExtractBadRef implements [BadRefExtractor].
func (r *Result[T]) ExtractBadRef(target any) bool {
	switch target := target.(type) {
	case **error:
		if r.err == nil {
			return false
		}
		*target = &r.err
	default:
		panic(Unsupported("Result", "bad", target))
	}
	return true
}

// ConstructGood implements [GoodConstructor].
func (r *Result[T]) ConstructGood(payload any) {
	switch payload := payload.(type) {
	case T:
		*r = Result[T]{value: payload}
	default:
		panic(Unsupported("Result", "good", payload))
	}
}

// ConstructBad implements [BadConstructor]. The payload must be a non-nil
// error.
func (r *Result[T]) ConstructBad(payload any) {
	switch payload := payload.(type) {
	case error:
		*r = Result[T]{err: payload}
	default:
		panic(Unsupported("Result", "bad", payload))
	}
}

func (r Result[T]) VariantIndex() int {
	if r.err != nil {
		return 1
	}
	return 0
}

func (Result[T]) GoodIndexes() string         { return goodFirst }
func (Result[T]) BadIndexes() string          { return badSecond }
func (Result[T]) ExactlyTwoDistinctVariants() {}

// Option adapts comma-ok results. It is good with the value if ok, and bad
// with no payload otherwise.
type Option[T any] struct {
	value T
	ok    bool
}

// Maybe wraps a comma-ok pair into an [Option].
//
//	v, ok := os.LookupEnv("HOME")
//	home := propagate.TwoStates[string, struct{}](propagate.Maybe(v, ok)).Or("/")
func Maybe[T any](value T, ok bool) Option[T] {
	return Option[T]{value: value, ok: ok}
}

// Some returns a good [Option] of the value.
func Some[T any](value T) Option[T] { return Option[T]{value: value, ok: true} }

// None returns a bad [Option].
func None[T any]() Option[T] { return Option[T]{} }

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) { return o.value, o.ok }

// ExtractGood implements [GoodExtractor].
func (o Option[T]) ExtractGood(target any) bool {
	switch target := target.(type) {
	case *T:
		if !o.ok {
			return false
		}
		*target = o.value
	default:
		panic(Unsupported("Option", "good", target))
	}
	return true
}

// ExtractBad implements [BadExtractor].
func (o Option[T]) ExtractBad(target any) bool {
	switch target := target.(type) {
	case *struct{}:
		if o.ok {
			return false
		}
		*target = struct{}{}
	default:
		panic(Unsupported("Option", "bad", target))
	}
	return true
}

// ExtractGoodRef implements [GoodRefExtractor].
func (o *Option[T]) ExtractGoodRef(target any) bool {
	switch target := target.(type) {
	case **T:
		if !o.ok {
			return false
		}
		*target = &o.value
	default:
		panic(Unsupported("Option", "good", target))
	}
	return true
}

// ExtractBadRef implements [BadRefExtractor].
func (o *Option[T]) ExtractBadRef(target any) bool {
	switch target := target.(type) {
	case **struct{}:
		if o.ok {
			return false
		}
		*target = UnitRef()
	default:
		panic(Unsupported("Option", "bad", target))
	}
	return true
}

// ConstructGood implements [GoodConstructor].
func (o *Option[T]) ConstructGood(payload any) {
	switch payload := payload.(type) {
	case T:
		*o = Some(payload)
	default:
		panic(Unsupported("Option", "good", payload))
	}
}

// ConstructBad implements [BadConstructor].
func (o *Option[T]) ConstructBad(payload any) {
	switch payload := payload.(type) {
	case struct{}:
		*o = None[T]()
	default:
		panic(Unsupported("Option", "bad", payload))
	}
}

func (o Option[T]) VariantIndex() int {
	if o.ok {
		return 0
	}
	return 1
}

func (Option[T]) GoodIndexes() string         { return goodFirst }
func (Option[T]) BadIndexes() string          { return badSecond }
func (Option[T]) ExactlyTwoDistinctVariants() {}

// Bool is good if true and bad if false. Both outcomes carry the bool itself.
type Bool bool

// ExtractGood implements [GoodExtractor].
func (b Bool) ExtractGood(target any) bool {
	switch target := target.(type) {
	case *bool:
		if !b {
			return false
		}
		*target = bool(b)
	default:
		panic(Unsupported("Bool", "good", target))
	}
	return true
}

// ExtractBad implements [BadExtractor].
func (b Bool) ExtractBad(target any) bool {
	switch target := target.(type) {
	case *bool:
		if b {
			return false
		}
		*target = bool(b)
	default:
		panic(Unsupported("Bool", "bad", target))
	}
	return true
}

func (b Bool) VariantIndex() int {
	if b {
		return 0
	}
	return 1
}

func (Bool) GoodIndexes() string         { return goodFirst }
func (Bool) BadIndexes() string          { return badSecond }
func (Bool) ExactlyTwoDistinctVariants() {}

// Integer is the constraint of [Int].
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Int is good if non-zero and bad if zero. Both outcomes carry the integer
// itself.
type Int[N Integer] struct{ n N }

// IntOf wraps an integer into an [Int].
//
//	if n, ok := propagate.TakeGood[int](propagate.IntOf(copied)).Get(); ok {
//		log.Printf("copied %d bytes", n)
//	}
func IntOf[N Integer](n N) Int[N] { return Int[N]{n} }

// ExtractGood implements [GoodExtractor].
func (i Int[N]) ExtractGood(target any) bool {
	switch target := target.(type) {
	case *N:
		if i.n == 0 {
			return false
		}
		*target = i.n
	default:
		panic(Unsupported("Int", "good", target))
	}
	return true
}

// ExtractBad implements [BadExtractor].
func (i Int[N]) ExtractBad(target any) bool {
	switch target := target.(type) {
	case *N:
		if i.n != 0 {
			return false
		}
		*target = i.n
	default:
		panic(Unsupported("Int", "bad", target))
	}
	return true
}

func (i Int[N]) VariantIndex() int {
	if i.n != 0 {
		return 0
	}
	return 1
}

func (Int[N]) GoodIndexes() string         { return goodFirst }
func (Int[N]) BadIndexes() string          { return badSecond }
func (Int[N]) ExactlyTwoDistinctVariants() {}
