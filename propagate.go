// Package propagate derives good/bad extraction for user-defined sum types.
//
// Go has no sum types, but an interface whose methods are variants is a
// precise declaration of one. Propagate reads such a declaration and
// generates a concrete tagged type with constructors, accessors, and
// extractors for the variants marked as good or bad outcomes. It generalizes
// comma-ok and error short-circuiting to arbitrary enums.
//
// To start with Propagate, add a build constraint to files declaring enums:
//
//	//go:build propagate
//
// An enum is an interface embedding [Enum]. Each method is a variant, in
// declaration order. Its parameters are the variant fields. Its results are
// the markers: [Good], [Bad], or both:
//
//	// source:
//	type Size interface {
//		propagate.Enum
//		TooSmall(uint32) propagate.Bad
//		Small(uint32)
//		Large(uint32)
//		TooLarge(uint32) propagate.Bad
//		Empty() propagate.Good
//	}
//
// After declaring enums, run the propagate command. It will generate
// propagate_gen.go for your package:
//
//	go run github.com/sublee/propagate/cmd/propagate
//
// The generated Size is a struct. Values are built with constructors like
// SizeTooSmall(7), and read back with accessors like size.TooSmall().
//
// # Extraction
//
// Marked variants are grouped by payload type. Variants in one group share an
// extractor, so TooSmall and TooLarge above both yield a uint32 bad payload:
//
//	n, ok := propagate.TakeBad[uint32](size).Get()
//	if !ok {
//		// size is Small, Large, or Empty
//	}
//
// A single field is the payload itself. Several fields are grouped into a
// [Tuple2] ... [Tuple8]. A variant without fields has the struct{} payload.
// [TakeGoodRef] and [TakeBadRef] extract pointers into the enum instead of
// copies.
//
// A variant with one field of a literal tuple type like Tuple2[int, int]
// cannot be told apart from a variant with two int fields. Such a pair in the
// same outcome is rejected at generation time.
//
// # Two states
//
// An enum with exactly one good and one bad variant and nothing else behaves
// like a binary result. [TwoStates] collapses it into an [Outcome] of both
// payloads.
package propagate

import (
	"fmt"
)

// Enum marks an interface as an enum declaration. Embed it in an interface
// in a file constrained by "//go:build propagate".
type Enum interface{ propagateEnum() }

// Good marks a variant as a good outcome. Use it as a result type of the
// variant method.
type Good struct{}

// Bad marks a variant as a bad outcome. Use it as a result type of the
// variant method.
type Bad struct{}

// GoodExtractor is implemented by generated enums. ExtractGood stores the
// good payload into target, which must be a pointer to the payload type. It
// reports false and leaves target untouched when the value is not one of the
// good variants carrying that payload.
type GoodExtractor interface{ ExtractGood(target any) bool }

// BadExtractor is the bad counterpart of [GoodExtractor].
type BadExtractor interface{ ExtractBad(target any) bool }

// GoodRefExtractor is implemented by pointers to generated enums. The payload
// refers to the fields of the enum instead of copying them.
type GoodRefExtractor interface{ ExtractGoodRef(target any) bool }

// BadRefExtractor is the bad counterpart of [GoodRefExtractor].
type BadRefExtractor interface{ ExtractBadRef(target any) bool }

// GoodConstructor is implemented by pointers to generated enums which have a
// good variant that is the only one carrying its payload type.
type GoodConstructor interface{ ConstructGood(payload any) }

// BadConstructor is the bad counterpart of [GoodConstructor].
type BadConstructor interface{ ConstructBad(payload any) }

// Classified is implemented by generated enums. The indexes are bit-packed
// tables in variant declaration order, least significant bit first.
type Classified interface {
	VariantIndex() int
	GoodIndexes() string
	BadIndexes() string
}

// ExactlyTwoDistinctVariants is implemented by generated enums that have
// exactly one good and one bad variant and no other variants.
//
// Implementing it by hand on a type that does not satisfy the condition makes
// [TwoStates] panic.
type ExactlyTwoDistinctVariants interface{ ExactlyTwoDistinctVariants() }

// TakeGood extracts the good payload of type T from e. The outcome keeps the
// payload if e is a good variant carrying T. Otherwise the alternate is e
// itself.
func TakeGood[T any, E GoodExtractor](e E) Outcome[T, E] {
	var payload T
	if e.ExtractGood(&payload) {
		return Keep[T, E](payload)
	}
	return Alternate[T](e)
}

// TakeBad extracts the bad payload of type T from e. The outcome keeps the
// payload if e is a bad variant carrying T. Otherwise the alternate is e
// itself.
func TakeBad[T any, E BadExtractor](e E) Outcome[T, E] {
	var payload T
	if e.ExtractBad(&payload) {
		return Keep[T, E](payload)
	}
	return Alternate[T](e)
}

// TakeGoodRef is like [TakeGood] but T refers to the fields of *e, such as
// *int for a single int field or Tuple2[*int, *string] for two fields.
func TakeGoodRef[T any, P GoodRefExtractor](p P) Outcome[T, P] {
	var payload T
	if p.ExtractGoodRef(&payload) {
		return Keep[T, P](payload)
	}
	return Alternate[T](p)
}

// TakeBadRef is like [TakeBad] but T refers to the fields of *e.
func TakeBadRef[T any, P BadRefExtractor](p P) Outcome[T, P] {
	var payload T
	if p.ExtractBadRef(&payload) {
		return Keep[T, P](payload)
	}
	return Alternate[T](p)
}

// FromGood builds an E from a good payload. The payload type must belong to
// exactly one good variant of E.
//
//	size := propagate.FromGood[Size](struct{}{})
func FromGood[E any, T any, P interface {
	*E
	GoodConstructor
}](payload T) E {
	var e E
	P(&e).ConstructGood(payload)
	return e
}

// FromBad builds an E from a bad payload. The payload type must belong to
// exactly one bad variant of E.
func FromBad[E any, T any, P interface {
	*E
	BadConstructor
}](payload T) E {
	var e E
	P(&e).ConstructBad(payload)
	return e
}

// IsGood reports whether e is one of the good variants.
func IsGood(e Classified) bool {
	return Bit(e.GoodIndexes(), e.VariantIndex())
}

// IsBad reports whether e is one of the bad variants.
func IsBad(e Classified) bool {
	return Bit(e.BadIndexes(), e.VariantIndex())
}

// Bit reports the i-th bit of a packed table. Bit i lives in byte i/8 at
// position i%8 counted from the least significant bit.
func Bit(table string, i int) bool {
	return table[i>>3]>>(i&7)&1 != 0
}

// TwoStates collapses a two-state enum into an outcome which keeps the good
// payload or holds the bad payload as the alternate.
func TwoStates[G, B any, E interface {
	GoodExtractor
	BadExtractor
	ExactlyTwoDistinctVariants
}](e E) Outcome[G, B] {
	var good G
	if e.ExtractGood(&good) {
		return Keep[G, B](good)
	}
	var bad B
	if e.ExtractBad(&bad) {
		return Alternate[G](bad)
	}
	panic(fmt.Sprintf("propagate: encountered a non-binary variant for type %T; this should never happen", e))
}

// Inner returns the payload of a two-state enum whose good and bad variants
// carry the same type.
func Inner[T any, E interface {
	GoodExtractor
	BadExtractor
	ExactlyTwoDistinctVariants
}](e E) T {
	return TwoStates[T, T](e).OrElse(func(bad T) T { return bad })
}

var unit struct{}

// UnitRef returns a static struct{} pointer. Generated code uses it as the
// borrowed payload of variants without fields.
func UnitRef() *struct{} { return &unit }

// UnsupportedError is the panic value of a generated extractor or constructor
// called with a payload type the enum does not carry.
type UnsupportedError struct {
	Enum    string
	Outcome string
	Type    string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("propagate: %s has no %s variant for %s", e.Enum, e.Outcome, e.Type)
}

// Unsupported creates an [UnsupportedError] for the given target or payload.
// It is called by generated code.
func Unsupported(enum, outcome string, v any) *UnsupportedError {
	return &UnsupportedError{Enum: enum, Outcome: outcome, Type: fmt.Sprintf("%T", v)}
}
