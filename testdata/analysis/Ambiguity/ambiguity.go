//go:build propagate

package ambiguity

import "github.com/sublee/propagate"

type Pos interface {
	propagate.Enum
	Pair(int32, int32) propagate.Bad
	Tuple(propagate.Tuple2[int32, int32]) propagate.Bad // want `types \(int32, int32\) of Pair and propagate\.Tuple2\[int32, int32\] of Tuple are ambiguous in bad variants of Pos`
}

type Unit interface {
	propagate.Enum
	Empty() propagate.Good
	Nothing(struct{}) propagate.Good // want `types \(\) of Empty and struct\{\} of Nothing are ambiguous in good variants of Unit`
}

// Good variants are checked first.
type Both interface {
	propagate.Enum
	BadPair(int, int) propagate.Bad
	BadTuple(propagate.Tuple2[int, int]) propagate.Bad // ok
	GoodTuple(propagate.Tuple2[int, int]) propagate.Good
	GoodPair(int, int) propagate.Good // want `types \(int, int\) of GoodPair and propagate\.Tuple2\[int, int\] of GoodTuple are ambiguous in good variants of Both`
}

type Apart interface {
	propagate.Enum
	Pair(int32, int32) propagate.Good                   // ok
	Tuple(propagate.Tuple2[int32, int32]) propagate.Bad // ok
}

type myInt = int

type Aliased interface {
	propagate.Enum
	A(int) propagate.Good
	B(myInt) propagate.Good
	C(myInt, int) propagate.Bad
	D(int, myInt) propagate.Bad
}
