//go:build propagate

package derive

import "github.com/sublee/propagate"

type Empty interface { // want `enum Empty has no variants`
	propagate.Enum
}

type Unmarked interface { // want `enum Unmarked must contain at least one propagate\.Good or propagate\.Bad variant`
	propagate.Enum
	A(int)
	B()
}

type Named interface {
	propagate.Enum
	Point(x, y int) propagate.Good // want `named struct cannot carry this attribute: variant Point of Named has named fields; remove the good marker or the field names`
	Blank(_ int) propagate.Bad     // want `named struct cannot carry this attribute: variant Blank of Named has named fields; remove the bad marker or the field names`
	Free(x int)                    // ok
}

type Wide interface {
	propagate.Enum
	A(int, int, int, int, int, int, int, int, int) propagate.Good // want `variant A of Wide has 9 fields; marked variants can have at most 8 fields`
	B(int, int, int, int, int, int, int, int) propagate.Bad       // ok
	C(int, int, int, int, int, int, int, int, int)                // ok
}
