//go:build propagate

package parse

import "github.com/sublee/propagate"

type Variadic interface {
	propagate.Enum
	A(...int) propagate.Good // want `variant A cannot be variadic`
}

type Result interface {
	propagate.Enum
	A() int // want `result of variant A must be propagate\.Good or propagate\.Bad; got int`
}

type Foreign interface {
	propagate.Enum
	error // want `cannot embed error in enum Foreign; only interfaces declared in the same package can be embedded`
	A() propagate.Good
}

type Alias = interface { // want `enum Alias cannot be an alias`
	propagate.Enum
	A() propagate.Good
}

type Struct struct {
	propagate.Enum // want `propagate\.Enum can only be embedded in an interface; a struct cannot be an enum`
}

func local() {
	type Local interface { // want `enum must be declared as a package-level type`
		propagate.Enum
		A() propagate.Good
	}
	var _ Local
}

type base interface {
	A() propagate.Good
	B(int)
}

type Embedded interface {
	propagate.Enum
	base // ok
	C(string) propagate.Bad
}
