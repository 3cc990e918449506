//go:build propagate

package names

import "github.com/sublee/propagate"

func EA() {}

type E interface {
	propagate.Enum
	A() propagate.Good     // want `constructor EA of variant A conflicts with an existing name`
	String() propagate.Bad // want `variant String of E conflicts with a generated method`
	B(int) propagate.Bad   // ok
}
