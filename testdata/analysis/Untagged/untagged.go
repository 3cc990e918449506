package untagged

import "github.com/sublee/propagate"

type E interface { // want `file must have "//go:build propagate" constraint when declaring enum E`
	propagate.Enum
	A() propagate.Good
}
