//go:build propagate

package main

import "github.com/sublee/propagate"

type Parsed interface {
	propagate.Enum
	Number(int) propagate.Good
	Invalid(string) propagate.Bad
}

type Clamped interface {
	propagate.Enum
	Within(int) propagate.Good
	Clipped(int) propagate.Bad
}
