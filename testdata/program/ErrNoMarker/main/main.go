//go:build propagate

package main

import "github.com/sublee/propagate"

type Color interface {
	propagate.Enum
	Red()
	Green()
	Blue()
}

type Shade interface {
	propagate.Enum
	Light(uint8) propagate.Good
	Dark(level uint8) propagate.Bad
}

func main() {
	panic("propagate will fail")
}
