//go:build propagate

package main

import "github.com/sublee/propagate"

type Size interface {
	propagate.Enum
	TooSmall(uint32) propagate.Bad
	Small(uint32)
	Large(uint32)
	TooLarge(uint32) propagate.Bad
	Empty() propagate.Good
}
