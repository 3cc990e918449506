//go:build propagate

package main

import "github.com/sublee/propagate"

type Shape interface {
	propagate.Enum
	Rect(int, int) propagate.Good
	Square(int) propagate.Good
	Box(int, int) propagate.Good
	Circle(radius int)
	Nothing() propagate.Bad
}
