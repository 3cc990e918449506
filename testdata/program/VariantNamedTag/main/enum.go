//go:build propagate

package main

import "github.com/sublee/propagate"

type Odd interface {
	propagate.Enum
	variant(int) propagate.Good
	other() propagate.Bad
}
