//go:build propagate

package main

import "github.com/sublee/propagate"

type Counter interface {
	propagate.Enum
	Running(int) propagate.Good
	Paused(int, string) propagate.Bad
	Stopped() propagate.Bad
}
