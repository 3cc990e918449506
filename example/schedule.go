//go:build propagate

package main

import (
	"time"

	"github.com/sublee/propagate"
)

// Schedule is a parsed job schedule.
type Schedule interface {
	propagate.Enum
	Every(time.Duration) propagate.Good
	Once() propagate.Good
	Malformed(string, int) propagate.Bad
	Paused(reason string)
}
