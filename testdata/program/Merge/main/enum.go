//go:build propagate

package main

import (
	"strings"

	"github.com/sublee/propagate"
)

type status interface {
	Done() propagate.Good
	Failed(string) propagate.Bad
}

// Job is the state of a job.
type Job interface {
	propagate.Enum
	Queued(int)
	status
}

func normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
