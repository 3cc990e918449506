package main

import (
	"fmt"

	"github.com/sublee/propagate"
)

func main() {
	jobs := []Job{JobQueued(3), JobDone(), JobFailed("  disk full ")}
	for _, job := range jobs {
		reason, failed := job.Failed()
		fmt.Printf("%d %s %q %t %t\n", job.VariantIndex(), job, normalize(reason), failed, propagate.IsGood(job))
	}

	// The zero value is the first variant.
	var zero Job
	fmt.Println(zero)
}
