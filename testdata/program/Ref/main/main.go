package main

import (
	"fmt"

	"github.com/sublee/propagate"
)

func main() {
	c := CounterRunning(1)
	if n, ok := propagate.TakeGoodRef[*int](&c).Get(); ok {
		*n += 41
	}
	fmt.Println(c.Running())

	p := CounterPaused(3, "lunch")
	if t, ok := propagate.TakeBadRef[propagate.Tuple2[*int, *string]](&p).Get(); ok {
		*t.V0 *= 2
		*t.V1 = "coffee"
	}
	fmt.Println(p.Paused())

	s := CounterStopped()
	unit, ok := propagate.TakeBadRef[*struct{}](&s).Get()
	fmt.Println(unit != nil, ok)

	// A good running counter has no bad payload.
	_, ok = propagate.TakeBadRef[*struct{}](&c).Get()
	fmt.Println(ok)
}
