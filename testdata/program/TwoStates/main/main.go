package main

import (
	"fmt"
	"strconv"

	"github.com/sublee/propagate"
)

func parse(s string) Parsed {
	n, err := strconv.Atoi(s)
	if err != nil {
		return propagate.FromBad[Parsed](s)
	}
	return propagate.FromGood[Parsed](n)
}

func clamp(n int) Clamped {
	if n > 10 {
		return ClampedClipped(10)
	}
	return ClampedWithin(n)
}

func main() {
	for _, s := range []string{"42", "forty-two"} {
		outcome := propagate.TwoStates[int, string](parse(s))
		n, ok := outcome.Get()
		bad, isBad := outcome.Alt()
		fmt.Println(n, ok, bad, isBad, outcome.Or(-1))
	}

	fmt.Println(propagate.Inner[int](clamp(3)), propagate.Inner[int](clamp(30)))

	doubled := propagate.TwoStates[int, string](parse("oops")).OrElse(func(s string) int { return len(s) * 2 })
	fmt.Println(doubled)
}
