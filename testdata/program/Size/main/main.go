package main

import (
	"fmt"

	"github.com/sublee/propagate"
)

func measure(n uint32) Size {
	switch {
	case n == 0:
		return SizeEmpty()
	case n < 10:
		return SizeTooSmall(n)
	case n < 100:
		return SizeSmall(n)
	case n < 1000:
		return SizeLarge(n)
	}
	return SizeTooLarge(n)
}

func main() {
	for _, n := range []uint32{0, 7, 42, 420, 4200} {
		size := measure(n)
		bad, ok := propagate.TakeBad[uint32](size).Get()
		fmt.Println(size, size.VariantIndex(), propagate.IsGood(size), propagate.IsBad(size), bad, ok)
	}

	small, ok := measure(42).Small()
	fmt.Println(small, ok)
	fmt.Println(measure(0).Empty(), measure(1).Empty())

	// Unmatched values come back as the alternate.
	alt, ok := propagate.TakeGood[struct{}](measure(7)).Alt()
	fmt.Println(alt, ok)
}
