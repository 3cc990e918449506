package main

import (
	"fmt"

	"github.com/sublee/propagate"
)

func main() {
	odd := OddVariant(7)
	fmt.Println(odd, odd.VariantIndex())
	fmt.Println(odd.variant())
	fmt.Println(propagate.TakeGood[int](odd).Get())

	other := OddOther()
	fmt.Println(other, other.other(), propagate.IsBad(other))
}
