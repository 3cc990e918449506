package main

import (
	"fmt"

	"github.com/sublee/propagate"
)

func main() {
	shapes := []Shape{ShapeRect(2, 3), ShapeSquare(4), ShapeBox(5, 6), ShapeCircle(7), ShapeNothing()}
	for _, shape := range shapes {
		if wh, ok := propagate.TakeGood[propagate.Tuple2[int, int]](shape).Get(); ok {
			w, h := wh.Unpack()
			fmt.Println(shape, "area", w*h)
			continue
		}
		if side, ok := propagate.TakeGood[int](shape).Get(); ok {
			fmt.Println(shape, "area", side*side)
			continue
		}
		if r, ok := shape.Circle(); ok {
			fmt.Println(shape, "radius", r)
			continue
		}
		fmt.Println(shape, propagate.IsBad(shape))
	}

	square := propagate.FromGood[Shape](9)
	fmt.Println(square.Square())

	nothing := propagate.FromBad[Shape](struct{}{})
	fmt.Println(nothing)
}
