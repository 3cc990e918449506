//go:build propagate

package main

import "github.com/sublee/propagate"

type Pos interface {
	propagate.Enum
	Pair(int32, int32) propagate.Bad
	Tuple(propagate.Tuple2[int32, int32]) propagate.Bad
}

func main() {
	panic("propagate will fail")
}
