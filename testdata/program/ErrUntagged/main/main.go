package main

import "github.com/sublee/propagate"

type Answer interface {
	propagate.Enum
	Yes() propagate.Good
	No() propagate.Bad
}

func main() {
	panic("propagate will fail")
}
