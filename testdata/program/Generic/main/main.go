package main

import (
	"errors"
	"fmt"

	"github.com/sublee/propagate"
)

func find(m map[string]int, k string) Lookup[string, int] {
	if m == nil {
		return LookupFailed[string, int](errors.New("no map"))
	}
	if v, ok := m[k]; ok {
		return LookupFound(k, v)
	}
	return LookupMissing[string, int](k)
}

func main() {
	fmt.Println(propagate.TakeGood[string](OptionSome("hello")).Or("default"))
	fmt.Println(propagate.TakeGood[string](OptionNone[string]()).Or("default"))
	fmt.Println(propagate.TwoStates[int, struct{}](OptionSome(7)).Get())

	m := map[string]int{"a": 1}
	for _, l := range []Lookup[string, int]{find(m, "a"), find(m, "b"), find(nil, "c")} {
		if kv, ok := propagate.TakeGood[propagate.Tuple2[string, int]](l).Get(); ok {
			fmt.Println(l, kv.V0, kv.V1)
			continue
		}
		if k, ok := propagate.TakeBad[string](l).Get(); ok {
			fmt.Println(l, k)
			continue
		}
		if err, ok := propagate.TakeBad[error](l).Get(); ok {
			fmt.Println(l, err)
		}
	}
}
