//go:build propagate

package main

import "github.com/sublee/propagate"

type Option[T any] interface {
	propagate.Enum
	Some(T) propagate.Good
	None() propagate.Bad
}

type Lookup[K comparable, V any] interface {
	propagate.Enum
	Found(K, V) propagate.Good
	Missing(K) propagate.Bad
	Failed(error) propagate.Bad
}
