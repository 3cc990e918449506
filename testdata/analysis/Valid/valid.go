//go:build propagate

package valid

import (
	"io"

	"github.com/sublee/propagate"
)

type Size interface {
	propagate.Enum
	TooSmall(uint32) propagate.Bad
	Small(uint32)
	Large(uint32)
	TooLarge(uint32) propagate.Bad
	Empty() propagate.Good
}

type Result[T any] interface {
	propagate.Enum
	Ok(T) propagate.Good
	Err(error) propagate.Bad
}

type Read interface {
	propagate.Enum
	Chunk([]byte, int) propagate.Good
	EOF() propagate.Bad
	Failed(error) propagate.Bad
	Retry(after int)
}

var _ = io.EOF
