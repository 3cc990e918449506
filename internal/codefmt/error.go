package codefmt

import (
	"cmp"
	"errors"
	"fmt"
	"go/token"
	"strings"
)

// CodeError indicates where the error occurred in user's source code.
type CodeError struct {
	err  error
	pos  token.Pos
	end  token.Pos
	fset *token.FileSet
}

// Unwrap returns the underlying error.
func (e CodeError) Unwrap() error { return e.err }

// Pos returns the position where the error occurred. It may be invalid.
func (e CodeError) Pos() token.Pos { return e.pos }

// End returns the end position of the error. It may be invalid.
func (e CodeError) End() token.Pos { return e.end }

// Error implements the error interface. If pos is valid, the position is
// prepended to the error message.
func (e CodeError) Error() string {
	if e.err == nil {
		return ""
	}

	pos := e.Position()
	if !pos.IsValid() {
		return e.err.Error()
	}
	return fmt.Sprintf("%s: %s", FormatPosition(pos), e.err.Error())
}

// Position resolves the position of the error in its file set. It is the zero
// position if the error has no position.
func (e CodeError) Position() token.Position {
	if !e.pos.IsValid() || e.fset == nil {
		return token.Position{}
	}
	return e.fset.Position(e.pos)
}

// CompareErrors orders errors by their source positions: file name, line, and
// column. Errors without a position come last. Ties are ordered by message.
// It is suitable for [slices.SortStableFunc].
func CompareErrors(a, b error) int {
	pa, oka := errorPosition(a)
	pb, okb := errorPosition(b)
	switch {
	case oka && !okb:
		return -1
	case !oka && okb:
		return 1
	case oka && okb:
		c := cmp.Or(
			strings.Compare(pa.Filename, pb.Filename),
			cmp.Compare(pa.Line, pb.Line),
			cmp.Compare(pa.Column, pb.Column),
		)
		if c != 0 {
			return c
		}
	}
	return strings.Compare(a.Error(), b.Error())
}

func errorPosition(err error) (token.Position, bool) {
	var ce *CodeError
	if !errors.As(err, &ce) {
		return token.Position{}, false
	}
	pos := ce.Position()
	return pos, pos.IsValid()
}

// Errorf formats an error message. The error will indicate the position in the
// source code if the position is valid.
func (f Formatter) Errorf(poser Poser, format string, args ...any) error {
	// Prevent wrapping error in args
	for _, arg := range args {
		if _, ok := arg.(error); ok {
			panic("CodeError cannot wrap error")
		}
	}

	var pos, end token.Pos
	if poser != nil {
		pos = poser.Pos()
		if ender, ok := poser.(Ender); ok {
			end = ender.End()
		}
	}

	args = f.wrapPrintfArgs(args)
	err := fmt.Errorf(format, args...)
	return &CodeError{err, pos, end, f.Fset}
}
