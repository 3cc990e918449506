package codefmt_test

import (
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sublee/propagate/internal/codefmt"
)

func TestTypeList(t *testing.T) {
	f := codefmt.Formatter{PkgPath: "example.com/p"}

	pkg := types.NewPackage("example.com/q", "q")
	named := types.NewNamed(types.NewTypeName(0, pkg, "Thing", nil), types.Typ[types.Int], nil)

	assert.Equal(t, "()", f.TypeList(nil))
	assert.Equal(t, "(int)", f.TypeList([]types.Type{types.Typ[types.Int]}))
	assert.Equal(t, "(int, *q.Thing)", f.TypeList([]types.Type{
		types.Typ[types.Int],
		types.NewPointer(named),
	}))
}

func TestSprintfTypeList(t *testing.T) {
	f := codefmt.Formatter{}
	list := []types.Type{types.Typ[types.Int32], types.Typ[types.Int32]}
	assert.Equal(t, "(int32, int32) vs int", f.Sprintf("%l vs %t", list, types.Typ[types.Int]))
}
