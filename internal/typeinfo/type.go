package typeinfo

import (
	"go/types"
)

// Type describes a type information. It holds information of [types.Type] that
// is necessary from the Propagate's perspective.
type Type struct {
	T types.Type

	Struct *types.Struct
	Named  *types.Named
}

func (t Type) Type() types.Type { return t.T }
func (t Type) String() string   { return t.T.String() }

func (t Type) IsStruct() bool { return t.Struct != nil }
func (t Type) IsNamed() bool  { return t.Named != nil }

// IsEmptyStruct reports whether the type is the unnamed struct{} type.
func (t Type) IsEmptyStruct() bool {
	return !t.IsNamed() && t.IsStruct() && t.Struct.NumFields() == 0
}

// TypeOf inspects the given type and returns a new [Type]. Aliases are
// resolved.
func TypeOf(t types.Type) Type {
	ti := Type{T: t}
	switch tt := types.Unalias(t).(type) {
	case *types.Named:
		ti.Named = tt
		ti.Struct, _ = tt.Underlying().(*types.Struct)
	case *types.Struct:
		ti.Struct = tt
	}
	return ti
}

// TypeArgs returns the type arguments of an instantiated named type. It
// returns nil for other types.
//
//	TypeOf(propagate.Tuple2[int, string]).TypeArgs() // [int string]
func (t Type) TypeArgs() []types.Type {
	if !t.IsNamed() {
		return nil
	}
	var args []types.Type
	for i := 0; i < t.Named.TypeArgs().Len(); i++ {
		args = append(args, t.Named.TypeArgs().At(i))
	}
	return args
}
