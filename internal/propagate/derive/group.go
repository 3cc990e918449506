package derive

import (
	"fmt"
	"go/types"

	"github.com/sublee/propagate/internal/codefmt"
	"github.com/sublee/propagate/internal/typeinfo"
)

// Group is a set of variants in one outcome sharing one payload shape.
type Group struct {
	Marker Marker

	// Kind is Unit, Single, or Tuple. Named variants are never grouped.
	Kind Kind

	// Key is the payload shape as written. It is an empty [types.Tuple] for
	// Unit, the field type for Single, and a [types.Tuple] of the field types
	// for Tuple.
	Key types.Type

	// Variants are in declaration order.
	Variants []*Variant
}

// Types returns the field types of the group as written.
func (g *Group) Types() []types.Type {
	return g.Variants[0].Types()
}

// Flatten returns the type list which the payload of the group is observed
// as. A single field of a literal tuple type is flattened into its elements.
// The struct{} type is the empty literal tuple.
func (g *Group) Flatten() []types.Type {
	if g.Kind == Single {
		if elems, ok := LiteralTuple(g.Key); ok {
			return elems
		}
	}
	return g.Types()
}

func (g *Group) String() string {
	names := make([]string, len(g.Variants))
	for i, v := range g.Variants {
		names[i] = v.Name()
	}
	return fmt.Sprintf("%s %s %v", g.Marker, g.Kind, names)
}

// LiteralTuple returns the element types if the type is a literal tuple type:
// an instance of one of the runtime TupleN types, or struct{}.
func LiteralTuple(t types.Type) ([]types.Type, bool) {
	ti := typeinfo.TypeOf(t)
	if ti.IsEmptyStruct() {
		return nil, true
	}
	if !ti.IsNamed() {
		return nil, false
	}

	obj := ti.Named.Origin().Obj()
	if obj.Pkg() == nil || !IsImport(obj.Pkg().Path()) {
		return nil, false
	}
	for n := 2; n <= MaxTuple; n++ {
		if obj.Name() == fmt.Sprintf("Tuple%d", n) {
			return ti.TypeArgs(), true
		}
	}
	return nil, false
}

// groupKey returns the payload shape of a variant as written.
func groupKey(v *Variant) types.Type {
	if v.Kind == Single {
		return v.Fields[0].Type
	}
	vars := make([]*types.Var, len(v.Fields))
	for i, f := range v.Fields {
		vars[i] = types.NewParam(0, nil, "", f.Type)
	}
	return types.NewTuple(vars...)
}

// GroupVariants partitions the variants carrying the marker by payload shape.
// The groups are in first-seen order of their shapes and variants in a group
// are in declaration order. Shapes are compared by type identity, so aliases
// are resolved. Variants must have been validated by [ValidateShape].
func GroupVariants(variants []*Variant, m Marker) []*Group {
	groups := typeinfo.NewLookup[*Group]()
	for _, v := range variants {
		if !HasMarker(v, m) {
			continue
		}
		if v.Kind == Named {
			panic(fmt.Sprintf("named variant %s cannot be grouped", v.Name()))
		}

		key := groupKey(v)
		g, ok := groups.Get(key)
		if !ok {
			g = &Group{Marker: m, Kind: v.Kind, Key: key}
			groups.Put(key, g)
		}
		g.Variants = append(g.Variants, v)
	}

	var list []*Group
	for _, g := range groups.Range() {
		list = append(list, g)
	}
	return list
}

// ValidateGrouped checks whether two groups of one outcome are observed as the
// same type list. For example, a variant with fields (int32, int32) and a
// variant with a single Tuple2[int32, int32] field cannot be told apart.
//
// Unit groups take part as the empty list since their payload type struct{}
// collides with a single struct{} field. The first collision is reported.
func ValidateGrouped(decl *Decl, groups []*Group) error {
	seen := typeinfo.NewLookup[*Group]()
	for _, g := range groups {
		flat := g.Flatten()
		vars := make([]*types.Var, len(flat))
		for i, t := range flat {
			vars[i] = types.NewParam(0, nil, "", t)
		}

		prev, ok := seen.Put(types.NewTuple(vars...), g)
		if ok {
			continue
		}

		a, b := prev, g
		if b.Kind == Single {
			// Report the tuple form first.
			a, b = b, a
		}
		return codefmt.Errorf(decl, g.Variants[0], "types %l of %s and %t of %s are ambiguous in %s variants of %s; cannot infer types for both tuple and multi-field variants",
			b.Types(), b.Variants[0].Name(),
			a.Key, a.Variants[0].Name(),
			g.Marker, decl.Name(),
		)
	}
	return nil
}
