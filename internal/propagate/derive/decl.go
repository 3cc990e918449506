package derive

import (
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/packages"
)

// ImportPath is the import path of the runtime package.
const ImportPath = "github.com/sublee/propagate"

// IsImport reports whether the path refers to the runtime package, possibly
// vendored.
func IsImport(path string) bool {
	// Source code from "wire/internal/wire/parse.go".
	const vendorPart = "vendor/"
	if i := strings.LastIndex(path, vendorPart); i != -1 && (i == 0 || path[i-1] == '/') {
		path = path[i+len(vendorPart):]
	}
	return path == ImportPath
}

// Decl is an enum declaration. It is read-only once parsed.
type Decl struct {
	// Ident is the name of the declared interface.
	Ident *ast.Ident

	// Obj is the type name of the declared interface.
	Obj *types.TypeName

	// TypeParams are the type parameters of a generic enum. It is nil for
	// non-generic enums.
	TypeParams *types.TypeParamList

	// Doc is the doc comment of the declaration, if any.
	Doc *ast.CommentGroup

	// Variants are in declaration order. Variants of embedded interfaces are
	// expanded at the embedding position.
	Variants []*Variant

	pkg *packages.Package
}

// NewDecl creates a [Decl] declared in the package.
func NewDecl(pkg *packages.Package, ident *ast.Ident, obj *types.TypeName) *Decl {
	decl := &Decl{Ident: ident, Obj: obj, pkg: pkg}
	if named, ok := obj.Type().(*types.Named); ok && named.TypeParams().Len() != 0 {
		decl.TypeParams = named.TypeParams()
	}
	return decl
}

func (d *Decl) Pkg() *packages.Package { return d.pkg }
func (d *Decl) Pos() token.Pos         { return d.Ident.Pos() }
func (d *Decl) Object() types.Object   { return d.Obj }
func (d *Decl) Name() string           { return d.Ident.Name }

// Add appends a variant with the next declaration index.
func (d *Decl) Add(v *Variant) {
	v.Index = len(d.Variants)
	d.Variants = append(d.Variants, v)
}

// Marker is a set of outcome markers of a variant.
type Marker uint8

const (
	Good Marker = 1 << iota
	Bad

	None Marker = 0
)

func (m Marker) String() string {
	switch m {
	case Good:
		return "good"
	case Bad:
		return "bad"
	case Good | Bad:
		return "good|bad"
	}
	return "none"
}

// TypeName returns the name of the marker type in the runtime package.
func (m Marker) TypeName() string {
	switch m {
	case Good:
		return "Good"
	case Bad:
		return "Bad"
	}
	panic("not a single marker: " + m.String())
}

// Kind is a field shape of a variant.
type Kind int

const (
	// Unit has no fields.
	Unit Kind = iota
	// Single has one unnamed field.
	Single
	// Tuple has two or more unnamed fields.
	Tuple
	// Named has named fields, including "_".
	Named
)

func (k Kind) String() string {
	switch k {
	case Unit:
		return "unit"
	case Single:
		return "single"
	case Tuple:
		return "tuple"
	case Named:
		return "named"
	}
	return "invalid"
}

// Field is a variant field. Name is empty for unnamed fields.
type Field struct {
	Name string
	Type types.Type
}

// Variant is one method of an enum declaration.
type Variant struct {
	// Index is the 0-based declaration order.
	Index int

	// Ident is the name of the declared method.
	Ident *ast.Ident

	// Markers are the outcome markers in the results of the method.
	Markers Marker

	Kind   Kind
	Fields []Field
}

func (v *Variant) Pos() token.Pos { return v.Ident.Pos() }
func (v *Variant) Name() string   { return v.Ident.Name }

// Types returns the field types in order.
func (v *Variant) Types() []types.Type {
	list := make([]types.Type, len(v.Fields))
	for i, f := range v.Fields {
		list[i] = f.Type
	}
	return list
}

// ShapeOf classifies fields into a [Kind].
func ShapeOf(fields []Field) Kind {
	switch {
	case len(fields) == 0:
		return Unit
	case fields[0].Name != "":
		return Named
	case len(fields) == 1:
		return Single
	default:
		return Tuple
	}
}
