// Package parsetest type-checks Go sources for tests without loading modules.
// The runtime package is replaced by a stub declaring the names which enum
// declarations and generated code refer to.
package parsetest

import (
	"fmt"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/propagate/internal/propagate/derive"
)

// PkgPath is the import path of loaded packages.
const PkgPath = "example.com/p"

const runtimeStub = `package propagate

type Enum interface{ propagateEnum() }
type Good struct{}
type Bad struct{}

type Tuple2[A, B any] struct { V0 A; V1 B }
type Tuple3[A, B, C any] struct { V0 A; V1 B; V2 C }
type Tuple4[A, B, C, D any] struct { V0 A; V1 B; V2 C; V3 D }
type Tuple5[A, B, C, D, E any] struct { V0 A; V1 B; V2 C; V3 D; V4 E }
type Tuple6[A, B, C, D, E, F any] struct { V0 A; V1 B; V2 C; V3 D; V4 E; V5 F }
type Tuple7[A, B, C, D, E, F, G any] struct { V0 A; V1 B; V2 C; V3 D; V4 E; V5 F; V6 G }
type Tuple8[A, B, C, D, E, F, G, H any] struct { V0 A; V1 B; V2 C; V3 D; V4 E; V5 F; V6 G; V7 H }

type GoodExtractor interface{ ExtractGood(target any) bool }
type BadExtractor interface{ ExtractBad(target any) bool }
type GoodRefExtractor interface{ ExtractGoodRef(target any) bool }
type BadRefExtractor interface{ ExtractBadRef(target any) bool }
type GoodConstructor interface{ ConstructGood(payload any) }
type BadConstructor interface{ ConstructBad(payload any) }
type ExactlyTwoDistinctVariants interface{ ExactlyTwoDistinctVariants() }

func UnitRef() *struct{} { return new(struct{}) }

type UnsupportedError struct{ Enum, Outcome string }

func (e *UnsupportedError) Error() string { return e.Enum }

func Unsupported(enum, outcome string, v any) *UnsupportedError {
	return &UnsupportedError{enum, outcome}
}
`

type stubImporter struct {
	runtime  *types.Package
	fallback types.Importer
}

func (imp stubImporter) Import(path string) (*types.Package, error) {
	if derive.IsImport(path) {
		return imp.runtime, nil
	}
	return imp.fallback.Import(path)
}

// Load type-checks the sources as one package named "p". Sources are named
// file0.go, file1.go, and so on. Type errors fail the test.
func Load(t testing.TB, srcs ...string) *packages.Package {
	t.Helper()
	pkg, errs := load(t, srcs...)
	require.Empty(t, errs, "sources must type-check")
	return pkg
}

// LoadWithErrors is like [Load] but returns type errors instead of failing.
func LoadWithErrors(t testing.TB, srcs ...string) (*packages.Package, []error) {
	t.Helper()
	return load(t, srcs...)
}

func load(t testing.TB, srcs ...string) (*packages.Package, []error) {
	fset := token.NewFileSet()

	stubFile, err := parser.ParseFile(fset, "propagate.go", runtimeStub, 0)
	require.NoError(t, err)
	runtime, err := (&types.Config{}).Check(derive.ImportPath, fset, []*ast.File{stubFile}, nil)
	require.NoError(t, err)

	var files []*ast.File
	var goFiles []string
	for i, src := range srcs {
		name := fmt.Sprintf("file%d.go", i)
		file, err := parser.ParseFile(fset, name, src, parser.ParseComments)
		require.NoError(t, err)
		files = append(files, file)
		goFiles = append(goFiles, name)
	}

	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Instances:  make(map[*ast.Ident]types.Instance),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Implicits:  make(map[ast.Node]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
		Scopes:     make(map[ast.Node]*types.Scope),
	}

	var errs []error
	cfg := &types.Config{
		Importer: stubImporter{runtime, importer.Default()},
		Error:    func(err error) { errs = append(errs, err) },
	}
	typesPkg, _ := cfg.Check(PkgPath, fset, files, info)

	return &packages.Package{
		ID:        PkgPath,
		Name:      typesPkg.Name(),
		PkgPath:   PkgPath,
		GoFiles:   goFiles,
		Fset:      fset,
		Syntax:    files,
		Types:     typesPkg,
		TypesInfo: info,
	}, errs
}
