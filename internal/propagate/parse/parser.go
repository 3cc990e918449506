package parse

import (
	"fmt"
	"go/ast"
	"go/build/constraint"
	"go/types"

	"golang.org/x/tools/go/packages"

	"github.com/sublee/propagate/internal/codefmt"
	"github.com/sublee/propagate/internal/propagate/derive"
	"github.com/sublee/propagate/internal/typeinfo"
)

// Parser parses an AST of the underlying package to collect enum
// declarations.
type Parser struct{ pkg *packages.Package }

func (p *Parser) Pkg() *packages.Package { return p.pkg }

// New creates a new [Parser].
func New(pkg *packages.Package) (*Parser, error) {
	if pkg.Name == "" {
		return nil, fmt.Errorf("need pkg name")
	}
	if pkg.PkgPath == "" {
		return nil, fmt.Errorf("need pkg path")
	}
	if pkg.Types == nil {
		return nil, fmt.Errorf("need pkg types")
	}
	if pkg.Fset == nil {
		return nil, fmt.Errorf("need pkg fset")
	}
	if pkg.Syntax == nil {
		return nil, fmt.Errorf("need pkg syntax")
	}
	if pkg.TypesInfo == nil {
		return nil, fmt.Errorf("need pkg types info")
	}
	return &Parser{pkg: pkg}, nil
}

func (p *Parser) errorf(poser codefmt.Poser, format string, args ...any) error {
	return codefmt.Errorf(p, poser, format, args...)
}

// IsRuntime reports whether the type is the named type declared in the
// runtime package, such as Enum, Good, or Bad.
func IsRuntime(t types.Type, name string) bool {
	if t == nil {
		return false
	}
	ti := typeinfo.TypeOf(t)
	if !ti.IsNamed() {
		return false
	}
	obj := ti.Named.Origin().Obj()
	return obj.Pkg() != nil && derive.IsImport(obj.Pkg().Path()) && obj.Name() == name
}

// isEnumEmbed reports whether the embedded field is propagate.Enum.
func (p *Parser) isEnumEmbed(field *ast.Field) bool {
	if len(field.Names) != 0 {
		return false
	}
	return IsRuntime(p.pkg.TypesInfo.TypeOf(field.Type), "Enum")
}

// embedsEnum reports whether the interface embeds propagate.Enum directly.
func (p *Parser) embedsEnum(iface *ast.InterfaceType) bool {
	if iface.Methods == nil {
		return false
	}
	for _, field := range iface.Methods.List {
		if p.isEnumEmbed(field) {
			return true
		}
	}
	return false
}

// PropagateGoFiles returns the Go files that have a "//go:build propagate"
// constraint.
func (p *Parser) PropagateGoFiles() []*ast.File {
	var files []*ast.File
	for _, file := range p.Pkg().Syntax {
		if hasGoBuildPropagate(file) {
			files = append(files, file)
		}
	}
	return files
}

// hasGoBuildPropagate checks if the file has a "//go:build propagate"
// constraint.
func hasGoBuildPropagate(file *ast.File) bool {
	ok := false
	for _, group := range file.Comments {
		if group.Pos() >= file.Package {
			// Build constraints must appear before the package clause.
			break
		}
		for _, comment := range group.List {
			if !constraint.IsGoBuild(comment.Text) {
				continue
			}
			expr, err := constraint.Parse(comment.Text)
			if err != nil {
				continue
			}
			expr.Eval(func(tag string) bool {
				if tag == "propagate" {
					ok = true
				}
				return true
			})
		}
	}
	return ok
}
