// Package propagateanalysis reports enum declarations which Propagate cannot
// derive. Run it with the "propagate" build tag so that the declarations are
// visible:
//
//	GOFLAGS=-tags=propagate go vet -vettool=...
package propagateanalysis

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/propagate/internal/codefmt"
	propagateinternal "github.com/sublee/propagate/internal/propagate"
)

// Analyzer validates enum declarations in the package.
var Analyzer = &analysis.Analyzer{
	Name: "propagate",
	Doc:  "linter for propagate enum declarations",
	Run:  run,

	// Files without the "propagate" constraint refer to generated code which
	// is excluded by the constraint. Their type errors are expected.
	RunDespiteErrors: true,
}

func run(pass *analysis.Pass) (any, error) {
	pkg := &packages.Package{
		Name:      pass.Pkg.Name(),
		PkgPath:   pass.Pkg.Path(),
		Types:     pass.Pkg,
		Fset:      pass.Fset,
		Syntax:    pass.Files,
		TypesInfo: pass.TypesInfo,
	}

	pg, err := propagateinternal.New(pkg)
	if err != nil {
		return nil, err
	}

	if err := pg.Build(); err != nil {
		// Unroll all errors and report them
		errs := []error{err}
		for len(errs) != 0 {
			err := errs[0]
			errs = errs[1:]

			if codeErr, ok := err.(*codefmt.CodeError); ok {
				pass.Report(analysis.Diagnostic{
					Pos:     codeErr.Pos(),
					End:     codeErr.End(),
					Message: codeErr.Unwrap().Error(),
				})
				continue
			}

			if u, ok := err.(interface{ Unwrap() []error }); ok {
				errs = append(errs, u.Unwrap()...)
			}
		}
	}

	return nil, nil
}
