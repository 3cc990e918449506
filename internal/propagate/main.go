package propagateinternal

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/propagate/internal/codefmt"
	"github.com/sublee/propagate/internal/propagate/derive"
	"github.com/sublee/propagate/internal/propagate/parse"
)

var Version string

// Options are the common options to load packages.
//
// Dir is the path of the working directory. Env is the environment variables
// to use when running the tool. Tags is the build tags to use when loading
// packages in addition to "propagate". Tests indicates whether to include
// test files. And Patterns are the package patterns to process.
type Options struct {
	Dir      string
	Env      []string
	Tags     string
	Tests    bool
	Patterns []string
}

// Main is the main entry point for Propagate. It is used by the command-line
// tool directly.
//
// ctx is the context for loading packages. If the loading is too slow, ctx can
// cancel the operation. outFile is the name of the output file to generate in
// each package.
//
// It returns a map of output file paths to their contents. If any error occurs,
// it returns a non-nil error.
func Main(ctx context.Context, opts Options, outFile string) (map[string][]byte, error) {
	pgs, err := build(ctx, opts)
	if err != nil {
		return nil, err
	}

	outs := make(map[string][]byte)
	for _, pg := range pgs {
		// Generation renames imported packages to resolve conflicts. So it
		// runs one package at a time.
		code := pg.Generate()
		if len(code) == 0 {
			continue
		}

		pkg := pg.p.Pkg()
		outDir := filepath.Dir(pkg.GoFiles[0])
		if rel, err := filepath.Rel(opts.Dir, outDir); err == nil {
			outDir = rel
		}
		out := filepath.Join(outDir, outFile)
		outs[out] = code

		Logger().Info("generated",
			zap.String("pkg", pkg.PkgPath),
			zap.String("file", out),
			zap.Int("enums", len(pg.Plans())))
	}
	return outs, nil
}

// Check reports all derivation errors without generating code.
func Check(ctx context.Context, opts Options) error {
	_, err := build(ctx, opts)
	return err
}

// Plans derives enums in the packages without generating code. The plans are
// in package order and then declaration order.
func Plans(ctx context.Context, opts Options) ([]*derive.Plan, error) {
	pgs, err := build(ctx, opts)
	if err != nil {
		return nil, err
	}

	var plans []*derive.Plan
	for _, pg := range pgs {
		plans = append(plans, pg.Plans()...)
	}
	return plans, nil
}

// build loads packages and builds them concurrently. Packages do not share
// any state during the build.
func build(ctx context.Context, opts Options) ([]*Propagate, error) {
	pkgs, err := load(ctx, opts)
	if err != nil {
		return nil, err
	}

	pgs := make([]*Propagate, len(pkgs))
	errs := make([]error, len(pkgs))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, pkg := range pkgs {
		g.Go(func() error {
			pg, err := New(pkg)
			if err != nil {
				errs[i] = err
				return nil
			}
			if err := pg.Build(); err != nil {
				errs[i] = err
				return nil
			}
			pgs[i] = pg
			return nil
		})
	}
	_ = g.Wait()

	if err := errors.Join(errs...); err != nil {
		// errs already contains comprehensive error messages. So we don't need
		// to attach another error message.
		return nil, reorderErrors(err)
	}
	return pgs, nil
}

// load loads packages with the "propagate" build tag.
func load(ctx context.Context, opts Options) ([]*packages.Package, error) {
	cfg := &packages.Config{
		Mode:       packages.NeedDeps | packages.NeedFiles | packages.NeedImports | packages.NeedName | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo,
		Context:    ctx,
		Dir:        opts.Dir,
		Env:        opts.Env,
		BuildFlags: []string{"-tags=propagate"},
		Tests:      opts.Tests,
	}
	if opts.Tags != "" {
		cfg.BuildFlags[0] += "," + opts.Tags
	}

	// Load the packages based on the provided patterns.
	pkgs, err := packages.Load(cfg, opts.Patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found: %v", opts.Patterns)
	}

	// Check for errors in the loaded packages.
	var errs error
	for _, pkg := range pkgs {
		tagged := taggedFiles(pkg)

		for _, err := range pkg.Errors {
			if err.Pos == "" {
				errs = errors.Join(errs, errors.New(err.Msg))
				continue
			}

			path, rowcol, _ := strings.Cut(err.Pos, ":")
			if err.Kind == packages.TypeError && !tagged[path] {
				// Files without the "propagate" constraint may refer to
				// generated code which is excluded by the constraint.
				Logger().Debug("ignored type error in untagged file",
					zap.String("pkg", pkg.PkgPath),
					zap.String("pos", err.Pos),
					zap.String("msg", err.Msg))
				continue
			}

			if rel, relErr := filepath.Rel(opts.Dir, path); relErr == nil {
				err.Pos = rel + ":" + rowcol
			}
			errs = errors.Join(errs, err)
		}
	}
	if errs != nil {
		return nil, errs
	}

	return pkgs, nil
}

// taggedFiles returns the set of file paths with the "propagate" constraint.
func taggedFiles(pkg *packages.Package) map[string]bool {
	tagged := make(map[string]bool)
	if pkg.Fset == nil {
		return tagged
	}

	p, err := parse.New(pkg)
	if err != nil {
		return tagged
	}
	for _, file := range p.PropagateGoFiles() {
		tagged[pkg.Fset.File(file.Pos()).Name()] = true
	}
	return tagged
}

func reorderErrors(errs error) error {
	if errs == nil {
		return nil
	}

	// Flatten nested errors
	list := []error{errs}
	for i := 0; i < len(list); i++ {
		if u, ok := list[i].(interface{ Unwrap() []error }); ok {
			// errors.Join collapses errors with a single error having Unwrap()
			// []error method. The underlying errors could be retrieved using
			// the Unwrap() method.
			list = append(list, u.Unwrap()...)

			// The underlying errors are appended to the list. So the original
			// error can be removed.
			list[i] = nil
			continue
		}
	}
	list = slices.DeleteFunc(list, func(err error) bool {
		return err == nil
	})

	// Sort errors by position
	slices.SortStableFunc(list, codefmt.CompareErrors)
	return errors.Join(list...)
}
