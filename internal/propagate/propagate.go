package propagateinternal

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/printer"
	"go/token"
	"io"
	"path/filepath"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/propagate/internal/codefmt"
	"github.com/sublee/propagate/internal/propagate/derive"
	"github.com/sublee/propagate/internal/propagate/emit"
	"github.com/sublee/propagate/internal/propagate/parse"
)

// Propagate generates enum code for the target package. Call [Build] and then
// [Generate] to get the generated code. All potential errors are returned by
// [Build]. Once [Build] succeeds, [Generate] never fails.
type Propagate struct {
	p   *parse.Parser
	ns  codefmt.NS
	buf *bytes.Buffer
	w   *codefmt.Writer

	plans []*derive.Plan
}

// New creates a new [Propagate] for the given package. The package must have
// its Syntax, Types and TypesInfo.
func New(pkg *packages.Package) (*Propagate, error) {
	parser, err := parse.New(pkg)
	if err != nil {
		return nil, err
	}

	ns := codefmt.NewNS(pkg.Types.Scope())
	for _, imp := range pkg.Types.Imports() {
		// Generated functions must not shadow imported packages.
		ns.Reserve(imp.Name())
	}

	var buf bytes.Buffer
	return &Propagate{
		p:   parser,
		ns:  ns,
		buf: &buf,
		w:   codefmt.NewWriter(&buf, pkg).WithNS(ns),
	}, nil
}

// Build parses and derives enums. All potential errors are returned by this
// method. It must be called before [Generate].
func (pg *Propagate) Build() error {
	errs := pg.p.Validate()

	for decl, err := range pg.p.ParseEnums() {
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		plan, err := derive.Derive(decl)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		if err := pg.reserveNames(plan); err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		Logger().Debug("derived enum",
			zap.String("pkg", pg.p.Pkg().PkgPath),
			zap.String("enum", decl.Name()),
			zap.Int("variants", len(decl.Variants)),
			zap.Int("good_groups", len(plan.Good)),
			zap.Int("bad_groups", len(plan.Bad)),
			zap.Bool("two_state", plan.TwoState))
		pg.plans = append(pg.plans, plan)
	}

	return errs
}

// reserveNames reserves the constructor names of the enum in the package
// namespace. Variants cannot be named after generated methods.
func (pg *Propagate) reserveNames(plan *derive.Plan) error {
	var errs error
	for _, v := range plan.Decl.Variants {
		if slices.Contains(emit.Reserved, v.Name()) {
			err := codefmt.Errorf(plan.Decl, v, "variant %s of %s conflicts with a generated method; rename the variant", v.Name(), plan.Decl.Name())
			errs = errors.Join(errs, err)
			continue
		}

		name := emit.ConstructorName(plan.Decl, v)
		if !pg.ns.Reserve(name) {
			err := codefmt.Errorf(plan.Decl, v, "constructor %s of variant %s conflicts with an existing name", name, v.Name())
			errs = errors.Join(errs, err)
		}
	}
	return errs
}

// Plans returns the derived enums in declaration order. It must be called
// after [Build] succeeds.
func (pg *Propagate) Plans() []*derive.Plan {
	return pg.plans
}

// Generate generates enum code for the package. It must be called after
// [Build] succeeds. It returns nil if the package declares no enums.
func (pg *Propagate) Generate() []byte {
	if len(pg.plans) == 0 {
		return nil
	}
	pg.writeEnumCode()
	pg.mergeCode()
	return pg.frameCode()
}

// writeEnumCode writes type and method declaration code for enums.
func (pg *Propagate) writeEnumCode() {
	pg.w.Printf("// propagate: enums\n\n")
	for _, plan := range pg.plans {
		emit.Write(pg.w, plan)
	}
}

// mergeCode copies non-enum code from the source files that tagged with
// "//go:build propagate". Enum declarations are replaced by the generated
// types.
func (pg *Propagate) mergeCode() {
	enums := pg.p.EnumSpecs()

	for _, file := range pg.p.PropagateGoFiles() {
		name := filepath.Base(pg.p.Pkg().Fset.File(file.Pos()).Name())
		first := true

		for _, decl := range file.Decls {
			if gen, ok := decl.(*ast.GenDecl); ok {
				if gen.Tok == token.IMPORT {
					// Skip import declarations in files. Required imports will
					// be collected from their usage, and then rewritten as an
					// import declaration group.
					continue
				}
			}

			// Erase enum declarations
			decl = astutil.Apply(decl, func(c *astutil.Cursor) bool {
				spec, ok := c.Node().(*ast.TypeSpec)
				if !ok {
					return true
				}
				if enums[spec.Type.Pos()] {
					c.Delete()
				}
				return false
			}, nil).(ast.Decl)

			// Skip empty declarations
			if gen, ok := decl.(*ast.GenDecl); ok {
				if len(gen.Specs) == 0 {
					continue
				}
			}

			if first {
				fmt.Fprintf(pg.buf, "// %s:\n\n", name)
				first = false
			}

			// Prevent import name conflicts when merging multiple files into one
			decl = codefmt.RewriteImports(pg.w, decl)

			// Write rewritten declaration code
			printer.Fprint(pg.buf, pg.p.Pkg().Fset, &printer.CommentedNode{
				Node:     decl,
				Comments: file.Comments,
			})
			fmt.Fprintf(pg.buf, "\n\n")
		}
	}
}

func (pg *Propagate) frameCode() []byte {
	// Prepend header code
	versionSuffix := ""
	if Version != "" {
		versionSuffix = "@" + Version
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "//go:build !propagate\n\n")
	fmt.Fprintf(&buf, "// Code generated by github.com/sublee/propagate%s. DO NOT EDIT.\n\n", versionSuffix)
	fmt.Fprintf(&buf, "package %s\n", pg.p.Pkg().Name)

	if len(pg.w.Imports()) != 0 {
		fmt.Fprintf(&buf, "import (\n")
		for alias, imp := range pg.w.Imports() {
			if imp.HasAlias {
				fmt.Fprintf(&buf, "%s %q\n", alias, imp.Path())
			} else {
				fmt.Fprintf(&buf, "%q\n", imp.Path())
			}
		}
		fmt.Fprintf(&buf, ")\n")
	}

	_, _ = io.Copy(&buf, pg.buf)
	code := buf.Bytes()

	// Apply gofmt if succeeded
	fmtCode, err := format.Source(code)
	if err != nil {
		Logger().Warn("generated code is not formatted",
			zap.String("pkg", pg.p.Pkg().PkgPath),
			zap.Error(err))
		return code
	}
	return fmtCode
}
