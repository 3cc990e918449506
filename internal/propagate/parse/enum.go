package parse

import (
	"errors"
	"go/ast"
	"go/token"
	"go/types"
	"iter"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/emirpasic/gods/sets/linkedhashset"

	"github.com/sublee/propagate/internal/codefmt"
	"github.com/sublee/propagate/internal/propagate/derive"
)

// ParseEnums parses all package-level enum declarations in declaration order.
// An enum is an interface type embedding propagate.Enum. A declaration which
// cannot be parsed yields a nil [derive.Decl] and an error. Other
// declarations are not affected.
func (p *Parser) ParseEnums() iter.Seq2[*derive.Decl, error] {
	specs := p.typeSpecs()

	return func(yield func(*derive.Decl, error) bool) {
		for _, file := range p.pkg.Syntax {
			for _, decl := range file.Decls {
				gen, ok := decl.(*ast.GenDecl)
				if !ok || gen.Tok != token.TYPE {
					continue
				}

				for _, spec := range gen.Specs {
					spec := spec.(*ast.TypeSpec)
					iface, ok := spec.Type.(*ast.InterfaceType)
					if !ok || !p.embedsEnum(iface) {
						continue
					}

					if !hasGoBuildPropagate(file) {
						err := codefmt.Errorf(p, spec.Name, `file must have "//go:build propagate" constraint when declaring enum %s`, spec.Name.Name)
						if !yield(nil, err) {
							return
						}
						continue
					}

					d, err := p.parseEnum(specs, gen, spec)
					if !yield(d, err) {
						return
					}
				}
			}
		}
	}
}

// EnumSpecs returns the positions of the interface types which ParseEnums
// accepts as enums.
func (p *Parser) EnumSpecs() map[token.Pos]bool {
	enums := make(map[token.Pos]bool)
	for _, file := range p.pkg.Syntax {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}
			for _, spec := range gen.Specs {
				spec := spec.(*ast.TypeSpec)
				if iface, ok := spec.Type.(*ast.InterfaceType); ok && p.embedsEnum(iface) {
					enums[iface.Pos()] = true
				}
			}
		}
	}
	return enums
}

// typeSpecs indexes package-level type specs by their type names to expand
// embedded interfaces.
func (p *Parser) typeSpecs() map[*types.TypeName]*ast.TypeSpec {
	specs := make(map[*types.TypeName]*ast.TypeSpec)
	for _, file := range p.pkg.Syntax {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}
			for _, spec := range gen.Specs {
				spec := spec.(*ast.TypeSpec)
				if obj, ok := p.pkg.TypesInfo.Defs[spec.Name].(*types.TypeName); ok {
					specs[obj] = spec
				}
			}
		}
	}
	return specs
}

func (p *Parser) parseEnum(specs map[*types.TypeName]*ast.TypeSpec, gen *ast.GenDecl, spec *ast.TypeSpec) (*derive.Decl, error) {
	obj, ok := p.pkg.TypesInfo.Defs[spec.Name].(*types.TypeName)
	if !ok {
		return nil, codefmt.Errorf(p, spec.Name, "cannot resolve enum %s", spec.Name.Name)
	}

	if spec.Assign.IsValid() {
		return nil, codefmt.Errorf(p, spec.Name, "enum %s cannot be an alias", spec.Name.Name)
	}

	d := derive.NewDecl(p.pkg, spec.Name, obj)
	d.Doc = spec.Doc
	if d.Doc == nil && len(gen.Specs) == 1 {
		d.Doc = gen.Doc
	}

	methods := linkedhashmap.New() // method name -> *ast.Field
	visited := linkedhashset.New() // *ast.TypeSpec
	if err := p.collectMethods(specs, spec, methods, visited); err != nil {
		return nil, err
	}

	var errs error
	it := methods.Iterator()
	for it.Next() {
		v, err := p.parseVariant(it.Value().(*ast.Field))
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		d.Add(v)
	}
	if errs != nil {
		return nil, errs
	}
	return d, nil
}

// collectMethods collects the methods of the interface in declaration order.
// Interfaces declared in the same package are expanded where they are
// embedded. A method embedded twice keeps the first position.
func (p *Parser) collectMethods(specs map[*types.TypeName]*ast.TypeSpec, spec *ast.TypeSpec, methods *linkedhashmap.Map, visited *linkedhashset.Set) error {
	if visited.Contains(spec) {
		return nil
	}
	visited.Add(spec)

	iface := spec.Type.(*ast.InterfaceType)
	var errs error
	for _, field := range iface.Methods.List {
		if len(field.Names) != 0 {
			name := field.Names[0].Name
			if _, ok := methods.Get(name); !ok {
				methods.Put(name, field)
			}
			continue
		}

		if p.isEnumEmbed(field) {
			continue
		}

		embedded, ok := p.embeddedSpec(specs, field)
		if !ok {
			errs = errors.Join(errs, codefmt.Errorf(p, field.Type, "cannot embed %c in enum %s; only interfaces declared in the same package can be embedded", field.Type, spec.Name.Name))
			continue
		}
		errs = errors.Join(errs, p.collectMethods(specs, embedded, methods, visited))
	}
	return errs
}

// embeddedSpec finds the declaration of an embedded interface.
func (p *Parser) embeddedSpec(specs map[*types.TypeName]*ast.TypeSpec, field *ast.Field) (*ast.TypeSpec, bool) {
	t := p.pkg.TypesInfo.TypeOf(field.Type)
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return nil, false
	}

	spec, ok := specs[named.Origin().Obj()]
	if !ok {
		return nil, false
	}
	if _, ok := spec.Type.(*ast.InterfaceType); !ok {
		return nil, false
	}
	if named.TypeArgs().Len() != 0 {
		// Type arguments cannot be substituted into the declaration.
		return nil, false
	}
	return spec, true
}

// parseVariant parses an interface method as a variant. Parameters are the
// fields and results are the markers.
func (p *Parser) parseVariant(field *ast.Field) (*derive.Variant, error) {
	ident := field.Names[0]
	fn, ok := p.pkg.TypesInfo.Defs[ident].(*types.Func)
	if !ok {
		return nil, codefmt.Errorf(p, ident, "cannot resolve variant %s", ident.Name)
	}
	sig := fn.Signature()

	if sig.Variadic() {
		return nil, codefmt.Errorf(p, ident, "variant %s cannot be variadic", ident.Name)
	}

	v := &derive.Variant{Ident: ident}
	for param := range sig.Params().Variables() {
		v.Fields = append(v.Fields, derive.Field{Name: param.Name(), Type: param.Type()})
	}
	v.Kind = derive.ShapeOf(v.Fields)

	var errs error
	for result := range sig.Results().Variables() {
		switch {
		case IsRuntime(result.Type(), "Good"):
			v.Markers |= derive.Good
		case IsRuntime(result.Type(), "Bad"):
			v.Markers |= derive.Bad
		default:
			errs = errors.Join(errs, codefmt.Errorf(p, ident, "result of variant %s must be propagate.Good or propagate.Bad; got %t", ident.Name, result.Type()))
		}
	}
	if errs != nil {
		return nil, errs
	}
	return v, nil
}
