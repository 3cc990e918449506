package parse

import (
	"errors"
	"go/ast"
)

// Validate checks for usages of propagate.Enum outside package-level
// interface declarations. It collects all errors instead of stopping at the
// first error.
func (p *Parser) Validate() error {
	enums := p.EnumSpecs()

	var errs error
	for _, file := range p.Pkg().Syntax {
		ast.Inspect(file, func(node ast.Node) bool {
			switch node := node.(type) {
			case *ast.StructType:
				for _, field := range node.Fields.List {
					if p.isEnumEmbed(field) {
						errs = errors.Join(errs, p.errorf(field.Type, "propagate.Enum can only be embedded in an interface; a struct cannot be an enum"))
					}
				}

			case *ast.InterfaceType:
				if p.embedsEnum(node) && !enums[node.Pos()] {
					errs = errors.Join(errs, p.errorf(node, "enum must be declared as a package-level type"))
				}
			}
			return true
		})
	}
	return errs
}
