package derive

import (
	"errors"

	"fortio.org/safecast"

	"github.com/sublee/propagate/internal/codefmt"
)

// Plan is the derivation result of one enum. It is everything the code
// writer needs.
type Plan struct {
	Decl *Decl

	Good []*Group
	Bad  []*Group

	GoodTable []byte
	BadTable  []byte

	// TwoState is true if the enum is eligible for the two-state marker.
	TwoState bool

	// Tag is the unsigned integer type which stores the variant index.
	Tag string
}

// Groups returns the groups of the marker.
func (p *Plan) Groups(m Marker) []*Group {
	switch m {
	case Good:
		return p.Good
	case Bad:
		return p.Bad
	}
	panic("not a single marker: " + m.String())
}

// Table returns the classification table of the marker.
func (p *Plan) Table(m Marker) []byte {
	switch m {
	case Good:
		return p.GoodTable
	case Bad:
		return p.BadTable
	}
	panic("not a single marker: " + m.String())
}

// Constructors returns the groups of the marker which have exactly one
// variant. Only those variants can be built back from a bare payload.
func (p *Plan) Constructors(m Marker) []*Group {
	var groups []*Group
	for _, g := range p.Groups(m) {
		if len(g.Variants) == 1 {
			groups = append(groups, g)
		}
	}
	return groups
}

// Derive derives a [Plan] from an enum declaration. Each declaration is
// derived independently.
//
// The checks run in order and Derive stops at the first failing stage:
//  1. The enum has at least one variant.
//  2. Every marked variant has a shape which can be a payload.
//  3. At least one variant is marked.
//  4. No two groups are ambiguous. Good groups are checked before bad ones.
func Derive(decl *Decl) (*Plan, error) {
	if len(decl.Variants) == 0 {
		return nil, codefmt.Errorf(decl, decl, "enum %s has no variants; declare at least one variant method", decl.Name())
	}

	var errs error
	marked := false
	for _, v := range decl.Variants {
		if v.Markers == None {
			continue
		}
		marked = true
		errs = errors.Join(errs, ValidateShape(decl, v))
	}
	if errs != nil {
		return nil, errs
	}
	if !marked {
		return nil, codefmt.Errorf(decl, decl, "enum %s must contain at least one propagate.Good or propagate.Bad variant; did you forget to mark a good or bad variant?", decl.Name())
	}

	p := &Plan{
		Decl: decl,
		Good: GroupVariants(decl.Variants, Good),
		Bad:  GroupVariants(decl.Variants, Bad),
	}
	if err := ValidateGrouped(decl, p.Good); err != nil {
		return nil, err
	}
	if err := ValidateGrouped(decl, p.Bad); err != nil {
		return nil, err
	}

	p.GoodTable = BuildTable(decl.Variants, Good)
	p.BadTable = BuildTable(decl.Variants, Bad)
	p.TwoState = TwoStateEligible(p.Good, p.Bad, decl.Variants, p.GoodTable, p.BadTable)
	p.Tag = tagType(len(decl.Variants))
	return p, nil
}

// tagType chooses the smallest unsigned integer type which holds every
// variant index.
func tagType(n int) string {
	if _, err := safecast.Conv[uint8](n - 1); err == nil {
		return "uint8"
	}
	if _, err := safecast.Conv[uint16](n - 1); err == nil {
		return "uint16"
	}
	return "uint32"
}
