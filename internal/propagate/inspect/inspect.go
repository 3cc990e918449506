// Package inspect summarizes derivation plans for humans and tools.
package inspect

import (
	"encoding/hex"

	"github.com/sublee/propagate/internal/codefmt"
	"github.com/sublee/propagate/internal/propagate/derive"
)

// Enum is a summary of a derived enum.
type Enum struct {
	Package   string    `json:"package" yaml:"package" toml:"package" msgpack:"package"`
	Name      string    `json:"name" yaml:"name" toml:"name" msgpack:"name"`
	Pos       string    `json:"pos" yaml:"pos" toml:"pos" msgpack:"pos"`
	Tag       string    `json:"tag" yaml:"tag" toml:"tag" msgpack:"tag"`
	Variants  []Variant `json:"variants" yaml:"variants" toml:"variants" msgpack:"variants"`
	Good      []Group   `json:"good,omitempty" yaml:"good,omitempty" toml:"good,omitempty" msgpack:"good,omitempty"`
	Bad       []Group   `json:"bad,omitempty" yaml:"bad,omitempty" toml:"bad,omitempty" msgpack:"bad,omitempty"`
	GoodTable string    `json:"good_table" yaml:"good_table" toml:"good_table" msgpack:"good_table"`
	BadTable  string    `json:"bad_table" yaml:"bad_table" toml:"bad_table" msgpack:"bad_table"`
	TwoState  bool      `json:"two_state" yaml:"two_state" toml:"two_state" msgpack:"two_state"`
}

// Variant is a summary of a variant.
type Variant struct {
	Index   int      `json:"index" yaml:"index" toml:"index" msgpack:"index"`
	Name    string   `json:"name" yaml:"name" toml:"name" msgpack:"name"`
	Kind    string   `json:"kind" yaml:"kind" toml:"kind" msgpack:"kind"`
	Markers string   `json:"markers" yaml:"markers" toml:"markers" msgpack:"markers"`
	Fields  []string `json:"fields,omitempty" yaml:"fields,omitempty" toml:"fields,omitempty" msgpack:"fields,omitempty"`
}

// Group is a summary of a variant group.
type Group struct {
	Kind        string   `json:"kind" yaml:"kind" toml:"kind" msgpack:"kind"`
	Payload     string   `json:"payload" yaml:"payload" toml:"payload" msgpack:"payload"`
	Variants    []string `json:"variants" yaml:"variants" toml:"variants" msgpack:"variants"`
	Constructor bool     `json:"constructor" yaml:"constructor" toml:"constructor" msgpack:"constructor"`
}

// Summarize summarizes the plans in order.
func Summarize(plans []*derive.Plan) []Enum {
	enums := make([]Enum, 0, len(plans))
	for _, p := range plans {
		enums = append(enums, summarize(p))
	}
	return enums
}

func summarize(p *derive.Plan) Enum {
	decl := p.Decl
	f := codefmt.New(decl.Pkg())

	e := Enum{
		Package:   decl.Pkg().PkgPath,
		Name:      decl.Name(),
		Pos:       f.Pos(decl.Pos()),
		Tag:       p.Tag,
		GoodTable: hex.EncodeToString(p.GoodTable),
		BadTable:  hex.EncodeToString(p.BadTable),
		TwoState:  p.TwoState,
	}

	for _, v := range decl.Variants {
		sv := Variant{
			Index:   v.Index,
			Name:    v.Name(),
			Kind:    v.Kind.String(),
			Markers: v.Markers.String(),
		}
		for _, field := range v.Fields {
			s := f.Type(field.Type)
			if field.Name != "" {
				s = field.Name + " " + s
			}
			sv.Fields = append(sv.Fields, s)
		}
		e.Variants = append(e.Variants, sv)
	}

	e.Good = summarizeGroups(f, p, derive.Good)
	e.Bad = summarizeGroups(f, p, derive.Bad)
	return e
}

func summarizeGroups(f codefmt.Formatter, p *derive.Plan, m derive.Marker) []Group {
	var groups []Group
	for _, g := range p.Groups(m) {
		sg := Group{
			Kind:        g.Kind.String(),
			Constructor: len(g.Variants) == 1,
		}
		switch g.Kind {
		case derive.Unit:
			sg.Payload = "struct{}"
		case derive.Single:
			sg.Payload = f.Type(g.Key)
		default:
			sg.Payload = f.TypeList(g.Types())
		}
		for _, v := range g.Variants {
			sg.Variants = append(sg.Variants, v.Name())
		}
		groups = append(groups, sg)
	}
	return groups
}
