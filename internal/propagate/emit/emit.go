// Package emit writes the Go code of derived enums.
package emit

import (
	"fmt"
	"go/types"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sublee/propagate/internal/codefmt"
	"github.com/sublee/propagate/internal/propagate/derive"
	"github.com/sublee/propagate/internal/words"
)

// Reserved are the method names of generated enums. Variants cannot use them.
var Reserved = []string{
	"String",
	"VariantIndex",
	"GoodIndexes",
	"BadIndexes",
	"ExtractGood",
	"ExtractBad",
	"ExtractGoodRef",
	"ExtractBadRef",
	"ConstructGood",
	"ConstructBad",
	"ExactlyTwoDistinctVariants",
}

// ConstructorName returns the name of the function which creates the variant.
// It is the enum name followed by the capitalized variant name.
//
//	ConstructorName(Size, TooSmall) // "SizeTooSmall"
//	ConstructorName(size, tooSmall) // "sizeTooSmall"
func ConstructorName(decl *derive.Decl, v *derive.Variant) string {
	r, size := utf8.DecodeRuneInString(v.Name())
	return decl.Name() + string(unicode.ToUpper(r)) + v.Name()[size:]
}

// enumWriter writes code for one enum.
type enumWriter struct {
	w  *codefmt.Writer
	p  *derive.Plan
	rt string // name of the runtime package

	tparams string // e.g., "[T any, E error]"
	targs   string // e.g., "[T, E]"

	// tag is the name of the field which holds the variant index. It is
	// "variant" unless a variant takes that name.
	tag string

	// fields are the storage field names of each variant.
	fields [][]string
}

// Write writes the code of the planned enum. Constructor names must have been
// reserved in the namespace of the writer.
func Write(w *codefmt.Writer, p *derive.Plan) {
	ew := &enumWriter{
		w:  w,
		p:  p,
		rt: w.Import(derive.ImportPath, "propagate"),
	}
	ew.initTypeParams()
	ew.initFields()

	ew.writeType()
	for _, v := range p.Decl.Variants {
		ew.writeConstructor(v)
		ew.writeAccessor(v)
	}
	ew.writeString()
	for _, m := range []derive.Marker{derive.Good, derive.Bad} {
		if len(p.Groups(m)) == 0 {
			continue
		}
		ew.writeExtract(m, false)
		ew.writeExtract(m, true)
		if len(p.Constructors(m)) != 0 {
			ew.writeConstruct(m)
		}
	}
	ew.writeClassified()
	if p.TwoState {
		ew.writeTwoState()
	}
}

func (ew *enumWriter) initTypeParams() {
	tps := ew.p.Decl.TypeParams
	if tps.Len() == 0 {
		return
	}

	params := make([]string, tps.Len())
	args := make([]string, tps.Len())
	for i := 0; i < tps.Len(); i++ {
		tp := tps.At(i)
		args[i] = tp.Obj().Name()
		params[i] = ew.w.Sprintf("%s %t", tp.Obj().Name(), tp.Constraint())
	}
	ew.tparams = "[" + strings.Join(params, ", ") + "]"
	ew.targs = "[" + strings.Join(args, ", ") + "]"
}

// initFields names the storage fields. A field is named after its variant
// and its name or position, such as "pointX" or "pair0".
func (ew *enumWriter) initFields() {
	ns := make(codefmt.NS)
	for _, name := range Reserved {
		ns.Reserve(name)
	}
	for _, v := range ew.p.Decl.Variants {
		ns.Reserve(v.Name())
	}
	ew.tag = ns.Name("variant")

	ew.fields = make([][]string, len(ew.p.Decl.Variants))
	for i, v := range ew.p.Decl.Variants {
		for j, f := range v.Fields {
			suffix := ""
			switch {
			case v.Kind == derive.Tuple:
				suffix = fmt.Sprint(j)
			case f.Name != "" && f.Name != "_":
				suffix = f.Name
			case v.Kind == derive.Named:
				suffix = fmt.Sprint(j)
			}

			name := words.LowerCamel(v.Name(), suffix)
			if name == "" {
				name = "field"
			}
			ew.fields[i] = append(ew.fields[i], ns.Name(name))
		}
	}
}

// typ returns the enum type with its type arguments.
func (ew *enumWriter) typ() string {
	return ew.p.Decl.Name() + ew.targs
}

// local returns a namespace for names local to a function.
func (ew *enumWriter) local() codefmt.NS {
	ns := ew.w.NS().Clone()
	tps := ew.p.Decl.TypeParams
	for i := 0; i < tps.Len(); i++ {
		ns.Reserve(tps.At(i).Obj().Name())
	}
	return ns
}

func (ew *enumWriter) writeDoc() {
	if doc := ew.p.Decl.Doc; doc != nil {
		for _, c := range doc.List {
			ew.w.Printf("%s\n", c.Text)
		}
		return
	}

	names := make([]string, len(ew.p.Decl.Variants))
	for i, v := range ew.p.Decl.Variants {
		names[i] = v.Name()
	}
	ew.w.Printf("// %s is an enum of %s.\n", ew.p.Decl.Name(), strings.Join(names, ", "))
}

func (ew *enumWriter) writeType() {
	ew.writeDoc()
	ew.w.Printf("type %s%s struct {\n", ew.p.Decl.Name(), ew.tparams)
	ew.w.Printf("%s %s\n", ew.tag, ew.p.Tag)
	for i, v := range ew.p.Decl.Variants {
		for j, f := range v.Fields {
			ew.w.Printf("%s %t\n", ew.fields[i][j], f.Type)
		}
	}
	ew.w.Printf("}\n\n")
}

func (ew *enumWriter) writeConstructor(v *derive.Variant) {
	ns := ew.local()
	params := make([]string, len(v.Fields))
	inits := []string{fmt.Sprintf("%s: %d", ew.tag, v.Index)}
	for i, f := range v.Fields {
		name := "v"
		switch {
		case f.Name != "" && f.Name != "_":
			name = f.Name
		case v.Kind == derive.Tuple || v.Kind == derive.Named:
			name = fmt.Sprintf("v%d", i)
		}
		name = ns.Name(name)

		params[i] = ew.w.Sprintf("%s %t", name, f.Type)
		inits = append(inits, fmt.Sprintf("%s: %s", ew.fields[v.Index][i], name))
	}

	name := ConstructorName(ew.p.Decl, v)
	ew.w.Printf("// %s creates a %s variant of %s.\n", name, v.Name(), ew.p.Decl.Name())
	ew.w.Printf("func %s%s(%s) %s {\n", name, ew.tparams, strings.Join(params, ", "), ew.typ())
	ew.w.Printf("return %s{%s}\n", ew.typ(), strings.Join(inits, ", "))
	ew.w.Printf("}\n\n")
}

// writeAccessor writes a method which returns the fields of a variant. Fields
// of inactive variants are always zero, so they are returned as they are.
func (ew *enumWriter) writeAccessor(v *derive.Variant) {
	recv := ew.local().Name("e")

	results := make([]string, 0, len(v.Fields)+1)
	values := make([]string, 0, len(v.Fields)+1)
	for i, f := range v.Fields {
		results = append(results, ew.w.Sprintf("%t", f.Type))
		values = append(values, recv+"."+ew.fields[v.Index][i])
	}
	results = append(results, "bool")
	values = append(values, fmt.Sprintf("%s.%s == %d", recv, ew.tag, v.Index))

	if len(v.Fields) == 0 {
		ew.w.Printf("// %s reports whether the value is the %s variant.\n", v.Name(), v.Name())
		ew.w.Printf("func (%s %s) %s() bool {\n", recv, ew.typ(), v.Name())
	} else {
		ew.w.Printf("// %s returns the fields of the %s variant. The last result reports\n", v.Name(), v.Name())
		ew.w.Printf("// whether the value is the variant.\n")
		ew.w.Printf("func (%s %s) %s() (%s) {\n", recv, ew.typ(), v.Name(), strings.Join(results, ", "))
	}
	ew.w.Printf("return %s\n", strings.Join(values, ", "))
	ew.w.Printf("}\n\n")
}

func (ew *enumWriter) writeString() {
	recv := ew.local().Name("e")

	names := make([]string, len(ew.p.Decl.Variants))
	for i, v := range ew.p.Decl.Variants {
		names[i] = fmt.Sprintf("%q", v.Name())
	}

	ew.w.Printf("// String returns the variant name.\n")
	ew.w.Printf("func (%s %s) String() string {\n", recv, ew.typ())
	ew.w.Printf("return [...]string{%s}[%s.%s]\n", strings.Join(names, ", "), recv, ew.tag)
	ew.w.Printf("}\n\n")
}

// payloadType returns the payload type of a group. If ref is true, the payload
// refers to the fields instead of copying them.
func (ew *enumWriter) payloadType(g *derive.Group, ref bool) string {
	switch g.Kind {
	case derive.Unit:
		if ref {
			return "*struct{}"
		}
		return "struct{}"

	case derive.Single:
		t := g.Key
		if ref {
			t = types.NewPointer(t)
		}
		return ew.w.Sprintf("%t", t)

	case derive.Tuple:
		elems := make([]string, len(g.Variants[0].Fields))
		for i, f := range g.Variants[0].Fields {
			t := f.Type
			if ref {
				t = types.NewPointer(t)
			}
			elems[i] = ew.w.Sprintf("%t", t)
		}
		return fmt.Sprintf("%s.Tuple%d[%s]", ew.rt, len(elems), strings.Join(elems, ", "))
	}
	panic(fmt.Sprintf("group of %s variants cannot be a payload", g.Kind))
}

// payloadValue returns an expression which builds the payload of a variant.
func (ew *enumWriter) payloadValue(g *derive.Group, v *derive.Variant, recv string, ref bool) string {
	amp := ""
	if ref {
		amp = "&"
	}

	fields := ew.fields[v.Index]
	switch g.Kind {
	case derive.Unit:
		if ref {
			return ew.rt + ".UnitRef()"
		}
		return "struct{}{}"

	case derive.Single:
		return amp + recv + "." + fields[0]

	case derive.Tuple:
		elems := make([]string, len(fields))
		for i, field := range fields {
			elems[i] = fmt.Sprintf("V%d: %s%s.%s", i, amp, recv, field)
		}
		return fmt.Sprintf("%s{%s}", ew.payloadType(g, ref), strings.Join(elems, ", "))
	}
	panic(fmt.Sprintf("group of %s variants cannot be a payload", g.Kind))
}

// writeExtract writes ExtractGood, ExtractBad, or their Ref variations. The
// target is switched by the payload type of each group. Then the variant is
// switched in the order of the group. Variants outside the group fall back to
// false.
func (ew *enumWriter) writeExtract(m derive.Marker, ref bool) {
	ns := ew.local()
	recv := ns.Name("e")
	target := ns.Name("target")

	method := "Extract" + m.TypeName()
	iface := m.TypeName() + "Extractor"
	recvType := ew.typ()
	if ref {
		method += "Ref"
		iface = m.TypeName() + "RefExtractor"
		recvType = "*" + recvType
	}

	ew.w.Printf("// %s implements [%s.%s].\n", method, ew.rt, iface)
	ew.w.Printf("func (%s %s) %s(%s any) bool {\n", recv, recvType, method, target)
	ew.w.Printf("switch %s := %s.(type) {\n", target, target)
	for _, g := range ew.p.Groups(m) {
		ew.w.Printf("case *%s:\n", ew.payloadType(g, ref))
		ew.w.Printf("switch %s.%s {\n", recv, ew.tag)
		for _, v := range g.Variants {
			ew.w.Printf("case %d:\n", v.Index)
			ew.w.Printf("*%s = %s\n", target, ew.payloadValue(g, v, recv, ref))
		}
		ew.w.Printf("default:\n")
		ew.w.Printf("return false\n")
		ew.w.Printf("}\n")
	}
	ew.w.Printf("default:\n")
	ew.w.Printf("panic(%s.Unsupported(%q, %q, %s))\n", ew.rt, ew.p.Decl.Name(), m.String(), target)
	ew.w.Printf("}\n")
	ew.w.Printf("return true\n")
	ew.w.Printf("}\n\n")
}

// writeConstruct writes ConstructGood or ConstructBad for the groups which
// have exactly one variant.
func (ew *enumWriter) writeConstruct(m derive.Marker) {
	ns := ew.local()
	recv := ns.Name("e")
	payload := ns.Name("payload")

	method := "Construct" + m.TypeName()
	ew.w.Printf("// %s implements [%s.%sConstructor].\n", method, ew.rt, m.TypeName())
	ew.w.Printf("func (%s *%s) %s(%s any) {\n", recv, ew.typ(), method, payload)
	ew.w.Printf("switch %s := %s.(type) {\n", payload, payload)
	for _, g := range ew.p.Constructors(m) {
		v := g.Variants[0]

		var args []string
		switch g.Kind {
		case derive.Single:
			args = append(args, payload)
		case derive.Tuple:
			for i := range v.Fields {
				args = append(args, fmt.Sprintf("%s.V%d", payload, i))
			}
		}

		ew.w.Printf("case %s:\n", ew.payloadType(g, false))
		ew.w.Printf("*%s = %s%s(%s)\n", recv, ConstructorName(ew.p.Decl, v), ew.targs, strings.Join(args, ", "))
	}
	ew.w.Printf("default:\n")
	ew.w.Printf("panic(%s.Unsupported(%q, %q, %s))\n", ew.rt, ew.p.Decl.Name(), m.String(), payload)
	ew.w.Printf("}\n")
	ew.w.Printf("}\n\n")
}

func (ew *enumWriter) writeClassified() {
	recv := ew.local().Name("e")

	ew.w.Printf("// VariantIndex returns the declaration order of the variant.\n")
	ew.w.Printf("func (%s %s) VariantIndex() int {\n", recv, ew.typ())
	ew.w.Printf("return int(%s.%s)\n", recv, ew.tag)
	ew.w.Printf("}\n\n")

	ew.w.Printf("// GoodIndexes returns the packed table of good variants.\n")
	ew.w.Printf("func (%s) GoodIndexes() string {\n", ew.typ())
	ew.w.Printf("return %s\n", TableLiteral(ew.p.GoodTable))
	ew.w.Printf("}\n\n")

	ew.w.Printf("// BadIndexes returns the packed table of bad variants.\n")
	ew.w.Printf("func (%s) BadIndexes() string {\n", ew.typ())
	ew.w.Printf("return %s\n", TableLiteral(ew.p.BadTable))
	ew.w.Printf("}\n\n")
}

func (ew *enumWriter) writeTwoState() {
	ew.w.Printf("// ExactlyTwoDistinctVariants implements [%s.ExactlyTwoDistinctVariants].\n", ew.rt)
	ew.w.Printf("func (%s) ExactlyTwoDistinctVariants() {}\n\n", ew.typ())
}

// TableLiteral returns a string literal of a packed table with every byte
// escaped.
//
//	TableLiteral([]byte{0x05, 0x10}) // `"\x05\x10"`
func TableLiteral(table []byte) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, c := range table {
		fmt.Fprintf(&b, `\x%02x`, c)
	}
	b.WriteByte('"')
	return b.String()
}
