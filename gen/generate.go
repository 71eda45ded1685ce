package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"strings"
)

// scalarTypes maps a schema field type name to the wire.Reader/Writer
// method used to decode/encode it inline. Anything not in this table
// is a composite type (an Enum this schema defines, or one of the
// hand-written wire/xim primitives) that implements Format itself and
// is read/written via its own Read/Write/Size methods instead.
var scalarTypes = map[string]struct{ goType, method string }{
	"u8":   {"uint8", "U8"},
	"byte": {"byte", "U8"},
	"u16":  {"uint16", "U16"},
	"u32":  {"uint32", "U32"},
	"i16":  {"int16", "I16"},
	"i32":  {"int32", "I32"},
}

// Generate renders a schema into a formatted Go source file in
// package pkg. The emitted file holds the opcode constants, then one
// type plus Read/Write/Size per enum and per request body, then the
// readRequestBody dispatch switch.
func Generate(s *Schema, pkg string) ([]byte, error) {
	var b bytes.Buffer
	p := &printer{w: &b}

	p.P("// Code generated by ximgen from schema.yaml. DO NOT EDIT.")
	p.P("")
	p.P("package %s", pkg)
	p.P("")
	p.P(`import "github.com/netrack/xim/wire"`)
	p.P("")

	generateOpcodes(p, s.Requests)
	for _, e := range s.Enums {
		generateEnum(p, e)
	}
	for _, r := range s.Requests {
		if err := generateRequest(p, r); err != nil {
			return nil, err
		}
	}
	generateDispatch(p, s.Requests)

	return format.Source(b.Bytes())
}

// printer is a minimal incremental source printer, the way protoc-style
// generators (e.g. the Go protobuf plugin) accumulate output line by
// line rather than templating a whole file at once.
type printer struct {
	w      *bytes.Buffer
	indent int
}

func (p *printer) P(format string, args ...interface{}) {
	p.w.WriteString(strings.Repeat("\t", p.indent))
	fmt.Fprintf(p.w, format, args...)
	p.w.WriteByte('\n')
}

func (p *printer) In()  { p.indent++ }
func (p *printer) Out() { p.indent-- }

func opcodeConstName(reqName string) string {
	return "major" + strings.TrimSuffix(reqName, "Body")
}

func generateOpcodes(p *printer, reqs []Request) {
	p.P("const (")
	p.In()
	for _, r := range reqs {
		p.P("%s uint8 = %d", opcodeConstName(r.Name), r.Major)
	}
	p.Out()
	p.P(")")
	p.P("")
}

func generateEnum(p *printer, e Enum) {
	repr := e.Repr
	if repr == "" {
		repr = "u16"
	}
	goType := scalarTypes[repr].goType
	readMethod := scalarTypes[repr].method

	p.P("type %s %s", e.Name, goType)
	p.P("")
	p.P("const (")
	p.In()
	for _, v := range e.Variants {
		p.P("%s%s %s = %d", e.Name, v.Name, e.Name, v.Value)
	}
	p.Out()
	p.P(")")
	p.P("")

	p.P("func (v *%s) Read(r *wire.Reader) error {", e.Name)
	p.In()
	p.P("n, err := r.%s()", readMethod)
	p.P("if err != nil {")
	p.In()
	p.P("return err")
	p.Out()
	p.P("}")
	p.P("switch %s(n) {", e.Name)
	p.In()
	names := make([]string, len(e.Variants))
	for i, v := range e.Variants {
		names[i] = e.Name + v.Name
	}
	sort.Strings(names)
	p.P("case %s:", strings.Join(names, ", "))
	p.In()
	p.P("*v = %s(n)", e.Name)
	p.P("return nil")
	p.Out()
	p.P("default:")
	p.In()
	p.P("return r.InvalidData(%q, n)", e.Name)
	p.Out()
	p.Out()
	p.P("}")
	p.Out()
	p.P("}")
	p.P("")

	p.P("func (v %s) Write(w *wire.Writer) { w.%s(%s(v)) }", e.Name, readMethod, goType)
	p.P("func (%s) Size() int { return %d }", e.Name, sizeOf(repr))
	p.P("")
}

func generateRequest(p *printer, r Request) error {
	p.P("type %s struct {", r.Name)
	p.In()
	for _, f := range r.Fields {
		p.P("%s %s", f.Name, goFieldType(f.Type))
	}
	p.Out()
	p.P("}")
	p.P("")

	p.P("func (b *%s) Read(r *wire.Reader) error {", r.Name)
	p.In()
	for _, f := range r.Fields {
		if _, ok := scalarTypes[f.Type]; ok {
			p.P("var err error")
			break
		}
	}
	for _, f := range r.Fields {
		if st, ok := scalarTypes[f.Type]; ok {
			p.P("if b.%s, err = r.%s(); err != nil {", f.Name, st.method)
			p.In()
			p.P("return err")
			p.Out()
			p.P("}")
		} else {
			p.P("if err := b.%s.Read(r); err != nil {", f.Name)
			p.In()
			p.P("return err")
			p.Out()
			p.P("}")
		}
	}
	p.P("return nil")
	p.Out()
	p.P("}")
	p.P("")

	p.P("func (b *%s) Write(w *wire.Writer) {", r.Name)
	p.In()
	for _, f := range r.Fields {
		if st, ok := scalarTypes[f.Type]; ok {
			p.P("w.%s(b.%s)", st.method, f.Name)
		} else {
			p.P("b.%s.Write(w)", f.Name)
		}
	}
	p.Out()
	p.P("}")
	p.P("")

	p.P("func (b *%s) Size() int {", r.Name)
	p.In()
	terms := make([]string, 0, len(r.Fields))
	for _, f := range r.Fields {
		if st, ok := scalarTypes[f.Type]; ok {
			terms = append(terms, fmt.Sprintf("%d", sizeOf(st.method)))
		} else {
			terms = append(terms, fmt.Sprintf("b.%s.Size()", f.Name))
		}
	}
	if len(terms) == 0 {
		p.P("return 0")
	} else {
		p.P("return %s", strings.Join(terms, " + "))
	}
	p.Out()
	p.P("}")
	p.P("")

	return nil
}

func generateDispatch(p *printer, reqs []Request) {
	p.P("func readRequestBody(major, minor uint8, r *wire.Reader) (RequestBody, error) {")
	p.In()
	p.P("var body RequestBody")
	p.P("")
	p.P("switch major {")
	p.In()
	for _, r := range reqs {
		p.P("case %s:", opcodeConstName(r.Name))
		p.In()
		p.P("body = &%s{}", r.Name)
		p.Out()
	}
	p.P("default:")
	p.In()
	p.P(`return nil, r.InvalidData("Opcode", [2]uint8{major, minor})`)
	p.Out()
	p.Out()
	p.P("}")
	p.P("")
	p.P("if err := body.Read(r); err != nil {")
	p.In()
	p.P("return nil, err")
	p.Out()
	p.P("}")
	p.P("return body, nil")
	p.Out()
	p.P("}")
}

// goFieldType maps a schema field type name to the Go type a request
// body struct field is declared with.
func goFieldType(typ string) string {
	if st, ok := scalarTypes[typ]; ok {
		return st.goType
	}
	switch typ {
	case "ByteString", "ByteStringList", "AttributeList", "U16List":
		return "wire." + typ
	default:
		// An Enum this schema defines, or a hand-written xim-package
		// composite (InputStyle, ErrorFlag, ForwardEventFlag, AttrList).
		return typ
	}
}

func sizeOf(kind string) int {
	switch kind {
	case "u8", "U8", "byte":
		return 1
	case "u16", "U16", "i16", "I16":
		return 2
	case "u32", "U32", "i32", "I32":
		return 4
	default:
		return 0
	}
}
