package gen

import (
	"strings"
	"testing"
)

func smallSchema() *Schema {
	return &Schema{
		Enums: []Enum{
			{
				Name: "Widget",
				Repr: "u16",
				Variants: []Variant{
					{Name: "Foo", Value: 1},
					{Name: "Bar", Value: 2},
				},
			},
		},
		Requests: []Request{
			{
				Name:  "PingBody",
				Major: 9,
				Minor: 0,
				Fields: []Field{
					{Name: "Seq", Type: "u16"},
					{Name: "Note", Type: "ByteString"},
				},
			},
			{
				Name:   "PongBody",
				Major:  10,
				Minor:  0,
				Fields: nil,
			},
		},
	}
}

func TestGenerateProducesFormattedSource(t *testing.T) {
	src, err := Generate(smallSchema(), "ximtest")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	out := string(src)
	for _, want := range []string{
		"package ximtest",
		"type Widget uint16",
		"WidgetFoo Widget = 1",
		"WidgetBar Widget = 2",
		"type PingBody struct",
		"Seq  uint16",
		"Note wire.ByteString",
		"majorPing uint8 = 9",
		"func readRequestBody(major, minor uint8, r *wire.Reader) (RequestBody, error)",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("generated source missing %q\n--- source ---\n%s", want, out)
		}
	}
}

func TestGenerateEmptyRequestHasZeroSize(t *testing.T) {
	src, err := Generate(smallSchema(), "ximtest")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	out := string(src)
	if !strings.Contains(out, "func (b *PongBody) Size() int {\n\treturn 0\n}") {
		t.Fatalf("PongBody (no fields) must report Size() 0, got:\n%s", out)
	}
}

func TestGenerateEnumReadRejectsUnknownValue(t *testing.T) {
	src, err := Generate(smallSchema(), "ximtest")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	out := string(src)
	if !strings.Contains(out, `return r.InvalidData("Widget", n)`) {
		t.Fatalf("generated Widget.Read must reject out-of-domain values via InvalidData, got:\n%s", out)
	}
}
