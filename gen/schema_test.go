package gen

import (
	"strings"
	"testing"
)

// TestDecodePreservesFieldOrder exercises the §9 OPEN resolution
// directly: schema.yaml is a sequence, not a mapping, so Decode must
// hand back fields and variants in file order for the wire order to
// be recoverable.
func TestDecodePreservesFieldOrder(t *testing.T) {
	doc := `
enums:
  - name: Color
    repr: u8
    variants:
      - {name: Red, value: 2}
      - {name: Green, value: 1}
      - {name: Blue, value: 0}

requests:
  - {name: PaintBody, major: 5, minor: 0, fields: [
      {name: Z, type: u32},
      {name: A, type: u16},
      {name: M, type: ByteString},
    ]}
`
	schema, err := Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if len(schema.Enums) != 1 || schema.Enums[0].Name != "Color" {
		t.Fatalf("Enums = %+v", schema.Enums)
	}
	wantVariants := []string{"Red", "Green", "Blue"}
	for i, v := range schema.Enums[0].Variants {
		if v.Name != wantVariants[i] {
			t.Fatalf("Variants[%d] = %q, want %q (file order must survive decode)", i, v.Name, wantVariants[i])
		}
	}

	if len(schema.Requests) != 1 || schema.Requests[0].Name != "PaintBody" {
		t.Fatalf("Requests = %+v", schema.Requests)
	}
	wantFields := []string{"Z", "A", "M"}
	for i, f := range schema.Requests[0].Fields {
		if f.Name != wantFields[i] {
			t.Fatalf("Fields[%d] = %q, want %q (file order must survive decode)", i, f.Name, wantFields[i])
		}
	}
}

func TestDecodeInvalidYAMLErrors(t *testing.T) {
	if _, err := Decode(strings.NewReader("not: [valid: yaml")); err == nil {
		t.Fatal("Decode with malformed YAML: want error, got nil")
	}
}
