// Package gen implements the schema-driven code generator that
// produces xim_gen.go from schema.yaml (§4.1). It is a normal Go
// package, not a build-time-only tool, so the schema and the emitted
// source can both be inspected and unit tested.
package gen

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Schema is the top-level document schema.yaml decodes into. Field
// order in Enums and Requests, and within a Request's Fields, is
// significant: it is the wire order, so both are plain ordered slices
// rather than maps (YAML object keys are unordered in Go's decoder;
// a sequence preserves source order, matching xim-gen's HashMap-free
// Vec-based RequestFormat in the original generator).
type Schema struct {
	Enums    []Enum    `yaml:"enums"`
	Requests []Request `yaml:"requests"`
}

// Enum describes one closed wire enumeration (AttrType, AttributeName,
// ErrorCode, ...).
type Enum struct {
	Name     string    `yaml:"name"`
	Repr     string    `yaml:"repr"` // "u8", "u16" or "u32"; empty means "u16"
	Variants []Variant `yaml:"variants"`
}

// Variant is one named value of an Enum.
type Variant struct {
	Name  string `yaml:"name"`
	Value uint32 `yaml:"value"`
}

// Request describes one request body type and the major opcode it is
// read from and written to. Minor is always 0 in this schema (§4.1);
// the field is kept for forward compatibility with a future
// sub-dispatch extension.
type Request struct {
	Name   string  `yaml:"name"`
	Major  uint8   `yaml:"major"`
	Minor  uint8   `yaml:"minor"`
	Fields []Field `yaml:"fields"`
}

// Field is one member of a Request body, in wire order.
type Field struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// Decode parses a schema document from r.
func Decode(r io.Reader) (*Schema, error) {
	var s Schema
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("gen: decode schema: %w", err)
	}
	return &s, nil
}
