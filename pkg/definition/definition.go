// Package definition loads declarative form documents and builds them into
// widgets.
//
// A document is YAML:
//
//	name: signup
//	fields:
//	  - tag: input-text
//	    name: user
//	    attributes: {required: ~, minlength: 3}
//	    filters: [trim, lower]
//	    rules:
//	      - kind: pattern
//	        value: "[a-z0-9]+"
//	        message: letters and digits only
//	  - tag: input-slider
//	    name: volume
//	    attributes: {min: 0, max: 10, step: 0.5, value: 4}
//
// Attribute values are kept as written; a null value is an empty string,
// which sets a flag attribute.
package definition

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/formkit/pkg/attr"
)

// Document is a form definition.
type Document struct {
	Name   string  `yaml:"name"`
	Fields []Field `yaml:"fields"`
}

// Field declares one widget.
type Field struct {
	Tag        string     `yaml:"tag"`
	Name       string     `yaml:"name,omitempty"`
	Attributes Attributes `yaml:"attributes,omitempty"`
	Filters    []string   `yaml:"filters,omitempty"`
	Rules      []Rule     `yaml:"rules,omitempty"`
}

// Rule declares a validity rule. Kind is one of required, min-length,
// max-length, pattern, not-empty or range.
type Rule struct {
	Kind    string   `yaml:"kind"`
	Value   string   `yaml:"value,omitempty"`
	Min     *float64 `yaml:"min,omitempty"`
	Max     *float64 `yaml:"max,omitempty"`
	Message string   `yaml:"message,omitempty"`
}

// Attributes is a mapping of attribute names to their raw text.
type Attributes attr.Set

// UnmarshalYAML keeps scalar values as written, so numbers and booleans
// reach the widget parsers unchanged.
func (a *Attributes) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: attributes must be a mapping", node.Line)
	}
	out := make(Attributes, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: attribute %q must be a scalar", val.Line, key.Value)
		}
		if val.Tag == "!!null" {
			out[key.Value] = ""
			continue
		}
		out[key.Value] = val.Value
	}
	*a = out
	return nil
}

// Parse decodes a document and checks its structure.
func Parse(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("definition: empty document")
		}
		return nil, fmt.Errorf("definition: %w", err)
	}
	if err := doc.Check(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Load reads and parses a document from r.
func Load(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("definition: %w", err)
	}
	return Parse(data)
}

// LoadFile reads and parses the document at path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("definition: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Check reports structural problems: missing tags and rules without a kind.
func (d *Document) Check() error {
	for i, f := range d.Fields {
		if f.Tag == "" {
			return fmt.Errorf("definition: field %d: missing tag", i)
		}
		for j, r := range f.Rules {
			if r.Kind == "" {
				return fmt.Errorf("definition: field %d (%s): rule %d: missing kind", i, f.Label(), j)
			}
		}
	}
	return nil
}

// Label names the field for messages: its name, or its tag.
func (f Field) Label() string {
	if f.Name != "" {
		return f.Name
	}
	return f.Tag
}

// Marshal encodes the document as YAML.
func (d *Document) Marshal() ([]byte, error) {
	return yaml.Marshal(d)
}
