package lightconfig

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLCodec stores a document as a YAML mapping with a list of vars
type YAMLCodec struct{}

type yamlDocument struct {
	Owner string    `yaml:"owner,omitempty"`
	Vars  []yamlVar `yaml:"vars"`
}

type yamlVar struct {
	Key   string `yaml:"key"`
	Label string `yaml:"label,omitempty"`
	Type  string `yaml:"type,omitempty"`
	Value any    `yaml:"value"`
}

// Format returns FormatYAML
func (c *YAMLCodec) Format() string { return FormatYAML }

// Encode writes doc as YAML
func (c *YAMLCodec) Encode(w io.Writer, doc *Document) error {
	out := yamlDocument{Owner: doc.Owner, Vars: make([]yamlVar, 0, len(doc.Vars))}
	for _, r := range doc.Vars {
		out.Vars = append(out.Vars, yamlVar{Key: r.Key, Label: r.Label, Type: r.Type, Value: r.Value})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to marshal config data to YAML: %w", err)
	}
	return enc.Close()
}

// Decode reads a YAML document
func (c *YAMLCodec) Decode(r io.Reader) (*Document, error) {
	var in yamlDocument
	if err := yaml.NewDecoder(r).Decode(&in); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}

	doc := &Document{Owner: in.Owner, Vars: make([]Record, 0, len(in.Vars))}
	for _, yv := range in.Vars {
		doc.Vars = append(doc.Vars, Record{Key: yv.Key, Label: yv.Label, Type: yv.Type, Value: yv.Value})
	}
	return doc, nil
}
