package lightconfig

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONCodec stores a document as JSON. Numbers decode as json.Number to
// keep integer precision until they reach their field.
type JSONCodec struct {
	Indent string
}

type jsonDocument struct {
	Owner string    `json:"owner,omitempty"`
	Vars  []jsonVar `json:"vars"`
}

type jsonVar struct {
	Key   string `json:"key"`
	Label string `json:"label,omitempty"`
	Type  string `json:"type,omitempty"`
	Value any    `json:"value"`
}

// Format returns FormatJSON
func (c *JSONCodec) Format() string { return FormatJSON }

// Encode writes doc as JSON
func (c *JSONCodec) Encode(w io.Writer, doc *Document) error {
	out := jsonDocument{Owner: doc.Owner, Vars: make([]jsonVar, 0, len(doc.Vars))}
	for _, r := range doc.Vars {
		out.Vars = append(out.Vars, jsonVar{Key: r.Key, Label: r.Label, Type: r.Type, Value: r.Value})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", c.Indent)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to marshal config data to JSON: %w", err)
	}
	return nil
}

// Decode reads a JSON document
func (c *JSONCodec) Decode(r io.Reader) (*Document, error) {
	var in jsonDocument
	decoder := json.NewDecoder(r)
	decoder.UseNumber() // Preserve number precision
	if err := decoder.Decode(&in); err != nil {
		return nil, fmt.Errorf("failed to parse JSON config: %w", err)
	}

	doc := &Document{Owner: in.Owner, Vars: make([]Record, 0, len(in.Vars))}
	for _, jv := range in.Vars {
		doc.Vars = append(doc.Vars, Record{Key: jv.Key, Label: jv.Label, Type: jv.Type, Value: jv.Value})
	}
	return doc, nil
}
