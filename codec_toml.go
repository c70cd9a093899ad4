package lightconfig

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// TOMLCodec stores a document as an array of [[var]] tables
type TOMLCodec struct{}

type tomlDocument struct {
	Owner string    `toml:"owner,omitempty"`
	Vars  []tomlVar `toml:"var"`
}

type tomlVar struct {
	Key   string `toml:"key"`
	Label string `toml:"label,omitempty"`
	Type  string `toml:"type,omitempty"`
	Value any    `toml:"value,omitempty"`
}

// Format returns FormatTOML
func (c *TOMLCodec) Format() string { return FormatTOML }

// Encode writes doc as TOML. Nil values are left out and decode back as nil.
func (c *TOMLCodec) Encode(w io.Writer, doc *Document) error {
	out := tomlDocument{Owner: doc.Owner, Vars: make([]tomlVar, 0, len(doc.Vars))}
	for _, r := range doc.Vars {
		out.Vars = append(out.Vars, tomlVar{Key: r.Key, Label: r.Label, Type: r.Type, Value: r.Value})
	}
	if err := toml.NewEncoder(w).Encode(out); err != nil {
		return fmt.Errorf("failed to marshal config data to TOML: %w", err)
	}
	return nil
}

// Decode reads a TOML document
func (c *TOMLCodec) Decode(r io.Reader) (*Document, error) {
	var in tomlDocument
	if _, err := toml.NewDecoder(r).Decode(&in); err != nil {
		return nil, fmt.Errorf("failed to parse TOML config: %w", err)
	}

	doc := &Document{Owner: in.Owner, Vars: make([]Record, 0, len(in.Vars))}
	for _, tv := range in.Vars {
		doc.Vars = append(doc.Vars, Record{Key: tv.Key, Label: tv.Label, Type: tv.Type, Value: tv.Value})
	}
	return doc, nil
}
