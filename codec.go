// FILE: lixenwraith/lightconfig/codec.go
package lightconfig

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Supported format names
const (
	FormatXML  = "xml"
	FormatTOML = "toml"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Document is the persisted form of a Configuration
type Document struct {
	// Owner is the owner's type name, kept for linkage only
	Owner string
	Vars  []Record
}

// Record is the persisted form of a single Variable
type Record struct {
	Key   string
	Label string
	Type  string
	Value any
}

// Codec serializes documents to and from a byte stream.
// Codecs that cannot carry native types (XML) store values as strings and
// rely on field decoding to restore them.
type Codec interface {
	Format() string
	Encode(w io.Writer, doc *Document) error
	Decode(r io.Reader) (*Document, error)
}

// NewCodec returns a fresh codec for a format name
func NewCodec(format string) (Codec, error) {
	switch strings.ToLower(format) {
	case FormatXML:
		return &XMLCodec{Indent: "  "}, nil
	case FormatTOML, "tml":
		return &TOMLCodec{}, nil
	case FormatYAML, "yml":
		return &YAMLCodec{}, nil
	case FormatJSON:
		return &JSONCodec{Indent: "  "}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// CodecForPath picks a codec by file extension, defaulting to XML when the
// extension is missing or unrecognized.
func CodecForPath(path string) Codec {
	if format := detectFileFormat(path); format != "" {
		if c, err := NewCodec(format); err == nil {
			return c
		}
	}
	return &XMLCodec{Indent: "  "}
}

// detectFileFormat determines format from file extension
func detectFileFormat(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".xml":
		return FormatXML
	case ".toml", ".tml":
		return FormatTOML
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return ""
	}
}

// Omission names a piece of state excluded from the persisted document,
// keyed by the declaring type and field name.
type Omission struct {
	Type  string
	Field string
}

// Omitter is implemented by owners that keep some tagged fields live-only.
// Omissions whose Type is the owner's type name drop the matching variables
// from saved documents.
type Omitter interface {
	Omissions() []Omission
}

// OmissionSet is a set of omissions registered by each layer owning
// non-persistable state.
type OmissionSet map[Omission]struct{}

// Add registers omissions
func (s OmissionSet) Add(omissions ...Omission) {
	for _, o := range omissions {
		s[o] = struct{}{}
	}
}

// Has reports whether (typeName, field) is omitted
func (s OmissionSet) Has(typeName, field string) bool {
	_, ok := s[Omission{Type: typeName, Field: field}]
	return ok
}

// variableOmissions lists Variable state that never survives a round trip
func variableOmissions() []Omission {
	return []Omission{
		{Type: "Variable", Field: "accessor"},
		{Type: "Variable", Field: "observers"},
		{Type: "Variable", Field: "changed"},
	}
}

// configurationOmissions lists Configuration state that never survives a round trip
func configurationOmissions() []Omission {
	return []Omission{
		{Type: "Configuration", Field: "owner"},
		{Type: "Configuration", Field: "location"},
		{Type: "Configuration", Field: "backend"},
	}
}
