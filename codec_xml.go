package lightconfig

import (
	"encoding/xml"
	"fmt"
	"io"
	"reflect"
	"strings"
	"unicode/utf8"
)

// XMLCodec stores a document as a <configuration> element with one <var>
// child per variable. Values are written as character data.
type XMLCodec struct {
	Indent string
}

type xmlDocument struct {
	XMLName xml.Name `xml:"configuration"`
	Owner   string   `xml:"owner,attr,omitempty"`
	Vars    []xmlVar `xml:"var"`
}

type xmlVar struct {
	Key   string `xml:"key,attr"`
	Label string `xml:"label,attr,omitempty"`
	Type  string `xml:"type,attr,omitempty"`
	Nil   bool   `xml:"nil,attr,omitempty"`
	Value string `xml:",chardata"`
}

// Format returns FormatXML
func (c *XMLCodec) Format() string { return FormatXML }

// Encode writes doc as an XML document with a declaration header
func (c *XMLCodec) Encode(w io.Writer, doc *Document) error {
	out := xmlDocument{Owner: doc.Owner, Vars: make([]xmlVar, 0, len(doc.Vars))}
	for _, r := range doc.Vars {
		xv := xmlVar{Key: r.Key, Label: r.Label, Type: r.Type}
		if r.Value == nil {
			xv.Nil = true
		} else {
			s, err := xmlText(r.Value)
			if err != nil {
				return fmt.Errorf("failed to encode variable %q as XML: %w", r.Key, err)
			}
			xv.Value = s
		}
		out.Vars = append(out.Vars, xv)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", c.Indent)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to marshal config data to XML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Decode reads a document; every non-nil value is returned as a string
func (c *XMLCodec) Decode(r io.Reader) (*Document, error) {
	var in xmlDocument
	if err := xml.NewDecoder(r).Decode(&in); err != nil {
		return nil, fmt.Errorf("failed to parse XML config: %w", err)
	}

	doc := &Document{Owner: in.Owner, Vars: make([]Record, 0, len(in.Vars))}
	for _, xv := range in.Vars {
		rec := Record{Key: xv.Key, Label: xv.Label, Type: xv.Type}
		if !xv.Nil {
			rec.Value = xv.Value
		}
		doc.Vars = append(doc.Vars, rec)
	}
	return doc, nil
}

// xmlText renders a value as character data, refusing values that would not
// read back unchanged: characters XML cannot carry, list elements that
// contain the list separator, and a list of one empty element.
func xmlText(val any) (string, error) {
	if _, raw := val.([]byte); !raw {
		if rv := reflect.ValueOf(val); rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
			if rv.Len() == 1 {
				if elem, err := toString(rv.Index(0).Interface()); err == nil && elem == "" {
					return "", fmt.Errorf("a list holding only an empty element reads back as an empty list")
				}
			}
			for i := 0; i < rv.Len(); i++ {
				elem, err := toString(rv.Index(i).Interface())
				if err != nil {
					return "", err
				}
				if strings.Contains(elem, ",") {
					return "", fmt.Errorf("list element %d (%q) contains a comma", i, elem)
				}
			}
		}
	}

	s, err := toString(val)
	if err != nil {
		return "", err
	}
	if !utf8.ValidString(s) {
		return "", fmt.Errorf("value is not valid UTF-8")
	}
	for i, r := range s {
		if !isXMLChar(r) {
			return "", fmt.Errorf("character %U at offset %d cannot be stored in XML", r, i)
		}
	}
	return s, nil
}

// isXMLChar reports whether r is in the XML 1.0 Char production
func isXMLChar(r rune) bool {
	return r == 0x09 || r == 0x0A || r == 0x0D ||
		r >= 0x20 && r <= 0xD7FF ||
		r >= 0xE000 && r <= 0xFFFD ||
		r >= 0x10000 && r <= 0x10FFFF
}
