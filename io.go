// File: lixenwraith/lightconfig/io.go
package lightconfig

import (
	"bytes"
	"fmt"
	"net"
	"net/url"
	"path/filepath"
	"reflect"
	"time"
	"unicode/utf8"
)

// Save writes the current variable values to the backing file.
// The document is fully encoded before the backend is touched, so a failed
// encode leaves the file as it was, and no failure alters in-memory state.
func (c *Configuration) Save() error {
	if c.location == "" {
		return ErrNoLocation
	}

	doc := c.document()
	for _, rec := range doc.Vars {
		if err := checkText(rec.Value); err != nil {
			return fmt.Errorf("failed to save config '%s': variable %q: %w", c.location, rec.Key, err)
		}
	}

	var buf bytes.Buffer
	if err := c.codec.Encode(&buf, doc); err != nil {
		return fmt.Errorf("failed to save config '%s': %w", c.location, err)
	}

	if err := c.backend.MkdirAll(filepath.Dir(c.location)); err != nil {
		return err
	}
	if err := c.backend.WriteFile(c.location, buf.Bytes()); err != nil {
		return err
	}

	c.state = StateLoaded
	c.logger.Debug("configuration saved", "path", c.location, "format", c.codec.Format(), "vars", len(doc.Vars))
	return nil
}

// Delete removes the backing file. A file that does not exist counts as
// deleted; anything that is not a writable regular file is refused.
func (c *Configuration) Delete() error {
	if c.location == "" {
		return ErrNoLocation
	}

	exists, err := c.backend.Exists(c.location)
	if err != nil {
		return fmt.Errorf("failed to check config file '%s': %w", c.location, err)
	}
	if !exists {
		c.state = StateUnloaded
		return nil
	}

	if !c.backend.IsRegular(c.location) || !c.backend.Writable(c.location) {
		return fmt.Errorf("%w: %s", ErrNotWritable, c.location)
	}
	if err := c.backend.Remove(c.location); err != nil {
		return err
	}

	c.state = StateUnloaded
	c.logger.Debug("configuration deleted", "path", c.location)
	return nil
}

// document builds the persisted form of the configuration, leaving out
// whatever the omission set excludes.
func (c *Configuration) document() *Document {
	doc := &Document{}
	if !c.omissions.Has("Configuration", "ownerType") {
		doc.Owner = c.ownerType
	}

	for _, v := range c.store.All() {
		if c.ownerType != "" && c.omissions.Has(c.ownerType, v.Key()) {
			continue
		}

		rec := Record{Key: v.Key()}
		if !c.omissions.Has("Variable", "label") {
			rec.Label = v.Label()
		}
		if !c.omissions.Has("Variable", "type") {
			rec.Type = v.TypeName()
		}
		if !c.omissions.Has("Variable", "value") {
			rec.Value = persistValue(v.Value())
		}
		doc.Vars = append(doc.Vars, rec)
	}
	return doc
}

// persistValue renders types without a native form in TOML, YAML or JSON as
// the strings the decode hooks parse back. Other pointers are dereferenced.
// nil pointers and slices persist as nil.
func persistValue(val any) any {
	if isNilValue(val) {
		return nil
	}

	switch v := val.(type) {
	case time.Duration, time.Time, net.IP, *net.IPNet, url.URL, *url.URL:
		s, _ := toString(v)
		return s
	case []byte:
		return string(v)
	}

	if rv := reflect.ValueOf(val); rv.Kind() == reflect.Ptr {
		return persistValue(rv.Elem().Interface())
	}
	return val
}

// checkText rejects strings that no text format stores unchanged, looking
// through lists, maps and pointers. persistValue has already turned byte
// slices into strings.
func checkText(val any) error {
	if isNilValue(val) {
		return nil
	}

	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.String:
		if !utf8.ValidString(rv.String()) {
			return fmt.Errorf("%w: %q", ErrInvalidText, rv.String())
		}
	case reflect.Ptr:
		return checkText(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			if !utf8.Valid(rv.Bytes()) {
				return fmt.Errorf("%w: % x", ErrInvalidText, rv.Bytes())
			}
			return nil
		}
		for i := 0; i < rv.Len(); i++ {
			if err := checkText(rv.Index(i).Interface()); err != nil {
				return err
			}
		}
	case reflect.Map:
		iter := rv.MapRange()
		for iter.Next() {
			if err := checkText(iter.Key().Interface()); err != nil {
				return err
			}
			if err := checkText(iter.Value().Interface()); err != nil {
				return err
			}
		}
	}
	return nil
}
