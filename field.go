// FILE: lixenwraith/lightconfig/field.go
package lightconfig

import (
	"fmt"
	"reflect"
)

// DefaultTagName is the struct tag marking a field as a configuration variable.
// The tag value is an optional label: `config:""` uses the field name,
// `config:"Window width"` sets a label, `config:"-"` excludes the field.
const DefaultTagName = "config"

// Field describes one configuration-eligible field of an owner.
// Err is set when the field is tagged but cannot be bound.
type Field struct {
	Name  string
	Label string
	Type  reflect.Type
	Err   error
}

// FieldAccessor discovers and accesses an owner's configuration fields.
type FieldAccessor interface {
	// Fields lists the owner's eligible fields, including unusable ones with Err set
	Fields(owner any) ([]Field, error)
	// Eligible reports whether name is still a bindable configuration field
	Eligible(owner any, name string) bool
	// Get reads the current value of a field
	Get(owner any, name string) (any, error)
	// Set writes value into a field, converting it to the field type when needed
	Set(owner any, name string, value any) error
}

// TagAccessor is the reflection-based FieldAccessor driven by struct tags.
type TagAccessor struct {
	TagName string
}

// NewTagAccessor creates a TagAccessor using tagName, or DefaultTagName if empty
func NewTagAccessor(tagName string) *TagAccessor {
	if tagName == "" {
		tagName = DefaultTagName
	}
	return &TagAccessor{TagName: tagName}
}

// ownerStruct validates the owner and returns the struct it points to.
func ownerStruct(owner any) (reflect.Value, error) {
	v := reflect.ValueOf(owner)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return reflect.Value{}, fmt.Errorf("%w, got %T", ErrInvalidOwner, owner)
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("%w, got %T", ErrInvalidOwner, owner)
	}
	return v, nil
}

func (a *TagAccessor) tagName() string {
	if a.TagName == "" {
		return DefaultTagName
	}
	return a.TagName
}

// Fields lists declared fields with the configuration tag. Promoted fields of
// embedded structs are not considered.
func (a *TagAccessor) Fields(owner any) ([]Field, error) {
	v, err := ownerStruct(owner)
	if err != nil {
		return nil, err
	}

	t := v.Type()
	var fields []Field
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		label, ok := sf.Tag.Lookup(a.tagName())
		if !ok || label == "-" {
			continue
		}

		f := Field{Name: sf.Name, Label: label, Type: sf.Type}
		if f.Label == "" {
			f.Label = sf.Name
		}
		if !sf.IsExported() {
			f.Err = fmt.Errorf("%w: field %s.%s is unexported", ErrDiscovery, t.Name(), sf.Name)
		}
		fields = append(fields, f)
	}
	return fields, nil
}

// field resolves a declared, exported, tagged field by name.
func (a *TagAccessor) field(owner any, name string) (reflect.Value, error) {
	v, err := ownerStruct(owner)
	if err != nil {
		return reflect.Value{}, err
	}

	sf, ok := v.Type().FieldByName(name)
	if !ok || len(sf.Index) != 1 {
		return reflect.Value{}, fmt.Errorf("%w: %s has no field %s", ErrNotEligible, v.Type().Name(), name)
	}
	if label, tagged := sf.Tag.Lookup(a.tagName()); !tagged || label == "-" {
		return reflect.Value{}, fmt.Errorf("%w: %s.%s is not tagged %q", ErrNotEligible, v.Type().Name(), name, a.tagName())
	}
	if !sf.IsExported() {
		return reflect.Value{}, fmt.Errorf("%w: field %s.%s is unexported", ErrDiscovery, v.Type().Name(), name)
	}
	return v.Field(sf.Index[0]), nil
}

// Eligible reports whether name is a declared, exported, tagged field
func (a *TagAccessor) Eligible(owner any, name string) bool {
	_, err := a.field(owner, name)
	return err == nil
}

// Get reads the field's current value
func (a *TagAccessor) Get(owner any, name string) (any, error) {
	fv, err := a.field(owner, name)
	if err != nil {
		return nil, err
	}
	return fv.Interface(), nil
}

// Set assigns value directly when its type is assignable to the field,
// otherwise decodes it into the field with weak type conversion.
func (a *TagAccessor) Set(owner any, name string, value any) error {
	fv, err := a.field(owner, name)
	if err != nil {
		return err
	}

	if value == nil {
		fv.Set(reflect.Zero(fv.Type()))
		return nil
	}
	if rv := reflect.ValueOf(value); rv.Type().AssignableTo(fv.Type()) {
		fv.Set(rv)
		return nil
	}
	if err := decodeInto(fv, value); err != nil {
		return fmt.Errorf("set field %s: %w", name, err)
	}
	return nil
}
