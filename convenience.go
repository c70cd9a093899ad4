// File: lixenwraith/lightconfig/convenience.go
package lightconfig

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/spf13/pflag"
)

// Quick binds owner to the file at path and loads it, saving the current
// field values when the file cannot be loaded.
func Quick(owner any, path string) (*Configuration, error) {
	return NewBuilder().
		WithOwner(owner).
		WithFile(path).
		WithLoadOrSave().
		Build()
}

// MustQuick is like Quick but panics on error
func MustQuick(owner any, path string) *Configuration {
	cfg, err := Quick(owner, path)
	if err != nil {
		panic(fmt.Sprintf("config initialization failed: %v", err))
	}
	return cfg
}

// UpdateAll refreshes every variable from its field. With notify set,
// observers of variables whose value changed are notified. Use it to push
// bulk edits made directly on the owner's fields.
// Accessor failures do not stop the loop and are returned joined.
func (c *Configuration) UpdateAll(notify bool) error {
	var errs []error
	for _, v := range c.store.All() {
		if err := v.Refresh(); err != nil {
			c.logger.Warn("cannot refresh variable", "key", v.Key(), "err", err)
			errs = append(errs, err)
		}
		if notify && v.Changed() {
			v.Notify()
		}
	}
	return errors.Join(errs...)
}

// SetAndUpdate assigns value to the field bound under key, refreshes its
// variable and notifies observers. value must be assignable to the field's
// type; otherwise nothing is changed and ErrTypeMismatch is returned.
// Setting the current value again is a no-op without notification.
func (c *Configuration) SetAndUpdate(key string, value any) error {
	v, ok := c.store.Get(key)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownVariable, key)
	}

	current, err := c.fields.Get(c.owner, key)
	if err != nil {
		return err
	}

	fieldType := v.Type()
	if fieldType == nil && current != nil {
		fieldType = reflect.TypeOf(current)
	}
	if value == nil && fieldType != nil && nillable(fieldType) {
		if current == nil || reflect.DeepEqual(current, reflect.Zero(fieldType).Interface()) {
			return nil
		}
		if err := c.fields.Set(c.owner, key, nil); err != nil {
			return err
		}
		return c.refreshAndNotify(v)
	}
	if value == nil || fieldType == nil || !reflect.TypeOf(value).AssignableTo(fieldType) {
		return fmt.Errorf("%w: %s expects %v, got %T", ErrTypeMismatch, key, fieldType, value)
	}

	if reflect.DeepEqual(current, value) {
		return nil
	}

	if err := c.fields.Set(c.owner, key, value); err != nil {
		return err
	}
	return c.refreshAndNotify(v)
}

// Apply is SetAndUpdate with weak typing: value is converted to the field
// type (strings to numbers, comma lists to slices, durations and so on).
func (c *Configuration) Apply(key string, value any) error {
	v, ok := c.store.Get(key)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownVariable, key)
	}

	if err := c.fields.Set(c.owner, key, value); err != nil {
		return err
	}
	return c.refreshAndNotify(v)
}

// nillable reports whether untyped nil can be assigned to t
func nillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface, reflect.Chan, reflect.Func:
		return true
	}
	return false
}

func (c *Configuration) refreshAndNotify(v *Variable) error {
	err := v.Refresh()
	if v.Changed() {
		v.Notify()
	}
	return err
}

// GenerateFlags creates a flag set with one flag per variable, named after
// its key and defaulting to its current value.
func (c *Configuration) GenerateFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("config", pflag.ContinueOnError)

	for _, v := range c.store.All() {
		usage := v.Label()
		switch val := v.Value().(type) {
		case bool:
			fs.Bool(v.Key(), val, usage)
		case int64:
			fs.Int64(v.Key(), val, usage)
		case int:
			fs.Int(v.Key(), val, usage)
		case float64:
			fs.Float64(v.Key(), val, usage)
		case string:
			fs.String(v.Key(), val, usage)
		default:
			// For other types, use string flag
			fs.String(v.Key(), v.String(), usage)
		}
	}

	return fs
}

// BindFlags applies the flags that were set on the command line
func (c *Configuration) BindFlags(fs *pflag.FlagSet) error {
	var errs []error

	fs.Visit(func(f *pflag.Flag) {
		if !c.store.Has(f.Name) {
			return
		}
		if err := c.Apply(f.Name, f.Value.String()); err != nil {
			errs = append(errs, fmt.Errorf("flag %s: %w", f.Name, err))
		}
	})

	if len(errs) > 0 {
		return fmt.Errorf("failed to bind %d flags: %w", len(errs), errors.Join(errs...))
	}

	return nil
}
