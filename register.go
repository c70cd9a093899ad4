// FILE: lixenwraith/lightconfig/register.go
package lightconfig

import (
	"errors"
	"fmt"
)

// bind discovers the owner's tagged fields and adds one variable per field.
// Fields that cannot be bound are skipped and logged, and kept joined in
// bindErr. The returned error is non-nil only for an invalid owner.
func (c *Configuration) bind(owner any) error {
	fields, err := c.fields.Fields(owner)
	if err != nil {
		return err
	}

	c.owner = owner
	c.ownerType = ownerTypeName(owner)

	var errs []error
	for _, f := range fields {
		if f.Err == nil {
			f.Err = validateKey(f.Name)
		}
		if f.Err != nil {
			c.logger.Warn("skipping configuration field", "owner", c.ownerType, "field", f.Name, "err", f.Err)
			errs = append(errs, f.Err)
			continue
		}

		v, err := NewVariable(f.Name, f.Type, f.Label, c.fieldAccessor(owner, f.Name))
		if err != nil {
			// The variable is still bound; its value is nil until the field reads cleanly
			c.logger.Warn("initial read of configuration field failed", "owner", c.ownerType, "field", f.Name, "err", err)
			errs = append(errs, err)
		}
		if v == nil {
			continue
		}
		if err := c.store.Add(f.Name, v); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		c.bindErr = fmt.Errorf("failed to bind %d field(s): %w", len(errs), errors.Join(errs...))
	}
	return nil
}

// BindErrors returns the non-fatal discovery errors collected while binding
func (c *Configuration) BindErrors() error { return c.bindErr }

// fieldAccessor returns an accessor reading the named field of owner at call
// time, so the variable tracks mutations made outside the configuration.
func (c *Configuration) fieldAccessor(owner any, name string) Accessor {
	fields := c.fields
	return func() (any, error) {
		return fields.Get(owner, name)
	}
}
