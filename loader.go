// FILE: lixenwraith/lightconfig/loader.go
package lightconfig

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/samber/lo"
)

// Load restores variable values from the backing file into the owner.
// Live variables keep their identity; their values are re-read from the
// owner's fields after the loaded values are written there. Observers are
// cleared and must be registered again after Load returns.
//
// A missing file yields ErrConfigNotFound and an unreadable one
// ErrNotReadable, both without touching any state.
func (c *Configuration) Load() error {
	if c.location == "" {
		return ErrNoLocation
	}
	path := c.location

	if !c.backend.IsRegular(path) {
		exists, err := c.backend.Exists(path)
		if err != nil {
			return fmt.Errorf("failed to check config file '%s': %w", path, err)
		}
		if !exists {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return fmt.Errorf("%w: %s is not a regular file", ErrNotReadable, path)
	}
	if !c.backend.Readable(path) {
		return fmt.Errorf("%w: %s", ErrNotReadable, path)
	}

	data, err := c.backend.ReadFile(path)
	if err != nil {
		return err
	}

	doc, err := c.codec.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to load config '%s': %w", path, err)
	}

	snapshot, err := newSnapshot(doc)
	if err != nil {
		return fmt.Errorf("failed to load config '%s': %w", path, err)
	}

	if err := c.CopyFrom(snapshot); err != nil {
		// Per-field failures keep the field's current value
		c.logger.Warn("some configuration values were not restored", "path", path, "err", err)
	}
	c.store.ResetObservers()
	c.location = path
	c.state = StateLoaded

	c.logger.Debug("configuration loaded", "path", path, "format", c.codec.Format(), "vars", snapshot.store.Len())
	return nil
}

// LoadOrSave loads the backing file, or saves the current state when it
// cannot be loaded. It fails only if both fail.
func (c *Configuration) LoadOrSave() error {
	loadErr := c.Load()
	if loadErr == nil {
		return nil
	}
	if !errors.Is(loadErr, ErrConfigNotFound) {
		c.logger.Warn("configuration could not be loaded, overwriting with current values", "path", c.location, "err", loadErr)
	}

	if err := c.Save(); err != nil {
		return errors.Join(loadErr, err)
	}
	return nil
}

// CopyFrom writes the values of src's variables into the owner fields of
// matching keys and refreshes the live variables from those fields.
// Keys present on only one side are skipped with a warning. Fields that are
// no longer configuration fields are left alone. Conversion failures are
// skipped and returned joined.
func (c *Configuration) CopyFrom(src *Configuration) error {
	if src == nil {
		return ErrNilSnapshot
	}

	var errs []error
	for _, key := range c.store.Keys() {
		dst, _ := c.store.Get(key)

		sv, ok := src.store.Get(key)
		if !ok {
			if c.ownerType != "" && c.omissions.Has(c.ownerType, key) {
				continue // never persisted
			}
			c.logger.Warn("variable missing from loaded configuration, keeping current value", "key", key)
			continue
		}

		if c.owner == nil || !c.fields.Eligible(c.owner, key) {
			c.logger.Warn("variable is no longer a configuration field, not restored", "owner", c.ownerType, "key", key)
			continue
		}

		if err := c.fields.Set(c.owner, key, sv.Value()); err != nil {
			c.logger.Warn("cannot restore variable", "key", key, "err", err)
			errs = append(errs, fmt.Errorf("variable %q: %w", key, err))
			continue
		}
		if err := dst.Refresh(); err != nil {
			errs = append(errs, err)
		}
	}

	unknown := lo.Reject(src.store.Keys(), func(key string, _ int) bool {
		return c.store.Has(key)
	})
	if len(unknown) > 0 {
		c.logger.Warn("unknown variables in loaded configuration ignored", "keys", describeKeys(unknown))
	}

	return errors.Join(errs...)
}

// newSnapshot builds an ownerless configuration from a decoded document.
// Its variables return the decoded values.
func newSnapshot(doc *Document) (*Configuration, error) {
	snap := newConfiguration()
	snap.ownerType = doc.Owner
	for _, r := range doc.Vars {
		if r.Key == "" {
			return nil, fmt.Errorf("document contains a variable without a key")
		}
		value := r.Value
		v, err := NewVariable(r.Key, nil, r.Label, func() (any, error) { return value, nil })
		if err != nil {
			return nil, err
		}
		if err := snap.store.Add(r.Key, v); err != nil {
			return nil, err
		}
	}
	return snap, nil
}
