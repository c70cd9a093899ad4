// FILE: lixenwraith/lightconfig/variable.go
package lightconfig

import (
	"fmt"
	"reflect"
)

// Accessor produces the authoritative value of a variable on demand.
type Accessor func() (any, error)

// ObserverID identifies a single observer registration on a Variable
type ObserverID int64

// Observer is notified when a variable's owner pushes a change.
type Observer interface {
	Changed(v *Variable)
}

// ObserverFunc adapts a plain function to the Observer interface
type ObserverFunc func(v *Variable)

// Changed calls f(v)
func (f ObserverFunc) Changed(v *Variable) { f(v) }

// Variable is a named, typed value cell whose content is pulled from an
// Accessor on Refresh. Observers are only told about changes through an
// explicit Notify call.
//
// Variable is not safe for concurrent use. Callers sharing a Variable across
// goroutines must provide their own locking.
type Variable struct {
	key       string
	typ       reflect.Type
	label     string
	value     any
	accessor  Accessor
	changed   bool
	observers map[ObserverID]Observer
	nextID    ObserverID
}

// NewVariable creates a variable and establishes its initial value.
// An empty label defaults to the key. A failing accessor does not prevent
// construction; the variable starts with a nil value.
func NewVariable(key string, typ reflect.Type, label string, accessor Accessor) (*Variable, error) {
	if accessor == nil {
		return nil, fmt.Errorf("variable %q: %w", key, ErrNilAccessor)
	}
	if label == "" {
		label = key
	}

	v := &Variable{
		key:      key,
		typ:      typ,
		label:    label,
		accessor: accessor,
	}
	err := v.Refresh()
	v.changed = false
	return v, err
}

// Key returns the name the variable is stored under
func (v *Variable) Key() string { return v.key }

// Type returns the declared value type, nil if unknown
func (v *Variable) Type() reflect.Type { return v.typ }

// TypeName returns the declared type as a string, empty if unknown
func (v *Variable) TypeName() string {
	if v.typ == nil {
		return ""
	}
	return v.typ.String()
}

// Label returns the human-readable name of the variable
func (v *Variable) Label() string { return v.label }

// Value returns the value obtained by the last Refresh
func (v *Variable) Value() any { return v.value }

// Changed reports whether a refresh produced a different value since the last Notify
func (v *Variable) Changed() bool { return v.changed }

// Refresh re-reads the value through the accessor. On accessor failure the
// value is cleared for this cycle and the error is returned.
func (v *Variable) Refresh() error {
	if v.accessor == nil {
		return fmt.Errorf("variable %q: %w", v.key, ErrInvalidState)
	}

	val, err := v.accessor()
	if err != nil {
		val = nil
		err = fmt.Errorf("variable %q: %w: %w", v.key, ErrAccessor, err)
	}

	if !reflect.DeepEqual(v.value, val) {
		v.changed = true
	}
	v.value = val
	return err
}

// Notify calls every registered observer and clears the changed flag.
func (v *Variable) Notify() {
	v.changed = false
	// Snapshot so observers may unregister themselves during fan-out
	observers := make([]Observer, 0, len(v.observers))
	for _, o := range v.observers {
		observers = append(observers, o)
	}
	for _, o := range observers {
		o.Changed(v)
	}
}

// Observe registers an observer and returns its registration id
func (v *Variable) Observe(o Observer) ObserverID {
	if v.observers == nil {
		v.observers = make(map[ObserverID]Observer)
	}
	v.nextID++
	v.observers[v.nextID] = o
	return v.nextID
}

// Unobserve removes a registration, reporting whether it existed
func (v *Variable) Unobserve(id ObserverID) bool {
	if _, ok := v.observers[id]; !ok {
		return false
	}
	delete(v.observers, id)
	return true
}

// ResetObservers removes all observers.
func (v *Variable) ResetObservers() {
	v.observers = nil
}

// ObserverCount returns the number of registered observers
func (v *Variable) ObserverCount() int { return len(v.observers) }

// Duplicate creates a new variable sharing key, type, label and accessor,
// refreshed independently and without observers.
func (v *Variable) Duplicate() (*Variable, error) {
	if v.accessor == nil {
		return nil, fmt.Errorf("cannot duplicate variable %q: %w", v.key, ErrInvalidState)
	}
	return NewVariable(v.key, v.typ, v.label, v.accessor)
}

// String returns the value rendered as a string
func (v *Variable) String() string {
	s, err := toString(v.value)
	if err != nil {
		return fmt.Sprintf("%v", v.value)
	}
	return s
}

// Int64 returns the value converted to int64
func (v *Variable) Int64() (int64, error) { return toInt64(v.key, v.value) }

// Float64 returns the value converted to float64
func (v *Variable) Float64() (float64, error) { return toFloat64(v.key, v.value) }

// Bool returns the value converted to bool
func (v *Variable) Bool() (bool, error) { return toBool(v.key, v.value) }
