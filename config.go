// FILE: lixenwraith/lightconfig/config.go
package lightconfig

import (
	"os"
	"reflect"

	"github.com/charmbracelet/log"
)

// State tracks whether a Configuration is in sync with its backing file
type State int

const (
	// StateUnloaded means nothing has been loaded from or saved to the backend
	StateUnloaded State = iota
	// StateLoaded means the last successful operation was a load or a save
	StateLoaded
)

// String returns the state name
func (s State) String() string {
	switch s {
	case StateLoaded:
		return "loaded"
	default:
		return "unloaded"
	}
}

// Configuration owns the variables bound to an owner's tagged fields and the
// persistence settings used to save and restore them.
//
// Configuration is not safe for concurrent use. All calls, including
// Save and Load, are expected from a single goroutine or under an external
// lock.
type Configuration struct {
	store     *Store
	owner     any // non-owning back-reference; nil for snapshots
	ownerType string
	fields    FieldAccessor
	location  string
	codec     Codec
	backend   Backend
	logger    *log.Logger
	omissions OmissionSet
	state     State
	bindErr   error
}

// Configurable is implemented by owners exposing their configuration.
// Owners embedding *Configuration implement it through promotion.
type Configurable interface {
	Config() *Configuration
}

// New binds owner's tagged fields to a configuration stored at path, using
// the codec matching the path's extension (XML by default).
func New(owner any, path string) (*Configuration, error) {
	return NewBuilder().WithOwner(owner).WithFile(path).Build()
}

// defaultLogger reports discovery and reconciliation warnings to stderr
func defaultLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "lightconfig",
		Level:  log.WarnLevel,
	})
}

// newConfiguration creates an unbound configuration with defaults filled in
func newConfiguration() *Configuration {
	c := &Configuration{
		store:     NewStore(),
		fields:    NewTagAccessor(DefaultTagName),
		codec:     &XMLCodec{Indent: "  "},
		backend:   NewFileBackend(nil),
		logger:    defaultLogger(),
		omissions: make(OmissionSet),
	}
	c.omissions.Add(variableOmissions()...)
	c.omissions.Add(configurationOmissions()...)
	return c
}

// ownerTypeName returns the name of the struct type owner points to
func ownerTypeName(owner any) string {
	t := reflect.TypeOf(owner)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	return t.Name()
}

// Config returns c, so owners embedding *Configuration satisfy Configurable
func (c *Configuration) Config() *Configuration { return c }

// Owner returns the bound owner, nil for snapshots
func (c *Configuration) Owner() any { return c.owner }

// Store returns the variable store
func (c *Configuration) Store() *Store { return c.store }

// Var returns the variable bound under key
func (c *Configuration) Var(key string) (*Variable, bool) { return c.store.Get(key) }

// Vars returns all variables ordered by key
func (c *Configuration) Vars() []*Variable { return c.store.All() }

// Keys returns all variable keys in sorted order
func (c *Configuration) Keys() []string { return c.store.Keys() }

// Location returns the backend path the configuration is saved to
func (c *Configuration) Location() string { return c.location }

// SetLocation changes the backend path used by later Save, Load and Delete calls
func (c *Configuration) SetLocation(path string) { c.location = path }

// Codec returns the codec used for persistence
func (c *Configuration) Codec() Codec { return c.codec }

// State returns the current persistence state
func (c *Configuration) State() State { return c.state }

// Logger returns the logger used for non-fatal warnings
func (c *Configuration) Logger() *log.Logger { return c.logger }

// Omitted returns the omission set consulted when building saved documents
func (c *Configuration) Omitted() OmissionSet { return c.omissions }

// ObserveAll registers o on every variable
func (c *Configuration) ObserveAll(o Observer) map[string]ObserverID {
	return c.store.ObserveAll(o)
}

// ResetObservers removes all observers from every variable
func (c *Configuration) ResetObservers() {
	c.store.ResetObservers()
}
