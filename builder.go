// File: lixenwraith/lightconfig/builder.go
package lightconfig

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

// ValidatorFunc defines the signature for a function that can validate a Configuration.
// It receives the bound (and, with WithLoadOrSave, loaded) configuration.
type ValidatorFunc func(c *Configuration) error

// Builder provides a fluent interface for building configurations
type Builder struct {
	owner      any
	file       string
	format     string
	codec      Codec
	backend    Backend
	fs         afero.Fs
	logger     *log.Logger
	tagName    string
	fields     FieldAccessor
	omissions  []Omission
	discovery  *FileDiscoveryOptions
	loadOrSave bool
	err        error
	validators []ValidatorFunc
}

// NewBuilder creates a new configuration builder
func NewBuilder() *Builder {
	return &Builder{
		tagName:    DefaultTagName,
		validators: make([]ValidatorFunc, 0),
	}
}

// WithOwner sets the struct pointer whose tagged fields are bound
func (b *Builder) WithOwner(owner any) *Builder {
	b.owner = owner
	return b
}

// WithFile sets the configuration file path
func (b *Builder) WithFile(path string) *Builder {
	b.file = path
	return b
}

// WithFormat selects the codec by name, overriding extension detection
func (b *Builder) WithFormat(format string) *Builder {
	if _, err := NewCodec(format); err != nil {
		b.err = err
	}
	b.format = format
	return b
}

// WithCodec sets a codec instance, overriding WithFormat
func (b *Builder) WithCodec(codec Codec) *Builder {
	b.codec = codec
	return b
}

// WithBackend sets the persistence backend
func (b *Builder) WithBackend(backend Backend) *Builder {
	b.backend = backend
	return b
}

// WithFs sets the filesystem used by the default FileBackend and by file discovery
func (b *Builder) WithFs(fs afero.Fs) *Builder {
	b.fs = fs
	return b
}

// WithLogger sets the logger receiving non-fatal warnings
func (b *Builder) WithLogger(logger *log.Logger) *Builder {
	b.logger = logger
	return b
}

// WithTagName sets the struct tag marking configuration fields
func (b *Builder) WithTagName(tagName string) *Builder {
	b.tagName = tagName
	return b
}

// WithFieldAccessor replaces tag-based field discovery, overriding WithTagName
func (b *Builder) WithFieldAccessor(fields FieldAccessor) *Builder {
	b.fields = fields
	return b
}

// WithOmissions excludes extra (type, field) pairs from saved documents
func (b *Builder) WithOmissions(omissions ...Omission) *Builder {
	b.omissions = append(b.omissions, omissions...)
	return b
}

// WithLoadOrSave makes Build load the file, or create it from the current
// field values when it cannot be loaded
func (b *Builder) WithLoadOrSave() *Builder {
	b.loadOrSave = true
	return b
}

// WithValidator adds a validation function that runs at the end of the build process
// Multiple validators can be added and are executed in the order they are added
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build binds the owner and creates the Configuration.
// Fields that cannot be bound are logged and reported by BindErrors; they
// do not fail the build.
func (b *Builder) Build() (*Configuration, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.owner == nil {
		return nil, fmt.Errorf("%w, got nil", ErrInvalidOwner)
	}

	b.file = b.discoverFile()

	c := newConfiguration()
	c.location = b.file

	if b.logger != nil {
		c.logger = b.logger
	}

	switch {
	case b.codec != nil:
		c.codec = b.codec
	case b.format != "":
		codec, err := NewCodec(b.format)
		if err != nil {
			return nil, err
		}
		c.codec = codec
	default:
		c.codec = CodecForPath(b.file)
	}

	switch {
	case b.backend != nil:
		c.backend = b.backend
	case b.fs != nil:
		c.backend = NewFileBackend(b.fs)
	}

	if b.fields != nil {
		c.fields = b.fields
	} else {
		c.fields = NewTagAccessor(b.tagName)
	}

	c.omissions.Add(b.omissions...)
	if o, ok := b.owner.(Omitter); ok {
		c.omissions.Add(o.Omissions()...)
	}

	if err := c.bind(b.owner); err != nil {
		return nil, err
	}

	if b.loadOrSave {
		if err := c.LoadOrSave(); err != nil {
			return nil, fmt.Errorf("failed to initialize config file: %w", err)
		}
	}

	// Run validators
	for _, validator := range b.validators {
		if err := validator(c); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}

	return c, nil
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Configuration {
	c, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("config build failed: %v", err))
	}
	return c
}
