// FILE: lixenwraith/lightconfig/errors.go
package lightconfig

import "errors"

// Persistence errors
var (
	// ErrConfigNotFound is returned by Load when the backing file does not exist
	ErrConfigNotFound = errors.New("configuration file not found")
	// ErrNotReadable is returned by Load when the backing file exists but cannot be read
	ErrNotReadable = errors.New("configuration file not readable")
	// ErrNotWritable is returned by Delete when the backing file cannot be removed
	ErrNotWritable = errors.New("configuration file not writable")
	// ErrUnknownFormat is returned when no codec matches a format name or file extension
	ErrUnknownFormat = errors.New("unknown configuration format")
	// ErrNoLocation is returned when no backing path has been set
	ErrNoLocation = errors.New("configuration location not set")
	// ErrInvalidText is returned by Save when a string or byte value is not valid UTF-8
	ErrInvalidText = errors.New("value is not valid UTF-8 text")
	// ErrNilSnapshot is returned by CopyFrom when given no source
	ErrNilSnapshot = errors.New("nil configuration snapshot")
)

// Variable and binding errors
var (
	ErrNilAccessor     = errors.New("variable accessor cannot be nil")
	ErrInvalidState    = errors.New("variable has no accessor")
	ErrAccessor        = errors.New("variable accessor failed")
	ErrNilVariable     = errors.New("variable cannot be nil")
	ErrUnknownVariable = errors.New("variable not registered")
	ErrTypeMismatch    = errors.New("value type does not match field type")
	ErrNotEligible     = errors.New("field is not a configuration variable")
	ErrInvalidOwner    = errors.New("owner must be a non-nil pointer to a struct")
	ErrDiscovery       = errors.New("field discovery failed")
)

// IsNotFound reports whether err means the backing file does not exist
func IsNotFound(err error) bool {
	return errors.Is(err, ErrConfigNotFound)
}
