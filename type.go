// File: lixenwraith/lightconfig/type.go
package lightconfig

import (
	"fmt"
	"net"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// String retrieves a variable's value as a string.
func (c *Configuration) String(key string) (string, error) {
	v, ok := c.store.Get(key)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownVariable, key)
	}
	return toString(v.Value())
}

// Int64 retrieves a variable's value as an int64.
func (c *Configuration) Int64(key string) (int64, error) {
	v, ok := c.store.Get(key)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownVariable, key)
	}
	return toInt64(key, v.Value())
}

// Float64 retrieves a variable's value as a float64.
func (c *Configuration) Float64(key string) (float64, error) {
	v, ok := c.store.Get(key)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownVariable, key)
	}
	return toFloat64(key, v.Value())
}

// Bool retrieves a variable's value as a bool.
func (c *Configuration) Bool(key string) (bool, error) {
	v, ok := c.store.Get(key)
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownVariable, key)
	}
	return toBool(key, v.Value())
}

// toString renders scalar values, and the list forms decode hooks accept back.
// nil, including nil pointers and slices, renders as the empty string.
func toString(val any) (string, error) {
	if isNilValue(val) {
		return "", nil
	}

	switch v := val.(type) {
	case string:
		return v, nil
	case time.Duration:
		return v.String(), nil
	case time.Time:
		return v.Format(time.RFC3339Nano), nil
	case net.IP:
		return v.String(), nil
	case *net.IPNet:
		return v.String(), nil
	case url.URL:
		return v.String(), nil
	case *url.URL:
		return v.String(), nil
	case fmt.Stringer:
		return v.String(), nil
	case []byte:
		return string(v), nil
	case bool:
		return strconv.FormatBool(v), nil
	case error:
		return v.Error(), nil
	}

	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64), nil
	case reflect.String:
		return rv.String(), nil
	case reflect.Ptr:
		return toString(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		// Comma-joined, matching mapstructure.StringToWeakSliceHookFunc(",")
		parts := make([]string, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			s, err := toString(rv.Index(i).Interface())
			if err != nil {
				return "", err
			}
			parts[i] = s
		}
		return strings.Join(parts, ","), nil
	}

	return "", fmt.Errorf("cannot convert type %T to string", val)
}

// isNilValue reports whether val is nil or a nil pointer or slice
func isNilValue(val any) bool {
	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Invalid:
		return true
	case reflect.Ptr, reflect.Slice:
		return rv.IsNil()
	}
	return false
}

// toInt64 attempts conversion from numeric types, parsable strings, and booleans.
func toInt64(key string, val any) (int64, error) {
	if val == nil {
		return 0, fmt.Errorf("value for %s is nil, cannot convert to int64", key)
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := v.Uint()
		maxInt64 := int64(^uint64(0) >> 1)
		if u > uint64(maxInt64) {
			return 0, fmt.Errorf("cannot convert unsigned integer %d (type %T) to int64 for %s: overflow", u, val, key)
		}
		return int64(u), nil
	case reflect.Float32, reflect.Float64:
		return int64(v.Float()), nil
	case reflect.String:
		s := v.String()
		if i, err := strconv.ParseInt(s, 0, 64); err == nil {
			return i, nil
		} else {
			if f, ferr := strconv.ParseFloat(s, 64); ferr == nil {
				return int64(f), nil
			}
			return 0, fmt.Errorf("cannot convert string %q to int64 for %s: %w", s, key, err)
		}
	case reflect.Bool:
		if v.Bool() {
			return 1, nil
		}
		return 0, nil
	}

	return 0, fmt.Errorf("cannot convert type %T to int64 for %s", val, key)
}

// toBool treats 0 as false and any other number as true.
func toBool(key string, val any) (bool, error) {
	if val == nil {
		return false, fmt.Errorf("value for %s is nil, cannot convert to bool", key)
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Bool:
		return v.Bool(), nil
	case reflect.String:
		s := v.String()
		if b, err := strconv.ParseBool(s); err == nil {
			return b, nil
		} else {
			return false, fmt.Errorf("cannot convert string %q to bool for %s: %w", s, key, err)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() != 0, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() != 0, nil
	case reflect.Float32, reflect.Float64:
		return v.Float() != 0, nil
	}

	return false, fmt.Errorf("cannot convert type %T to bool for %s", val, key)
}

func toFloat64(key string, val any) (float64, error) {
	if val == nil {
		return 0.0, fmt.Errorf("value for %s is nil, cannot convert to float64", key)
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return v.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), nil
	case reflect.String:
		s := v.String()
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f, nil
		} else {
			return 0.0, fmt.Errorf("cannot convert string %q to float64 for %s: %w", s, key, err)
		}
	case reflect.Bool:
		if v.Bool() {
			return 1.0, nil
		}
		return 0.0, nil
	}

	return 0.0, fmt.Errorf("cannot convert type %T to float64 for %s", val, key)
}
