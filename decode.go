// FILE: lixenwraith/lightconfig/decode.go
package lightconfig

import (
	"fmt"
	"reflect"
	"time"

	"github.com/go-viper/mapstructure/v2"
)

// decodeInto is the single authoritative conversion from a persisted value
// to a live field. target must be settable and is left untouched when the
// decode fails.
func decodeInto(target reflect.Value, data any) error {
	if !target.CanSet() {
		return fmt.Errorf("decode target of type %s is not settable", target.Type())
	}

	// Decoding through a pointer lets the *url.URL hook serve url.URL fields
	// too, and keeps partial results out of the field.
	scratch := reflect.New(reflect.PointerTo(target.Type()))
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           scratch.Interface(),
		WeaklyTypedInput: true,
		DecodeHook:       getDecodeHook(),
		ZeroFields:       true,
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(data); err != nil {
		return fmt.Errorf("%w: %w", ErrTypeMismatch, err)
	}

	if decoded := scratch.Elem(); decoded.IsNil() {
		target.Set(reflect.Zero(target.Type()))
	} else {
		target.Set(decoded.Elem())
	}
	return nil
}

// getDecodeHook returns the composite decode hook for all type conversions
func getDecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		// Network types
		mapstructure.StringToIPHookFunc(),
		mapstructure.StringToIPNetHookFunc(),
		mapstructure.StringToURLHookFunc(),

		// Standard hooks
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToTimeHookFunc(time.RFC3339Nano),
		stringToBytesHookFunc(),
		mapstructure.StringToWeakSliceHookFunc(","),
	)
}

// stringToBytesHookFunc takes a string as raw bytes, so byte slices are not
// split as comma lists.
func stringToBytesHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Slice || t.Elem().Kind() != reflect.Uint8 {
			return data, nil
		}
		return []byte(reflect.ValueOf(data).String()), nil
	}
}
