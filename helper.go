// File: lixenwraith/lightconfig/helper.go
package lightconfig

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// isValidKey checks if a variable key is safe to use as a field name and a
// flag name: ASCII letters, digits, underscores and dashes, not starting with a dash.
func isValidKey(s string) bool {
	if len(s) == 0 || s[0] == '-' {
		return false
	}

	for _, r := range s {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		isUnderscore := r == '_'
		isDash := r == '-'

		if !(isLetter || isDigit || isUnderscore || isDash) {
			return false
		}
	}
	return true
}

// validateKey returns an ErrDiscovery error for keys rejected by isValidKey
func validateKey(key string) error {
	if !isValidKey(key) {
		return fmt.Errorf("%w: invalid variable key %q", ErrDiscovery, key)
	}
	return nil
}

// keysOf returns the sorted keys of a variable map
func keysOf(vars map[string]*Variable) []string {
	keys := lo.Keys(vars)
	sort.Strings(keys)
	return keys
}

// describeKeys renders a short key list for log lines
func describeKeys(keys []string) string {
	if len(keys) == 0 {
		return "none"
	}
	return strings.Join(keys, ", ")
}
