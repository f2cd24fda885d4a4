package hooks

import (
	"errors"
	"fmt"
)

// ErrUnknownArray is returned when a caller names an array Config.php does not declare.
var ErrUnknownArray = errors.New("unknown config array")

// ArrayName identifies one of the public arrays declared in Config.php.
type ArrayName string

// The arrays declared by every generated Config.php.
const (
	ArrayActions    ArrayName = "add_action"
	ArrayFilters    ArrayName = "add_filter"
	ArrayShortcodes ArrayName = "shortcodes"
	ArrayWidgets    ArrayName = "widgets"
	ArrayPostTypes  ArrayName = "post_types"
)

// ArrayNames lists every known array in declaration order.
var ArrayNames = []ArrayName{
	ArrayActions,
	ArrayFilters,
	ArrayShortcodes,
	ArrayWidgets,
	ArrayPostTypes,
}

// Valid reports whether n is one of the known arrays.
func (n ArrayName) Valid() bool {
	for _, known := range ArrayNames {
		if n == known {
			return true
		}
	}
	return false
}

func (n ArrayName) String() string { return string(n) }

// ParseArrayName converts s to an ArrayName, failing with ErrUnknownArray.
func ParseArrayName(s string) (ArrayName, error) {
	n := ArrayName(s)
	if !n.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownArray, s)
	}
	return n, nil
}
