package hookregistry

import (
	"fmt"

	"github.com/antonella-framework/antonella-cli/internal/hooks"
)

// Registry is the structured view of Config.php. It is built fresh for every
// command invocation and never cached.
type Registry struct {
	Path       string                 `yaml:"-" json:"-"`
	Namespace  string                 `yaml:"namespace" json:"namespace"`
	Actions    []hooks.HookEntry      `yaml:"add_action" json:"add_action"`
	Filters    []hooks.HookEntry      `yaml:"add_filter" json:"add_filter"`
	Shortcodes []hooks.ShortcodeEntry `yaml:"shortcodes" json:"shortcodes"`
	Widgets    []hooks.WidgetEntry    `yaml:"widgets" json:"widgets"`
	PostTypes  []hooks.PostTypeEntry  `yaml:"post_types" json:"post_types"`
}

// Entries returns the entries of one array as hooks.Entry values.
func (r *Registry) Entries(name hooks.ArrayName) ([]hooks.Entry, error) {
	var out []hooks.Entry
	switch name {
	case hooks.ArrayActions:
		for _, e := range r.Actions {
			out = append(out, e)
		}
	case hooks.ArrayFilters:
		for _, e := range r.Filters {
			out = append(out, e)
		}
	case hooks.ArrayShortcodes:
		for _, e := range r.Shortcodes {
			out = append(out, e)
		}
	case hooks.ArrayWidgets:
		for _, e := range r.Widgets {
			out = append(out, e)
		}
	case hooks.ArrayPostTypes:
		for _, e := range r.PostTypes {
			out = append(out, e)
		}
	default:
		return nil, fmt.Errorf("%w: %q", hooks.ErrUnknownArray, name)
	}
	return out, nil
}

// Len returns the number of entries in an array, or 0 for unknown arrays.
func (r *Registry) Len(name hooks.ArrayName) int {
	entries, err := r.Entries(name)
	if err != nil {
		return 0
	}
	return len(entries)
}

// Keys projects every entry of an array to its duplicate key.
func (r *Registry) Keys(name hooks.ArrayName) ([]hooks.DuplicateKey, error) {
	entries, err := r.Entries(name)
	if err != nil {
		return nil, err
	}
	keys := make([]hooks.DuplicateKey, len(entries))
	for i, e := range entries {
		keys[i] = e.Key()
	}
	return keys, nil
}

// IsDuplicate reports whether the array already holds an entry with the same
// key as entry. A post type also collides when its name matches the singular
// or slug of an existing one. It performs no I/O. Unknown arrays hold nothing.
func IsDuplicate(r *Registry, name hooks.ArrayName, entry hooks.Entry) bool {
	if r == nil {
		return false
	}
	if pt, ok := entry.(hooks.PostTypeEntry); ok && name == hooks.ArrayPostTypes {
		for _, e := range r.PostTypes {
			if pt.Collides(e) {
				return true
			}
		}
		return false
	}
	entries, err := r.Entries(name)
	if err != nil {
		return false
	}
	want := entry.Key()
	for _, e := range entries {
		if e.Key() == want {
			return true
		}
	}
	return false
}
