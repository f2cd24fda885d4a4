package hookregistry

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/antonella-framework/antonella-cli/internal/configdoc"
	"github.com/antonella-framework/antonella-cli/internal/hooks"
)

// ErrConfigLoad wraps every failure to produce a Registry: missing or
// unreadable file, a declaration out of canonical shape, an undecodable
// literal or a schema violation.
var ErrConfigLoad = errors.New("cannot load config")

var namespacePattern = regexp.MustCompile(`(?m)^\s*namespace\s+([A-Za-z_][A-Za-z0-9_\\]*)\s*;`)

// Load reads the config file at path and decodes its hook arrays.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigLoad, err)
	}
	reg, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrConfigLoad, path, err)
	}
	reg.Path = path
	return reg, nil
}

// Decode builds a Registry from Config.php content.
func Decode(data []byte) (*Registry, error) {
	src := string(data)
	reg := &Registry{}
	if m := namespacePattern.FindStringSubmatch(src); m != nil {
		reg.Namespace = m[1]
	}

	raw := make(map[string]any, len(hooks.ArrayNames))
	decoded := make(map[hooks.ArrayName]*phpArray, len(hooks.ArrayNames))
	for _, name := range hooks.ArrayNames {
		arr, err := decodeArray(src, name, reg.Namespace)
		if err != nil {
			return nil, fmt.Errorf("$%s: %w", name, err)
		}
		decoded[name] = arr
		raw[string(name)] = toJSON(arr)
	}

	if err := validate(raw); err != nil {
		return nil, err
	}

	for _, it := range decoded[hooks.ArrayActions].items {
		reg.Actions = append(reg.Actions, hookFrom(it.value.(*phpArray), reg.Namespace))
	}
	for _, it := range decoded[hooks.ArrayFilters].items {
		reg.Filters = append(reg.Filters, hookFrom(it.value.(*phpArray), reg.Namespace))
	}
	for _, it := range decoded[hooks.ArrayShortcodes].items {
		reg.Shortcodes = append(reg.Shortcodes, shortcodeFrom(it.value.(*phpArray), reg.Namespace))
	}
	for _, it := range decoded[hooks.ArrayWidgets].items {
		reg.Widgets = append(reg.Widgets, hooks.WidgetEntry{Class: relativeClass(it.value.(string), reg.Namespace)})
	}
	for _, it := range decoded[hooks.ArrayPostTypes].items {
		reg.PostTypes = append(reg.PostTypes, postTypeFrom(it.value.(*phpArray)))
	}
	return reg, nil
}

// decodeArray finds the declaration of name and decodes the literal that
// starts at its opening bracket.
func decodeArray(src string, name hooks.ArrayName, namespace string) (*phpArray, error) {
	anchor, err := configdoc.NewAnchor(name)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(src, "\n")
	m, err := anchor.Match(lines)
	if err != nil {
		return nil, err
	}

	offset := 0
	for _, line := range lines[:m.Line] {
		offset += len(line) + 1
	}
	line := lines[m.Line]
	eq := strings.Index(line, "=")
	if eq < 0 {
		return nil, fmt.Errorf("malformed declaration %q", strings.TrimSpace(line))
	}
	open := strings.Index(line[eq:], "[")
	if open < 0 {
		return nil, fmt.Errorf("malformed declaration %q", strings.TrimSpace(line))
	}

	d := &literalDecoder{src: src, pos: offset + eq + open, namespace: namespace}
	v, err := d.decodeValue()
	if err != nil {
		return nil, err
	}
	arr, ok := v.(*phpArray)
	if !ok {
		return nil, fmt.Errorf("not an array literal")
	}
	return arr, nil
}

func hookFrom(arr *phpArray, namespace string) hooks.HookEntry {
	e := hooks.HookEntry{
		Tag:      arr.items[0].value.(string),
		Priority: hooks.DefaultPriority,
		ArgCount: hooks.DefaultArgCount,
	}
	e.Class, e.Method = callableFrom(arr.items[1].value, namespace)
	if len(arr.items) > 2 {
		e.Priority = toInt(arr.items[2].value)
	}
	if len(arr.items) > 3 {
		e.ArgCount = toInt(arr.items[3].value)
	}
	return e
}

func shortcodeFrom(arr *phpArray, namespace string) hooks.ShortcodeEntry {
	e := hooks.ShortcodeEntry{Tag: arr.items[0].value.(string)}
	e.Class, e.Method = callableFrom(arr.items[1].value, namespace)
	return e
}

// callableFrom splits a PHP callable, either [Class, method] or "Class::method".
func callableFrom(v any, namespace string) (string, string) {
	if arr, ok := v.(*phpArray); ok {
		return relativeClass(arr.items[0].value.(string), namespace), arr.items[1].value.(string)
	}
	class, method, _ := strings.Cut(v.(string), "::")
	return relativeClass(class, namespace), method
}

// relativeClass strips the plugin namespace so stored classes read like the
// ones generators build (`\Controllers\Home`).
func relativeClass(class, namespace string) string {
	trimmed := strings.TrimLeft(class, `\`)
	if namespace != "" && strings.HasPrefix(trimmed, namespace+`\`) {
		return trimmed[len(namespace):]
	}
	return `\` + trimmed
}

func postTypeFrom(arr *phpArray) hooks.PostTypeEntry {
	var e hooks.PostTypeEntry
	if v, ok := arr.get("singular"); ok {
		e.Singular, _ = v.(string)
	}
	if v, ok := arr.get("plural"); ok {
		e.Plural, _ = v.(string)
	}
	if v, ok := arr.get("slug"); ok {
		e.Slug, _ = v.(string)
	}
	if v, ok := arr.get("position"); ok {
		e.Position = toInt(v)
	}
	if v, ok := arr.get("image"); ok {
		e.Image, _ = v.(string)
	}
	if v, ok := arr.get("gutemberg"); ok {
		e.Gutenberg, _ = v.(bool)
	}
	return e
}

// toInt accepts the integral values the schema lets through, including
// floats with no fractional part.
func toInt(v any) int {
	switch n := v.(type) {
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}
