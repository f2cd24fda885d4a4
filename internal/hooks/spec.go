package hooks

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrInvalidSpec is returned for malformed tag:Controller@method arguments.
var ErrInvalidSpec = errors.New("invalid hook spec")

// ParseHookSpec parses "tag:Controller@method:priority:args". Only tag and
// controller are required; the method defaults to "index".
func ParseHookSpec(spec string) (HookEntry, error) {
	parts := strings.Split(spec, ":")
	for len(parts) < 4 {
		parts = append(parts, "")
	}
	tag, callable := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if tag == "" || callable == "" {
		return HookEntry{}, fmt.Errorf("%w %q: expected tag:Controller@method:priority:args", ErrInvalidSpec, spec)
	}

	controller, method := splitCallable(callable, "index")
	if controller == "" {
		return HookEntry{}, fmt.Errorf("%w %q: missing controller", ErrInvalidSpec, spec)
	}

	entry := NewHookEntry(tag, ControllerClass(controller), method)

	var err error
	if entry.Priority, err = optionalInt(parts[2], DefaultPriority); err != nil {
		return HookEntry{}, fmt.Errorf("%w %q: priority: %v", ErrInvalidSpec, spec, err)
	}
	if entry.ArgCount, err = optionalInt(parts[3], DefaultArgCount); err != nil {
		return HookEntry{}, fmt.Errorf("%w %q: args: %v", ErrInvalidSpec, spec, err)
	}
	return entry, nil
}

// ParseShortcodeSpec parses "name:Controller@method"; the method defaults to "short_code".
func ParseShortcodeSpec(spec string) (ShortcodeEntry, error) {
	tag, callable, ok := strings.Cut(spec, ":")
	tag, callable = strings.TrimSpace(tag), strings.TrimSpace(callable)
	if !ok || tag == "" || callable == "" {
		return ShortcodeEntry{}, fmt.Errorf("%w %q: expected name:Controller@method", ErrInvalidSpec, spec)
	}
	controller, method := splitCallable(callable, "short_code")
	if controller == "" {
		return ShortcodeEntry{}, fmt.Errorf("%w %q: missing controller", ErrInvalidSpec, spec)
	}
	return ShortcodeEntry{Tag: tag, Class: ControllerClass(controller), Method: method}, nil
}

func splitCallable(callable, defaultMethod string) (string, string) {
	controller, method, _ := strings.Cut(callable, "@")
	if method == "" {
		method = defaultMethod
	}
	return strings.TrimSpace(controller), strings.TrimSpace(method)
}

func optionalInt(s string, def int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	return strconv.Atoi(s)
}

// ControllerClass returns the namespace-relative class of a controller,
// accepting sub-folders written with slashes: "Admin/Panel" → `\Controllers\Admin\Panel`.
func ControllerClass(controller string) string {
	controller = strings.TrimSuffix(controller, ".php")
	controller = strings.ReplaceAll(controller, "/", `\`)
	return `\Controllers\` + strings.TrimLeft(controller, `\`)
}

// WidgetClass returns the namespace-relative class of a widget.
func WidgetClass(name string) string {
	return `\Widgets\` + WidgetName(name)
}

// WidgetName normalizes a widget name to "<Ucfirst>Widget".
func WidgetName(name string) string {
	name = ucfirst(strings.TrimSuffix(name, ".php"))
	return strings.TrimSuffix(name, "Widget") + "Widget"
}

// ControllerFile returns the file path, relative to src/Controllers, for a
// controller name: "home" → "HomeController.php", "admin/panel" → "Admin/PanelController.php".
func ControllerFile(name string) string {
	name = strings.TrimSuffix(name, ".php")
	folder, file, nested := strings.Cut(name, "/")
	if !nested {
		file, folder = folder, ""
	}
	if !strings.Contains(file, "Controller") {
		file += "Controller"
	}
	file = ucfirst(file) + ".php"
	if folder != "" {
		return ucfirst(folder) + "/" + file
	}
	return file
}

// Slugify lowercases name, strips accents and joins words with dashes.
func Slugify(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, name)
	if err != nil {
		plain = name
	}

	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(plain) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}

func ucfirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
