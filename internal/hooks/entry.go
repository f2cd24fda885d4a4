package hooks

import (
	"fmt"
	"strings"
)

// Defaults applied when a hook spec omits priority or argument count.
const (
	DefaultPriority = 10
	DefaultArgCount = 1
)

// DuplicateKey is the identity of an entry for duplicate detection. Priority
// and argument count are deliberately not part of it.
type DuplicateKey struct {
	Tag    string
	Class  string
	Method string
}

// NewKey builds a key, normalizing the class so `\Controllers\Home` and
// `Controllers\Home` compare equal.
func NewKey(tag, class, method string) DuplicateKey {
	return DuplicateKey{
		Tag:    tag,
		Class:  strings.TrimLeft(class, `\`),
		Method: method,
	}
}

func (k DuplicateKey) String() string {
	var parts []string
	if k.Tag != "" {
		parts = append(parts, k.Tag)
	}
	target := k.Class
	if k.Method != "" {
		target += "@" + k.Method
	}
	if target != "" {
		parts = append(parts, target)
	}
	return strings.Join(parts, ":")
}

// Entry is one element of a Config.php array.
type Entry interface {
	// Key returns the duplicate-detection identity of the entry.
	Key() DuplicateKey
	// Render returns the PHP literal for the entry. Every line after the
	// first is prefixed with indent; no trailing comma is emitted.
	Render(indent string) string
}

// HookEntry is an add_action or add_filter binding. Class is relative to the
// plugin namespace (e.g. `\Controllers\Home`).
type HookEntry struct {
	Tag      string `yaml:"tag" json:"tag"`
	Class    string `yaml:"class" json:"class"`
	Method   string `yaml:"method" json:"method"`
	Priority int    `yaml:"priority" json:"priority"`
	ArgCount int    `yaml:"args" json:"args"`
}

// NewHookEntry returns a hook with the default priority and argument count.
func NewHookEntry(tag, class, method string) HookEntry {
	return HookEntry{
		Tag:      tag,
		Class:    class,
		Method:   method,
		Priority: DefaultPriority,
		ArgCount: DefaultArgCount,
	}
}

func (e HookEntry) Key() DuplicateKey { return NewKey(e.Tag, e.Class, e.Method) }

func (e HookEntry) Render(string) string {
	return fmt.Sprintf("[%s, [__NAMESPACE__ . %s, %s], %d, %d]",
		Quote(e.Tag), Quote(e.Class), Quote(e.Method), e.Priority, e.ArgCount)
}

// ShortcodeEntry binds a shortcode tag to a controller method.
type ShortcodeEntry struct {
	Tag    string `yaml:"tag" json:"tag"`
	Class  string `yaml:"class" json:"class"`
	Method string `yaml:"method" json:"method"`
}

func (e ShortcodeEntry) Key() DuplicateKey { return NewKey(e.Tag, e.Class, e.Method) }

func (e ShortcodeEntry) Render(string) string {
	return fmt.Sprintf("[%s, __NAMESPACE__ . %s]", Quote(e.Tag), Quote(e.Class+"::"+e.Method))
}

// WidgetEntry registers a widget class (e.g. `\Widgets\ClockWidget`).
type WidgetEntry struct {
	Class string `yaml:"class" json:"class"`
}

func (e WidgetEntry) Key() DuplicateKey { return NewKey("", e.Class, "") }

func (e WidgetEntry) Render(string) string {
	return "__NAMESPACE__ . " + Quote(e.Class)
}

// PostTypeEntry declares a custom post type.
type PostTypeEntry struct {
	Singular  string `yaml:"singular" json:"singular"`
	Plural    string `yaml:"plural" json:"plural"`
	Slug      string `yaml:"slug" json:"slug"`
	Position  int    `yaml:"position" json:"position"`
	Image     string `yaml:"image" json:"image"`
	Gutenberg bool   `yaml:"gutenberg" json:"gutenberg"`
}

// NewPostTypeEntry derives plural and slug from the singular name the same
// way the framework's own generator does.
func NewPostTypeEntry(name string) PostTypeEntry {
	return PostTypeEntry{
		Singular:  name,
		Plural:    name + "s",
		Slug:      Slugify(name),
		Position:  99,
		Image:     "antonella-icon.png",
		Gutenberg: true,
	}
}

// Key identifies a post type by its slug; a missing slug is derived from the
// singular name so "Products", "products" and a slug of "products" collide.
func (e PostTypeEntry) Key() DuplicateKey {
	slug := e.Slug
	if slug == "" {
		slug = Slugify(e.Singular)
	}
	return DuplicateKey{Tag: strings.ToLower(slug)}
}

// Collides reports whether e and other name the same post type: any of their
// singular names and slugs match, ignoring case.
func (e PostTypeEntry) Collides(other PostTypeEntry) bool {
	for _, a := range e.names() {
		for _, b := range other.names() {
			if a == b {
				return true
			}
		}
	}
	return false
}

func (e PostTypeEntry) names() []string {
	var out []string
	for _, n := range []string{e.Singular, e.Slug} {
		if n = strings.ToLower(strings.TrimSpace(n)); n != "" {
			out = append(out, n)
		}
	}
	if e.Slug == "" && e.Singular != "" {
		out = append(out, strings.ToLower(Slugify(e.Singular)))
	}
	return out
}

// Render emits the associative block. The "gutemberg" key is the spelling the
// framework reads at runtime.
func (e PostTypeEntry) Render(indent string) string {
	rows := [][2]string{
		{`"singular"`, doubleQuote(e.Singular)},
		{`"plural"`, doubleQuote(e.Plural)},
		{`"slug"`, doubleQuote(e.Slug)},
		{`"position"`, fmt.Sprintf("%d", e.Position)},
		{`"taxonomy"`, "[]"},
		{`"image"`, doubleQuote(e.Image)},
		{`"gutemberg"`, fmt.Sprintf("%t", e.Gutenberg)},
	}

	var b strings.Builder
	b.WriteString("[\n")
	for i, row := range rows {
		b.WriteString(indent + "\t")
		b.WriteString(fmt.Sprintf("%-13s => %s", row[0], row[1]))
		if i < len(rows)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(indent + "]")
	return b.String()
}
