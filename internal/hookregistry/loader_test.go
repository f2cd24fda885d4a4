package hookregistry

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/antonella-framework/antonella-cli/internal/configdoc"
	"github.com/antonella-framework/antonella-cli/internal/hooks"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Fixture(t *testing.T) {
	reg, err := Load(filepath.Join("testdata", "Config.php"))
	require.NoError(t, err)

	want := &Registry{
		Path:      filepath.Join("testdata", "Config.php"),
		Namespace: `Antonella\ABCDE`,
		Actions: []hooks.HookEntry{
			{Tag: "init", Class: `\Controllers\Home`, Method: "index", Priority: 10, ArgCount: 1},
			{Tag: "admin_menu", Class: `\Admin\Admin`, Method: "menu", Priority: 10, ArgCount: 1},
			{Tag: "wp_footer", Class: `\Controllers\Footer`, Method: "render", Priority: 99, ArgCount: 0},
		},
		Shortcodes: []hooks.ShortcodeEntry{
			{Tag: "clock", Class: `\Controllers\Clock`, Method: "show"},
		},
		Widgets: []hooks.WidgetEntry{
			{Class: `\Widgets\ClockWidget`},
			{Class: `\Vendor\Widgets\Weather`},
		},
		PostTypes: []hooks.PostTypeEntry{
			{Singular: "Book", Plural: "Books", Slug: "book", Position: 99, Image: "antonella-icon.png", Gutenberg: true},
		},
	}
	if diff := cmp.Diff(want, reg, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_EmptyArrays(t *testing.T) {
	reg, err := Load(filepath.Join("testdata", "Empty.php"))
	require.NoError(t, err)
	for _, name := range hooks.ArrayNames {
		assert.Zero(t, reg.Len(name), name)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "Config.php"))
	assert.True(t, errors.Is(err, ErrConfigLoad))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestDecode_Failures(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"missing array", `<?php class Config { public $add_action = []; }`},
		{"syntax error", replaceArray("add_action", `[['init', 'x'`)},
		{"schema: priority is a string", replaceArray("add_action", `[['init', 'Foo::bar', 'high']];`)},
		{"schema: keyed hook", replaceArray("add_filter", `[['tag' => 'init']];`)},
		{"schema: widget is an array", replaceArray("widgets", `[['x']];`)},
		{"schema: post type without singular", replaceArray("post_types", `[["plural" => "Books"]];`)},
		{"unsupported expression", replaceArray("shortcodes", `[['x', get_callable()]];`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.src))
			assert.Error(t, err)
		})
	}
}

func TestDecode_SchemaIssues(t *testing.T) {
	_, err := Decode([]byte(replaceArray("add_action", `[['init', 'Foo::bar', 'high']];`)))
	var se *SchemaError
	require.True(t, errors.As(err, &se), "got %v", err)
	var paths []string
	for _, issue := range se.Issues {
		paths = append(paths, issue.Path)
	}
	assert.Contains(t, paths, "/add_action/0/2")
}

// Entries inserted one after the other into an empty array load back as
// exactly those entries, and nothing else changes.
func TestRoundTrip_SequentialInserts(t *testing.T) {
	entries := map[hooks.ArrayName][2]hooks.Entry{
		hooks.ArrayActions: {
			hooks.NewHookEntry("init", `\Controllers\Home`, "index"),
			hooks.HookEntry{Tag: "init", Class: `\Controllers\Home`, Method: "boot", Priority: 5, ArgCount: 2},
		},
		hooks.ArrayFilters: {
			hooks.NewHookEntry("the_title", `\Controllers\Title`, "upper"),
			hooks.NewHookEntry("the_content", `\Controllers\Admin\It's`, "run"),
		},
		hooks.ArrayShortcodes: {
			hooks.ShortcodeEntry{Tag: "clock", Class: `\Controllers\Clock`, Method: "show"},
			hooks.ShortcodeEntry{Tag: "date", Class: `\Controllers\Clock`, Method: "date"},
		},
		hooks.ArrayWidgets: {
			hooks.WidgetEntry{Class: hooks.WidgetClass("clock")},
			hooks.WidgetEntry{Class: hooks.WidgetClass("weather")},
		},
		hooks.ArrayPostTypes: {
			hooks.NewPostTypeEntry("Book"),
			hooks.NewPostTypeEntry("Movie"),
		},
	}

	empty, err := os.ReadFile(filepath.Join("testdata", "Empty.php"))
	require.NoError(t, err)

	for name, pair := range entries {
		t.Run(string(name), func(t *testing.T) {
			doc := configdoc.Parse("Config.php", empty)
			for _, e := range pair {
				doc, _, err = configdoc.Mutate(doc, name, e)
				require.NoError(t, err)
			}

			reg, err := Decode(doc.Bytes())
			require.NoError(t, err, string(doc.Bytes()))

			got, err := reg.Entries(name)
			require.NoError(t, err)
			// Each insert becomes the first element.
			assert.Equal(t, []hooks.Entry{pair[1], pair[0]}, got)

			for _, other := range hooks.ArrayNames {
				if other != name {
					assert.Zero(t, reg.Len(other), other)
				}
			}
		})
	}
}

func replaceArray(name, literal string) string {
	src := "<?php\nnamespace Antonella\\ABCDE;\nclass Config {\n"
	for _, n := range hooks.ArrayNames {
		if string(n) == name {
			src += "    public $" + name + " = " + literal + "\n"
			continue
		}
		src += "    public $" + string(n) + " = [];\n"
	}
	return src + "}\n"
}
