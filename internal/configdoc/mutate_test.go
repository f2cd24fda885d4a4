package configdoc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/antonella-framework/antonella-cli/internal/hooks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFixture(t *testing.T) *Document {
	t.Helper()
	doc, err := Read(filepath.Join("testdata", "Config.php"))
	require.NoError(t, err)
	return doc
}

func homeHook() hooks.HookEntry {
	return hooks.HookEntry{Tag: "init", Class: `\App\Controllers\Home`, Method: "index", Priority: 10, ArgCount: 1}
}

func TestMutate_EmptyArray(t *testing.T) {
	doc := readFixture(t)

	out, res, err := Mutate(doc, hooks.ArrayActions, homeHook())
	require.NoError(t, err)
	assert.Equal(t, FormEmpty, res.Form)
	assert.False(t, res.NoOp)

	want := "\tpublic $add_action = [\n" +
		"\t\t['init', [__NAMESPACE__ . '\\App\\Controllers\\Home', 'index'], 10, 1]\n" +
		"\t];"
	assert.Contains(t, string(out.Bytes()), want)
	assert.Equal(t, doc.Len()+2, out.Len())
}

func TestMutate_OpenArray(t *testing.T) {
	doc := readFixture(t)
	entry := hooks.NewHookEntry("wp_head", `\Controllers\HeadController`, "meta")

	out, res, err := Mutate(doc, hooks.ArrayFilters, entry)
	require.NoError(t, err)
	assert.Equal(t, FormOpen, res.Form)

	want := "\tpublic $add_filter = [\n" +
		"\t\t['wp_head', [__NAMESPACE__ . '\\Controllers\\HeadController', 'meta'], 10, 1],\n" +
		"        ['the_content', [__NAMESPACE__ . '\\Controllers\\PostController', 'append'], 10, 1],\n" +
		"    ];"
	assert.Contains(t, string(out.Bytes()), want)
}

func TestMutate_DoesNotTouchInput(t *testing.T) {
	doc := readFixture(t)
	before := string(doc.Bytes())

	_, _, err := Mutate(doc, hooks.ArrayWidgets, hooks.WidgetEntry{Class: hooks.WidgetClass("Clock")})
	require.NoError(t, err)

	assert.Equal(t, before, string(doc.Bytes()))
}

func TestMutate_OtherArraysUntouched(t *testing.T) {
	doc := readFixture(t)

	out, res, err := Mutate(doc, hooks.ArrayShortcodes, hooks.ShortcodeEntry{Tag: "clock", Class: `\Controllers\Clock`, Method: "show"})
	require.NoError(t, err)

	before := doc.Lines()
	after := out.Lines()
	// Lines above the anchor are identical, lines below are shifted by two.
	assert.Equal(t, before[:res.Line], after[:res.Line])
	assert.Equal(t, before[res.Line+1:], after[res.Line+3:])
}

func TestMutate_SequentialInserts(t *testing.T) {
	doc := readFixture(t)

	first, _, err := Mutate(doc, hooks.ArrayActions, homeHook())
	require.NoError(t, err)
	second, res, err := Mutate(first, hooks.ArrayActions, hooks.NewHookEntry("admin_init", `\Controllers\Admin`, "boot"))
	require.NoError(t, err)
	assert.Equal(t, FormOpen, res.Form)

	text := string(second.Bytes())
	assert.Less(t, strings.Index(text, "'admin_init'"), strings.Index(text, "'init'"))
	assert.Equal(t, 1, strings.Count(text, "public $add_action = ["))
}

func TestMutate_IndentationInsensitive(t *testing.T) {
	a := Parse("a.php", []byte("<?php\nclass Config {\n    public $widgets = [];\n}\n"))
	b := Parse("b.php", []byte("<?php\nclass Config {\n\t\tpublic  $widgets=[ ];\n}\n"))
	entry := hooks.WidgetEntry{Class: hooks.WidgetClass("Clock")}

	outA, _, err := Mutate(a, hooks.ArrayWidgets, entry)
	require.NoError(t, err)
	outB, _, err := Mutate(b, hooks.ArrayWidgets, entry)
	require.NoError(t, err)

	assert.Equal(t, string(outA.Bytes()), string(outB.Bytes()))
}

func TestMutate_PostType(t *testing.T) {
	doc := readFixture(t)

	out, _, err := Mutate(doc, hooks.ArrayPostTypes, hooks.NewPostTypeEntry("Book"))
	require.NoError(t, err)

	text := string(out.Bytes())
	assert.Contains(t, text, "\tpublic $post_types = [\n\t\t[\n\t\t\t\"singular\"    => \"Book\",")
	assert.Contains(t, text, "\t\t\t\"gutemberg\"   => true\n\t\t]\n\t];")
}

func TestMutate_Errors(t *testing.T) {
	doc := Parse("Config.php", []byte("<?php\nclass Config {}\n"))

	_, _, err := Mutate(doc, hooks.ArrayActions, homeHook())
	assert.ErrorIs(t, err, ErrAnchorNotFound)

	_, _, err = Mutate(doc, "menus", homeHook())
	assert.ErrorIs(t, err, hooks.ErrUnknownArray)
}

func TestDocument_SaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Config.php")
	content := "<?php\r\nclass Config {\r\n    public $widgets = [];\r\n}\r\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	doc, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(doc.Bytes()))

	out, _, err := Mutate(doc, hooks.ArrayWidgets, hooks.WidgetEntry{Class: hooks.WidgetClass("Clock")})
	require.NoError(t, err)
	require.NoError(t, out.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\tpublic $widgets = [\r\n\t\t__NAMESPACE__ . '\\Widgets\\ClockWidget'\r\n\t];\r\n}")
}
