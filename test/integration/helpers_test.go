//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testPlugin holds the paths of an isolated plugin checkout.
type testPlugin struct {
	Root     string // plugin root, named like the plugin's main file
	Source   string // src/
	Config   string // src/Config.php
	Manifest string // composer.json
}

// setupPlugin lays out a plugin the way the framework's installer leaves it
// and points ANTONELLA_HOME at it. The env vars are restored after the test.
func setupPlugin(t *testing.T) *testPlugin {
	t.Helper()

	root := filepath.Join(t.TempDir(), "book-store")
	p := &testPlugin{
		Root:     root,
		Source:   filepath.Join(root, "src"),
		Config:   filepath.Join(root, "src", "Config.php"),
		Manifest: filepath.Join(root, "composer.json"),
	}
	t.Setenv("ANTONELLA_HOME", root)
	t.Setenv("ANTONELLA_COMPOSER_BIN", filepath.Join(root, "no-composer"))

	writeFile(t, p.Manifest, `{
    "name": "acme/book-store",
    "version": "1.0.0",
    "require": {"php": ">=7.4"},
    "autoload": {
        "psr-4": {
            "Antonella\\BOOKS\\": "src/"
        }
    }
}
`)
	writeFile(t, filepath.Join(root, "antonella-framework.php"), "<?php\n$antonella = new Antonella\\BOOKS\\Start;\n")
	writeFile(t, filepath.Join(root, "book-store.php"), "<?php\n/* Plugin Name: Book Store */\nrequire __DIR__ . '/antonella-framework.php';\n")
	writeFile(t, p.Config, `<?php

namespace Antonella\BOOKS;

class Config
{
    public $plugin_prefix = 'bs';

    public $add_action = [];

    public $add_filter = [
        ['the_content', [__NAMESPACE__ . '\Controllers\ContentController', 'append'], 10, 1],
    ];

    public $shortcodes = [];

    public $widgets = [];

    public $post_types = [];
}
`)
	writeFile(t, filepath.Join(p.Source, "Start.php"), "<?php\nnamespace Antonella\\BOOKS;\n\nclass Start\n{\n}\n")
	writeFile(t, filepath.Join(p.Source, "Controllers", "ContentController.php"),
		"<?php\nnamespace Antonella\\BOOKS\\Controllers;\n\nclass ContentController\n{\n    public function append($content)\n    {\n        return $content;\n    }\n}\n")
	writeFile(t, filepath.Join(p.Source, "assets", "style.css"), "body { margin: 0; }\n")

	return p
}

// writeFile creates parent directories and writes content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// snapshotTree returns every regular file under root keyed by its slash path.
func snapshotTree(t *testing.T, root string) map[string]string {
	t.Helper()
	out := map[string]string{}
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, _ := filepath.Rel(root, path)
		out[filepath.ToSlash(rel)] = readFile(t, path)
		return nil
	})
	if err != nil {
		t.Fatalf("walking %s: %v", root, err)
	}
	return out
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s", path)
	}
}

func assertContains(t *testing.T, s, substr, context string) {
	t.Helper()
	if !strings.Contains(s, substr) {
		t.Errorf("%s: expected %q in:\n%s", context, substr, s)
	}
}
