package doctor

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/antonella-framework/antonella-cli/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const healthyManifest = `{
    "name": "acme/shop",
    "version": "1.9.0",
    "require": {"php": ">=7.4", "jenssegers/blade": "^1.4|^2.0"},
    "require-dev": {"symfony/var-dumper": "^5.0"},
    "autoload": {"psr-4": {"Antonella\\ABCDE\\": "src/"}}
}`

const healthyConfig = `<?php
namespace Antonella\ABCDE;

class Config
{
    public $add_action = [
        ['init', [__NAMESPACE__ . '\Controllers\Home', 'index'], 10, 1],
    ];
    public $add_filter = [];
    public $shortcodes = [];
    public $widgets = [];
    public $post_types = [];
}
`

func writeProject(t *testing.T, manifest, cfg string) *config.Settings {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "composer.json"), []byte(manifest), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "Config.php"), []byte(cfg), 0o644))
	t.Setenv("ANTONELLA_COMPOSER_BIN", filepath.Join(root, "no-composer"))
	s, err := config.Load(root)
	require.NoError(t, err)
	return s
}

func statuses(r *Report) map[string]Status {
	out := map[string]Status{}
	for _, c := range r.Checks {
		out[c.Name] = c.Status
	}
	return out
}

func TestRun_Healthy(t *testing.T) {
	r := Run(context.Background(), writeProject(t, healthyManifest, healthyConfig))
	got := statuses(r)

	assert.False(t, r.Failed())
	for _, name := range []string{"manifest", "namespace", "version", "constraints", "source tree", "anchors", "registry"} {
		assert.Equal(t, OK, got[name], name)
	}
	assert.Equal(t, Warn, got["composer"])
	assert.NotContains(t, got, "config namespace")
}

func TestRun_Problems(t *testing.T) {
	manifest := `{"version": "one", "require": {"x/y": "dev-master"}, "autoload": {"psr-4": {"Antonella\\QWERT\\": "src/"}}}`
	cfg := "<?php\nnamespace Antonella\\ABCDE;\nclass Config {\n    public $add_action = [];\n}\n"
	r := Run(context.Background(), writeProject(t, manifest, cfg))
	got := statuses(r)

	assert.True(t, r.Failed())
	assert.Equal(t, Fail, got["version"])
	assert.Equal(t, Warn, got["constraints"])
	assert.Equal(t, Fail, got["anchors"])
	assert.Equal(t, Fail, got["registry"])
}

func TestRun_NamespaceMismatch(t *testing.T) {
	manifest := `{"version": "1.0.0", "autoload": {"psr-4": {"Antonella\\QWERT\\": "src/"}}}`
	got := statuses(Run(context.Background(), writeProject(t, manifest, healthyConfig)))
	assert.Equal(t, Warn, got["config namespace"])
}

func TestRun_MissingManifest(t *testing.T) {
	s := writeProject(t, healthyManifest, healthyConfig)
	require.NoError(t, os.Remove(s.ManifestPath()))

	r := Run(context.Background(), s)
	assert.True(t, r.Failed())
	assert.Equal(t, Fail, statuses(r)["manifest"])
}

func TestParseConstraint(t *testing.T) {
	c, err := ParseConstraint("^7.4|^8.0")
	require.NoError(t, err)
	assert.NotNil(t, c)

	_, err = ParseConstraint("^7.4 || ^8.0")
	assert.NoError(t, err)

	_, err = ParseConstraint("dev-main")
	assert.Error(t, err)
}
