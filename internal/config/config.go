package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/antonella-framework/antonella-cli/internal/branding"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	fileName = "antonella"
	fileType = "yaml"
	dotEnv   = ".env"
)

// Setting keys.
const (
	KeyConfig          = "paths.config"
	KeySource          = "paths.source"
	KeyManifest        = "paths.manifest"
	KeyCore            = "paths.core"
	KeyStubs           = "paths.stubs"
	KeyCommands        = "paths.commands"
	KeyComposerBin     = "composer.bin"
	KeyNamespacePrefix = "namespace.prefix"
)

// ErrUnknownKey is returned by Set for keys the CLI does not read.
var ErrUnknownKey = errors.New("unknown config key")

func defaults(root string) map[string]any {
	return map[string]any{
		KeyConfig:          "src/Config.php",
		KeySource:          "src",
		KeyManifest:        "composer.json",
		KeyCore:            []string{"antonella-framework.php", filepath.Base(root) + ".php"},
		KeyStubs:           "",
		KeyCommands:        "dev/Commands",
		KeyComposerBin:     "composer",
		KeyNamespacePrefix: branding.NamespacePrefix(),
	}
}

// Keys returns every known setting key, sorted.
func Keys() []string {
	keys := make([]string, 0, 8)
	for k := range defaults("") {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FilePath returns the settings file of the project at root.
func FilePath(root string) string {
	return filepath.Join(root, fileName+"."+fileType)
}

// EnvName returns the environment variable that overrides key,
// e.g. "composer.bin" → "ANTONELLA_COMPOSER_BIN".
func EnvName(key string) string {
	return branding.EnvVar(strings.ReplaceAll(key, ".", "_"))
}

// ResolveRoot picks the project root: the --dir flag, then ANTONELLA_HOME,
// then the working directory.
func ResolveRoot(flag string) (string, error) {
	dir := flag
	if dir == "" {
		dir = os.Getenv(branding.EnvVar("HOME"))
	}
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolving working directory: %w", err)
		}
		dir = wd
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving project root %s: %w", dir, err)
	}
	return abs, nil
}

// Settings is the resolved configuration of one project.
type Settings struct {
	Root string
	v    *viper.Viper
}

// Load reads the settings of the project at root. Neither antonella.yaml
// nor .env has to exist.
func Load(root string) (*Settings, error) {
	v := viper.New()
	for k, val := range defaults(root) {
		v.SetDefault(k, val)
	}

	v.SetConfigFile(FilePath(root))
	v.SetConfigType(fileType)
	if err := v.ReadInConfig(); err != nil && !missing(err) {
		return nil, fmt.Errorf("reading %s: %w", FilePath(root), err)
	}

	v.SetEnvPrefix(branding.EnvPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// .env values sit between the file and the real environment.
	env, err := godotenv.Read(filepath.Join(root, dotEnv))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("reading %s: %w", filepath.Join(root, dotEnv), err)
	}
	for _, k := range Keys() {
		name := EnvName(k)
		if _, set := os.LookupEnv(name); set {
			continue
		}
		if val, ok := env[name]; ok {
			if k == KeyCore {
				v.Set(k, splitList(val))
			} else {
				v.Set(k, val)
			}
		}
	}

	return &Settings{Root: root, v: v}, nil
}

func missing(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
}

// Get returns a setting as a string; lists are joined with commas.
func (s *Settings) Get(key string) string {
	if key == KeyCore {
		return strings.Join(s.CoreFiles(false), ",")
	}
	return s.v.GetString(key)
}

// All returns every known setting as strings.
func (s *Settings) All() map[string]string {
	out := make(map[string]string, len(Keys()))
	for _, k := range Keys() {
		out[k] = s.Get(k)
	}
	return out
}

func (s *Settings) path(key string) string {
	p := s.v.GetString(key)
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(s.Root, filepath.FromSlash(p))
}

// ConfigPath is the absolute path of the plugin's Config.php.
func (s *Settings) ConfigPath() string { return s.path(KeyConfig) }

// SourceDir is the absolute path of the plugin's source tree.
func (s *Settings) SourceDir() string { return s.path(KeySource) }

// ManifestPath is the absolute path of composer.json.
func (s *Settings) ManifestPath() string { return s.path(KeyManifest) }

// StubsDir is the stub override directory, or "" for the embedded stubs.
func (s *Settings) StubsDir() string { return s.path(KeyStubs) }

// CommandsDir is where console commands are generated.
func (s *Settings) CommandsDir() string { return s.path(KeyCommands) }

func (s *Settings) ComposerBin() string { return s.v.GetString(KeyComposerBin) }

func (s *Settings) NamespacePrefix() string { return s.v.GetString(KeyNamespacePrefix) }

// CoreFiles lists the plugin's core files. absolute resolves them against
// the project root.
func (s *Settings) CoreFiles(absolute bool) []string {
	files := s.v.GetStringSlice(KeyCore)
	if len(files) == 1 && strings.ContainsAny(files[0], ", ") {
		files = splitList(files[0])
	}
	if !absolute {
		return files
	}
	out := make([]string, len(files))
	for i, f := range files {
		if filepath.IsAbs(f) {
			out[i] = f
		} else {
			out[i] = filepath.Join(s.Root, filepath.FromSlash(f))
		}
	}
	return out
}

// Set writes key to the project's antonella.yaml. Only keys already in the
// file and key itself are written; defaults and environment overrides are
// not persisted.
func Set(root, key, value string) error {
	if !isKey(key) {
		return fmt.Errorf("%w %q (known keys: %s)", ErrUnknownKey, key, strings.Join(Keys(), ", "))
	}
	v := viper.New()
	v.SetConfigFile(FilePath(root))
	v.SetConfigType(fileType)
	if _, err := os.Stat(FilePath(root)); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading %s: %w", FilePath(root), err)
		}
	}

	if key == KeyCore {
		v.Set(key, splitList(value))
	} else {
		v.Set(key, value)
	}
	if err := v.WriteConfigAs(FilePath(root)); err != nil {
		return fmt.Errorf("writing %s: %w", FilePath(root), err)
	}
	return nil
}

func isKey(key string) bool {
	for _, k := range Keys() {
		if k == key {
			return true
		}
	}
	return false
}
