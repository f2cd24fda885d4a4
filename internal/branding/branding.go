// Package branding provides compile-time identity values for the CLI.
//
// branding.yaml is embedded with //go:embed, so renaming the binary or the
// environment prefix only requires editing that file before `go build`.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName         string `yaml:"cli_name"`
	DisplayName     string `yaml:"display_name"`
	Description     string `yaml:"description"`
	EnvPrefix       string `yaml:"env_prefix"`
	NamespacePrefix string `yaml:"namespace_prefix"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:         "antonella",
			DisplayName:     "Antonella",
			Description:     "Scaffolding tool for Antonella Framework WordPress plugins",
			EnvPrefix:       "ANTONELLA",
			NamespacePrefix: "Antonella",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "antonella").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// EnvPrefix returns the environment variable prefix (e.g., "ANTONELLA").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// NamespacePrefix returns the root PHP namespace segment every generated
// plugin lives under (e.g., "Antonella" in Antonella\ABCDE).
func NamespacePrefix() string { load(); return defaults.NamespacePrefix }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "ANTONELLA_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
