package rename

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strings"
)

const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// SuffixLength is the length of a generated namespace suffix.
const SuffixLength = 5

// EscapeManifest returns token as it appears inside a JSON string, with
// every backslash doubled.
func EscapeManifest(token string) string {
	return strings.ReplaceAll(token, `\`, `\\`)
}

// GenerateNamespace builds "<prefix>\<SUFFIX>". An empty suffix is replaced
// by SuffixLength random uppercase letters.
func GenerateNamespace(prefix, suffix string) string {
	suffix = strings.ToUpper(strings.TrimSpace(suffix))
	if suffix == "" {
		b := make([]byte, SuffixLength)
		for i := range b {
			b[i] = letters[rand.Intn(len(letters))]
		}
		suffix = string(b)
	}
	return strings.TrimRight(prefix, `\`) + `\` + suffix
}

type composerManifest struct {
	Autoload struct {
		PSR4 map[string]json.RawMessage `json:"psr-4"`
	} `json:"autoload"`
}

// CurrentNamespace returns the plugin's root namespace: the PSR-4 autoload
// prefix mapped to src/ in composer.json, without its trailing backslash.
// When no prefix maps to src/, a manifest with a single PSR-4 prefix still
// resolves to it.
func CurrentNamespace(manifestPath string) (string, error) {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrManifestNotFound, manifestPath)
		}
		return "", fmt.Errorf("reading %s: %w", manifestPath, err)
	}
	var m composerManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return "", fmt.Errorf("parsing %s: %w", manifestPath, err)
	}

	prefixes := make([]string, 0, len(m.Autoload.PSR4))
	for prefix := range m.Autoload.PSR4 {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)

	for _, prefix := range prefixes {
		if mapsToSource(m.Autoload.PSR4[prefix]) {
			return strings.TrimRight(prefix, `\`), nil
		}
	}
	if len(prefixes) == 1 {
		return strings.TrimRight(prefixes[0], `\`), nil
	}
	return "", fmt.Errorf("no psr-4 namespace for src/ in %s", manifestPath)
}

// mapsToSource accepts both "src/" and ["src/", ...] mappings.
func mapsToSource(raw json.RawMessage) bool {
	var dirs []string
	var one string
	if err := json.Unmarshal(raw, &one); err == nil {
		dirs = []string{one}
	} else if err := json.Unmarshal(raw, &dirs); err != nil {
		return false
	}
	for _, d := range dirs {
		if strings.Trim(strings.TrimPrefix(d, "./"), "/") == "src" {
			return true
		}
	}
	return false
}
