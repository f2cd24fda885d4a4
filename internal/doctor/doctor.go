package doctor

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/antonella-framework/antonella-cli/internal/config"
	"github.com/antonella-framework/antonella-cli/internal/configdoc"
	"github.com/antonella-framework/antonella-cli/internal/ctxlog"
	"github.com/antonella-framework/antonella-cli/internal/hookregistry"
	"github.com/antonella-framework/antonella-cli/internal/hooks"
	"github.com/antonella-framework/antonella-cli/internal/pkgmanager"
	"github.com/antonella-framework/antonella-cli/internal/rename"
)

// Status is the outcome of one check.
type Status int

const (
	OK Status = iota
	Warn
	Fail
)

func (s Status) String() string {
	switch s {
	case OK:
		return "OK"
	case Warn:
		return "WARN"
	default:
		return "FAIL"
	}
}

// Check is one line of the report.
type Check struct {
	Name   string
	Status Status
	Detail string
}

// Report holds every check in the order it ran.
type Report struct {
	Checks []Check
}

// Failed reports whether any check failed.
func (r *Report) Failed() bool {
	for _, c := range r.Checks {
		if c.Status == Fail {
			return true
		}
	}
	return false
}

func (r *Report) add(name string, status Status, format string, args ...any) {
	r.Checks = append(r.Checks, Check{Name: name, Status: status, Detail: fmt.Sprintf(format, args...)})
}

type composerJSON struct {
	Version    string            `json:"version"`
	Require    map[string]string `json:"require"`
	RequireDev map[string]string `json:"require-dev"`
}

// Run checks the project described by s.
func Run(ctx context.Context, s *config.Settings) *Report {
	r := &Report{}

	manifestNS := checkManifest(r, s)

	if info, err := os.Stat(s.SourceDir()); err != nil || !info.IsDir() {
		r.add("source tree", Fail, "%s is not a directory", s.SourceDir())
	} else {
		r.add("source tree", OK, "%s", s.SourceDir())
	}

	checkConfig(r, s, manifestNS)

	c := &pkgmanager.Composer{Bin: s.ComposerBin(), Dir: s.Root}
	if path, err := c.Available(); err != nil {
		r.add("composer", Warn, "%s not found on PATH", s.ComposerBin())
	} else {
		r.add("composer", OK, "%s", path)
	}
	ctxlog.FromContext(ctx).Debug("doctor finished", "root", s.Root, "checks", len(r.Checks), "failed", r.Failed())
	return r
}

func checkManifest(r *Report, s *config.Settings) string {
	data, err := os.ReadFile(s.ManifestPath())
	if err != nil {
		r.add("manifest", Fail, "%s: %v", s.ManifestPath(), err)
		return ""
	}
	var m composerJSON
	if err := json.Unmarshal(data, &m); err != nil {
		r.add("manifest", Fail, "%s: %v", s.ManifestPath(), err)
		return ""
	}
	r.add("manifest", OK, "%s", s.ManifestPath())

	ns, err := rename.CurrentNamespace(s.ManifestPath())
	if err != nil {
		r.add("namespace", Fail, "%v", err)
	} else if !strings.HasPrefix(ns, s.NamespacePrefix()+`\`) {
		r.add("namespace", Warn, "%s is outside the %s prefix", ns, s.NamespacePrefix())
	} else {
		r.add("namespace", OK, "%s", ns)
	}

	switch {
	case m.Version == "":
		r.add("version", Warn, "composer.json has no version")
	default:
		if v, err := semver.NewVersion(m.Version); err != nil {
			r.add("version", Fail, "%q is not a semantic version", m.Version)
		} else {
			r.add("version", OK, "%s", v)
		}
	}

	var bad []string
	for _, deps := range []map[string]string{m.Require, m.RequireDev} {
		for pkg, constraint := range deps {
			if _, err := ParseConstraint(constraint); err != nil {
				bad = append(bad, fmt.Sprintf("%s %q", pkg, constraint))
			}
		}
	}
	sort.Strings(bad)
	if len(bad) > 0 {
		r.add("constraints", Warn, "unparseable: %s", strings.Join(bad, ", "))
	} else {
		r.add("constraints", OK, "%d packages", len(m.Require)+len(m.RequireDev))
	}
	return ns
}

func checkConfig(r *Report, s *config.Settings, manifestNS string) {
	doc, err := configdoc.Read(s.ConfigPath())
	if err != nil {
		r.add("config", Fail, "%v", err)
		return
	}
	var missing []string
	for _, name := range hooks.ArrayNames {
		a, _ := configdoc.NewAnchor(name)
		if _, err := a.Match(doc.Lines()); err != nil {
			missing = append(missing, "$"+string(name))
		}
	}
	if len(missing) > 0 {
		r.add("anchors", Fail, "missing %s", strings.Join(missing, ", "))
	} else {
		r.add("anchors", OK, "all %d arrays declared", len(hooks.ArrayNames))
	}

	reg, err := hookregistry.Decode(doc.Bytes())
	if err != nil {
		r.add("registry", Fail, "%v", err)
		return
	}
	total := 0
	for _, name := range hooks.ArrayNames {
		total += reg.Len(name)
	}
	r.add("registry", OK, "%d entries", total)

	if manifestNS != "" && reg.Namespace != manifestNS {
		r.add("config namespace", Warn, "Config.php declares %q, composer.json autoloads %q", reg.Namespace, manifestNS)
	}
}

// ParseConstraint parses a composer version constraint. Composer accepts a
// single "|" as an alternative to "||".
func ParseConstraint(c string) (*semver.Constraints, error) {
	c = strings.ReplaceAll(strings.ReplaceAll(c, "||", "|"), "|", "||")
	return semver.NewConstraint(c)
}
