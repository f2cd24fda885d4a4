package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/antonella-framework/antonella-cli/internal/config"
	"github.com/antonella-framework/antonella-cli/internal/hooks"
	"github.com/antonella-framework/antonella-cli/internal/register"
	"github.com/antonella-framework/antonella-cli/internal/rename"
	"github.com/antonella-framework/antonella-cli/internal/stub"
	"github.com/spf13/cobra"
)

// project bundles what the generator commands need from a plugin.
type project struct {
	settings  *config.Settings
	namespace string
	stubs     *stub.Generator
}

func openProject() (*project, error) {
	s, err := loadProject()
	if err != nil {
		return nil, err
	}
	ns, err := rename.CurrentNamespace(s.ManifestPath())
	if err != nil {
		return nil, fmt.Errorf("resolving plugin namespace: %w", err)
	}
	return &project{settings: s, namespace: ns, stubs: stub.New(s.StubsDir())}, nil
}

// ensureClass renders the class stub for a namespace-relative class unless
// the file is already there.
func (p *project) ensureClass(cmd *cobra.Command, kind stub.Kind, class string, data stub.Data) (string, error) {
	path := stub.ClassFile(p.settings.SourceDir(), class)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	base := stub.ClassData(p.namespace, class)
	data.Namespace, data.ClassName = base.Namespace, base.ClassName
	if err := p.stubs.Render(kind, path, data); err != nil {
		return "", err
	}
	success(cmd.OutOrStdout(), "Created %s", p.rel(path))
	return path, nil
}

// ensureMethod makes sure class exists and declares method.
func (p *project) ensureMethod(cmd *cobra.Command, class string, method stub.Data) error {
	path, err := p.ensureClass(cmd, stub.Controller, class, stub.Data{})
	if err != nil {
		return err
	}
	added, err := p.stubs.AppendMethod(path, method)
	if err != nil {
		return err
	}
	if added {
		success(cmd.OutOrStdout(), "Method '%s' has been added to %s", method.Method, class)
	} else {
		info(cmd.OutOrStdout(), "Method '%s' already exists in %s", method.Method, class)
	}
	return nil
}

// enqueue registers entry in Config.php. A duplicate is reported and is
// not an error.
func (p *project) enqueue(cmd *cobra.Command, name hooks.ArrayName, entry hooks.Entry) error {
	out, err := register.Add(cmd.Context(), p.settings.ConfigPath(), name, entry)
	if err != nil {
		return err
	}
	if errors.Is(out.Err(), register.ErrDuplicateEntry) {
		warn(cmd.OutOrStdout(), "%s is already registered in $%s, skipping", out.Key, name)
		return nil
	}
	success(cmd.OutOrStdout(), "Added %s to $%s in %s", out.Key, name, p.rel(p.settings.ConfigPath()))
	return nil
}

func (p *project) rel(path string) string {
	return relPath(p.settings.Root, path)
}

func relPath(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil {
		return filepath.ToSlash(rel)
	}
	return path
}
