package pkgmanager

import (
	"fmt"
	"sort"
	"strings"
)

// Module is an optional framework add-on installed through composer.
type Module struct {
	Name      string
	Package   string
	Dev       bool
	Removable bool
}

var modules = map[string]Module{
	"blade": {Name: "blade", Package: "jenssegers/blade", Removable: true},
	"dd":    {Name: "dd", Package: "symfony/var-dumper", Dev: true, Removable: true},
	"model": {Name: "model", Package: "antonella-framework/wordpress-eloquent-models"},
}

// LookupModule resolves a module name. removing restricts the lookup to
// modules that support removal.
func LookupModule(name string, removing bool) (Module, error) {
	m, ok := modules[strings.ToLower(name)]
	if !ok || (removing && !m.Removable) {
		return Module{}, fmt.Errorf("unknown module %q (available: %s)", name, strings.Join(ModuleNames(removing), ", "))
	}
	return m, nil
}

// ModuleNames lists the known modules in sorted order.
func ModuleNames(removing bool) []string {
	var names []string
	for name, m := range modules {
		if removing && !m.Removable {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
