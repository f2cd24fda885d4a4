package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/antonella-framework/antonella-cli/internal/hookregistry"
	"github.com/antonella-framework/antonella-cli/internal/hooks"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var (
	hooksArray  string
	hooksFormat string
)

func init() {
	hooksListCmd.Flags().StringVar(&hooksArray, "array", "", "Only list one array (add_action, add_filter, shortcodes, widgets, post_types)")
	hooksListCmd.Flags().StringVar(&hooksFormat, "format", "table", "Output format: table, yaml or json")
	hooksCmd.AddCommand(hooksListCmd)
	rootCmd.AddCommand(hooksCmd)
}

var hooksCmd = &cobra.Command{
	Use:   "hooks",
	Short: "Inspect the hook registry in src/Config.php",
}

var hooksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered hooks, shortcodes, widgets and post types",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		names := hooks.ArrayNames
		if hooksArray != "" {
			name, err := hooks.ParseArrayName(hooksArray)
			if err != nil {
				return err
			}
			names = []hooks.ArrayName{name}
		}

		s, err := loadProject()
		if err != nil {
			return err
		}
		reg, err := hookregistry.Load(s.ConfigPath())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		switch hooksFormat {
		case "table":
			return writeHooksTable(out, reg, names)
		case "yaml":
			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			defer enc.Close()
			return enc.Encode(hooksView(reg, names))
		case "json":
			data, err := json.MarshalIndent(hooksView(reg, names), "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling registry: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		default:
			return fmt.Errorf("unknown format %q (use table, yaml or json)", hooksFormat)
		}
	},
}

// hooksView narrows the registry to the selected arrays for export.
func hooksView(reg *hookregistry.Registry, names []hooks.ArrayName) any {
	if len(names) == len(hooks.ArrayNames) {
		return reg
	}
	view := map[string]any{"namespace": reg.Namespace}
	for _, name := range names {
		entries, _ := reg.Entries(name)
		if entries == nil {
			entries = []hooks.Entry{}
		}
		view[string(name)] = entries
	}
	return view
}

func writeHooksTable(w io.Writer, reg *hookregistry.Registry, names []hooks.ArrayName) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Array", "Tag", "Callback", "Priority", "Args"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)

	rows := 0
	add := func(name hooks.ArrayName, tag, callback, priority, argc string) {
		table.Append([]string{string(name), tag, callback, priority, argc})
		rows++
	}
	for _, name := range names {
		switch name {
		case hooks.ArrayActions, hooks.ArrayFilters:
			list := reg.Actions
			if name == hooks.ArrayFilters {
				list = reg.Filters
			}
			for _, e := range list {
				add(name, e.Tag, e.Class+"::"+e.Method, strconv.Itoa(e.Priority), strconv.Itoa(e.ArgCount))
			}
		case hooks.ArrayShortcodes:
			for _, e := range reg.Shortcodes {
				add(name, e.Tag, e.Class+"::"+e.Method, "", "")
			}
		case hooks.ArrayWidgets:
			for _, e := range reg.Widgets {
				add(name, "", e.Class, "", "")
			}
		case hooks.ArrayPostTypes:
			for _, e := range reg.PostTypes {
				add(name, e.Slug, e.Singular+" / "+e.Plural, strconv.Itoa(e.Position), "")
			}
		}
	}

	fmt.Fprintf(w, "Namespace: %s\n", reg.Namespace)
	if rows == 0 {
		fmt.Fprintln(w, "No entries registered.")
		return nil
	}
	table.Render()
	return nil
}
