package cli

import (
	"path/filepath"
	"strings"

	"github.com/antonella-framework/antonella-cli/internal/stub"
	"github.com/spf13/cobra"
)

func init() {
	makeCmd.AddCommand(makeHelperCmd)
}

var makeHelperCmd = &cobra.Command{
	Use:     "helper <name>",
	Short:   "Create a helper functions file in src/Helpers",
	Example: "  antonella make helper format_price",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := openProject()
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(args[0], ".php")
		path := filepath.Join(p.settings.SourceDir(), "Helpers", name+".php")
		if err := p.stubs.Render(stub.Helper, path, stub.Data{Name: name}); err != nil {
			return err
		}
		success(cmd.OutOrStdout(), "Helper %s created", p.rel(path))
		return nil
	},
}
