package cli

import (
	"path/filepath"
	"strings"

	"github.com/antonella-framework/antonella-cli/internal/hooks"
	"github.com/antonella-framework/antonella-cli/internal/stub"
	"github.com/spf13/cobra"
)

func init() {
	makeCmd.AddCommand(makeControllerCmd)
}

var makeControllerCmd = &cobra.Command{
	Use:     "controller <Name|Folder/Name>",
	Short:   "Create a controller in src/Controllers",
	Long:    `Create a controller class. The "Controller" suffix is added when missing.`,
	Example: "  antonella make controller Admin/Panel   # src/Controllers/Admin/PanelController.php",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := openProject()
		if err != nil {
			return err
		}
		class := `\Controllers\` + strings.ReplaceAll(strings.TrimSuffix(hooks.ControllerFile(args[0]), ".php"), "/", `\`)
		path := stub.ClassFile(p.settings.SourceDir(), class)
		if err := p.stubs.Render(stub.Controller, path, stub.ClassData(p.namespace, class)); err != nil {
			return err
		}
		success(cmd.OutOrStdout(), "Controller %s created in %s", filepath.Base(path), p.rel(filepath.Dir(path)))
		return nil
	},
}
