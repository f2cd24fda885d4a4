package cli

import (
	"path/filepath"
	"strings"

	"github.com/antonella-framework/antonella-cli/internal/stub"
	"github.com/spf13/cobra"
)

func init() {
	makeCmd.AddCommand(makeCommandCmd)
}

var makeCommandCmd = &cobra.Command{
	Use:     "command <Name> <short-code>",
	Short:   "Create a console command class",
	Long:    `Create a Symfony console command. The "Command" suffix is added when missing.`,
	Example: "  antonella make command Sync app:sync",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadProject()
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(args[0], ".php")
		if !strings.Contains(name, "Command") {
			name += "Command"
		}
		path := filepath.Join(s.CommandsDir(), name+".php")
		data := stub.Data{
			Namespace: s.NamespacePrefix() + `\Commands`,
			ClassName: name,
			ShortCode: args[1],
		}
		if err := stub.New(s.StubsDir()).Render(stub.Command, path, data); err != nil {
			return err
		}
		success(cmd.OutOrStdout(), "Command %s created in %s", name, relPath(s.Root, filepath.Dir(path)))
		return nil
	},
}
