package cli

import (
	"errors"

	"github.com/antonella-framework/antonella-cli/internal/hooks"
	"github.com/antonella-framework/antonella-cli/internal/stub"
	"github.com/spf13/cobra"
)

func init() {
	makeWidgetCmd.Flags().BoolVarP(&makeEnqueue, "enque", "e", false, "Also register the widget in src/Config.php")
	makeCmd.AddCommand(makeWidgetCmd)
}

var makeWidgetCmd = &cobra.Command{
	Use:     "widget <Name>",
	Short:   "Create a widget in src/Widgets",
	Long:    `Create a WP_Widget subclass. The "Widget" suffix is added when missing.`,
	Example: "  antonella make widget Clock --enque",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := openProject()
		if err != nil {
			return err
		}
		entry := hooks.WidgetEntry{Class: hooks.WidgetClass(args[0])}
		path := stub.ClassFile(p.settings.SourceDir(), entry.Class)

		data := stub.ClassData(p.namespace, entry.Class)
		data.Slug = hooks.Slugify(hooks.WidgetName(args[0]))
		switch err := p.stubs.Render(stub.Widget, path, data); {
		case errors.Is(err, stub.ErrExists):
			warn(cmd.OutOrStdout(), "%s already exists, keeping it", p.rel(path))
		case err != nil:
			return err
		default:
			success(cmd.OutOrStdout(), "Widget %s created in %s", data.ClassName, p.rel(path))
		}

		if !makeEnqueue {
			return nil
		}
		return p.enqueue(cmd, hooks.ArrayWidgets, entry)
	},
}
