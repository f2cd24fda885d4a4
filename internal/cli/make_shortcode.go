package cli

import (
	"github.com/antonella-framework/antonella-cli/internal/hooks"
	"github.com/antonella-framework/antonella-cli/internal/stub"
	"github.com/spf13/cobra"
)

func init() {
	makeShortcodeCmd.Flags().BoolVarP(&makeEnqueue, "enque", "e", false, "Also register the shortcode in src/Config.php")
	makeCmd.AddCommand(makeShortcodeCmd)
}

var makeShortcodeCmd = &cobra.Command{
	Use:   "shortcode <name:Controller@method>",
	Short: "Create a shortcode callback and optionally register it",
	Long: `Create the controller method that renders a shortcode. Method defaults to
"short_code". With --enque the shortcode is added to $shortcodes in src/Config.php.`,
	Example: "  antonella make shortcode clock:ClockController@show --enque",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entry, err := hooks.ParseShortcodeSpec(args[0])
		if err != nil {
			return err
		}
		p, err := openProject()
		if err != nil {
			return err
		}
		// Shortcode callbacks receive ($atts, $content) and return markup.
		if err := p.ensureMethod(cmd, entry.Class, stub.Data{Method: entry.Method, Args: 2, Return: "''"}); err != nil {
			return err
		}
		if !makeEnqueue {
			return nil
		}
		return p.enqueue(cmd, hooks.ArrayShortcodes, entry)
	},
}
