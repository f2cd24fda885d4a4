package cli

import (
	"github.com/antonella-framework/antonella-cli/internal/hooks"
	"github.com/antonella-framework/antonella-cli/internal/stub"
	"github.com/spf13/cobra"
)

var addEnqueue bool

func init() {
	for _, c := range []*cobra.Command{addActionCmd, addFilterCmd} {
		c.Flags().BoolVarP(&addEnqueue, "enque", "e", false, "Also register the hook in src/Config.php")
		addCmd.AddCommand(c)
	}
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add hooks or framework modules",
}

var addActionCmd = &cobra.Command{
	Use:   "action <tag:Controller@method:priority:args>",
	Short: "Create an action callback and optionally register it",
	Long: `Create the controller method for a WordPress action. With --enque the hook
is also added to $add_action in src/Config.php unless an entry with the same
tag, class and method is already there.

Method defaults to "index", priority to 10 and args to 1.`,
	Example: "  antonella add action init:HomeController@boot:10:1 --enque",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAddHook(cmd, hooks.ArrayActions, args[0])
	},
}

var addFilterCmd = &cobra.Command{
	Use:   "filter <tag:Controller@method:priority:args>",
	Short: "Create a filter callback and optionally register it",
	Long: `Create the controller method for a WordPress filter. The generated method
returns its first argument. With --enque the hook is also added to $add_filter
in src/Config.php.`,
	Example: "  antonella add filter the_title:TitleController@upper --enque",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAddHook(cmd, hooks.ArrayFilters, args[0])
	},
}

func runAddHook(cmd *cobra.Command, name hooks.ArrayName, spec string) error {
	entry, err := hooks.ParseHookSpec(spec)
	if err != nil {
		return err
	}
	p, err := openProject()
	if err != nil {
		return err
	}

	method := stub.Data{Method: entry.Method, Args: entry.ArgCount}
	if name == hooks.ArrayFilters && entry.ArgCount > 0 {
		method.Return = "$arg1"
	}
	info(cmd.OutOrStdout(), "Processing %s -> %s@%s (priority: %d, args: %d)",
		entry.Tag, entry.Class, entry.Method, entry.Priority, entry.ArgCount)
	if err := p.ensureMethod(cmd, entry.Class, method); err != nil {
		return err
	}

	if !addEnqueue {
		return nil
	}
	return p.enqueue(cmd, name, entry)
}
