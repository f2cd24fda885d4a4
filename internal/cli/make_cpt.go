package cli

import (
	"fmt"
	"strings"

	"github.com/antonella-framework/antonella-cli/internal/hooks"
	"github.com/spf13/cobra"
)

func init() {
	makeCmd.AddCommand(makeCPTCmd)
}

var makeCPTCmd = &cobra.Command{
	Use:   "cpt <name>",
	Short: "Register a custom post type in src/Config.php",
	Long: `Add a custom post type to $post_types. Plural and slug are derived from the
name. A post type whose name or slug matches case-insensitively is not added twice.`,
	Example: "  antonella make cpt Product",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(args[0])
		if hooks.Slugify(name) == "" {
			return fmt.Errorf("%w %q: post type name needs a letter or digit", hooks.ErrInvalidSpec, args[0])
		}
		p, err := openProject()
		if err != nil {
			return err
		}
		return p.enqueue(cmd, hooks.ArrayPostTypes, hooks.NewPostTypeEntry(name))
	},
}
