package cli

import "github.com/spf13/cobra"

var makeEnqueue bool

func init() {
	rootCmd.AddCommand(makeCmd)
}

var makeCmd = &cobra.Command{
	Use:   "make",
	Short: "Generate plugin classes, shortcodes and post types",
}
