package cli

import (
	"context"
	"fmt"

	"github.com/antonella-framework/antonella-cli/internal/branding"
	"github.com/antonella-framework/antonella-cli/internal/config"
	"github.com/antonella-framework/antonella-cli/internal/ctxlog"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	projectDir string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds WordPress plugins built on the Antonella Framework:
controllers, widgets, shortcodes, custom post types and hook registrations
in src/Config.php, plus project-wide namespace renames.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger := ctxlog.New(cmd.ErrOrStderr(), verbose)
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		cmd.SetContext(ctxlog.WithLogger(ctx, logger))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&projectDir, "dir", "C", "", "Plugin root (default $"+branding.EnvVar("HOME")+" or the working directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")
}

// loadProject resolves the plugin root and its settings.
func loadProject() (*config.Settings, error) {
	root, err := config.ResolveRoot(projectDir)
	if err != nil {
		return nil, err
	}
	s, err := config.Load(root)
	if err != nil {
		return nil, fmt.Errorf("loading project settings: %w", err)
	}
	return s, nil
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
