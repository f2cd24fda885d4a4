package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/antonella-framework/antonella-cli/internal/branding"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var (
	versionShort  bool
	versionFormat string
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().StringVar(&versionFormat, "format", "text", "Output format: text, json or yaml")
	rootCmd.AddCommand(versionCmd)
}

type versionInfo struct {
	Name      string `json:"name" yaml:"name"`
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	Date      string `json:"date" yaml:"date"`
	Namespace string `json:"namespace_prefix" yaml:"namespace_prefix"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if versionShort {
			fmt.Fprintln(out, buildVersion)
			return nil
		}
		info := versionInfo{
			Name:      branding.CLIName(),
			Version:   buildVersion,
			Commit:    buildCommit,
			Date:      buildDate,
			Namespace: branding.NamespacePrefix(),
		}
		return writeVersion(out, info, versionFormat)
	},
}

func writeVersion(out io.Writer, info versionInfo, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling version info: %w", err)
		}
		fmt.Fprintln(out, string(data))
	case "yaml":
		data, err := yaml.Marshal(info)
		if err != nil {
			return fmt.Errorf("marshaling version info: %w", err)
		}
		fmt.Fprint(out, string(data))
	case "text", "":
		fmt.Fprintf(out, "%s version %s (commit: %s, built: %s)\n", info.Name, info.Version, info.Commit, info.Date)
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
	}
	return nil
}
