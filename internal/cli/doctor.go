package cli

import (
	"errors"
	"fmt"

	"github.com/antonella-framework/antonella-cli/internal/doctor"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var errDoctorFailed = errors.New("one or more checks failed")

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the plugin project",
	Long: `Check composer.json, the plugin namespace, the five arrays in src/Config.php,
the hook registry and the composer binary. Nothing is modified.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadProject()
		if err != nil {
			return err
		}
		report := doctor.Run(cmd.Context(), s)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Project: %s\n", s.Root)
		table := tablewriter.NewWriter(out)
		table.SetHeader([]string{"Check", "Status", "Detail"})
		table.SetBorder(false)
		table.SetAutoWrapText(false)
		for _, c := range report.Checks {
			table.Append([]string{c.Name, statusLabel(c.Status), c.Detail})
		}
		table.Render()

		if report.Failed() {
			return errDoctorFailed
		}
		return nil
	},
}

func statusLabel(s doctor.Status) string {
	switch s {
	case doctor.OK:
		return successStyle.Render(s.String())
	case doctor.Warn:
		return warnStyle.Render(s.String())
	default:
		return errorStyle.Render(s.String())
	}
}
