package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/antonella-framework/antonella-cli/internal/pkgmanager"
	"github.com/spf13/cobra"
)

var moduleYes bool

func init() {
	addModuleCmd.Flags().BoolVarP(&moduleYes, "yes", "y", false, "Skip the confirmation prompt")
	removeModuleCmd.Flags().BoolVarP(&moduleYes, "yes", "y", false, "Skip the confirmation prompt")
	addCmd.AddCommand(addModuleCmd)
	removeCmd.AddCommand(removeModuleCmd)
	rootCmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove framework modules",
}

var addModuleCmd = &cobra.Command{
	Use:   "module <" + strings.Join(pkgmanager.ModuleNames(false), "|") + ">",
	Short: "Install a framework module with composer",
	Long: `Install an optional framework module:

  blade   Blade templates (jenssegers/blade)
  dd      dd() debugging helper (symfony/var-dumper, dev only)
  model   Eloquent models for WordPress data`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: pkgmanager.ModuleNames(false),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runModule(cmd, args[0], false)
	},
}

var removeModuleCmd = &cobra.Command{
	Use:       "module <" + strings.Join(pkgmanager.ModuleNames(true), "|") + ">",
	Short:     "Remove a framework module with composer",
	Args:      cobra.ExactArgs(1),
	ValidArgs: pkgmanager.ModuleNames(true),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runModule(cmd, args[0], true)
	},
}

func runModule(cmd *cobra.Command, name string, removing bool) error {
	m, err := pkgmanager.LookupModule(name, removing)
	if err != nil {
		return err
	}
	s, err := loadProject()
	if err != nil {
		return err
	}

	verb := "Install"
	if removing {
		verb = "Remove"
	}
	out := cmd.OutOrStdout()
	if !moduleYes && !confirm(cmd.InOrStdin(), out, fmt.Sprintf("%s %s (%s)?", verb, m.Name, m.Package)) {
		info(out, "Cancelled. Run this command again anytime to %s %s.", strings.ToLower(verb), m.Name)
		return nil
	}

	c := &pkgmanager.Composer{Bin: s.ComposerBin(), Dir: s.Root, Stdout: out, Stderr: cmd.ErrOrStderr()}
	if removing {
		err = c.Remove(cmd.Context(), m.Package)
	} else {
		err = c.Require(cmd.Context(), m.Package, m.Dev)
	}
	if err != nil {
		return fmt.Errorf("%s %s: %w", strings.ToLower(verb), m.Package, err)
	}
	success(out, "%s: %s done", m.Name, strings.ToLower(verb))
	return nil
}

// confirm asks a y/N question; anything but y or yes declines.
func confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N] ", question)
	answer, _ := bufio.NewReader(in).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
