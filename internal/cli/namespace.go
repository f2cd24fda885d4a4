package cli

import (
	"fmt"

	"github.com/antonella-framework/antonella-cli/internal/pkgmanager"
	"github.com/antonella-framework/antonella-cli/internal/rename"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	namespaceShow   bool
	namespaceDryRun bool
	namespaceNoDump bool
)

func init() {
	namespaceCmd.Flags().BoolVar(&namespaceShow, "show", false, "Print the current namespace and exit")
	namespaceCmd.Flags().BoolVar(&namespaceDryRun, "dry-run", false, "Report what would change without writing")
	namespaceCmd.Flags().BoolVar(&namespaceNoDump, "no-dump", false, "Skip composer dump-autoload")
	rootCmd.AddCommand(namespaceCmd)
}

var namespaceCmd = &cobra.Command{
	Use:   "namespace [NAME]",
	Short: "Rename the plugin's root namespace",
	Long: `Replace the plugin's root namespace in composer.json, the core plugin files and
every file under src/, then regenerate the composer autoloader.

NAME is upper-cased and appended to the namespace prefix (Antonella\NAME). Without
NAME, five random letters are used.

The rename is a plain text substitution. Occurrences of the old namespace that
continue into a longer identifier are rewritten too and listed as warnings.`,
	Example: "  antonella namespace SHOP\n  antonella namespace --show",
	Args:    cobra.MaximumNArgs(1),
	RunE:    runNamespace,
}

func runNamespace(cmd *cobra.Command, args []string) error {
	s, err := loadProject()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	current, err := rename.CurrentNamespace(s.ManifestPath())
	if err != nil {
		return err
	}
	if namespaceShow && len(args) == 0 {
		success(out, "Current namespace: %s", current)
		return nil
	}

	suffix := ""
	if len(args) == 1 {
		suffix = args[0]
	}
	op := rename.Operation{
		From: current,
		To:   rename.GenerateNamespace(s.NamespacePrefix(), suffix),
		Scope: rename.Scope{
			Manifest:   s.ManifestPath(),
			CoreFiles:  s.CoreFiles(true),
			SourceTree: s.SourceDir(),
		},
	}
	if op.From == op.To {
		info(out, "Namespace is already set to %s", op.To)
		return nil
	}

	info(out, "From: %s", op.From)
	info(out, "To:   %s", op.To)

	apply := rename.Rename
	if namespaceDryRun {
		apply = rename.Scan
	}
	res, err := apply(cmd.Context(), op)
	if err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	info(out, "%s", p.Sprintf("Manifest updated: %t", res.ManifestUpdated))
	info(out, "%s", p.Sprintf("Core files updated: %d", res.CoreFilesUpdated))
	info(out, "%s", p.Sprintf("Source files updated: %d of %d", res.FilesUpdated, res.FilesScanned))
	for _, w := range res.Warnings {
		warn(out, "%s continues into a longer identifier: %s", op.From, w)
	}

	if namespaceDryRun {
		info(out, "Dry run: nothing was written")
		return nil
	}
	if !namespaceNoDump {
		c := &pkgmanager.Composer{Bin: s.ComposerBin(), Dir: s.Root, Stdout: cmd.ErrOrStderr(), Stderr: cmd.ErrOrStderr()}
		if err := c.DumpAutoload(cmd.Context()); err != nil {
			return fmt.Errorf("namespace changed but autoloader regeneration failed (run composer dump-autoload manually): %w", err)
		}
		info(out, "Autoloader regenerated")
	}
	success(out, "Namespace changed to %s", op.To)
	return nil
}
