package cmd

import (
	"fmt"
	"strings"

	"github.com/l10n-kit/potcat/flag"
	"github.com/l10n-kit/potcat/util"
	"github.com/spf13/cobra"
)

type statCommand struct {
	cmd *cobra.Command
}

func (v *statCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "stat <file>",
		Short: "Report statistics for a catalog file",
		Long: `Report message statistics for a PO/POT/MO/JSON catalog:
  translated   - messages with a non-empty translation
  untranslated - messages whose msgstr entries are all empty
  plural       - messages with msgid_plural
  context      - messages with msgctxt
The header entry (empty msgid) is not counted as translated or untranslated.`,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}

	return v.cmd
}

func (v statCommand) Execute(args []string) error {
	if len(args) != 1 {
		return NewErrorWithUsage("stat requires exactly one argument: <file>")
	}
	name := args[0]
	if !util.Exist(name) {
		return NewErrorWithUsage("file does not exist: ", name)
	}

	catalog, err := util.ReadCatalogFile(name, "")
	if err != nil {
		return err
	}
	stats := util.CountCatalogStats(catalog)

	if flag.Verbose() > 0 {
		title := fmt.Sprintf("catalog: %s", name)
		fmt.Println(title)
		fmt.Println(strings.Repeat("-", len(title)))
	}
	fmt.Printf("  messages:     %d\n", stats.Messages)
	fmt.Printf("  translated:   %d\n", stats.Translated)
	fmt.Printf("  untranslated: %d\n", stats.Untranslated)
	fmt.Printf("  plural:       %d\n", stats.Plural)
	fmt.Printf("  context:      %d\n", stats.WithContext)
	fmt.Printf("  comments:     %d\n", stats.Comments)
	return nil
}

var statCmd = statCommand{}

func init() {
	rootCmd.AddCommand(statCmd.Command())
}
