package cmd

import (
	"fmt"

	"github.com/l10n-kit/potcat/config"
	"github.com/l10n-kit/potcat/flag"
	"github.com/l10n-kit/potcat/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type checkCommand struct {
	cmd *cobra.Command
	O   struct {
		FromCode string
	}
}

func (v *checkCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "check <file>...",
		Short: "Check syntax of PO/POT files",
		Long: `Parse each file and report catalogs that fail to decode, such as
files containing malformed escape sequences in quoted strings.
Unrecognized lines are not errors; they are skipped by the parser.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}
	v.cmd.Flags().StringVar(&v.O.FromCode, "from-code", "",
		"charset of PO text input, converted to UTF-8 before parsing")

	return v.cmd
}

func (v checkCommand) Execute(args []string) error {
	if len(args) == 0 {
		return NewErrorWithUsage("check requires at least one file")
	}
	cfg, err := config.Load(flag.ConfigFile())
	if err != nil {
		return err
	}
	fromCode := v.O.FromCode
	if fromCode == "" {
		fromCode = cfg.FromCode
	}

	failed := 0
	for _, name := range args {
		if !util.IsFile(name) {
			log.Errorf("%s: no such file", name)
			failed++
			continue
		}
		catalog, err := util.ReadCatalogFile(name, fromCode)
		if err != nil {
			log.Errorf("%v", err)
			failed++
			continue
		}
		log.Debugf("%s: %d messages", name, len(catalog.Messages))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed the check", failed, len(args))
	}
	return nil
}

var checkCmd = checkCommand{}

func init() {
	rootCmd.AddCommand(checkCmd.Command())
}
