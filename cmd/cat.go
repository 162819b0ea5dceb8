package cmd

import (
	"bufio"
	"io"
	"os"

	"github.com/l10n-kit/potcat/config"
	"github.com/l10n-kit/potcat/flag"
	"github.com/l10n-kit/potcat/po"
	"github.com/l10n-kit/potcat/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type catCommand struct {
	cmd *cobra.Command
	O   struct {
		Output   string
		JSON     bool
		FromCode string
	}
}

func (v *catCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "cat [-o <output>] [--json] [inputfile]...",
		Short: "Concatenate PO/POT/MO/JSON catalogs and write PO text",
		Long: `Read one or more catalog files and write them back as a single PO file.
Input format is auto-detected by content: compiled MO (magic number),
gettext JSON (starts with '{'), or PO/POT text. Reading stdin ('-' or
no args) is supported; messages keep their input order.

Use --json to write gettext JSON instead of PO text.
Use --from-code to recode PO text input from another charset to UTF-8.
Write result to the file given by -o; use -o - or omit -o to write to stdout.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}

	fs := v.cmd.Flags()
	fs.SortFlags = false
	fs.StringVarP(&v.O.Output, "output", "o", "",
		"write output to file (use - for stdout); default is stdout")
	fs.BoolVar(&v.O.JSON, "json", false, "output gettext JSON instead of PO text")
	fs.StringVar(&v.O.FromCode, "from-code", "",
		"charset of PO text input, converted to UTF-8 before parsing")

	return v.cmd
}

func (v catCommand) Execute(args []string) error {
	cfg, err := config.Load(flag.ConfigFile())
	if err != nil {
		return err
	}
	fromCode := v.O.FromCode
	if fromCode == "" {
		fromCode = cfg.FromCode
	}

	if len(args) == 0 {
		args = []string{"-"}
	}
	merged := &po.Catalog{}
	for _, name := range args {
		catalog, err := util.ReadCatalogFile(name, fromCode)
		if err != nil {
			return err
		}
		log.Debugf("parsed %d messages from %s", len(catalog.Messages), name)
		merged.Messages = append(merged.Messages, catalog.Messages...)
	}

	var w io.Writer = os.Stdout
	if v.O.Output != "" && v.O.Output != "-" {
		f, err := os.Create(v.O.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	bw := bufio.NewWriter(w)
	if v.O.JSON {
		err = util.WriteJSONCatalog(bw, merged, cfg.JSONIndent)
	} else {
		err = merged.Write(bw)
	}
	if err != nil {
		return err
	}
	return bw.Flush()
}

var catCmd = catCommand{}

func init() {
	rootCmd.AddCommand(catCmd.Command())
}
