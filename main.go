package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/l10n-kit/potcat/cmd"
)

const (
	// Program is name for this project
	Program = "potcat"
)

func main() {
	resp := cmd.Execute()

	if resp.Err != nil {
		errOut := resp.Cmd.ErrOrStderr()
		if resp.IsUserError() {
			fmt.Fprintf(errOut, "ERROR: %s\n\n", resp.Err)
			fmt.Fprint(errOut, resp.Cmd.UsageString())
		} else {
			cmdPath := strings.TrimPrefix(resp.Cmd.CommandPath(), Program+" ")
			if cmdPath == "" || cmdPath == Program {
				cmdPath = resp.Cmd.Name()
			}
			fmt.Fprintf(errOut, "ERROR: %s: %s\n", cmdPath, resp.Err)
		}
		os.Exit(1)
	}
}
