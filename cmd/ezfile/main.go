package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/menzi11/EZFile/cmd/ezfile/commands"
)

const (
	cmdName = "ezfile"

	shortDesc = "Everyday file and path operations from the shell."
	longDesc  = `ezfile exposes path algebra, safe file operations and
encoding-aware text I/O as simple subcommands.

Operations that cannot be performed (missing source, existing destination,
illegal name) exit with a non-zero status. Defaults can be changed through
EZFILE_ENCODING, EZFILE_DIR_PERM, EZFILE_FILE_PERM, LOG_LEVEL and LOG_DEV.
`
)

func main() {
	cmd := commands.NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
