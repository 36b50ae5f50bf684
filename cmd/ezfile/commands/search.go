package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func NewFindCmd(args *rootArgs) *cobra.Command {
	var (
		recursive bool
		pattern   string
	)

	cmd := &cobra.Command{
		Use:   "find DIR",
		Short: "List files below DIR whose names end with a suffix",
		Long: `List files below DIR. PATTERN is an extension such as "txt", ".txt"
or "*.txt"; ".", "*" and ".*" match every file. Matching is case sensitive.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cc *cobra.Command, a []string) error {
			files, err := args.ops.FindChildFiles(a[0], recursive, pattern)
			if err != nil {
				return err
			}
			printSorted(cc, files)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Descend into subdirectories")
	cmd.Flags().StringVarP(&pattern, "pattern", "p", ".", "Extension filter")

	return cmd
}

func NewGlobCmd(args *rootArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "glob DIR PATTERN",
		Short: "List files below DIR matching a ** aware glob",
		Args:  cobra.ExactArgs(2),
		RunE: func(cc *cobra.Command, a []string) error {
			files, err := args.ops.Glob(a[0], a[1])
			if err != nil {
				return err
			}
			printSorted(cc, files)
			return nil
		},
	}
}

func printSorted(cc *cobra.Command, files []string) {
	sort.Strings(files)
	for _, f := range files {
		fmt.Fprintln(cc.OutOrStdout(), f)
	}
}
