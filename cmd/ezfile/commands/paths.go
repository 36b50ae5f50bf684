package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/menzi11/EZFile/pathops"
)

func NewInfoCmd(args *rootArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "info PATH...",
		Short: "Print the path parts of each argument",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cc *cobra.Command, paths []string) error {
			out := cc.OutOrStdout()
			for i, p := range paths {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "path:      %s\n", pathops.FullPath(p))
				fmt.Fprintf(out, "name:      %s\n", pathops.ShortNameWithExt(p))
				fmt.Fprintf(out, "stem:      %s\n", pathops.ShortNameWithoutExt(p))
				fmt.Fprintf(out, "ext:       %s\n", pathops.Ext(p))
				fmt.Fprintf(out, "parent:    %s\n", pathops.ParentDir(p))
				fmt.Fprintf(out, "kind:      %s\n", kindOf(p))
			}
			return nil
		},
	}
}

func kindOf(p string) string {
	switch {
	case pathops.ExistsAsDir(p):
		return "dir"
	case pathops.ExistsAsFile(p):
		return "file"
	case pathops.Exists(p):
		return "other"
	default:
		return "missing"
	}
}

func NewExistsCmd(args *rootArgs) *cobra.Command {
	var asDir, asFile bool

	cmd := &cobra.Command{
		Use:   "exists PATH...",
		Short: "Report whether every path exists",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cc *cobra.Command, paths []string) error {
			if asDir && asFile {
				return fmt.Errorf("%w: --dir and --file are mutually exclusive", ErrInvalidArgument)
			}

			check := pathops.Exists
			switch {
			case asDir:
				check = pathops.ExistsAsDir
			case asFile:
				check = pathops.ExistsAsFile
			}

			return forEach(paths, func(p string) error {
				ok := check(p)
				fmt.Fprintf(cc.OutOrStdout(), "%s\t%t\n", p, ok)
				if !ok {
					return fmt.Errorf("%s: %w", p, ErrNotExist)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asDir, "dir", false, "Require a directory")
	cmd.Flags().BoolVar(&asFile, "file", false, "Require a regular file")

	return cmd
}

func NewMkdirCmd(args *rootArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "mkdir DIR...",
		Short: "Create directories and their parents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, paths []string) error {
			return forEach(paths, args.ops.CreateDir)
		},
	}
}

func NewMvCmd(args *rootArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "mv SRC DST",
		Short: "Move a file or directory",
		Long: `Move SRC to DST. Nothing happens when DST is an existing file.
When DST is an existing directory, SRC is moved inside it.`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, a []string) error {
			ok, err := args.ops.MoveTo(a[0], a[1])
			if err != nil {
				return err
			}
			return notPerformed(ok, "mv", a[0])
		},
	}
}

func NewRmCmd(args *rootArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "rm PATH...",
		Short: "Remove files or directory trees",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, paths []string) error {
			return forEach(paths, args.ops.Remove)
		},
	}
}

func NewCpCmd(args *rootArgs) *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "cp SRC DST",
		Short: "Copy a file or directory tree",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, a []string) error {
			ok, err := args.ops.CopyTo(a[0], a[1], overwrite)
			if err != nil {
				return err
			}
			return notPerformed(ok, "cp", a[0])
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing destination file")

	return cmd
}

func NewRenameCmd(args *rootArgs) *cobra.Command {
	var opts pathops.RenameOptions

	cmd := &cobra.Command{
		Use:   "rename PATH NAME",
		Short: "Rename a path in place and print the new path",
		Long: `Rename PATH to NAME inside the same parent directory.
Characters that are illegal in file names are stripped unless --strict is set,
in which case the rename is refused.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cc *cobra.Command, a []string) error {
			target, ok, err := args.ops.Rename(a[0], a[1], opts)
			if err != nil {
				return err
			}
			if err := notPerformed(ok, "rename", a[0]); err != nil {
				return err
			}
			fmt.Fprintln(cc.OutOrStdout(), target)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Refuse names containing illegal characters")
	cmd.Flags().BoolVar(&opts.IncludeExt, "keep-ext", false, "Keep the current extension")

	return cmd
}

func NewTouchCmd(args *rootArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "touch FILE...",
		Short: "Create empty files where nothing exists",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, paths []string) error {
			return forEach(paths, args.ops.CreateFile)
		},
	}
}

func NewTruncateCmd(args *rootArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "truncate FILE...",
		Short: "Replace files with empty ones",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, paths []string) error {
			return forEach(paths, args.ops.EmptyFile)
		},
	}
}
