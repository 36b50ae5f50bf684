package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func NewDetectCmd(args *rootArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "detect FILE...",
		Short: "Guess the text encoding of files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cc *cobra.Command, paths []string) error {
			return forEach(paths, func(p string) error {
				enc, err := args.ops.DetectTextEncoding(p)
				if err != nil {
					return err
				}
				fmt.Fprintf(cc.OutOrStdout(), "%s\t%s\n", p, enc)
				return nil
			})
		},
	}
}

func NewCatCmd(args *rootArgs) *cobra.Command {
	var encoding string

	cmd := &cobra.Command{
		Use:   "cat FILE",
		Short: "Decode a text file and print it as UTF-8",
		Args:  cobra.ExactArgs(1),
		RunE: func(cc *cobra.Command, a []string) error {
			text, err := args.ops.ReadText(a[0], encoding)
			if err != nil {
				return err
			}
			_, err = io.WriteString(cc.OutOrStdout(), text)
			return err
		},
	}

	cmd.Flags().StringVar(&encoding, "encoding", "", "Source encoding (detected when empty)")

	return cmd
}

func NewWriteCmd(args *rootArgs) *cobra.Command {
	var encoding string

	cmd := &cobra.Command{
		Use:   "write FILE [TEXT]",
		Short: "Replace a file with TEXT, or stdin, in the given encoding",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cc *cobra.Command, a []string) error {
			var text string
			if len(a) == 2 {
				text = a[1]
			} else {
				data, err := io.ReadAll(cc.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				text = string(data)
			}
			return args.ops.WriteText(a[0], text, encoding)
		},
	}

	cmd.Flags().StringVar(&encoding, "encoding", "", "Target encoding (EZFILE_ENCODING when empty)")

	return cmd
}

func NewConvertCmd(args *rootArgs) *cobra.Command {
	var to, from string

	cmd := &cobra.Command{
		Use:   "convert --to ENCODING FILE...",
		Short: "Re-encode text files in place",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, paths []string) error {
			if to == "" {
				return fmt.Errorf("%w: --to is required", ErrInvalidArgument)
			}
			return forEach(paths, func(p string) error {
				return args.ops.ConvertTextEncoding(p, to, from)
			})
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "Target encoding")
	cmd.Flags().StringVar(&from, "from", "", "Source encoding (detected when empty)")

	return cmd
}

func NewIsTextCmd(args *rootArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "istext FILE...",
		Short: "Report whether files hold text according to their MIME type",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cc *cobra.Command, paths []string) error {
			return forEach(paths, func(p string) error {
				ok, err := args.ops.IsTextFile(p)
				if err != nil {
					return err
				}
				fmt.Fprintf(cc.OutOrStdout(), "%s\t%t\n", p, ok)
				return notPerformed(ok, "istext", p)
			})
		},
	}
}
