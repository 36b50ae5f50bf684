package commands

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/menzi11/EZFile/internal/config"
	"github.com/menzi11/EZFile/internal/logging"
	"github.com/menzi11/EZFile/pathops"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrLoggerFailed    = errors.New("logger setup failed")
	ErrNotPerformed    = errors.New("operation not performed")
	ErrNotExist        = errors.New("path does not exist")
)

// rootArgs carries state shared by every subcommand. ops and log are set in
// the root PersistentPreRunE.
type rootArgs struct {
	cfg      *config.Config
	logLevel string
	logDev   bool

	log *logging.Logger
	ops *pathops.Ops
}

func NewRootCmd(name, shortDesc, longDesc string) *cobra.Command {
	args := &rootArgs{cfg: config.LoadOrDefault()}

	cmd := &cobra.Command{
		Use:           name,
		Short:         shortDesc,
		Long:          longDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&args.logLevel, "log_level", args.cfg.Logging.Level, "Set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&args.logDev, "log_dev", args.cfg.Logging.Development, "Use the colored console log format")

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		lc := logging.DefaultConfig()
		if args.logDev {
			lc = logging.DevelopmentConfig()
		}
		// Development logs at debug unless a level was asked for.
		if !args.logDev || cc.Flags().Changed("log_level") || args.logLevel != logging.DefaultConfig().Level {
			lc.Level = args.logLevel
		}
		lc.Output = cc.ErrOrStderr()

		log, err := logging.New(lc)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLoggerFailed, err)
		}

		args.log = log
		args.ops = pathops.New(
			pathops.WithLogger(log.Logger),
			pathops.WithDirPerm(args.cfg.Files.DirPerm),
			pathops.WithFilePerm(args.cfg.Files.FilePerm),
			pathops.WithDefaultEncoding(args.cfg.Files.Encoding),
		)

		log.Debug("ready to go",
			zap.String("command", cc.Name()),
			zap.String("default_encoding", args.cfg.Files.Encoding),
		)

		return nil
	}

	cmd.PersistentPostRunE = func(_ *cobra.Command, _ []string) error {
		if args.log != nil {
			args.log.Debug("shutting down")
			_ = args.log.Sync()
		}
		return nil
	}

	cmd.AddCommand(NewInfoCmd(args))
	cmd.AddCommand(NewExistsCmd(args))
	cmd.AddCommand(NewMkdirCmd(args))
	cmd.AddCommand(NewMvCmd(args))
	cmd.AddCommand(NewRmCmd(args))
	cmd.AddCommand(NewCpCmd(args))
	cmd.AddCommand(NewRenameCmd(args))
	cmd.AddCommand(NewTouchCmd(args))
	cmd.AddCommand(NewTruncateCmd(args))
	cmd.AddCommand(NewDetectCmd(args))
	cmd.AddCommand(NewCatCmd(args))
	cmd.AddCommand(NewWriteCmd(args))
	cmd.AddCommand(NewConvertCmd(args))
	cmd.AddCommand(NewIsTextCmd(args))
	cmd.AddCommand(NewFindCmd(args))
	cmd.AddCommand(NewGlobCmd(args))

	return cmd
}

// forEach runs fn for every path argument and aggregates the failures.
func forEach(paths []string, fn func(p string) error) error {
	var merr error
	for _, p := range paths {
		if err := fn(p); err != nil {
			merr = multierror.Append(merr, err)
		}
	}
	return merr
}

// notPerformed converts a false operation result into an error.
func notPerformed(ok bool, op, p string) error {
	if ok {
		return nil
	}
	return fmt.Errorf("%s %s: %w", op, p, ErrNotPerformed)
}
