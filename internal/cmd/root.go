package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/samuli/dirlist/internal/collation"
	"github.com/samuli/dirlist/internal/logging"
	"github.com/samuli/dirlist/internal/report"
	"github.com/samuli/dirlist/internal/scanner"
)

// Version is injected at build time via -ldflags
var Version = "dev"

type options struct {
	symlinks    bool
	directories bool
	files       bool
	sort        bool
	keepGoing   bool
	locale      string
	debugLog    string
}

// NewRootCommand creates the dirlist command
func NewRootCommand() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "dirlist [-l] [-d] [-f] [-s] [path]",
		Short: "List files, directories and symlinks under a directory",
		Long: `dirlist walks the directory tree under path (default: the current
directory) and prints every entry whose kind is selected, one per line.

Without -l, -d or -f every kind is listed. Symbolic links are listed but
never followed. With -s the output is sorted using the collation rules of
the active locale (LC_ALL, LC_COLLATE, LANG) or --locale.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return usageError(cmd, err)
			}
			return nil
		},
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := ""
			if len(args) == 1 {
				root = args[0]
			}
			return run(cmd, opts, root)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.symlinks, "symlinks", "l", false, "include symbolic links")
	flags.BoolVarP(&opts.directories, "directories", "d", false, "include directories")
	flags.BoolVarP(&opts.files, "files", "f", false, "include regular files")
	flags.BoolVarP(&opts.sort, "sort", "s", false, "sort output by locale collation")
	flags.BoolVarP(&opts.keepGoing, "keep-going", "k", false, "report unreadable paths and continue")
	flags.StringVar(&opts.locale, "locale", "", "collation locale, overrides LC_ALL/LC_COLLATE/LANG")
	flags.StringVar(&opts.debugLog, "debug-log", "", "write debug logging to `file`")
	_ = flags.MarkHidden("debug-log")

	cmd.SetFlagErrorFunc(usageError)
	cmd.SetVersionTemplate("dirlist {{.Version}}\n")

	return cmd
}

// usageError attaches the usage text to flag and argument errors
func usageError(cmd *cobra.Command, err error) error {
	return fmt.Errorf("%w\n%s", err, cmd.UsageString())
}

func run(cmd *cobra.Command, opts options, root string) error {
	flush, err := logging.Setup(opts.debugLog)
	if err != nil {
		return err
	}
	defer flush()

	cfg := scanner.NewConfig(root, opts.files, opts.directories, opts.symlinks, opts.sort)

	// resolve the collator before walking so a bad locale fails early
	var col *collation.Collator
	if cfg.Sort {
		locale := collation.Resolve(opts.locale, os.Getenv)
		if col, err = collation.New(locale); err != nil {
			if opts.locale != "" {
				return usageError(cmd, err)
			}
			// an unknown environment locale falls back to root collation
			logging.Debug.Debugw("ignoring environment locale", "locale", locale, "error", err)
			if col, err = collation.New(""); err != nil {
				return err
			}
		}
		logging.Debug.Debugw("collation", "locale", locale, "tag", col.Tag().String())
	}

	diag := report.NewDiagnostics(cmd.ErrOrStderr())
	var walkerOpts []scanner.Option
	if opts.keepGoing {
		walkerOpts = append(walkerOpts,
			scanner.WithErrorPolicy(scanner.KeepGoing),
			scanner.WithErrorHandler(diag.Warn),
		)
	}

	rs, scanErr := scanner.NewWalker(walkerOpts...).Scan(cmd.Context(), cfg)
	if rs == nil {
		return scanErr
	}

	if col != nil {
		col.Sort(rs)
	}

	if err := report.Print(cmd.OutOrStdout(), rs); err != nil {
		return errors.Wrap(err, "unable to write output")
	}

	return scanErr
}
