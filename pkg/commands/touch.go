package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/wutils/pkg/commands/options"
	"tableflip.dev/wutils/pkg/runner/touch"
)

// NewTouch returns the touch command.
func NewTouch() *cobra.Command {
	to := &options.TouchOptions{}

	cmd, vo := newRoot("touch [-acm] [-r file] [-t [[CC]YY]MMDDhhmm[.SS]] [-A [-][[hh]mm]SS] [-v] file ...",
		"Change file access and modification times, creating missing files.")
	cmd.Example = `
touch notes.txt
touch -c -m -t 202401311200 report.csv
touch -r reference.txt -A -0100 copy.txt
`
	// Options end at the first file operand.
	cmd.Flags().SetInterspersed(false)

	cmd.Args = func(_ *cobra.Command, args []string) error {
		if !vo.Version && len(args) == 0 {
			return options.Usage(errors.New("missing file operand"))
		}
		return nil
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if vo.Version {
			return printVersion(cmd.OutOrStdout(), vo)
		}
		_, logger, err := setup(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		t := touch.Touch{
			Files:    args,
			Access:   to.Access,
			Modify:   to.Modify,
			NoCreate: to.NoCreate,
			Source:   to.Source,
			Adjust:   to.Adjust,
			Verbose:  to.Verbose,
			Out:      cmd.OutOrStdout(),
			Err:      cmd.ErrOrStderr(),
			Log:      logger,
		}
		return t.Do(context.Background())
	}

	options.AddTouchArgs(cmd, to)
	return cmd
}
