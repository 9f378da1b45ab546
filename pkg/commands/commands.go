package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tableflip.dev/wutils/pkg/commands/options"
	"tableflip.dev/wutils/pkg/config"
	"tableflip.dev/wutils/pkg/log"
	"tableflip.dev/wutils/pkg/runner/touch"
)

// Execute runs a root command built by NewCal or NewTouch and reports a
// failure on stderr, or on stdout as JSON with --json. It returns the process
// exit status.
func Execute(cmd *cobra.Command) int {
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	err := cmd.Execute()
	if err == nil {
		return 0
	}
	// touch already reported each failed file.
	if errors.Is(err, touch.ErrSomeFailed) {
		return 1
	}
	report(cmd, err)
	return 1
}

func report(cmd *cobra.Command, err error) {
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		oo := &base.OutputOptions{JSON: true}
		if oo.HandleError(err) == nil {
			return
		}
	}

	w := cmd.ErrOrStderr()
	var usage *options.UsageError
	if errors.As(err, &usage) {
		if usage.Err != nil {
			_, _ = fmt.Fprintln(w, usage.Err)
		}
		printUsage(w, cmd)
		return
	}
	_, _ = fmt.Fprintln(w, err)
}

func printUsage(w io.Writer, cmd *cobra.Command) {
	_, _ = fmt.Fprintln(w, "usage: "+strings.TrimSpace(cmd.Use))
}

// newRoot sets up what cal and touch have in common.
func newRoot(use, short string) (*cobra.Command, *options.VersionOptions) {
	oo := &base.OutputOptions{}
	lo := &options.LogOptions{}
	vo := &options.VersionOptions{}

	cmd := &cobra.Command{
		Use:   use,
		Short: base.Wrap80(short),
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return options.Usage(err)
	})

	base.AddOutputArg(cmd, oo)
	options.AddLogArgs(cmd, lo)
	options.AddVersionArgs(cmd, vo)
	return cmd, vo
}

// setup loads the config and builds the logger once per invocation.
func setup(cmd *cobra.Command) (config.Config, *zap.SugaredLogger, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, nil, err
	}
	logger, err := log.New(cfg.LogLevel())
	if err != nil {
		return nil, nil, err
	}
	if f := cfg.File(); f != "" {
		logger.Debugw("loaded config", "file", f)
	}
	return cfg, logger, nil
}
