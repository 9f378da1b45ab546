package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/wutils/pkg/calendar"
	"tableflip.dev/wutils/pkg/commands/options"
	"tableflip.dev/wutils/pkg/runner/cal"
)

// NewCal returns the cal command.
func NewCal() *cobra.Command {
	co := &options.CalOptions{}
	clr := &options.ColorOptions{}
	c := &cal.Cal{}

	cmd, vo := newRoot("cal [[month] year]", "Display a calendar.")
	cmd.Long = base.Wrap80(`Display a calendar. With no arguments the current month is shown.
A single argument is a year and shows the whole year; two arguments are a
month and a year. September 1752 is missing the days dropped by the switch
from the Julian to the Gregorian calendar.`)
	cmd.Example = `
cal
cal 2024
cal 9 1752
cal -y --color=always
`
	cmd.Args = func(_ *cobra.Command, args []string) error {
		if vo.Version {
			return nil
		}
		if co.Year && len(args) > 0 {
			return options.Usage(nil)
		}
		return parseCalArgs(args, c)
	}
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		if vo.Version {
			return printVersion(cmd.OutOrStdout(), vo)
		}
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		c.YearView = co.Year
		c.Color = cfg.Color()
		c.Out = cmd.OutOrStdout()
		c.Log = logger
		return c.Do(context.Background())
	}

	options.AddCalArgs(cmd, co)
	options.AddColorArgs(cmd, clr)
	return cmd
}

// parseCalArgs fills in the month and year given on the command line.
func parseCalArgs(args []string, c *cal.Cal) error {
	switch len(args) {
	case 0:
		return nil
	case 1:
		year, err := parseNumber("year", args[0])
		if err != nil {
			return err
		}
		c.Year = year
	case 2:
		month, err := parseNumber("month", args[0])
		if err != nil {
			return err
		}
		year, err := parseNumber("year", args[1])
		if err != nil {
			return err
		}
		if err := calendar.Validate(year, 0); err != nil {
			return err
		}
		if month < int(time.January) || month > int(time.December) {
			return errors.New("month not in range 1..12")
		}
		c.Year, c.Month = year, time.Month(month)
	default:
		return options.Usage(nil)
	}
	return calendar.Validate(c.Year, c.Month)
}

func parseNumber(what, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", what, arg)
	}
	return n, nil
}
