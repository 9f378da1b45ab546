package options

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/wutils/pkg/config"
	"tableflip.dev/wutils/pkg/log"
)

// LogOptions
type LogOptions struct {
	Level string
}

// AddLogArgs registers --log-level. The flag shares its name with the config
// key so config.Load can bind it.
func AddLogArgs(cmd *cobra.Command, o *LogOptions) {
	cmd.Flags().StringVar(&o.Level, config.KeyLogLevel, log.DefaultLevel,
		"Log level, one of "+strings.Join(log.Levels, ", ")+".")
}

// ColorOptions
type ColorOptions struct {
	Mode string
}

func AddColorArgs(cmd *cobra.Command, o *ColorOptions) {
	cmd.Flags().StringVar(&o.Mode, config.KeyColor, config.ColorAuto,
		`Highlight today: "auto", "always" or "never".`)
}
