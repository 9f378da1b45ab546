package options

import (
	"github.com/spf13/cobra"
)

// CalOptions
type CalOptions struct {
	Year bool
}

func AddCalArgs(cmd *cobra.Command, o *CalOptions) {
	cmd.Flags().BoolVarP(&o.Year, "year", "y", false,
		"Show the whole current year.")
}
