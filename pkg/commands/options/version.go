package options

import (
	"github.com/spf13/cobra"
)

// VersionOptions
type VersionOptions struct {
	Version bool
	Short   bool
	Output  string
}

func AddVersionArgs(cmd *cobra.Command, o *VersionOptions) {
	cmd.Flags().BoolVar(&o.Version, "version", false,
		"Print version information and exit.")
	cmd.Flags().BoolVar(&o.Short, "short-version", false,
		"With --version, print just the version number.")
	cmd.Flags().StringVar(&o.Output, "version-output", "json",
		"With --version, output format. One of 'yaml' or 'json'.")
}
