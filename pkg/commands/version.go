package commands

import (
	"fmt"
	"io"

	goversion "go.hein.dev/go-version"

	"tableflip.dev/wutils/pkg/commands/options"
)

// Set at build time with -ldflags "-X tableflip.dev/wutils/pkg/commands.version=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func printVersion(w io.Writer, vo *options.VersionOptions) error {
	resp := goversion.FuncWithOutput(vo.Short, version, commit, date, vo.Output)
	_, err := fmt.Fprint(w, resp)
	return err
}
