package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/wutils/pkg/runner/touch"
	"tableflip.dev/wutils/pkg/timeutil"
)

// TouchOptions
type TouchOptions struct {
	Access   bool
	Modify   bool
	NoCreate bool
	Verbose  bool

	// Source is written by both -r and -t, so the last one given wins.
	Source touch.Source
	Adjust time.Duration
}

func AddTouchArgs(cmd *cobra.Command, o *TouchOptions) {
	f := cmd.Flags()
	f.BoolVarP(&o.Access, "access", "a", false,
		"Change only the access time.")
	f.BoolVarP(&o.Modify, "modify", "m", false,
		"Change only the modification time.")
	f.BoolVarP(&o.NoCreate, "no-create", "c", false,
		"Do not create files that do not exist.")
	f.BoolVarP(&o.Verbose, "verbose", "v", false,
		"Print a table of the touched files.")
	f.VarP(&sourceValue{src: &o.Source, kind: touch.SourceReference, typ: "file"}, "reference", "r",
		"Use the times of this file instead of the current time.")
	f.VarP(&sourceValue{src: &o.Source, kind: touch.SourceStamp, typ: "stamp"}, "time", "t",
		"Use "+timeutil.StampFormat+" instead of the current time.")
	f.VarP(&adjustValue{d: &o.Adjust}, "adjust", "A",
		"Shift the chosen time by "+timeutil.AdjustFormat+".")
}

// sourceValue is a pflag.Value that records which time source was set.
type sourceValue struct {
	src  *touch.Source
	kind touch.SourceKind
	typ  string
}

func (v *sourceValue) String() string {
	if v.src == nil || v.src.Kind != v.kind {
		return ""
	}
	return v.src.Value
}

func (v *sourceValue) Set(s string) error {
	*v.src = touch.Source{Kind: v.kind, Value: s}
	return nil
}

func (v *sourceValue) Type() string { return v.typ }

type adjustValue struct {
	d *time.Duration
}

func (v *adjustValue) String() string {
	if v.d == nil || *v.d == 0 {
		return ""
	}
	return timeutil.FormatAdjust(*v.d)
}

func (v *adjustValue) Set(s string) error {
	d, err := timeutil.ParseAdjust(s)
	if err != nil {
		return err
	}
	*v.d = d
	return nil
}

func (v *adjustValue) Type() string { return "adjust" }
