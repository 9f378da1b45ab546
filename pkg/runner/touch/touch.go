// Package touch creates files and updates their access and modification
// times.
package touch

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"tableflip.dev/wutils/pkg/timeutil"
)

// ErrSomeFailed is returned when at least one file could not be touched. The
// individual failures have already been written to Touch.Err.
var ErrSomeFailed = errors.New("some files could not be touched")

// SourceKind says where the new timestamps come from.
type SourceKind int

const (
	// SourceNow uses the current time for both timestamps.
	SourceNow SourceKind = iota
	// SourceReference copies both timestamps from another file.
	SourceReference
	// SourceStamp parses a [[CC]YY]MMDDhhmm[.SS] argument.
	SourceStamp
)

// Source is the -r or -t argument that was given last.
type Source struct {
	Kind  SourceKind
	Value string
}

// Action is what happened to one file.
type Action string

const (
	Created Action = "created"
	Updated Action = "updated"
	Skipped Action = "skipped"
	Failed  Action = "failed"
)

// Result describes one operand after Do.
type Result struct {
	Path   string
	Action Action
	Atime  time.Time
	Mtime  time.Time
	Err    error
}

// Touch updates the timestamps of Files.
type Touch struct {
	Files []string

	// Access and Modify select the timestamps to change; neither means both.
	Access bool
	Modify bool
	// NoCreate skips missing files instead of creating them.
	NoCreate bool

	Source Source
	// Adjust shifts the chosen time.
	Adjust time.Duration

	Verbose bool

	Stamper Stamper
	Now     func() time.Time
	Out     io.Writer
	Err     io.Writer
	Log     *zap.SugaredLogger

	Results []Result
}

// Do touches every file, reporting per-file failures to Err and carrying on.
func (t *Touch) Do(ctx context.Context) error {
	if len(t.Files) == 0 {
		return errors.New("missing file operand")
	}
	t.defaults()

	atime, mtime, err := t.times()
	if err != nil {
		return err
	}
	if !t.Access && !t.Modify {
		t.Access, t.Modify = true, true
	}
	if !t.Access {
		atime = time.Time{}
	}
	if !t.Modify {
		mtime = time.Time{}
	}
	t.Log.Debugw("resolved times", "atime", atime, "mtime", mtime, "adjust", timeutil.FormatAdjust(t.Adjust))

	failed := 0
	t.Results = t.Results[:0]
	for _, name := range t.Files {
		if err := ctx.Err(); err != nil {
			return err
		}
		res := t.touch(name, atime, mtime)
		if res.Err != nil {
			failed++
			_, _ = fmt.Fprintf(t.Err, "cannot touch '%s': %v\n", name, res.Err)
		}
		t.Results = append(t.Results, res)
	}

	if t.Verbose {
		t.report()
	}
	if failed > 0 {
		return ErrSomeFailed
	}
	return nil
}

func (t *Touch) defaults() {
	if t.Stamper == nil {
		t.Stamper = OS{}
	}
	if t.Now == nil {
		t.Now = time.Now
	}
	if t.Out == nil {
		t.Out = color.Output
	}
	if t.Err == nil {
		t.Err = color.Error
	}
	if t.Log == nil {
		t.Log = zap.NewNop().Sugar()
	}
}

// times resolves the access and modification times before any file is
// touched, so a bad -r or -t argument changes nothing.
func (t *Touch) times() (time.Time, time.Time, error) {
	var atime, mtime time.Time
	switch t.Source.Kind {
	case SourceReference:
		ref, err := homedir.Expand(t.Source.Value)
		if err != nil {
			return atime, mtime, errors.Wrapf(err, "failed to get attributes of '%s'", t.Source.Value)
		}
		atime, mtime, err = t.Stamper.Times(ref)
		if err != nil {
			return atime, mtime, errors.Wrapf(err, "failed to get attributes of '%s'", t.Source.Value)
		}
	case SourceStamp:
		st, err := timeutil.ParseStamp(t.Source.Value, t.Now())
		if err != nil {
			return atime, mtime, err
		}
		atime, mtime = st, st
	default:
		now := t.Now()
		atime, mtime = now, now
	}
	return atime.Add(t.Adjust), mtime.Add(t.Adjust), nil
}

func (t *Touch) touch(name string, atime, mtime time.Time) Result {
	res := Result{Path: name}
	path, err := homedir.Expand(name)
	if err != nil {
		res.Action, res.Err = Failed, err
		return res
	}

	exists, err := t.Stamper.Exists(path)
	if err != nil {
		res.Action, res.Err = Failed, err
		return res
	}

	res.Action = Updated
	if !exists {
		if t.NoCreate {
			t.Log.Debugw("skipping missing file", "path", path)
			res.Action = Skipped
			return res
		}
		if err := t.Stamper.Create(path); err != nil {
			res.Action, res.Err = Failed, errors.Wrap(err, "create")
			return res
		}
		t.Log.Debugw("created file", "path", path)
		res.Action = Created
	}

	if err := t.Stamper.SetTimes(path, atime, mtime); err != nil {
		res.Action, res.Err = Failed, errors.Wrap(err, "set times")
		return res
	}

	res.Atime, res.Mtime, err = t.Stamper.Times(path)
	if err != nil {
		t.Log.Warnw("cannot read back times", "path", path, "err", err)
	}
	t.Log.Debugw("touched", "path", path, "action", res.Action)
	return res
}

const layoutReport = "2006-01-02 15:04:05"

func (t *Touch) report() {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("PATH"), bold.Sprint("ACTION"), bold.Sprint("ACCESSED"), bold.Sprint("MODIFIED"))
	for _, r := range t.Results {
		atime, mtime := "-", "-"
		if !r.Atime.IsZero() {
			atime = r.Atime.Local().Format(layoutReport)
		}
		if !r.Mtime.IsZero() {
			mtime = r.Mtime.Local().Format(layoutReport)
		}
		tbl.AddRow(r.Path, string(r.Action), atime, mtime)
	}

	_, _ = fmt.Fprintln(t.Out, tbl)
}
