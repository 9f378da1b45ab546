// Package cal prints month and year calendars.
package cal

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"tableflip.dev/wutils/pkg/calendar"
	"tableflip.dev/wutils/pkg/config"
)

// Cal prints a single month or a whole year.
type Cal struct {
	// Year defaults to the current year.
	Year int
	// Month zero prints the whole year, unless Year is also zero in which
	// case the current month is printed.
	Month time.Month
	// YearView prints the whole current year when Year is zero.
	YearView bool

	// Color is one of config.ColorAuto, ColorAlways or ColorNever and
	// decides whether today is highlighted.
	Color string

	Now func() time.Time
	Out io.Writer
	Log *zap.SugaredLogger
}

// Do writes the calendar to Out.
func (c *Cal) Do(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.defaults()

	now := c.Now()
	year, month := c.Year, c.Month
	if year == 0 {
		year = now.Year()
		if month == 0 && !c.YearView {
			month = now.Month()
		}
	}
	if err := calendar.Validate(year, month); err != nil {
		return err
	}
	if err := config.ValidColor(c.Color); err != nil {
		return err
	}

	p := &calendar.Printer{Out: c.Out}
	if paint := c.painter(); paint != nil {
		p.Highlight = now
		p.Paint = paint
		if f, ok := c.Out.(*os.File); ok {
			p.Out = colorable.NewColorable(f)
		}
	}

	if month == 0 {
		c.Log.Debugw("printing year", "year", year)
		return p.PrintYear(year)
	}
	c.Log.Debugw("printing month", "year", year, "month", month)
	return p.PrintMonth(year, month)
}

func (c *Cal) defaults() {
	if c.Now == nil {
		c.Now = time.Now
	}
	if c.Out == nil {
		c.Out = color.Output
	}
	if c.Log == nil {
		c.Log = zap.NewNop().Sugar()
	}
	if c.Color == "" {
		c.Color = config.ColorAuto
	}
}

// painter returns the function that marks today, or nil when nothing should
// be highlighted.
func (c *Cal) painter() func(string) string {
	hl := color.New(color.ReverseVideo)
	switch c.Color {
	case config.ColorAlways:
		hl.EnableColor()
	case config.ColorNever:
		return nil
	default:
		if color.NoColor || !terminal(c.Out) {
			return nil
		}
	}
	return func(s string) string { return hl.Sprint(s) }
}

// terminal reports whether w is a terminal. Writers that are not files, such
// as color.Output, are trusted to handle escapes themselves.
func terminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return true
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
