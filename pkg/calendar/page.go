package calendar

import (
	"io"
	"time"
)

const (
	// MonthsPerRow is the number of months side by side in a year page.
	MonthsPerRow = 3
	// RowGroups is the number of month rows in a year page.
	RowGroups = 12 / MonthsPerRow

	// The year header spans one and a half month columns.
	yearHeaderWidth = ColumnWidth * MonthsPerRow / 2
)

// Printer writes calendars to Out one line at a time.
type Printer struct {
	Out io.Writer

	// Highlight, when set together with Paint, marks one date. Paint gets
	// the two-column day cell and returns its decorated form.
	Highlight time.Time
	Paint     func(string) string
}

// PrintMonth writes one month with the year in its header.
func (p *Printer) PrintMonth(year int, month time.Month) error {
	mustValid(year, month)

	g := RenderMonth(year, month, true)
	for row, line := range g.Rows {
		line = p.paint(line, row, 0, g)
		if err := p.writeLine(line); err != nil {
			return err
		}
	}
	return nil
}

// PrintYear writes the year number followed by four rows of three months,
// each row followed by a blank line.
func (p *Printer) PrintYear(year int) error {
	mustValid(year, time.January)

	if err := p.writeLine(yearHeader(year)); err != nil {
		return err
	}

	month := time.January
	for group := 0; group < RowGroups; group++ {
		var bufs [GridRows]*lineBuffer
		for i := range bufs {
			bufs[i] = newLineBuffer(ColumnWidth * MonthsPerRow)
		}

		var grids [MonthsPerRow]MonthGrid
		for i := 0; i < MonthsPerRow; i++ {
			putMonth(bufs, year, month, false)
			grids[i] = MonthGrid{Year: year, Month: month}
			month++
		}

		for row, b := range bufs {
			line := b.String()
			for i, g := range grids {
				line = p.paint(line, row, i*ColumnWidth, g)
			}
			if err := p.writeLine(line); err != nil {
				return err
			}
		}
		if err := p.writeLine(""); err != nil {
			return err
		}
	}
	return nil
}

// yearHeader right-aligns the year in a line one and a half months wide.
func yearHeader(year int) string {
	b := newLineBuffer(yearHeaderWidth)
	b.appendSpaces(yearHeaderWidth)
	b.truncate(b.Len() - digitLen(year))
	b.appendNumber(year)
	return b.String()
}

// paint decorates the highlighted day when it falls on this row of g, whose
// first column starts at offset within line.
func (p *Printer) paint(line string, row, offset int, g MonthGrid) string {
	if p.Paint == nil || p.Highlight.IsZero() {
		return line
	}
	h := p.Highlight
	if h.Year() != g.Year || h.Month() != g.Month {
		return line
	}
	r, c, ok := g.Locate(h.Day())
	if !ok || r != row {
		return line
	}
	start := offset + c
	return line[:start] + p.Paint(line[start:start+2]) + line[start+2:]
}

func (p *Printer) writeLine(line string) error {
	_, err := io.WriteString(p.Out, line+"\n")
	return err
}
