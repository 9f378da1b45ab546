package calendar

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestPrintMonth(t *testing.T) {
	var out bytes.Buffer
	p := &Printer{Out: &out}
	if err := p.PrintMonth(2024, time.January); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != GridRows {
		t.Fatalf("expected %d lines, got %d", GridRows, len(lines))
	}
	g := RenderMonth(2024, time.January, true)
	for i, line := range lines {
		if line != g.Rows[i] {
			t.Errorf("line %d = %q, want %q", i, line, g.Rows[i])
		}
	}
}

func TestPrintYear(t *testing.T) {
	var out bytes.Buffer
	p := &Printer{Out: &out}
	if err := p.PrintYear(2024); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if want := 1 + RowGroups*(GridRows+1); len(lines) != want {
		t.Fatalf("expected %d lines, got %d", want, len(lines))
	}

	header := lines[0]
	if want := strings.Repeat(" ", 29) + "2024"; header != want {
		t.Fatalf("header = %q, want %q", header, want)
	}

	var months []string
	for group := 0; group < RowGroups; group++ {
		block := lines[1+group*(GridRows+1) : 1+(group+1)*(GridRows+1)]
		for i, line := range block[:GridRows] {
			if len(line) != ColumnWidth*MonthsPerRow {
				t.Fatalf("group %d row %d has width %d: %q", group, i, len(line), line)
			}
		}
		if block[GridRows] != "" {
			t.Fatalf("group %d should end with a blank line, got %q", group, block[GridRows])
		}
		months = append(months, strings.Fields(block[0])...)
		if block[1] != strings.Repeat("Su Mo Tu We Th Fr Sa  ", MonthsPerRow) {
			t.Fatalf("group %d weekday row = %q", group, block[1])
		}
	}

	for i, name := range months {
		if want := time.Month(i + 1).String(); name != want {
			t.Fatalf("month %d is %q, want %q", i+1, name, want)
		}
	}
	if len(months) != 12 {
		t.Fatalf("expected 12 months, got %v", months)
	}
}

func TestPrintYearColumnsMatchMonthGrids(t *testing.T) {
	var out bytes.Buffer
	if err := (&Printer{Out: &out}).PrintYear(1752); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(out.String(), "\n")

	// Third row group: July, August, September.
	block := lines[1+2*(GridRows+1):]
	for col, month := range []time.Month{time.July, time.August, time.September} {
		g := RenderMonth(1752, month, false)
		for i := 0; i < GridRows; i++ {
			got := block[i][col*ColumnWidth : (col+1)*ColumnWidth]
			if got != g.Rows[i] {
				t.Errorf("%s row %d = %q, want %q", month, i, got, g.Rows[i])
			}
		}
	}
	if got := block[2][2*ColumnWidth:]; got != "       1  2 14 15 16  " {
		t.Errorf("first week of September 1752 = %q", got)
	}
}

func TestYearHeader(t *testing.T) {
	tests := map[int]string{
		1:    strings.Repeat(" ", 32) + "1",
		752:  strings.Repeat(" ", 30) + "752",
		9999: strings.Repeat(" ", 29) + "9999",
	}
	for year, want := range tests {
		if got := yearHeader(year); got != want {
			t.Errorf("yearHeader(%d) = %q, want %q", year, got, want)
		}
	}
}

func TestPrintHighlight(t *testing.T) {
	paint := func(s string) string { return "[" + s + "]" }

	var out bytes.Buffer
	p := &Printer{
		Out:       &out,
		Highlight: time.Date(2024, time.January, 10, 12, 0, 0, 0, time.UTC),
		Paint:     paint,
	}
	if err := p.PrintMonth(2024, time.January); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(out.String(), "\n")
	if want := " 7  8  9 [10] 11 12 13  "; lines[3] != want {
		t.Fatalf("highlighted row = %q, want %q", lines[3], want)
	}
	if strings.Count(out.String(), "[") != 1 {
		t.Fatalf("expected a single highlight, got:\n%s", out.String())
	}

	out.Reset()
	p.Highlight = time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC)
	if err := p.PrintYear(2024); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines = strings.Split(out.String(), "\n")
	// August is the middle month of the third group; the 1st is a Thursday.
	row := lines[1+2*(GridRows+1)+2]
	if !strings.Contains(row[ColumnWidth:], "[ 1]") {
		t.Fatalf("expected August 1st highlighted, got %q", row)
	}
	if strings.Count(out.String(), "[") != 1 {
		t.Fatalf("expected a single highlight")
	}

	out.Reset()
	p.Highlight = time.Date(2023, time.January, 10, 0, 0, 0, 0, time.UTC)
	if err := p.PrintMonth(2024, time.January); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out.String(), "[") {
		t.Fatalf("another year must not be highlighted")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestPrintWriteError(t *testing.T) {
	p := &Printer{Out: failingWriter{}}
	if err := p.PrintMonth(2024, time.May); err == nil {
		t.Fatalf("expected write error")
	}
	if err := p.PrintYear(2024); err == nil {
		t.Fatalf("expected write error")
	}
}
