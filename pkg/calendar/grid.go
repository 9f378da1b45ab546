package calendar

import "time"

const (
	// Width is the printed width of a week: seven two-column days and the
	// spaces between them.
	Width = 20
	// Padding separates months laid out side by side.
	Padding = 2
	// ColumnWidth is the width of every row of a MonthGrid.
	ColumnWidth = Width + Padding
	// GridRows is the number of rows in a MonthGrid: header, weekday names
	// and six weeks.
	GridRows = 8

	weekRows  = GridRows - 2
	firstWeek = 2
	weekdays  = "Su Mo Tu We Th Fr Sa"
)

// MonthGrid is one month laid out as fixed-width text.
type MonthGrid struct {
	Year  int
	Month time.Month
	Rows  [GridRows]string
}

// RenderMonth lays out a single month. With showYear the header reads
// "<Month> <Year>", otherwise just the month name.
func RenderMonth(year int, month time.Month, showYear bool) MonthGrid {
	var bufs [GridRows]*lineBuffer
	for i := range bufs {
		bufs[i] = newLineBuffer(ColumnWidth)
	}
	putMonth(bufs, year, month, showYear)

	g := MonthGrid{Year: year, Month: month}
	for i, b := range bufs {
		g.Rows[i] = b.String()
	}
	return g
}

// Days lists the day numbers shown in the grid, in order.
func (g MonthGrid) Days() []int {
	n := DaysInMonth(g.Year, g.Month)
	days := make([]int, 0, n)
	for day := 1; day <= n; day++ {
		if isSkipped(g.Year, g.Month, day) {
			continue
		}
		days = append(days, day)
	}
	return days
}

// Locate returns the row and byte column of the two-column cell holding
// day, or false when the day is not shown.
func (g MonthGrid) Locate(day int) (row, col int, ok bool) {
	if day < 1 || day > DaysInMonth(g.Year, g.Month) || isSkipped(g.Year, g.Month, day) {
		return 0, 0, false
	}
	slot := int(DayOfWeek(g.Year, g.Month, 1)) + day - 1
	if isReformMonth(g.Year, g.Month) && day > reformLastJulianDay {
		slot -= reformSkippedDays
	}
	return firstWeek + slot/7, (slot % 7) * 3, true
}

func putMonth(bufs [GridRows]*lineBuffer, year int, month time.Month, showYear bool) {
	if showYear {
		putMonthYearHeader(bufs[0], month, year)
	} else {
		putMonthHeader(bufs[0], month)
	}

	bufs[1].appendString(weekdays)
	bufs[1].appendSpaces(Padding)

	mLen := DaysInMonth(year, month)
	first := DayOfWeek(year, month, 1)
	day := 1
	for i := firstWeek; i < firstWeek+weekRows; i++ {
		for wd := time.Sunday; wd <= time.Saturday; wd++ {
			if day > mLen || (i == firstWeek && wd < first) {
				bufs[i].appendSpaces(2)
			} else {
				if isReformMonth(year, month) && day == reformLastJulianDay+1 {
					day += reformSkippedDays
				}
				bufs[i].appendDay(day)
				day++
			}
			bufs[i].appendByte(' ')
		}
		bufs[i].appendSpaces(Padding - 1)
	}
}

func putMonthHeader(b *lineBuffer, month time.Month) {
	name := month.String()
	left := (Width - len(name)) / 2
	right := Width - left - len(name) + Padding
	b.appendSpaces(left)
	b.appendString(name)
	b.appendSpaces(right)
}

func putMonthYearHeader(b *lineBuffer, month time.Month, year int) {
	name := month.String()
	yLen := digitLen(year)
	left := (Width - len(name) - yLen - 1) / 2
	right := Width - left - len(name) - 1 - yLen + Padding
	b.appendSpaces(left)
	b.appendString(name)
	b.appendByte(' ')
	b.appendNumber(year)
	b.appendSpaces(right)
}

func isReformMonth(year int, month time.Month) bool {
	return year == reformYear && month == reformMonth
}

func isSkipped(year int, month time.Month, day int) bool {
	return isReformMonth(year, month) &&
		day > reformLastJulianDay && day <= reformLastJulianDay+reformSkippedDays
}
