// Package calendar lays out month and year calendars on the Julian/Gregorian
// hybrid calendar used by the British Empire, which switched rules in
// September 1752.
package calendar

import (
	"fmt"
	"time"
)

const (
	// MinYear and MaxYear bound the years the calendar can render.
	MinYear = 1
	MaxYear = 9999

	reformYear  = 1752
	reformMonth = time.September
	// The last Julian day; the next day was the 14th.
	reformLastJulianDay = 2
	reformSkippedDays   = 11
)

var monthLen = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear uses the Julian rule up to and including 1752 and the
// Gregorian rule afterwards.
func IsLeapYear(year int) bool {
	if year <= reformYear {
		return year%4 == 0
	}
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the length of the month. September 1752 still counts
// as 30 days even though only 19 of them were observed.
func DaysInMonth(year int, month time.Month) int {
	mustValid(year, month)
	if month == time.February && IsLeapYear(year) {
		return 29
	}
	return monthLen[month-1]
}

// IsGregorian reports whether the date falls after 1752-09-02.
func IsGregorian(year int, month time.Month, day int) bool {
	return year > reformYear ||
		(year == reformYear && month > reformMonth) ||
		(year == reformYear && month == reformMonth && day > reformLastJulianDay)
}

// DayOfWeek computes the weekday of a date with a variant of Zeller's
// congruence. January and February are treated as months 13 and 14 of the
// previous year.
func DayOfWeek(year int, month time.Month, day int) time.Weekday {
	mustValid(year, month)

	shifted := year - (int(month)+21)/12%2
	y := shifted % 100
	c := shifted / 100 % 100
	m := 3 + (9+int(month))%12

	var era int
	if IsGregorian(year, month, day) {
		era = c/4 - 2*c
	} else {
		era = 5 - c
	}

	// 52*7 keeps the sum positive for every century in range; the +6 moves
	// Zeller's Saturday-based result onto Sunday.
	return time.Weekday((day + 13*(m+1)/5 + y + y/4 + era + 52*7 + 6) % 7)
}

// Validate checks the inputs accepted by the renderer. A zero month means the
// whole year.
func Validate(year int, month time.Month) error {
	if year < MinYear || year > MaxYear {
		return fmt.Errorf("year not in range %d..%d", MinYear, MaxYear)
	}
	if month != 0 && (month < time.January || month > time.December) {
		return fmt.Errorf("month not in range 1..12")
	}
	return nil
}

func mustValid(year int, month time.Month) {
	if month == 0 {
		panic(fmt.Sprintf("calendar: month missing for year %d", year))
	}
	if err := Validate(year, month); err != nil {
		panic("calendar: " + err.Error())
	}
}
