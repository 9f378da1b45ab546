// Package timeutil parses the time arguments accepted by touch.
package timeutil

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// StampFormat documents the accepted -t syntax.
const StampFormat = "[[CC]YY]MMDDhhmm[.SS]"

// ErrIllegalStamp is returned for any -t argument that cannot be parsed or
// names a time that does not exist.
var ErrIllegalStamp = errors.New("out of range or illegal time specification: " + StampFormat)

// pivotYear splits two-digit years between centuries: 69..99 are 19YY and
// 00..68 are 20YY.
const pivotYear = 69

// ParseStamp parses [[CC]YY]MMDDhhmm[.SS] in the location of now. A missing
// year means the year of now and missing seconds mean zero.
func ParseStamp(arg string, now time.Time) (time.Time, error) {
	main, secs := arg, ""
	if i := strings.IndexByte(arg, '.'); i >= 0 {
		main, secs = arg[:i], arg[i+1:]
		if len(secs) != 2 {
			return time.Time{}, ErrIllegalStamp
		}
	}

	fields, ok := pairs(main)
	if !ok {
		return time.Time{}, ErrIllegalStamp
	}

	year := now.Year()
	switch len(fields) {
	case 6: // CCYYMMDDhhmm
		year = fields[0]*100 + fields[1]
		fields = fields[2:]
	case 5: // YYMMDDhhmm
		year = fields[0] + 1900
		if fields[0] < pivotYear {
			year = fields[0] + 2000
		}
		fields = fields[1:]
	case 4: // MMDDhhmm
	default:
		return time.Time{}, ErrIllegalStamp
	}

	sec := 0
	if secs != "" {
		s, ok := pairs(secs)
		if !ok {
			return time.Time{}, ErrIllegalStamp
		}
		sec = s[0]
	}

	month, day, hour, minute := time.Month(fields[0]), fields[1], fields[2], fields[3]
	t := time.Date(year, month, day, hour, minute, sec, 0, now.Location())

	// time.Date normalises out-of-range values; a round trip that changes
	// any field means the input named a time that does not exist.
	if t.Year() != year || t.Month() != month || t.Day() != day ||
		t.Hour() != hour || t.Minute() != minute || t.Second() != sec {
		return time.Time{}, ErrIllegalStamp
	}
	return t, nil
}

// pairs splits s into two-digit decimal numbers.
func pairs(s string) ([]int, bool) {
	if len(s) == 0 || len(s)%2 != 0 {
		return nil, false
	}
	out := make([]int, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		if s[i] < '0' || s[i] > '9' || s[i+1] < '0' || s[i+1] > '9' {
			return nil, false
		}
		n, err := strconv.Atoi(s[i : i+2])
		if err != nil {
			return nil, false
		}
		out = append(out, n)
	}
	return out, true
}
