package timeutil

import (
	"errors"
	"testing"
	"time"
)

func TestParseStamp(t *testing.T) {
	loc := time.FixedZone("test", 2*60*60)
	now := time.Date(2024, time.June, 15, 9, 30, 0, 0, loc)

	tests := []struct {
		in   string
		want time.Time
	}{
		{"01021504", time.Date(2024, time.January, 2, 15, 4, 0, 0, loc)},
		{"01021504.05", time.Date(2024, time.January, 2, 15, 4, 5, 0, loc)},
		{"9901021504", time.Date(1999, time.January, 2, 15, 4, 0, 0, loc)},
		{"6901021504", time.Date(1969, time.January, 2, 15, 4, 0, 0, loc)},
		{"6801021504", time.Date(2068, time.January, 2, 15, 4, 0, 0, loc)},
		{"0002290000", time.Date(2000, time.February, 29, 0, 0, 0, 0, loc)},
		{"175209141200", time.Date(1752, time.September, 14, 12, 0, 0, 0, loc)},
		{"202412312359.59", time.Date(2024, time.December, 31, 23, 59, 59, 0, loc)},
	}
	for _, tt := range tests {
		got, err := ParseStamp(tt.in, now)
		if err != nil {
			t.Fatalf("ParseStamp(%q): unexpected error: %v", tt.in, err)
		}
		if !got.Equal(tt.want) {
			t.Fatalf("ParseStamp(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseStampInvalid(t *testing.T) {
	now := time.Date(2024, time.June, 15, 9, 30, 0, 0, time.UTC)
	for _, in := range []string{
		"",
		"0102150",        // odd length
		"010215",         // too short
		"01021504.5",     // one-digit seconds
		"01021504.",      // empty seconds
		"01021504.ab",    // non-numeric seconds
		"13011200",       // month 13
		"02301200",       // Feb 30
		"2302291200",     // not a leap year
		"01012400",       // hour 24
		"01011260",       // minute 60
		"01011200.60",    // second 60
		"0a021504",       // non-numeric
		"12202401021504", // too long
	} {
		_, err := ParseStamp(in, now)
		if !errors.Is(err, ErrIllegalStamp) {
			t.Fatalf("ParseStamp(%q) = %v, want ErrIllegalStamp", in, err)
		}
	}
}
