package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// AdjustFormat documents the accepted -A syntax.
const AdjustFormat = "[-][[hh]mm]SS"

// ParseAdjust parses a touch adjustment of the form [-][[hh]mm]SS: an
// optional sign followed by two, four or six digits.
func ParseAdjust(input string) (time.Duration, error) {
	s := strings.TrimSpace(input)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	if len(s) != 2 && len(s) != 4 && len(s) != 6 {
		return 0, fmt.Errorf("illegal adjustment %q: expected %s", input, AdjustFormat)
	}

	units := []time.Duration{time.Hour, time.Minute, time.Second}
	units = units[len(units)-len(s)/2:]

	total := time.Duration(0)
	for i, unit := range units {
		field := s[i*2 : i*2+2]
		value, err := strconv.Atoi(field)
		if err != nil || value < 0 {
			return 0, fmt.Errorf("illegal adjustment %q: %q is not a number", input, field)
		}
		if unit != time.Hour && value > 59 {
			return 0, fmt.Errorf("illegal adjustment %q: %q out of range", input, field)
		}
		total += time.Duration(value) * unit
	}

	if neg {
		total = -total
	}
	return total, nil
}

// FormatAdjust renders d in the -A syntax, leaving out leading zero fields.
// Sub-second parts are dropped.
func FormatAdjust(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	sec := int(d % time.Minute / time.Second)
	switch {
	case h > 0:
		return fmt.Sprintf("%s%02d%02d%02d", sign, h, m, sec)
	case m > 0:
		return fmt.Sprintf("%s%02d%02d", sign, m, sec)
	}
	return fmt.Sprintf("%s%02d", sign, sec)
}
