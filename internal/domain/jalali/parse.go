package jalali

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseParts splits text on delim and parses the three fields as integers.
// The year is signed and must fit in 32 bits; month and day are unsigned and
// must fit in 8 bits, matching the field widths of the wire format. No
// calendar validation happens here; that is New's job.
func ParseParts(text, delim string) (year, month, day int, err error) {
	parts := strings.Split(text, delim)
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: %q does not have three %q separated fields", ErrFormat, text, delim)
	}
	y, err := strconv.ParseInt(parts[0], 10, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q has a malformed year field", ErrFormat, text)
	}
	m, err := strconv.ParseUint(parts[1], 10, 8)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q has a malformed month field", ErrFormat, text)
	}
	d, err := strconv.ParseUint(parts[2], 10, 8)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q has a malformed day field", ErrFormat, text)
	}
	return int(y), int(m), int(d), nil
}

// Parse parses text in cal's wire format ("YYYY/MM/DD" for Jalali,
// "YYYY-MM-DD" for Gregorian) and validates it as a calendar date.
func Parse(cal Calendar, text string) (Date, error) {
	y, m, d, err := ParseParts(text, cal.delimiter())
	if err != nil {
		return Date{}, err
	}
	date, err := New(cal, y, m, d)
	if err != nil {
		return Date{}, fmt.Errorf("%q: %w", text, err)
	}
	return date, nil
}
