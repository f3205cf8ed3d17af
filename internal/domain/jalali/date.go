package jalali

import "fmt"

// Calendar identifies which calendar a Date's components belong to.
type Calendar int

const (
	Jalali Calendar = iota
	Gregorian
)

// String returns the calendar name.
func (c Calendar) String() string {
	if c == Gregorian {
		return "gregorian"
	}
	return "jalali"
}

// delimiter returns the field separator of the calendar's wire format:
// "YYYY/MM/DD" for Jalali, "YYYY-MM-DD" for Gregorian.
func (c Calendar) delimiter() string {
	if c == Gregorian {
		return "-"
	}
	return "/"
}

// Supported year range for both calendars. The wire format zero-pads years
// to four digits, so anything outside this range is unrepresentable.
const (
	MinYear = 1
	MaxYear = 9999
)

// Date is an immutable civil date in either calendar. The zero value is not
// a valid date; construct through New or Parse.
type Date struct {
	year  int
	month int
	day   int
	cal   Calendar
}

// New validates the components against the calendar's month lengths and
// leap-year rule and returns the date. Invalid components fail with
// ErrInvalidDate; no partially valid Date is ever produced.
func New(cal Calendar, year, month, day int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, fmt.Errorf("%w: year %d outside [%d, %d]", ErrInvalidDate, year, MinYear, MaxYear)
	}
	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("%w: month %d outside [1, 12]", ErrInvalidDate, month)
	}
	if max := MonthLength(cal, year, month); day < 1 || day > max {
		return Date{}, fmt.Errorf("%w: day %d outside [1, %d] for %s month %d of year %d",
			ErrInvalidDate, day, max, cal, month, year)
	}
	return Date{year: year, month: month, day: day, cal: cal}, nil
}

// Year returns the calendar year.
func (d Date) Year() int { return d.year }

// Month returns the month, 1 through 12.
func (d Date) Month() int { return d.month }

// Day returns the day of the month.
func (d Date) Day() int { return d.day }

// Cal returns the calendar the date belongs to.
func (d Date) Cal() Calendar { return d.cal }

// InLeapYear reports whether the date's year is a leap year under its
// calendar's rule.
func (d Date) InLeapYear() bool {
	return isLeap(d.cal, d.year)
}

// String renders the date in its calendar's wire format, zero-padded to
// four-digit year and two-digit month and day.
func (d Date) String() string {
	return fmt.Sprintf("%04d%s%02d%s%02d", d.year, d.cal.delimiter(), d.month, d.cal.delimiter(), d.day)
}

// monthLengths holds the days of each month keyed by calendar and leap
// status (index 0 common, 1 leap). Converter, arithmetic and classifier all
// read month lengths from this one table.
var monthLengths = map[Calendar][2][12]int{
	Jalali: {
		{31, 31, 31, 31, 31, 31, 30, 30, 30, 30, 30, 29},
		{31, 31, 31, 31, 31, 31, 30, 30, 30, 30, 30, 30},
	},
	Gregorian: {
		{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31},
		{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31},
	},
}

// MonthLength returns the number of days in the given month of the given
// year. Month must be in [1, 12].
func MonthLength(cal Calendar, year, month int) int {
	leap := 0
	if isLeap(cal, year) {
		leap = 1
	}
	return monthLengths[cal][leap][month-1]
}

func isLeap(cal Calendar, year int) bool {
	if cal == Gregorian {
		return year%4 == 0 && (year%100 != 0 || year%400 == 0)
	}
	return leapRule.IsLeap(year)
}
