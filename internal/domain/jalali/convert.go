package jalali

import "fmt"

// Conversion pivots through a day number: the count of days elapsed since
// proleptic Gregorian 0000-01-01. Both calendars map to and from this count
// with closed-form arithmetic, so Jalali->Gregorian and Gregorian->Jalali
// are exact mutual inverses for every date in the supported range.

// ToGregorian maps a Jalali date to the Gregorian date on the same absolute
// day. Gregorian input is returned unchanged.
func ToGregorian(d Date) (Date, error) {
	if d.cal == Gregorian {
		return d, nil
	}
	return fromDayNumber(d.dayNumber(), Gregorian)
}

// ToJalali maps a Gregorian date to the Jalali date on the same absolute
// day. Jalali input is returned unchanged.
func ToJalali(d Date) (Date, error) {
	if d.cal == Jalali {
		return d, nil
	}
	return fromDayNumber(d.dayNumber(), Jalali)
}

// dayNumber returns the date's day count since Gregorian 0000-01-01.
func (d Date) dayNumber() int {
	if d.cal == Gregorian {
		return gregorianDayNumber(d.year, d.month, d.day)
	}
	return jalaliDayNumber(d.year, d.month, d.day)
}

// fromDayNumber reconstructs a date in cal from a day count. Counts whose
// year falls outside [MinYear, MaxYear] fail with ErrOverflow.
func fromDayNumber(n int, cal Calendar) (Date, error) {
	if n < 0 {
		return Date{}, fmt.Errorf("%w: day count %d precedes the epoch", ErrOverflow, n)
	}
	var y, m, d int
	if cal == Gregorian {
		y, m, d = gregorianFromDayNumber(n)
	} else {
		y, m, d = jalaliFromDayNumber(n)
	}
	if y < MinYear || y > MaxYear {
		return Date{}, fmt.Errorf("%w: %s year %d outside [%d, %d]", ErrOverflow, cal, y, MinYear, MaxYear)
	}
	return Date{year: y, month: m, day: d, cal: cal}, nil
}

// Cumulative days before each Gregorian month in a common year.
var gregorianMonthOffsets = [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

func gregorianDayNumber(year, month, day int) int {
	n := 365*year + (year+3)/4 - (year+99)/100 + (year+399)/400
	n += gregorianMonthOffsets[month-1]
	if month > 2 && isLeap(Gregorian, year) {
		n++
	}
	return n + day - 1
}

func gregorianFromDayNumber(n int) (year, month, day int) {
	days := n
	year = 400 * (days / 146097)
	days %= 146097

	// The first century of each 400-year era is one day longer than the
	// other three; the same holds for the first 4-year group of a century.
	if days > 36524 {
		days--
		year += 100 * (days / 36524)
		days %= 36524
		if days >= 365 {
			days++
		}
	}
	year += 4 * (days / 1461)
	days %= 1461
	if days > 365 {
		year += (days - 1) / 365
		days = (days - 1) % 365
	}

	day = days + 1
	leap := 0
	if isLeap(Gregorian, year) {
		leap = 1
	}
	month = 1
	for month < 12 && day > monthLengths[Gregorian][leap][month-1] {
		day -= monthLengths[Gregorian][leap][month-1]
		month++
	}
	return year, month, day
}

// jalaliEpochShift aligns Jalali year 1 with the Gregorian day count: year
// y maps to cycle year y+1595, which places the 33-year cycle boundary at a
// leap year and yields 1 Farvardin 1 = 21 March 622 (proleptic).
const jalaliEpochShift = 355668

func jalaliDayNumber(year, month, day int) int {
	cy := year + 1595
	n := -jalaliEpochShift + 365*cy + (cy/33)*8 + (cy%33+3)/4
	if month < 7 {
		n += (month - 1) * 31
	} else {
		n += (month-7)*30 + 186
	}
	return n + day
}

func jalaliFromDayNumber(n int) (year, month, day int) {
	days := n + jalaliEpochShift - 1
	year = 33*(days/12053) - 1595
	days %= 12053

	year += 4 * (days / 1461)
	days %= 1461
	if days > 365 {
		year += (days - 1) / 365
		days = (days - 1) % 365
	}

	if days < 186 {
		return year, 1 + days/31, 1 + days%31
	}
	return year, 7 + (days-186)/30, 1 + (days-186)%30
}
