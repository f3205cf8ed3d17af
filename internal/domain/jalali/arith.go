package jalali

import "fmt"

// maxDaySpan caps AddDays deltas. The supported year range spans fewer than
// four million days, so any larger delta overflows before it is applied.
const maxDaySpan = 4_000_000

// AddDays returns the date delta days after d, in d's calendar. Delta may be
// negative. Results outside the supported year range fail with ErrOverflow.
func AddDays(d Date, delta int) (Date, error) {
	if delta > maxDaySpan || delta < -maxDaySpan {
		return Date{}, fmt.Errorf("%w: day delta %d", ErrOverflow, delta)
	}
	return fromDayNumber(d.dayNumber()+delta, d.cal)
}

// DiffDays returns the signed day count from start to end, positive when end
// is chronologically after start. The dates may be in different calendars;
// both are normalized through the day-count pivot.
func DiffDays(start, end Date) int {
	return end.dayNumber() - start.dayNumber()
}

// DiffDaysAdjusted adds adjustment to the magnitude of the difference before
// the sign is applied, so DiffDaysAdjusted(a, b, x) == -DiffDaysAdjusted(b, a, x)
// for distinct dates.
func DiffDaysAdjusted(start, end Date, adjustment int) int {
	diff := DiffDays(start, end)
	if diff < 0 {
		return -(-diff + adjustment)
	}
	return diff + adjustment
}

// AddMonths advances a Jalali date by a strictly positive number of months.
// Whole years carry into the year component; if the original day exceeds the
// destination month's length, the day is clamped to that length, evaluated
// under the destination year's leap status.
func AddMonths(d Date, months int) (Date, error) {
	if d.cal != Jalali {
		return Date{}, fmt.Errorf("%w: month arithmetic requires a jalali date", ErrInvalidArgument)
	}
	if months <= 0 {
		return Date{}, fmt.Errorf("%w: months must be positive, got %d", ErrInvalidArgument, months)
	}

	year := d.year + months/12
	month := d.month + months%12
	if month > 12 {
		year++
		month -= 12
	}
	if year > MaxYear {
		return Date{}, fmt.Errorf("%w: jalali year %d outside [%d, %d]", ErrOverflow, year, MinYear, MaxYear)
	}

	day := d.day
	if max := MonthLength(Jalali, year, month); day > max {
		day = max
	}
	return Date{year: year, month: month, day: day, cal: Jalali}, nil
}
