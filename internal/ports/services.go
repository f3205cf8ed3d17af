package ports

import "context"

// DateService interface for calendar conversion and arithmetic operations.
// Every method is stateless and synchronous; each call is fully determined
// by its arguments, so implementations need no locking.
type DateService interface {
	// ConvertJalaliToGregorian converts "YYYY/MM/DD" to "YYYY-MM-DD".
	ConvertJalaliToGregorian(ctx context.Context, date string) (string, error)

	// ConvertGregorianToJalali converts "YYYY-MM-DD" to "YYYY/MM/DD".
	ConvertGregorianToJalali(ctx context.Context, date string) (string, error)

	// DiffDays returns the signed day count between two Jalali date texts,
	// positive when end is after start.
	DiffDays(ctx context.Context, start, end string) (int, error)

	// DiffDaysAdjusted applies the adjustment to the magnitude of the
	// difference before the sign is applied.
	DiffDaysAdjusted(ctx context.Context, start, end string, adjustment int) (int, error)

	// AddDays adds a signed number of days to a Jalali date text.
	AddDays(ctx context.Context, date string, days int) (string, error)

	// AddMonths adds a strictly positive number of months to a Jalali date
	// text, clamping the day to the destination month's length.
	AddMonths(ctx context.Context, date string, months int) (string, error)

	// Today returns the current UTC civil date as a Jalali date text.
	Today(ctx context.Context) (string, error)

	// IsLeapYear reports whether the year of a Jalali date text is leap.
	IsLeapYear(ctx context.Context, date string) (bool, error)

	// PeriodState classifies the date's position in its recurring period
	// anchored at anchorDay: "Start", "End", "Middle" or "Unknown".
	PeriodState(ctx context.Context, date string, anchorDay int) (string, error)
}
