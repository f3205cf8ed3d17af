package services

import (
	"context"
	"time"

	"github.com/persidate/core/internal/domain/jalali"
	"github.com/persidate/core/internal/infrastructure/logger"
)

// DateService exposes the calendar engine as host-callable operations. It
// holds no mutable state beyond its clock, so a single instance serves
// concurrent callers without coordination.
type DateService struct {
	logger *logger.Logger
	now    func() time.Time
}

// NewDateService creates a new date service
func NewDateService(logger *logger.Logger) *DateService {
	return &DateService{
		logger: logger.WithComponent("date_service"),
		now:    time.Now,
	}
}

// NewDateServiceWithClock creates a date service with a pinned clock. Tests
// use this to make Today deterministic.
func NewDateServiceWithClock(logger *logger.Logger, now func() time.Time) *DateService {
	s := NewDateService(logger)
	s.now = now
	return s
}

// ConvertJalaliToGregorian converts a Jalali date text to its Gregorian
// equivalent on the same absolute day.
func (s *DateService) ConvertJalaliToGregorian(ctx context.Context, date string) (string, error) {
	parsed, err := jalali.Parse(jalali.Jalali, date)
	if err != nil {
		return "", err
	}
	converted, err := jalali.ToGregorian(parsed)
	if err != nil {
		return "", err
	}
	s.logger.Debugw("Converted jalali date", "input", date, "output", converted.String())
	return converted.String(), nil
}

// ConvertGregorianToJalali converts a Gregorian date text to its Jalali
// equivalent on the same absolute day.
func (s *DateService) ConvertGregorianToJalali(ctx context.Context, date string) (string, error) {
	parsed, err := jalali.Parse(jalali.Gregorian, date)
	if err != nil {
		return "", err
	}
	converted, err := jalali.ToJalali(parsed)
	if err != nil {
		return "", err
	}
	s.logger.Debugw("Converted gregorian date", "input", date, "output", converted.String())
	return converted.String(), nil
}

// DiffDays returns the signed day count between two Jalali date texts.
func (s *DateService) DiffDays(ctx context.Context, start, end string) (int, error) {
	return s.DiffDaysAdjusted(ctx, start, end, 0)
}

// DiffDaysAdjusted returns the signed day count between two Jalali date
// texts with the adjustment applied to the magnitude before sign inversion.
func (s *DateService) DiffDaysAdjusted(ctx context.Context, start, end string, adjustment int) (int, error) {
	startDate, err := jalali.Parse(jalali.Jalali, start)
	if err != nil {
		return 0, err
	}
	endDate, err := jalali.Parse(jalali.Jalali, end)
	if err != nil {
		return 0, err
	}
	days := jalali.DiffDaysAdjusted(startDate, endDate, adjustment)
	s.logger.Debugw("Computed date difference", "start", start, "end", end, "adjustment", adjustment, "days", days)
	return days, nil
}

// AddDays adds a signed number of days to a Jalali date text.
func (s *DateService) AddDays(ctx context.Context, date string, days int) (string, error) {
	parsed, err := jalali.Parse(jalali.Jalali, date)
	if err != nil {
		return "", err
	}
	shifted, err := jalali.AddDays(parsed, days)
	if err != nil {
		return "", err
	}
	s.logger.Debugw("Added days", "input", date, "days", days, "output", shifted.String())
	return shifted.String(), nil
}

// AddMonths adds a strictly positive number of months to a Jalali date text.
func (s *DateService) AddMonths(ctx context.Context, date string, months int) (string, error) {
	parsed, err := jalali.Parse(jalali.Jalali, date)
	if err != nil {
		return "", err
	}
	shifted, err := jalali.AddMonths(parsed, months)
	if err != nil {
		return "", err
	}
	s.logger.Debugw("Added months", "input", date, "months", months, "output", shifted.String())
	return shifted.String(), nil
}

// Today returns the current UTC civil date as a Jalali date text. The only
// failure mode is a host clock outside the supported year range.
func (s *DateService) Today(ctx context.Context) (string, error) {
	year, month, day := s.now().UTC().Date()
	date, err := jalali.New(jalali.Gregorian, year, int(month), day)
	if err != nil {
		return "", err
	}
	converted, err := jalali.ToJalali(date)
	if err != nil {
		return "", err
	}
	return converted.String(), nil
}

// IsLeapYear reports whether the year of a Jalali date text is a leap year.
func (s *DateService) IsLeapYear(ctx context.Context, date string) (bool, error) {
	parsed, err := jalali.Parse(jalali.Jalali, date)
	if err != nil {
		return false, err
	}
	return parsed.InLeapYear(), nil
}

// PeriodState classifies the date's position within its recurring period.
func (s *DateService) PeriodState(ctx context.Context, date string, anchorDay int) (string, error) {
	parsed, err := jalali.Parse(jalali.Jalali, date)
	if err != nil {
		return "", err
	}
	state, err := jalali.ClassifyPeriod(parsed, anchorDay)
	if err != nil {
		return "", err
	}
	s.logger.Debugw("Classified period state", "date", date, "anchor_day", anchorDay, "state", string(state))
	return string(state), nil
}
