package jalali

import "fmt"

// PeriodState classifies a date's position inside its recurring custom
// period, whose boundary is anchored to a nominal day of the month.
type PeriodState string

const (
	PeriodStart   PeriodState = "Start"
	PeriodEnd     PeriodState = "End"
	PeriodMiddle  PeriodState = "Middle"
	PeriodUnknown PeriodState = "Unknown"
)

// periodRule pairs a predicate with the state it yields. Rules are evaluated
// strictly in order; the first match wins. Keeping the cascade as a table
// makes the edge-case precedence auditable rule by rule.
type periodRule struct {
	name    string
	matches func(d Date, anchorDay int) bool
	state   PeriodState
}

var periodRules = []periodRule{
	// A short month that runs out before the anchor day still closes the
	// period on its last calendar day.
	{
		name: "month end at or before anchor",
		matches: func(d Date, anchorDay int) bool {
			return d.day == MonthLength(Jalali, d.year, d.month) && d.day <= anchorDay
		},
		state: PeriodEnd,
	},
	// New year's day opens a period when the anchor is beyond any month's
	// reach, or exactly matched the day-of-month of the preceding day.
	{
		name: "year start rollover",
		matches: func(d Date, anchorDay int) bool {
			if d.day != 1 || d.month != 1 {
				return false
			}
			if anchorDay >= 30 {
				return true
			}
			prev, err := AddDays(d, -1)
			return err == nil && anchorDay == prev.day
		},
		state: PeriodStart,
	},
	// First of a month opens a period when the anchor exceeds the previous
	// month's actual length: anchors of 31 roll over months 2-7 (previous
	// month 31 days at most), anchors of 30+ roll over months 8-12.
	{
		name: "month start rollover",
		matches: func(d Date, anchorDay int) bool {
			if d.day != 1 {
				return false
			}
			return (d.month >= 2 && d.month <= 7 && anchorDay == 31) ||
				(d.month >= 8 && d.month <= 12 && anchorDay >= 30)
		},
		state: PeriodStart,
	},
	{
		name: "day equals anchor",
		matches: func(d Date, anchorDay int) bool {
			return anchorDay >= 1 && anchorDay <= 31 && d.day == anchorDay
		},
		state: PeriodEnd,
	},
	{
		name: "day after anchor",
		matches: func(d Date, anchorDay int) bool {
			return anchorDay >= 1 && anchorDay <= 31 && d.day == anchorDay+1
		},
		state: PeriodStart,
	},
	{
		name: "anchor in range",
		matches: func(d Date, anchorDay int) bool {
			return anchorDay >= 1 && anchorDay <= 31
		},
		state: PeriodMiddle,
	},
}

// ClassifyPeriod returns the date's position within its enclosing period for
// the given anchor day. Anchors outside [1, 31] that match no rollover rule
// classify as Unknown rather than failing.
func ClassifyPeriod(d Date, anchorDay int) (PeriodState, error) {
	if d.cal != Jalali {
		return PeriodUnknown, fmt.Errorf("%w: period classification requires a jalali date", ErrInvalidArgument)
	}
	for _, rule := range periodRules {
		if rule.matches(d, anchorDay) {
			return rule.state, nil
		}
	}
	return PeriodUnknown, nil
}
