package jalali

// LeapRule decides whether month 12 of a Persian calendar year has 30 days.
// It is isolated behind an interface so the algorithm can be audited or
// swapped independently of the converter and the period classifier.
type LeapRule interface {
	IsLeap(year int) bool
}

// ArithmeticCycle is the fixed 33-year arithmetic approximation of the
// Persian leap-year rule. With r = (year+1595) mod 33, a year is leap when
// r is a multiple of 4 other than 32, giving 8 leap years per 33-year cycle.
//
// The day-count pivot in convert.go counts leap days with the same closed
// form, so the converter and this rule agree for every year by construction.
type ArithmeticCycle struct{}

// IsLeap reports whether the given Jalali year is a leap year.
func (ArithmeticCycle) IsLeap(year int) bool {
	r := (year + 1595) % 33
	if r < 0 {
		r += 33
	}
	return r%4 == 0 && r != 32
}

// leapRule is the rule used by Date validation, conversion and the period
// classifier. All three must share one rule or month-12 lengths diverge.
var leapRule LeapRule = ArithmeticCycle{}
