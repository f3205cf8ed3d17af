package jalali

import "errors"

// Error taxonomy for calendar operations. Every failure returned by this
// package wraps exactly one of these sentinels, so callers can branch with
// errors.Is without parsing messages.
var (
	// ErrFormat means date text did not split into three integer fields.
	ErrFormat = errors.New("invalid date format")

	// ErrInvalidDate means the fields parsed but violate calendar rules.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidArgument means a non-date argument is outside its domain.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOverflow means an arithmetic result left the supported year range.
	ErrOverflow = errors.New("date out of range")
)
