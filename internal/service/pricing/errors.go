package pricing

import "errors"

var (
	ErrInvalidRate            = errors.New("facility has no valid hourly rate")
	ErrInvalidPeriod          = errors.New("invalid subscription period")
	ErrNoMatchingOccurrences  = errors.New("no selected weekday occurs in the subscription period")
	ErrEmptySelection         = errors.New("selection is empty")
	ErrUnsupportedBookingType = errors.New("booking type does not support this price calculation")
)
