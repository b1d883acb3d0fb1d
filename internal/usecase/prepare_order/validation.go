package prepare_order

import (
	"fmt"
	"time"

	"github.com/bronsport/unisport-gateway/internal/domain"
)

// validateRequest проверяет форму запроса до обращений к платформе.
// Правила зеркалят серверную валидацию: шлюз отсекает заведомо
// некорректные заказы, платформа остается последней инстанцией.
func validateRequest(req *Request, now time.Time) error {
	if req.FacilityID <= 0 {
		return fmt.Errorf("%w: facility_id must be positive", ErrInvalidInput)
	}

	switch req.ItemType {
	case domain.OrderTypeEntryFee:
		if len(req.Slots) > 0 {
			return fmt.Errorf("%w: entry fee orders must not carry slots", ErrInvalidInput)
		}
		return validateDate(req.Date, now)

	case domain.OrderTypeSlotBooking:
		if len(req.Slots) == 0 {
			return ErrEmptySelection
		}
		if hasDuplicates(req.Slots) {
			return fmt.Errorf("%w: duplicate slots", ErrInvalidInput)
		}
		return validateDate(req.Date, now)

	case domain.OrderTypeSubscription:
		if !domain.IsValidSubscriptionMonths(req.Months) {
			return fmt.Errorf("%w: months must be one of %v", ErrInvalidInput, domain.SubscriptionMonthOptions)
		}
		if len(req.DaysOfWeek) == 0 || len(req.StartTimes) == 0 {
			return ErrEmptySelection
		}
		for _, d := range req.DaysOfWeek {
			if !d.Valid() {
				return fmt.Errorf("%w: invalid day of week %d", ErrInvalidInput, d)
			}
		}
		if hasDuplicates(req.StartTimes) {
			return fmt.Errorf("%w: duplicate start times", ErrInvalidInput)
		}
		return validateDate(req.StartDate, now)

	default:
		return fmt.Errorf("%w: unknown item type %q", ErrInvalidInput, req.ItemType)
	}
}

func validateDate(date time.Time, now time.Time) error {
	if date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	y1, m1, d1 := date.Date()
	y2, m2, d2 := now.Date()
	if y1 < y2 || (y1 == y2 && (m1 < m2 || (m1 == m2 && d1 < d2))) {
		return ErrPastDate
	}
	return nil
}

func hasDuplicates[T comparable](list []T) bool {
	seen := make(map[T]bool, len(list))
	for _, v := range list {
		if seen[v] {
			return true
		}
		seen[v] = true
	}
	return false
}
