// Package pricing вычисляет предварительную стоимость заказа на стороне шлюза.
// Итоговую цену всегда пересчитывает платформа при оформлении; здесь только
// превью для пользователя. Ошибки расчета никогда не маскируются нулевой ценой.
package pricing

import (
	"fmt"
	"math"
	"time"

	"github.com/bronsport/unisport-gateway/internal/domain"
	"github.com/bronsport/unisport-gateway/internal/service/selection"
)

// Quote результат расчета цены
type Quote struct {
	Total       float64
	RatePerHour float64
	// Occurrences число тренировок в периоде абонемента (0 для слотов и входа)
	Occurrences int
	Units       int
}

// SlotQuote стоимость слотового бронирования: ставка за час * число слотов
func SlotQuote(facility *domain.Facility, sel selection.SlotSelection) (Quote, error) {
	if err := checkRate(facility); err != nil {
		return Quote{}, err
	}
	if !facility.SupportsSlotBooking() {
		return Quote{}, fmt.Errorf("%w: %s", ErrUnsupportedBookingType, facility.BookingType)
	}
	if len(sel.Slots) == 0 {
		return Quote{}, ErrEmptySelection
	}
	return Quote{
		Total:       facility.PricePerHour * float64(len(sel.Slots)),
		RatePerHour: facility.PricePerHour,
		Units:       len(sel.Slots),
	}, nil
}

// EntryQuote стоимость разового входа: одна ставка за час
func EntryQuote(facility *domain.Facility) (Quote, error) {
	if err := checkRate(facility); err != nil {
		return Quote{}, err
	}
	if facility.BookingType != domain.BookingTypeEntryFee {
		return Quote{}, fmt.Errorf("%w: %s", ErrUnsupportedBookingType, facility.BookingType)
	}
	return Quote{
		Total:       facility.PricePerHour,
		RatePerHour: facility.PricePerHour,
		Units:       1,
	}, nil
}

// SubscriptionQuote стоимость абонемента:
// ставка * число дат периода с выбранным днем недели * число времен в день.
func SubscriptionQuote(facility *domain.Facility, sel selection.SubscriptionSelection) (Quote, error) {
	if err := checkRate(facility); err != nil {
		return Quote{}, err
	}
	if !facility.SupportsSubscription() {
		return Quote{}, fmt.Errorf("%w: %s", ErrUnsupportedBookingType, facility.BookingType)
	}
	if !domain.IsValidSubscriptionMonths(sel.Months) {
		return Quote{}, fmt.Errorf("%w: %d months", ErrInvalidPeriod, sel.Months)
	}
	if len(sel.DaysOfWeek) == 0 || len(sel.StartTimes) == 0 {
		return Quote{}, ErrEmptySelection
	}
	occurrences := CountOccurrences(sel.StartDate, sel.EndDate(), sel.DaysOfWeek)
	if occurrences == 0 {
		return Quote{}, ErrNoMatchingOccurrences
	}
	return Quote{
		Total:       facility.PricePerHour * float64(occurrences) * float64(len(sel.StartTimes)),
		RatePerHour: facility.PricePerHour,
		Occurrences: occurrences,
		Units:       occurrences * len(sel.StartTimes),
	}, nil
}

// CountOccurrences считает даты в [start, end] включительно, чей день недели
// входит в days. Перебор по дням: период не длиннее года, это дешево и
// не страдает от краевых эффектов календарной арифметики.
func CountOccurrences(start, end time.Time, days []domain.Weekday) int {
	wanted := map[domain.Weekday]bool{}
	for _, d := range days {
		wanted[d] = true
	}
	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if wanted[domain.WeekdayOf(d)] {
			count++
		}
	}
	return count
}

func checkRate(facility *domain.Facility) error {
	if facility == nil {
		return fmt.Errorf("%w: facility is nil", ErrInvalidRate)
	}
	// NaN не ловится сравнением
	if facility.PricePerHour <= 0 || math.IsNaN(facility.PricePerHour) {
		return fmt.Errorf("%w: %.2f", ErrInvalidRate, facility.PricePerHour)
	}
	return nil
}
