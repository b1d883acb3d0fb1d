package domain

import "github.com/bronsport/unisport-gateway/pkg/types"

// BookingType способ бронирования спортивного объекта
type BookingType string

const (
	// BookingTypeExclusiveSlot почасовые слоты, один заказ на слот
	BookingTypeExclusiveSlot BookingType = "exclusive_slot"
	// BookingTypeOverlappingSlot почасовые слоты с вместимостью > 1
	BookingTypeOverlappingSlot BookingType = "overlapping_slot"
	// BookingTypeEntryFee оплата за вход на весь день, без слотов
	BookingTypeEntryFee BookingType = "entry_fee"
)

// Facility read-only проекция спортивного объекта платформы.
// Авторитетная копия живет на стороне платформы; шлюз держит кешированный снимок.
type Facility struct {
	ID           int64
	Name         string
	University   string
	BookingType  BookingType
	PricePerHour float64 // сумы за час (за день для entry_fee)
	OpenTime     types.TimeString
	CloseTime    types.TimeString
	WorkingDays  []Weekday // Пн=0 .. Вс=6
	MaxCapacity  int       // только для overlapping_slot
}

// SupportsSlotBooking true для объектов с почасовым бронированием
func (f *Facility) SupportsSlotBooking() bool {
	return f.BookingType == BookingTypeExclusiveSlot || f.BookingType == BookingTypeOverlappingSlot
}

// SupportsSubscription абонементы доступны только для слотовых объектов
func (f *Facility) SupportsSubscription() bool {
	return f.SupportsSlotBooking()
}

// IsWorkingOnDay проверяет, работает ли объект в указанный день недели
func (f *Facility) IsWorkingOnDay(day Weekday) bool {
	for _, d := range f.WorkingDays {
		if d == day {
			return true
		}
	}
	return false
}

// SlotStartTimes все возможные времена начала часовых слотов в рабочие часы.
// CloseTime 00:00 трактуется как работа до конца дня (последний слот 23:00).
func (f *Facility) SlotStartTimes() []types.TimeString {
	open := f.OpenTime
	close := f.CloseTime
	if close == "00:00" {
		close = "23:59"
	}

	var times []types.TimeString
	current := open
	for current.IsBefore(close) {
		end, err := current.AddHours(1)
		if err != nil {
			// Слот 23:00-24:00 допустим при работе до конца дня
			if close == "23:59" {
				times = append(times, current)
			}
			break
		}
		if end.IsAfter(close) {
			break
		}
		times = append(times, current)
		current = end
	}
	return times
}
