package domain

import (
	"time"

	"github.com/bronsport/unisport-gateway/pkg/types"
)

// UnavailabilityReason причина недоступности слота, приходит от платформы как есть
type UnavailabilityReason string

const (
	ReasonAvailable          UnavailabilityReason = "available"
	ReasonClosedDay          UnavailabilityReason = "facility_closed_on_day"
	ReasonClosedTime         UnavailabilityReason = "facility_closed_at_time"
	ReasonLeadTime           UnavailabilityReason = "lead_time_restriction"
	ReasonFullyBooked        UnavailabilityReason = "fully_booked_exclusive"
	ReasonMaxCapacityReached UnavailabilityReason = "max_capacity_reached"
	ReasonMisconfigured      UnavailabilityReason = "facility_misconfigured_no_capacity"
	ReasonUnknown            UnavailabilityReason = "unknown_error"
)

// AvailabilitySlot один часовой слот на конкретную дату.
// Данные приходят от платформы и локально никогда не мутируются —
// кеш заменяет их целиком при каждом успешном запросе.
type AvailabilitySlot struct {
	Time           types.TimeString
	IsAvailable    bool
	Reason         UnavailabilityReason
	BookedCount    int
	MaxCapacity    int
	AvailableSpots int
}

// DailyAvailability слоты объекта на одну дату
type DailyAvailability struct {
	FacilityID  int64
	BookingType BookingType
	Date        time.Time
	Slots       []AvailabilitySlot
	Message     string // пояснение платформы, когда слотов нет
}

// SlotByTime возвращает слот с указанным временем начала, если он есть в ответе
func (d *DailyAvailability) SlotByTime(t types.TimeString) (AvailabilitySlot, bool) {
	for _, s := range d.Slots {
		if s.Time == t {
			return s, true
		}
	}
	return AvailabilitySlot{}, false
}

// IsSlotAvailable true, если слот с таким временем есть и доступен
func (d *DailyAvailability) IsSlotAvailable(t types.TimeString) bool {
	s, ok := d.SlotByTime(t)
	return ok && s.IsAvailable
}

// MatrixCell ячейка матрицы доступности абонементов: может ли повторяющееся
// бронирование легально начинаться в (день недели, время)
type MatrixCell struct {
	IsAvailable    bool
	AvailableSpots int
	Reason         UnavailabilityReason
}

// SubscriptionMatrix weekday x time сетка доступности абонементов.
// Запрашивается один раз на объект, read-only.
type SubscriptionMatrix struct {
	FacilityID  int64
	BookingType BookingType
	Cells       map[Weekday]map[types.TimeString]MatrixCell
}

// Cell возвращает ячейку матрицы; отсутствующая ячейка трактуется как недоступная
func (m *SubscriptionMatrix) Cell(day Weekday, t types.TimeString) MatrixCell {
	if row, ok := m.Cells[day]; ok {
		if cell, ok := row[t]; ok {
			return cell
		}
	}
	return MatrixCell{IsAvailable: false}
}

// IsCellAvailable true, если (день, время) доступно для новой подписки
func (m *SubscriptionMatrix) IsCellAvailable(day Weekday, t types.TimeString) bool {
	return m.Cell(day, t).IsAvailable
}

// AnyTimeAvailableOnDay есть ли хотя бы один доступный для подписки слот в этот день
func (m *SubscriptionMatrix) AnyTimeAvailableOnDay(day Weekday) bool {
	for _, cell := range m.Cells[day] {
		if cell.IsAvailable {
			return true
		}
	}
	return false
}

// TimeAvailableOnAnyDay доступно ли время хотя бы в один из указанных дней
func (m *SubscriptionMatrix) TimeAvailableOnAnyDay(t types.TimeString, days []Weekday) bool {
	for _, d := range days {
		if m.IsCellAvailable(d, t) {
			return true
		}
	}
	return false
}
