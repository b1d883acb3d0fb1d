// Package selection владеет клиентским выбором пользователя (дата, слоты, дни,
// времена) и гарантирует, что выбор никогда не содержит переключений, невозможных
// по последней загруженной доступности. Все проверки легальности - чистые функции
// от (выбор, доступность), вычисляемые в момент вызова; кешируемых флагов нет.
package selection

import (
	"sort"
	"time"

	"github.com/bronsport/unisport-gateway/internal/domain"
	"github.com/bronsport/unisport-gateway/pkg/types"
)

// SlotSelection выбор для почасового бронирования: одна дата + набор времен начала
type SlotSelection struct {
	Date  time.Time
	Slots []types.TimeString
}

// EntrySelection выбор для оплаты за вход: только дата
type EntrySelection struct {
	Date time.Time
}

// SubscriptionSelection выбор параметров абонемента
type SubscriptionSelection struct {
	StartDate  time.Time
	Months     int
	DaysOfWeek []domain.Weekday
	StartTimes []types.TimeString
}

// HasSlot проверяет членство времени в выбранных слотах
func (s *SlotSelection) HasSlot(t types.TimeString) bool {
	return containsTime(s.Slots, t)
}

// SortedSlots времена начала по возрастанию (для отображения и payload заказа)
func (s *SlotSelection) SortedSlots() []types.TimeString {
	return sortedTimes(s.Slots)
}

// HasDay проверяет членство дня недели в выборе
func (s *SubscriptionSelection) HasDay(day domain.Weekday) bool {
	for _, d := range s.DaysOfWeek {
		if d == day {
			return true
		}
	}
	return false
}

// HasTime проверяет членство времени в выборе
func (s *SubscriptionSelection) HasTime(t types.TimeString) bool {
	return containsTime(s.StartTimes, t)
}

// SortedDays дни недели по возрастанию индекса
func (s *SubscriptionSelection) SortedDays() []domain.Weekday {
	out := make([]domain.Weekday, len(s.DaysOfWeek))
	copy(out, s.DaysOfWeek)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// SortedTimes времена начала по возрастанию
func (s *SubscriptionSelection) SortedTimes() []types.TimeString {
	return sortedTimes(s.StartTimes)
}

// EndDate дата окончания абонемента: start + months месяцев - 1 день
func (s *SubscriptionSelection) EndDate() time.Time {
	return s.StartDate.AddDate(0, s.Months, 0).AddDate(0, 0, -1)
}

func containsTime(list []types.TimeString, t types.TimeString) bool {
	for _, v := range list {
		if v == t {
			return true
		}
	}
	return false
}

func sortedTimes(list []types.TimeString) []types.TimeString {
	out := make([]types.TimeString, len(list))
	copy(out, list)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func withoutTime(list []types.TimeString, t types.TimeString) []types.TimeString {
	out := make([]types.TimeString, 0, len(list))
	for _, v := range list {
		if v != t {
			out = append(out, v)
		}
	}
	return out
}
