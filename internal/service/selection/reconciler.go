package selection

import (
	"time"

	"github.com/bronsport/unisport-gateway/internal/domain"
	"github.com/bronsport/unisport-gateway/pkg/types"
)

// Уведомления пользователю. Нелегальное переключение - не ошибка: выбор
// возвращается без изменений, а причина отказа попадает в Notices.
const (
	NoticePastDate         = "выбранная дата уже прошла"
	NoticeSlotUnavailable  = "это время недоступно для бронирования"
	NoticeSlotsCleared     = "выбранные слоты сброшены из-за смены даты"
	NoticeDayUnavailable   = "в этот день нет ни одного доступного времени"
	NoticeTimeUnavailable  = "это время недоступно ни в один из выбранных дней"
	NoticeTimeNeedsDays    = "сначала выберите хотя бы один день недели"
	NoticeTimesInvalidated = "часть выбранных времен стала недоступна и была снята"
)

// Result итог применения переключения: новый выбор и накопленные уведомления.
// Selection в Result всегда валиден относительно переданной доступности.
type Result[T any] struct {
	Selection T
	Notices   []string
}

func ok[T any](sel T, notices ...string) Result[T] {
	return Result[T]{Selection: sel, Notices: notices}
}

// SelectSlotDate меняет дату слотового выбора. Прошедшая дата - no-op с
// уведомлением. Смена даты всегда сбрасывает выбранные слоты: доступность
// на новую дату еще не известна.
func SelectSlotDate(sel SlotSelection, date time.Time, today time.Time) Result[SlotSelection] {
	if beforeDay(date, today) {
		return ok(sel, NoticePastDate)
	}
	if sameDay(date, sel.Date) {
		return ok(sel)
	}
	next := SlotSelection{Date: date}
	if len(sel.Slots) > 0 {
		return ok(next, NoticeSlotsCleared)
	}
	return ok(next)
}

// ToggleSlot добавляет или снимает время начала. Добавление требует, чтобы
// слот был доступен в загруженной дневной доступности; снятие разрешено всегда.
func ToggleSlot(sel SlotSelection, t types.TimeString, avail *domain.DailyAvailability) Result[SlotSelection] {
	if sel.HasSlot(t) {
		sel.Slots = withoutTime(sel.Slots, t)
		return ok(sel)
	}
	if avail == nil || !avail.IsSlotAvailable(t) {
		return ok(sel, NoticeSlotUnavailable)
	}
	sel.Slots = sortedTimes(append(sel.Slots, t))
	return ok(sel)
}

// SelectEntryDate меняет дату для оплаты за вход. Прошедшая дата - no-op.
func SelectEntryDate(sel EntrySelection, date time.Time, today time.Time) Result[EntrySelection] {
	if beforeDay(date, today) {
		return ok(sel, NoticePastDate)
	}
	sel.Date = date
	return ok(sel)
}

// ToggleDay добавляет или снимает день недели в абонементе.
//
// Добавление требует, чтобы в этот день было доступно хотя бы одно время -
// любое время объекта, не только выбранные: несовместимость выбранных времен
// разрешается отдельным каскадом, а не запретом дня.
// Снятие разрешено всегда, но после него каскадно снимаются времена,
// недоступные ни в один из оставшихся дней.
func ToggleDay(sel SubscriptionSelection, day domain.Weekday, matrix *domain.SubscriptionMatrix) Result[SubscriptionSelection] {
	if sel.HasDay(day) {
		remaining := make([]domain.Weekday, 0, len(sel.DaysOfWeek))
		for _, d := range sel.DaysOfWeek {
			if d != day {
				remaining = append(remaining, d)
			}
		}
		sel.DaysOfWeek = remaining
		kept, dropped := partitionTimes(sel.StartTimes, remaining, matrix)
		sel.StartTimes = kept
		if dropped {
			return ok(sel, NoticeTimesInvalidated)
		}
		return ok(sel)
	}
	if matrix == nil || !matrix.AnyTimeAvailableOnDay(day) {
		return ok(sel, NoticeDayUnavailable)
	}
	sel.DaysOfWeek = append(sel.DaysOfWeek, day)
	return ok(sel)
}

// ToggleTime добавляет или снимает время начала в абонементе. Добавление
// требует непустого набора дней и доступности времени хотя бы в один из них.
func ToggleTime(sel SubscriptionSelection, t types.TimeString, matrix *domain.SubscriptionMatrix) Result[SubscriptionSelection] {
	if sel.HasTime(t) {
		sel.StartTimes = withoutTime(sel.StartTimes, t)
		return ok(sel)
	}
	if len(sel.DaysOfWeek) == 0 {
		return ok(sel, NoticeTimeNeedsDays)
	}
	if matrix == nil || !matrix.TimeAvailableOnAnyDay(t, sel.DaysOfWeek) {
		return ok(sel, NoticeTimeUnavailable)
	}
	sel.StartTimes = append(sel.StartTimes, t)
	sel.StartTimes = sortedTimes(sel.StartTimes)
	return ok(sel)
}

// SelectStartDate меняет дату начала абонемента. Прошедшая дата - no-op.
// Дни и времена сохраняются: матрица доступности не зависит от даты начала.
func SelectStartDate(sel SubscriptionSelection, date time.Time, today time.Time) Result[SubscriptionSelection] {
	if beforeDay(date, today) {
		return ok(sel, NoticePastDate)
	}
	sel.StartDate = date
	return ok(sel)
}

// SelectMonths меняет срок абонемента. Недопустимый срок - no-op.
func SelectMonths(sel SubscriptionSelection, months int) Result[SubscriptionSelection] {
	if !domain.IsValidSubscriptionMonths(months) {
		return ok(sel)
	}
	sel.Months = months
	return ok(sel)
}

// Reconcile пересогласует выбор со свежей доступностью: снимает времена,
// недоступные ни в один из выбранных дней. Вызывается после обновления
// матрицы, чтобы устаревший выбор не дожил до оформления заказа.
func Reconcile(sel SubscriptionSelection, matrix *domain.SubscriptionMatrix) Result[SubscriptionSelection] {
	kept, dropped := partitionTimes(sel.StartTimes, sel.DaysOfWeek, matrix)
	sel.StartTimes = kept
	if dropped {
		return ok(sel, NoticeTimesInvalidated)
	}
	return ok(sel)
}

// ReconcileSlots снимает из слотового выбора времена, ставшие недоступными
// в свежей дневной доступности.
func ReconcileSlots(sel SlotSelection, avail *domain.DailyAvailability) Result[SlotSelection] {
	if avail == nil {
		return ok(sel)
	}
	kept := make([]types.TimeString, 0, len(sel.Slots))
	dropped := false
	for _, t := range sel.Slots {
		if avail.IsSlotAvailable(t) {
			kept = append(kept, t)
		} else {
			dropped = true
		}
	}
	sel.Slots = kept
	if dropped {
		return ok(sel, NoticeTimesInvalidated)
	}
	return ok(sel)
}

// partitionTimes оставляет времена, доступные хотя бы в один из days.
// При пустом days все времена снимаются.
func partitionTimes(times []types.TimeString, days []domain.Weekday, matrix *domain.SubscriptionMatrix) ([]types.TimeString, bool) {
	if len(times) == 0 {
		return times, false
	}
	if len(days) == 0 || matrix == nil {
		return nil, true
	}
	kept := make([]types.TimeString, 0, len(times))
	dropped := false
	for _, t := range times {
		if matrix.TimeAvailableOnAnyDay(t, days) {
			kept = append(kept, t)
		} else {
			dropped = true
		}
	}
	return kept, dropped
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func beforeDay(date, today time.Time) bool {
	y1, m1, d1 := date.Date()
	y2, m2, d2 := today.Date()
	if y1 != y2 {
		return y1 < y2
	}
	if m1 != m2 {
		return m1 < m2
	}
	return d1 < d2
}
