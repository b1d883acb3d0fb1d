package selection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bronsport/unisport-gateway/internal/domain"
	"github.com/bronsport/unisport-gateway/pkg/types"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dailyAvail(times ...string) *domain.DailyAvailability {
	slots := make([]domain.AvailabilitySlot, 0, len(times))
	for _, t := range times {
		slots = append(slots, domain.AvailabilitySlot{
			Time:        types.TimeString(t),
			IsAvailable: true,
			Reason:      domain.ReasonAvailable,
		})
	}
	return &domain.DailyAvailability{Slots: slots}
}

// matrixWith строит матрицу с доступными ячейками по парам (день, время)
func matrixWith(cells map[domain.Weekday][]string) *domain.SubscriptionMatrix {
	m := &domain.SubscriptionMatrix{Cells: map[domain.Weekday]map[types.TimeString]domain.MatrixCell{}}
	for day, times := range cells {
		m.Cells[day] = map[types.TimeString]domain.MatrixCell{}
		for _, t := range times {
			m.Cells[day][types.TimeString(t)] = domain.MatrixCell{IsAvailable: true, AvailableSpots: 1}
		}
	}
	return m
}

func TestSelectSlotDate(t *testing.T) {
	today := date(2024, 3, 15)

	t.Run("past date is a no-op with notice", func(t *testing.T) {
		sel := SlotSelection{Date: today, Slots: []types.TimeString{"10:00"}}
		res := SelectSlotDate(sel, date(2024, 3, 14), today)
		assert.Equal(t, sel, res.Selection)
		assert.Contains(t, res.Notices, NoticePastDate)
	})

	t.Run("date change clears slots", func(t *testing.T) {
		sel := SlotSelection{Date: today, Slots: []types.TimeString{"10:00", "11:00"}}
		res := SelectSlotDate(sel, date(2024, 3, 16), today)
		assert.Empty(t, res.Selection.Slots)
		assert.Equal(t, date(2024, 3, 16), res.Selection.Date)
		assert.Contains(t, res.Notices, NoticeSlotsCleared)
	})

	t.Run("same date keeps slots", func(t *testing.T) {
		sel := SlotSelection{Date: today, Slots: []types.TimeString{"10:00"}}
		res := SelectSlotDate(sel, today, today)
		assert.Equal(t, sel, res.Selection)
		assert.Empty(t, res.Notices)
	})
}

func TestToggleSlot(t *testing.T) {
	avail := dailyAvail("10:00", "11:00")

	t.Run("toggle twice returns to original", func(t *testing.T) {
		sel := SlotSelection{Date: date(2024, 3, 15)}
		res := ToggleSlot(sel, "10:00", avail)
		require.Equal(t, []types.TimeString{"10:00"}, res.Selection.Slots)
		res = ToggleSlot(res.Selection, "10:00", avail)
		assert.Empty(t, res.Selection.Slots)
		assert.Empty(t, res.Notices)
	})

	t.Run("adding unavailable slot is a no-op with notice", func(t *testing.T) {
		sel := SlotSelection{Date: date(2024, 3, 15)}
		res := ToggleSlot(sel, "12:00", avail)
		assert.Empty(t, res.Selection.Slots)
		assert.Contains(t, res.Notices, NoticeSlotUnavailable)
	})

	t.Run("removal allowed even when slot became unavailable", func(t *testing.T) {
		sel := SlotSelection{Slots: []types.TimeString{"12:00"}}
		res := ToggleSlot(sel, "12:00", avail)
		assert.Empty(t, res.Selection.Slots)
		assert.Empty(t, res.Notices)
	})

	t.Run("slots stay sorted", func(t *testing.T) {
		sel := SlotSelection{Slots: []types.TimeString{"11:00"}}
		res := ToggleSlot(sel, "10:00", avail)
		assert.Equal(t, []types.TimeString{"10:00", "11:00"}, res.Selection.Slots)
	})
}

func TestToggleDay(t *testing.T) {
	// понедельник и среда доступны в 18:00, пятница только в 19:00
	matrix := matrixWith(map[domain.Weekday][]string{
		domain.Monday:    {"18:00", "19:00"},
		domain.Wednesday: {"18:00"},
		domain.Friday:    {"19:00"},
	})

	t.Run("cascading invalidation on day removal", func(t *testing.T) {
		sel := SubscriptionSelection{
			DaysOfWeek: []domain.Weekday{domain.Monday, domain.Wednesday},
			StartTimes: []types.TimeString{"18:00", "19:00"},
		}
		// снимаем понедельник: 19:00 недоступно в среду и каскадно снимается
		res := ToggleDay(sel, domain.Monday, matrix)
		assert.Equal(t, []domain.Weekday{domain.Wednesday}, res.Selection.DaysOfWeek)
		assert.Equal(t, []types.TimeString{"18:00"}, res.Selection.StartTimes)
		assert.Contains(t, res.Notices, NoticeTimesInvalidated)
	})

	t.Run("removing last day drops all times", func(t *testing.T) {
		sel := SubscriptionSelection{
			DaysOfWeek: []domain.Weekday{domain.Monday},
			StartTimes: []types.TimeString{"18:00"},
		}
		res := ToggleDay(sel, domain.Monday, matrix)
		assert.Empty(t, res.Selection.DaysOfWeek)
		assert.Empty(t, res.Selection.StartTimes)
		assert.Contains(t, res.Notices, NoticeTimesInvalidated)
	})

	t.Run("adding day not covering selected times is allowed", func(t *testing.T) {
		sel := SubscriptionSelection{
			DaysOfWeek: []domain.Weekday{domain.Monday},
			StartTimes: []types.TimeString{"18:00"},
		}
		// в пятницу 18:00 недоступно, но 19:00 есть: день добавляется,
		// а 18:00 остается валидным за счет понедельника
		res := ToggleDay(sel, domain.Friday, matrix)
		assert.Equal(t, []domain.Weekday{domain.Monday, domain.Friday}, res.Selection.DaysOfWeek)
		assert.Equal(t, []types.TimeString{"18:00"}, res.Selection.StartTimes)
		assert.Empty(t, res.Notices)
	})

	t.Run("first day selectable with times empty", func(t *testing.T) {
		sel := SubscriptionSelection{}
		res := ToggleDay(sel, domain.Monday, matrix)
		require.Equal(t, []domain.Weekday{domain.Monday}, res.Selection.DaysOfWeek)
		assert.Empty(t, res.Notices)
		res = ToggleTime(res.Selection, "18:00", matrix)
		assert.Equal(t, []types.TimeString{"18:00"}, res.Selection.StartTimes)
	})

	t.Run("adding day with empty times checks any cell", func(t *testing.T) {
		sel := SubscriptionSelection{}
		res := ToggleDay(sel, domain.Friday, matrix)
		assert.Equal(t, []domain.Weekday{domain.Friday}, res.Selection.DaysOfWeek)
		assert.Empty(t, res.Notices)
	})

	t.Run("adding fully unavailable day is a no-op", func(t *testing.T) {
		sel := SubscriptionSelection{}
		res := ToggleDay(sel, domain.Sunday, matrix)
		assert.Empty(t, res.Selection.DaysOfWeek)
		assert.Contains(t, res.Notices, NoticeDayUnavailable)
	})
}

func TestToggleTime(t *testing.T) {
	matrix := matrixWith(map[domain.Weekday][]string{
		domain.Monday: {"18:00"},
	})

	t.Run("requires a selected day first", func(t *testing.T) {
		sel := SubscriptionSelection{}
		res := ToggleTime(sel, "18:00", matrix)
		assert.Empty(t, res.Selection.StartTimes)
		assert.Contains(t, res.Notices, NoticeTimeNeedsDays)
	})

	t.Run("add and remove", func(t *testing.T) {
		sel := SubscriptionSelection{DaysOfWeek: []domain.Weekday{domain.Monday}}
		res := ToggleTime(sel, "18:00", matrix)
		require.Equal(t, []types.TimeString{"18:00"}, res.Selection.StartTimes)
		res = ToggleTime(res.Selection, "18:00", matrix)
		assert.Empty(t, res.Selection.StartTimes)
	})

	t.Run("unavailable on every selected day is a no-op", func(t *testing.T) {
		sel := SubscriptionSelection{DaysOfWeek: []domain.Weekday{domain.Monday}}
		res := ToggleTime(sel, "20:00", matrix)
		assert.Empty(t, res.Selection.StartTimes)
		assert.Contains(t, res.Notices, NoticeTimeUnavailable)
	})
}

func TestReconcile(t *testing.T) {
	t.Run("stale times dropped after matrix refresh", func(t *testing.T) {
		sel := SubscriptionSelection{
			DaysOfWeek: []domain.Weekday{domain.Monday},
			StartTimes: []types.TimeString{"18:00", "19:00"},
		}
		fresh := matrixWith(map[domain.Weekday][]string{
			domain.Monday: {"18:00"},
		})
		res := Reconcile(sel, fresh)
		assert.Equal(t, []types.TimeString{"18:00"}, res.Selection.StartTimes)
		assert.Contains(t, res.Notices, NoticeTimesInvalidated)
	})

	t.Run("valid selection untouched", func(t *testing.T) {
		sel := SubscriptionSelection{
			DaysOfWeek: []domain.Weekday{domain.Monday},
			StartTimes: []types.TimeString{"18:00"},
		}
		fresh := matrixWith(map[domain.Weekday][]string{
			domain.Monday: {"18:00"},
		})
		res := Reconcile(sel, fresh)
		assert.Equal(t, sel.StartTimes, res.Selection.StartTimes)
		assert.Empty(t, res.Notices)
	})
}

func TestReconcileSlots(t *testing.T) {
	sel := SlotSelection{Slots: []types.TimeString{"10:00", "11:00"}}
	res := ReconcileSlots(sel, dailyAvail("10:00"))
	assert.Equal(t, []types.TimeString{"10:00"}, res.Selection.Slots)
	assert.Contains(t, res.Notices, NoticeTimesInvalidated)
}

func TestSelectMonths(t *testing.T) {
	sel := SubscriptionSelection{Months: 1}
	res := SelectMonths(sel, 4)
	assert.Equal(t, 1, res.Selection.Months)
	res = SelectMonths(sel, 6)
	assert.Equal(t, 6, res.Selection.Months)
}

func TestSubscriptionEndDate(t *testing.T) {
	sel := SubscriptionSelection{StartDate: date(2024, 1, 1), Months: 1}
	assert.Equal(t, date(2024, 1, 31), sel.EndDate())

	sel.Months = 12
	assert.Equal(t, date(2024, 12, 31), sel.EndDate())
}
