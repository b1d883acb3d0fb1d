package reconcile_selection

import (
	"fmt"
	"time"

	"github.com/bronsport/unisport-gateway/internal/domain"
	"github.com/bronsport/unisport-gateway/internal/service/selection"
	"github.com/bronsport/unisport-gateway/pkg/types"
)

// Операции над выбором
const (
	OpSelectDate      = "select_date"
	OpToggleSlot      = "toggle_slot"
	OpSelectStartDate = "select_start_date"
	OpSelectMonths    = "select_months"
	OpToggleDay       = "toggle_day"
	OpToggleTime      = "toggle_time"
	OpRefresh         = "refresh"
)

// Виды выбора
const (
	KindSlot         = "slot"
	KindEntry        = "entry"
	KindSubscription = "subscription"
)

// ActionRequest операция, применяемая к выбору
type ActionRequest struct {
	Op string `json:"op"`
	// Date для select_date / select_start_date
	Date string `json:"date,omitempty"`
	// Time для toggle_slot / toggle_time
	Time string `json:"time,omitempty"`
	// Day для toggle_day
	Day *int `json:"day,omitempty"`
	// Months для select_months
	Months int `json:"months,omitempty"`
}

// SelectionModel сериализованный выбор пользователя
type SelectionModel struct {
	// slot / entry
	Date  string   `json:"date,omitempty"`
	Slots []string `json:"slots,omitempty"`

	// subscription
	StartDate  string   `json:"startDate,omitempty"`
	Months     int      `json:"months,omitempty"`
	DaysOfWeek []int    `json:"daysOfWeek,omitempty"`
	StartTimes []string `json:"startTimes,omitempty"`
}

// ReconcileRequest HTTP request model
type ReconcileRequest struct {
	Kind      string         `json:"kind"`
	Action    ActionRequest  `json:"action"`
	Selection SelectionModel `json:"selection"`
}

// ReconcileResponse HTTP response model
type ReconcileResponse struct {
	Selection SelectionModel `json:"selection"`
	Notices   []string       `json:"notices"`
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(domain.DateFormat, s)
}

func parseTimes(list []string) ([]types.TimeString, error) {
	out := make([]types.TimeString, 0, len(list))
	for _, s := range list {
		t, err := types.NewTimeStringFromString(s)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// toSlotSelection парсит выбор слотового бронирования
func (m *SelectionModel) toSlotSelection() (selection.SlotSelection, error) {
	date, err := parseDate(m.Date)
	if err != nil {
		return selection.SlotSelection{}, err
	}
	slots, err := parseTimes(m.Slots)
	if err != nil {
		return selection.SlotSelection{}, err
	}
	return selection.SlotSelection{Date: date, Slots: slots}, nil
}

// toSubscriptionSelection парсит выбор абонемента
func (m *SelectionModel) toSubscriptionSelection() (selection.SubscriptionSelection, error) {
	start, err := parseDate(m.StartDate)
	if err != nil {
		return selection.SubscriptionSelection{}, err
	}
	times, err := parseTimes(m.StartTimes)
	if err != nil {
		return selection.SubscriptionSelection{}, err
	}
	days := make([]domain.Weekday, 0, len(m.DaysOfWeek))
	for _, d := range m.DaysOfWeek {
		wd := domain.Weekday(d)
		if !wd.Valid() {
			return selection.SubscriptionSelection{}, fmt.Errorf("invalid day of week %d", d)
		}
		days = append(days, wd)
	}
	return selection.SubscriptionSelection{
		StartDate:  start,
		Months:     m.Months,
		DaysOfWeek: days,
		StartTimes: times,
	}, nil
}

func fromSlotSelection(sel selection.SlotSelection) SelectionModel {
	out := SelectionModel{Slots: []string{}}
	if !sel.Date.IsZero() {
		out.Date = sel.Date.Format(domain.DateFormat)
	}
	for _, t := range sel.SortedSlots() {
		out.Slots = append(out.Slots, t.String())
	}
	return out
}

func fromEntrySelection(sel selection.EntrySelection) SelectionModel {
	out := SelectionModel{}
	if !sel.Date.IsZero() {
		out.Date = sel.Date.Format(domain.DateFormat)
	}
	return out
}

func fromSubscriptionSelection(sel selection.SubscriptionSelection) SelectionModel {
	out := SelectionModel{
		Months:     sel.Months,
		DaysOfWeek: []int{},
		StartTimes: []string{},
	}
	if !sel.StartDate.IsZero() {
		out.StartDate = sel.StartDate.Format(domain.DateFormat)
	}
	for _, d := range sel.SortedDays() {
		out.DaysOfWeek = append(out.DaysOfWeek, int(d))
	}
	for _, t := range sel.SortedTimes() {
		out.StartTimes = append(out.StartTimes, t.String())
	}
	return out
}
