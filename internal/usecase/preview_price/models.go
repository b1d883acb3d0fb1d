package preview_price

import (
	"time"

	"github.com/bronsport/unisport-gateway/internal/domain"
	"github.com/bronsport/unisport-gateway/pkg/types"
)

// Request входные данные расчета цены. Поля соответствуют текущему выбору
// пользователя; доступность здесь не проверяется, только арифметика.
type Request struct {
	ItemType   domain.OrderType
	FacilityID int64

	// slot_booking
	Date  time.Time
	Slots []types.TimeString

	// subscription
	StartDate  time.Time
	Months     int
	DaysOfWeek []domain.Weekday
	StartTimes []types.TimeString
}

// Response предварительная стоимость заказа
type Response struct {
	Total       float64
	RatePerHour float64
	// Occurrences число тренировок в периоде абонемента (0 для слотов и входа)
	Occurrences int
	Units       int
}
