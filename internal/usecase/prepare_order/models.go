package prepare_order

import (
	"time"

	"github.com/bronsport/unisport-gateway/internal/domain"
	"github.com/bronsport/unisport-gateway/pkg/types"
)

// Request входные данные создания заказа.
// Поля слотового заказа и абонемента взаимоисключающие.
type Request struct {
	Token      string
	ItemType   domain.OrderType
	FacilityID int64

	// slot_booking / entry_fee
	Date  time.Time
	Slots []types.TimeString

	// subscription
	StartDate  time.Time
	Months     int
	DaysOfWeek []domain.Weekday
	StartTimes []types.TimeString
}

// Response результат создания заказа
type Response struct {
	OrderIdentifier string
	TotalPrice      float64
}
