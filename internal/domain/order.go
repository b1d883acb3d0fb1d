package domain

import (
	"time"

	"github.com/bronsport/unisport-gateway/pkg/types"
)

// OrderType тип заказа
type OrderType string

const (
	OrderTypeEntryFee     OrderType = "entry_fee"
	OrderTypeSlotBooking  OrderType = "slot_booking"
	OrderTypeSubscription OrderType = "subscription"
)

// OrderStatus статус заказа. Все переходы считает платформа,
// шлюз только отображает текущее состояние.
type OrderStatus string

const (
	StatusPendingPayment         OrderStatus = "pending_payment"
	StatusConfirmed              OrderStatus = "confirmed"
	StatusCompleted              OrderStatus = "completed"
	StatusCancelledUser          OrderStatus = "cancelled_user"
	StatusCancelledAdmin         OrderStatus = "cancelled_admin"
	StatusPaymentFailed          OrderStatus = "payment_failed"
	StatusExpiredAwaitingPayment OrderStatus = "expired_awaiting_payment"
	StatusRefundInitiated        OrderStatus = "refund_initiated"
	StatusRefunded               OrderStatus = "refunded"
)

// CanPay заказ ждет оплаты
func (s OrderStatus) CanPay() bool {
	return s == StatusPendingPayment
}

// CanRetryPayment для этих статусов фронтенд предлагает "попробовать снова"
func (s OrderStatus) CanRetryPayment() bool {
	return s == StatusPaymentFailed ||
		s == StatusExpiredAwaitingPayment ||
		s == StatusCancelledAdmin
}

// OrderSlot забронированный интервал внутри заказа
type OrderSlot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
}

// Order проекция заказа платформы, отображаемая пользователю и стойке check-in
type Order struct {
	Identifier string // opaque идентификатор для URL оплаты/статуса
	OrderCode  string // человекочитаемый код (он же значение QR)
	OrderType  OrderType
	Status     OrderStatus
	TotalPrice float64

	// CustomerName имя владельца заказа, показывается на стойке check-in
	CustomerName string

	Facility Facility

	// slot_booking / entry_fee
	BookingDate time.Time
	Slots       []OrderSlot

	// subscription
	SubscriptionStart time.Time
	SubscriptionEnd   time.Time
	DaysOfWeek        []Weekday
	StartTimes        []types.TimeString

	CreatedAt time.Time
}

// CanBeCompletedByCheckin завершение по QR доступно только разовым заказам
func (o *Order) CanBeCompletedByCheckin() bool {
	return o.OrderType == OrderTypeSlotBooking || o.OrderType == OrderTypeEntryFee
}

// DisplayDatePeriod период заказа для отображения
func (o *Order) DisplayDatePeriod() string {
	switch o.OrderType {
	case OrderTypeEntryFee, OrderTypeSlotBooking:
		if o.BookingDate.IsZero() {
			return "-"
		}
		return o.BookingDate.Format(DisplayDateFormat)
	case OrderTypeSubscription:
		if o.SubscriptionStart.IsZero() || o.SubscriptionEnd.IsZero() {
			return "-"
		}
		return o.SubscriptionStart.Format(DisplayDateFormat) + " - " + o.SubscriptionEnd.Format(DisplayDateFormat)
	}
	return "-"
}

// DisplayTimeRange интервалы заказа для отображения
func (o *Order) DisplayTimeRange() string {
	switch o.OrderType {
	case OrderTypeSlotBooking:
		return joinSlotRanges(o.Slots)
	case OrderTypeEntryFee:
		if o.Facility.OpenTime != "" && o.Facility.CloseTime != "" {
			return o.Facility.OpenTime.String() + " - " + o.Facility.CloseTime.String()
		}
	case OrderTypeSubscription:
		var ranges []OrderSlot
		for _, t := range o.StartTimes {
			end, err := t.AddHours(1)
			if err != nil {
				continue
			}
			ranges = append(ranges, OrderSlot{StartTime: t, EndTime: end})
		}
		return joinSlotRanges(ranges)
	}
	return "-"
}

func joinSlotRanges(slots []OrderSlot) string {
	if len(slots) == 0 {
		return "-"
	}
	out := ""
	for i, s := range slots {
		if i > 0 {
			out += ", "
		}
		out += s.StartTime.String() + "-" + s.EndTime.String()
	}
	return out
}
