package checkin_order_details

import (
	"time"

	"github.com/bronsport/unisport-gateway/internal/domain"
)

// OrderDetailsResponse HTTP response model для стойки check-in
type OrderDetailsResponse struct {
	OrderCode    string  `json:"orderCode"`
	OrderType    string  `json:"orderType"`
	Status       string  `json:"status"`
	TotalPrice   float64 `json:"totalPrice"`
	CustomerName string  `json:"customerName"`
	FacilityName string  `json:"facilityName"`
	University   string  `json:"university"`
	// DatePeriod и TimeRange готовые строки для отображения на стойке
	DatePeriod string `json:"datePeriod"`
	TimeRange  string `json:"timeRange"`
	// CanComplete заказ можно завершить сканированием
	CanComplete bool   `json:"canComplete"`
	CreatedAt   string `json:"createdAt"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(o *domain.Order) *OrderDetailsResponse {
	return &OrderDetailsResponse{
		OrderCode:    o.OrderCode,
		OrderType:    string(o.OrderType),
		Status:       string(o.Status),
		TotalPrice:   o.TotalPrice,
		CustomerName: o.CustomerName,
		FacilityName: o.Facility.Name,
		University:   o.Facility.University,
		DatePeriod:   o.DisplayDatePeriod(),
		TimeRange:    o.DisplayTimeRange(),
		CanComplete:  o.CanBeCompletedByCheckin() && o.Status == domain.StatusConfirmed,
		CreatedAt:    o.CreatedAt.Format(time.RFC3339),
	}
}
