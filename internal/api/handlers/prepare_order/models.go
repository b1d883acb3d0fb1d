package prepare_order

import (
	"time"

	"github.com/bronsport/unisport-gateway/internal/domain"
	prepareOrder "github.com/bronsport/unisport-gateway/internal/usecase/prepare_order"
	"github.com/bronsport/unisport-gateway/pkg/types"
)

// PrepareOrderRequest HTTP request model
type PrepareOrderRequest struct {
	ItemType   string `json:"itemType"`
	FacilityID int64  `json:"facilityId"`

	Date  string   `json:"date,omitempty"`
	Slots []string `json:"slots,omitempty"`

	StartDate  string   `json:"startDate,omitempty"`
	Months     int      `json:"months,omitempty"`
	DaysOfWeek []int    `json:"daysOfWeek,omitempty"`
	StartTimes []string `json:"startTimes,omitempty"`
}

// PrepareOrderResponse HTTP response model
type PrepareOrderResponse struct {
	OrderIdentifier string  `json:"orderIdentifier"`
	TotalPrice      float64 `json:"totalPrice"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *PrepareOrderRequest) ToUseCaseRequest(token string) (*prepareOrder.Request, error) {
	req := &prepareOrder.Request{
		Token:      token,
		ItemType:   domain.OrderType(r.ItemType),
		FacilityID: r.FacilityID,
		Months:     r.Months,
	}

	var err error
	if r.Date != "" {
		req.Date, err = time.Parse(domain.DateFormat, r.Date)
		if err != nil {
			return nil, err
		}
	}
	if r.StartDate != "" {
		req.StartDate, err = time.Parse(domain.DateFormat, r.StartDate)
		if err != nil {
			return nil, err
		}
	}
	for _, s := range r.Slots {
		t, err := types.NewTimeStringFromString(s)
		if err != nil {
			return nil, err
		}
		req.Slots = append(req.Slots, t)
	}
	for _, s := range r.StartTimes {
		t, err := types.NewTimeStringFromString(s)
		if err != nil {
			return nil, err
		}
		req.StartTimes = append(req.StartTimes, t)
	}
	for _, d := range r.DaysOfWeek {
		req.DaysOfWeek = append(req.DaysOfWeek, domain.Weekday(d))
	}
	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *prepareOrder.Response) *PrepareOrderResponse {
	return &PrepareOrderResponse{
		OrderIdentifier: resp.OrderIdentifier,
		TotalPrice:      resp.TotalPrice,
	}
}
