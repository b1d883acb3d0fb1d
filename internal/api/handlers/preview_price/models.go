package preview_price

import (
	"time"

	"github.com/bronsport/unisport-gateway/internal/domain"
	previewPrice "github.com/bronsport/unisport-gateway/internal/usecase/preview_price"
	"github.com/bronsport/unisport-gateway/pkg/types"
)

// PreviewPriceRequest HTTP request model
type PreviewPriceRequest struct {
	ItemType   string `json:"itemType"`
	FacilityID int64  `json:"facilityId"`

	Date  string   `json:"date,omitempty"`
	Slots []string `json:"slots,omitempty"`

	StartDate  string   `json:"startDate,omitempty"`
	Months     int      `json:"months,omitempty"`
	DaysOfWeek []int    `json:"daysOfWeek,omitempty"`
	StartTimes []string `json:"startTimes,omitempty"`
}

// PreviewPriceResponse HTTP response model
type PreviewPriceResponse struct {
	Total       float64 `json:"total"`
	RatePerHour float64 `json:"ratePerHour"`
	Occurrences int     `json:"occurrences"`
	Units       int     `json:"units"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *PreviewPriceRequest) ToUseCaseRequest() (*previewPrice.Request, error) {
	req := &previewPrice.Request{
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
func FromUseCaseResponse(resp *previewPrice.Response) *PreviewPriceResponse {
	return &PreviewPriceResponse{
		Total:       resp.Total,
		RatePerHour: resp.RatePerHour,
		Occurrences: resp.Occurrences,
		Units:       resp.Units,
	}
}
