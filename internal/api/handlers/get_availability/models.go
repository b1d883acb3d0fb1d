package get_availability

import (
	"github.com/bronsport/unisport-gateway/internal/domain"
)

// SlotResponse один слот дневной доступности
type SlotResponse struct {
	Time           string `json:"time"`
	IsAvailable    bool   `json:"isAvailable"`
	Reason         string `json:"reason"`
	BookedCount    int    `json:"bookedCount"`
	MaxCapacity    int    `json:"maxCapacity"`
	AvailableSpots int    `json:"availableSpots"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	FacilityID  int64          `json:"facilityId"`
	BookingType string         `json:"bookingType"`
	Date        string         `json:"date"`
	Slots       []SlotResponse `json:"slots"`
	Message     string         `json:"message,omitempty"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(a *domain.DailyAvailability) *AvailabilityResponse {
	slots := make([]SlotResponse, 0, len(a.Slots))
	for _, s := range a.Slots {
		slots = append(slots, SlotResponse{
			Time:           s.Time.String(),
			IsAvailable:    s.IsAvailable,
			Reason:         string(s.Reason),
			BookedCount:    s.BookedCount,
			MaxCapacity:    s.MaxCapacity,
			AvailableSpots: s.AvailableSpots,
		})
	}
	return &AvailabilityResponse{
		FacilityID:  a.FacilityID,
		BookingType: string(a.BookingType),
		Date:        a.Date.Format(domain.DateFormat),
		Slots:       slots,
		Message:     a.Message,
	}
}
