package get_facility

import (
	"github.com/bronsport/unisport-gateway/internal/domain"
)

// FacilityResponse HTTP response model
type FacilityResponse struct {
	ID                   int64    `json:"id"`
	Name                 string   `json:"name"`
	University           string   `json:"university"`
	BookingType          string   `json:"bookingType"`
	PricePerHour         float64  `json:"pricePerHour"`
	OpenTime             string   `json:"openTime"`
	CloseTime            string   `json:"closeTime"`
	WorkingDays          []int    `json:"workingDays"`
	MaxCapacity          int      `json:"maxCapacity"`
	SupportsSlotBooking  bool     `json:"supportsSlotBooking"`
	SupportsSubscription bool     `json:"supportsSubscription"`
	SlotTimes            []string `json:"slotTimes"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(f *domain.Facility) *FacilityResponse {
	days := make([]int, 0, len(f.WorkingDays))
	for _, d := range f.WorkingDays {
		days = append(days, int(d))
	}
	slotTimes := []string{}
	for _, t := range f.SlotStartTimes() {
		slotTimes = append(slotTimes, t.String())
	}
	return &FacilityResponse{
		ID:                   f.ID,
		Name:                 f.Name,
		University:           f.University,
		BookingType:          string(f.BookingType),
		PricePerHour:         f.PricePerHour,
		OpenTime:             f.OpenTime.String(),
		CloseTime:            f.CloseTime.String(),
		WorkingDays:          days,
		MaxCapacity:          f.MaxCapacity,
		SupportsSlotBooking:  f.SupportsSlotBooking(),
		SupportsSubscription: f.SupportsSubscription(),
		SlotTimes:            slotTimes,
	}
}
