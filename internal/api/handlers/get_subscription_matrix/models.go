package get_subscription_matrix

import (
	"strconv"

	"github.com/bronsport/unisport-gateway/internal/domain"
)

// CellResponse ячейка матрицы доступности
type CellResponse struct {
	IsAvailable    bool   `json:"isAvailable"`
	AvailableSpots int    `json:"availableSpots"`
	Reason         string `json:"reason"`
}

// MatrixResponse HTTP response model. Ключ внешней map - день недели "0".."6"
// (понедельник = "0"), внутренней - время "HH:MM".
type MatrixResponse struct {
	FacilityID   int64                              `json:"facilityId"`
	BookingType  string                             `json:"bookingType"`
	Matrix       map[string]map[string]CellResponse `json:"matrix"`
	MonthOptions []int                              `json:"monthOptions"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(m *domain.SubscriptionMatrix) *MatrixResponse {
	matrix := make(map[string]map[string]CellResponse, len(m.Cells))
	for day, times := range m.Cells {
		row := make(map[string]CellResponse, len(times))
		for t, cell := range times {
			row[t.String()] = CellResponse{
				IsAvailable:    cell.IsAvailable,
				AvailableSpots: cell.AvailableSpots,
				Reason:         string(cell.Reason),
			}
		}
		matrix[strconv.Itoa(int(day))] = row
	}
	return &MatrixResponse{
		FacilityID:   m.FacilityID,
		BookingType:  string(m.BookingType),
		Matrix:       matrix,
		MonthOptions: domain.SubscriptionMonthOptions,
	}
}
