package preview_price

import (
	"context"

	"github.com/bronsport/unisport-gateway/internal/domain"
)

// FacilityProvider интерфейс получения карточки объекта
type FacilityProvider interface {
	GetFacility(ctx context.Context, facilityID int64) (*domain.Facility, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
