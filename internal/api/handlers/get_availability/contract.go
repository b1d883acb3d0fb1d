package get_availability

import (
	"context"
	"time"

	"github.com/bronsport/unisport-gateway/internal/domain"
)

type CatalogService interface {
	DailyAvailability(ctx context.Context, facilityID int64, date time.Time) (*domain.DailyAvailability, error)
	PrefetchAvailability(ctx context.Context, facilityID int64, from time.Time)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
