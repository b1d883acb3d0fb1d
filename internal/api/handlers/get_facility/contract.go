package get_facility

import (
	"context"
	"time"

	"github.com/bronsport/unisport-gateway/internal/domain"
)

type CatalogService interface {
	GetFacility(ctx context.Context, facilityID int64) (*domain.Facility, error)
	PrefetchAvailability(ctx context.Context, facilityID int64, from time.Time)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
