package catalog

import (
	"context"
	"time"

	"github.com/bronsport/unisport-gateway/internal/domain"
)

// PlatformClient интерфейс клиента платформы для данных каталога
type PlatformClient interface {
	GetFacility(ctx context.Context, facilityID int64) (*domain.Facility, error)
	GetDailyAvailability(ctx context.Context, facilityID int64, date time.Time) (*domain.DailyAvailability, error)
	GetSubscriptionMatrix(ctx context.Context, facilityID int64) (*domain.SubscriptionMatrix, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
