package reconcile_selection

import (
	"context"
	"time"

	"github.com/bronsport/unisport-gateway/internal/domain"
)

type CatalogService interface {
	DailyAvailability(ctx context.Context, facilityID int64, date time.Time) (*domain.DailyAvailability, error)
	SubscriptionMatrix(ctx context.Context, facilityID int64) (*domain.SubscriptionMatrix, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
