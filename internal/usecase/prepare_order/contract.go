package prepare_order

import (
	"context"
	"time"

	"github.com/bronsport/unisport-gateway/internal/domain"
	"github.com/bronsport/unisport-gateway/internal/integrations/unisport"
)

// FacilityProvider интерфейс получения карточки объекта
type FacilityProvider interface {
	GetFacility(ctx context.Context, facilityID int64) (*domain.Facility, error)
}

// AvailabilityProvider интерфейс получения свежей доступности.
// Перед созданием заказа выбор всегда сверяется с актуальными данными.
type AvailabilityProvider interface {
	DailyAvailability(ctx context.Context, facilityID int64, date time.Time) (*domain.DailyAvailability, error)
	SubscriptionMatrix(ctx context.Context, facilityID int64) (*domain.SubscriptionMatrix, error)
}

// OrderService интерфейс сервиса заказов
type OrderService interface {
	Prepare(ctx context.Context, token string, req unisport.PrepareOrderRequest) (string, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
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
