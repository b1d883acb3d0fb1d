package orders

import (
	"context"
	"time"

	"github.com/bronsport/unisport-gateway/internal/domain"
	"github.com/bronsport/unisport-gateway/internal/integrations/unisport"
)

// PlatformClient интерфейс клиента платформы бронирования
type PlatformClient interface {
	PrepareOrder(ctx context.Context, token string, req unisport.PrepareOrderRequest) (string, error)
	GetCheckoutURL(ctx context.Context, token string, orderIdentifier string) (string, error)
	GetOrderStatus(ctx context.Context, token string, orderIdentifier string) (domain.OrderStatus, error)
	GetOrderByCode(ctx context.Context, staffToken string, orderCode string) (*domain.Order, error)
	CompleteOrder(ctx context.Context, staffToken string, orderCode string) (*unisport.CompleteOrderResponse, error)
}

// Metrics приемник метрик запросов к платформе
type Metrics interface {
	ObserveUpstream(operation, outcome string, elapsed time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
