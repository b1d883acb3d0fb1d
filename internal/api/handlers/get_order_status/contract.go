package get_order_status

import (
	"context"

	"github.com/bronsport/unisport-gateway/internal/domain"
)

type OrderService interface {
	Status(ctx context.Context, token string, orderIdentifier string) (domain.OrderStatus, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
