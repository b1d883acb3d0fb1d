package checkin_order_details

import (
	"context"

	"github.com/bronsport/unisport-gateway/internal/domain"
)

type OrderService interface {
	CheckinDetails(ctx context.Context, staffToken string, orderCode string) (*domain.Order, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
