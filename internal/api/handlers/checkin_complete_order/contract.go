package checkin_complete_order

import (
	"context"

	"github.com/bronsport/unisport-gateway/internal/service/orders"
)

type OrderService interface {
	CheckinComplete(ctx context.Context, staffToken string, orderCode string) (*orders.CheckinResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
