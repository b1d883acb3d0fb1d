package prepare_order

import (
	"context"
	"time"

	prepareOrder "github.com/bronsport/unisport-gateway/internal/usecase/prepare_order"
)

type PrepareOrderUseCase interface {
	Execute(ctx context.Context, req *prepareOrder.Request) (*prepareOrder.Response, error)
}

// CacheInvalidator сбрасывает кеш доступности после успешного заказа
type CacheInvalidator interface {
	InvalidateAvailability(facilityID int64, date time.Time)
	InvalidateMatrix(facilityID int64)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
