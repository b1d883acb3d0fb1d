package get_subscription_matrix

import (
	"context"

	"github.com/bronsport/unisport-gateway/internal/domain"
)

type CatalogService interface {
	SubscriptionMatrix(ctx context.Context, facilityID int64) (*domain.SubscriptionMatrix, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
