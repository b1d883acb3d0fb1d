package get_checkout_url

import "context"

type OrderService interface {
	CheckoutURL(ctx context.Context, token string, orderIdentifier string) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
