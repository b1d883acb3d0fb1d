package get_checkout_url

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bronsport/unisport-gateway/internal/api/handlers"
	"github.com/bronsport/unisport-gateway/internal/service/orders"
)

const (
	msgInvalidOrderID      = "некорректный идентификатор заказа"
	msgOrderNotFound       = "заказ не найден"
	msgUnauthorized        = "требуется авторизация"
	msgPlatformUnavailable = "платформа бронирования временно недоступна"
)

// CheckoutURLResponse HTTP response model
type CheckoutURLResponse struct {
	CheckoutURL string `json:"checkoutUrl"`
}

type Handler struct {
	orders OrderService
	logger Logger
}

func NewHandler(orders OrderService, logger Logger) *Handler {
	return &Handler{
		orders: orders,
		logger: logger,
	}
}

// Handle POST /api/v1/orders/{orderIdentifier}/checkout-url
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	orderIdentifier := mux.Vars(r)["orderIdentifier"]
	if orderIdentifier == "" {
		handlers.RespondBadRequest(w, msgInvalidOrderID)
		return
	}

	url, err := h.orders.CheckoutURL(r.Context(), handlers.BearerToken(r), orderIdentifier)
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrOrderNotFound):
			h.logger.Warn("POST /orders/%s/checkout-url - not found", orderIdentifier)
			handlers.RespondNotFound(w, msgOrderNotFound)
		case errors.Is(err, orders.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())
		case errors.Is(err, orders.ErrUnauthorized):
			handlers.RespondUnauthorized(w, msgUnauthorized)
		case errors.Is(err, orders.ErrPlatformUnavailable):
			h.logger.Error("POST /orders/%s/checkout-url - platform unavailable: %v", orderIdentifier, err)
			handlers.RespondServiceUnavailable(w, msgPlatformUnavailable)
		default:
			h.logger.Error("POST /orders/%s/checkout-url - failed: %v", orderIdentifier, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /orders/%s/checkout-url - checkout url issued", orderIdentifier)
	handlers.RespondJSON(w, http.StatusOK, CheckoutURLResponse{CheckoutURL: url})
}
