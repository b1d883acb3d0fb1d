package get_order_status

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

// StatusResponse HTTP response model
type StatusResponse struct {
	OrderIdentifier string `json:"orderIdentifier"`
	Status          string `json:"status"`
	// CanPay заказ ждет оплаты
	CanPay bool `json:"canPay"`
	// CanRetryPayment для этих статусов интерфейс предлагает повторить оплату
	CanRetryPayment bool `json:"canRetryPayment"`
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

// Handle GET /api/v1/orders/{orderIdentifier}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	orderIdentifier := mux.Vars(r)["orderIdentifier"]
	if orderIdentifier == "" {
		handlers.RespondBadRequest(w, msgInvalidOrderID)
		return
	}

	status, err := h.orders.Status(r.Context(), handlers.BearerToken(r), orderIdentifier)
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrOrderNotFound):
			h.logger.Warn("GET /orders/%s/status - not found", orderIdentifier)
			handlers.RespondNotFound(w, msgOrderNotFound)
		case errors.Is(err, orders.ErrUnauthorized):
			handlers.RespondUnauthorized(w, msgUnauthorized)
		case errors.Is(err, orders.ErrPlatformUnavailable):
			h.logger.Error("GET /orders/%s/status - platform unavailable: %v", orderIdentifier, err)
			handlers.RespondServiceUnavailable(w, msgPlatformUnavailable)
		default:
			h.logger.Error("GET /orders/%s/status - failed: %v", orderIdentifier, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, StatusResponse{
		OrderIdentifier: orderIdentifier,
		Status:          string(status),
		CanPay:          status.CanPay(),
		CanRetryPayment: status.CanRetryPayment(),
	})
}
