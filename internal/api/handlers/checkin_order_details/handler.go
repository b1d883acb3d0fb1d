package checkin_order_details

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bronsport/unisport-gateway/internal/api/handlers"
	"github.com/bronsport/unisport-gateway/internal/service/orders"
)

const (
	msgInvalidOrderCode    = "некорректный код заказа"
	msgOrderNotFound       = "заказ с таким кодом не найден"
	msgUnauthorized        = "требуется авторизация"
	msgForbidden           = "доступно только персоналу"
	msgPlatformUnavailable = "платформа бронирования временно недоступна"
)

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

// Handle GET /api/v1/checkin/orders/{orderCode}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	orderCode := mux.Vars(r)["orderCode"]
	if orderCode == "" {
		handlers.RespondBadRequest(w, msgInvalidOrderCode)
		return
	}

	order, err := h.orders.CheckinDetails(r.Context(), handlers.BearerToken(r), orderCode)
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrOrderNotFound):
			h.logger.Warn("GET /checkin/orders/%s - not found", orderCode)
			handlers.RespondNotFound(w, msgOrderNotFound)
		case errors.Is(err, orders.ErrUnauthorized):
			handlers.RespondUnauthorized(w, msgUnauthorized)
		case errors.Is(err, orders.ErrForbidden):
			h.logger.Warn("GET /checkin/orders/%s - forbidden", orderCode)
			handlers.RespondForbidden(w, msgForbidden)
		case errors.Is(err, orders.ErrPlatformUnavailable):
			h.logger.Error("GET /checkin/orders/%s - platform unavailable: %v", orderCode, err)
			handlers.RespondServiceUnavailable(w, msgPlatformUnavailable)
		default:
			h.logger.Error("GET /checkin/orders/%s - failed: %v", orderCode, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(order))
}
