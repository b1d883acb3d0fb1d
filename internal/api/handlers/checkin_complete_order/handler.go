package checkin_complete_order

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

// CompleteOrderResponse HTTP response model
type CompleteOrderResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
	// AlreadyCompleted повторное сканирование завершенного заказа
	AlreadyCompleted bool `json:"alreadyCompleted"`
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

// Handle POST /api/v1/checkin/orders/{orderCode}/complete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	orderCode := mux.Vars(r)["orderCode"]
	if orderCode == "" {
		handlers.RespondBadRequest(w, msgInvalidOrderCode)
		return
	}

	result, err := h.orders.CheckinComplete(r.Context(), handlers.BearerToken(r), orderCode)
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrOrderNotFound):
			h.logger.Warn("POST /checkin/orders/%s/complete - not found", orderCode)
			handlers.RespondNotFound(w, msgOrderNotFound)
		case errors.Is(err, orders.ErrInvalidInput):
			// Платформа объясняет, почему заказ нельзя завершить
			h.logger.Warn("POST /checkin/orders/%s/complete - rejected: %v", orderCode, err)
			handlers.RespondBadRequest(w, err.Error())
		case errors.Is(err, orders.ErrUnauthorized):
			handlers.RespondUnauthorized(w, msgUnauthorized)
		case errors.Is(err, orders.ErrForbidden):
			h.logger.Warn("POST /checkin/orders/%s/complete - forbidden", orderCode)
			handlers.RespondForbidden(w, msgForbidden)
		case errors.Is(err, orders.ErrPlatformUnavailable):
			h.logger.Error("POST /checkin/orders/%s/complete - platform unavailable: %v", orderCode, err)
			handlers.RespondServiceUnavailable(w, msgPlatformUnavailable)
		default:
			h.logger.Error("POST /checkin/orders/%s/complete - failed: %v", orderCode, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /checkin/orders/%s/complete - status=%s already_completed=%v",
		orderCode, result.Status, result.AlreadyCompleted)
	handlers.RespondJSON(w, http.StatusOK, CompleteOrderResponse{
		Message:          result.Message,
		Status:           string(result.Status),
		AlreadyCompleted: result.AlreadyCompleted,
	})
}
