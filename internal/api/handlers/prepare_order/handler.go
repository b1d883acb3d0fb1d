package prepare_order

import (
	"errors"
	"net/http"

	"github.com/bronsport/unisport-gateway/internal/api/handlers"
	"github.com/bronsport/unisport-gateway/internal/domain"
	"github.com/bronsport/unisport-gateway/internal/service/orders"
	prepareOrder "github.com/bronsport/unisport-gateway/internal/usecase/prepare_order"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgFacilityNotFound    = "спортивный объект не найден"
	msgIncompatibleType    = "объект не поддерживает выбранный тип заказа"
	msgPastDate            = "выбранная дата уже прошла"
	msgEmptySelection      = "в заказе нечего бронировать"
	msgSelectionOutdated   = "выбор устарел, обновите доступность и попробуйте снова"
	msgUnauthorized        = "требуется авторизация"
	msgPlatformUnavailable = "платформа бронирования временно недоступна"
)

type Handler struct {
	useCase PrepareOrderUseCase
	caches  CacheInvalidator
	logger  Logger
}

func NewHandler(useCase PrepareOrderUseCase, caches CacheInvalidator, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		caches:  caches,
		logger:  logger,
	}
}

// Handle POST /api/v1/orders
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req PrepareOrderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /orders - invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(handlers.BearerToken(r))
	if err != nil {
		h.logger.Warn("POST /orders - failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, prepareOrder.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, prepareOrder.ErrPastDate):
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, prepareOrder.ErrEmptySelection):
			handlers.RespondBadRequest(w, msgEmptySelection)

		case errors.Is(err, prepareOrder.ErrIncompatibleBookingType):
			handlers.RespondBadRequest(w, msgIncompatibleType)

		case errors.Is(err, prepareOrder.ErrFacilityNotFound):
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, prepareOrder.ErrSelectionOutdated):
			h.logger.Warn("POST /orders - selection outdated: facility=%d", req.FacilityID)
			handlers.RespondError(w, http.StatusConflict, msgSelectionOutdated)

		case errors.Is(err, orders.ErrBookingConflict):
			// Сообщение платформы о конфликте отдается дословно
			h.logger.Warn("POST /orders - booking conflict: facility=%d: %v", req.FacilityID, err)
			handlers.RespondError(w, http.StatusConflict, err.Error())
			h.invalidate(useCaseReq)

		case errors.Is(err, orders.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, orders.ErrUnauthorized):
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, orders.ErrPlatformUnavailable):
			handlers.RespondServiceUnavailable(w, msgPlatformUnavailable)

		default:
			h.logger.Error("POST /orders - failed: facility=%d: %v", req.FacilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Доступность изменилась на платформе: сбрасываем кеш
	h.invalidate(useCaseReq)

	h.logger.Info("POST /orders - order created: identifier=%s facility=%d", result.OrderIdentifier, req.FacilityID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

func (h *Handler) invalidate(req *prepareOrder.Request) {
	switch req.ItemType {
	case domain.OrderTypeSlotBooking, domain.OrderTypeEntryFee:
		h.caches.InvalidateAvailability(req.FacilityID, req.Date)
	case domain.OrderTypeSubscription:
		h.caches.InvalidateMatrix(req.FacilityID)
	}
}
