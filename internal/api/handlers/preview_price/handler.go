package preview_price

import (
	"errors"
	"net/http"

	"github.com/bronsport/unisport-gateway/internal/api/handlers"
	previewPrice "github.com/bronsport/unisport-gateway/internal/usecase/preview_price"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgFacilityNotFound   = "спортивный объект не найден"
	msgPriceUnavailable   = "стоимость недоступна для текущего выбора"
)

type Handler struct {
	useCase PreviewPriceUseCase
	logger  Logger
}

func NewHandler(useCase PreviewPriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/price-preview
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req PreviewPriceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /price-preview - invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /price-preview - failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, previewPrice.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
		case errors.Is(err, previewPrice.ErrFacilityNotFound):
			handlers.RespondNotFound(w, msgFacilityNotFound)
		case errors.Is(err, previewPrice.ErrPriceUnavailable):
			// Нулевая цена никогда не подставляется вместо ошибки
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgPriceUnavailable)
		default:
			h.logger.Error("POST /price-preview - failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
