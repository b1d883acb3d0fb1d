package get_subscription_matrix

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bronsport/unisport-gateway/internal/api/handlers"
	"github.com/bronsport/unisport-gateway/internal/integrations/unisport"
)

const (
	msgInvalidFacilityID   = "некорректный идентификатор объекта"
	msgFacilityNotFound    = "спортивный объект не найден"
	msgPlatformUnavailable = "платформа бронирования временно недоступна"
)

type Handler struct {
	catalog CatalogService
	logger  Logger
}

func NewHandler(catalog CatalogService, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/facilities/{facilityId}/subscription-availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	facilityID, err := strconv.ParseInt(mux.Vars(r)["facilityId"], 10, 64)
	if err != nil || facilityID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	matrix, err := h.catalog.SubscriptionMatrix(r.Context(), facilityID)
	if err != nil {
		switch {
		case errors.Is(err, unisport.ErrNotFound):
			h.logger.Warn("GET /facilities/%d/subscription-availability - not found", facilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)
		case errors.Is(err, unisport.ErrUnavailable):
			h.logger.Error("GET /facilities/%d/subscription-availability - platform unavailable: %v", facilityID, err)
			handlers.RespondServiceUnavailable(w, msgPlatformUnavailable)
		default:
			h.logger.Error("GET /facilities/%d/subscription-availability - failed: %v", facilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(matrix))
}
