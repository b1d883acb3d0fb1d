package get_facility

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

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

// Handle GET /api/v1/facilities/{facilityId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	facilityID, err := strconv.ParseInt(mux.Vars(r)["facilityId"], 10, 64)
	if err != nil || facilityID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	facility, err := h.catalog.GetFacility(r.Context(), facilityID)
	if err != nil {
		switch {
		case errors.Is(err, unisport.ErrNotFound):
			h.logger.Warn("GET /facilities/%d - not found", facilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)
		case errors.Is(err, unisport.ErrUnavailable):
			h.logger.Error("GET /facilities/%d - platform unavailable: %v", facilityID, err)
			handlers.RespondServiceUnavailable(w, msgPlatformUnavailable)
		default:
			h.logger.Error("GET /facilities/%d - failed: %v", facilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Прогреваем доступность на ближайшие даты в фоне; контекст запроса
	// отвязывается, чтобы прогрев пережил ответ
	h.catalog.PrefetchAvailability(context.WithoutCancel(r.Context()), facilityID, time.Now())

	handlers.RespondJSON(w, http.StatusOK, FromDomain(facility))
}
