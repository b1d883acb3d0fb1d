package get_availability

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/bronsport/unisport-gateway/internal/api/handlers"
	"github.com/bronsport/unisport-gateway/internal/domain"
	"github.com/bronsport/unisport-gateway/internal/integrations/unisport"
)

const (
	msgInvalidFacilityID   = "некорректный идентификатор объекта"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
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

// Handle GET /api/v1/facilities/{facilityId}/availability?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	facilityID, err := strconv.ParseInt(mux.Vars(r)["facilityId"], 10, 64)
	if err != nil || facilityID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	avail, err := h.catalog.DailyAvailability(r.Context(), facilityID, date)
	if err != nil {
		switch {
		case errors.Is(err, unisport.ErrNotFound):
			h.logger.Warn("GET /facilities/%d/availability - not found", facilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)
		case errors.Is(err, unisport.ErrUnavailable):
			h.logger.Error("GET /facilities/%d/availability - platform unavailable: %v", facilityID, err)
			handlers.RespondServiceUnavailable(w, msgPlatformUnavailable)
		default:
			h.logger.Error("GET /facilities/%d/availability - failed: %v", facilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Прогреваем окно вокруг запрошенной даты: пользователь листает
	// календарь, соседние даты запросят следующими
	h.catalog.PrefetchAvailability(context.WithoutCancel(r.Context()), facilityID, date)

	handlers.RespondJSON(w, http.StatusOK, FromDomain(avail))
}
