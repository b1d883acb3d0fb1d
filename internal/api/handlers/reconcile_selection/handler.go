package reconcile_selection

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/bronsport/unisport-gateway/internal/api/handlers"
	"github.com/bronsport/unisport-gateway/internal/domain"
	"github.com/bronsport/unisport-gateway/internal/integrations/unisport"
	"github.com/bronsport/unisport-gateway/internal/service/selection"
	"github.com/bronsport/unisport-gateway/pkg/types"
)

const (
	msgInvalidFacilityID   = "некорректный идентификатор объекта"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime         = "некорректный формат времени, ожидается HH:MM"
	msgInvalidOp           = "неизвестная операция над выбором"
	msgFacilityNotFound    = "спортивный объект не найден"
	msgPlatformUnavailable = "платформа бронирования временно недоступна"
)

// Handler применяет операцию к выбору пользователя и возвращает согласованный
// с доступностью результат. Шлюз не хранит выбор: клиент присылает его целиком
// и получает обратно вместе с уведомлениями.
type Handler struct {
	catalog      CatalogService
	timeProvider TimeProvider
	logger       Logger
}

func NewHandler(catalog CatalogService, logger Logger) *Handler {
	return &Handler{
		catalog:      catalog,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Handle POST /api/v1/facilities/{facilityId}/selection/reconcile
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	facilityID, err := strconv.ParseInt(mux.Vars(r)["facilityId"], 10, 64)
	if err != nil || facilityID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	var req ReconcileRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /facilities/%d/selection/reconcile - invalid body: %v", facilityID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var resp *ReconcileResponse
	switch req.Kind {
	case KindSlot:
		resp, err = h.handleSlot(r, facilityID, &req)
	case KindEntry:
		resp, err = h.handleEntry(&req)
	case KindSubscription:
		resp, err = h.handleSubscription(r, facilityID, &req)
	default:
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err != nil {
		h.respondError(w, facilityID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleSlot(r *http.Request, facilityID int64, req *ReconcileRequest) (*ReconcileResponse, error) {
	sel, err := req.Selection.toSlotSelection()
	if err != nil {
		return nil, errBadSelection
	}
	today := h.timeProvider.Now()

	var res selection.Result[selection.SlotSelection]
	switch req.Action.Op {
	case OpSelectDate:
		date, err := time.Parse(domain.DateFormat, req.Action.Date)
		if err != nil {
			return nil, errBadDate
		}
		res = selection.SelectSlotDate(sel, date, today)

	case OpToggleSlot:
		t, err := types.NewTimeStringFromString(req.Action.Time)
		if err != nil {
			return nil, errBadTime
		}
		avail, err := h.availabilityFor(r, facilityID, sel.Date)
		if err != nil {
			return nil, err
		}
		res = selection.ToggleSlot(sel, t, avail)

	case OpRefresh:
		avail, err := h.availabilityFor(r, facilityID, sel.Date)
		if err != nil {
			return nil, err
		}
		res = selection.ReconcileSlots(sel, avail)

	default:
		return nil, errBadOp
	}

	return &ReconcileResponse{
		Selection: fromSlotSelection(res.Selection),
		Notices:   notices(res.Notices),
	}, nil
}

func (h *Handler) handleEntry(req *ReconcileRequest) (*ReconcileResponse, error) {
	date, err := parseDate(req.Selection.Date)
	if err != nil {
		return nil, errBadSelection
	}
	sel := selection.EntrySelection{Date: date}

	switch req.Action.Op {
	case OpSelectDate:
		next, err := time.Parse(domain.DateFormat, req.Action.Date)
		if err != nil {
			return nil, errBadDate
		}
		res := selection.SelectEntryDate(sel, next, h.timeProvider.Now())
		return &ReconcileResponse{
			Selection: fromEntrySelection(res.Selection),
			Notices:   notices(res.Notices),
		}, nil
	default:
		return nil, errBadOp
	}
}

func (h *Handler) handleSubscription(r *http.Request, facilityID int64, req *ReconcileRequest) (*ReconcileResponse, error) {
	sel, err := req.Selection.toSubscriptionSelection()
	if err != nil {
		return nil, errBadSelection
	}
	today := h.timeProvider.Now()

	var res selection.Result[selection.SubscriptionSelection]
	switch req.Action.Op {
	case OpSelectStartDate:
		date, err := time.Parse(domain.DateFormat, req.Action.Date)
		if err != nil {
			return nil, errBadDate
		}
		res = selection.SelectStartDate(sel, date, today)

	case OpSelectMonths:
		res = selection.SelectMonths(sel, req.Action.Months)

	case OpToggleDay:
		if req.Action.Day == nil || !domain.Weekday(*req.Action.Day).Valid() {
			return nil, errBadSelection
		}
		matrix, err := h.catalog.SubscriptionMatrix(r.Context(), facilityID)
		if err != nil {
			return nil, err
		}
		res = selection.ToggleDay(sel, domain.Weekday(*req.Action.Day), matrix)

	case OpToggleTime:
		t, err := types.NewTimeStringFromString(req.Action.Time)
		if err != nil {
			return nil, errBadTime
		}
		matrix, err := h.catalog.SubscriptionMatrix(r.Context(), facilityID)
		if err != nil {
			return nil, err
		}
		res = selection.ToggleTime(sel, t, matrix)

	case OpRefresh:
		matrix, err := h.catalog.SubscriptionMatrix(r.Context(), facilityID)
		if err != nil {
			return nil, err
		}
		res = selection.Reconcile(sel, matrix)

	default:
		return nil, errBadOp
	}

	return &ReconcileResponse{
		Selection: fromSubscriptionSelection(res.Selection),
		Notices:   notices(res.Notices),
	}, nil
}

func (h *Handler) availabilityFor(r *http.Request, facilityID int64, date time.Time) (*domain.DailyAvailability, error) {
	if date.IsZero() {
		// Без даты переключать слоты нельзя
		return nil, errBadSelection
	}
	return h.catalog.DailyAvailability(r.Context(), facilityID, date)
}

var (
	errBadSelection = errors.New("bad selection")
	errBadDate      = errors.New("bad date")
	errBadTime      = errors.New("bad time")
	errBadOp        = errors.New("bad op")
)

func (h *Handler) respondError(w http.ResponseWriter, facilityID int64, err error) {
	switch {
	case errors.Is(err, errBadDate):
		handlers.RespondBadRequest(w, msgInvalidDate)
	case errors.Is(err, errBadTime):
		handlers.RespondBadRequest(w, msgInvalidTime)
	case errors.Is(err, errBadOp):
		handlers.RespondBadRequest(w, msgInvalidOp)
	case errors.Is(err, errBadSelection):
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
	case errors.Is(err, unisport.ErrNotFound):
		h.logger.Warn("POST /facilities/%d/selection/reconcile - facility not found", facilityID)
		handlers.RespondNotFound(w, msgFacilityNotFound)
	case errors.Is(err, unisport.ErrUnavailable):
		h.logger.Error("POST /facilities/%d/selection/reconcile - platform unavailable: %v", facilityID, err)
		handlers.RespondServiceUnavailable(w, msgPlatformUnavailable)
	default:
		h.logger.Error("POST /facilities/%d/selection/reconcile - failed: %v", facilityID, err)
		handlers.RespondInternalError(w)
	}
}

// notices гарантирует [] вместо null в JSON
func notices(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
