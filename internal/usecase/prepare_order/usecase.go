package prepare_order

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/bronsport/unisport-gateway/internal/domain"
	"github.com/bronsport/unisport-gateway/internal/integrations/unisport"
	"github.com/bronsport/unisport-gateway/internal/service/pricing"
	"github.com/bronsport/unisport-gateway/internal/service/selection"
	"github.com/bronsport/unisport-gateway/pkg/types"
)

// UseCase use case создания заказа: валидация, сверка выбора со свежей
// доступностью и передача заказа платформе
type UseCase struct {
	facilities   FacilityProvider
	availability AvailabilityProvider
	orders       OrderService
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	facilities FacilityProvider,
	availability AvailabilityProvider,
	orders OrderService,
	logger Logger,
) *UseCase {
	return &UseCase{
		facilities:   facilities,
		availability: availability,
		orders:       orders,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания заказа
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("PrepareOrder: type=%s facility=%d", req.ItemType, req.FacilityID)

	// 1. Валидация формы запроса
	now := uc.timeProvider.Now()
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("PrepareOrder: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем объект и проверяем совместимость типа заказа
	facility, err := uc.facilities.GetFacility(ctx, req.FacilityID)
	if err != nil {
		if errors.Is(err, unisport.ErrNotFound) {
			uc.logger.Warn("PrepareOrder: facility id=%d not found", req.FacilityID)
			return nil, ErrFacilityNotFound
		}
		uc.logger.Error("PrepareOrder: failed to get facility id=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}
	if err := uc.checkCompatibility(facility, req.ItemType); err != nil {
		uc.logger.Warn("PrepareOrder: facility id=%d (%s) rejects %s", facility.ID, facility.BookingType, req.ItemType)
		return nil, err
	}

	// 3. Сверяем выбор со свежей доступностью и считаем цену для ответа
	total, err := uc.reconcileAndPrice(ctx, facility, req)
	if err != nil {
		return nil, err
	}

	// 4. Передаем заказ платформе. Ошибки сервиса заказов (конфликт,
	// авторизация) пробрасываются без пересказа.
	payload := buildPayload(req)
	id, err := uc.orders.Prepare(ctx, req.Token, payload)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("PrepareOrder: order created, identifier=%s total=%.2f", id, total)
	return &Response{OrderIdentifier: id, TotalPrice: total}, nil
}

func (uc *UseCase) checkCompatibility(facility *domain.Facility, itemType domain.OrderType) error {
	switch itemType {
	case domain.OrderTypeEntryFee:
		if facility.BookingType != domain.BookingTypeEntryFee {
			return ErrIncompatibleBookingType
		}
	case domain.OrderTypeSlotBooking:
		if !facility.SupportsSlotBooking() {
			return ErrIncompatibleBookingType
		}
	case domain.OrderTypeSubscription:
		if !facility.SupportsSubscription() {
			return ErrIncompatibleBookingType
		}
	}
	return nil
}

// reconcileAndPrice проверяет выбор против свежей доступности и возвращает
// предварительную стоимость. Устаревший выбор отклоняется до похода за заказом.
func (uc *UseCase) reconcileAndPrice(ctx context.Context, facility *domain.Facility, req *Request) (float64, error) {
	switch req.ItemType {
	case domain.OrderTypeEntryFee:
		quote, err := pricing.EntryQuote(facility)
		if err != nil {
			return 0, fmt.Errorf("%w: price calculation failed: %v", ErrInternal, err)
		}
		return quote.Total, nil

	case domain.OrderTypeSlotBooking:
		avail, err := uc.availability.DailyAvailability(ctx, req.FacilityID, req.Date)
		if err != nil {
			uc.logger.Error("PrepareOrder: failed to get availability for facility=%d: %v", req.FacilityID, err)
			return 0, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
		}
		for _, slot := range req.Slots {
			if !avail.IsSlotAvailable(slot) {
				uc.logger.Warn("PrepareOrder: slot %s no longer available for facility=%d", slot, req.FacilityID)
				return 0, fmt.Errorf("%w: slot %s", ErrSelectionOutdated, slot)
			}
		}
		quote, err := pricing.SlotQuote(facility, selection.SlotSelection{Date: req.Date, Slots: req.Slots})
		if err != nil {
			return 0, fmt.Errorf("%w: price calculation failed: %v", ErrInternal, err)
		}
		return quote.Total, nil

	case domain.OrderTypeSubscription:
		matrix, err := uc.availability.SubscriptionMatrix(ctx, req.FacilityID)
		if err != nil {
			uc.logger.Error("PrepareOrder: failed to get subscription matrix for facility=%d: %v", req.FacilityID, err)
			return 0, fmt.Errorf("%w: failed to get subscription matrix: %v", ErrInternal, err)
		}
		for _, t := range req.StartTimes {
			if !matrix.TimeAvailableOnAnyDay(t, req.DaysOfWeek) {
				uc.logger.Warn("PrepareOrder: start time %s no longer available for facility=%d", t, req.FacilityID)
				return 0, fmt.Errorf("%w: start time %s", ErrSelectionOutdated, t)
			}
		}
		quote, err := pricing.SubscriptionQuote(facility, selection.SubscriptionSelection{
			StartDate:  req.StartDate,
			Months:     req.Months,
			DaysOfWeek: req.DaysOfWeek,
			StartTimes: req.StartTimes,
		})
		if err != nil {
			return 0, fmt.Errorf("%w: price calculation failed: %v", ErrInternal, err)
		}
		return quote.Total, nil
	}
	return 0, fmt.Errorf("%w: unknown item type %q", ErrInvalidInput, req.ItemType)
}

// buildPayload собирает запрос платформе. Слоты, дни и времена всегда
// отсортированы по возрастанию.
func buildPayload(req *Request) unisport.PrepareOrderRequest {
	out := unisport.PrepareOrderRequest{
		ItemType:   string(req.ItemType),
		FacilityID: req.FacilityID,
	}
	switch req.ItemType {
	case domain.OrderTypeEntryFee:
		out.Date = req.Date.Format(domain.DateFormat)
	case domain.OrderTypeSlotBooking:
		out.Date = req.Date.Format(domain.DateFormat)
		out.Slots = formatTimes(req.Slots)
	case domain.OrderTypeSubscription:
		out.StartDate = req.StartDate.Format(domain.DateFormat)
		out.Months = req.Months
		days := make([]int, 0, len(req.DaysOfWeek))
		for _, d := range req.DaysOfWeek {
			days = append(days, int(d))
		}
		sort.Ints(days)
		out.DaysOfWeek = days
		out.StartTimes = formatTimes(req.StartTimes)
	}
	return out
}

func formatTimes(list []types.TimeString) []string {
	out := make([]string, 0, len(list))
	for _, t := range list {
		out = append(out, t.String())
	}
	sort.Strings(out)
	return out
}
