package preview_price

import (
	"context"
	"errors"
	"fmt"

	"github.com/bronsport/unisport-gateway/internal/domain"
	"github.com/bronsport/unisport-gateway/internal/integrations/unisport"
	"github.com/bronsport/unisport-gateway/internal/service/pricing"
	"github.com/bronsport/unisport-gateway/internal/service/selection"
)

// UseCase use case расчета предварительной стоимости заказа
type UseCase struct {
	facilities FacilityProvider
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(facilities FacilityProvider, logger Logger) *UseCase {
	return &UseCase{
		facilities: facilities,
		logger:     logger,
	}
}

// Execute выполняет расчет цены для текущего выбора пользователя
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.FacilityID <= 0 {
		return nil, fmt.Errorf("%w: facility_id must be positive", ErrInvalidInput)
	}

	facility, err := uc.facilities.GetFacility(ctx, req.FacilityID)
	if err != nil {
		if errors.Is(err, unisport.ErrNotFound) {
			uc.logger.Warn("PreviewPrice: facility id=%d not found", req.FacilityID)
			return nil, ErrFacilityNotFound
		}
		uc.logger.Error("PreviewPrice: failed to get facility id=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	var quote pricing.Quote
	switch req.ItemType {
	case domain.OrderTypeEntryFee:
		quote, err = pricing.EntryQuote(facility)
	case domain.OrderTypeSlotBooking:
		quote, err = pricing.SlotQuote(facility, selection.SlotSelection{
			Date:  req.Date,
			Slots: req.Slots,
		})
	case domain.OrderTypeSubscription:
		quote, err = pricing.SubscriptionQuote(facility, selection.SubscriptionSelection{
			StartDate:  req.StartDate,
			Months:     req.Months,
			DaysOfWeek: req.DaysOfWeek,
			StartTimes: req.StartTimes,
		})
	default:
		return nil, fmt.Errorf("%w: unknown item type %q", ErrInvalidInput, req.ItemType)
	}
	if err != nil {
		uc.logger.Warn("PreviewPrice: cannot calculate price for facility=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: %v", ErrPriceUnavailable, err)
	}

	return &Response{
		Total:       quote.Total,
		RatePerHour: quote.RatePerHour,
		Occurrences: quote.Occurrences,
		Units:       quote.Units,
	}, nil
}
