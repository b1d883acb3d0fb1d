package prepare_order

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bronsport/unisport-gateway/internal/domain"
	"github.com/bronsport/unisport-gateway/internal/integrations/unisport"
	"github.com/bronsport/unisport-gateway/internal/service/orders"
	"github.com/bronsport/unisport-gateway/pkg/types"
)

type testLogger struct{}

func (testLogger) Info(string, ...interface{})  {}
func (testLogger) Warn(string, ...interface{})  {}
func (testLogger) Error(string, ...interface{}) {}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type fakeFacilities struct {
	facility *domain.Facility
	err      error
}

func (f *fakeFacilities) GetFacility(ctx context.Context, id int64) (*domain.Facility, error) {
	return f.facility, f.err
}

type fakeAvailability struct {
	daily  *domain.DailyAvailability
	matrix *domain.SubscriptionMatrix
	err    error
}

func (f *fakeAvailability) DailyAvailability(ctx context.Context, id int64, date time.Time) (*domain.DailyAvailability, error) {
	return f.daily, f.err
}

func (f *fakeAvailability) SubscriptionMatrix(ctx context.Context, id int64) (*domain.SubscriptionMatrix, error) {
	return f.matrix, f.err
}

type fakeOrders struct {
	id      string
	err     error
	lastReq unisport.PrepareOrderRequest
}

func (f *fakeOrders) Prepare(ctx context.Context, token string, req unisport.PrepareOrderRequest) (string, error) {
	f.lastReq = req
	return f.id, f.err
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func slotFacility() *domain.Facility {
	return &domain.Facility{
		ID:           7,
		BookingType:  domain.BookingTypeExclusiveSlot,
		PricePerHour: 50000,
	}
}

func availableDaily(times ...string) *domain.DailyAvailability {
	var slots []domain.AvailabilitySlot
	for _, t := range times {
		slots = append(slots, domain.AvailabilitySlot{Time: types.TimeString(t), IsAvailable: true})
	}
	return &domain.DailyAvailability{Slots: slots}
}

func newUC(f *fakeFacilities, a *fakeAvailability, o *fakeOrders, now time.Time) *UseCase {
	uc := NewUseCase(f, a, o, testLogger{})
	uc.timeProvider = fixedTime{now}
	return uc
}

func TestExecuteSlotBooking(t *testing.T) {
	now := date(2024, 3, 14)
	ordersSvc := &fakeOrders{id: "ord-1"}
	uc := newUC(
		&fakeFacilities{facility: slotFacility()},
		&fakeAvailability{daily: availableDaily("10:00", "11:00")},
		ordersSvc,
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{
		Token:      "tok",
		ItemType:   domain.OrderTypeSlotBooking,
		FacilityID: 7,
		Date:       date(2024, 3, 15),
		Slots:      []types.TimeString{"11:00", "10:00"},
	})
	require.NoError(t, err)
	assert.Equal(t, "ord-1", resp.OrderIdentifier)
	assert.Equal(t, 100000.0, resp.TotalPrice)

	// payload отсортирован по возрастанию
	assert.Equal(t, []string{"10:00", "11:00"}, ordersSvc.lastReq.Slots)
	assert.Equal(t, "2024-03-15", ordersSvc.lastReq.Date)
	assert.Equal(t, "slot_booking", ordersSvc.lastReq.ItemType)
}

func TestExecuteRejectsPastDate(t *testing.T) {
	uc := newUC(&fakeFacilities{}, &fakeAvailability{}, &fakeOrders{}, date(2024, 3, 15))

	_, err := uc.Execute(context.Background(), &Request{
		ItemType:   domain.OrderTypeSlotBooking,
		FacilityID: 7,
		Date:       date(2024, 3, 14),
		Slots:      []types.TimeString{"10:00"},
	})
	assert.ErrorIs(t, err, ErrPastDate)
}

func TestExecuteRejectsStaleSlot(t *testing.T) {
	uc := newUC(
		&fakeFacilities{facility: slotFacility()},
		&fakeAvailability{daily: availableDaily("10:00")},
		&fakeOrders{},
		date(2024, 3, 14),
	)

	_, err := uc.Execute(context.Background(), &Request{
		ItemType:   domain.OrderTypeSlotBooking,
		FacilityID: 7,
		Date:       date(2024, 3, 15),
		Slots:      []types.TimeString{"10:00", "11:00"},
	})
	assert.ErrorIs(t, err, ErrSelectionOutdated)
}

func TestExecuteRejectsIncompatibleType(t *testing.T) {
	entry := slotFacility()
	entry.BookingType = domain.BookingTypeEntryFee
	uc := newUC(&fakeFacilities{facility: entry}, &fakeAvailability{}, &fakeOrders{}, date(2024, 3, 14))

	_, err := uc.Execute(context.Background(), &Request{
		ItemType:   domain.OrderTypeSlotBooking,
		FacilityID: 7,
		Date:       date(2024, 3, 15),
		Slots:      []types.TimeString{"10:00"},
	})
	assert.ErrorIs(t, err, ErrIncompatibleBookingType)
}

func TestExecuteEntryFeeRejectsSlots(t *testing.T) {
	uc := newUC(&fakeFacilities{}, &fakeAvailability{}, &fakeOrders{}, date(2024, 3, 14))

	_, err := uc.Execute(context.Background(), &Request{
		ItemType:   domain.OrderTypeEntryFee,
		FacilityID: 7,
		Date:       date(2024, 3, 15),
		Slots:      []types.TimeString{"10:00"},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecuteSubscription(t *testing.T) {
	facility := slotFacility()
	matrix := &domain.SubscriptionMatrix{
		Cells: map[domain.Weekday]map[types.TimeString]domain.MatrixCell{
			domain.Monday: {"18:00": {IsAvailable: true}},
		},
	}
	ordersSvc := &fakeOrders{id: "ord-sub"}
	uc := newUC(&fakeFacilities{facility: facility}, &fakeAvailability{matrix: matrix}, ordersSvc, date(2023, 12, 1))

	resp, err := uc.Execute(context.Background(), &Request{
		Token:      "tok",
		ItemType:   domain.OrderTypeSubscription,
		FacilityID: 7,
		StartDate:  date(2024, 1, 1),
		Months:     1,
		DaysOfWeek: []domain.Weekday{domain.Monday},
		StartTimes: []types.TimeString{"18:00"},
	})
	require.NoError(t, err)
	// январь 2024: 5 понедельников
	assert.Equal(t, 250000.0, resp.TotalPrice)
	assert.Equal(t, "2024-01-01", ordersSvc.lastReq.StartDate)
	assert.Equal(t, []int{0}, ordersSvc.lastReq.DaysOfWeek)
	assert.Equal(t, 1, ordersSvc.lastReq.Months)
}

func TestExecuteSubscriptionStaleTime(t *testing.T) {
	matrix := &domain.SubscriptionMatrix{
		Cells: map[domain.Weekday]map[types.TimeString]domain.MatrixCell{
			domain.Monday: {"18:00": {IsAvailable: true}},
		},
	}
	uc := newUC(&fakeFacilities{facility: slotFacility()}, &fakeAvailability{matrix: matrix}, &fakeOrders{}, date(2023, 12, 1))

	_, err := uc.Execute(context.Background(), &Request{
		ItemType:   domain.OrderTypeSubscription,
		FacilityID: 7,
		StartDate:  date(2024, 1, 1),
		Months:     1,
		DaysOfWeek: []domain.Weekday{domain.Monday},
		StartTimes: []types.TimeString{"18:00", "19:00"},
	})
	assert.ErrorIs(t, err, ErrSelectionOutdated)
}

func TestExecuteInvalidMonths(t *testing.T) {
	uc := newUC(&fakeFacilities{}, &fakeAvailability{}, &fakeOrders{}, date(2023, 12, 1))

	_, err := uc.Execute(context.Background(), &Request{
		ItemType:   domain.OrderTypeSubscription,
		FacilityID: 7,
		StartDate:  date(2024, 1, 1),
		Months:     5,
		DaysOfWeek: []domain.Weekday{domain.Monday},
		StartTimes: []types.TimeString{"18:00"},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecutePassesThroughConflict(t *testing.T) {
	conflict := &orders.ConflictError{Detail: "Slot 10:00 was just booked by another user"}
	uc := newUC(
		&fakeFacilities{facility: slotFacility()},
		&fakeAvailability{daily: availableDaily("10:00")},
		&fakeOrders{err: conflict},
		date(2024, 3, 14),
	)

	_, err := uc.Execute(context.Background(), &Request{
		Token:      "tok",
		ItemType:   domain.OrderTypeSlotBooking,
		FacilityID: 7,
		Date:       date(2024, 3, 15),
		Slots:      []types.TimeString{"10:00"},
	})
	require.ErrorIs(t, err, orders.ErrBookingConflict)
	assert.Equal(t, conflict.Detail, err.Error())
}

func TestExecuteFacilityNotFound(t *testing.T) {
	uc := newUC(&fakeFacilities{err: unisport.ErrNotFound}, &fakeAvailability{}, &fakeOrders{}, date(2024, 3, 14))

	_, err := uc.Execute(context.Background(), &Request{
		ItemType:   domain.OrderTypeEntryFee,
		FacilityID: 99,
		Date:       date(2024, 3, 15),
	})
	assert.ErrorIs(t, err, ErrFacilityNotFound)
}
