package pricing

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bronsport/unisport-gateway/internal/domain"
	"github.com/bronsport/unisport-gateway/internal/service/selection"
	"github.com/bronsport/unisport-gateway/pkg/types"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func exclusiveFacility(rate float64) *domain.Facility {
	return &domain.Facility{
		ID:           1,
		BookingType:  domain.BookingTypeExclusiveSlot,
		PricePerHour: rate,
	}
}

func TestSlotQuote(t *testing.T) {
	t.Run("rate times slot count", func(t *testing.T) {
		sel := selection.SlotSelection{
			Date:  date(2024, 3, 15),
			Slots: []types.TimeString{"10:00", "11:00"},
		}
		q, err := SlotQuote(exclusiveFacility(50000), sel)
		require.NoError(t, err)
		assert.Equal(t, 100000.0, q.Total)
		assert.Equal(t, 2, q.Units)
	})

	t.Run("empty selection is an error, never zero", func(t *testing.T) {
		_, err := SlotQuote(exclusiveFacility(50000), selection.SlotSelection{})
		assert.ErrorIs(t, err, ErrEmptySelection)
	})

	t.Run("zero rate is an error", func(t *testing.T) {
		sel := selection.SlotSelection{Slots: []types.TimeString{"10:00"}}
		_, err := SlotQuote(exclusiveFacility(0), sel)
		assert.ErrorIs(t, err, ErrInvalidRate)
	})

	t.Run("NaN rate is an error", func(t *testing.T) {
		sel := selection.SlotSelection{Slots: []types.TimeString{"10:00"}}
		_, err := SlotQuote(exclusiveFacility(math.NaN()), sel)
		assert.ErrorIs(t, err, ErrInvalidRate)
	})

	t.Run("entry-fee facility rejected", func(t *testing.T) {
		f := exclusiveFacility(50000)
		f.BookingType = domain.BookingTypeEntryFee
		_, err := SlotQuote(f, selection.SlotSelection{Slots: []types.TimeString{"10:00"}})
		assert.ErrorIs(t, err, ErrUnsupportedBookingType)
	})
}

func TestEntryQuote(t *testing.T) {
	f := exclusiveFacility(30000)
	f.BookingType = domain.BookingTypeEntryFee
	q, err := EntryQuote(f)
	require.NoError(t, err)
	assert.Equal(t, 30000.0, q.Total)
	assert.Equal(t, 1, q.Units)
}

func TestCountOccurrences(t *testing.T) {
	// январь 2024: понедельники 1, 8, 15, 22, 29
	start := date(2024, 1, 1)
	end := date(2024, 1, 31)

	assert.Equal(t, 5, CountOccurrences(start, end, []domain.Weekday{domain.Monday}))
	assert.Equal(t, 4, CountOccurrences(start, end, []domain.Weekday{domain.Sunday}))
	assert.Equal(t, 9, CountOccurrences(start, end, []domain.Weekday{domain.Monday, domain.Sunday}))
	assert.Equal(t, 0, CountOccurrences(start, end, nil))
}

func TestSubscriptionQuote(t *testing.T) {
	base := selection.SubscriptionSelection{
		StartDate:  date(2024, 1, 1),
		Months:     1,
		DaysOfWeek: []domain.Weekday{domain.Monday},
		StartTimes: []types.TimeString{"18:00"},
	}

	t.Run("rate times occurrences times start times", func(t *testing.T) {
		// период 2024-01-01..2024-01-31, 5 понедельников
		q, err := SubscriptionQuote(exclusiveFacility(50000), base)
		require.NoError(t, err)
		assert.Equal(t, 250000.0, q.Total)
		assert.Equal(t, 5, q.Occurrences)
	})

	t.Run("two start times double the price", func(t *testing.T) {
		sel := base
		sel.StartTimes = []types.TimeString{"18:00", "19:00"}
		q, err := SubscriptionQuote(exclusiveFacility(50000), sel)
		require.NoError(t, err)
		assert.Equal(t, 500000.0, q.Total)
	})

	t.Run("invalid months", func(t *testing.T) {
		sel := base
		sel.Months = 5
		_, err := SubscriptionQuote(exclusiveFacility(50000), sel)
		assert.ErrorIs(t, err, ErrInvalidPeriod)
	})

	t.Run("empty days", func(t *testing.T) {
		sel := base
		sel.DaysOfWeek = nil
		_, err := SubscriptionQuote(exclusiveFacility(50000), sel)
		assert.ErrorIs(t, err, ErrEmptySelection)
	})

	t.Run("negative rate", func(t *testing.T) {
		_, err := SubscriptionQuote(exclusiveFacility(-1), base)
		assert.ErrorIs(t, err, ErrInvalidRate)
	})
}
