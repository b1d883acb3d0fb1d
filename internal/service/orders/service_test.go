package orders

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bronsport/unisport-gateway/internal/domain"
	"github.com/bronsport/unisport-gateway/internal/integrations/unisport"
	"github.com/bronsport/unisport-gateway/pkg/backoff"
)

type testLogger struct{}

func (testLogger) Info(string, ...interface{})  {}
func (testLogger) Warn(string, ...interface{})  {}
func (testLogger) Error(string, ...interface{}) {}

type fakeClient struct {
	prepareID    string
	prepareErr   error
	checkoutURL  string
	checkoutErr  error
	statusFn     func() (domain.OrderStatus, error)
	order        *domain.Order
	orderErr     error
	completeResp *unisport.CompleteOrderResponse
	completeErr  error
}

func (f *fakeClient) PrepareOrder(ctx context.Context, token string, req unisport.PrepareOrderRequest) (string, error) {
	return f.prepareID, f.prepareErr
}

func (f *fakeClient) GetCheckoutURL(ctx context.Context, token, id string) (string, error) {
	return f.checkoutURL, f.checkoutErr
}

func (f *fakeClient) GetOrderStatus(ctx context.Context, token, id string) (domain.OrderStatus, error) {
	return f.statusFn()
}

func (f *fakeClient) GetOrderByCode(ctx context.Context, token, code string) (*domain.Order, error) {
	return f.order, f.orderErr
}

func (f *fakeClient) CompleteOrder(ctx context.Context, token, code string) (*unisport.CompleteOrderResponse, error) {
	return f.completeResp, f.completeErr
}

func fastPolicy(attempts int) backoff.Policy {
	return backoff.Policy{
		Initial:     time.Millisecond,
		Max:         time.Millisecond,
		Multiplier:  1,
		MaxAttempts: attempts,
	}
}

func newService(c *fakeClient) *Service {
	return NewService(c, fastPolicy(3), time.Second, testLogger{}, nil)
}

func TestPrepare(t *testing.T) {
	t.Run("returns identifier", func(t *testing.T) {
		svc := newService(&fakeClient{prepareID: "ord-1"})
		id, err := svc.Prepare(context.Background(), "tok", unisport.PrepareOrderRequest{ItemType: "entry_fee"})
		require.NoError(t, err)
		assert.Equal(t, "ord-1", id)
	})

	t.Run("conflict message survives verbatim", func(t *testing.T) {
		const msg = "Slot 10:00 was just booked by another user"
		svc := newService(&fakeClient{prepareErr: &unisport.ConflictError{Detail: msg}})
		_, err := svc.Prepare(context.Background(), "tok", unisport.PrepareOrderRequest{})
		require.ErrorIs(t, err, ErrBookingConflict)
		assert.Equal(t, msg, err.Error())
	})

	t.Run("unauthorized mapped", func(t *testing.T) {
		svc := newService(&fakeClient{prepareErr: unisport.ErrUnauthorized})
		_, err := svc.Prepare(context.Background(), "", unisport.PrepareOrderRequest{})
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestCheckoutURL(t *testing.T) {
	svc := newService(&fakeClient{checkoutURL: "https://checkout.paycom.uz/x"})
	u, err := svc.CheckoutURL(context.Background(), "tok", "ord-1")
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.paycom.uz/x", u)
}

func TestStatusRetriesOnUnavailable(t *testing.T) {
	calls := 0
	svc := newService(&fakeClient{statusFn: func() (domain.OrderStatus, error) {
		calls++
		if calls < 3 {
			return "", unisport.ErrUnavailable
		}
		return domain.StatusConfirmed, nil
	}})

	st, err := svc.Status(context.Background(), "tok", "ord-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, st)
	assert.Equal(t, 3, calls)
}

func TestStatusRetriesWhileProcessing(t *testing.T) {
	calls := 0
	svc := newService(&fakeClient{statusFn: func() (domain.OrderStatus, error) {
		calls++
		if calls == 1 {
			return "", unisport.ErrPending
		}
		return domain.StatusConfirmed, nil
	}})

	st, err := svc.Status(context.Background(), "tok", "ord-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, st)
	assert.Equal(t, 2, calls)
}

func TestStatusStillProcessingAfterBudget(t *testing.T) {
	calls := 0
	svc := newService(&fakeClient{statusFn: func() (domain.OrderStatus, error) {
		calls++
		return "", unisport.ErrPending
	}})

	_, err := svc.Status(context.Background(), "tok", "ord-1")
	assert.ErrorIs(t, err, ErrPlatformUnavailable)
	assert.Equal(t, 3, calls)
}

func TestStatusGivesUpAfterMaxAttempts(t *testing.T) {
	calls := 0
	svc := newService(&fakeClient{statusFn: func() (domain.OrderStatus, error) {
		calls++
		return "", unisport.ErrUnavailable
	}})

	_, err := svc.Status(context.Background(), "tok", "ord-1")
	assert.ErrorIs(t, err, ErrPlatformUnavailable)
	assert.Equal(t, 3, calls)
}

func TestStatusDoesNotRetryNotFound(t *testing.T) {
	calls := 0
	svc := newService(&fakeClient{statusFn: func() (domain.OrderStatus, error) {
		calls++
		return "", unisport.ErrNotFound
	}})

	_, err := svc.Status(context.Background(), "tok", "ord-x")
	assert.ErrorIs(t, err, ErrOrderNotFound)
	assert.Equal(t, 1, calls)
}

func TestCheckinDetails(t *testing.T) {
	t.Run("returns order", func(t *testing.T) {
		order := &domain.Order{OrderCode: "AB12CD", OrderType: domain.OrderTypeEntryFee}
		svc := newService(&fakeClient{order: order})
		got, err := svc.CheckinDetails(context.Background(), "staff", "AB12CD")
		require.NoError(t, err)
		assert.Equal(t, "AB12CD", got.OrderCode)
	})

	t.Run("unknown code", func(t *testing.T) {
		svc := newService(&fakeClient{orderErr: unisport.ErrNotFound})
		_, err := svc.CheckinDetails(context.Background(), "staff", "NOPE")
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})

	t.Run("non-staff token", func(t *testing.T) {
		svc := newService(&fakeClient{orderErr: unisport.ErrForbidden})
		_, err := svc.CheckinDetails(context.Background(), "user", "AB12CD")
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestCheckinComplete(t *testing.T) {
	t.Run("completed", func(t *testing.T) {
		svc := newService(&fakeClient{completeResp: &unisport.CompleteOrderResponse{
			Message: "Заказ завершен",
			Status:  "completed",
		}})
		res, err := svc.CheckinComplete(context.Background(), "staff", "AB12CD")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCompleted, res.Status)
		assert.False(t, res.AlreadyCompleted)
	})

	t.Run("already completed is not an error", func(t *testing.T) {
		svc := newService(&fakeClient{completeResp: &unisport.CompleteOrderResponse{
			Message:          "Заказ уже был завершен",
			Status:           "completed",
			AlreadyCompleted: true,
		}})
		res, err := svc.CheckinComplete(context.Background(), "staff", "AB12CD")
		require.NoError(t, err)
		assert.True(t, res.AlreadyCompleted)
	})

	t.Run("platform validation error keeps message", func(t *testing.T) {
		svc := newService(&fakeClient{completeErr: &unisport.ValidationError{
			Detail: "Subscription orders cannot be completed at the gate",
		}})
		_, err := svc.CheckinComplete(context.Background(), "staff", "AB12CD")
		require.ErrorIs(t, err, ErrInvalidInput)
		assert.Equal(t, "Subscription orders cannot be completed at the gate", err.Error())
	})
}
