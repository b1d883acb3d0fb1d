// Package orders сервис работы с заказами: создание, платежная ссылка,
// опрос статуса и check-in на проходной. Все решения о жизненном цикле
// заказа принимает платформа, сервис переводит ее ответы и ошибки в
// термины шлюза.
package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bronsport/unisport-gateway/internal/domain"
	"github.com/bronsport/unisport-gateway/internal/integrations/unisport"
	"github.com/bronsport/unisport-gateway/pkg/backoff"
)

// CheckinResult итог завершения заказа на проходной
type CheckinResult struct {
	Message string
	Status  domain.OrderStatus
	// AlreadyCompleted повторное сканирование завершенного заказа.
	// Это уведомление для стойки, не ошибка.
	AlreadyCompleted bool
}

// Service сервис заказов
type Service struct {
	client PlatformClient
	poll   backoff.Policy
	// checkoutTimeout бюджет на получение платежной ссылки; 0 - без ограничения
	checkoutTimeout time.Duration
	logger          Logger
	metrics         Metrics
}

// NewService создает новый экземпляр сервиса заказов. metrics может быть nil.
func NewService(client PlatformClient, poll backoff.Policy, checkoutTimeout time.Duration, logger Logger, metrics Metrics) *Service {
	return &Service{
		client:          client,
		poll:            poll,
		checkoutTimeout: checkoutTimeout,
		logger:          logger,
		metrics:         metrics,
	}
}

// Prepare создает заказ на платформе и возвращает его идентификатор
func (s *Service) Prepare(ctx context.Context, token string, req unisport.PrepareOrderRequest) (string, error) {
	s.logger.Info("Prepare: creating %s order for facility=%d", req.ItemType, req.FacilityID)

	start := time.Now()
	id, err := s.client.PrepareOrder(ctx, token, req)
	s.observe("prepare_order", err, start)
	if err != nil {
		if errors.Is(err, unisport.ErrConflict) {
			s.logger.Warn("Prepare: booking conflict for facility=%d: %v", req.FacilityID, err)
			return "", &ConflictError{Detail: err.Error()}
		}
		return "", s.mapClientError("Prepare", err)
	}

	s.logger.Info("Prepare: order created, identifier=%s", id)
	return id, nil
}

// CheckoutURL получает платежную ссылку Payme для заказа
func (s *Service) CheckoutURL(ctx context.Context, token string, orderIdentifier string) (string, error) {
	s.logger.Info("CheckoutURL: requesting checkout url for order=%s", orderIdentifier)

	if s.checkoutTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.checkoutTimeout)
		defer cancel()
	}

	start := time.Now()
	url, err := s.client.GetCheckoutURL(ctx, token, orderIdentifier)
	s.observe("get_checkout_url", err, start)
	if err != nil {
		return "", s.mapClientError("CheckoutURL", err)
	}
	return url, nil
}

// Status получает статус оплаты заказа. Сетевые ошибки, 5xx платформы и 202
// (заказ еще обрабатывается) ретраятся с экспоненциальной задержкой до
// исчерпания попыток.
func (s *Service) Status(ctx context.Context, token string, orderIdentifier string) (domain.OrderStatus, error) {
	var status domain.OrderStatus

	err := s.poll.Retry(ctx, func(ctx context.Context) (bool, error) {
		start := time.Now()
		st, err := s.client.GetOrderStatus(ctx, token, orderIdentifier)
		s.observe("get_order_status", err, start)
		if err != nil {
			if errors.Is(err, unisport.ErrUnavailable) || errors.Is(err, unisport.ErrPending) {
				s.logger.Warn("Status: order=%s not ready, will retry: %v", orderIdentifier, err)
				return true, err
			}
			return false, err
		}
		status = st
		return false, nil
	})
	if err != nil {
		return "", s.mapClientError("Status", err)
	}

	return status, nil
}

// CheckinDetails получает детали заказа по короткому коду для стойки check-in
func (s *Service) CheckinDetails(ctx context.Context, staffToken string, orderCode string) (*domain.Order, error) {
	s.logger.Info("CheckinDetails: looking up order code=%s", orderCode)

	start := time.Now()
	order, err := s.client.GetOrderByCode(ctx, staffToken, orderCode)
	s.observe("checkin_details", err, start)
	if err != nil {
		return nil, s.mapClientError("CheckinDetails", err)
	}
	return order, nil
}

// CheckinComplete отмечает заказ завершенным на проходной.
// Повторное завершение - уведомление, не ошибка.
func (s *Service) CheckinComplete(ctx context.Context, staffToken string, orderCode string) (*CheckinResult, error) {
	s.logger.Info("CheckinComplete: completing order code=%s", orderCode)

	start := time.Now()
	resp, err := s.client.CompleteOrder(ctx, staffToken, orderCode)
	s.observe("checkin_complete", err, start)
	if err != nil {
		return nil, s.mapClientError("CheckinComplete", err)
	}

	result := &CheckinResult{
		Message:          resp.Message,
		Status:           domain.OrderStatus(resp.Status),
		AlreadyCompleted: resp.AlreadyCompleted,
	}
	s.logger.Info("CheckinComplete: order code=%s status=%s already_completed=%v",
		orderCode, result.Status, result.AlreadyCompleted)
	return result, nil
}

// mapClientError переводит ошибки клиента платформы в ошибки сервиса
func (s *Service) mapClientError(op string, err error) error {
	switch {
	case errors.Is(err, unisport.ErrNotFound):
		s.logger.Warn("%s: not found: %v", op, err)
		return ErrOrderNotFound
	case errors.Is(err, unisport.ErrUnauthorized):
		return ErrUnauthorized
	case errors.Is(err, unisport.ErrForbidden):
		return ErrForbidden
	case errors.Is(err, unisport.ErrValidation):
		s.logger.Warn("%s: rejected by platform: %v", op, err)
		return &InputError{Detail: err.Error()}
	case errors.Is(err, unisport.ErrUnavailable):
		s.logger.Error("%s: platform unavailable: %v", op, err)
		return fmt.Errorf("%w: %v", ErrPlatformUnavailable, err)
	case errors.Is(err, unisport.ErrPending):
		// Заказ не дождался обработки за бюджет опроса
		s.logger.Warn("%s: order still processing after poll budget: %v", op, err)
		return fmt.Errorf("%w: %v", ErrPlatformUnavailable, err)
	default:
		s.logger.Error("%s: unexpected error: %v", op, err)
		return fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
	}
}

func (s *Service) observe(operation string, err error, start time.Time) {
	if s.metrics == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	s.metrics.ObserveUpstream(operation, outcome, time.Since(start))
}
