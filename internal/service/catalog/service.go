// Package catalog доступ к данным каталога платформы через кеш: карточки
// объектов, дневная доступность и матрицы абонементов. При открытии объекта
// запускается фоновый прогрев доступности на ближайшие даты.
package catalog

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bronsport/unisport-gateway/internal/domain"
	"github.com/bronsport/unisport-gateway/internal/infra/availcache"
)

// Service кеширующий фасад каталога
type Service struct {
	facilities *availcache.Cache[*domain.Facility]
	daily      *availcache.Cache[*domain.DailyAvailability]
	matrix     *availcache.Cache[*domain.SubscriptionMatrix]

	prefetchDays int
	logger       Logger
}

// Options параметры кешей каталога
type Options struct {
	FacilityTTL  time.Duration
	DailyTTL     time.Duration
	MatrixTTL    time.Duration
	PrefetchDays int
}

// NewService создает сервис каталога. metrics может быть nil.
func NewService(client PlatformClient, opts Options, logger Logger, metrics availcache.Observer) *Service {
	s := &Service{
		prefetchDays: opts.PrefetchDays,
		logger:       logger,
	}
	s.facilities = availcache.New("facility", opts.FacilityTTL, func(ctx context.Context, key string) (*domain.Facility, error) {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad facility cache key %q: %w", key, err)
		}
		return client.GetFacility(ctx, id)
	}, logger, metrics)
	s.daily = availcache.New("daily", opts.DailyTTL, func(ctx context.Context, key string) (*domain.DailyAvailability, error) {
		id, date, err := parseDailyKey(key)
		if err != nil {
			return nil, err
		}
		return client.GetDailyAvailability(ctx, id, date)
	}, logger, metrics)
	s.matrix = availcache.New("matrix", opts.MatrixTTL, func(ctx context.Context, key string) (*domain.SubscriptionMatrix, error) {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad matrix cache key %q: %w", key, err)
		}
		return client.GetSubscriptionMatrix(ctx, id)
	}, logger, metrics)
	return s
}

// GetFacility возвращает карточку объекта
func (s *Service) GetFacility(ctx context.Context, facilityID int64) (*domain.Facility, error) {
	return s.facilities.Get(ctx, strconv.FormatInt(facilityID, 10))
}

// DailyAvailability возвращает дневную доступность объекта
func (s *Service) DailyAvailability(ctx context.Context, facilityID int64, date time.Time) (*domain.DailyAvailability, error) {
	return s.daily.Get(ctx, dailyKey(facilityID, date))
}

// SubscriptionMatrix возвращает матрицу доступности абонемента
func (s *Service) SubscriptionMatrix(ctx context.Context, facilityID int64) (*domain.SubscriptionMatrix, error) {
	return s.matrix.Get(ctx, strconv.FormatInt(facilityID, 10))
}

// PrefetchAvailability прогревает доступность объекта на ближайшие даты,
// начиная с from. Выполняется в фоне, ошибки только логируются.
func (s *Service) PrefetchAvailability(ctx context.Context, facilityID int64, from time.Time) {
	if s.prefetchDays <= 0 {
		return
	}
	keys := make([]string, 0, s.prefetchDays)
	for i := 0; i < s.prefetchDays; i++ {
		keys = append(keys, dailyKey(facilityID, from.AddDate(0, 0, i)))
	}
	s.logger.Debug("catalog: prefetching %d days of availability for facility=%d", len(keys), facilityID)
	s.daily.Prefetch(ctx, keys)
}

// InvalidateAvailability сбрасывает кеш доступности объекта на дату.
// Вызывается после успешного создания заказа.
func (s *Service) InvalidateAvailability(facilityID int64, date time.Time) {
	s.daily.Invalidate(dailyKey(facilityID, date))
}

// InvalidateMatrix сбрасывает кеш матрицы объекта
func (s *Service) InvalidateMatrix(facilityID int64) {
	s.matrix.Invalidate(strconv.FormatInt(facilityID, 10))
}

func dailyKey(facilityID int64, date time.Time) string {
	return strconv.FormatInt(facilityID, 10) + "|" + date.Format(domain.DateFormat)
}

func parseDailyKey(key string) (int64, time.Time, error) {
	parts := strings.SplitN(key, "|", 2)
	if len(parts) != 2 {
		return 0, time.Time{}, fmt.Errorf("bad daily cache key %q", key)
	}
	id, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("bad daily cache key %q: %w", key, err)
	}
	date, err := time.Parse(domain.DateFormat, parts[1])
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("bad daily cache key %q: %w", key, err)
	}
	return id, date, nil
}
