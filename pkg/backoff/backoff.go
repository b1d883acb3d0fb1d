package backoff

import (
	"context"
	"time"
)

// Policy экспоненциальный backoff с верхней границей интервала и общим бюджетом попыток.
// Интервал перед попыткой n равен Initial * Multiplier^(n-1), но не больше Max.
type Policy struct {
	Initial     time.Duration
	Max         time.Duration
	Multiplier  float64
	MaxAttempts int // 0 = без ограничения по числу попыток
}

// DefaultPolicy политика опроса статуса заказа: 2s, 4s, 8s, 16s, 30s, 30s...
var DefaultPolicy = Policy{
	Initial:     2 * time.Second,
	Max:         30 * time.Second,
	Multiplier:  2,
	MaxAttempts: 8,
}

// Delay возвращает паузу перед попыткой attempt (нумерация с 1)
func (p Policy) Delay(attempt int) time.Duration {
	if attempt <= 1 {
		return p.Initial
	}
	d := float64(p.Initial)
	for i := 1; i < attempt; i++ {
		d *= p.Multiplier
		if time.Duration(d) >= p.Max {
			return p.Max
		}
	}
	return time.Duration(d)
}

// Retry вызывает fn до первого успеха. fn возвращает (retry, err):
// retry=false останавливает цикл независимо от err.
// Между попытками выдерживается пауза по политике; отмена контекста прерывает ожидание.
func (p Policy) Retry(ctx context.Context, fn func(ctx context.Context) (retry bool, err error)) error {
	attempt := 0
	for {
		attempt++

		retry, err := fn(ctx)
		if !retry {
			return err
		}
		if p.MaxAttempts > 0 && attempt >= p.MaxAttempts {
			return err
		}

		timer := time.NewTimer(p.Delay(attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
