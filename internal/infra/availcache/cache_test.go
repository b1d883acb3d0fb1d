package availcache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLogger struct{}

func (testLogger) Debug(string, ...any) {}
func (testLogger) Warn(string, ...any)  {}
func (testLogger) Error(string, ...any) {}

func TestGetCachesWithinTTL(t *testing.T) {
	calls := 0
	c := New("daily", time.Minute, func(ctx context.Context, key string) (string, error) {
		calls++
		return "value-" + key, nil
	}, testLogger{}, nil)

	v, err := c.Get(context.Background(), "7:2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, "value-7:2024-03-15", v)

	v, err = c.Get(context.Background(), "7:2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, "value-7:2024-03-15", v)
	assert.Equal(t, 1, calls)
}

func TestGetRefreshesAfterTTL(t *testing.T) {
	calls := 0
	c := New("daily", time.Minute, func(ctx context.Context, key string) (string, error) {
		calls++
		return "v", nil
	}, testLogger{}, nil)

	now := time.Now()
	c.now = func() time.Time { return now }

	_, err := c.Get(context.Background(), "k")
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = c.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestFailedRefreshServesStale(t *testing.T) {
	fail := false
	c := New("daily", time.Minute, func(ctx context.Context, key string) (string, error) {
		if fail {
			return "", errors.New("platform down")
		}
		return "good", nil
	}, testLogger{}, nil)

	now := time.Now()
	c.now = func() time.Time { return now }

	_, err := c.Get(context.Background(), "k")
	require.NoError(t, err)

	// TTL истек, платформа недоступна: отдаем устаревшее значение без ошибки
	now = now.Add(2 * time.Minute)
	fail = true
	v, err := c.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, "good", v)
}

func TestMissWithFailedFetchReturnsError(t *testing.T) {
	c := New("daily", time.Minute, func(ctx context.Context, key string) (string, error) {
		return "", errors.New("platform down")
	}, testLogger{}, nil)

	_, err := c.Get(context.Background(), "k")
	assert.Error(t, err)
}

func TestLaterIssuedRequestWins(t *testing.T) {
	// Первый запрос медленный, второй быстрый. Результат первого приходит
	// позже, но записан должен остаться результат второго.
	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})
	call := 0
	var mu sync.Mutex

	c := New("daily", time.Nanosecond, func(ctx context.Context, key string) (string, error) {
		mu.Lock()
		call++
		n := call
		mu.Unlock()
		if n == 1 {
			close(firstStarted)
			<-releaseFirst
			return "old", nil
		}
		return "new", nil
	}, testLogger{}, nil)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		v, err := c.Get(context.Background(), "k")
		assert.NoError(t, err)
		assert.Equal(t, "old", v)
	}()

	<-firstStarted
	v, err := c.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, "new", v)

	close(releaseFirst)
	wg.Wait()

	// Запоздавший "old" не должен перезаписать "new"
	stored, state := c.Peek("k")
	assert.NotEqual(t, StateMiss, state)
	assert.Equal(t, "new", stored)
}

func TestInvalidate(t *testing.T) {
	calls := 0
	c := New("matrix", time.Minute, func(ctx context.Context, key string) (string, error) {
		calls++
		return "v", nil
	}, testLogger{}, nil)

	_, err := c.Get(context.Background(), "k")
	require.NoError(t, err)

	c.Invalidate("k")
	_, state := c.Peek("k")
	assert.Equal(t, StateMiss, state)

	_, err = c.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestPrefetchSkipsFreshKeys(t *testing.T) {
	var mu sync.Mutex
	fetched := map[string]int{}
	done := make(chan string, 8)

	c := New("daily", time.Minute, func(ctx context.Context, key string) (string, error) {
		mu.Lock()
		fetched[key]++
		mu.Unlock()
		done <- key
		return "v", nil
	}, testLogger{}, nil)

	_, err := c.Get(context.Background(), "fresh")
	require.NoError(t, err)
	<-done

	c.Prefetch(context.Background(), []string{"fresh", "cold"})

	select {
	case key := <-done:
		assert.Equal(t, "cold", key)
	case <-time.After(time.Second):
		t.Fatal("prefetch did not fetch cold key")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, fetched["fresh"])
	assert.Equal(t, 1, fetched["cold"])
}
