package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucket_TakeUntilEmpty(t *testing.T) {
	b := newBucket(3, 0.001)

	for i := 0; i < 3; i++ {
		allowed, _, _ := b.take()
		assert.True(t, allowed, "draw %d should be allowed", i)
	}

	allowed, remaining, _ := b.take()
	assert.False(t, allowed)
	assert.Equal(t, 0, remaining)
}

func TestBucket_Refill(t *testing.T) {
	b := newBucket(2, 100) // 100 tokens/sec refills fast enough to observe

	allowed, _, _ := b.take()
	require.True(t, allowed)
	allowed, _, _ = b.take()
	require.True(t, allowed)
	allowed, _, _ = b.take()
	require.False(t, allowed)

	time.Sleep(30 * time.Millisecond)

	allowed, _, _ = b.take()
	assert.True(t, allowed, "bucket should refill over time")
}

func TestBucket_ResetTime(t *testing.T) {
	b := newBucket(5, 1)

	_, _, resetAt := b.take()
	assert.True(t, resetAt.After(time.Now()), "partially drained bucket resets in the future")
}

func newTestLimiter(cfg *Config) *Limiter {
	if cfg != nil && cfg.Whitelist == nil {
		cfg.Whitelist = make(map[string]bool)
	}
	if cfg != nil && cfg.Blacklist == nil {
		cfg.Blacklist = make(map[string]bool)
	}
	return NewLimiter(cfg)
}

func TestLimiter_Allow(t *testing.T) {
	l := newTestLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  3,
		DefaultWindow: time.Minute,
	})
	defer l.Stop()

	for i := 0; i < 3; i++ {
		allowed, info := l.Allow("1.2.3.4", "/questions", "GET")
		assert.True(t, allowed)
		assert.Equal(t, 3, info.Limit)
	}

	allowed, info := l.Allow("1.2.3.4", "/questions", "GET")
	assert.False(t, allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.GreaterOrEqual(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	l := newTestLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
	})
	defer l.Stop()

	allowed, _ := l.Allow("1.1.1.1", "/questions", "GET")
	require.True(t, allowed)
	allowed, _ = l.Allow("1.1.1.1", "/questions", "GET")
	require.False(t, allowed)

	allowed, _ = l.Allow("2.2.2.2", "/questions", "GET")
	assert.True(t, allowed, "a second client has its own bucket")
}

func TestLimiter_Whitelist(t *testing.T) {
	l := newTestLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{"10.0.0.1": true},
	})
	defer l.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := l.Allow("10.0.0.1", "/questions", "GET")
		assert.True(t, allowed, "whitelisted client is never limited")
	}
}

func TestLimiter_Blacklist(t *testing.T) {
	l := newTestLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Blacklist:     map[string]bool{"6.6.6.6": true},
	})
	defer l.Stop()

	allowed, info := l.Allow("6.6.6.6", "/questions", "GET")
	assert.False(t, allowed)
	assert.False(t, info.Allowed)
}

func TestLimiter_Disabled(t *testing.T) {
	l := newTestLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/questions", "GET")
		assert.True(t, allowed)
	}
}

func TestLimiter_EndpointSpecific(t *testing.T) {
	l := newTestLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/auth/login", Method: "POST", Limit: 2, Window: time.Minute, Burst: 2},
		},
	})
	defer l.Stop()

	allowed, _ := l.Allow("1.2.3.4", "/auth/login", "POST")
	require.True(t, allowed)
	allowed, _ = l.Allow("1.2.3.4", "/auth/login", "POST")
	require.True(t, allowed)
	allowed, info := l.Allow("1.2.3.4", "/auth/login", "POST")
	assert.False(t, allowed, "login endpoint has a tighter limit")
	assert.Equal(t, 2, info.Limit)

	// Other endpoints still use the permissive default.
	allowed, _ = l.Allow("1.2.3.4", "/questions", "GET")
	assert.True(t, allowed)
}

func TestLimiter_BurstBelowLimit(t *testing.T) {
	l := newTestLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/analysis/", Method: "POST", Limit: 60, Window: time.Minute, Burst: 3},
		},
	})
	defer l.Stop()

	granted := 0
	for i := 0; i < 10; i++ {
		if allowed, _ := l.Allow("1.2.3.4", "/analysis/gap", "POST"); allowed {
			granted++
		}
	}
	assert.Equal(t, 3, granted, "burst caps immediate draws below the per-minute limit")
}

func TestLimiter_HealthUnlimited(t *testing.T) {
	l := newTestLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
	})
	defer l.Stop()

	for i := 0; i < 50; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/health", "GET")
		assert.True(t, allowed)
	}
}

func TestLimiter_Concurrent(t *testing.T) {
	l := newTestLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Hour, // negligible refill during the test
	})
	defer l.Stop()

	var wg sync.WaitGroup
	var mu sync.Mutex
	granted := 0

	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if allowed, _ := l.Allow("1.2.3.4", "/questions", "GET"); allowed {
				mu.Lock()
				granted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, granted, "concurrent draws never exceed capacity")
}

func TestLimiter_Reap(t *testing.T) {
	l := newTestLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
	})
	defer l.Stop()

	l.Allow("1.2.3.4", "/questions", "GET")
	l.Allow("5.6.7.8", "/questions", "GET")

	l.mu.RLock()
	assert.Len(t, l.buckets, 2)
	l.mu.RUnlock()

	// A cutoff in the future makes every bucket idle.
	l.reap(time.Now().Add(time.Minute))

	l.mu.RLock()
	assert.Empty(t, l.buckets)
	l.mu.RUnlock()
}

func TestNewLimiter_NilConfig(t *testing.T) {
	l := NewLimiter(nil)
	defer l.Stop()

	allowed, _ := l.Allow("1.2.3.4", "/questions", "GET")
	assert.True(t, allowed)
}

func TestMatchEndpoint(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/auth/login", Method: "POST", Limit: 20, Window: time.Minute},
		{Path: "/questions/", Method: "POST", Limit: 100, Window: time.Minute},
	}

	t.Run("exact match", func(t *testing.T) {
		c := MatchEndpoint("/auth/login", "POST", configs)
		require.NotNil(t, c)
		assert.Equal(t, 20, c.Limit)
	})

	t.Run("prefix match", func(t *testing.T) {
		c := MatchEndpoint("/questions/42/answers", "POST", configs)
		require.NotNil(t, c)
		assert.Equal(t, 100, c.Limit)
	})

	t.Run("method mismatch", func(t *testing.T) {
		assert.Nil(t, MatchEndpoint("/auth/login", "GET", configs))
	})

	t.Run("health is unlimited", func(t *testing.T) {
		c := MatchEndpoint("/health", "GET", configs)
		require.NotNil(t, c)
		assert.Equal(t, 0, c.Limit)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Nil(t, MatchEndpoint("/leaderboard", "GET", configs))
	})
}
