package ratelimiter

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedWindowLimiter_EnforcesLimit(t *testing.T) {
	rl := NewFixedWindowLimiter(5, time.Minute)

	allowed := 0
	for i := 0; i < 10; i++ {
		if ok, _ := rl.Allow("10.0.0.1"); ok {
			allowed++
		}
	}

	assert.Equal(t, 5, allowed)

	ok, retryAfter := rl.Allow("10.0.0.1")
	assert.False(t, ok)
	assert.Equal(t, time.Minute, retryAfter)

	// other clients are unaffected
	ok, _ = rl.Allow("10.0.0.2")
	assert.True(t, ok)
}

func TestFixedWindowLimiter_ConcurrentRequestsStayWithinBudget(t *testing.T) {
	const limit = 10
	rl := NewFixedWindowLimiter(limit, time.Minute)

	var allowed atomic.Int64
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := rl.Allow("10.0.0.1"); ok {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(limit), allowed.Load())
}

func TestFixedWindowLimiter_WindowResets(t *testing.T) {
	rl := NewFixedWindowLimiter(1, 20*time.Millisecond)

	ok, _ := rl.Allow("10.0.0.1")
	assert.True(t, ok)
	ok, _ = rl.Allow("10.0.0.1")
	assert.False(t, ok)

	time.Sleep(50 * time.Millisecond)

	ok, _ = rl.Allow("10.0.0.1")
	assert.True(t, ok)
}
