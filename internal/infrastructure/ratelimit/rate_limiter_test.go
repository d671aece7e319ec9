package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowExhaustsBucket(t *testing.T) {
	rl := NewRateLimiter()

	for i := 0; i < 10; i++ {
		ok, _ := rl.Allow("10.0.0.1", "login")
		require.True(t, ok, "attempt %d should pass", i+1)
	}

	ok, wait := rl.Allow("10.0.0.1", "login")
	assert.False(t, ok)
	assert.Greater(t, wait, time.Duration(0))
}

func TestAllowKeysByClientAndAction(t *testing.T) {
	rl := NewRateLimiter()

	for i := 0; i < 10; i++ {
		rl.Allow("10.0.0.1", "login")
	}

	ok, _ := rl.Allow("10.0.0.2", "login")
	assert.True(t, ok, "another client keeps its own bucket")

	ok, _ = rl.Allow("10.0.0.1", "signup")
	assert.True(t, ok, "another action keeps its own bucket")
}

func TestCleanupEvictsIdleBuckets(t *testing.T) {
	rl := NewRateLimiter()
	rl.Allow("10.0.0.1", "login")
	rl.Allow("10.0.0.2", "login")

	rl.mutex.Lock()
	stale := rl.buckets["10.0.0.1:login"]
	rl.mutex.Unlock()
	stale.mutex.Lock()
	stale.lastRefill = time.Now().Add(-2 * time.Hour)
	stale.mutex.Unlock()

	rl.Cleanup()

	rl.mutex.RLock()
	defer rl.mutex.RUnlock()
	assert.NotContains(t, rl.buckets, "10.0.0.1:login")
	assert.Contains(t, rl.buckets, "10.0.0.2:login")
}

// Cleanup runs on its own goroutine while requests call Allow; both touch
// lastRefill, so drive them together for the race detector.
func TestCleanupConcurrentWithAllow(t *testing.T) {
	rl := NewRateLimiter()

	var wg sync.WaitGroup
	done := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
				rl.Cleanup()
			}
		}
	}()

	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			key := fmt.Sprintf("10.0.0.%d", g)
			for i := 0; i < 200; i++ {
				rl.Allow(key, "login")
			}
		}(g)
	}

	time.Sleep(10 * time.Millisecond)
	close(done)
	wg.Wait()
}
