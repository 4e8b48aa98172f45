// Package ratelimiter implements a token bucket limiter with one bucket per
// key. Idle buckets expire so the map does not grow with every caller ever
// seen.
package ratelimiter

import (
	"sync"
	"time"
)

// bucket is the token bucket for a single key.
type bucket struct {
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
	timer      *time.Timer
	key        string
	parent     *KeyedLimiter
}

// KeyedLimiter manages rate limiting across many keys.
type KeyedLimiter struct {
	buckets    map[string]*bucket
	mu         sync.RWMutex
	rate       float64
	capacity   float64
	expiration time.Duration
}

// New creates a KeyedLimiter refilling rate tokens per second up to capacity.
// Buckets idle for expiration are dropped.
func New(rate, capacity float64, expiration time.Duration) *KeyedLimiter {
	return &KeyedLimiter{
		buckets:    make(map[string]*bucket),
		rate:       rate,
		capacity:   capacity,
		expiration: expiration,
	}
}

// cleanup removes the bucket for a key once its expiry timer fires.
func (kl *KeyedLimiter) cleanup(key string) {
	kl.mu.Lock()
	delete(kl.buckets, key)
	kl.mu.Unlock()
}

// resetTimer pushes the bucket's expiry out by the limiter's expiration.
func (b *bucket) resetTimer() {
	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(b.parent.expiration, func() {
		b.parent.cleanup(b.key)
	})
}

// getBucket gets or creates the bucket for a key.
func (kl *KeyedLimiter) getBucket(key string) *bucket {
	kl.mu.RLock()
	b, exists := kl.buckets[key]
	kl.mu.RUnlock()

	if exists {
		b.resetTimer()
		return b
	}

	kl.mu.Lock()
	defer kl.mu.Unlock()

	// Double-check after acquiring the write lock
	b, exists = kl.buckets[key]
	if exists {
		b.resetTimer()
		return b
	}

	b = &bucket{
		tokens:     kl.capacity,
		lastRefill: time.Now(),
		key:        key,
		parent:     kl,
	}
	kl.buckets[key] = b
	b.resetTimer()

	return b
}

func (b *bucket) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(b.lastRefill).Seconds()

	b.tokens += elapsed * b.parent.rate
	if b.tokens > b.parent.capacity {
		b.tokens = b.parent.capacity
	}
	b.lastRefill = now

	if b.tokens >= 1 {
		b.tokens--
		return true
	}

	return false
}

// Allow reports whether a request under key should go through, consuming a
// token when it does.
func (kl *KeyedLimiter) Allow(key string) bool {
	return kl.getBucket(key).allow()
}

// Stop cancels all expiry timers.
func (kl *KeyedLimiter) Stop() {
	kl.mu.Lock()
	defer kl.mu.Unlock()

	for _, b := range kl.buckets {
		if b.timer != nil {
			b.timer.Stop()
		}
	}
}
