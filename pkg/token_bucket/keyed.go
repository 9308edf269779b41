package token_bucket

import (
	"sync"
	"time"
)

type keyedBucket struct {
	bucket   *TokenBucket
	lastSeen time.Time
}

// Keyed отдельный TokenBucket на каждый ключ (например, профиль устройства).
// Ведра без запросов дольше idleTTL удаляются при очередном Allow.
type Keyed struct {
	capacity   int
	refillRate float64
	idleTTL    time.Duration

	mu        sync.Mutex
	buckets   map[string]*keyedBucket
	lastPrune time.Time
}

func NewKeyed(capacity int, refillRate float64, idleTTL time.Duration) *Keyed {
	return &Keyed{
		capacity:   capacity,
		refillRate: refillRate,
		idleTTL:    idleTTL,
		buckets:    make(map[string]*keyedBucket),
		lastPrune:  time.Now(),
	}
}

func (k *Keyed) Allow(key string) bool {
	now := time.Now()

	k.mu.Lock()
	if k.idleTTL > 0 && now.Sub(k.lastPrune) >= k.idleTTL {
		k.pruneLocked(now)
	}

	entry, ok := k.buckets[key]
	if !ok {
		entry = &keyedBucket{bucket: NewTokenBucket(k.capacity, k.refillRate)}
		k.buckets[key] = entry
	}
	entry.lastSeen = now
	k.mu.Unlock()

	return entry.bucket.Allow()
}

func (k *Keyed) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()

	return len(k.buckets)
}

func (k *Keyed) pruneLocked(now time.Time) {
	for key, entry := range k.buckets {
		if now.Sub(entry.lastSeen) >= k.idleTTL {
			delete(k.buckets, key)
		}
	}
	k.lastPrune = now
}
