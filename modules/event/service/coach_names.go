package service

import (
	"context"
	"sync"
	"time"

	"mentorhub/core/constants"
	"mentorhub/core/logger"

	"github.com/google/uuid"
)

// ProfileLookup is the profile store contract the resolver depends on.
type ProfileLookup interface {
	LookupNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
}

type nameEntry struct {
	name      string
	expiresAt time.Time
}

// NameCache is the shared coach-name cache. It is injected rather than
// package-level so tests can build a fresh one per case. Entries expire
// after the TTL and the map is swept when it grows past maxEntries, so a
// long-lived process cannot grow it without bound.
type NameCache struct {
	ttl        time.Duration
	maxEntries int

	mu       sync.Mutex
	entries  map[uuid.UUID]nameEntry
	inflight map[uuid.UUID]chan struct{}
}

const defaultMaxNameEntries = 4096

func NewNameCache(ttl time.Duration) *NameCache {
	return &NameCache{
		ttl:        ttl,
		maxEntries: defaultMaxNameEntries,
		entries:    make(map[uuid.UUID]nameEntry),
		inflight:   make(map[uuid.UUID]chan struct{}),
	}
}

// Reset drops every cached entry. Tests only; in-flight fetches are
// unaffected.
func (c *NameCache) Reset() {
	c.mu.Lock()
	c.entries = make(map[uuid.UUID]nameEntry)
	c.mu.Unlock()
}

func (c *NameCache) get(id uuid.UUID, now time.Time) (string, bool) {
	e, ok := c.entries[id]
	if !ok || now.After(e.expiresAt) {
		return "", false
	}
	return e.name, true
}

func (c *NameCache) set(id uuid.UUID, name string, now time.Time) {
	if len(c.entries) >= c.maxEntries {
		for k, e := range c.entries {
			if now.After(e.expiresAt) {
				delete(c.entries, k)
			}
		}
	}
	c.entries[id] = nameEntry{name: name, expiresAt: now.Add(c.ttl)}
}

// CoachNameResolver resolves coach ids to display names through the
// profile store, memoizing results and coalescing concurrent fetches so a
// given id is never fetched twice at the same time.
type CoachNameResolver struct {
	cache  *NameCache
	lookup ProfileLookup
}

func NewCoachNameResolver(cache *NameCache, lookup ProfileLookup) *CoachNameResolver {
	return &CoachNameResolver{cache: cache, lookup: lookup}
}

// Resolve returns a name for every requested id. Failures never propagate:
// a failed or missing lookup yields the Unknown sentinel for the affected
// ids, because a missing coach name must never block rendering. Failed ids
// are not cached, so the next call retries them.
func (r *CoachNameResolver) Resolve(ctx context.Context, ids []uuid.UUID) map[uuid.UUID]string {
	result := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return result
	}

	now := time.Now()
	var owned []uuid.UUID
	waiting := make(map[uuid.UUID]chan struct{})

	r.cache.mu.Lock()
	for _, id := range ids {
		if _, done := result[id]; done {
			continue
		}
		if name, ok := r.cache.get(id, now); ok {
			result[id] = name
			continue
		}
		if ch, ok := r.cache.inflight[id]; ok {
			waiting[id] = ch
			continue
		}
		ch := make(chan struct{})
		r.cache.inflight[id] = ch
		owned = append(owned, id)
	}
	r.cache.mu.Unlock()

	// One batched fetch for every id this call owns. Ids owned by a
	// concurrent call are waited on below instead of refetched.
	if len(owned) > 0 {
		names, err := r.lookup.LookupNames(ctx, owned)
		fetched := time.Now()

		r.cache.mu.Lock()
		for _, id := range owned {
			if err == nil {
				if name, ok := names[id]; ok && name != "" {
					r.cache.set(id, name, fetched)
					result[id] = name
				} else {
					result[id] = constants.UnknownCoachName
				}
			} else {
				result[id] = constants.UnknownCoachName
			}
			close(r.cache.inflight[id])
			delete(r.cache.inflight, id)
		}
		r.cache.mu.Unlock()

		if err != nil {
			logger.Warn("CoachNameResolver:Resolve:LookupFailed", "error", err, "ids", len(owned))
		}
	}

	for id, ch := range waiting {
		select {
		case <-ch:
			r.cache.mu.Lock()
			if name, ok := r.cache.get(id, time.Now()); ok {
				result[id] = name
			} else {
				result[id] = constants.UnknownCoachName
			}
			r.cache.mu.Unlock()
		case <-ctx.Done():
			result[id] = constants.UnknownCoachName
		}
	}

	return result
}
