package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"mentorhub/core/constants"

	"github.com/google/uuid"
)

// countingLookup records every batch it serves and can be made to fail or
// stall on demand.
type countingLookup struct {
	mu      sync.Mutex
	names   map[uuid.UUID]string
	err     error
	block   chan struct{}
	calls   int
	fetched map[uuid.UUID]int
}

func newCountingLookup() *countingLookup {
	return &countingLookup{
		names:   make(map[uuid.UUID]string),
		fetched: make(map[uuid.UUID]int),
	}
}

func (l *countingLookup) LookupNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	if l.block != nil {
		<-l.block
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls++
	out := make(map[uuid.UUID]string, len(ids))
	for _, id := range ids {
		l.fetched[id]++
		if name, ok := l.names[id]; ok {
			out[id] = name
		}
	}
	return out, l.err
}

func TestResolve_BatchesAndCaches(t *testing.T) {
	lookup := newCountingLookup()
	a, b := uuid.New(), uuid.New()
	lookup.names[a] = "Ada Lovelace"
	lookup.names[b] = "Grace Hopper"

	r := NewCoachNameResolver(NewNameCache(time.Minute), lookup)

	got := r.Resolve(context.Background(), []uuid.UUID{a, b, a})
	if got[a] != "Ada Lovelace" || got[b] != "Grace Hopper" {
		t.Fatalf("Resolve = %v", got)
	}
	if lookup.calls != 1 {
		t.Errorf("expected one batched fetch, got %d", lookup.calls)
	}

	// Second resolve is served from cache entirely.
	r.Resolve(context.Background(), []uuid.UUID{a, b})
	if lookup.calls != 1 {
		t.Errorf("cached resolve should not fetch, calls = %d", lookup.calls)
	}
}

func TestResolve_FailureYieldsUnknownAndIsRetried(t *testing.T) {
	lookup := newCountingLookup()
	id := uuid.New()
	lookup.names[id] = "Ada Lovelace"
	lookup.err = errors.New("profile store down")

	r := NewCoachNameResolver(NewNameCache(time.Minute), lookup)

	got := r.Resolve(context.Background(), []uuid.UUID{id})
	if got[id] != constants.UnknownCoachName {
		t.Fatalf("failed lookup should yield %q, got %q", constants.UnknownCoachName, got[id])
	}

	// The failure is not cached: the next call fetches again.
	lookup.err = nil
	got = r.Resolve(context.Background(), []uuid.UUID{id})
	if got[id] != "Ada Lovelace" {
		t.Errorf("recovered lookup should resolve, got %q", got[id])
	}
	if lookup.calls != 2 {
		t.Errorf("expected a retry fetch, calls = %d", lookup.calls)
	}
}

func TestResolve_MissingIDYieldsUnknown(t *testing.T) {
	lookup := newCountingLookup()
	known, missing := uuid.New(), uuid.New()
	lookup.names[known] = "Ada Lovelace"

	r := NewCoachNameResolver(NewNameCache(time.Minute), lookup)
	got := r.Resolve(context.Background(), []uuid.UUID{known, missing})
	if got[known] != "Ada Lovelace" {
		t.Errorf("known id = %q", got[known])
	}
	if got[missing] != constants.UnknownCoachName {
		t.Errorf("missing id = %q, want %q", got[missing], constants.UnknownCoachName)
	}
}

func TestResolve_ExpiredEntryIsRefetched(t *testing.T) {
	lookup := newCountingLookup()
	id := uuid.New()
	lookup.names[id] = "Ada Lovelace"

	cache := NewNameCache(10 * time.Millisecond)
	r := NewCoachNameResolver(cache, lookup)

	r.Resolve(context.Background(), []uuid.UUID{id})
	time.Sleep(20 * time.Millisecond)
	r.Resolve(context.Background(), []uuid.UUID{id})

	if lookup.calls != 2 {
		t.Errorf("expired entry should be refetched, calls = %d", lookup.calls)
	}
}

func TestResolve_ConcurrentCallsFetchEachIDOnce(t *testing.T) {
	lookup := newCountingLookup()
	id := uuid.New()
	lookup.names[id] = "Ada Lovelace"
	lookup.block = make(chan struct{})

	r := NewCoachNameResolver(NewNameCache(time.Minute), lookup)

	const callers = 8
	var wg sync.WaitGroup
	results := make([]map[uuid.UUID]string, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = r.Resolve(context.Background(), []uuid.UUID{id})
		}(i)
	}

	// Let every goroutine either own the fetch or queue behind it.
	time.Sleep(20 * time.Millisecond)
	close(lookup.block)
	wg.Wait()

	for i, got := range results {
		if got[id] != "Ada Lovelace" {
			t.Errorf("caller %d got %q", i, got[id])
		}
	}
	if n := lookup.fetched[id]; n != 1 {
		t.Errorf("id fetched %d times, want 1", n)
	}
}

func TestNameCache_Reset(t *testing.T) {
	lookup := newCountingLookup()
	id := uuid.New()
	lookup.names[id] = "Ada Lovelace"

	cache := NewNameCache(time.Minute)
	r := NewCoachNameResolver(cache, lookup)

	r.Resolve(context.Background(), []uuid.UUID{id})
	cache.Reset()
	r.Resolve(context.Background(), []uuid.UUID{id})

	if lookup.calls != 2 {
		t.Errorf("reset cache should refetch, calls = %d", lookup.calls)
	}
}
