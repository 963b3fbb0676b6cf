package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "same-key", loader)
			if err != nil {
				errCh <- err
				return
			}
			if got, _ := v.(string); got != "value" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_DeletePrefixForcesReload(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32
	loader := func(context.Context) ([]string, error) {
		calls.Add(1)
		return []string{"a"}, nil
	}

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if _, err := Load(ctx, store, "team:list", loader); err != nil {
			t.Fatalf("load: %v", err)
		}
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times before invalidation, want 1", got)
	}

	store.DeletePrefix(ctx, "team:")
	if _, err := Load(ctx, store, "team:list", loader); err != nil {
		t.Fatalf("load after invalidation: %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("loader called %d times after invalidation, want 2", got)
	}
}

func TestStore_ExpiredEntryIsDropped(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store := NewStore(time.Second)
	store.now = func() time.Time { return now }

	ctx := context.Background()
	store.Set(ctx, "k", 1)
	if _, ok := store.Get(ctx, "k"); !ok {
		t.Fatalf("expected fresh entry")
	}

	now = now.Add(2 * time.Second)
	if _, ok := store.Get(ctx, "k"); ok {
		t.Fatalf("expected expired entry to be dropped")
	}
}

func TestStore_LoadErrorIsNotCached(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	ctx := context.Background()
	_, err := store.GetOrLoad(ctx, "k", func(context.Context) (any, error) {
		return nil, errUnexpectedValue
	})
	if !errors.Is(err, errUnexpectedValue) {
		t.Fatalf("expected loader error, got %v", err)
	}
	if _, ok := store.Get(ctx, "k"); ok {
		t.Fatalf("failed load must not be cached")
	}
}

func TestLoad_TypeMismatch(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	ctx := context.Background()
	store.Set(ctx, "k", "text")

	_, err := Load(ctx, store, "k", func(context.Context) (int, error) { return 1, nil })
	if err == nil {
		t.Fatalf("expected type mismatch error")
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")
