package scheduler

import (
	"context"
	"errors"
	"testing"

	"eventscheduler/models"
)

type fakeCache struct {
	entries map[string]*models.ScheduleResponse
	getErr  error
	setErr  error
	gets    int
	sets    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]*models.ScheduleResponse{}}
}

func (f *fakeCache) Get(_ context.Context, key string) (*models.ScheduleResponse, bool, error) {
	f.gets++
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	resp, ok := f.entries[key]
	return resp, ok, nil
}

func (f *fakeCache) Set(_ context.Context, key string, resp *models.ScheduleResponse) error {
	f.sets++
	if f.setErr != nil {
		return f.setErr
	}
	f.entries[key] = resp
	return nil
}

func TestProcessEventsWithoutCache(t *testing.T) {
	svc := &DefaultSchedulerService{}
	got, err := svc.ProcessEvents(context.Background(), []models.EventRequest{
		ev("A", "09:00", "10:00"),
		ev("B", "09:30", "10:30"),
	})
	if err != nil {
		t.Fatalf("ProcessEvents error: %v", err)
	}
	if len(got.Conflicts) != 1 {
		t.Fatalf("conflicts = %d, want 1", len(got.Conflicts))
	}
}

func TestProcessEventsCacheHit(t *testing.T) {
	in := []models.EventRequest{ev("A", "09:00", "10:00")}
	key, err := CacheKey(in, false)
	if err != nil {
		t.Fatalf("CacheKey error: %v", err)
	}
	cached := &models.ScheduleResponse{
		SortedEvents: []models.EventResponse{{Name: "cached", Start: "01:00", End: "02:00"}},
		Conflicts:    []models.Conflict{},
	}
	cache := newFakeCache()
	cache.entries[key] = cached

	svc := &DefaultSchedulerService{Cache: cache}
	got, err := svc.ProcessEvents(context.Background(), in)
	if err != nil {
		t.Fatalf("ProcessEvents error: %v", err)
	}
	if got != cached {
		t.Fatalf("expected cached response, got %+v", got)
	}
	if cache.sets != 0 {
		t.Fatalf("cache hit should not write, sets = %d", cache.sets)
	}
}

func TestProcessEventsStoresResult(t *testing.T) {
	cache := newFakeCache()
	svc := &DefaultSchedulerService{Cache: cache}
	in := []models.EventRequest{ev("A", "09:00", "10:00")}

	first, err := svc.ProcessEvents(context.Background(), in)
	if err != nil {
		t.Fatalf("ProcessEvents error: %v", err)
	}
	second, err := svc.ProcessEvents(context.Background(), in)
	if err != nil {
		t.Fatalf("ProcessEvents error: %v", err)
	}
	if first != second {
		t.Fatal("second call should be served from cache")
	}
	if cache.sets != 1 || cache.gets != 2 {
		t.Fatalf("gets = %d sets = %d, want 2 and 1", cache.gets, cache.sets)
	}
}

func TestProcessEventsErrorsNotCached(t *testing.T) {
	cache := newFakeCache()
	svc := &DefaultSchedulerService{Cache: cache}

	_, err := svc.ProcessEvents(context.Background(), []models.EventRequest{ev("A", "x", "10:00")})
	var mte *MalformedTimeError
	if !errors.As(err, &mte) {
		t.Fatalf("error = %v, want MalformedTimeError", err)
	}
	if cache.sets != 0 {
		t.Fatalf("errors must not be cached, sets = %d", cache.sets)
	}
}

func TestProcessEventsIgnoresCacheFailures(t *testing.T) {
	cache := newFakeCache()
	cache.getErr = errors.New("connection refused")
	cache.setErr = errors.New("connection refused")
	svc := &DefaultSchedulerService{Cache: cache}

	got, err := svc.ProcessEvents(context.Background(), []models.EventRequest{ev("A", "09:00", "10:00")})
	if err != nil {
		t.Fatalf("cache failures should not fail the request: %v", err)
	}
	if len(got.SortedEvents) != 1 {
		t.Fatalf("sorted = %d, want 1", len(got.SortedEvents))
	}
}

func TestProcessEventsStrict(t *testing.T) {
	svc := &DefaultSchedulerService{Strict: true}
	_, err := svc.ProcessEvents(context.Background(), []models.EventRequest{ev("A", "10:00", "09:00")})
	var ire *InvalidRangeError
	if !errors.As(err, &ire) {
		t.Fatalf("error = %v, want InvalidRangeError", err)
	}
}

func TestCacheKey(t *testing.T) {
	a := []models.EventRequest{ev("A", "09:00", "10:00"), ev("B", "11:00", "12:00")}
	b := []models.EventRequest{ev("B", "11:00", "12:00"), ev("A", "09:00", "10:00")}

	ka, _ := CacheKey(a, false)
	kb, _ := CacheKey(b, false)
	ks, _ := CacheKey(a, true)
	again, _ := CacheKey(a, false)

	if ka != again {
		t.Fatal("cache key is not deterministic")
	}
	if ka == kb {
		t.Fatal("input order should change the key")
	}
	if ka == ks {
		t.Fatal("strict mode should change the key")
	}
}
