package otpstore

import (
	"context"
	"testing"
	"time"
)

func newTestMemoryStore() (*MemoryStore, *time.Time) {
	now := time.Now()
	s := &MemoryStore{
		entries: make(map[string]entry),
		now:     func() time.Time { return now },
		stop:    make(chan struct{}),
	}
	return s, &now
}

func TestMemoryStorePutGet(t *testing.T) {
	s, _ := newTestMemoryStore()
	ctx := context.Background()

	if err := s.Put(ctx, "a@b.com", "123456", 2*time.Minute); err != nil {
		t.Fatalf("Put() unexpected error: %v", err)
	}

	value, ok, err := s.Get(ctx, "a@b.com")
	if err != nil {
		t.Fatalf("Get() unexpected error: %v", err)
	}
	if !ok || value != "123456" {
		t.Errorf("Get() = (%q, %v), want (123456, true)", value, ok)
	}
}

func TestMemoryStoreGetAbsent(t *testing.T) {
	s, _ := newTestMemoryStore()

	_, ok, err := s.Get(context.Background(), "missing@b.com")
	if err != nil {
		t.Fatalf("Get() unexpected error: %v", err)
	}
	if ok {
		t.Error("Get() reported a value for an absent key")
	}
}

func TestMemoryStoreLazyExpiry(t *testing.T) {
	s, now := newTestMemoryStore()
	ctx := context.Background()

	if err := s.Put(ctx, "a@b.com", "123456", 2*time.Minute); err != nil {
		t.Fatalf("Put() unexpected error: %v", err)
	}

	*now = now.Add(121 * time.Second)

	_, ok, err := s.Get(ctx, "a@b.com")
	if err != nil {
		t.Fatalf("Get() unexpected error: %v", err)
	}
	if ok {
		t.Error("Get() returned an expired entry")
	}
}

func TestMemoryStorePutReplaces(t *testing.T) {
	s, _ := newTestMemoryStore()
	ctx := context.Background()

	if err := s.Put(ctx, "a@b.com", "111111", 2*time.Minute); err != nil {
		t.Fatalf("Put() unexpected error: %v", err)
	}
	if err := s.Put(ctx, "a@b.com", "222222", 2*time.Minute); err != nil {
		t.Fatalf("Put() unexpected error: %v", err)
	}

	value, ok, _ := s.Get(ctx, "a@b.com")
	if !ok || value != "222222" {
		t.Errorf("Get() = (%q, %v), want the replacing value", value, ok)
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	s, _ := newTestMemoryStore()
	ctx := context.Background()

	if err := s.Put(ctx, "a@b.com", "123456", 2*time.Minute); err != nil {
		t.Fatalf("Put() unexpected error: %v", err)
	}
	if err := s.Delete(ctx, "a@b.com"); err != nil {
		t.Fatalf("Delete() unexpected error: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "a@b.com"); ok {
		t.Error("Get() returned a deleted entry")
	}

	// Deleting again is not an error.
	if err := s.Delete(ctx, "a@b.com"); err != nil {
		t.Fatalf("Delete() of absent key unexpected error: %v", err)
	}
}
