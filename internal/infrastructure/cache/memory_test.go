package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStore_SetGet(t *testing.T) {
	ctx := context.Background()
	ms := NewMemoryStore()

	ms.Set(ctx, "k", "v", time.Minute)
	if got, ok := ms.Get(ctx, "k"); !ok || got != "v" {
		t.Fatalf("expected hit with v, got %q %v", got, ok)
	}

	if _, ok := ms.Get(ctx, "missing"); ok {
		t.Error("expected miss for unknown key")
	}
}

func TestMemoryStore_Expiration(t *testing.T) {
	ctx := context.Background()
	ms := NewMemoryStore()

	ms.Set(ctx, "k", "v", -time.Second)
	if _, ok := ms.Get(ctx, "k"); ok {
		t.Error("expired entry should miss")
	}
}

func TestMemoryStore_CloseStopsCleanup(t *testing.T) {
	ctx := context.Background()
	ms := newMemoryStore(10 * time.Millisecond)

	ms.Set(ctx, "k", "v", time.Millisecond)
	deadline := time.After(time.Second)
	for {
		ms.mu.RLock()
		_, exists := ms.items["k"]
		ms.mu.RUnlock()
		if !exists {
			break
		}
		select {
		case <-deadline:
			t.Fatal("cleanup never removed the expired entry")
		case <-time.After(10 * time.Millisecond):
		}
	}

	ms.Close()
	ms.Close() // idempotent

	ms.Set(ctx, "stale", "v", -time.Second)
	time.Sleep(50 * time.Millisecond)
	ms.mu.RLock()
	_, exists := ms.items["stale"]
	ms.mu.RUnlock()
	if !exists {
		t.Error("cleanup must stop after Close")
	}
}

func TestMemoryStore_Delete(t *testing.T) {
	ctx := context.Background()
	ms := NewMemoryStore()

	ms.Set(ctx, "k", "v", time.Minute)
	ms.Delete(ctx, "k")
	if _, ok := ms.Get(ctx, "k"); ok {
		t.Error("deleted entry should miss")
	}
}
