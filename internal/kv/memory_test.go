package kv

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryBackend_GetSet(t *testing.T) {
	backend := NewMemoryBackend()
	ctx := context.Background()

	if err := backend.Set(ctx, "test-key", "42"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value, err := backend.Get(ctx, "test-key")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if value != "42" {
		t.Errorf("Expected value 42, got %s", value)
	}
}

func TestMemoryBackend_GetMiss(t *testing.T) {
	backend := NewMemoryBackend()

	_, err := backend.Get(context.Background(), "non-existent")
	if !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Expected ErrKeyNotFound, got %v", err)
	}
}

func TestMemoryBackend_SetOverwrites(t *testing.T) {
	backend := NewMemoryBackend()
	ctx := context.Background()

	_ = backend.Set(ctx, "key", "first")
	_ = backend.Set(ctx, "key", "second")

	value, err := backend.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if value != "second" {
		t.Errorf("Expected second, got %s", value)
	}
}

func TestMemoryBackend_DelMissingIsNoop(t *testing.T) {
	backend := NewMemoryBackend()

	if err := backend.Del(context.Background(), "missing"); err != nil {
		t.Errorf("Expected no error deleting missing key, got %v", err)
	}
}

func TestMemoryBackend_SetMembership(t *testing.T) {
	backend := NewMemoryBackend()
	ctx := context.Background()

	if err := backend.SAdd(ctx, "set", "a", "b", "a", "c"); err != nil {
		t.Fatalf("SAdd failed: %v", err)
	}

	members, err := backend.SMembers(ctx, "set")
	if err != nil {
		t.Fatalf("SMembers failed: %v", err)
	}
	if len(members) != 3 || members[0] != "a" || members[1] != "b" || members[2] != "c" {
		t.Errorf("Expected [a b c], got %v", members)
	}

	if err := backend.SRem(ctx, "set", "b"); err != nil {
		t.Fatalf("SRem failed: %v", err)
	}
	members, _ = backend.SMembers(ctx, "set")
	if len(members) != 2 || members[0] != "a" || members[1] != "c" {
		t.Errorf("Expected [a c] after SRem, got %v", members)
	}
}

func TestMemoryBackend_EmptySetDisappears(t *testing.T) {
	backend := NewMemoryBackend()
	ctx := context.Background()

	_ = backend.SAdd(ctx, "set", "only")
	_ = backend.SRem(ctx, "set", "only")

	if keys := backend.Keys(); len(keys) != 0 {
		t.Errorf("Expected no keys after removing last member, got %v", keys)
	}

	members, err := backend.SMembers(ctx, "set")
	if err != nil {
		t.Fatalf("SMembers failed: %v", err)
	}
	if members == nil || len(members) != 0 {
		t.Errorf("Expected empty non-nil slice, got %#v", members)
	}
}

func TestMemoryBackend_WrongType(t *testing.T) {
	backend := NewMemoryBackend()
	ctx := context.Background()

	_ = backend.Set(ctx, "string", "value")
	_ = backend.SAdd(ctx, "set", "member")

	if err := backend.SAdd(ctx, "string", "x"); !errors.Is(err, ErrWrongType) {
		t.Errorf("Expected ErrWrongType from SAdd on string key, got %v", err)
	}
	if _, err := backend.SMembers(ctx, "string"); !errors.Is(err, ErrWrongType) {
		t.Errorf("Expected ErrWrongType from SMembers on string key, got %v", err)
	}
	if _, err := backend.Get(ctx, "set"); !errors.Is(err, ErrWrongType) {
		t.Errorf("Expected ErrWrongType from Get on set key, got %v", err)
	}

	// Del removes keys of either kind
	if err := backend.Del(ctx, "string", "set"); err != nil {
		t.Fatalf("Del failed: %v", err)
	}
	if keys := backend.Keys(); len(keys) != 0 {
		t.Errorf("Expected no keys after Del, got %v", keys)
	}
}

func TestMemoryBackend_Close(t *testing.T) {
	backend := NewMemoryBackend()
	ctx := context.Background()

	_ = backend.Set(ctx, "key1", "1")
	_ = backend.SAdd(ctx, "set", "a")

	if err := backend.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if _, err := backend.Get(ctx, "key1"); !errors.Is(err, ErrKeyNotFound) {
		t.Error("Expected backend to be cleared after Close")
	}
}

func TestMemoryBackend_Ping(t *testing.T) {
	backend := NewMemoryBackend()

	if err := backend.Ping(context.Background()); err != nil {
		t.Errorf("Ping should always succeed for memory backend, got: %v", err)
	}
}

func TestMemoryBackend_Concurrent(t *testing.T) {
	backend := NewMemoryBackend()
	ctx := context.Background()

	done := make(chan bool, 20)

	// 10 writers
	for i := 0; i < 10; i++ {
		go func(n int) {
			for j := 0; j < 100; j++ {
				_ = backend.SAdd(ctx, "concurrent-set", string(rune('a'+n)))
				_ = backend.Set(ctx, "concurrent-key", string(rune('a'+j%26)))
			}
			done <- true
		}(i)
	}

	// 10 readers
	for i := 0; i < 10; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				_, _ = backend.Get(ctx, "concurrent-key")
				_, _ = backend.SMembers(ctx, "concurrent-set")
			}
			done <- true
		}()
	}

	for i := 0; i < 20; i++ {
		<-done
	}

	members, err := backend.SMembers(ctx, "concurrent-set")
	if err != nil {
		t.Fatalf("SMembers failed after concurrent access: %v", err)
	}
	if len(members) != 10 {
		t.Errorf("Expected 10 distinct members, got %d", len(members))
	}
}
