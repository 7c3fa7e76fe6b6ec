package kv

import (
	"context"
	"sync"

	"github.com/fahmiardi/oauth2-server-redis/internal/core"
)

// Compile-time interface check.
var _ core.Backend = (*MemoryBackend)(nil)

// memberSet keeps members in insertion order so enumeration is deterministic.
type memberSet struct {
	order   []string
	members map[string]struct{}
}

func (s *memberSet) add(member string) {
	if _, ok := s.members[member]; ok {
		return
	}
	s.members[member] = struct{}{}
	s.order = append(s.order, member)
}

func (s *memberSet) remove(member string) {
	if _, ok := s.members[member]; !ok {
		return
	}
	delete(s.members, member)
	for i, m := range s.order {
		if m == member {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// MemoryBackend implements Backend with in-memory storage.
// It mirrors Redis semantics closely enough for tests and single-instance
// deployments: sets deduplicate members, empty sets disappear, and string and
// set commands against the wrong kind of key fail with ErrWrongType.
type MemoryBackend struct {
	mu     sync.RWMutex
	values map[string]string
	sets   map[string]*memberSet
}

// NewMemoryBackend creates a new in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		values: make(map[string]string),
		sets:   make(map[string]*memberSet),
	}
}

// Get retrieves a string value.
func (m *MemoryBackend) Get(ctx context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, isSet := m.sets[key]; isSet {
		return "", ErrWrongType
	}

	value, exists := m.values[key]
	if !exists {
		return "", ErrKeyNotFound
	}
	return value, nil
}

// Set stores a string value, replacing a previous value of any kind.
func (m *MemoryBackend) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sets, key)
	m.values[key] = value
	return nil
}

// Del removes keys of any kind.
func (m *MemoryBackend) Del(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, key := range keys {
		delete(m.values, key)
		delete(m.sets, key)
	}
	return nil
}

// SAdd adds members to a set.
func (m *MemoryBackend) SAdd(ctx context.Context, key string, members ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, isValue := m.values[key]; isValue {
		return ErrWrongType
	}

	set, exists := m.sets[key]
	if !exists {
		set = &memberSet{members: make(map[string]struct{})}
		m.sets[key] = set
	}
	for _, member := range members {
		set.add(member)
	}
	return nil
}

// SMembers returns a copy of the set's members in insertion order.
func (m *MemoryBackend) SMembers(ctx context.Context, key string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, isValue := m.values[key]; isValue {
		return nil, ErrWrongType
	}

	set, exists := m.sets[key]
	if !exists {
		return []string{}, nil
	}

	members := make([]string, len(set.order))
	copy(members, set.order)
	return members, nil
}

// SRem removes members from a set. The set is dropped once empty.
func (m *MemoryBackend) SRem(ctx context.Context, key string, members ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, isValue := m.values[key]; isValue {
		return ErrWrongType
	}

	set, exists := m.sets[key]
	if !exists {
		return nil
	}
	for _, member := range members {
		set.remove(member)
	}
	if len(set.order) == 0 {
		delete(m.sets, key)
	}
	return nil
}

// Ping always succeeds for the memory backend.
func (m *MemoryBackend) Ping(ctx context.Context) error {
	return nil
}

// Close clears all stored data.
func (m *MemoryBackend) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values = make(map[string]string)
	m.sets = make(map[string]*memberSet)
	return nil
}

// Keys returns every key currently held, strings and sets alike.
// Intended for tests and debugging.
func (m *MemoryBackend) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.values)+len(m.sets))
	for key := range m.values {
		keys = append(keys, key)
	}
	for key := range m.sets {
		keys = append(keys, key)
	}
	return keys
}
