package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/fahmiardi/oauth2-server-redis/internal/core"
)

// Adapter performs namespaced get/set/delete of JSON records and maintains
// unordered membership sets on top of a Backend.
//
// It owns key naming and value encoding. It never retries and never hides
// backend failures; a missing key is reported as "not found", not as an error.
type Adapter struct {
	backend   core.Backend
	keyPrefix string
}

// AdapterOption configures an Adapter.
type AdapterOption func(*Adapter)

// WithKeyPrefix prepends prefix verbatim to every key.
// Leave it empty to share a keyspace with other OAuth2 server implementations.
func WithKeyPrefix(prefix string) AdapterOption {
	return func(a *Adapter) {
		a.keyPrefix = prefix
	}
}

// NewAdapter creates an Adapter over backend.
func NewAdapter(backend core.Backend, opts ...AdapterOption) *Adapter {
	a := &Adapter{backend: backend}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Adapter) key(id, namespace string) string {
	return a.keyPrefix + Key(namespace, id)
}

// GetValue fetches the record stored under (namespace, id) and decodes it into out.
// Returns false with a nil error when the key does not exist or holds a JSON null.
// An empty id never addresses a record, so it is reported as absent.
func (a *Adapter) GetValue(ctx context.Context, id, namespace string, out any) (bool, error) {
	if id == "" {
		return false, nil
	}

	raw, err := a.backend.Get(ctx, a.key(id, namespace))
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return false, nil
		}
		return false, err
	}

	if strings.TrimSpace(raw) == "null" {
		return false, nil
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrInvalidValue, a.key(id, namespace), err)
	}

	return true, nil
}

// SetValue encodes record and stores it under (namespace, id), replacing
// whatever was there. An empty id is rejected with ErrEmptyID.
func (a *Adapter) SetValue(ctx context.Context, id, namespace string, record any) error {
	if id == "" {
		return ErrEmptyID
	}

	encoded, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}

	return a.backend.Set(ctx, a.key(id, namespace), string(encoded))
}

// DeleteKey removes the key for (namespace, id). Deleting a missing key is a no-op.
// An empty id is rejected with ErrEmptyID.
func (a *Adapter) DeleteKey(ctx context.Context, id, namespace string) error {
	if id == "" {
		return ErrEmptyID
	}

	return a.backend.Del(ctx, a.key(id, namespace))
}

// PushSet adds member to the set addressed by (namespace, id). An empty id
// addresses the kind-wide index set.
func (a *Adapter) PushSet(ctx context.Context, id, namespace string, member any) error {
	encoded, err := encodeMember(member)
	if err != nil {
		return err
	}

	return a.backend.SAdd(ctx, a.key(id, namespace), encoded)
}

// GetSet returns the raw members of the set addressed by (namespace, id).
// Order is not guaranteed.
func (a *Adapter) GetSet(ctx context.Context, id, namespace string) ([]string, error) {
	return a.backend.SMembers(ctx, a.key(id, namespace))
}

// DeleteSet removes a single member from the set addressed by (namespace, id).
func (a *Adapter) DeleteSet(ctx context.Context, id, namespace string, member any) error {
	encoded, err := encodeMember(member)
	if err != nil {
		return err
	}

	return a.backend.SRem(ctx, a.key(id, namespace), encoded)
}

// Health checks if the backend is reachable.
func (a *Adapter) Health(ctx context.Context) error {
	return a.backend.Ping(ctx)
}

// GetSetInto returns the members of the set addressed by (namespace, id),
// each decoded from JSON into T.
func GetSetInto[T any](ctx context.Context, a *Adapter, id, namespace string) ([]T, error) {
	members, err := a.GetSet(ctx, id, namespace)
	if err != nil {
		return nil, err
	}

	result := make([]T, 0, len(members))
	for _, member := range members {
		var item T
		if err := json.Unmarshal([]byte(member), &item); err != nil {
			return nil, fmt.Errorf(
				"%w: member %q of %s: %v",
				ErrInvalidValue,
				member,
				a.key(id, namespace),
				err,
			)
		}
		result = append(result, item)
	}

	return result, nil
}

// encodeMember stores plain strings (index ids) as-is and JSON-encodes
// anything else, so "foo" stays "foo" and ScopeRef{ID: "bar"} becomes {"id":"bar"}.
func encodeMember(member any) (string, error) {
	if s, ok := member.(string); ok {
		return s, nil
	}

	encoded, err := json.Marshal(member)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	return string(encoded), nil
}
