package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fahmiardi/oauth2-server-redis/internal/kv"
	"github.com/fahmiardi/oauth2-server-redis/internal/mocks"
	"github.com/fahmiardi/oauth2-server-redis/internal/models"
)

// fixedNow is the clock used by tests that depend on expiry
var fixedNow = time.Unix(1_700_000_000, 0)

func fixedClock() time.Time { return fixedNow }

// setupTestAdapter returns an adapter over a fresh in-memory backend
func setupTestAdapter(t *testing.T) (*kv.Adapter, *kv.MemoryBackend) {
	t.Helper()
	backend := kv.NewMemoryBackend()
	t.Cleanup(func() { _ = backend.Close() })
	return kv.NewAdapter(backend), backend
}

// setupMockAdapter returns an adapter over a gomock backend
func setupMockAdapter(t *testing.T) (*kv.Adapter, *mocks.MockBackend) {
	t.Helper()
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	return kv.NewAdapter(backend), backend
}

// createScopes writes scope records into the scopes namespace
func createScopes(t *testing.T, adapter *kv.Adapter, ids ...string) {
	t.Helper()
	for _, id := range ids {
		scope := models.Scope{ID: id, Description: id + " description"}
		require.NoError(t, adapter.SetValue(context.Background(), id, kv.NamespaceScopes, scope))
	}
}

// indexMembers returns the ids held in a kind-wide index set
func indexMembers(t *testing.T, adapter *kv.Adapter, namespace string) []string {
	t.Helper()
	ids, err := adapter.GetSet(context.Background(), "", namespace)
	require.NoError(t, err)
	return ids
}

func scopeIDs(scopes []models.Scope) []string {
	ids := make([]string, len(scopes))
	for i, s := range scopes {
		ids[i] = s.ID
	}
	return ids
}
