package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fahmiardi/oauth2-server-redis/internal/kv"
	"github.com/fahmiardi/oauth2-server-redis/internal/mocks"
	"github.com/fahmiardi/oauth2-server-redis/internal/models"
)

func TestAuthCodeStore_GetReturnsNilForInvalidCode(t *testing.T) {
	adapter, backend := setupMockAdapter(t)
	s := NewAuthCodeStore(adapter)
	ctx := context.Background()

	backend.EXPECT().Get(ctx, "oauth:auth:codes:foo").Return("", kv.ErrKeyNotFound)

	code, err := s.Get(ctx, "foo")
	require.NoError(t, err)
	assert.Nil(t, code)
}

func TestAuthCodeStore_GetHydratesStoredCode(t *testing.T) {
	adapter, backend := setupMockAdapter(t)
	s := NewAuthCodeStore(adapter)
	ctx := context.Background()

	backend.EXPECT().
		Get(ctx, "oauth:auth:codes:foo").
		Return(`{"id":"foo","client_redirect_uri":"bar"}`, nil)

	code, err := s.Get(ctx, "foo")
	require.NoError(t, err)
	require.NotNil(t, code)
	assert.Equal(t, "foo", code.ID)
	assert.Equal(t, "bar", code.RedirectURI)
}

func TestAuthCodeStore_GetScopes_Commands(t *testing.T) {
	adapter, backend := setupMockAdapter(t)
	s := NewAuthCodeStore(adapter)
	ctx := context.Background()

	gomock.InOrder(
		backend.EXPECT().
			SMembers(ctx, "oauth:auth:code:scopes:foo").
			Return([]string{`{"id":"foo"}`, `{"id":"bar"}`, `{"id":"baz"}`}, nil),
		backend.EXPECT().
			Get(ctx, "oauth:scopes:foo").
			Return(`{"id":"foo","description":"foo"}`, nil),
		backend.EXPECT().Get(ctx, "oauth:scopes:bar").Return("", kv.ErrKeyNotFound),
		backend.EXPECT().
			Get(ctx, "oauth:scopes:baz").
			Return(`{"id":"baz","description":"baz"}`, nil),
	)

	scopes, err := s.GetScopes(ctx, &models.AuthCode{ID: "foo"})
	require.NoError(t, err)
	require.Len(t, scopes, 2)
	assert.Equal(t, "foo", scopes[0].ID)
	assert.Equal(t, "baz", scopes[1].ID)
}

func TestAuthCodeStore_GetScopes_BackendFailure(t *testing.T) {
	adapter, backend := setupMockAdapter(t)
	s := NewAuthCodeStore(adapter)
	ctx := context.Background()

	gomock.InOrder(
		backend.EXPECT().
			SMembers(ctx, "oauth:auth:code:scopes:foo").
			Return([]string{`{"id":"foo"}`, `{"id":"bar"}`}, nil),
		backend.EXPECT().Get(ctx, "oauth:scopes:foo").Return("", kv.ErrBackendUnavailable),
	)

	scopes, err := s.GetScopes(ctx, &models.AuthCode{ID: "foo"})
	assert.Nil(t, scopes)
	assert.ErrorIs(t, err, kv.ErrBackendUnavailable)
}

func TestAuthCodeStore_Create_Commands(t *testing.T) {
	adapter, backend := setupMockAdapter(t)
	s := NewAuthCodeStore(adapter)
	ctx := context.Background()

	gomock.InOrder(
		backend.EXPECT().
			Set(
				ctx,
				"oauth:auth:codes:foo",
				`{"id":"foo","expire_time":1,"session_id":"1","client_redirect_uri":"bar"}`,
			).
			Return(nil),
		backend.EXPECT().SAdd(ctx, "oauth:auth:codes", "foo").Return(nil),
	)

	code, err := s.Create(ctx, "foo", 1, "1", "bar")
	require.NoError(t, err)
	require.NotNil(t, code)
	assert.Equal(t, "foo", code.ID)
	assert.Equal(t, "bar", code.RedirectURI)
}

func TestAuthCodeStore_CreateAndGet(t *testing.T) {
	adapter, _ := setupTestAdapter(t)
	s := NewAuthCodeStore(adapter)
	ctx := context.Background()

	created, err := s.Create(ctx, "code-1", 1700000600, "sess-9", "https://client.example/cb")
	require.NoError(t, err)

	got, err := s.Get(ctx, "code-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created, got)
	assert.Equal(t, &models.AuthCode{
		ID:          "code-1",
		ExpireTime:  1700000600,
		SessionID:   "sess-9",
		RedirectURI: "https://client.example/cb",
	}, got)
	assert.Equal(t, []string{"code-1"}, indexMembers(t, adapter, kv.NamespaceAuthCodes))
}

func TestAuthCodeStore_AssociateScope_Commands(t *testing.T) {
	adapter, backend := setupMockAdapter(t)
	s := NewAuthCodeStore(adapter)
	ctx := context.Background()

	backend.EXPECT().SAdd(ctx, "oauth:auth:code:scopes:foo", `{"id":"bar"}`).Return(nil)

	err := s.AssociateScope(ctx, &models.AuthCode{ID: "foo"}, &models.Scope{ID: "bar"})
	require.NoError(t, err)
}

func TestAuthCodeStore_AssociateScope_Repeated(t *testing.T) {
	adapter, _ := setupTestAdapter(t)
	s := NewAuthCodeStore(adapter)
	ctx := context.Background()

	createScopes(t, adapter, "read")
	code := &models.AuthCode{ID: "foo"}
	require.NoError(t, s.AssociateScope(ctx, code, &models.Scope{ID: "read"}))
	require.NoError(t, s.AssociateScope(ctx, code, &models.Scope{ID: "read"}))

	// The backend set deduplicates identical members
	scopes, err := s.GetScopes(ctx, code)
	require.NoError(t, err)
	assert.Equal(t, []string{"read"}, scopeIDs(scopes))
}

func TestAuthCodeStore_Delete_Commands(t *testing.T) {
	adapter, backend := setupMockAdapter(t)
	s := NewAuthCodeStore(adapter)
	ctx := context.Background()

	gomock.InOrder(
		backend.EXPECT().Del(ctx, "oauth:auth:codes:foo").Return(nil),
		backend.EXPECT().SRem(ctx, "oauth:auth:codes", "foo").Return(nil),
		backend.EXPECT().Del(ctx, "oauth:auth:code:scopes:foo").Return(nil),
	)

	require.NoError(t, s.Delete(ctx, &models.AuthCode{ID: "foo"}))
}

func TestAuthCodeStore_Delete(t *testing.T) {
	adapter, _ := setupTestAdapter(t)
	s := NewAuthCodeStore(adapter)
	ctx := context.Background()

	createScopes(t, adapter, "read", "write")
	code, err := s.Create(ctx, "foo", 1700000600, "1", "https://client.example/cb")
	require.NoError(t, err)
	require.NoError(t, s.AssociateScope(ctx, code, &models.Scope{ID: "read"}))
	require.NoError(t, s.AssociateScope(ctx, code, &models.Scope{ID: "write"}))

	require.NoError(t, s.Delete(ctx, code))

	got, err := s.Get(ctx, "foo")
	require.NoError(t, err)
	assert.Nil(t, got)

	scopes, err := s.GetScopes(ctx, code)
	require.NoError(t, err)
	assert.Empty(t, scopes)
	assert.Empty(t, indexMembers(t, adapter, kv.NamespaceAuthCodes))

	// Deleting again is harmless
	require.NoError(t, s.Delete(ctx, code))
}

func TestAuthCodeStore_Delete_Partial(t *testing.T) {
	adapter, backend := setupMockAdapter(t)
	ctrl := gomock.NewController(t)
	recorder := mocks.NewMockRecorder(ctrl)
	s := NewAuthCodeStore(adapter, WithRecorder(recorder))
	ctx := context.Background()

	cause := errors.New("READONLY You can't write against a read only replica")
	gomock.InOrder(
		backend.EXPECT().Del(ctx, "oauth:auth:codes:foo").Return(nil),
		backend.EXPECT().SRem(ctx, "oauth:auth:codes", "foo").Return(cause),
	)
	// The scope set delete is never attempted
	recorder.EXPECT().RecordArtifactDeleted(ArtifactAuthCode, false)

	err := s.Delete(ctx, &models.AuthCode{ID: "foo"})
	assert.ErrorIs(t, err, cause)
}

func TestAuthCodeStore_Delete_RecordFailureStopsImmediately(t *testing.T) {
	adapter, backend := setupMockAdapter(t)
	ctrl := gomock.NewController(t)
	recorder := mocks.NewMockRecorder(ctrl)
	s := NewAuthCodeStore(adapter, WithRecorder(recorder))
	ctx := context.Background()

	backend.EXPECT().Del(ctx, "oauth:auth:codes:foo").Return(kv.ErrBackendUnavailable)
	recorder.EXPECT().RecordArtifactDeleted(ArtifactAuthCode, false)

	err := s.Delete(ctx, &models.AuthCode{ID: "foo"})
	assert.ErrorIs(t, err, kv.ErrBackendUnavailable)
}

func TestAuthCodeStore_EmptyID(t *testing.T) {
	adapter, _ := setupTestAdapter(t)
	s := NewAuthCodeStore(adapter)
	ctx := context.Background()

	_, err := s.Create(ctx, "live", 9999999999, "1", "https://client.example/cb")
	require.NoError(t, err)

	code, err := s.Get(ctx, "")
	require.NoError(t, err)
	assert.Nil(t, code)

	_, err = s.Create(ctx, "", 9999999999, "1", "https://client.example/cb")
	assert.ErrorIs(t, err, kv.ErrEmptyID)
	assert.ErrorIs(t, s.AssociateScope(ctx, &models.AuthCode{}, &models.Scope{ID: "read"}), kv.ErrEmptyID)
	assert.ErrorIs(t, s.Delete(ctx, &models.AuthCode{}), kv.ErrEmptyID)

	assert.Equal(t, []string{"live"}, indexMembers(t, adapter, kv.NamespaceAuthCodes))
}
