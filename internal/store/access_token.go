package store

import (
	"context"

	"github.com/fahmiardi/oauth2-server-redis/internal/kv"
	"github.com/fahmiardi/oauth2-server-redis/internal/models"
)

// AccessTokenStore persists access tokens and their scope associations.
//
// Keys:
//
//	oauth:access:tokens:<id>        record {id, expire_time, session_id}
//	oauth:access:tokens             index set of ids
//	oauth:access:token:scopes:<id>  set of {"id": <scope>}
type AccessTokenStore struct {
	kv *kv.Adapter
	options
}

// NewAccessTokenStore creates an AccessTokenStore on top of adapter.
func NewAccessTokenStore(adapter *kv.Adapter, opts ...Option) *AccessTokenStore {
	return &AccessTokenStore{kv: adapter, options: newOptions(opts)}
}

// Get returns the access token with the given id, or nil if it does not exist.
// Expiry is not checked; that is the grant engine's decision.
func (s *AccessTokenStore) Get(ctx context.Context, id string) (*models.AccessToken, error) {
	var token models.AccessToken
	found, err := s.kv.GetValue(ctx, id, kv.NamespaceAccessTokens, &token)
	if err != nil || !found {
		return nil, err
	}
	return &token, nil
}

// GetByRefreshToken returns the access token referenced by the stored copy
// of refreshToken. The caller's AccessTokenID is ignored so a stale
// in-memory refresh token cannot resolve to the wrong access token.
// Returns nil if the refresh token or the access token does not exist.
func (s *AccessTokenStore) GetByRefreshToken(
	ctx context.Context,
	refreshToken *models.RefreshToken,
) (*models.AccessToken, error) {
	var stored models.RefreshToken
	found, err := s.kv.GetValue(ctx, refreshToken.ID, kv.NamespaceRefreshTokens, &stored)
	if err != nil || !found {
		return nil, err
	}

	return s.Get(ctx, stored.AccessTokenID)
}

// GetScopes returns the scopes associated with token.
// Associated scopes that no longer exist are skipped.
func (s *AccessTokenStore) GetScopes(
	ctx context.Context,
	token *models.AccessToken,
) ([]models.Scope, error) {
	return resolveScopes(
		ctx,
		s.kv,
		s.options,
		ArtifactAccessToken,
		token.ID,
		kv.NamespaceAccessTokenScopes,
	)
}

// Create writes the access token record and adds its id to the index set.
func (s *AccessTokenStore) Create(
	ctx context.Context,
	id string,
	expireTime int64,
	sessionID models.SessionID,
) error {
	if err := requireID(id); err != nil {
		return err
	}

	record := models.AccessToken{
		ID:         id,
		ExpireTime: expireTime,
		SessionID:  sessionID,
	}

	if err := s.kv.SetValue(ctx, id, kv.NamespaceAccessTokens, record); err != nil {
		return err
	}
	if err := s.kv.PushSet(ctx, "", kv.NamespaceAccessTokens, id); err != nil {
		return err
	}

	s.recorder.RecordArtifactCreated(ArtifactAccessToken)
	return nil
}

// AssociateScope adds scope to the token's association set.
// Neither the scope's existence nor a previous association is checked.
func (s *AccessTokenStore) AssociateScope(
	ctx context.Context,
	token *models.AccessToken,
	scope *models.Scope,
) error {
	if err := requireID(token.ID); err != nil {
		return err
	}

	return s.kv.PushSet(
		ctx,
		token.ID,
		kv.NamespaceAccessTokenScopes,
		models.ScopeRef{ID: scope.ID},
	)
}

// Delete removes the record, its index entry and its whole scope
// association set. Refresh tokens pointing at this token are left alone.
func (s *AccessTokenStore) Delete(ctx context.Context, token *models.AccessToken) error {
	id := token.ID
	if err := requireID(id); err != nil {
		return err
	}

	return s.runDelete(ctx, ArtifactAccessToken, id,
		step{"record", func(ctx context.Context) error {
			return s.kv.DeleteKey(ctx, id, kv.NamespaceAccessTokens)
		}},
		step{"index", func(ctx context.Context) error {
			return s.kv.DeleteSet(ctx, "", kv.NamespaceAccessTokens, id)
		}},
		step{"scopes", func(ctx context.Context) error {
			return s.kv.DeleteKey(ctx, id, kv.NamespaceAccessTokenScopes)
		}},
	)
}
