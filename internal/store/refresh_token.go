package store

import (
	"context"

	"github.com/fahmiardi/oauth2-server-redis/internal/kv"
	"github.com/fahmiardi/oauth2-server-redis/internal/models"
)

// RefreshTokenStore persists refresh tokens. Refresh tokens carry no scopes.
//
// Keys:
//
//	oauth:refresh:tokens:<id>  record {id, expire_time, access_token_id}
//	oauth:refresh:tokens       index set of ids
type RefreshTokenStore struct {
	kv *kv.Adapter
	options
}

// NewRefreshTokenStore creates a RefreshTokenStore on top of adapter.
func NewRefreshTokenStore(adapter *kv.Adapter, opts ...Option) *RefreshTokenStore {
	return &RefreshTokenStore{kv: adapter, options: newOptions(opts)}
}

// Get returns the refresh token with the given id, or nil if it does not
// exist or has expired. Expired records stay in the backend until Delete.
func (s *RefreshTokenStore) Get(ctx context.Context, id string) (*models.RefreshToken, error) {
	var token models.RefreshToken
	found, err := s.kv.GetValue(ctx, id, kv.NamespaceRefreshTokens, &token)
	if err != nil || !found {
		return nil, err
	}

	if token.IsExpired(s.now()) {
		s.recorder.RecordRefreshTokenExpired()
		return nil, nil //nolint:nilnil // expired tokens are reported as absent
	}

	return &token, nil
}

// Create writes the refresh token record and adds its id to the index set.
//
// The returned token carries only ID and ExpireTime. AccessTokenID is
// persisted but not echoed back; existing grant engines depend on that shape.
func (s *RefreshTokenStore) Create(
	ctx context.Context,
	id string,
	expireTime int64,
	accessTokenID string,
) (*models.RefreshToken, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}

	record := models.RefreshToken{
		ID:            id,
		ExpireTime:    expireTime,
		AccessTokenID: accessTokenID,
	}

	if err := s.kv.SetValue(ctx, id, kv.NamespaceRefreshTokens, record); err != nil {
		return nil, err
	}
	if err := s.kv.PushSet(ctx, "", kv.NamespaceRefreshTokens, id); err != nil {
		return nil, err
	}

	s.recorder.RecordArtifactCreated(ArtifactRefreshToken)
	return &models.RefreshToken{ID: id, ExpireTime: expireTime}, nil
}

// Delete removes the record and its index entry.
// The referenced access token is not touched.
func (s *RefreshTokenStore) Delete(ctx context.Context, token *models.RefreshToken) error {
	id := token.ID
	if err := requireID(id); err != nil {
		return err
	}

	return s.runDelete(ctx, ArtifactRefreshToken, id,
		step{"record", func(ctx context.Context) error {
			return s.kv.DeleteKey(ctx, id, kv.NamespaceRefreshTokens)
		}},
		step{"index", func(ctx context.Context) error {
			return s.kv.DeleteSet(ctx, "", kv.NamespaceRefreshTokens, id)
		}},
	)
}
