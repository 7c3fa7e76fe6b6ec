package store

import (
	"context"

	"github.com/fahmiardi/oauth2-server-redis/internal/kv"
	"github.com/fahmiardi/oauth2-server-redis/internal/models"
)

// AuthCodeStore persists authorization codes and their scope associations.
//
// Keys:
//
//	oauth:auth:codes:<id>        record {id, expire_time, session_id, client_redirect_uri}
//	oauth:auth:codes             index set of ids
//	oauth:auth:code:scopes:<id>  set of {"id": <scope>}
type AuthCodeStore struct {
	kv *kv.Adapter
	options
}

// NewAuthCodeStore creates an AuthCodeStore on top of adapter.
func NewAuthCodeStore(adapter *kv.Adapter, opts ...Option) *AuthCodeStore {
	return &AuthCodeStore{kv: adapter, options: newOptions(opts)}
}

// Get returns the authorization code with the given id, or nil if it does not exist.
func (s *AuthCodeStore) Get(ctx context.Context, id string) (*models.AuthCode, error) {
	var code models.AuthCode
	found, err := s.kv.GetValue(ctx, id, kv.NamespaceAuthCodes, &code)
	if err != nil || !found {
		return nil, err
	}
	return &code, nil
}

// GetScopes returns the scopes associated with code.
// Associated scopes that no longer exist are skipped.
func (s *AuthCodeStore) GetScopes(ctx context.Context, code *models.AuthCode) ([]models.Scope, error) {
	return resolveScopes(ctx, s.kv, s.options, ArtifactAuthCode, code.ID, kv.NamespaceAuthCodeScopes)
}

// Create writes the code record, adds its id to the index set and returns
// the new code.
func (s *AuthCodeStore) Create(
	ctx context.Context,
	id string,
	expireTime int64,
	sessionID models.SessionID,
	redirectURI string,
) (*models.AuthCode, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}

	code := &models.AuthCode{
		ID:          id,
		ExpireTime:  expireTime,
		SessionID:   sessionID,
		RedirectURI: redirectURI,
	}

	if err := s.kv.SetValue(ctx, id, kv.NamespaceAuthCodes, code); err != nil {
		return nil, err
	}
	if err := s.kv.PushSet(ctx, "", kv.NamespaceAuthCodes, id); err != nil {
		return nil, err
	}

	s.recorder.RecordArtifactCreated(ArtifactAuthCode)
	return code, nil
}

// AssociateScope adds scope to the code's association set.
func (s *AuthCodeStore) AssociateScope(
	ctx context.Context,
	code *models.AuthCode,
	scope *models.Scope,
) error {
	if err := requireID(code.ID); err != nil {
		return err
	}

	return s.kv.PushSet(ctx, code.ID, kv.NamespaceAuthCodeScopes, models.ScopeRef{ID: scope.ID})
}

// Delete removes the record, its index entry and its whole scope association set.
func (s *AuthCodeStore) Delete(ctx context.Context, code *models.AuthCode) error {
	id := code.ID
	if err := requireID(id); err != nil {
		return err
	}

	return s.runDelete(ctx, ArtifactAuthCode, id,
		step{"record", func(ctx context.Context) error {
			return s.kv.DeleteKey(ctx, id, kv.NamespaceAuthCodes)
		}},
		step{"index", func(ctx context.Context) error {
			return s.kv.DeleteSet(ctx, "", kv.NamespaceAuthCodes, id)
		}},
		step{"scopes", func(ctx context.Context) error {
			return s.kv.DeleteKey(ctx, id, kv.NamespaceAuthCodeScopes)
		}},
	)
}
