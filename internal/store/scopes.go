package store

import (
	"context"

	"go.uber.org/zap"

	"github.com/fahmiardi/oauth2-server-redis/internal/kv"
	"github.com/fahmiardi/oauth2-server-redis/internal/models"
)

// resolveScopes reads the association set of an artifact and looks up each
// referenced scope. Scopes that no longer exist are skipped, so the result
// may be shorter than the association set. An empty id owns no scopes.
func resolveScopes(
	ctx context.Context,
	adapter *kv.Adapter,
	o options,
	artifact, id, namespace string,
) ([]models.Scope, error) {
	if id == "" {
		return []models.Scope{}, nil
	}

	refs, err := kv.GetSetInto[models.ScopeRef](ctx, adapter, id, namespace)
	if err != nil {
		return nil, err
	}

	scopes := make([]models.Scope, 0, len(refs))
	for _, ref := range refs {
		var scope models.Scope
		found, err := adapter.GetValue(ctx, ref.ID, kv.NamespaceScopes, &scope)
		if err != nil {
			return nil, err
		}
		if !found {
			o.logger.Debug("skipping missing scope",
				zap.String("artifact", artifact),
				zap.String("id", id),
				zap.String("scope", ref.ID),
			)
			o.recorder.RecordScopeMissing(artifact)
			continue
		}

		scopes = append(scopes, scope)
	}

	return scopes, nil
}
