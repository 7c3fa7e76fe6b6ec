package kv

import "strings"

// Namespaces used by the OAuth2 stores. A namespace maps to a key prefix by
// replacing underscores with colons, so "oauth_access_tokens" addresses
// "oauth:access:tokens" (index set) and "oauth:access:tokens:<id>" (record).
const (
	NamespaceAccessTokens      = "oauth_access_tokens"
	NamespaceAccessTokenScopes = "oauth_access_token_scopes"
	NamespaceRefreshTokens     = "oauth_refresh_tokens"
	NamespaceAuthCodes         = "oauth_auth_codes"
	NamespaceAuthCodeScopes    = "oauth_auth_code_scopes"
	NamespaceScopes            = "oauth_scopes"
)

// Key returns the key for id inside namespace. An empty id addresses the
// namespace itself, which is where kind-wide index sets live.
//
// The colon-delimited layout is shared with other OAuth2 server
// implementations and must stay bit-exact.
func Key(namespace, id string) string {
	prefix := strings.ToLower(strings.ReplaceAll(namespace, "_", ":"))
	if id == "" {
		return prefix
	}
	return prefix + ":" + id
}
