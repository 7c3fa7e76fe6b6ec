package models

// AuthCode stores an OAuth 2.0 authorization code (RFC 6749).
// RedirectURI is kept so the grant engine can compare it on exchange.
type AuthCode struct {
	ID          string    `json:"id"`
	ExpireTime  int64     `json:"expire_time"`
	SessionID   SessionID `json:"session_id"`
	RedirectURI string    `json:"client_redirect_uri"`
}
