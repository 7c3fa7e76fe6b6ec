package models

import "time"

// AccessToken is the persisted form of an issued access token.
// ExpireTime is stored for the grant engine; this layer never enforces it.
type AccessToken struct {
	ID         string    `json:"id"`
	ExpireTime int64     `json:"expire_time"`
	SessionID  SessionID `json:"session_id"`
}

// RefreshToken is the persisted form of an issued refresh token.
// AccessTokenID is a plain reference: deleting the access token does not
// touch the refresh token, and vice versa.
type RefreshToken struct {
	ID            string `json:"id"`
	ExpireTime    int64  `json:"expire_time"`
	AccessTokenID string `json:"access_token_id"`
}

// IsExpired reports whether the token expired strictly before now.
// A token whose expire time equals now is still valid.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return t.ExpireTime < now.Unix()
}
