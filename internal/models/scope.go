package models

// Scope is a scope definition owned by the scopes namespace.
// The storage layer only reads it.
type Scope struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// ScopeRef is a member of an artifact's scope association set.
type ScopeRef struct {
	ID string `json:"id"`
}
