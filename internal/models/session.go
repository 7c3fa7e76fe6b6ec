package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SessionID is an opaque reference to a session owned by the grant engine.
//
// Existing datasets carry it either as a JSON string or as a JSON number,
// so decoding accepts both. It always encodes as a string.
type SessionID string

// UnmarshalJSON implements json.Unmarshaler.
func (s *SessionID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = SessionID(str)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("session_id: expected string or number, got %s", data)
	}
	*s = SessionID(num.String())
	return nil
}

// String returns the session id as a plain string.
func (s SessionID) String() string {
	return string(s)
}
