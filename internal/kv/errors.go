package kv

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrKeyNotFound indicates the requested key does not exist in the backend
	ErrKeyNotFound = errors.New("kv: key not found")

	// ErrBackendUnavailable indicates a backend command failed
	ErrBackendUnavailable = errors.New("kv: backend unavailable")

	// ErrInvalidValue indicates a stored value cannot be encoded or decoded
	ErrInvalidValue = errors.New("kv: invalid value")

	// ErrWrongType indicates a command was issued against a key holding
	// a different kind of value (string vs set)
	ErrWrongType = errors.New("kv: operation against a key holding the wrong kind of value")

	// ErrEmptyID indicates a record operation was given an empty id, which
	// would address the kind-wide index set instead of a record
	ErrEmptyID = errors.New("kv: empty record id")
)

// wrapRedisError classifies an error returned by a Redis client.
// WRONGTYPE replies map to ErrWrongType, everything else to ErrBackendUnavailable.
func wrapRedisError(err error) error {
	if strings.HasPrefix(err.Error(), "WRONGTYPE") {
		return fmt.Errorf("%w: %w", ErrWrongType, err)
	}
	return fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
}
