// Package common contains shared constants and sentinel errors used across
// jobdeck components.
package common

const (
	// AuthorizationHeaderName carries the bearer token on outbound requests.
	AuthorizationHeaderName = "Authorization"

	// IdempotencyKeyHeaderName carries the per-action key attached to
	// application submissions so the server can reject duplicates.
	IdempotencyKeyHeaderName = "Idempotency-Key"

	// SessionTokenKey and SessionUserKey are the two fixed entry names under
	// which the session pair is persisted.
	SessionTokenKey = "token"
	SessionUserKey  = "user"
)
