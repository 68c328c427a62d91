// Package session owns the persisted authentication pair: the bearer token
// and the cached user snapshot taken at login time. The pair is written and
// cleared atomically; no reader can observe one half without the other.
package session

import (
	"context"

	"github.com/jobdeck/jobdeck/internal/client/models"
)

// Session is the client-held proof of authentication. A non-nil session
// always carries both a non-empty token and the user it was issued with.
type Session struct {
	Token string
	User  models.UserSummary
}

// Store persists the session pair.
//
// Contract:
//   - Load returns (nil, nil) when no usable pair exists; missing entries,
//     malformed JSON, or a structurally invalid/expired token all fail soft.
//   - Save writes both entries in one transaction.
//   - Clear removes both entries in one transaction.
type Store interface {
	Load(ctx context.Context) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Clear(ctx context.Context) error
}
