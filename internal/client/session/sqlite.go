package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jobdeck/jobdeck/internal/client/models"
	"github.com/jobdeck/jobdeck/internal/common"
	"github.com/jobdeck/jobdeck/internal/dbx"
)

// SQLiteStore keeps the session pair in a key-value table, one row per entry,
// keyed by the fixed names "token" and "user".
type SQLiteStore struct {
	db *sql.DB

	// now is a test seam for the token expiry check.
	now func() time.Time
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db, now: time.Now}
}

func (s *SQLiteStore) get(ctx context.Context, q dbx.DBTX, key string) ([]byte, error) {
	var value []byte
	err := q.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session[%s]: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) set(ctx context.Context, q dbx.DBTX, key string, value []byte) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}

// Load reads the persisted pair. Any defect (a missing entry, user JSON that
// does not parse, a token that is not a well-formed JWT, or one already past
// its expiry) yields (nil, nil) rather than an error.
func (s *SQLiteStore) Load(ctx context.Context) (*Session, error) {
	token, err := s.get(ctx, s.db, common.SessionTokenKey)
	if err != nil {
		return nil, err
	}
	userData, err := s.get(ctx, s.db, common.SessionUserKey)
	if err != nil {
		return nil, err
	}
	if len(token) == 0 || len(userData) == 0 {
		return nil, nil
	}

	var user models.UserSummary
	if err := json.Unmarshal(userData, &user); err != nil {
		return nil, nil
	}
	if !s.tokenUsable(string(token)) {
		return nil, nil
	}

	return &Session{Token: string(token), User: user}, nil
}

// tokenUsable does an unverified structural parse of the stored JWT. The
// signature cannot be checked client-side (the secret lives on the server);
// the parse only rejects garbage and tokens whose exp claim has passed.
func (s *SQLiteStore) tokenUsable(raw string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return false
	}
	if exp != nil && exp.Before(s.now()) {
		return false
	}
	return true
}

// Save writes both entries inside one transaction.
func (s *SQLiteStore) Save(ctx context.Context, sess *Session) error {
	if sess == nil || sess.Token == "" {
		return fmt.Errorf("refusing to save session without a token")
	}
	userData, err := json.Marshal(sess.User)
	if err != nil {
		return fmt.Errorf("failed to serialize user: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.set(ctx, tx, common.SessionTokenKey, []byte(sess.Token)); err != nil {
			return err
		}
		return s.set(ctx, tx, common.SessionUserKey, userData)
	})
}

// Clear removes both entries inside one transaction.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx, `DELETE FROM session WHERE key IN (?, ?)`,
			common.SessionTokenKey, common.SessionUserKey)
		if err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}
		return nil
	})
}
