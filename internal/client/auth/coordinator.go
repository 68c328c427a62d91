// Package auth owns the client's authentication state machine. It is the
// single writer of the session store; everything else observes state through
// subscriptions or snapshot accessors.
package auth

import (
	"context"

	"github.com/jobdeck/jobdeck/internal/client/api"
	"github.com/jobdeck/jobdeck/internal/client/models"
	"github.com/jobdeck/jobdeck/internal/client/session"
	"github.com/jobdeck/jobdeck/internal/logging"
)

// State is the externally observable authentication state.
type State string

const (
	StateUnauthenticated State = "unauthenticated"
	StateAuthenticating  State = "authenticating"
	StateAuthenticated   State = "authenticated"
)

const (
	loginFallback    = "Login failed. Please check your credentials."
	registerFallback = "Registration failed. Please try again."
)

// Error carries the user-facing message for a failed login or registration,
// extracted with the priority chain: server message, raw body, transport
// text, generic fallback.
type Error struct {
	Message string
	cause   error
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.cause }

func newError(cause error, fallback string) *Error {
	return &Error{Message: api.UserMessage(cause, fallback), cause: cause}
}

// Authenticator is the slice of the API client the coordinator needs.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*api.AuthResponse, error)
	Register(ctx context.Context, name, email, password string, role models.Role) (*api.AuthResponse, error)
}

// Coordinator wraps the session store and the API's auth endpoints. All
// methods are driven from the single UI loop; the coordinator itself takes
// no locks.
type Coordinator struct {
	client Authenticator
	store  session.Store
	log    logging.Logger

	state State
	sess  *session.Session
	subs  []func(State)
}

func NewCoordinator(client Authenticator, store session.Store, log logging.Logger) *Coordinator {
	if log == nil {
		log = logging.NewNop()
	}
	return &Coordinator{client: client, store: store, log: log, state: StateUnauthenticated}
}

// Hydrate synchronously restores a persisted session at process start. The
// cached user is trusted as-is; it is not re-validated against the server
// until the next authenticated call fails.
func (c *Coordinator) Hydrate(ctx context.Context) error {
	sess, err := c.store.Load(ctx)
	if err != nil {
		return err
	}
	if sess == nil {
		return nil
	}
	c.sess = sess
	c.setState(StateAuthenticated)
	return nil
}

// State returns the current authentication state.
func (c *Coordinator) State() State { return c.state }

// CurrentUser returns the cached user snapshot, if authenticated.
func (c *Coordinator) CurrentUser() (models.UserSummary, bool) {
	if c.sess == nil {
		return models.UserSummary{}, false
	}
	return c.sess.User, true
}

// Token returns the current bearer token, or "" when signed out. It satisfies
// api.TokenSource.
func (c *Coordinator) Token() string {
	if c.sess == nil {
		return ""
	}
	return c.sess.Token
}

// Subscribe registers a listener invoked synchronously on every state
// transition.
func (c *Coordinator) Subscribe(fn func(State)) {
	c.subs = append(c.subs, fn)
}

func (c *Coordinator) setState(s State) {
	if c.state == s {
		return
	}
	c.state = s
	for _, fn := range c.subs {
		fn(s)
	}
}

// Login authenticates against the server. On success the extracted
// token/user pair is persisted atomically and the coordinator moves to
// Authenticated. On failure the previous state is restored and the returned
// *Error carries the user-facing message.
func (c *Coordinator) Login(ctx context.Context, email, password string) (models.UserSummary, error) {
	return c.flow(ctx, loginFallback, func() (*api.AuthResponse, error) {
		return c.client.Login(ctx, email, password)
	})
}

// Register creates an account; same success/failure contract as Login.
func (c *Coordinator) Register(ctx context.Context, name, email, password string, role models.Role) (models.UserSummary, error) {
	return c.flow(ctx, registerFallback, func() (*api.AuthResponse, error) {
		return c.client.Register(ctx, name, email, password, role)
	})
}

func (c *Coordinator) flow(ctx context.Context, fallback string, call func() (*api.AuthResponse, error)) (models.UserSummary, error) {
	prev := c.state
	c.setState(StateAuthenticating)

	resp, err := call()
	if err != nil {
		c.setState(prev)
		return models.UserSummary{}, newError(err, fallback)
	}

	sess := &session.Session{Token: resp.Token, User: resp.User()}
	if err := c.store.Save(ctx, sess); err != nil {
		c.log.Error(ctx, "failed to persist session", "error", err)
		c.setState(prev)
		return models.UserSummary{}, newError(err, fallback)
	}

	c.sess = sess
	c.setState(StateAuthenticated)
	return sess.User, nil
}

// Logout clears the persisted pair and moves to Unauthenticated. It always
// succeeds from the caller's point of view; a store failure is only logged.
func (c *Coordinator) Logout(ctx context.Context) {
	if err := c.store.Clear(ctx); err != nil {
		c.log.Error(ctx, "failed to clear session", "error", err)
	}
	c.sess = nil
	c.setState(StateUnauthenticated)
}
