package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobdeck/jobdeck/internal/client/api"
	"github.com/jobdeck/jobdeck/internal/client/models"
	"github.com/jobdeck/jobdeck/internal/client/session"
)

type fakeAuthClient struct {
	resp *api.AuthResponse
	err  error

	lastEmail    string
	lastPassword string
	lastName     string
	lastRole     models.Role
}

func (f *fakeAuthClient) Login(_ context.Context, email, password string) (*api.AuthResponse, error) {
	f.lastEmail, f.lastPassword = email, password
	return f.resp, f.err
}

func (f *fakeAuthClient) Register(_ context.Context, name, email, password string, role models.Role) (*api.AuthResponse, error) {
	f.lastName, f.lastEmail, f.lastPassword, f.lastRole = name, email, password, role
	return f.resp, f.err
}

type memStore struct {
	sess    *session.Session
	saveErr error
	loadErr error
}

func (m *memStore) Load(context.Context) (*session.Session, error) { return m.sess, m.loadErr }
func (m *memStore) Save(_ context.Context, s *session.Session) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.sess = s
	return nil
}
func (m *memStore) Clear(context.Context) error { m.sess = nil; return nil }

func okResponse() *api.AuthResponse {
	return &api.AuthResponse{Token: "tok-1", ID: 7, Name: "Alice", Email: "alice@example.org", Role: models.RoleEmployee}
}

func TestHydrate_RestoresPersistedSession(t *testing.T) {
	store := &memStore{sess: &session.Session{Token: "tok", User: okResponse().User()}}
	c := NewCoordinator(&fakeAuthClient{}, store, nil)

	require.NoError(t, c.Hydrate(context.Background()))
	assert.Equal(t, StateAuthenticated, c.State())

	user, ok := c.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "alice@example.org", user.Email)
	assert.Equal(t, "tok", c.Token())
}

func TestHydrate_NoSession_StaysUnauthenticated(t *testing.T) {
	c := NewCoordinator(&fakeAuthClient{}, &memStore{}, nil)

	require.NoError(t, c.Hydrate(context.Background()))
	assert.Equal(t, StateUnauthenticated, c.State())
	assert.Empty(t, c.Token())
}

func TestLogin_Success_SavesPairAndNotifies(t *testing.T) {
	client := &fakeAuthClient{resp: okResponse()}
	store := &memStore{}
	c := NewCoordinator(client, store, nil)

	var seen []State
	c.Subscribe(func(s State) { seen = append(seen, s) })

	user, err := c.Login(context.Background(), "alice@example.org", "secret")
	require.NoError(t, err)

	assert.Equal(t, "alice@example.org", client.lastEmail)
	assert.Equal(t, "secret", client.lastPassword)
	assert.Equal(t, okResponse().User(), user)
	assert.Equal(t, StateAuthenticated, c.State())
	assert.Equal(t, []State{StateAuthenticating, StateAuthenticated}, seen)

	// The store holds exactly the pair from the response.
	require.NotNil(t, store.sess)
	assert.Equal(t, "tok-1", store.sess.Token)
	assert.Equal(t, okResponse().User(), store.sess.User)
}

func TestLogin_Failure_RestoresPreviousState(t *testing.T) {
	client := &fakeAuthClient{err: &api.StatusError{Status: 401, Message: "bad credentials"}}
	c := NewCoordinator(client, &memStore{}, nil)

	_, err := c.Login(context.Background(), "alice@example.org", "wrong")
	require.Error(t, err)

	var ae *Error
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, "bad credentials", ae.Message)
	assert.Equal(t, StateUnauthenticated, c.State())
}

func TestLogin_Failure_WhileAuthenticated_KeepsOldSession(t *testing.T) {
	store := &memStore{sess: &session.Session{Token: "old-tok", User: okResponse().User()}}
	c := NewCoordinator(&fakeAuthClient{resp: okResponse()}, store, nil)
	require.NoError(t, c.Hydrate(context.Background()))

	failing := &fakeAuthClient{err: errors.New("connection refused")}
	c.client = failing

	_, err := c.Login(context.Background(), "other@example.org", "pw")
	require.Error(t, err)

	assert.Equal(t, StateAuthenticated, c.State())
	assert.Equal(t, "old-tok", c.Token())
}

func TestLogin_FallbackMessage_WhenErrorIsBare(t *testing.T) {
	client := &fakeAuthClient{err: &api.StatusError{Status: 500}}
	c := NewCoordinator(client, &memStore{}, nil)

	_, err := c.Login(context.Background(), "a@x.com", "pw")
	var ae *Error
	require.True(t, errors.As(err, &ae))
	// No server message and no body: falls through to the error text, which
	// still names the status.
	assert.Contains(t, ae.Message, "500")
}

func TestLogin_SaveFailure_IsAFailure(t *testing.T) {
	store := &memStore{saveErr: errors.New("disk full")}
	c := NewCoordinator(&fakeAuthClient{resp: okResponse()}, store, nil)

	_, err := c.Login(context.Background(), "a@x.com", "pw")
	require.Error(t, err)
	assert.Equal(t, StateUnauthenticated, c.State())
	assert.Empty(t, c.Token())
}

func TestRegister_PostsFourFields(t *testing.T) {
	client := &fakeAuthClient{resp: okResponse()}
	c := NewCoordinator(client, &memStore{}, nil)

	_, err := c.Register(context.Background(), "Alice", "alice@example.org", "secret", models.RoleEmployee)
	require.NoError(t, err)

	assert.Equal(t, "Alice", client.lastName)
	assert.Equal(t, "alice@example.org", client.lastEmail)
	assert.Equal(t, "secret", client.lastPassword)
	assert.Equal(t, models.RoleEmployee, client.lastRole)
	assert.Equal(t, StateAuthenticated, c.State())
}

func TestLogout_AlwaysUnauthenticated(t *testing.T) {
	store := &memStore{sess: &session.Session{Token: "tok", User: okResponse().User()}}
	c := NewCoordinator(&fakeAuthClient{}, store, nil)
	require.NoError(t, c.Hydrate(context.Background()))

	var seen []State
	c.Subscribe(func(s State) { seen = append(seen, s) })

	c.Logout(context.Background())

	assert.Equal(t, StateUnauthenticated, c.State())
	assert.Nil(t, store.sess, "both persisted entries cleared")
	assert.Empty(t, c.Token())
	assert.Equal(t, []State{StateUnauthenticated}, seen)

	// Logging out again is a no-op transition: no second notification.
	c.Logout(context.Background())
	assert.Equal(t, []State{StateUnauthenticated}, seen)
}
