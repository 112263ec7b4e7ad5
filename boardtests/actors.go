package boardtests

import (
	"github.com/forumlab/board-contract-tests/api"

	"github.com/stretchr/testify/require"
)

// Actor is a test-time identity bound to one of the board's roles. Its
// Session is replaced on every login; the zero Session pointer means the
// actor has not authenticated yet.
type Actor struct {
	Role        api.Role
	Credentials api.Credentials
	Session     *api.Session
}

// RegisterMember joins a new randomly-named member, makes it the active
// actor, and returns it. The test fails immediately if registration is
// rejected.
func (t *T) RegisterMember() *Actor {
	return t.register(api.RoleMember)
}

// RegisterModerator joins a new randomly-named moderator, makes it the
// active actor, and returns it.
func (t *T) RegisterModerator() *Actor {
	return t.register(api.RoleModerator)
}

// RegisterAdministrator joins a new randomly-named administrator, makes it
// the active actor, and returns it.
func (t *T) RegisterAdministrator() *Actor {
	return t.register(api.RoleAdministrator)
}

func (t *T) register(role api.Role) *Actor {
	creds := randomCredentials()
	var sess *api.Session
	var err error
	switch role {
	case api.RoleMember:
		sess, err = t.env.client.JoinMember(t.env.ctx, creds)
	case api.RoleModerator:
		sess, err = t.env.client.JoinModerator(t.env.ctx, creds)
	case api.RoleAdministrator:
		sess, err = t.env.client.JoinAdministrator(t.env.ctx, creds)
	}
	require.NoError(t, err, "could not register a %s actor", role)
	t.Debug("registered %s %s (%s)", role, creds.DisplayName, sess.UserID)

	actor := &Actor{Role: role, Credentials: creds, Session: sess}
	t.active = actor
	return actor
}

// LoginAs re-authenticates the given actor through its role's login
// endpoint, replacing the actor's session, and makes it the active actor.
// This is how scenarios switch between identities; at most one actor is
// active at a time.
func (t *T) LoginAs(actor *Actor) {
	sess, err := t.env.client.Login(t.env.ctx, actor.Role, actor.Credentials)
	require.NoError(t, err, "could not log in as %s", actor.Credentials.DisplayName)
	actor.Session = sess
	t.active = actor
}

// WithRole runs fn with the given actor logged in and active, then restores
// whichever actor was active before, even if fn fails the test.
func (t *T) WithRole(actor *Actor, fn func()) {
	previous := t.active
	t.LoginAs(actor)
	defer func() {
		t.active = previous
	}()
	fn()
}

// ActiveActor returns the currently active actor, or nil if no actor has
// been registered or logged in (a guest).
func (t *T) ActiveActor() *Actor {
	return t.active
}

// Session returns the active actor's session, or nil for a guest.
func (t *T) Session() *api.Session {
	if t.active == nil {
		return nil
	}
	return t.active.Session
}
