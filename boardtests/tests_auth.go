package boardtests

import (
	"github.com/forumlab/board-contract-tests/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func DoAuthTests(t *T) {
	t.Run("join returns a well-formed session for each role", func(t *T) {
		for _, actor := range []*Actor{
			t.RegisterMember(),
			t.RegisterModerator(),
			t.RegisterAdministrator(),
		} {
			t.RequireShape("session", actor.Session)
			assert.Equal(t, actor.Role, actor.Session.Role, "session role does not match the join endpoint used")
			assert.NotEmpty(t, actor.Session.UserID)
		}
	})

	t.Run("a fresh session grants access immediately", func(t *T) {
		member := t.RegisterMember()
		thread, err := t.Client().CreateThread(t.Context(), member.Session, api.ThreadCreateRequest{Title: randomTitle()})
		require.NoError(t, err)
		assert.Equal(t, member.Session.UserID, thread.AuthorID)
	})

	t.Run("the same privileged call without a session is unauthorized", func(t *T) {
		_, err := t.Client().CreateThread(t.Context(), nil, api.ThreadCreateRequest{Title: randomTitle()})
		t.RequireErrorKind(api.ErrorKindAuth, err)
	})

	t.Run("a garbage token is unauthorized", func(t *T) {
		bogus := &api.Session{UserID: MissingID(), Role: api.RoleMember, Token: "not-a-real-token"}
		_, err := t.Client().CreateThread(t.Context(), bogus, api.ThreadCreateRequest{Title: randomTitle()})
		t.RequireErrorKind(api.ErrorKindAuth, err)
	})

	t.Run("joining twice with the same identity is rejected", func(t *T) {
		member := t.RegisterMember()
		_, err := t.Client().JoinMember(t.Context(), member.Credentials)
		t.RequireErrorKind(api.ErrorKindConflict, err)
	})

	t.Run("login with a wrong password is rejected", func(t *T) {
		member := t.RegisterMember()
		badCreds := member.Credentials
		badCreds.Password = "wrong-" + badCreds.Password
		_, err := t.Client().LoginMember(t.Context(), badCreds)
		t.RequireErrorKind(api.ErrorKindAuth, err)
	})

	t.Run("login for an identity that never joined is rejected", func(t *T) {
		_, err := t.Client().LoginMember(t.Context(), randomCredentials())
		t.RequireErrorKind(api.ErrorKindAuth, err)
	})

	t.Run("login switches the active actor", func(t *T) {
		first := t.RegisterMember()
		second := t.RegisterMember()
		assert.Same(t, second, t.ActiveActor())

		t.LoginAs(first)
		assert.Same(t, first, t.ActiveActor())
		assert.Equal(t, first.Session.UserID, t.Session().UserID)
	})

	t.Run("a scoped role switch restores the previous actor", func(t *T) {
		member := t.RegisterMember()
		moderator := t.RegisterModerator()
		t.LoginAs(member)

		ran := false
		t.WithRole(moderator, func() {
			ran = true
			assert.Equal(t, api.RoleModerator, t.Session().Role)
		})
		assert.True(t, ran)
		assert.Same(t, member, t.ActiveActor(), "active actor was not restored after the scoped switch")
	})

	t.Run("join with missing required fields is invalid", func(t *T) {
		_, err := t.Client().JoinMember(t.Context(), api.Credentials{Email: "", Password: ""})
		t.RequireErrorKind(api.ErrorKindValidation, err)
	})
}
