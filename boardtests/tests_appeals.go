package boardtests

import (
	"github.com/forumlab/board-contract-tests/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// moderatedPost sets up the prefix every appeal scenario needs: a member
// whose post has been hidden by a moderator.
func moderatedPost(t *T) (author *Actor, action api.ModerationAction) {
	author, _, post := t.CreatePostedThread()
	moderator := t.RegisterModerator()
	action, err := t.Client().CreateModerationAction(t.Context(), moderator.Session,
		api.ModerationActionCreateRequest{
			TargetType: api.TargetPost,
			TargetID:   post.ID,
			Action:     api.ModerationHide,
			Reason:     randomBody(),
		})
	require.NoError(t, err, "could not create prerequisite moderation action")
	return author, action
}

func DoAppealTests(t *T) {
	t.RequireCapability("appeals")
	t.RequireCapability("moderation")

	t.Run("the moderated author can open an appeal", func(t *T) {
		author, action := moderatedPost(t)
		t.LoginAs(author)

		appeal, err := t.Client().CreateAppeal(t.Context(), t.Session(),
			api.AppealCreateRequest{ActionID: action.ID, Body: randomBody()})
		require.NoError(t, err)
		t.RequireShape("appeal", appeal)
		assert.Equal(t, api.AppealPending, appeal.Status)
		assert.Equal(t, author.Session.UserID, appeal.AppellantID)
		assert.Nil(t, appeal.ResolvedAt)
	})

	t.Run("a bystander cannot appeal someone else's moderation", func(t *T) {
		_, action := moderatedPost(t)
		bystander := t.RegisterMember()

		_, err := t.Client().CreateAppeal(t.Context(), bystander.Session,
			api.AppealCreateRequest{ActionID: action.ID, Body: randomBody()})
		t.RequireErrorKind(api.ErrorKindPermission, err)
	})

	t.Run("an administrator resolves an appeal exactly once", func(t *T) {
		author, action := moderatedPost(t)
		t.LoginAs(author)
		appeal, err := t.Client().CreateAppeal(t.Context(), t.Session(),
			api.AppealCreateRequest{ActionID: action.ID, Body: randomBody()})
		require.NoError(t, err)

		admin := t.RegisterAdministrator()
		resolved, err := t.Client().ResolveAppeal(t.Context(), admin.Session, appeal.ID,
			api.AppealResolveRequest{Status: api.AppealAccepted})
		require.NoError(t, err)
		assert.Equal(t, api.AppealAccepted, resolved.Status)
		require.NotNil(t, resolved.ResolvedAt)

		_, err = t.Client().ResolveAppeal(t.Context(), admin.Session, appeal.ID,
			api.AppealResolveRequest{Status: api.AppealRejected})
		t.RequireErrorKind(api.ErrorKindConflict, err)
	})

	t.Run("a member cannot resolve an appeal", func(t *T) {
		author, action := moderatedPost(t)
		t.LoginAs(author)
		appeal, err := t.Client().CreateAppeal(t.Context(), t.Session(),
			api.AppealCreateRequest{ActionID: action.ID, Body: randomBody()})
		require.NoError(t, err)

		_, err = t.Client().ResolveAppeal(t.Context(), author.Session, appeal.ID,
			api.AppealResolveRequest{Status: api.AppealAccepted})
		t.RequireErrorKind(api.ErrorKindPermission, err)
	})

	t.Run("resolving with a status outside the lifecycle is invalid", func(t *T) {
		author, action := moderatedPost(t)
		t.LoginAs(author)
		appeal, err := t.Client().CreateAppeal(t.Context(), t.Session(),
			api.AppealCreateRequest{ActionID: action.ID, Body: randomBody()})
		require.NoError(t, err)

		admin := t.RegisterAdministrator()
		_, err = t.Client().ResolveAppeal(t.Context(), admin.Session, appeal.ID,
			api.AppealResolveRequest{Status: api.AppealStatus("pending")})
		t.RequireErrorKind(api.ErrorKindValidation, err)
	})

	t.Run("appealing an action that never existed is not found", func(t *T) {
		member := t.RegisterMember()
		_, err := t.Client().CreateAppeal(t.Context(), member.Session,
			api.AppealCreateRequest{ActionID: MissingID(), Body: randomBody()})
		t.RequireErrorKind(api.ErrorKindNotFound, err)
	})

	t.Run("the index filters by status", func(t *T) {
		author, action := moderatedPost(t)
		t.LoginAs(author)
		appeal, err := t.Client().CreateAppeal(t.Context(), t.Session(),
			api.AppealCreateRequest{ActionID: action.ID, Body: randomBody()})
		require.NoError(t, err)

		admin := t.RegisterAdministrator()
		page, err := t.Client().Appeals(t.Context(), admin.Session,
			api.AppealListParams{Status: api.AppealPending})
		require.NoError(t, err)
		t.RequirePageShape("appeal", page)

		found := false
		for _, a := range page.Data {
			assert.Equal(t, api.AppealPending, a.Status)
			if a.ID == appeal.ID {
				found = true
			}
		}
		assert.True(t, found, "the fresh pending appeal should be in the pending index")
	})
}
