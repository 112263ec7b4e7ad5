package boardtests

import (
	"github.com/forumlab/board-contract-tests/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func DoModerationTests(t *T) {
	t.RequireCapability("moderation")

	t.Run("a moderator can act on a member's post", func(t *T) {
		_, _, post := t.CreatePostedThread()
		moderator := t.RegisterModerator()

		action, err := t.Client().CreateModerationAction(t.Context(), moderator.Session,
			api.ModerationActionCreateRequest{
				TargetType: api.TargetPost,
				TargetID:   post.ID,
				Action:     api.ModerationHide,
				Reason:     randomBody(),
			})
		require.NoError(t, err)
		t.RequireShape("moderation_action", action)
		assert.Equal(t, moderator.Session.UserID, action.ModeratorID)

		fetched, err := t.Client().ModerationActionAt(t.Context(), moderator.Session, action.ID)
		require.NoError(t, err)
		assert.Equal(t, action.ID, fetched.ID)
	})

	t.Run("a member cannot create a moderation action", func(t *T) {
		member, _, post := t.CreatePostedThread()
		_, err := t.Client().CreateModerationAction(t.Context(), member.Session,
			api.ModerationActionCreateRequest{
				TargetType: api.TargetPost,
				TargetID:   post.ID,
				Action:     api.ModerationHide,
				Reason:     "self-moderation",
			})
		t.RequireErrorKind(api.ErrorKindPermission, err)
	})

	t.Run("an administrator can also moderate", func(t *T) {
		_, _, post := t.CreatePostedThread()
		admin := t.RegisterAdministrator()
		_, err := t.Client().CreateModerationAction(t.Context(), admin.Session,
			api.ModerationActionCreateRequest{
				TargetType: api.TargetPost,
				TargetID:   post.ID,
				Action:     api.ModerationLock,
				Reason:     randomBody(),
			})
		require.NoError(t, err)
	})

	t.Run("acting on a target that never existed is not found", func(t *T) {
		moderator := t.RegisterModerator()
		_, err := t.Client().CreateModerationAction(t.Context(), moderator.Session,
			api.ModerationActionCreateRequest{
				TargetType: api.TargetComment,
				TargetID:   MissingID(),
				Action:     api.ModerationWarn,
				Reason:     randomBody(),
			})
		t.RequireErrorKind(api.ErrorKindNotFound, err)
	})

	t.Run("an unknown action type is invalid", func(t *T) {
		_, _, post := t.CreatePostedThread()
		moderator := t.RegisterModerator()
		_, err := t.Client().CreateModerationAction(t.Context(), moderator.Session,
			api.ModerationActionCreateRequest{
				TargetType: api.TargetPost,
				TargetID:   post.ID,
				Action:     api.ModerationActionType("obliterate"),
				Reason:     randomBody(),
			})
		t.RequireErrorKind(api.ErrorKindValidation, err)
	})

	t.Run("the index scoped to a target lists its actions", func(t *T) {
		_, _, post := t.CreatePostedThread()
		moderator := t.RegisterModerator()
		for _, kind := range []api.ModerationActionType{api.ModerationWarn, api.ModerationHide} {
			_, err := t.Client().CreateModerationAction(t.Context(), moderator.Session,
				api.ModerationActionCreateRequest{
					TargetType: api.TargetPost,
					TargetID:   post.ID,
					Action:     kind,
					Reason:     randomBody(),
				})
			require.NoError(t, err)
		}

		page, err := t.Client().ModerationActions(t.Context(), moderator.Session,
			api.ModerationActionListParams{TargetType: api.TargetPost, TargetID: post.ID})
		require.NoError(t, err)
		t.RequirePageShape("moderation_action", page)
		assert.Equal(t, 2, page.Pagination.Records)
	})
}
