package boardtests

import (
	"github.com/forumlab/board-contract-tests/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func DoVoteTests(t *T) {
	t.Run("the first vote on a target succeeds and a duplicate conflicts", func(t *T) {
		_, _, post := t.CreatePostedThread()
		voter := t.RegisterMember()

		req := api.VoteCreateRequest{TargetType: api.TargetPost, TargetID: post.ID, Value: api.VoteUp}
		vote, err := t.Client().CastVote(t.Context(), voter.Session, req)
		require.NoError(t, err)
		t.RequireShape("vote", vote)
		assert.Equal(t, voter.Session.UserID, vote.VoterID)

		_, err = t.Client().CastVote(t.Context(), voter.Session, req)
		t.RequireErrorKind(api.ErrorKindConflict, err)
	})

	t.Run("casting the opposite value switches the vote", func(t *T) {
		t.RequireCapability("vote-switching")

		_, _, post := t.CreatePostedThread()
		voter := t.RegisterMember()

		up, err := t.Client().CastVote(t.Context(), voter.Session,
			api.VoteCreateRequest{TargetType: api.TargetPost, TargetID: post.ID, Value: api.VoteUp})
		require.NoError(t, err)

		down, err := t.Client().CastVote(t.Context(), voter.Session,
			api.VoteCreateRequest{TargetType: api.TargetPost, TargetID: post.ID, Value: api.VoteDown})
		require.NoError(t, err)
		assert.Equal(t, api.VoteDown, down.Value)
		assert.Equal(t, up.ID, down.ID, "switching must update the existing vote, not add a second one")

		page, err := t.Client().Votes(t.Context(), voter.Session,
			api.VoteListParams{TargetType: api.TargetPost, TargetID: post.ID})
		require.NoError(t, err)
		require.Len(t, page.Data, 1)
		assert.Equal(t, api.VoteDown, page.Data[0].Value)
	})

	t.Run("a retracted vote is gone and the member can vote again", func(t *T) {
		owner, _, post := t.CreatePostedThread()
		comment := t.CreateComment(owner, post, nil)
		voter := t.RegisterMember()

		req := api.VoteCreateRequest{TargetType: api.TargetComment, TargetID: comment.ID, Value: api.VoteUp}
		vote, err := t.Client().CastVote(t.Context(), voter.Session, req)
		require.NoError(t, err)

		require.NoError(t, t.Client().RetractVote(t.Context(), voter.Session, vote.ID))

		_, err = t.Client().VoteAt(t.Context(), voter.Session, vote.ID)
		t.RequireErrorKind(api.ErrorKindNotFound, err)

		_, err = t.Client().CastVote(t.Context(), voter.Session, req)
		require.NoError(t, err, "retracting a vote must allow voting on the target again")
	})

	t.Run("a member cannot retract someone else's vote", func(t *T) {
		_, _, post := t.CreatePostedThread()
		voter := t.RegisterMember()
		vote, err := t.Client().CastVote(t.Context(), voter.Session,
			api.VoteCreateRequest{TargetType: api.TargetPost, TargetID: post.ID, Value: api.VoteUp})
		require.NoError(t, err)

		intruder := t.RegisterMember()
		err = t.Client().RetractVote(t.Context(), intruder.Session, vote.ID)
		t.RequireErrorKind(api.ErrorKindPermission, err)
	})

	t.Run("voting on a target that never existed is not found", func(t *T) {
		voter := t.RegisterMember()
		_, err := t.Client().CastVote(t.Context(), voter.Session,
			api.VoteCreateRequest{TargetType: api.TargetPost, TargetID: MissingID(), Value: api.VoteUp})
		t.RequireErrorKind(api.ErrorKindNotFound, err)
	})

	t.Run("a guest cannot vote", func(t *T) {
		_, _, post := t.CreatePostedThread()
		_, err := t.Client().CastVote(t.Context(), nil,
			api.VoteCreateRequest{TargetType: api.TargetPost, TargetID: post.ID, Value: api.VoteUp})
		t.RequireErrorKind(api.ErrorKindAuth, err)
	})

	t.Run("the index scoped to a target honors the page shape", func(t *T) {
		_, _, post := t.CreatePostedThread()
		for i := 0; i < 3; i++ {
			voter := t.RegisterMember()
			_, err := t.Client().CastVote(t.Context(), voter.Session,
				api.VoteCreateRequest{TargetType: api.TargetPost, TargetID: post.ID, Value: api.VoteUp})
			require.NoError(t, err)
		}

		page, err := t.Client().Votes(t.Context(), t.Session(),
			api.VoteListParams{TargetType: api.TargetPost, TargetID: post.ID})
		require.NoError(t, err)
		t.RequirePageShape("vote", page)
		assert.Equal(t, 3, page.Pagination.Records)
	})
}
