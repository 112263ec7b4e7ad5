package boardtests

import (
	"github.com/forumlab/board-contract-tests/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func DoCommentTests(t *T) {
	t.Run("a created comment can immediately be fetched by its id", func(t *T) {
		owner, _, post := t.CreatePostedThread()
		comment := t.CreateComment(owner, post, nil)
		t.RequireShape("comment", comment)

		fetched, err := t.Client().CommentAt(t.Context(), owner.Session, comment.ID)
		require.NoError(t, err)
		assert.Equal(t, comment.ID, fetched.ID)
		assert.Equal(t, post.ID, fetched.PostID)
	})

	t.Run("another member can comment on the post", func(t *T) {
		_, _, post := t.CreatePostedThread()
		replier := t.RegisterMember()
		comment := t.CreateComment(replier, post, nil)
		assert.Equal(t, replier.Session.UserID, comment.AuthorID)
	})

	t.Run("a reply nests under its parent comment", func(t *T) {
		t.RequireCapability("comment-threading")

		owner, _, post := t.CreatePostedThread()
		parent := t.CreateComment(owner, post, nil)
		reply := t.CreateComment(owner, post, &api.CommentCreateRequest{
			Body:     randomBody(),
			ParentID: &parent.ID,
		})
		require.NotNil(t, reply.ParentID)
		assert.Equal(t, parent.ID, *reply.ParentID)
	})

	t.Run("commenting on a post that never existed is not found", func(t *T) {
		member := t.RegisterMember()
		_, err := t.Client().CreateComment(t.Context(), member.Session, MissingID(),
			api.CommentCreateRequest{Body: randomBody()})
		t.RequireErrorKind(api.ErrorKindNotFound, err)
	})

	t.Run("an empty comment body is invalid", func(t *T) {
		owner, _, post := t.CreatePostedThread()
		_, err := t.Client().CreateComment(t.Context(), owner.Session, post.ID,
			api.CommentCreateRequest{Body: ""})
		t.RequireErrorKind(api.ErrorKindValidation, err)
	})

	t.Run("erase is a soft delete", func(t *T) {
		owner, _, post := t.CreatePostedThread()
		comment := t.CreateComment(owner, post, nil)

		erased, err := t.Client().EraseComment(t.Context(), owner.Session, comment.ID)
		require.NoError(t, err)
		require.NotNil(t, erased.DeletedAt)
		assert.Equal(t, comment.Body, erased.Body)

		_, err = t.Client().EraseComment(t.Context(), owner.Session, comment.ID)
		t.RequireErrorKind(api.ErrorKindNotFound, err)
	})

	t.Run("a non-owner cannot erase someone else's comment", func(t *T) {
		owner, _, post := t.CreatePostedThread()
		comment := t.CreateComment(owner, post, nil)
		intruder := t.RegisterMember()

		_, err := t.Client().EraseComment(t.Context(), intruder.Session, comment.ID)
		t.RequireErrorKind(api.ErrorKindPermission, err)
	})

	t.Run("the index scoped to a post only returns its comments", func(t *T) {
		owner, thread, post := t.CreatePostedThread()
		other := t.CreatePost(owner, thread, nil)
		mine := t.CreateComment(owner, post, nil)
		t.CreateComment(owner, other, nil)

		page, err := t.Client().Comments(t.Context(), owner.Session, api.CommentListParams{PostID: post.ID})
		require.NoError(t, err)
		t.RequirePageShape("comment", page)
		require.Len(t, page.Data, 1)
		assert.Equal(t, mine.ID, page.Data[0].ID)
	})
}
