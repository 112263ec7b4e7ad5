package boardtests

import (
	"github.com/forumlab/board-contract-tests/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func DoPostTests(t *T) {
	t.Run("a created post can immediately be fetched by its id", func(t *T) {
		owner, thread, post := t.CreatePostedThread()
		t.RequireShape("post", post)
		assert.Equal(t, thread.ID, post.ThreadID)

		fetched, err := t.Client().PostAt(t.Context(), owner.Session, post.ID)
		require.NoError(t, err)
		assert.Equal(t, post.ID, fetched.ID)
		assert.Equal(t, post.Title, fetched.Title)
		assert.Equal(t, post.Body, fetched.Body)
	})

	t.Run("the owner can update title and body", func(t *T) {
		owner, _, post := t.CreatePostedThread()

		newBody := randomBody()
		updated, err := t.Client().UpdatePost(t.Context(), owner.Session, post.ID,
			api.PostUpdateRequest{Body: newBody})
		require.NoError(t, err)
		t.RequireShape("post", updated)
		assert.Equal(t, newBody, updated.Body)
		assert.Equal(t, post.Title, updated.Title, "fields omitted from the update must be unchanged")
	})

	t.Run("only the owner can erase, and erase is a soft delete", func(t *T) {
		// Register member A and create post P as A; register member B and
		// attempt to erase P as B, expecting a refusal with P unchanged;
		// then erase P as A and verify the soft-delete state.
		owner, _, post := t.CreatePostedThread()
		intruder := t.RegisterMember()

		_, err := t.Client().ErasePost(t.Context(), intruder.Session, post.ID)
		t.RequireErrorKind(api.ErrorKindPermission, err)

		fetched, err := t.Client().PostAt(t.Context(), intruder.Session, post.ID)
		require.NoError(t, err)
		assert.Nil(t, fetched.DeletedAt, "a forbidden erase must not change the resource")

		t.LoginAs(owner)
		erased, err := t.Client().ErasePost(t.Context(), t.Session(), post.ID)
		require.NoError(t, err)
		require.NotNil(t, erased.DeletedAt)
		assert.Equal(t, post.Title, erased.Title)
		assert.Equal(t, post.Body, erased.Body)

		_, err = t.Client().ErasePost(t.Context(), t.Session(), post.ID)
		t.RequireErrorKind(api.ErrorKindNotFound, err)
	})

	t.Run("a post cannot be created in a thread that never existed", func(t *T) {
		member := t.RegisterMember()
		_, err := t.Client().CreatePost(t.Context(), member.Session, MissingID(),
			api.PostCreateRequest{Title: randomTitle(), Body: randomBody()})
		t.RequireErrorKind(api.ErrorKindNotFound, err)
	})

	t.Run("a post with an empty title is invalid", func(t *T) {
		owner := t.RegisterMember()
		thread := t.CreateThread(owner, nil)
		_, err := t.Client().CreatePost(t.Context(), owner.Session, thread.ID,
			api.PostCreateRequest{Title: "", Body: randomBody()})
		t.RequireErrorKind(api.ErrorKindValidation, err)
	})

	t.Run("the index scoped to a thread honors the pagination contract", func(t *T) {
		owner := t.RegisterMember()
		thread := t.CreateThread(owner, nil)
		for i := 0; i < 7; i++ {
			t.CreatePost(owner, thread, nil)
		}

		page, err := t.Client().Posts(t.Context(), owner.Session, api.PostListParams{
			PageParams: api.PageParams{
				Page:  ldvalue.NewOptionalInt(1),
				Limit: ldvalue.NewOptionalInt(3),
			},
			ThreadID: thread.ID,
		})
		require.NoError(t, err)
		t.RequirePageShape("post", page)
		assert.LessOrEqual(t, len(page.Data), 3)
		assert.Equal(t, 1, page.Pagination.Current)
		assert.Equal(t, 7, page.Pagination.Records)
		assert.Equal(t, 3, page.Pagination.Pages)
		for _, p := range page.Data {
			assert.Equal(t, thread.ID, p.ThreadID)
		}
	})
}
