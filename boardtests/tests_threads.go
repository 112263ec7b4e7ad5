package boardtests

import (
	"fmt"

	"github.com/forumlab/board-contract-tests/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func DoThreadTests(t *T) {
	t.Run("a created thread can immediately be fetched by its id", func(t *T) {
		owner := t.RegisterMember()
		created := t.CreateThread(owner, nil)
		t.RequireShape("thread", created)

		fetched, err := t.Client().ThreadAt(t.Context(), owner.Session, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, fetched.ID)
		assert.Equal(t, created.Title, fetched.Title)
		assert.Equal(t, owner.Session.UserID, fetched.AuthorID)
	})

	t.Run("the owner can update title and tags", func(t *T) {
		owner := t.RegisterMember()
		thread := t.CreateThread(owner, nil)

		newTitle := randomTitle()
		updated, err := t.Client().UpdateThread(t.Context(), owner.Session, thread.ID,
			api.ThreadUpdateRequest{Title: newTitle, Tags: []string{"updated"}})
		require.NoError(t, err)
		t.RequireShape("thread", updated)
		assert.Equal(t, newTitle, updated.Title)
		assert.Equal(t, []string{"updated"}, updated.Tags)
	})

	t.Run("a non-owner cannot update and the thread is unchanged", func(t *T) {
		owner := t.RegisterMember()
		thread := t.CreateThread(owner, nil)
		intruder := t.RegisterMember()

		_, err := t.Client().UpdateThread(t.Context(), intruder.Session, thread.ID,
			api.ThreadUpdateRequest{Title: "hijacked"})
		t.RequireErrorKind(api.ErrorKindPermission, err)

		fetched, err := t.Client().ThreadAt(t.Context(), owner.Session, thread.ID)
		require.NoError(t, err)
		assert.Equal(t, thread.Title, fetched.Title, "a forbidden update must not change the resource")
	})

	t.Run("a non-owner cannot erase", func(t *T) {
		owner := t.RegisterMember()
		thread := t.CreateThread(owner, nil)
		intruder := t.RegisterMember()

		_, err := t.Client().EraseThread(t.Context(), intruder.Session, thread.ID)
		t.RequireErrorKind(api.ErrorKindPermission, err)

		fetched, err := t.Client().ThreadAt(t.Context(), owner.Session, thread.ID)
		require.NoError(t, err)
		assert.Nil(t, fetched.DeletedAt, "a forbidden erase must not change the resource")
	})

	t.Run("erase is a soft delete", func(t *T) {
		owner := t.RegisterMember()
		thread := t.CreateThread(owner, nil)

		erased, err := t.Client().EraseThread(t.Context(), owner.Session, thread.ID)
		require.NoError(t, err)
		t.RequireShape("thread", erased)
		assert.Equal(t, thread.ID, erased.ID)
		assert.Equal(t, thread.Title, erased.Title, "soft delete must keep the content fields intact")
		require.NotNil(t, erased.DeletedAt, "soft delete must set the deletion timestamp")

		_, err = t.Client().EraseThread(t.Context(), owner.Session, thread.ID)
		t.RequireErrorKind(api.ErrorKindNotFound, err)
	})

	t.Run("a duplicate tag within one request is invalid", func(t *T) {
		owner := t.RegisterMember()
		tag := randomTag()
		_, err := t.Client().CreateThread(t.Context(), owner.Session,
			api.ThreadCreateRequest{Title: randomTitle(), Tags: []string{tag, tag}})
		t.RequireErrorKind(api.ErrorKindValidation, err)
	})

	t.Run("fetching a thread that never existed is not found", func(t *T) {
		member := t.RegisterMember()
		_, err := t.Client().ThreadAt(t.Context(), member.Session, MissingID())
		t.RequireErrorKind(api.ErrorKindNotFound, err)
	})

	t.Run("the index honors the pagination contract", func(t *T) {
		owner := t.RegisterMember()
		tag := randomTag()
		for i := 0; i < 5; i++ {
			t.CreateThread(owner, &api.ThreadCreateRequest{
				Title: fmt.Sprintf("%s %d", randomTitle(), i),
				Tags:  []string{tag},
			})
		}

		page, err := t.Client().Threads(t.Context(), owner.Session, api.ThreadListParams{
			PageParams: api.PageParams{
				Page:  ldvalue.NewOptionalInt(2),
				Limit: ldvalue.NewOptionalInt(2),
			},
			Tag: tag,
		})
		require.NoError(t, err)
		t.RequirePageShape("thread", page)
		assert.LessOrEqual(t, len(page.Data), 2, "a page must never exceed the requested limit")
		assert.Equal(t, 2, page.Pagination.Current, "pagination.current must equal the requested page")
		assert.Equal(t, 5, page.Pagination.Records)
	})

	t.Run("the index filters by tag", func(t *T) {
		owner := t.RegisterMember()
		tag := randomTag()
		tagged := t.CreateThread(owner, &api.ThreadCreateRequest{Title: randomTitle(), Tags: []string{tag}})
		t.CreateThread(owner, nil) // a thread without the tag

		page, err := t.Client().Threads(t.Context(), owner.Session, api.ThreadListParams{Tag: tag})
		require.NoError(t, err)
		require.Len(t, page.Data, 1)
		assert.Equal(t, tagged.ID, page.Data[0].ID)
	})
}
