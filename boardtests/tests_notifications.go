package boardtests

import (
	"github.com/forumlab/board-contract-tests/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// commentNotification sets up the usual prefix: member A owns a post, member
// B comments on it, and A's newest notification about that comment is
// returned.
func commentNotification(t *T) (recipient *Actor, notification api.Notification) {
	author, _, post := t.CreatePostedThread()
	replier := t.RegisterMember()
	comment := t.CreateComment(replier, post, nil)

	page, err := t.Client().Notifications(t.Context(), author.Session, api.NotificationListParams{Unread: true})
	require.NoError(t, err, "could not list the author's notifications")
	for _, n := range page.Data {
		if n.ResourceID == comment.ID {
			return author, n
		}
	}
	require.Fail(t, "missing notification",
		"no notification about comment %s was delivered to the post author", comment.ID)
	return nil, api.Notification{}
}

func DoNotificationTests(t *T) {
	t.RequireCapability("notifications")

	t.Run("a reply to a member's post notifies them", func(t *T) {
		recipient, notification := commentNotification(t)
		t.RequireShape("notification", notification)
		assert.Equal(t, recipient.Session.UserID, notification.RecipientID)
		assert.Nil(t, notification.ReadAt, "a fresh notification must be unread")
	})

	t.Run("marking a notification read sets its timestamp", func(t *T) {
		recipient, notification := commentNotification(t)

		read, err := t.Client().MarkNotificationRead(t.Context(), recipient.Session, notification.ID)
		require.NoError(t, err)
		require.NotNil(t, read.ReadAt)

		// A second mark is harmless.
		again, err := t.Client().MarkNotificationRead(t.Context(), recipient.Session, notification.ID)
		require.NoError(t, err)
		assert.Equal(t, read.ID, again.ID)

		page, err := t.Client().Notifications(t.Context(), recipient.Session,
			api.NotificationListParams{Unread: true})
		require.NoError(t, err)
		for _, n := range page.Data {
			assert.NotEqual(t, notification.ID, n.ID, "a read notification must not appear in the unread index")
		}
	})

	t.Run("another member's notification behaves as not found", func(t *T) {
		_, notification := commentNotification(t)
		stranger := t.RegisterMember()

		_, err := t.Client().NotificationAt(t.Context(), stranger.Session, notification.ID)
		t.RequireErrorKind(api.ErrorKindNotFound, err)
	})

	t.Run("an erased notification is gone", func(t *T) {
		recipient, notification := commentNotification(t)

		require.NoError(t, t.Client().EraseNotification(t.Context(), recipient.Session, notification.ID))

		_, err := t.Client().NotificationAt(t.Context(), recipient.Session, notification.ID)
		t.RequireErrorKind(api.ErrorKindNotFound, err)

		err = t.Client().EraseNotification(t.Context(), recipient.Session, notification.ID)
		t.RequireErrorKind(api.ErrorKindNotFound, err)
	})

	t.Run("the index honors the page shape", func(t *T) {
		recipient, _ := commentNotification(t)
		page, err := t.Client().Notifications(t.Context(), recipient.Session, api.NotificationListParams{})
		require.NoError(t, err)
		t.RequirePageShape("notification", page)
	})
}
