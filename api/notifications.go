package api

import "context"

// NotificationListParams are the search parameters for the notification
// index. The index is self-scoped: members only ever see their own
// notifications, and another member's notification ID behaves as not found.
type NotificationListParams struct {
	PageParams
	Unread bool // restrict to unread notifications
}

// Notifications lists the session member's notifications.
func (c *Client) Notifications(ctx context.Context, sess *Session, params NotificationListParams) (Page[Notification], error) {
	query := params.queryValues()
	if params.Unread {
		query.Set("unread", "true")
	}
	var out Page[Notification]
	err := c.do(ctx, "GET", "/notifications", sess, query, nil, &out)
	return out, err
}

// NotificationAt fetches one of the session member's notifications.
func (c *Client) NotificationAt(ctx context.Context, sess *Session, id string) (Notification, error) {
	var out Notification
	err := c.do(ctx, "GET", "/notifications/"+id, sess, nil, nil, &out)
	return out, err
}

// MarkNotificationRead sets the notification's read timestamp. Marking an
// already-read notification again is harmless and returns the same record.
func (c *Client) MarkNotificationRead(ctx context.Context, sess *Session, id string) (Notification, error) {
	var out Notification
	err := c.do(ctx, "PUT", "/notifications/"+id+"/read", sess, nil, nil, &out)
	return out, err
}

// EraseNotification removes a notification entirely.
func (c *Client) EraseNotification(ctx context.Context, sess *Session, id string) error {
	return c.do(ctx, "DELETE", "/notifications/"+id, sess, nil, nil, nil)
}
