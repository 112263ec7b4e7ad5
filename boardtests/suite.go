package boardtests

import (
	"context"

	"github.com/forumlab/board-contract-tests/api"
	"github.com/forumlab/board-contract-tests/framework"
)

// RunTestSuite runs every scenario group against the board service behind
// the given client.
func RunTestSuite(
	client *api.Client,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		env := &environment{
			client: client,
			ctx:    context.Background(),
		}
		t := newTestScope(c, env)

		t.Run("auth", DoAuthTests)
		t.Run("threads", DoThreadTests)
		t.Run("posts", DoPostTests)
		t.Run("comments", DoCommentTests)
		t.Run("votes", DoVoteTests)
		t.Run("moderation", DoModerationTests)
		t.Run("appeals", DoAppealTests)
		t.Run("attendance", DoAttendanceTests)
		t.Run("notifications", DoNotificationTests)
	})
}
