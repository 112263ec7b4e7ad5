package boardtests

import (
	"github.com/forumlab/board-contract-tests/api"

	"github.com/stretchr/testify/require"
)

// RequireErrorKind fails the test immediately unless err is a service
// rejection of the given kind. Scenarios that expect an operation to be
// refused always say which kind of refusal they mean; a transport error or a
// refusal of the wrong kind is a test failure, not a pass.
func (t *T) RequireErrorKind(kind api.ErrorKind, err error) {
	require.Error(t, err, "expected a %s error but the call succeeded", kind)
	if !api.IsKind(err, kind) {
		require.Fail(t, "wrong error kind",
			"expected a %s error but got: %s", kind, err)
	}
}
