package boardtests

import (
	"context"
	"fmt"

	"github.com/forumlab/board-contract-tests/api"
	"github.com/forumlab/board-contract-tests/framework"
)

// AllCapabilities lists every optional capability a board service can
// declare. Scenario groups that need one call RequireCapability and are
// skipped when the service does not have it.
var AllCapabilities = []string{
	"moderation",
	"appeals",
	"attendance",
	"notifications",
	"vote-switching",
	"comment-threading",
}

type environment struct {
	client *api.Client
	ctx    context.Context
}

// T represents a test or subtest in the board contract suite.
//
// It implements the same basic functionality as Go's testing.T, but in an
// environment that is outside of the Go test runner, with extra features
// such as captured debug logging provided by the lower-level framework
// package.
//
// It also provides functionality specific to board testing: an actor roster
// with one active session at a time, fixture builders, and schema-based
// response validation. To make test assertions, use the assert and require
// packages, passing the *T as if it were a *testing.T.
type T struct {
	context *framework.Context
	env     *environment
	active  *Actor
}

func newTestScope(context *framework.Context, env *environment) *T {
	return &T{
		context: context,
		env:     env,
	}
}

// Errorf is called by assertions to log a test failure. It does not cause an
// immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately
// exit. The methods in the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Run runs a subtest. The specified function receives a new T with its own
// actor roster; sessions do not leak between sibling subtests.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		action(newTestScope(c, t.env))
	})
}

// Defer registers a function to run when the current test ends, whether or
// not the test failed. Fixture builders use this to erase the resources they
// created.
func (t *T) Defer(cleanup func()) {
	t.context.Defer(cleanup)
}

// Debug logs some debug output for the test. The output is passed to the
// test logger at the end of the test.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

// DebugLogger returns a logger writing to the test's captured debug output.
func (t *T) DebugLogger() framework.Logger {
	return t.context.DebugLogger()
}

// Client returns the shared board service client.
func (t *T) Client() *api.Client {
	return t.env.client
}

// Context returns the context used for requests made during this test.
func (t *T) Context() context.Context {
	return t.env.ctx
}

// RequireCapability skips this test if the board service did not declare
// that it supports the specified capability.
func (t *T) RequireCapability(capability string) {
	if !t.env.client.HasCapability(capability) {
		t.context.SkipWithReason(fmt.Sprintf("board service does not have capability %q", capability))
	}
}
