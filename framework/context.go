package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
)

type environment struct {
	results    Results
	testLogger TestLogger
	filter     Filter
}

// Context represents one running test or subtest. It provides the same basic
// operations as Go's *testing.T -- reporting errors, failing fast, skipping,
// running subtests -- but in an environment outside of the Go test runner.
//
// A failure reported with Errorf marks the test as failed without stopping
// it; FailNow aborts the rest of the test immediately. FailNow works by
// panicking with the Context itself, which the subtest runner recovers.
type Context struct {
	env         *environment
	id          TestID
	debugLogger CapturingLogger
	failed      bool
	skipped     bool
	skipReason  string
	errors      []error
	cleanups    []func()
}

// Run executes a top-level test function and returns the accumulated results.
// The filter, if non-nil, decides which subtests actually run; the test
// logger, if non-nil, receives lifecycle events.
func Run(
	filter Filter,
	testLogger TestLogger,
	action func(*Context),
) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	env := &environment{
		filter:     filter,
		testLogger: testLogger,
	}
	c := &Context{env: env}
	c.runInternal(action)
	return env.results
}

func (c *Context) runInternal(action func(*Context)) {
	defer func() {
		c.runCleanups()
		if r := recover(); r != nil {
			if c.skipped {
				return
			}
			c.failed = true
			var addError error
			if _, ok := r.(*Context); ok {
				// FailNow was called; the failure message, if any, was
				// already recorded by Errorf.
				if len(c.errors) == 0 {
					addError = errors.New("test failed with no failure message")
				}
			} else {
				addError = fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack()))
			}
			if addError != nil {
				c.errors = append(c.errors, addError)
				c.env.testLogger.TestError(c.id, addError)
			}
		}
	}()

	action(c)
}

func (c *Context) runCleanups() {
	cleanups := c.cleanups
	c.cleanups = nil
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
}

// ID returns the full identifier of the current test.
func (c *Context) ID() TestID {
	return c.id
}

// Run runs a subtest, unless the filter excludes it. Failures in the subtest
// are recorded in the results but do not fail the parent.
func (c *Context) Run(name string, action func(*Context)) {
	id := TestID{Path: append(append([]string(nil), c.id.Path...), name)}

	if c.env.filter != nil && !c.env.filter(id) {
		c.env.testLogger.TestSkipped(id, "excluded by filter parameters")
		return
	}
	c.env.testLogger.TestStarted(id)
	c1 := &Context{
		id:  id,
		env: c.env,
	}
	c1.runInternal(action)

	result := TestResult{TestID: id, Errors: c1.errors, Skipped: c1.skipped, SkipReason: c1.skipReason}
	c.env.results.Tests = append(c.env.results.Tests, result)
	switch {
	case c1.skipped:
		c.env.results.Skips = append(c.env.results.Skips, result)
		c.env.testLogger.TestSkipped(id, c1.skipReason)
	case c1.failed:
		c.env.results.Failures = append(c.env.results.Failures, result)
		c.env.testLogger.TestFinished(id, true, c1.debugLogger.Output())
	default:
		c.env.testLogger.TestFinished(id, false, c1.debugLogger.Output())
	}
}

// Errorf records a test failure without stopping the test.
func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := fmt.Errorf(format, args...)
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, reformatError(err))
}

// FailNow aborts the current test immediately. The methods in testify's
// require package call this.
func (c *Context) FailNow() {
	panic(c)
}

// Skip marks the test as skipped and aborts it.
func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

// SkipWithReason is Skip with an explanation for the report.
func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.Skip()
}

// Defer registers a function to run when the current test ends, in reverse
// registration order, whether or not the test failed.
func (c *Context) Defer(cleanup func()) {
	c.cleanups = append(c.cleanups, cleanup)
}

// Debug adds a message to the test's captured debug output.
func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

// DebugLogger returns a Logger that writes to the test's captured output.
func (c *Context) DebugLogger() Logger {
	return &c.debugLogger
}

// reformatError cleans up the leading/trailing blank lines that testify's
// message formatting tends to produce, so console output stays compact.
func reformatError(err error) error {
	lines := strings.Split(err.Error(), "\n")
	var out []string
	for _, line := range lines {
		if trimmed := strings.TrimRight(line, " \t"); trimmed != "" || len(out) > 0 {
			out = append(out, trimmed)
		}
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return errors.New(strings.Join(out, "\n"))
}
