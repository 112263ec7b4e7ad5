// Package framework contains the low-level implementation of test harness
// infrastructure that is not specific to the discussion-board domain.
//
// The general model is:
//
// 1. There is a notion of a test context which is similar to Go's *testing.T,
// allowing pieces of test logic to be associated with a test identifier and to
// accumulate success/failure results outside of the Go test runner.
//
// 2. Tests can be selected or excluded by regex filters over their full
// identifiers, and may also be skipped at runtime (for instance, when the
// service under test does not advertise a capability the test needs).
//
// 3. Debug output produced during a test is captured per test, so that a
// reporter can choose to show it only for failures.
//
// The domain-specific code that knows what is being tested -- how to talk to
// the board service, what entities to create, what to assert -- lives in the
// api and boardtests packages, layered on top of this one.
package framework
