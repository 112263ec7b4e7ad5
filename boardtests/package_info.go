// Package boardtests contains the discussion-board contract tests themselves
// and their supporting API.
//
// Harness infrastructure that is not specific to the board domain, such as
// the test context and result reporting, is in the lower-level framework
// package; the typed client for the board service is in the api package.
// This package adds the pieces every scenario needs: registering actors and
// switching the active role, building prerequisite fixtures in dependency
// order, and validating response shapes against JSON schemas.
package boardtests
