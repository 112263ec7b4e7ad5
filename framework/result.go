package framework

import (
	"fmt"
	"io"
	"strings"
)

// TestID identifies a test or subtest by the path of Run names leading to it.
type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

// TestResult is the outcome of a single test.
type TestResult struct {
	TestID     TestID
	Errors     []error
	Skipped    bool
	SkipReason string
}

// Results accumulates the outcomes of an entire suite run.
type Results struct {
	Tests    []TestResult
	Failures []TestResult
	Skips    []TestResult
}

// OK is true if no test failed. Skipped tests do not count as failures.
func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// TestFailure associates an error with the test that reported it.
type TestFailure struct {
	ID  TestID
	Err error
}

func (f TestFailure) Error() string {
	return fmt.Sprintf("[%s]: %s", f.ID, f.Err)
}

// PrintResults writes a human-readable summary of a suite run.
func PrintResults(dest io.Writer, results Results) {
	passed := len(results.Tests) - len(results.Failures) - len(results.Skips)
	fmt.Fprintf(dest, "Tests: %d passed, %d failed, %d skipped\n",
		passed, len(results.Failures), len(results.Skips))

	if len(results.Failures) > 0 {
		fmt.Fprintln(dest)
		fmt.Fprintln(dest, "FAILED TESTS:")
		for _, f := range results.Failures {
			fmt.Fprintf(dest, "  %s\n", f.TestID)
			for _, err := range f.Errors {
				for _, line := range strings.Split(err.Error(), "\n") {
					fmt.Fprintf(dest, "    %s\n", line)
				}
			}
		}
	}
}
