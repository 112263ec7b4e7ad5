package main

import (
	"flag"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/forumlab/board-contract-tests/framework"

	"github.com/alessio/shellescape"
)

type commandParams struct {
	serviceURL       string
	filters          framework.RegexFilters
	stopServiceAtEnd bool
	debug            bool
	debugAll         bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.serviceURL, "url", "", "board service base URL")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.stopServiceAtEnd, "stop-service-at-end", false, "tell the board service to exit after the test run")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	if c.serviceURL == "" {
		fmt.Fprintln(os.Stderr, "-url is required")
		fs.Usage()
		return false
	}
	return true
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// rerunCommand builds a command line that reruns exactly the tests that
// failed, so a failing run's output ends with something copy-pasteable.
func rerunCommand(program string, params commandParams, results framework.Results) string {
	var b commandBuilder
	b.add(program, "-url", params.serviceURL)
	if params.debug {
		b.add("-debug")
	}
	if params.debugAll {
		b.add("-debug-all")
	}
	for _, pattern := range rerunPatterns(results.Failures) {
		b.add("-run", pattern)
	}
	return b.String()
}

// rerunPatterns returns exact-match patterns selecting each failed test. The
// include filter is applied at every nesting level, so each failed test needs
// a pattern for every ancestor group as well as itself; exact matches keep
// sibling tests excluded.
func rerunPatterns(failures []framework.TestResult) []string {
	seen := map[string]bool{}
	var patterns []string
	for _, failure := range failures {
		path := failure.TestID.Path
		for i := 1; i <= len(path); i++ {
			id := framework.TestID{Path: path[:i]}
			pattern := "^" + regexp.QuoteMeta(id.String()) + "$"
			if !seen[pattern] {
				seen[pattern] = true
				patterns = append(patterns, pattern)
			}
		}
	}
	return patterns
}
