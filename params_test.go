package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forumlab/board-contract-tests/framework"
)

func failureWithID(path ...string) framework.TestResult {
	return framework.TestResult{TestID: framework.TestID{Path: path}}
}

func TestRerunPatternsCoverTheFailedLeafAndItsAncestors(t *testing.T) {
	patterns := rerunPatterns([]framework.TestResult{
		failureWithID("threads", "erase is a soft delete"),
	})

	assert.Equal(t, []string{
		"^threads$",
		"^threads/erase is a soft delete$",
	}, patterns)
}

func TestRerunPatternsDeduplicateSharedAncestors(t *testing.T) {
	patterns := rerunPatterns([]framework.TestResult{
		failureWithID("votes", "first vote"),
		failureWithID("votes", "retract"),
	})

	assert.Equal(t, []string{
		"^votes$",
		"^votes/first vote$",
		"^votes/retract$",
	}, patterns)
}

func TestRerunFilterRunsExactlyTheFailedTests(t *testing.T) {
	var filters framework.RegexFilters
	for _, pattern := range rerunPatterns([]framework.TestResult{
		failureWithID("threads", "erase is a soft delete"),
	}) {
		require.NoError(t, filters.MustMatch.Set(pattern))
	}

	ran := map[string]bool{}
	results := framework.Run(filters.AsFilter, nil, func(c *framework.Context) {
		c.Run("auth", func(c *framework.Context) {
			c.Run("join", func(c *framework.Context) { ran["auth/join"] = true })
		})
		c.Run("threads", func(c *framework.Context) {
			c.Run("create", func(c *framework.Context) { ran["threads/create"] = true })
			c.Run("erase is a soft delete", func(c *framework.Context) {
				ran["threads/erase is a soft delete"] = true
			})
		})
	})

	assert.True(t, ran["threads/erase is a soft delete"],
		"the failed test should run again under the rerun command's filter")
	assert.False(t, ran["threads/create"], "sibling tests should stay excluded")
	assert.False(t, ran["auth/join"], "other groups should stay excluded")
	assert.NotEmpty(t, results.Tests)
}

func TestRerunCommandQuotesEachArgument(t *testing.T) {
	params := commandParams{serviceURL: "http://localhost:8000", debug: true}
	cmd := rerunCommand("./board-contract-tests", params, framework.Results{
		Failures: []framework.TestResult{failureWithID("threads", "erase is a soft delete")},
	})

	assert.Contains(t, cmd, "-url http://localhost:8000")
	assert.Contains(t, cmd, "-debug")
	assert.Contains(t, cmd, "-run '^threads$'")
	assert.Contains(t, cmd, "-run '^threads/erase is a soft delete$'")
}
