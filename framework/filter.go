package framework

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Filter decides whether to run a specific test or not.
type Filter func(TestID) bool

// RegexFilters is the include/exclude filter pair built from command-line
// parameters.
type RegexFilters struct {
	MustMatch    RegexList
	MustNotMatch RegexList
}

// AsFilter is the Filter for this filter pair: a test runs if it matches at
// least one include pattern (or none are given) and no exclude pattern.
func (r RegexFilters) AsFilter(id TestID) bool {
	name := id.String()
	return (!r.MustMatch.IsDefined() || r.MustMatch.AnyMatch(name)) &&
		!r.MustNotMatch.AnyMatch(name)
}

// RegexList is a repeatable command-line flag holding regex patterns.
type RegexList struct {
	patterns []*regexp.Regexp
}

func (r RegexList) String() string {
	var ss []string
	for _, p := range r.patterns {
		ss = append(ss, `"`+p.String()+`"`)
	}
	return strings.Join(ss, " or ")
}

// Set is called by the command line parser.
func (r *RegexList) Set(value string) error {
	rx, err := regexp.Compile(value)
	if err != nil {
		return fmt.Errorf("invalid regex: %w", err)
	}
	r.patterns = append(r.patterns, rx)
	return nil
}

// Values returns the pattern strings, in the order they were added.
func (r RegexList) Values() []string {
	var ss []string
	for _, p := range r.patterns {
		ss = append(ss, p.String())
	}
	return ss
}

func (r RegexList) IsDefined() bool {
	return len(r.patterns) != 0
}

func (r RegexList) AnyMatch(s string) bool {
	for _, p := range r.patterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

// PrintFilterDescription explains, before the run starts, which tests may be
// skipped: either because of the filter parameters or because the service
// under test is missing some capabilities.
func PrintFilterDescription(dest io.Writer, filters RegexFilters, missingCapabilities []string) {
	if filters.MustMatch.IsDefined() || filters.MustNotMatch.IsDefined() {
		fmt.Fprintln(dest, "Some tests will be skipped based on the filter criteria for this test run:")
		if filters.MustMatch.IsDefined() {
			fmt.Fprintf(dest, "  skip any not matching %s\n", filters.MustMatch)
		}
		if filters.MustNotMatch.IsDefined() {
			fmt.Fprintf(dest, "  skip any matching %s\n", filters.MustNotMatch)
		}
		fmt.Fprintln(dest)
	}

	if len(missingCapabilities) > 0 {
		fmt.Fprintln(dest, "Some tests may be skipped because the service does not support the following capabilities:")
		fmt.Fprintf(dest, "  %s\n", strings.Join(missingCapabilities, ", "))
		fmt.Fprintln(dest)
	}
}
