// Package normalize parses the semi-structured cell values that arrive
// in the clients/workers/tasks datasets: comma-delimited lists, phase
// sets in three surface syntaxes, and free-form JSON attribute blobs.
// All functions are pure; a bad value is reported, never swallowed.
package normalize

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ParseError describes why a raw cell value failed to normalize.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q: %s", e.Input, e.Reason)
}

func parseErrf(input, format string, args ...any) *ParseError {
	return &ParseError{Input: input, Reason: fmt.Sprintf(format, args...)}
}

// SplitList splits a comma-delimited cell into trimmed tokens.
// Empty cells and empty tokens yield no entries; an empty list is a
// valid value, not an error.
func SplitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []string
	for _, tok := range strings.Split(raw, ",") {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// SplitSet splits a comma-delimited cell into distinct trimmed tokens,
// keeping first-occurrence order. Use it for cells with set semantics,
// where a repeated token must not count twice.
func SplitSet(raw string) []string {
	tokens := SplitList(raw)
	seen := make(map[string]bool, len(tokens))
	out := tokens[:0]
	for _, tok := range tokens {
		if !seen[tok] {
			seen[tok] = true
			out = append(out, tok)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// PhaseSet parses a phase-set cell. Three surface forms are accepted,
// all canonicalized to the same sorted set of distinct non-negative
// integers:
//
//	[1,2,3]   bracketed JSON-style array
//	1-3       inclusive integer range
//	1,2,3     comma-separated integers
//
// An empty cell is the empty set. Anything else is a ParseError.
func PhaseSet(raw string) ([]int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}

	var phases []int
	var err error
	switch {
	case strings.HasPrefix(trimmed, "["):
		phases, err = parseBracketed(trimmed)
	case rangeForm(trimmed):
		phases, err = parseRange(trimmed)
	default:
		phases, err = parseCommaList(trimmed)
	}
	if err != nil {
		return nil, err
	}
	return canonical(phases)
}

// rangeForm reports whether the value looks like "start-end". A leading
// dash is a (malformed) negative number, not a range.
func rangeForm(s string) bool {
	i := strings.Index(s, "-")
	return i > 0
}

func parseBracketed(s string) ([]int, error) {
	var phases []int
	if err := json.Unmarshal([]byte(s), &phases); err != nil {
		return nil, parseErrf(s, "not a bracketed array of integers")
	}
	return phases, nil
}

func parseRange(s string) ([]int, error) {
	parts := strings.SplitN(s, "-", 2)
	start, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, parseErrf(s, "range start %q is not an integer", strings.TrimSpace(parts[0]))
	}
	end, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, parseErrf(s, "range end %q is not an integer", strings.TrimSpace(parts[1]))
	}
	if start > end {
		return nil, parseErrf(s, "range start %d is greater than end %d", start, end)
	}
	phases := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		phases = append(phases, p)
	}
	return phases, nil
}

func parseCommaList(s string) ([]int, error) {
	var phases []int
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, parseErrf(s, "%q is not an integer", tok)
		}
		phases = append(phases, n)
	}
	return phases, nil
}

// canonical sorts, deduplicates, and rejects negative phase numbers.
func canonical(phases []int) ([]int, error) {
	seen := make(map[int]bool, len(phases))
	out := make([]int, 0, len(phases))
	for _, p := range phases {
		if p < 0 {
			return nil, parseErrf(strconv.Itoa(p), "phase numbers must be non-negative")
		}
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	sort.Ints(out)
	return out, nil
}

// CheckJSON verifies that a cell is empty or holds a valid JSON value.
func CheckJSON(raw string) error {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	if !json.Valid([]byte(trimmed)) {
		return parseErrf(raw, "malformed JSON")
	}
	return nil
}
