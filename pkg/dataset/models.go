// Package dataset reads the raw relational tables the conversion pipelines
// consume: tab-separated film credits in the IMDb principals shape, and
// whitespace-separated food-web predation records. Readers return filtered
// rows in input order and never assign vertex indices themselves.
package dataset

import (
	"errors"
	"fmt"
)

// ErrMalformedInput is the sentinel wrapped by every ParseError, so callers
// can test reader failures with errors.Is.
var ErrMalformedInput = errors.New("dataset: malformed input")

// ParseError reports a row the reader could not accept. Line is 1-based and
// zero when the failure is not tied to a specific line.
type ParseError struct {
	File    string
	Line    int
	Message string
	Value   string
}

func (pe ParseError) Error() string {
	loc := pe.File
	if pe.Line > 0 {
		loc = fmt.Sprintf("%s:%d", pe.File, pe.Line)
	}
	if pe.Value != "" {
		return fmt.Sprintf("parse error in %s: %s (value: %s)", loc, pe.Message, pe.Value)
	}
	return fmt.Sprintf("parse error in %s: %s", loc, pe.Message)
}

func (pe ParseError) Unwrap() error { return ErrMalformedInput }

// GroupRecord holds the members collected for one group key, partitioned by
// category. Member lists keep input row order.
type GroupRecord struct {
	Key     string
	Members map[string][]string
}

// CreditsTable is a row-filtered credits relation grouped by title. Groups
// keeps first-seen title order so downstream index assignment is
// reproducible across runs.
type CreditsTable struct {
	Groups   []GroupRecord
	RowsRead int
	RowsKept int

	index map[string]int // group key -> position in Groups
}

func (t *CreditsTable) add(title, person, category string) bool {
	pos, ok := t.index[title]
	if !ok {
		pos = len(t.Groups)
		t.index[title] = pos
		t.Groups = append(t.Groups, GroupRecord{Key: title, Members: make(map[string][]string)})
	}
	members := t.Groups[pos].Members
	for _, existing := range members[category] {
		if existing == person {
			return false
		}
	}
	members[category] = append(members[category], person)
	return true
}

// Link is one directed predation record: Prey is eaten by Predator. Both are
// raw 1-based ids as they appear in the file, before any remapping.
type Link struct {
	Prey     int
	Predator int
}
