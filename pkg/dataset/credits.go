package dataset

import (
	"bufio"
	"fmt"
	"strings"
)

// Column layout of an IMDb-style principals table. Trailing fields (job,
// characters) are ignored.
const (
	principalsTitleCol    = 0
	principalsPersonCol   = 2
	principalsCategoryCol = 3
	principalsMinFields   = 4
)

// nullField is the TSV placeholder for an absent value.
const nullField = `\N`

// isHeaderKey reports whether a first-line key column holds an IMDb header
// name rather than data.
func isHeaderKey(key string) bool {
	return key == "tconst" || key == "nconst"
}

// ReadCredits scans a tab-separated principals table and groups the rows
// that match one of the wanted role categories by title, keeping input
// order within every (title, category) list. A header line is skipped when
// present, rows whose title or person id is the \N placeholder are dropped,
// and repeats of the same (title, category, person) row collapse to one
// member occurrence. RowsKept counts occurrences after that collapse.
func ReadCredits(path string, roles []string) (*CreditsTable, error) {
	if len(roles) == 0 {
		return nil, ParseError{File: path, Message: "at least one role category is required"}
	}
	wanted := make(map[string]bool, len(roles))
	for _, role := range roles {
		wanted[role] = true
	}

	f, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	table := &CreditsTable{index: make(map[string]int)}

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if lineNo == 1 && isHeaderKey(fields[principalsTitleCol]) {
			continue
		}
		if len(fields) < principalsMinFields {
			return nil, ParseError{
				File:    path,
				Line:    lineNo,
				Message: fmt.Sprintf("principals row needs at least %d tab-separated fields", principalsMinFields),
				Value:   line,
			}
		}

		table.RowsRead++
		title := fields[principalsTitleCol]
		person := fields[principalsPersonCol]
		category := fields[principalsCategoryCol]
		if title == nullField || person == nullField || !wanted[category] {
			continue
		}
		if table.add(title, person, category) {
			table.RowsKept++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return table, nil
}

// ReadLabelMap scans a tab-separated table into a key -> label map. keyCol
// and labelCol are 0-based column positions. A header line is skipped when
// present, rows whose key or label is the \N placeholder are dropped, and a
// repeated key keeps its last label.
func ReadLabelMap(path string, keyCol, labelCol int) (map[string]string, error) {
	if keyCol < 0 || labelCol < 0 {
		return nil, ParseError{
			File:    path,
			Message: fmt.Sprintf("column positions are 0-based, got key=%d label=%d", keyCol, labelCol),
		}
	}
	minFields := keyCol + 1
	if labelCol >= keyCol {
		minFields = labelCol + 1
	}

	f, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	labels := make(map[string]string)

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if lineNo == 1 && isHeaderKey(fields[0]) {
			continue
		}
		if len(fields) < minFields {
			return nil, ParseError{
				File:    path,
				Line:    lineNo,
				Message: fmt.Sprintf("label row needs at least %d tab-separated fields", minFields),
				Value:   line,
			}
		}

		key := fields[keyCol]
		label := fields[labelCol]
		if key == nullField || label == nullField {
			continue
		}
		labels[key] = label
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return labels, nil
}
