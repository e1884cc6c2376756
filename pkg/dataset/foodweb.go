package dataset

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// ReadLinks scans a whitespace-separated predation file: one "prey predator"
// pair per line, blank lines and '#' comments skipped. Ids must be positive
// integers; any other shape fails the whole read.
func ReadLinks(path string) ([]Link, error) {
	f, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var links []Link

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, ParseError{
				File:    path,
				Line:    lineNo,
				Message: "predation line needs exactly two fields",
				Value:   line,
			}
		}
		prey, err := parseID(fields[0])
		if err != nil {
			return nil, ParseError{File: path, Line: lineNo, Message: "invalid prey id", Value: fields[0]}
		}
		predator, err := parseID(fields[1])
		if err != nil {
			return nil, ParseError{File: path, Line: lineNo, Message: "invalid predator id", Value: fields[1]}
		}
		links = append(links, Link{Prey: prey, Predator: predator})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return links, nil
}

// ReadCompartmentLabels scans an "index name" label file where names may
// contain spaces. Indices must run contiguously from 1 in file order, so the
// returned slice position i holds the name of compartment i+1.
func ReadCompartmentLabels(path string) ([]string, error) {
	f, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var labels []string

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, ParseError{
				File:    path,
				Line:    lineNo,
				Message: "label line needs an index and a name",
				Value:   line,
			}
		}
		idx, err := strconv.Atoi(fields[0])
		if err != nil || idx != len(labels)+1 {
			return nil, ParseError{
				File:    path,
				Line:    lineNo,
				Message: fmt.Sprintf("label indices must run contiguously from 1, expected %d", len(labels)+1),
				Value:   fields[0],
			}
		}
		labels = append(labels, strings.Join(fields[1:], " "))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return labels, nil
}

func parseID(field string) (int, error) {
	id, err := strconv.Atoi(field)
	if err != nil {
		return 0, err
	}
	if id < 1 {
		return 0, fmt.Errorf("id must be positive, got %d", id)
	}
	return id, nil
}
