// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package snip locates a contiguous block of lines between two textual
// markers in a source file. The start marker is a substring match anywhere
// in a line; the end marker is a prefix match on the trimmed line and is
// only considered after the start line. The block runs from the start line
// through the line before the end match.
package snip

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrStartNotFound is returned when no line contains the start marker.
var ErrStartNotFound = errors.New("start marker not found")

// Markers holds the two boundary conditions for a scan. The matching rules
// are deliberately different: StartContains matches anywhere in the raw
// line, EndPrefix matches the beginning of the whitespace-trimmed line.
// Both are case-sensitive.
type Markers struct {
	StartContains string
	EndPrefix     string
}

// Block is the result of a scan: the extracted lines and their half-open
// position range [Start, End) within the source line sequence.
type Block struct {
	Lines []string
	Start int
	End   int
}

// Text joins the block's lines with newlines.
func (b Block) Text() string {
	return strings.Join(b.Lines, "\n")
}

// SplitLines splits content into lines. A single trailing \r is stripped
// from each line so \r\n files scan the same as \n files, and a trailing
// newline does not produce a final empty line.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Find scans lines in order for the marker pair. The first line containing
// m.StartContains opens the block; later candidates are ignored. Scanning
// then continues for the first subsequent line whose trimmed text starts
// with m.EndPrefix, which closes the block exclusively and stops the scan.
// If no such line exists the block runs to the end of the sequence.
//
// Returns ErrStartNotFound if no line contains the start marker.
func Find(lines []string, m Markers) (Block, error) {
	start := -1
	end := -1
	for i, line := range lines {
		if start == -1 {
			if strings.Contains(line, m.StartContains) {
				start = i
			}
		} else if strings.HasPrefix(strings.TrimSpace(line), m.EndPrefix) {
			end = i
			break
		}
	}
	if start == -1 {
		return Block{}, fmt.Errorf("%w: %q", ErrStartNotFound, m.StartContains)
	}
	if end == -1 {
		end = len(lines)
	}

	return Block{Lines: lines[start:end], Start: start, End: end}, nil
}

// FromFile reads path, splits it into lines, and scans for the marker pair.
// Read errors are wrapped so callers can test for os.ErrNotExist.
func FromFile(path string, m Markers) (Block, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Block{}, fmt.Errorf("reading source %s: %w", path, err)
	}
	return Find(SplitLines(string(content)), m)
}
