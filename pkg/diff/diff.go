// Package diff compares generated text, such as a stylesheet, against a
// checked-in copy line by line.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Summary counts changed lines.
type Summary struct {
	Added   int
	Removed int
}

// Changed reports whether any line differs.
func (s Summary) Changed() bool { return s.Added+s.Removed > 0 }

// Lines renders a line diff of expected against actual, headed by the two
// labels. Identical input yields an empty string. Output longer than
// 10,000 lines is truncated with a marker.
func Lines(expected, actual, expectedLabel, actualLabel string) (string, Summary) {
	if expected == actual {
		return "", Summary{}
	}

	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(expected, actual)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)

	var buf strings.Builder
	var sum Summary
	fmt.Fprintf(&buf, "--- %s\n+++ %s\n", expectedLabel, actualLabel)

	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffDelete:
				sum.Removed++
			case diffmatchpatch.DiffInsert:
				sum.Added++
			}
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteByte('\n')
		}
	}

	result := buf.String()
	lines := strings.Split(result, "\n")
	if len(lines) > maxDiffLines {
		return strings.Join(lines[:maxDiffLines], "\n") + "\n" + truncateMessage + "\n", sum
	}
	return result, sum
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
