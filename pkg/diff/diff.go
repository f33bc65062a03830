// Package diff produces line-oriented diffs between two rendered pages.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 2000
	truncateMessage = "... (diff truncated) ..."
)

// Result summarises a comparison.
type Result struct {
	Added   int
	Removed int
	Text    string
}

// Changed reports whether the inputs differed.
func (r Result) Changed() bool {
	return r.Added > 0 || r.Removed > 0
}

// Lines compares expected and actual line by line and renders the changes in
// unified style. Identical inputs give a zero Result.
func Lines(expected, actual, expectedLabel, actualLabel string) Result {
	if expected == actual {
		return Result{}
	}

	dmp := diffmatchpatch.New()
	a, b, index := dmp.DiffLinesToChars(expected, actual)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), index)

	var res Result
	var buf strings.Builder
	fmt.Fprintf(&buf, "--- %s\n+++ %s\n", expectedLabel, actualLabel)
	written := 2

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
				res.Removed++
			case diffmatchpatch.DiffInsert:
				res.Added++
			}
			if written >= maxDiffLines {
				continue
			}
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteString("\n")
			written++
		}
	}

	if written >= maxDiffLines {
		buf.WriteString(truncateMessage + "\n")
	}
	fmt.Fprintf(&buf, "%d added, %d removed\n", res.Added, res.Removed)
	res.Text = buf.String()
	return res
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
