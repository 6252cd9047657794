package diff

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type Hunk struct {
	Header   string   `json:"header"`
	OldStart int      `json:"old_start"`
	OldCount int      `json:"old_count"`
	NewStart int      `json:"new_start"`
	NewCount int      `json:"new_count"`
	Lines    []string `json:"lines"`
}

type FileDiff struct {
	Path  string `json:"path"`
	Hunks []Hunk `json:"hunks"`
}

// ParseUnifiedDiff splits git diff output into files and hunks. Color
// sequences are stripped first. Output without "diff --git" headers, such as
// --shortstat, yields nil.
func ParseUnifiedDiff(raw string) []FileDiff {
	raw = ansi.Strip(raw)
	if raw == "" {
		return nil
	}

	var (
		files []FileDiff
		file  *FileDiff
		hunk  *Hunk
	)
	flushHunk := func() {
		if file != nil && hunk != nil {
			file.Hunks = append(file.Hunks, *hunk)
		}
		hunk = nil
	}
	flushFile := func() {
		flushHunk()
		if file != nil && file.Path != "" {
			files = append(files, *file)
		}
		file = nil
	}

	for _, line := range strings.Split(strings.TrimSuffix(raw, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "diff --git "):
			flushFile()
			file = &FileDiff{Path: pathFromDiffLine(line)}
		case file == nil:
		case hunk == nil && strings.HasPrefix(line, "+++ "):
			if p := strings.TrimPrefix(line, "+++ "); p != "/dev/null" {
				file.Path = strings.TrimPrefix(p, "b/")
			}
		case strings.HasPrefix(line, "@@"):
			flushHunk()
			h := parseHunkHeader(line)
			hunk = &h
		case hunk != nil:
			hunk.Lines = append(hunk.Lines, line)
		}
	}
	flushFile()
	return files
}

// pathFromDiffLine reads the new-side path from "diff --git a/X b/X".
func pathFromDiffLine(line string) string {
	_, after, ok := strings.Cut(line, " b/")
	if !ok {
		return ""
	}
	return after
}

func parseHunkHeader(line string) Hunk {
	h := Hunk{Header: line}
	// @@ -old,count +new,count @@
	rest := strings.TrimPrefix(line, "@@ ")
	end := strings.Index(rest, " @@")
	if end < 0 {
		return h
	}
	oldRange, newRange, ok := strings.Cut(rest[:end], " ")
	if !ok {
		return h
	}
	h.OldStart, h.OldCount = parseRange(strings.TrimPrefix(oldRange, "-"))
	h.NewStart, h.NewCount = parseRange(strings.TrimPrefix(newRange, "+"))
	return h
}

func parseRange(s string) (int, int) {
	startStr, countStr, hasCount := strings.Cut(s, ",")
	start, _ := strconv.Atoi(startStr)
	count := 1
	if hasCount {
		count, _ = strconv.Atoi(countStr)
	}
	return start, count
}

var (
	wordRemoved = regexp.MustCompile(`\[-.*?-\]`)
	wordAdded   = regexp.MustCompile(`\{\+.*?\+\}`)
)

// Stats counts added and removed lines across the hunks. It only makes sense
// for line-mode output; use WordStats for --word-diff=plain.

func (fd FileDiff) Stats() (added, removed int) {
	for _, h := range fd.Hunks {
		for _, line := range h.Lines {
			switch {
			case strings.HasPrefix(line, "+"):
				added++
			case strings.HasPrefix(line, "-"):
				removed++
			}
		}
	}
	return added, removed
}

// WordStats counts the [-removed-] and {+added+} spans of plain word-diff
// hunks. Body lines there carry no +/- prefix, so a leading "-" is text.
func (fd FileDiff) WordStats() (added, removed int) {
	for _, h := range fd.Hunks {
		for _, line := range h.Lines {
			added += len(wordAdded.FindAllStringIndex(line, -1))
			removed += len(wordRemoved.FindAllStringIndex(line, -1))
		}
	}
	return added, removed
}
