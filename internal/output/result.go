package output

import (
	"github.com/charmbracelet/x/ansi"
	"github.com/madhermit/textdiff/internal/diff"
)

// Result is the JSON shape of a diff.
type Result struct {
	Available bool            `json:"available"`
	Changed   bool            `json:"changed"`
	Diff      string          `json:"diff"`
	Added     int             `json:"added"`
	Removed   int             `json:"removed"`
	Files     []diff.FileDiff `json:"files"`
}

// NewResult builds a Result from a diff. Color sequences are stripped from
// the JSON copy of the text. wordDiff selects how changes are counted: word
// spans are only visible in --word-diff=plain output, so a colored word diff
// counts nothing.
func NewResult(out string, changed, available, wordDiff bool) Result {
	r := Result{
		Available: available,
		Changed:   changed,
		Diff:      ansi.Strip(out),
		Files:     diff.ParseUnifiedDiff(out),
	}
	if r.Files == nil {
		r.Files = []diff.FileDiff{}
	}
	for _, f := range r.Files {
		added, removed := f.Stats()
		if wordDiff {
			added, removed = f.WordStats()
		}
		r.Added += added
		r.Removed += removed
	}
	return r
}
