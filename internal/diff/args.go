package diff

import (
	"fmt"

	"github.com/mattn/go-shellwords"
)

// Names of the two sides inside the scratch directory. They appear in the
// diff headers as a/a and b/b.
const (
	leftName  = "a"
	rightName = "b"
)

type Invocation struct {
	Args  []string
	Left  string
	Right string
}

func buildInvocation(a, b string, opts Options, flags string) Invocation {
	return Invocation{
		Args:  buildArgs(opts, flags),
		Left:  a,
		Right: b,
	}
}

func buildArgs(opts Options, flags string) []string {
	args := []string{"diff", "--no-index"}
	if opts.Color {
		args = append(args, "--color=always")
	} else {
		args = append(args, "--color=never")
	}
	if opts.WordDiff {
		if opts.Color {
			args = append(args, "--word-diff=color")
		} else {
			args = append(args, "--word-diff=plain")
		}
	}
	// Already validated, so a parse error cannot happen here.
	words, _ := splitFlags(flags)
	args = append(args, words...)
	return append(args, "--", leftName, rightName)
}

// splitFlags splits a flags string into arguments the way a POSIX shell
// would, so quoted values such as --word-diff-regex='[^ ]+' survive.
func splitFlags(flags string) ([]string, error) {
	words, err := shellwords.Parse(flags)
	if err != nil {
		return nil, fmt.Errorf("parse flags %q: %w", flags, err)
	}
	return words, nil
}
