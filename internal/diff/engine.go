package diff

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// GitEngine runs the git binary at Path on scratch files.
type GitEngine struct {
	Path string

	// Isolate hides system and global git config so output is reproducible.
	Isolate bool
}

func NewGitEngine(path string, isolate bool) *GitEngine {
	if path == "" {
		path = "git"
	}
	return &GitEngine{Path: path, Isolate: isolate}
}

// Validate dry-runs flags against two empty inputs inside a scratch dir.
// git answers a clean comparison with exit status 0 or 1, so any other
// status means it rejected the flags: 129 for usage errors, 128 for option
// values it fails to parse. Flags that make the dry run write into the
// scratch dir, such as --output=<file>, are rejected too, since the diff
// would never reach stdout. An absolute --output path is not caught.
func (e *GitEngine) Validate(ctx context.Context, flags string) bool {
	words, err := splitFlags(flags)
	if err != nil {
		return false
	}
	dir, err := os.MkdirTemp("", "textdiff-check-")
	if err != nil {
		return false
	}
	defer os.RemoveAll(dir)

	args := append([]string{"diff", "--no-index"}, words...)
	args = append(args, "--", os.DevNull, os.DevNull)

	err = e.command(ctx, dir, args).Run()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) || exitErr.ExitCode() != 1 {
			return false
		}
	}
	entries, err := os.ReadDir(dir)
	return err == nil && len(entries) == 0
}

func (e *GitEngine) Run(ctx context.Context, inv Invocation) (string, error) {
	dir, err := os.MkdirTemp("", "textdiff-")
	if err != nil {
		return "", fmt.Errorf("create scratch dir: %w", err)
	}
	defer os.RemoveAll(dir)

	if err := os.WriteFile(filepath.Join(dir, leftName), []byte(inv.Left), 0600); err != nil {
		return "", fmt.Errorf("write left side: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, rightName), []byte(inv.Right), 0600); err != nil {
		return "", fmt.Errorf("write right side: %w", err)
	}

	return runGitDiff(e.command(ctx, dir, inv.Args), "git diff")
}

func (e *GitEngine) command(ctx context.Context, dir string, args []string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, e.Path, args...)
	cmd.Dir = dir
	env := append(cmd.Environ(), "GIT_PAGER=cat")
	if e.Isolate {
		env = append(env,
			"GIT_CONFIG_NOSYSTEM=1",
			"GIT_CONFIG_GLOBAL="+os.DevNull,
			"LC_ALL=C",
		)
	}
	cmd.Env = env
	return cmd
}

func runGitDiff(cmd *exec.Cmd, label string) (string, error) {
	out, err := cmd.Output()
	if err != nil {
		// git diff exits 1 when there are differences; that is not an error
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return string(out), nil
		}
		if exitErr != nil && len(exitErr.Stderr) > 0 {
			return "", fmt.Errorf("%s: %w: %s", label, err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("%s: %w", label, err)
	}
	return string(out), nil
}
