// Package diff computes the difference between two strings by delegating to
// `git diff --no-index`.
package diff

import (
	"context"

	"github.com/madhermit/textdiff/internal/config"
	"github.com/madhermit/textdiff/internal/git"
	log "github.com/sirupsen/logrus"
)

type Options struct {
	Color    bool
	WordDiff bool
	// Extra git diff options, e.g. "--shortstat". Empty means none.
	Flags string
}

// Logger receives the diagnostics emitted while resolving flags.
// *logrus.Logger and *logrus.Entry satisfy it.
type Logger interface {
	Warn(args ...interface{})
	Info(args ...interface{})
}

// Engine runs git. Validate is a dry run of a flags string against git's
// option parser; Run executes a built invocation.
type Engine interface {
	Validate(ctx context.Context, flags string) bool
	Run(ctx context.Context, inv Invocation) (string, error)
}

// Differ is not safe for concurrent use: it shares its *config.Defaults with
// the caller and may clear Defaults.Flags.
type Differ struct {
	probe    git.Probe
	engine   Engine
	defaults *config.Defaults
	log      Logger
}

func New(probe git.Probe, engine Engine, defaults *config.Defaults, logger Logger) *Differ {
	if defaults == nil {
		defaults = config.New()
	}
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Differ{
		probe:    probe,
		engine:   engine,
		defaults: defaults,
		log:      logger,
	}
}

// Diff returns git's rendering of the difference between a and b. ok is false
// when there is no difference or when git cannot be used here; neither case
// is an error. Errors are reserved for a failed git invocation.
func (d *Differ) Diff(ctx context.Context, a, b string, opts Options) (out string, ok bool, err error) {
	if !git.IsAvailable(ctx, d.probe) {
		return "", false, nil
	}

	flags := d.resolveFlags(ctx, opts.Flags)
	raw, err := d.engine.Run(ctx, buildInvocation(a, b, opts, flags))
	if err != nil {
		return "", false, err
	}
	out, ok = normalize(raw, a == b)
	return out, ok, nil
}
