package diff

import (
	"context"
	"fmt"
	"strings"
)

const (
	msgInvalidFlags = "Ignoring invalid git diff options: %s"
	msgFlagsHelp    = "For valid git diff options refer to https://git-scm.com/docs/git-diff#_options"
	msgUsingDefault = "Using default git diff options: %s"
)

// resolveFlags picks the flags passed to git: the caller's when git accepts
// them, otherwise the configured default. A default git rejects is cleared
// so later calls do not probe it again.
func (d *Differ) resolveFlags(ctx context.Context, flags string) string {
	flags = strings.TrimSpace(flags)
	if flags == "" {
		return d.defaultFlags(ctx)
	}
	if d.engine.Validate(ctx, flags) {
		return flags
	}

	d.log.Warn(fmt.Sprintf(msgInvalidFlags, flags))
	d.log.Info(msgFlagsHelp)

	def := d.defaults.Flags
	if def == "" {
		return ""
	}
	if !d.engine.Validate(ctx, def) {
		d.defaults.ClearFlags()
		return ""
	}
	d.log.Info(fmt.Sprintf(msgUsingDefault, def))
	return def
}

// defaultFlags is used when the caller passed no flags. It never logs.
func (d *Differ) defaultFlags(ctx context.Context) string {
	def := d.defaults.Flags
	if def == "" {
		return ""
	}
	if !d.engine.Validate(ctx, def) {
		d.defaults.ClearFlags()
		return ""
	}
	return def
}
