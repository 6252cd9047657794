package git

import (
	"context"

	"github.com/madhermit/textdiff/internal/tooling"
)

// Availability describes whether the git diff engine can be used from the
// current environment.
type Availability int

const (
	Unavailable Availability = iota
	AvailableNoRepo
	AvailableInRepo
)

func (a Availability) String() string {
	switch a {
	case AvailableNoRepo:
		return "available-no-repo"
	case AvailableInRepo:
		return "available-in-repo"
	default:
		return "unavailable"
	}
}

// Probe reports engine availability. Implementations must not cache: the
// answer is derived fresh on every call.
type Probe interface {
	Availability(ctx context.Context) Availability
}

// Fixed is a Probe that always reports the same availability.
type Fixed Availability

func (f Fixed) Availability(context.Context) Availability {
	return Availability(f)
}

func IsAvailable(ctx context.Context, p Probe) bool {
	return p.Availability(ctx) != Unavailable
}

func IsAvailableOutsideRepo(ctx context.Context, p Probe) bool {
	return p.Availability(ctx) == AvailableNoRepo
}

// EnvProbe inspects the real environment: git on PATH, whether Dir is inside
// a working tree, and whether the installed git can diff outside of one.
type EnvProbe struct {
	Dir string

	findGit    func() (string, error)
	gitVersion func(ctx context.Context, path string) (string, error)
}

func NewEnvProbe(dir string) *EnvProbe {
	return &EnvProbe{
		Dir:        dir,
		findGit:    tooling.FindGit,
		gitVersion: tooling.GitVersion,
	}
}

func (p *EnvProbe) Availability(ctx context.Context) Availability {
	path, err := p.findGit()
	if err != nil {
		return Unavailable
	}
	if InRepo(p.Dir) {
		return AvailableInRepo
	}
	version, err := p.gitVersion(ctx, path)
	if err != nil || !tooling.SupportsNoRepo(version) {
		return Unavailable
	}
	return AvailableNoRepo
}
