package cmd

import (
	"fmt"

	"github.com/madhermit/textdiff/internal/git"
	"github.com/madhermit/textdiff/internal/output"
	"github.com/madhermit/textdiff/internal/tooling"
	"github.com/spf13/cobra"
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Report whether git diff can be used from here",
	Args:  cobra.NoArgs,
	RunE:  runProbe,
}

func init() {
	rootCmd.AddCommand(probeCmd)
}

type probeReport struct {
	Availability   string `json:"availability"`
	Git            string `json:"git,omitempty"`
	Version        string `json:"version,omitempty"`
	SupportsNoRepo bool   `json:"supports_no_repo"`
	RepoRoot       string `json:"repo_root,omitempty"`
	LinkedWorktree bool   `json:"linked_worktree,omitempty"`
}

func runProbe(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	report := probeReport{
		Availability: git.NewEnvProbe("").Availability(ctx).String(),
	}
	if path, err := tooling.FindGit(); err == nil {
		report.Git = path
		if v, err := tooling.GitVersion(ctx, path); err == nil {
			report.Version = v
			report.SupportsNoRepo = tooling.SupportsNoRepo(v)
		} else {
			s.log.WithError(err).Warn("could not read git version")
		}
	}
	if repo, err := git.OpenRepo(""); err == nil {
		report.RepoRoot = repo.Root()
		report.LinkedWorktree = repo.LinkedWorktree()
	}

	if output.Detect(cmd) == output.JSON {
		return output.WriteJSON(cmd.OutOrStdout(), report)
	}
	lines := []string{"availability: " + report.Availability}
	if report.Git != "" {
		lines = append(lines, "git: "+report.Git, "version: "+report.Version,
			fmt.Sprintf("supports no-repo: %v", report.SupportsNoRepo))
	}
	if report.RepoRoot != "" {
		lines = append(lines, "repository: "+report.RepoRoot)
	}
	return output.WritePlain(cmd.OutOrStdout(), lines)
}
