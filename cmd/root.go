package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/madhermit/textdiff/internal/config"
	"github.com/madhermit/textdiff/internal/diff"
	"github.com/madhermit/textdiff/internal/git"
	"github.com/madhermit/textdiff/internal/logging"
	"github.com/madhermit/textdiff/internal/output"
	"github.com/madhermit/textdiff/internal/tooling"
	"github.com/madhermit/textdiff/internal/tui/pager"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var errUnavailable = errors.New("git diff is not available here: install git or run inside a repository")

var rootCmd = &cobra.Command{
	Use:   "textdiff [flags] <left> <right>",
	Short: "Diff two texts with git diff",
	Long: "textdiff shows the difference between two files or strings using git diff --no-index.\n" +
		"Use - to read one side from stdin.",
	Args:          cobra.MaximumNArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.RunE = runRoot
	rootCmd.PersistentFlags().Bool("print", false, "Output in plain text (non-interactive)")
	rootCmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	rootCmd.PersistentFlags().String("config", "", "Config file (default $XDG_CONFIG_HOME/textdiff/config.toml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().Bool("quiet", false, "Only log errors")
	addDiffFlags(rootCmd)
}

func addDiffFlags(cmd *cobra.Command) {
	cmd.Flags().String("color", config.ColorAuto, "Color output: auto, always or never")
	cmd.Flags().Bool("word-diff", false, "Diff by word instead of by line")
	cmd.Flags().String("flags", "", "Extra git diff options, e.g. \"--shortstat\"")
	cmd.Flags().String("left-text", "", "Use this string as the left side")
	cmd.Flags().String("right-text", "", "Use this string as the right side")
}

func Execute() error {
	return rootCmd.Execute()
}

// session is the per-process state every subcommand starts from.
type session struct {
	defaults *config.Defaults
	log      *log.Logger
}

func newSession(cmd *cobra.Command) (*session, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		if p, err := config.DefaultPath(); err == nil {
			path = p
		}
	}
	defaults, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	level := defaults.LogLevel
	if cmd.Flags().Changed("log-level") {
		level, _ = cmd.Flags().GetString("log-level")
	}
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		level = "error"
	}
	logger, err := logging.New(cmd.ErrOrStderr(), level)
	if err != nil {
		return nil, err
	}
	return &session{defaults: defaults, log: logger}, nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	in, err := readInputs(cmd, args)
	if err != nil {
		return err
	}

	mode := output.Detect(cmd)
	colorSetting := s.defaults.Color
	if cmd.Flags().Changed("color") {
		colorSetting, _ = cmd.Flags().GetString("color")
	}
	wordDiff := s.defaults.WordDiff
	if cmd.Flags().Changed("word-diff") {
		wordDiff, _ = cmd.Flags().GetBool("word-diff")
	}
	flags, _ := cmd.Flags().GetString("flags")

	ctx := cmd.Context()
	availability := git.NewEnvProbe("").Availability(ctx)
	s.log.WithField("availability", availability).Debug("probed git")

	gitPath, _ := tooling.FindGit()
	engine := diff.NewGitEngine(gitPath, s.defaults.IsolateGitConfig)
	differ := diff.New(git.Fixed(availability), engine, s.defaults, s.log)

	out, changed, err := differ.Diff(ctx, in.left, in.right, diff.Options{
		Color:    output.UseColor(colorSetting, mode),
		WordDiff: wordDiff,
		Flags:    flags,
	})
	if err != nil {
		return err
	}

	available := availability != git.Unavailable
	switch mode {
	case output.JSON:
		return output.WriteJSON(cmd.OutOrStdout(), output.NewResult(out, changed, available, wordDiff))
	case output.Print:
		if !available {
			return errUnavailable
		}
		if changed {
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
		}
		return err
	default:
		if !available {
			return errUnavailable
		}
		if !changed {
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "No differences")
			return err
		}
		return pager.Run(fmt.Sprintf("textdiff %s %s", in.leftLabel, in.rightLabel), out)
	}
}

type inputs struct {
	left, right           string
	leftLabel, rightLabel string
}

// readInputs takes --left-text/--right-text first and fills the remaining
// sides from the positional arguments, which are file paths or "-".
func readInputs(cmd *cobra.Command, args []string) (inputs, error) {
	var in inputs
	stdinUsed := false
	side := func(flag string, text, label *string) error {
		if cmd.Flags().Changed(flag) {
			*text, _ = cmd.Flags().GetString(flag)
			*label = flag
			return nil
		}
		if len(args) == 0 {
			return fmt.Errorf("expected two inputs: give file paths, - for stdin, or --%s", flag)
		}
		name := args[0]
		args = args[1:]
		*label = name
		if name == "-" {
			if stdinUsed {
				return errors.New("stdin can only be used for one side")
			}
			stdinUsed = true
			b, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			*text = string(b)
			return nil
		}
		b, err := os.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		*text = string(b)
		return nil
	}

	if err := side("left-text", &in.left, &in.leftLabel); err != nil {
		return inputs{}, err
	}
	if err := side("right-text", &in.right, &in.rightLabel); err != nil {
		return inputs{}, err
	}
	if len(args) > 0 {
		return inputs{}, fmt.Errorf("unexpected argument %q", args[0])
	}
	return in, nil
}
