package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type Mode int

const (
	Interactive Mode = iota
	Print
	JSON
)

func Detect(cmd *cobra.Command) Mode {
	if j, _ := cmd.Flags().GetBool("json"); j {
		return JSON
	}
	if p, _ := cmd.Flags().GetBool("print"); p {
		return Print
	}
	if !IsTerminal() {
		return Print
	}
	return Interactive
}

func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// UseColor resolves a color setting of auto, always or never. auto colors
// only a terminal and honors NO_COLOR. JSON is never colored: its text is
// stripped anyway and word-diff markers only exist in uncolored output.
func UseColor(setting string, mode Mode) bool {
	if mode == JSON {
		return false
	}
	switch setting {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return IsTerminal()
}

func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func WritePlain(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
