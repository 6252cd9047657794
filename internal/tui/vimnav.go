package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// VimNav moves the diff pager's viewport with vim keys. Besides scrolling
// (gg, G, ctrl+d/u/f/b) it remembers where each file and hunk header sits so
// { and } step between them.
type VimNav struct {
	pendingG bool
	headers  []int
}

var scrollKeys = map[string]func(*viewport.Model){
	"G":      func(vp *viewport.Model) { vp.GotoBottom() },
	"ctrl+d": func(vp *viewport.Model) { vp.HalfPageDown() },
	"ctrl+u": func(vp *viewport.Model) { vp.HalfPageUp() },
	"ctrl+f": func(vp *viewport.Model) { vp.PageDown() },
	"ctrl+b": func(vp *viewport.Model) { vp.PageUp() },
}

// HandleKey reports whether the key moved (or may yet move) the viewport.
func (v *VimNav) HandleKey(vp *viewport.Model, msg tea.KeyMsg) bool {
	key := msg.String()
	if key == "g" {
		if v.pendingG {
			vp.GotoTop()
		}
		v.pendingG = !v.pendingG
		return true
	}
	v.pendingG = false

	if scroll, ok := scrollKeys[key]; ok {
		scroll(vp)
		return true
	}
	dir := 0
	switch key {
	case "{":
		dir = -1
	case "}":
		dir = 1
	default:
		return false
	}
	if line, ok := nextSection(v.headers, vp.YOffset, dir); ok {
		vp.SetYOffset(line)
	}
	return true
}

// SetContent replaces the viewport text and re-indexes its headers.
func (v *VimNav) SetContent(vp *viewport.Model, content string) {
	vp.SetContent(content)
	v.headers = scanSectionOffsets(content)
}

func scanSectionOffsets(content string) []int {
	var offsets []int
	for i, line := range strings.Split(content, "\n") {
		line = ansi.Strip(line)
		if strings.HasPrefix(line, "diff --git ") || strings.HasPrefix(line, "@@ ") {
			offsets = append(offsets, i)
		}
	}
	return offsets
}

// nextSection finds the first header after line (dir > 0) or the last one
// before it (dir < 0). offsets must be sorted.
func nextSection(offsets []int, line, dir int) (int, bool) {
	i, found := slices.BinarySearch(offsets, line)
	if dir > 0 {
		if found {
			i++
		}
		if i < len(offsets) {
			return offsets[i], true
		}
		return 0, false
	}
	if i > 0 {
		return offsets[i-1], true
	}
	return 0, false
}
