package tui

import (
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

func TestScanSectionOffsets(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []int
	}{
		{"empty", "", nil},
		{"no sections", "hello\nworld\n", nil},
		{
			"file and hunk headers",
			"diff --git a/a b/b\n--- a/a\n+++ b/b\n@@ -1 +1 @@\n-old\n+new\n@@ -9 +9 @@\n-x\n",
			[]int{0, 3, 6},
		},
		{
			"word diff line mentioning a header",
			"diff --git a/a b/b\n@@ -1 +1 @@\nsee [-diff --git-]{+@@ +}\n",
			[]int{0, 1},
		},
		{
			"colored headers",
			"\x1b[1mdiff --git a/a b/b\x1b[m\nindex abc..def\n\x1b[36m@@ -1,3 +1,3 @@\x1b[m\n",
			[]int{0, 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scanSectionOffsets(tt.content)
			if !slices.Equal(got, tt.want) {
				t.Errorf("scanSectionOffsets() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVimNav_HandleKey(t *testing.T) {
	// Build content with 100 lines so there's room to scroll
	lines := make([]string, 100)
	for i := range lines {
		lines[i] = "line"
	}
	content := strings.Join(lines, "\n")

	newViewport := func() viewport.Model {
		vp := viewport.New(80, 20)
		vp.SetContent(content)
		return vp
	}

	runeMsg := func(r string) tea.KeyMsg {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(r)}
	}

	t.Run("G goes to bottom", func(t *testing.T) {
		vp := newViewport()
		var v VimNav
		if !v.HandleKey(&vp, runeMsg("G")) {
			t.Fatal("expected handled")
		}
		if vp.YOffset == 0 {
			t.Error("expected YOffset > 0 after G")
		}
	})

	t.Run("gg goes to top", func(t *testing.T) {
		vp := newViewport()
		vp.SetYOffset(50)
		var v VimNav
		v.HandleKey(&vp, runeMsg("g"))
		if !v.HandleKey(&vp, runeMsg("g")) {
			t.Fatal("expected handled on second g")
		}
		if vp.YOffset != 0 {
			t.Errorf("expected YOffset=0 after gg, got %d", vp.YOffset)
		}
	})

	t.Run("Ctrl+D half page down", func(t *testing.T) {
		vp := newViewport()
		var v VimNav
		if !v.HandleKey(&vp, tea.KeyMsg{Type: tea.KeyCtrlD}) {
			t.Fatal("expected handled")
		}
		if vp.YOffset == 0 {
			t.Error("expected YOffset > 0 after Ctrl+D")
		}
	})

	t.Run("braces step between headers", func(t *testing.T) {
		vp := newViewport()
		var v VimNav
		v.headers = []int{10, 40, 70}
		v.HandleKey(&vp, runeMsg("}"))
		if vp.YOffset != 10 {
			t.Fatalf("YOffset after } = %d, want 10", vp.YOffset)
		}
		v.HandleKey(&vp, runeMsg("}"))
		if vp.YOffset != 40 {
			t.Fatalf("YOffset after }} = %d, want 40", vp.YOffset)
		}
		v.HandleKey(&vp, runeMsg("{"))
		if vp.YOffset != 10 {
			t.Errorf("YOffset after { = %d, want 10", vp.YOffset)
		}
	})

	t.Run("g then another key does not jump", func(t *testing.T) {
		vp := newViewport()
		vp.SetYOffset(50)
		var v VimNav
		v.HandleKey(&vp, runeMsg("g"))
		v.HandleKey(&vp, runeMsg("x"))
		v.HandleKey(&vp, runeMsg("g"))
		if vp.YOffset != 50 {
			t.Errorf("YOffset = %d, want 50", vp.YOffset)
		}
	})

	t.Run("unhandled key returns false", func(t *testing.T) {
		vp := newViewport()
		var v VimNav
		if v.HandleKey(&vp, runeMsg("x")) {
			t.Error("expected not handled for 'x'")
		}
	})
}

func TestVimNav_SetContent(t *testing.T) {
	vp := viewport.New(80, 20)
	var v VimNav
	content := "line1\ndiff --git a/a b/b\nline3\n@@ -1,2 +1,2 @@\nline5\n"
	v.SetContent(&vp, content)

	want := []int{1, 3}
	if !slices.Equal(v.headers, want) {
		t.Errorf("headers = %v, want %v", v.headers, want)
	}
}

func TestNextSection(t *testing.T) {
	offsets := []int{0, 3, 6}
	tests := []struct {
		name   string
		line   int
		dir    int
		want   int
		wantOK bool
	}{
		{"forward from header", 3, 1, 6, true},
		{"forward between headers", 4, 1, 6, true},
		{"forward past last", 6, 1, 0, false},
		{"back from header", 3, -1, 0, true},
		{"back between headers", 5, -1, 3, true},
		{"back from first", 0, -1, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := nextSection(offsets, tt.line, tt.dir)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("nextSection(%d, %d) = %d, %v; want %d, %v", tt.line, tt.dir, got, ok, tt.want, tt.wantOK)
			}
		})
	}
	if _, ok := nextSection(nil, 0, 1); ok {
		t.Error("nextSection(nil) found a header")
	}
}
