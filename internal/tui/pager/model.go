// Package pager shows a single diff in a scrollable full-screen view.
package pager

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/madhermit/textdiff/internal/tui"
	"github.com/sahilm/fuzzy"
)

// headerHeight covers the title line and the status line; borders add two.
const headerHeight = 2

type Model struct {
	title   string
	content string
	plain   []string

	viewport viewport.Model
	nav      tui.VimNav

	search    textinput.Model
	searching bool
	matches   []int
	matchIdx  int

	width  int
	height int
	ready  bool
}

func New(title, content string) Model {
	search := textinput.New()
	search.Prompt = "/ "
	search.PromptStyle = searchPromptStyle
	search.CharLimit = 256

	return Model{
		title:    title,
		content:  content,
		plain:    strings.Split(ansi.Strip(content), "\n"),
		viewport: viewport.New(0, 0),
		search:   search,
	}
}

// Run shows content until the user quits.
func Run(title, content string) error {
	_, err := tea.NewProgram(New(title, content), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = max(m.width-2, 10)
		m.viewport.Height = max(m.height-headerHeight-2, 1)
		if !m.ready {
			m.nav.SetContent(&m.viewport, m.content)
			m.ready = true
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch msg.Type {
	case tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "q":
			return m, tea.Quit
		case "/":
			m.searching = true
			m.search.SetValue("")
			m.search.Focus()
			return m, textinput.Blink
		case "n":
			m.jumpToMatch(1)
			return m, nil
		case "N":
			m.jumpToMatch(-1)
			return m, nil
		}
	}

	if m.nav.HandleKey(&m.viewport, msg) {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.searching = false
		m.search.Blur()
		return m, nil
	case tea.KeyEnter:
		m.searching = false
		m.search.Blur()
		m.matches = findMatches(m.search.Value(), m.plain)
		m.matchIdx = -1
		m.jumpToMatch(1)
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// findMatches returns the line numbers fuzzily matching query, in order of
// appearance.
func findMatches(query string, lines []string) []int {
	if query == "" {
		return nil
	}
	found := fuzzy.Find(query, lines)
	matches := make([]int, len(found))
	for i, f := range found {
		matches[i] = f.Index
	}
	sort.Ints(matches)
	return matches
}

func (m *Model) jumpToMatch(dir int) {
	if len(m.matches) == 0 {
		return
	}
	m.matchIdx = (m.matchIdx + dir + len(m.matches)) % len(m.matches)
	m.viewport.SetYOffset(m.matches[m.matchIdx])
}

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	title := titleStyle.Render(ansi.Truncate(m.title, max(m.width-2, 1), "…"))
	body := paneStyle.Width(m.viewport.Width).Render(m.viewport.View())

	var status string
	switch {
	case m.searching:
		status = m.search.View()
	case len(m.matches) > 0:
		status = statusBarStyle.Render(fmt.Sprintf("match %d/%d  %.0f%%  n/N:next/prev q:quit",
			m.matchIdx+1, len(m.matches), m.viewport.ScrollPercent()*100))
	default:
		status = statusBarStyle.Render(fmt.Sprintf("%.0f%%  q:quit /search j/k:scroll {/}:hunks",
			m.viewport.ScrollPercent()*100))
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, body, status)
}
