package cli

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	searchHighlight = lipgloss.NewStyle().
			Background(lipgloss.Color("228")). // yellow
			Foreground(lipgloss.Color("0"))    // black

	currentMatchHighlight = lipgloss.NewStyle().
				Background(lipgloss.Color("196")). // red
				Foreground(lipgloss.Color("15"))   // white

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			PaddingLeft(2)
)

// match is one search hit, in runes within a line
type match struct {
	line   int
	col    int
	length int
}

// findMatches returns every non-overlapping occurrence of query.
// The search ignores case unless query contains an upper case letter.
func findMatches(lines []string, query string) []match {
	if query == "" {
		return nil
	}
	fold := !strings.ContainsFunc(query, unicode.IsUpper)
	q := []rune(query)
	if fold {
		q = lowerRunes(q)
	}

	var out []match
	for i, line := range lines {
		r := []rune(line)
		if fold {
			r = lowerRunes(r)
		}
		for j := 0; j+len(q) <= len(r); {
			if slices.Equal(r[j:j+len(q)], q) {
				out = append(out, match{line: i, col: j, length: len(q)})
				j += len(q)
				continue
			}
			j++
		}
	}
	return out
}

func lowerRunes(r []rune) []rune {
	out := make([]rune, len(r))
	for i, c := range r {
		out[i] = unicode.ToLower(c)
	}
	return out
}

// highlight renders lines with every match styled, the current one distinctly
func highlight(lines []string, matches []match, current int) string {
	out := slices.Clone(lines)
	for i := 0; i < len(matches); {
		lineNo := matches[i].line
		r := []rune(lines[lineNo])
		var b strings.Builder
		last := 0
		for ; i < len(matches) && matches[i].line == lineNo; i++ {
			m := matches[i]
			b.WriteString(string(r[last:m.col]))
			style := searchHighlight
			if i == current {
				style = currentMatchHighlight
			}
			b.WriteString(style.Render(string(r[m.col : m.col+m.length])))
			last = m.col + m.length
		}
		b.WriteString(string(r[last:]))
		out[lineNo] = b.String()
	}
	return strings.Join(out, "\n")
}

type searchState struct {
	active  bool
	input   textinput.Model
	matches []match
	current int
}

// pagerModel represents the state for the pager UI
type pagerModel struct {
	viewport viewport.Model
	lines    []string
	ready    bool
	search   searchState
}

// NewPager creates a new pager model with the given content
func NewPager(content string) *pagerModel {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return &pagerModel{
		lines:  strings.Split(strings.TrimSuffix(content, "\n"), "\n"),
		search: searchState{input: ti},
	}
}

func (m *pagerModel) Init() tea.Cmd {
	return nil
}

func (m *pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.search.active {
			switch msg.Type {
			case tea.KeyEscape:
				m.search.active = false
				m.search.input.Reset()
				m.clearSearch()
			case tea.KeyEnter:
				m.search.active = false
				m.runSearch(m.search.input.Value())
			default:
				var cmd tea.Cmd
				m.search.input, cmd = m.search.input.Update(msg)
				return m, cmd
			}
			return m, nil
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.search.input.Reset()
			m.clearSearch()
		case "/":
			m.search.active = true
			m.search.input.Focus()
			return m, textinput.Blink
		case "n":
			m.jump(1)
		case "N":
			m.jump(-1)
		case "g", "home":
			m.viewport.GotoTop()
		case "G", "end":
			m.viewport.GotoBottom()
		}

	case tea.WindowSizeMsg:
		height := msg.Height - 1
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.SetContent(strings.Join(m.lines, "\n"))
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *pagerModel) View() string {
	if !m.ready {
		return "\nInitializing..."
	}
	if m.search.active {
		return m.viewport.View() + "\n" + m.search.input.View()
	}

	help := "↑/k ↓/j scroll • g/G top/bottom • / search • q quit"
	if n := len(m.search.matches); n > 0 {
		help = fmt.Sprintf("match %d/%d • n next • N previous • esc clear • q quit", m.search.current+1, n)
	} else if q := m.search.input.Value(); q != "" {
		help = fmt.Sprintf("no match for %q • / search • q quit", q)
	}
	return m.viewport.View() + "\n" + helpStyle.Render(help)
}

func (m *pagerModel) runSearch(query string) {
	m.search.matches = findMatches(m.lines, query)
	m.search.current = 0
	if len(m.search.matches) == 0 {
		m.viewport.SetContent(strings.Join(m.lines, "\n"))
		return
	}
	// start from the first match at or below the top of the screen
	if i := slices.IndexFunc(m.search.matches, func(mt match) bool { return mt.line >= m.viewport.YOffset }); i >= 0 {
		m.search.current = i
	}
	m.show()
}

// jump moves the current match by delta, wrapping around
func (m *pagerModel) jump(delta int) {
	n := len(m.search.matches)
	if n == 0 {
		return
	}
	m.search.current = ((m.search.current+delta)%n + n) % n
	m.show()
}

func (m *pagerModel) show() {
	m.viewport.SetContent(highlight(m.lines, m.search.matches, m.search.current))
	line := m.search.matches[m.search.current].line
	if line < m.viewport.YOffset || line >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(max(line-m.viewport.Height/2, 0))
	}
}

func (m *pagerModel) clearSearch() {
	m.search.matches = nil
	m.search.current = 0
	m.viewport.SetContent(strings.Join(m.lines, "\n"))
}

// RunPager starts the pager program with the given content
func RunPager(content string) error {
	p := tea.NewProgram(
		NewPager(content),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
