package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/morikuni/failure/v2"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	pathStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	countStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("228"))
)

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// styled applies style only when stdout is a terminal
func styled(style lipgloss.Style, s string) string {
	if !isTerminal(os.Stdout) {
		return s
	}
	return style.Render(s)
}

// printMarkdown renders md with glamour on a terminal and writes it as is otherwise
func printMarkdown(w io.Writer, md string, tty bool) error {
	if !tty {
		_, err := io.WriteString(w, md)
		return err
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return failure.Wrap(err)
	}
	out, err := renderer.Render(md)
	if err != nil {
		return failure.Wrap(err)
	}
	_, err = io.WriteString(w, out)
	return err
}
