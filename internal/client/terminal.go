package client

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"daoxue-backend/internal/models"
)

var (
	userLabel      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#6B8E6B"))
	assistantLabel = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#B8860B"))
	pendingStyle   = lipgloss.NewStyle().Faint(true).Italic(true)
)

// TerminalRenderer prints each turn as it is rendered.
type TerminalRenderer struct {
	out io.Writer
}

func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	return &TerminalRenderer{out: out}
}

func (t *TerminalRenderer) Render(role, content string) {
	label := assistantLabel.Render("导师")
	if role == models.RoleUser {
		label = userLabel.Render("你")
	}
	fmt.Fprintf(t.out, "\n%s: %s\n", label, content)
}

func (t *TerminalRenderer) SetBusy(busy bool) {
	if busy {
		fmt.Fprintln(t.out, pendingStyle.Render("…"))
	}
}
