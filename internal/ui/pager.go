package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// detailContent formats a result for the detail pager.
func detailContent(title, resultURL, meta, snippet string) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75"))
	urlStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
	metaStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	b := &strings.Builder{}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(urlStyle.Render(resultURL))
	b.WriteString("\n")
	if meta != "" {
		b.WriteString(metaStyle.Render(meta))
		b.WriteString("\n")
	}
	if snippet != "" {
		b.WriteString("\n")
		b.WriteString(snippet)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(metaStyle.Render("q closes this view"))
	return b.String()
}

// showDetailCmd releases the terminal, runs the ov pager over content and
// restores the terminal when the pager exits.
func (m *Model) showDetailCmd(content string) tea.Cmd {
	program := m.program
	return func() tea.Msg {
		if program == nil {
			return detailClosedMsg{err: fmt.Errorf("program not set")}
		}

		if err := program.ReleaseTerminal(); err != nil {
			return detailClosedMsg{err: err}
		}
		defer func() {
			// Give ov a moment to fully exit before taking the terminal back.
			time.Sleep(100 * time.Millisecond)
			_ = program.RestoreTerminal()
		}()

		root, err := oviewer.NewRoot(strings.NewReader(content))
		if err != nil {
			return detailClosedMsg{err: err}
		}

		cfg := oviewer.NewConfig()
		cfg.IsWriteOnExit = false
		cfg.IsWriteOriginal = false
		root.SetConfig(cfg)

		return detailClosedMsg{err: root.Run()}
	}
}
