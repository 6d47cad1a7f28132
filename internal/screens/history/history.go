// Package history is the TUI for browsing past checked exercises.
package history

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	histsvc "github.com/mathmate/mathmate/internal/history"
	"github.com/mathmate/mathmate/internal/latexfmt"
	"github.com/mathmate/mathmate/internal/router"
	"github.com/mathmate/mathmate/internal/screen"
	"github.com/mathmate/mathmate/internal/ui/layout"
	"github.com/mathmate/mathmate/internal/ui/theme"
)

// HistoryScreen lists checked exercises newest first. Enter expands the
// selected entry's mistakes, explanation, and next steps.
type HistoryScreen struct {
	entries  []histsvc.ExerciseResult
	cursor   int
	expanded bool
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates the history screen with the current entries loaded.
func New(svc *histsvc.Service) *HistoryScreen {
	return &HistoryScreen{entries: svc.List()}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return nil
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	if len(s.entries) == 0 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	}
	toggle := "Details"
	if s.expanded {
		toggle = "Collapse"
	}
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Select"},
		{Key: "Enter", Description: toggle},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch key.String() {
	case "esc", "q":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
			s.expanded = false
		}
	case "down", "j":
		if s.cursor < len(s.entries)-1 {
			s.cursor++
			s.expanded = false
		}
	case "enter", " ":
		if len(s.entries) > 0 {
			s.expanded = !s.expanded
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if len(s.entries) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Nothing here yet. Checked exercises and analyses show up in this list.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, entry := range s.entries {
		prefix := "    "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.cursor {
			prefix = "  > "
			style = style.Foreground(theme.Primary).Bold(true)
		}

		verdict := theme.Correct.Render("✓")
		if !entry.IsCorrect {
			verdict = theme.Incorrect.Render("✗")
		}
		when := time.UnixMilli(entry.Timestamp).Format("Jan 2 15:04")
		line := fmt.Sprintf("%s%s  %s  %s", prefix, verdict,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(when), entry.Topic)

		b.WriteString(style.Render(line))
		b.WriteString("\n")

		if i == s.cursor && s.expanded {
			b.WriteString(renderDetail(width, entry))
		}
	}
	return b.String()
}

func renderDetail(width int, entry histsvc.ExerciseResult) string {
	var parts []string

	if entry.ProblemStatement != "" {
		parts = append(parts, latexfmt.StripEnvironment(entry.ProblemStatement))
	}
	for _, m := range entry.Mistakes {
		parts = append(parts, "• "+m.Description)
	}
	if entry.Explanation != "" {
		parts = append(parts, entry.Explanation)
	}
	for _, step := range entry.NextSteps {
		parts = append(parts, "→ "+step)
	}

	body := lipgloss.NewStyle().Foreground(theme.TextDim).Width(width - 10).
		Render(strings.Join(parts, "\n"))
	return "      " + strings.ReplaceAll(body, "\n", "\n      ") + "\n"
}
