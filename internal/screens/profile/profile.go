// Package profile is the TUI for reviewing the saved skill profile and
// correcting individual mistake examples.
package profile

import (
	"context"
	"fmt"
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mathmate/mathmate/internal/analyzer"
	"github.com/mathmate/mathmate/internal/latexfmt"
	profilesvc "github.com/mathmate/mathmate/internal/profile"
	"github.com/mathmate/mathmate/internal/router"
	"github.com/mathmate/mathmate/internal/screen"
	"github.com/mathmate/mathmate/internal/ui/components"
	"github.com/mathmate/mathmate/internal/ui/layout"
	"github.com/mathmate/mathmate/internal/ui/theme"
)

type phase int

const (
	phaseView phase = iota
	phaseEditing
	phaseVerifying
)

type correctionDoneMsg struct {
	Profile *profilesvc.SkillProfile
	Verdict *profilesvc.Correction
	Err     error
}

// ProfileScreen shows the learner's skill profile. When an analyzer is
// configured, mistake examples can be edited and re-verified in place.
type ProfileScreen struct {
	profiles *profilesvc.Manager
	analyzer *analyzer.Service

	phase   phase
	profile *profilesvc.SkillProfile
	cursor  int
	edit    components.TextInput
	status  string
	errMsg  string
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)

// New creates the profile screen. A nil analyzer makes it view-only.
func New(profiles *profilesvc.Manager, svc *analyzer.Service) *ProfileScreen {
	return &ProfileScreen{
		profiles: profiles,
		analyzer: svc,
		profile:  profiles.Load(),
	}
}

func (s *ProfileScreen) Init() tea.Cmd {
	return nil
}

func (s *ProfileScreen) Title() string {
	return "Skill Profile"
}

func (s *ProfileScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseEditing:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Verify"},
			{Key: "Esc", Description: "Cancel"},
		}
	case phaseVerifying:
		return nil
	}
	hints := []layout.KeyHint{
		{Key: "↑/↓", Description: "Select example"},
	}
	if s.canCorrect() {
		hints = append(hints, layout.KeyHint{Key: "C", Description: "Correct example"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *ProfileScreen) canCorrect() bool {
	return s.analyzer != nil && s.profile != nil && len(s.profile.MistakeExamples) > 0
}

func (s *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case correctionDoneMsg:
		s.phase = phaseView
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.errMsg = ""
		s.profile = msg.Profile
		if msg.Verdict.IsCorrect {
			s.status = "Verified correct. The example has been cleared."
		} else {
			s.status = "Still not right: " + msg.Verdict.Explanation
		}
		if s.profile != nil && s.cursor >= len(s.profile.MistakeExamples) {
			s.cursor = max(len(s.profile.MistakeExamples)-1, 0)
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.phase == phaseEditing {
		var cmd tea.Cmd
		s.edit, cmd = s.edit.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *ProfileScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.phase {
	case phaseView:
		switch key {
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.profile != nil && s.cursor < len(s.profile.MistakeExamples)-1 {
				s.cursor++
			}
		case "c", "C":
			if s.canCorrect() {
				return s.beginEdit()
			}
		}
		return s, nil

	case phaseEditing:
		switch key {
		case "esc":
			s.phase = phaseView
			return s, nil
		case "enter":
			return s.submitEdit()
		}
		var cmd tea.Cmd
		s.edit, cmd = s.edit.Update(msg)
		return s, cmd

	default:
		return s, nil
	}
}

// beginEdit prefills the editor with the selected example as plain
// steps: the problem on the first line, the work after the first break.
func (s *ProfileScreen) beginEdit() (screen.Screen, tea.Cmd) {
	ex := s.profile.MistakeExamples[s.cursor]
	problem := latexfmt.StripEnvironment(ex.Problem)
	work := latexfmt.StripEnvironment(ex.StudentWork)

	text := problem
	if work != "" {
		text += " " + latexfmt.LineBreak + " " + work
	}

	s.edit = components.NewTextInput("Problem \\\\ corrected steps...", false, 0)
	s.edit.Model.SetValue(text)
	s.phase = phaseEditing
	s.status = ""
	s.errMsg = ""
	return s, s.edit.Init()
}

func (s *ProfileScreen) submitEdit() (screen.Screen, tea.Cmd) {
	text := strings.TrimSpace(s.edit.Value())
	if text == "" {
		return s, nil
	}
	problem, work := latexfmt.SplitProblemWork(text)

	s.phase = phaseVerifying
	index := s.cursor
	profiles := s.profiles
	verifier := s.analyzer
	return s, func() tea.Msg {
		p, verdict, err := profiles.CorrectMistakeExample(context.Background(), index, problem, work, verifier)
		return correctionDoneMsg{Profile: p, Verdict: verdict, Err: err}
	}
}

func (s *ProfileScreen) View(width, height int) string {
	if s.profile == nil {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No skill profile yet. Run Analyze Skills to build one.")
	}

	switch s.phase {
	case phaseEditing:
		return s.renderEdit(width)
	case phaseVerifying:
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Re-checking your correction...")
	default:
		return s.renderProfile(width)
	}
}

func (s *ProfileScreen) renderProfile(width int) string {
	p := s.profile
	var b strings.Builder
	b.WriteString("\n")

	headline := fmt.Sprintf("Skill level %d/100", p.SkillLevel)
	if p.LastAnalysis > 0 {
		headline += "  ·  analyzed " + time.UnixMilli(p.LastAnalysis).Format("Jan 2, 2006")
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).Bold(true).
		Render(headline))
	b.WriteString("\n\n")

	b.WriteString(skillSection(width, "Strengths", p.Strengths, theme.Success))
	b.WriteString(skillSection(width, "Weaknesses", p.Weaknesses, theme.Error))

	if len(p.RecentTopics) > 0 {
		b.WriteString(textSection(width, "Recent topics", strings.Join(p.RecentTopics, ", ")))
	}
	if len(p.Recommendations) > 0 {
		var lines []string
		for _, rec := range p.Recommendations {
			lines = append(lines, "→ "+rec)
		}
		b.WriteString(textSection(width, "Recommendations", strings.Join(lines, "\n")))
	}

	b.WriteString(s.renderExamples(width))

	if s.status != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Accent).
			Render(s.status))
	}
	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(s.errMsg))
	}
	return b.String()
}

func (s *ProfileScreen) renderExamples(width int) string {
	p := s.profile
	if len(p.MistakeExamples) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render("  Mistake examples"))
	b.WriteString("\n")

	for i, ex := range p.MistakeExamples {
		prefix := "    "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.cursor {
			prefix = "  > "
			style = style.Foreground(theme.Primary).Bold(true)
		}
		line := latexfmt.StripEnvironment(ex.Problem)
		if ex.SkillID != "" {
			line += lipgloss.NewStyle().Foreground(theme.TextDim).Render("  [" + ex.SkillID + "]")
		}
		b.WriteString(style.Render(prefix + line))
		b.WriteString("\n")

		if i == s.cursor {
			detail := "work: " + latexfmt.StripEnvironment(ex.StudentWork) +
				"\n" + ex.MistakeExplanation
			if ex.Correction != "" {
				detail += "\nfix: " + latexfmt.StripEnvironment(ex.Correction)
			}
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Width(width - 8).
				Render("      " + strings.ReplaceAll(detail, "\n", "\n      ")))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (s *ProfileScreen) renderEdit(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).Bold(true).
		Render("Correct this example"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
		Render(`First line is the problem, everything after the first \\ is your work.`))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.edit.View()))
	return b.String()
}

func skillSection(width int, title string, skills []profilesvc.IdentifiedSkill, c color.Color) string {
	if len(skills) == 0 {
		return ""
	}
	var lines []string
	for _, sk := range skills {
		line := "• " + sk.Name
		if sk.Explanation != "" {
			line += ": " + sk.Explanation
		}
		lines = append(lines, line)
	}
	return sectionWith(width, title, strings.Join(lines, "\n"), c)
}

func textSection(width int, title, body string) string {
	return sectionWith(width, title, body, theme.Text)
}

func sectionWith(width int, title, body string, c color.Color) string {
	head := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("  " + title)
	text := lipgloss.NewStyle().Foreground(c).Width(width - 6).Render(body)
	indented := "    " + strings.ReplaceAll(text, "\n", "\n    ")
	return head + "\n" + indented + "\n\n"
}
