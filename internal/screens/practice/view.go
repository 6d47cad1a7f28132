package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	enginepkg "github.com/mathmate/mathmate/internal/practice"
	"github.com/mathmate/mathmate/internal/taxonomy"
	"github.com/mathmate/mathmate/internal/ui/components"
	"github.com/mathmate/mathmate/internal/ui/theme"
)

func (s *PracticeScreen) View(width, height int) string {
	switch s.engine.Phase() {
	case enginepkg.PhaseSession:
		return s.renderSession(width)
	case enginepkg.PhaseSuccess:
		return renderSuccess(width, height)
	default:
		return s.renderDashboard(width)
	}
}

func (s *PracticeScreen) renderDashboard(width int) string {
	if len(s.rows) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No problem areas right now. Check some work or run a skill analysis first.")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
		Render("Pick a skill to practice, or press A to work through everything."))
	b.WriteString("\n\n")

	for i, r := range s.rows {
		switch r.kind {
		case rowCategory:
			b.WriteString("  " + lipgloss.NewStyle().
				Foreground(theme.Secondary).Bold(true).
				Render(r.category))
			b.WriteString("\n")
		case rowSkill:
			prefix := "    "
			if i == s.cursor {
				prefix = "  > "
			}
			errs := "error"
			if r.skill.ErrorCount != 1 {
				errs = "errors"
			}
			line := fmt.Sprintf("%s%s  %s", prefix, r.skill.Name,
				lipgloss.NewStyle().Foreground(theme.Error).
					Render(fmt.Sprintf("%d %s", r.skill.ErrorCount, errs)))

			style := lipgloss.NewStyle().Foreground(theme.Text)
			if i == s.cursor {
				style = style.Foreground(theme.Primary).Bold(true)
			}
			b.WriteString(style.Render(line))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (s *PracticeScreen) renderSession(width int) string {
	if err := s.engine.FetchErr(); err != nil {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nCould not fetch more problems.\n%s\n\nPress R to retry.", err))
	}

	problem, ok := s.engine.CurrentProblem()
	if !ok {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Generating problems...")
	}

	var b strings.Builder

	b.WriteString(s.renderProgress(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	topicLine := problem.Topic
	if problem.Difficulty != "" {
		topicLine += "  ·  " + string(problem.Difficulty)
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
		Render(topicLine))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).Bold(true).
		Render(problem.Question))
	b.WriteString("\n\n")

	if s.engine.HasMistake() {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).Bold(true).
			Render("No progress for this one. Read the explanation, then keep going."))
		b.WriteString("\n\n")
	}

	if s.engine.AnswerShown() {
		answer := theme.Correct.Render("Answer: " + problem.CorrectAnswer)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, answer))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render(problem.Explanation))
		b.WriteString("\n\n")
		if !s.engine.HasMistake() {
			b.WriteString(lipgloss.NewStyle().
				Width(width).Align(lipgloss.Center).Foreground(theme.Text).
				Render("Did you get it right?  " +
					theme.Correct.Render("[Y]es") + "  " + theme.Incorrect.Render("[N]o")))
		}
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("Work it out on paper, then press Enter to reveal the answer.")))
	}

	return b.String()
}

// renderProgress shows one mastery bar per remaining target skill.
func (s *PracticeScreen) renderProgress(width int) string {
	var b strings.Builder
	for _, id := range s.engine.Targets() {
		name := taxonomy.SkillName(id)
		done := s.engine.Progress(id)
		bar := components.NewProgressBar(
			fmt.Sprintf("  %s (%d/%d)", name, done, enginepkg.MasteryGoal),
			float64(done)/float64(enginepkg.MasteryGoal),
			false,
			min(width-4, 72),
		)
		b.WriteString(bar.View())
		b.WriteString("\n")
	}
	return b.String()
}

func renderSuccess(width, height int) string {
	banner := theme.Correct.Render("★  All problem areas cleared!  ★")
	body := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render("Every target skill hit the mastery goal. Nicely done.")
	back := components.NewButton("Back to dashboard", true, nil).View()

	content := lipgloss.JoinVertical(lipgloss.Center, banner, "", body, "", back)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
