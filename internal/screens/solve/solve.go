// Package solve is the TUI for checking photographed work: pick an
// image file, get the graded transcription, optionally fix the
// transcription and re-grade.
package solve

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mathmate/mathmate/internal/history"
	"github.com/mathmate/mathmate/internal/llm"
	"github.com/mathmate/mathmate/internal/router"
	"github.com/mathmate/mathmate/internal/screen"
	"github.com/mathmate/mathmate/internal/solver"
	"github.com/mathmate/mathmate/internal/ui/components"
	"github.com/mathmate/mathmate/internal/ui/layout"
	"github.com/mathmate/mathmate/internal/ui/theme"
)

type phase int

const (
	phaseInput phase = iota
	phaseLoading
	phaseResult
	phaseEditing
)

type solveDoneMsg struct {
	Result *history.ExerciseResult
	Err    error
}

// SolveScreen grades one exercise photo at a time.
type SolveScreen struct {
	solver *solver.Service

	phase  phase
	input  components.TextInput
	edit   components.TextInput
	result *history.ExerciseResult
	errMsg string
}

var _ screen.Screen = (*SolveScreen)(nil)
var _ screen.KeyHintProvider = (*SolveScreen)(nil)

// New creates the solve screen in file-path entry mode.
func New(svc *solver.Service) *SolveScreen {
	return &SolveScreen{
		solver: svc,
		input:  components.NewTextInput("Path to a photo of your work (png/jpg)...", false, 200),
	}
}

func (s *SolveScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *SolveScreen) Title() string {
	return "Check My Work"
}

func (s *SolveScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseResult:
		return []layout.KeyHint{
			{Key: "E", Description: "Fix transcription"},
			{Key: "S", Description: "Check another"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseEditing:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Re-check"},
			{Key: "Esc", Description: "Cancel"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Check"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *SolveScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case solveDoneMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			s.phase = phaseInput
			return s, nil
		}
		s.errMsg = ""
		s.result = msg.Result
		s.phase = phaseResult
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s.forwardToInput(msg)
}

func (s *SolveScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.phase {
	case phaseInput:
		switch key {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "enter":
			path := strings.TrimSpace(s.input.Value())
			if path == "" {
				return s, nil
			}
			return s.submitImage(path)
		}

	case phaseLoading:
		return s, nil

	case phaseResult:
		switch key {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "s", "S":
			s.phase = phaseInput
			s.result = nil
			s.input = components.NewTextInput("Path to a photo of your work (png/jpg)...", false, 200)
			return s, s.input.Init()
		case "e", "E":
			s.edit = components.NewTextInput("Corrected LaTeX...", false, 0)
			s.edit.Model.SetValue(s.solver.EditableText(*s.result))
			s.phase = phaseEditing
			return s, s.edit.Init()
		}
		return s, nil

	case phaseEditing:
		switch key {
		case "esc":
			s.phase = phaseResult
			return s, nil
		case "enter":
			return s.submitEdit()
		}
	}

	return s.forwardToInput(msg)
}

func (s *SolveScreen) forwardToInput(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	switch s.phase {
	case phaseInput:
		s.input, cmd = s.input.Update(msg)
	case phaseEditing:
		s.edit, cmd = s.edit.Update(msg)
	}
	return s, cmd
}

func (s *SolveScreen) submitImage(path string) (screen.Screen, tea.Cmd) {
	s.phase = phaseLoading
	s.errMsg = ""
	svc := s.solver
	return s, func() tea.Msg {
		img, err := loadImage(path)
		if err != nil {
			return solveDoneMsg{Err: err}
		}
		result, err := svc.SolveImage(context.Background(), img)
		return solveDoneMsg{Result: result, Err: err}
	}
}

func (s *SolveScreen) submitEdit() (screen.Screen, tea.Cmd) {
	edited := strings.TrimSpace(s.edit.Value())
	if edited == "" || s.result == nil {
		return s, nil
	}
	prior := *s.result
	s.phase = phaseLoading
	svc := s.solver
	return s, func() tea.Msg {
		result, err := svc.ReSolve(context.Background(), prior, edited)
		return solveDoneMsg{Result: result, Err: err}
	}
}

// loadImage reads an image file and resolves its MIME type from the
// extension.
func loadImage(path string) (llm.Image, error) {
	var mime string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		mime = "image/png"
	case ".jpg", ".jpeg":
		mime = "image/jpeg"
	case ".webp":
		mime = "image/webp"
	default:
		return llm.Image{}, fmt.Errorf("unsupported image type %q (use png, jpg, or webp)", filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return llm.Image{}, fmt.Errorf("read image: %w", err)
	}
	return llm.Image{MIMEType: mime, Data: data}, nil
}

func (s *SolveScreen) View(width, height int) string {
	switch s.phase {
	case phaseLoading:
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Reading and checking your work...")
	case phaseResult:
		return s.renderResult(width)
	case phaseEditing:
		return s.renderEdit(width)
	default:
		return s.renderInput(width)
	}
}

func (s *SolveScreen) renderInput(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).Bold(true).
		Render("Check a photographed exercise"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))
	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(s.errMsg))
	}
	return b.String()
}

func (s *SolveScreen) renderEdit(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).Bold(true).
		Render("Fix the transcription"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
		Render(`Steps are separated by \\ . Edit the LaTeX and press Enter to re-check.`))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.edit.View()))
	return b.String()
}

func (s *SolveScreen) renderResult(width int) string {
	r := s.result
	var b strings.Builder
	b.WriteString("\n")

	verdict := theme.Correct.Render("✓ Correct")
	if !r.IsCorrect {
		verdict = theme.Incorrect.Render("✗ Mistakes found")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		verdict+lipgloss.NewStyle().Foreground(theme.TextDim).Render("  ·  "+r.Topic)))
	b.WriteString("\n\n")

	b.WriteString(section(width, "Your work", r.ProblemStatement))

	if len(r.Mistakes) > 0 {
		var lines []string
		for _, m := range r.Mistakes {
			lines = append(lines, "• "+m.Description)
		}
		b.WriteString(section(width, "Mistakes", strings.Join(lines, "\n")))
	}

	if r.Explanation != "" {
		b.WriteString(section(width, "Explanation", r.Explanation))
	}

	if len(r.NextSteps) > 0 {
		var lines []string
		for _, step := range r.NextSteps {
			lines = append(lines, "→ "+step)
		}
		b.WriteString(section(width, "Next steps", strings.Join(lines, "\n")))
	}

	if len(r.RuleApplications) > 0 {
		var lines []string
		for _, ra := range r.RuleApplications {
			lines = append(lines, fmt.Sprintf("%s:  %s   e.g. %s", ra.Name, ra.Generic, ra.Specific))
		}
		b.WriteString(section(width, "Rules used", strings.Join(lines, "\n")))
	}

	return b.String()
}

func section(width int, title, body string) string {
	head := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("  " + title)
	text := lipgloss.NewStyle().Foreground(theme.Text).Width(width - 6).Render(body)
	indented := "    " + strings.ReplaceAll(text, "\n", "\n    ")
	return head + "\n" + indented + "\n\n"
}
