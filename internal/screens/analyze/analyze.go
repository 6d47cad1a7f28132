// Package analyze is the TUI for running a skill analysis over one or
// more photos of student work and saving the resulting profile.
package analyze

import (
	"context"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mathmate/mathmate/internal/analyzer"
	"github.com/mathmate/mathmate/internal/llm"
	"github.com/mathmate/mathmate/internal/profile"
	"github.com/mathmate/mathmate/internal/router"
	"github.com/mathmate/mathmate/internal/screen"
	"github.com/mathmate/mathmate/internal/ui/components"
	"github.com/mathmate/mathmate/internal/ui/layout"
	"github.com/mathmate/mathmate/internal/ui/theme"
)

type phase int

const (
	phaseInput phase = iota
	phaseLoading
	phaseDone
)

type analysisDoneMsg struct {
	Profile *profile.SkillProfile
	Err     error
}

// AnalyzeScreen collects image paths, runs the analysis, and shows the
// saved profile summary.
type AnalyzeScreen struct {
	analyzer *analyzer.Service
	profiles *profile.Manager

	phase   phase
	input   components.TextInput
	profile *profile.SkillProfile
	errMsg  string
}

var _ screen.Screen = (*AnalyzeScreen)(nil)
var _ screen.KeyHintProvider = (*AnalyzeScreen)(nil)

// New creates the analyze screen.
func New(svc *analyzer.Service, profiles *profile.Manager) *AnalyzeScreen {
	return &AnalyzeScreen{
		analyzer: svc,
		profiles: profiles,
		input:    components.NewTextInput("Photo paths, comma separated...", false, 400),
	}
}

func (s *AnalyzeScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *AnalyzeScreen) Title() string {
	return "Analyze Skills"
}

func (s *AnalyzeScreen) KeyHints() []layout.KeyHint {
	if s.phase == phaseDone {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Analyze"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *AnalyzeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case analysisDoneMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			s.phase = phaseInput
			return s, nil
		}
		s.profile = msg.Profile
		s.phase = phaseDone
		return s, nil

	case tea.KeyMsg:
		switch s.phase {
		case phaseInput:
			switch msg.String() {
			case "esc":
				return s, func() tea.Msg { return router.PopScreenMsg{} }
			case "enter":
				return s.submit()
			}
		case phaseDone:
			if key := msg.String(); key == "enter" || key == "esc" {
				return s, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return s, nil
		default:
			return s, nil
		}
	}

	if s.phase == phaseInput {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *AnalyzeScreen) submit() (screen.Screen, tea.Cmd) {
	raw := strings.TrimSpace(s.input.Value())
	if raw == "" {
		return s, nil
	}

	var paths []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}

	s.phase = phaseLoading
	s.errMsg = ""
	svc := s.analyzer
	profiles := s.profiles
	return s, func() tea.Msg {
		images := make([]llm.Image, 0, len(paths))
		for _, p := range paths {
			img, err := loadImage(p)
			if err != nil {
				return analysisDoneMsg{Err: err}
			}
			images = append(images, img)
		}

		analysis, err := svc.Analyze(context.Background(), images)
		if err != nil {
			return analysisDoneMsg{Err: err}
		}
		saved, err := profiles.ApplyAnalysis(*analysis)
		return analysisDoneMsg{Profile: saved, Err: err}
	}
}

func (s *AnalyzeScreen) View(width, height int) string {
	switch s.phase {
	case phaseLoading:
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Studying your work across all pages...")
	case phaseDone:
		return s.renderSummary(width)
	default:
		return s.renderInput(width)
	}
}

func (s *AnalyzeScreen) renderInput(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).Bold(true).
		Render("Analyze your math skills"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
		Render("Point at photos of worked exercises. The analysis replaces your current profile."))
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

func (s *AnalyzeScreen) renderSummary(width int) string {
	p := s.profile
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("Analysis saved. Estimated skill level: %d/100", p.SkillLevel)))
	b.WriteString("\n\n")

	b.WriteString(listSection(width, "Strengths", skillNames(p.Strengths), theme.Success))
	b.WriteString(listSection(width, "Weaknesses", skillNames(p.Weaknesses), theme.Error))
	b.WriteString(listSection(width, "Recommendations", p.Recommendations, theme.Text))

	if n := len(p.MistakeExamples); n > 0 {
		note := fmt.Sprintf("%d mistake example(s) extracted. Review and correct them under Skill Profile.", n)
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Accent).
			Render(note))
		b.WriteString("\n")
	}
	return b.String()
}

func skillNames(skills []profile.IdentifiedSkill) []string {
	names := make([]string, len(skills))
	for i, sk := range skills {
		names[i] = sk.Name
	}
	return names
}

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

func listSection(width int, title string, items []string, c color.Color) string {
	if len(items) == 0 {
		return ""
	}
	head := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("  " + title)
	var lines []string
	for _, it := range items {
		lines = append(lines, "    • "+it)
	}
	body := lipgloss.NewStyle().Foreground(c).Width(width - 4).Render(strings.Join(lines, "\n"))
	return head + "\n" + body + "\n\n"
}
