package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mathmate/mathmate/internal/analyzer"
	"github.com/mathmate/mathmate/internal/history"
	"github.com/mathmate/mathmate/internal/mastery"
	"github.com/mathmate/mathmate/internal/problemgen"
	"github.com/mathmate/mathmate/internal/profile"
	"github.com/mathmate/mathmate/internal/router"
	"github.com/mathmate/mathmate/internal/screen"
	analyzescreen "github.com/mathmate/mathmate/internal/screens/analyze"
	historyscreen "github.com/mathmate/mathmate/internal/screens/history"
	practicescreen "github.com/mathmate/mathmate/internal/screens/practice"
	profilescreen "github.com/mathmate/mathmate/internal/screens/profile"
	solvescreen "github.com/mathmate/mathmate/internal/screens/solve"
	"github.com/mathmate/mathmate/internal/solver"
	"github.com/mathmate/mathmate/internal/ui/components"
	"github.com/mathmate/mathmate/internal/ui/theme"
)

// Deps carries the services the home screen hands to its sub-screens.
type Deps struct {
	Tracker   *mastery.Tracker
	History   *history.Service
	Profiles  *profile.Manager
	Generator problemgen.Generator
	Analyzer  *analyzer.Service
	Solver    *solver.Service
}

// HomeScreen is the main menu.
type HomeScreen struct {
	deps Deps
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. Menu entries needing the LLM are
// disabled when no provider is configured.
func New(deps Deps) *HomeScreen {
	llmReady := deps.Solver != nil

	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: build()}
			}
		}
	}

	items := []components.MenuItem{
		{Label: "CHECK MY WORK", Disabled: !llmReady, Action: push(func() screen.Screen {
			return solvescreen.New(deps.Solver)
		})},
		{Label: "ANALYZE SKILLS", Disabled: !llmReady, Action: push(func() screen.Screen {
			return analyzescreen.New(deps.Analyzer, deps.Profiles)
		})},
		{Label: "PRACTICE", Disabled: !llmReady, Action: push(func() screen.Screen {
			return practicescreen.New(deps.Tracker, deps.Generator)
		})},
		{Label: "SKILL PROFILE", Action: push(func() screen.Screen {
			return profilescreen.New(deps.Profiles, deps.Analyzer)
		})},
		{Label: "HISTORY", Action: push(func() screen.Screen {
			return historyscreen.New(deps.History)
		})},
		{Label: "QUIT", Action: func() tea.Cmd { return tea.Quit }},
	}

	return &HomeScreen{
		deps: deps,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := theme.Title.Width(width).Render("MathMate")
	subtitle := theme.Subtitle.Width(width).Render("Photograph your work. Find your gaps. Practice them away.")
	sections = append(sections, title, subtitle, "")

	sections = append(sections, h.renderStats(width), "")

	menu := lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View())
	sections = append(sections, menu)

	if h.deps.Solver == nil {
		warn := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Italic(true).
			Render("No LLM provider configured. Set MATHMATE_LLM_PROVIDER and an API key to enable AI features.")
		sections = append(sections, "", warn)
	}

	content := strings.Join(sections, "\n")
	return lipgloss.PlaceVertical(height, lipgloss.Center, content)
}

func (h *HomeScreen) renderStats(width int) string {
	openAreas := 0
	totalErrors := 0
	if h.deps.Tracker != nil {
		openAreas = len(h.deps.Tracker.ActiveSkillIDs())
		totalErrors = h.deps.Tracker.TotalErrors()
	}

	exercises := 0
	if h.deps.History != nil {
		exercises = len(h.deps.History.List())
	}

	level := "—"
	if h.deps.Profiles != nil {
		if p := h.deps.Profiles.Load(); p != nil {
			level = fmt.Sprintf("%d/100", p.SkillLevel)
		}
	}

	stat := func(label, value string) string {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render(label+" ") +
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(value)
	}

	line := strings.Join([]string{
		stat("Problem areas:", fmt.Sprintf("%d", openAreas)),
		stat("Open mistakes:", fmt.Sprintf("%d", totalErrors)),
		stat("Exercises checked:", fmt.Sprintf("%d", exercises)),
		stat("Skill level:", level),
	}, "    ")

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
