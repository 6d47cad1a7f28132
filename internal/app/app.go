// Package app hosts the root Bubble Tea model: a screen router framed
// by the shared header and footer chrome.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mathmate/mathmate/internal/analyzer"
	"github.com/mathmate/mathmate/internal/history"
	"github.com/mathmate/mathmate/internal/mastery"
	"github.com/mathmate/mathmate/internal/problemgen"
	"github.com/mathmate/mathmate/internal/profile"
	"github.com/mathmate/mathmate/internal/router"
	"github.com/mathmate/mathmate/internal/screen"
	"github.com/mathmate/mathmate/internal/screens/home"
	"github.com/mathmate/mathmate/internal/solver"
	"github.com/mathmate/mathmate/internal/ui/layout"
)

// Options carries the wired services into the TUI. The LLM-backed
// fields are nil when no provider is configured; the affected menu
// entries are disabled rather than failing at use.
type Options struct {
	Tracker   *mastery.Tracker
	History   *history.Service
	Profiles  *profile.Manager
	Generator problemgen.Generator
	Analyzer  *analyzer.Service
	Solver    *solver.Service
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	tracker *mastery.Tracker
	width   int
	height  int
}

func newAppModel(opts Options) AppModel {
	homeScreen := home.New(home.Deps{
		Tracker:   opts.Tracker,
		History:   opts.History,
		Profiles:  opts.Profiles,
		Generator: opts.Generator,
		Analyzer:  opts.Analyzer,
		Solver:    opts.Solver,
	})
	return AppModel{
		router:  router.New(homeScreen),
		tracker: opts.Tracker,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	openAreas := 0
	if m.tracker != nil {
		openAreas = len(m.tracker.ActiveSkillIDs())
	}
	header := layout.RenderHeader(title, openAreas, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
