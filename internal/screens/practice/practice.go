// Package practice is the TUI for mastery practice sessions: a
// dashboard of problem areas, the problem-serving session, and the
// all-clear celebration.
package practice

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/mathmate/mathmate/internal/mastery"
	enginepkg "github.com/mathmate/mathmate/internal/practice"
	"github.com/mathmate/mathmate/internal/problemgen"
	"github.com/mathmate/mathmate/internal/router"
	"github.com/mathmate/mathmate/internal/screen"
	"github.com/mathmate/mathmate/internal/taxonomy"
	"github.com/mathmate/mathmate/internal/ui/layout"
)

type rowKind int

const (
	rowCategory rowKind = iota
	rowSkill
)

type row struct {
	kind     rowKind
	category string
	skill    mastery.ProblemSkill
}

// PracticeScreen drives the practice engine. All async problem fetches
// flow through batchReadyMsg/batchFailedMsg carrying the engine's
// generation token.
type PracticeScreen struct {
	tracker   *mastery.Tracker
	generator problemgen.Generator
	engine    *enginepkg.Engine

	rows   []row
	cursor int
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates the practice screen on the dashboard phase.
func New(tracker *mastery.Tracker, generator problemgen.Generator) *PracticeScreen {
	s := &PracticeScreen{
		tracker:   tracker,
		generator: generator,
		engine:    enginepkg.NewEngine(tracker),
	}
	s.reloadDashboard()
	return s
}

func (s *PracticeScreen) Init() tea.Cmd {
	return nil
}

func (s *PracticeScreen) Title() string {
	switch s.engine.Phase() {
	case enginepkg.PhaseSession:
		return "Practice Session"
	case enginepkg.PhaseSuccess:
		return "Practice Complete"
	default:
		return "Practice"
	}
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	switch s.engine.Phase() {
	case enginepkg.PhaseSession:
		if s.engine.FetchErr() != nil {
			return []layout.KeyHint{
				{Key: "R", Description: "Retry"},
				{Key: "Esc", Description: "End session"},
			}
		}
		if s.engine.HasMistake() {
			return []layout.KeyHint{
				{Key: "any key", Description: "Got it"},
			}
		}
		if s.engine.AnswerShown() {
			return []layout.KeyHint{
				{Key: "Y", Description: "I was right"},
				{Key: "N", Description: "I was wrong"},
				{Key: "Esc", Description: "End session"},
			}
		}
		return []layout.KeyHint{
			{Key: "Enter", Description: "Show answer"},
			{Key: "Esc", Description: "End session"},
		}
	case enginepkg.PhaseSuccess:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Back to dashboard"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Practice skill"},
			{Key: "A", Description: "Practice everything"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case batchReadyMsg:
		s.engine.ApplyBatch(msg.Generation, msg.Problems)
		return s, nil

	case batchFailedMsg:
		s.engine.FetchFailed(msg.Generation, msg.Err)
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.engine.Phase() {
	case enginepkg.PhaseDashboard:
		switch key {
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "a":
			return s.startSession("")
		case "enter":
			if s.cursor >= 0 && s.cursor < len(s.rows) && s.rows[s.cursor].kind == rowSkill {
				return s.startSession(s.rows[s.cursor].skill.SkillID)
			}
		}
		return s, nil

	case enginepkg.PhaseSession:
		if s.engine.FetchErr() != nil {
			switch key {
			case "r", "R":
				if req := s.engine.RetryFetch(); req != nil {
					return s, s.fetchBatch(*req)
				}
				return s, nil
			case "esc":
				s.exitSession()
				return s, nil
			}
			return s, nil
		}

		if s.engine.HasMistake() {
			if req := s.engine.AcknowledgeMistake(); req != nil {
				return s, s.fetchBatch(*req)
			}
			return s, nil
		}

		switch key {
		case "esc":
			s.exitSession()
			return s, nil
		case "enter", " ":
			if !s.engine.AnswerShown() {
				s.engine.RevealAnswer()
			}
			return s, nil
		case "y", "Y":
			if s.engine.AnswerShown() {
				if req := s.engine.Evaluate(true); req != nil {
					return s, s.fetchBatch(*req)
				}
			}
			return s, nil
		case "n", "N":
			if s.engine.AnswerShown() {
				s.engine.Evaluate(false)
			}
			return s, nil
		}
		return s, nil

	case enginepkg.PhaseSuccess:
		if key == "enter" || key == "esc" {
			s.engine.Acknowledge()
			s.reloadDashboard()
		}
		return s, nil
	}

	return s, nil
}

func (s *PracticeScreen) startSession(targetSkillID string) (screen.Screen, tea.Cmd) {
	req, err := s.engine.Start(targetSkillID)
	if err != nil {
		// Nothing to practice; the dashboard already says so.
		return s, nil
	}
	return s, s.fetchBatch(req)
}

func (s *PracticeScreen) exitSession() {
	s.engine.Exit()
	s.reloadDashboard()
}

// fetchBatch generates problems off the Update loop. The completion
// message carries the request's generation token so batches for
// abandoned sessions are discarded by the engine.
func (s *PracticeScreen) fetchBatch(req enginepkg.FetchRequest) tea.Cmd {
	gen := s.generator
	prior := s.engine.PriorQuestions()
	focus := focusArea(req.TargetIDs)
	return func() tea.Msg {
		problems, err := gen.GenerateBatch(context.Background(), problemgen.GenerateInput{
			FocusArea:      focus,
			PriorQuestions: prior,
		})
		if err != nil {
			return batchFailedMsg{Generation: req.Generation, Err: err}
		}
		return batchReadyMsg{Generation: req.Generation, Problems: problems}
	}
}

// focusArea names the target skills for the generator prompt.
func focusArea(targetIDs []string) string {
	parts := make([]string, 0, len(targetIDs))
	for _, id := range targetIDs {
		if name := taxonomy.SkillName(id); name != id {
			parts = append(parts, name+" ("+id+")")
		} else {
			parts = append(parts, id)
		}
	}
	return strings.Join(parts, ", ")
}

func (s *PracticeScreen) reloadDashboard() {
	areas := s.tracker.ProblemAreas()

	var rows []row
	for _, cat := range areas.Categories {
		rows = append(rows, row{kind: rowCategory, category: cat.Category})
		for _, group := range cat.Groups {
			for _, skill := range group.Skills {
				rows = append(rows, row{kind: rowSkill, skill: skill})
			}
		}
	}
	if len(areas.Uncategorized) > 0 {
		rows = append(rows, row{kind: rowCategory, category: "Other"})
		for _, skill := range areas.Uncategorized {
			rows = append(rows, row{kind: rowSkill, skill: skill})
		}
	}

	s.rows = rows
	s.cursor = 0
	for i, r := range rows {
		if r.kind == rowSkill {
			s.cursor = i
			break
		}
	}
}

func (s *PracticeScreen) moveCursor(delta int) {
	i := s.cursor + delta
	for i >= 0 && i < len(s.rows) {
		if s.rows[i].kind == rowSkill {
			s.cursor = i
			return
		}
		i += delta
	}
}
