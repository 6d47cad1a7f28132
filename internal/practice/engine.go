// Package practice implements the mastery practice session state
// machine: dashboard, active session, and success phases, with
// per-skill progress counting and dynamic problem replenishment.
package practice

import (
	"errors"
	"sort"

	"github.com/mathmate/mathmate/internal/mastery"
	"github.com/mathmate/mathmate/internal/problemgen"
)

// MasteryGoal is the number of session-correct answers required to
// resolve a skill. Shared by specific and general modes.
const MasteryGoal = 5

// ErrNothingToPractice is returned when a general session is requested
// with no active problem areas.
var ErrNothingToPractice = errors.New("no problem areas to practice")

// Phase is the engine's current phase.
type Phase int

const (
	PhaseDashboard Phase = iota // Showing problem areas, no session active
	PhaseSession                // Serving problems
	PhaseSuccess                // All targets resolved, awaiting acknowledgement
)

// Mode distinguishes single-skill sessions from all-weak-skills sessions.
type Mode int

const (
	ModeGeneral  Mode = iota // Targets every skill with outstanding errors
	ModeSpecific             // Targets one chosen skill
)

// MasteryState is the engine's view of the mastery tracker.
// Satisfied by *mastery.Tracker.
type MasteryState interface {
	ActiveSkillIDs() []string
	ResolveSkill(skillID string)
}

// FetchRequest asks the caller to obtain a problem batch from the
// generator. Generation is the stale-response guard: a completion
// carrying an old generation token is ignored (the session it belongs
// to was abandoned or restarted).
type FetchRequest struct {
	Generation int
	TargetIDs  []string
}

// Engine is the practice session state machine. It is synchronous and
// single-threaded: the caller drives async problem fetches and feeds
// completions back via ApplyBatch and FetchFailed.
type Engine struct {
	tracker MasteryState

	phase Phase
	mode  Mode

	targets  map[string]bool
	progress map[string]int

	problems    []problemgen.Problem
	index       int
	answerShown bool
	hasMistake  bool

	fetching   bool
	generation int
	fetchErr   error
}

// NewEngine creates an engine in the dashboard phase.
func NewEngine(tracker MasteryState) *Engine {
	return &Engine{
		tracker:  tracker,
		phase:    PhaseDashboard,
		targets:  make(map[string]bool),
		progress: make(map[string]int),
	}
}

func (e *Engine) Phase() Phase { return e.phase }
func (e *Engine) Mode() Mode   { return e.mode }

// Targets returns the session target ids in sorted order.
func (e *Engine) Targets() []string {
	ids := make([]string, 0, len(e.targets))
	for id := range e.targets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Progress returns the per-session correct count for a skill.
func (e *Engine) Progress(skillID string) int {
	return e.progress[mastery.NormalizeID(skillID)]
}

// CurrentProblem returns the problem being displayed. ok is false while
// a replenishment batch is still loading.
func (e *Engine) CurrentProblem() (problemgen.Problem, bool) {
	if e.phase != PhaseSession || e.index >= len(e.problems) {
		return problemgen.Problem{}, false
	}
	return e.problems[e.index], true
}

// PriorQuestions returns the question texts served so far, for
// repeat-avoidance in replenishment fetches.
func (e *Engine) PriorQuestions() []string {
	qs := make([]string, 0, len(e.problems))
	for _, p := range e.problems {
		qs = append(qs, p.Question)
	}
	return qs
}

func (e *Engine) AnswerShown() bool { return e.answerShown }
func (e *Engine) HasMistake() bool  { return e.hasMistake }
func (e *Engine) Fetching() bool    { return e.fetching }

// FetchErr returns the error from the last failed batch fetch, if any.
// Cleared when the next fetch is issued.
func (e *Engine) FetchErr() error { return e.fetchErr }

// Start begins a session. A non-empty targetSkillID starts a specific
// session on that one skill; an empty id starts a general session on
// every active problem area. Returns the initial batch request.
//
// A general start with no active skills fails with ErrNothingToPractice
// and leaves the engine on the dashboard.
func (e *Engine) Start(targetSkillID string) (FetchRequest, error) {
	targets := make(map[string]bool)
	mode := ModeGeneral
	if targetSkillID != "" {
		targets[mastery.NormalizeID(targetSkillID)] = true
		mode = ModeSpecific
	} else {
		for _, id := range e.tracker.ActiveSkillIDs() {
			targets[id] = true
		}
		if len(targets) == 0 {
			return FetchRequest{}, ErrNothingToPractice
		}
	}

	e.generation++
	e.phase = PhaseSession
	e.mode = mode
	e.targets = targets
	e.progress = make(map[string]int)
	e.problems = nil
	e.index = 0
	e.answerShown = false
	e.hasMistake = false

	return e.issueFetch(), nil
}

// RevealAnswer marks the current problem's answer as shown.
func (e *Engine) RevealAnswer() {
	if e.phase == PhaseSession {
		e.answerShown = true
	}
}

// Evaluate processes the learner's self-evaluation of the current
// problem. An incorrect answer sets the mistake flag and blocks
// advancing until AcknowledgeMistake; no progress is recorded, and
// further Evaluate calls are ignored until the mistake is
// acknowledged. A correct answer credits the attributed skill,
// resolves it when the mastery goal is reached, and advances. A
// tagged skill outside the target set still resolves at the goal;
// its target-set removal is simply a no-op.
//
// The returned request is non-nil when the problem batch ran out and a
// replenishment fetch is needed.
func (e *Engine) Evaluate(correct bool) *FetchRequest {
	if e.phase != PhaseSession || e.hasMistake {
		return nil
	}
	problem, ok := e.CurrentProblem()
	if !ok {
		return nil
	}

	if !correct {
		e.hasMistake = true
		return nil
	}

	if id := e.attributeSkill(problem); id != "" {
		e.progress[id]++
		if e.progress[id] >= MasteryGoal {
			e.tracker.ResolveSkill(id)
			delete(e.targets, id)
			if len(e.targets) == 0 {
				e.phase = PhaseSuccess
				return nil
			}
		}
	}

	return e.advance()
}

// AcknowledgeMistake clears the mistake flag and advances to the next
// problem without crediting any skill.
func (e *Engine) AcknowledgeMistake() *FetchRequest {
	if e.phase != PhaseSession || !e.hasMistake {
		return nil
	}
	return e.advance()
}

// ApplyBatch appends a fetched problem batch. Completions carrying a
// stale generation token are ignored: their session was abandoned.
// Reports whether the batch was applied.
func (e *Engine) ApplyBatch(generation int, problems []problemgen.Problem) bool {
	if generation != e.generation || e.phase != PhaseSession {
		return false
	}
	e.problems = append(e.problems, problems...)
	e.fetching = false
	return true
}

// FetchFailed records a failed batch fetch. The user stays on the last
// available problem rather than advancing into an undefined state.
// Stale completions are ignored.
func (e *Engine) FetchFailed(generation int, err error) {
	if generation != e.generation || e.phase != PhaseSession {
		return
	}
	e.fetching = false
	e.fetchErr = err
	if e.index >= len(e.problems) && len(e.problems) > 0 {
		e.index = len(e.problems) - 1
	}
}

// RetryFetch re-issues a batch request after a failed fetch.
func (e *Engine) RetryFetch() *FetchRequest {
	if e.phase != PhaseSession || e.fetching || len(e.targets) == 0 {
		return nil
	}
	req := e.issueFetch()
	return &req
}

// Exit abandons the session and returns to the dashboard. Partial
// per-skill progress is lost; only mastery resolutions already
// committed are durable. Any in-flight fetch result is invalidated.
func (e *Engine) Exit() {
	e.generation++
	e.phase = PhaseDashboard
	e.targets = make(map[string]bool)
	e.progress = make(map[string]int)
	e.problems = nil
	e.index = 0
	e.answerShown = false
	e.hasMistake = false
	e.fetching = false
	e.fetchErr = nil
}

// Acknowledge leaves the success phase for the dashboard.
func (e *Engine) Acknowledge() {
	if e.phase == PhaseSuccess {
		e.Exit()
	}
}

// attributeSkill determines which skill a correct answer counts toward.
// The problem's own tag wins; an untagged problem in a single-target
// specific session falls back to that target. In general mode an
// untagged problem earns no credit, a known gap carried over from the
// original attribution heuristic.
func (e *Engine) attributeSkill(p problemgen.Problem) string {
	if p.SkillID != "" {
		return mastery.NormalizeID(p.SkillID)
	}
	if e.mode == ModeSpecific && len(e.targets) == 1 {
		return e.Targets()[0]
	}
	return ""
}

// advance moves to the next problem, requesting a replenishment batch
// when the current one is exhausted and targets remain. The index
// advances past the batch end while the fetch is loading; CurrentProblem
// reports no problem until the batch arrives.
func (e *Engine) advance() *FetchRequest {
	e.answerShown = false
	e.hasMistake = false

	if e.index < len(e.problems)-1 {
		e.index++
		return nil
	}

	if len(e.targets) > 0 {
		e.index++
		if e.fetching {
			return nil
		}
		req := e.issueFetch()
		return &req
	}

	e.phase = PhaseSuccess
	return nil
}

func (e *Engine) issueFetch() FetchRequest {
	e.fetching = true
	e.fetchErr = nil
	return FetchRequest{
		Generation: e.generation,
		TargetIDs:  e.Targets(),
	}
}
