package problemgen

// Difficulty is the generator's difficulty label for a problem.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Valid reports whether d is one of the known difficulty labels.
func (d Difficulty) Valid() bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

// Problem is one generated practice problem. Problems are consumed
// sequentially within a session and never mutated.
type Problem struct {
	// ID is assigned locally at batch-creation time.
	ID string `json:"id"`

	// Question is the problem prompt, LaTeX allowed.
	Question string `json:"question"`

	// CorrectAnswer is the expected result, shown on reveal.
	CorrectAnswer string `json:"correctAnswer"`

	// Explanation is the worked solution shown alongside the answer.
	Explanation string `json:"explanation"`

	Difficulty Difficulty `json:"difficulty"`
	Topic      string     `json:"topic"`

	// SkillID tags the problem with the taxonomy skill it practices.
	// May be empty when the generator could not classify the problem.
	SkillID string `json:"skillId,omitempty"`
}

// GenerateInput holds the context for one batch request.
type GenerateInput struct {
	// FocusArea describes what to practice: a comma-joined list of
	// target skill ids, or a free-text topic.
	FocusArea string

	// PriorQuestions contains the question texts already shown in this
	// session, used to avoid repeats across batches.
	PriorQuestions []string
}
