package problemgen

// Config holds generation parameters.
type Config struct {
	// BatchSize is the number of problems requested per call.
	BatchSize int

	// MaxTokens limits the LLM response size.
	MaxTokens int

	// Temperature controls generation randomness.
	Temperature float64

	// MaxPriorQuestions caps how many prior question texts are included
	// in the prompt for deduplication.
	MaxPriorQuestions int

	// Validators run against each generated problem, in order.
	Validators []Validator
}

// DefaultConfig returns the standard generation configuration.
func DefaultConfig() Config {
	return Config{
		BatchSize:         3,
		MaxTokens:         4096,
		Temperature:       0.5,
		MaxPriorQuestions: 12,
		Validators: []Validator{
			&StructuralValidator{},
		},
	}
}
