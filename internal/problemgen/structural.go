package problemgen

// StructuralValidator checks that required fields are present, within
// length limits, and have valid enum values.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(p *Problem, _ GenerateInput) *ValidationError {
	if p.Question == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question is empty",
			Retryable: true,
		}
	}
	if len(p.Question) > 1000 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question exceeds 1000 characters",
			Retryable: true,
		}
	}
	if p.CorrectAnswer == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "correctAnswer is empty",
			Retryable: true,
		}
	}
	if p.Explanation == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "explanation is empty",
			Retryable: true,
		}
	}
	if len(p.Explanation) > 2000 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "explanation exceeds 2000 characters",
			Retryable: true,
		}
	}
	if !p.Difficulty.Valid() {
		return &ValidationError{
			Validator: v.Name(),
			Message:   `difficulty must be "Easy", "Medium", or "Hard"`,
			Retryable: true,
		}
	}
	return nil
}
