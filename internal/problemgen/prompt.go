package problemgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an expert math teacher creating targeted practice problems.

Rules:
- Generate distinct problems that directly address the weaknesses implied by the focus area.
- Vary the difficulty across the batch: one Easy, one Medium, one Hard where possible.
- Write math in LaTeX. Double-escape all backslashes in JSON strings (output "\\frac", not "\frac").
- Answers must be correct, concise, and in simplest form.
- Every explanation walks through the solution step by step.
- Tag each problem with the skill id from the focus area it practices, when one applies.
- Do not repeat any question from the "already asked" list.`

// buildUserMessage constructs the user message from GenerateInput and Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate %d distinct practice problems for a student who needs help with: %q\n", cfg.BatchSize, input.FocusArea)

	b.WriteString("\nAlready asked in this session:\n")
	b.WriteString(buildDedup(input.PriorQuestions, cfg.MaxPriorQuestions))

	return b.String()
}
