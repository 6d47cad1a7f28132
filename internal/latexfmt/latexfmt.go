// Package latexfmt normalizes the LaTeX fragments that flow between the
// analysis collaborators and the stored profile. Multi-line math is stored
// wrapped in a gather* environment so every fragment renders standalone.
package latexfmt

import (
	"regexp"
	"strings"
)

// LineBreak is the literal LaTeX line-break marker separating logical steps.
const LineBreak = `\\`

var (
	beginRe = regexp.MustCompile(`^\s*\\begin\{gather\*?\}\s*`)
	endRe   = regexp.MustCompile(`\s*\\end\{gather\*?\}\s*$`)
)

// WrapEnvironment wraps latex in \begin{gather*}..\end{gather*} when it
// contains internal line breaks but no environment of its own. Applied on
// every save so stored fragments are always renderable standalone.
func WrapEnvironment(latex string) string {
	if strings.Contains(latex, LineBreak) && !strings.Contains(latex, `\begin`) {
		return `\begin{gather*} ` + latex + ` \end{gather*}`
	}
	return latex
}

// StripEnvironment removes an enclosing gather/gather* environment, if
// present, so the raw steps can be edited as plain lines.
func StripEnvironment(latex string) string {
	if latex == "" {
		return ""
	}
	latex = beginRe.ReplaceAllString(latex, "")
	latex = endRe.ReplaceAllString(latex, "")
	return strings.TrimSpace(latex)
}

// SplitProblemWork splits an edited calculation into the problem statement
// (text before the first line break) and the student work (everything
// after, rejoined on the same marker).
func SplitProblemWork(text string) (problem, work string) {
	parts := strings.Split(text, LineBreak)
	problem = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		work = strings.TrimSpace(strings.Join(parts[1:], LineBreak))
	}
	return problem, work
}

// JoinSteps joins transcribed calculation lines on the line-break marker,
// dropping trailing markers the model sometimes appends to each line, and
// wraps the result so it renders as a multi-line block.
func JoinSteps(lines []string) string {
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line), LineBreak))
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	joined := strings.Join(cleaned, " "+LineBreak+" ")
	if joined == "" {
		return ""
	}
	if !strings.HasPrefix(strings.TrimSpace(joined), `\begin`) {
		joined = `\begin{gather*} ` + joined + ` \end{gather*}`
	}
	return joined
}
