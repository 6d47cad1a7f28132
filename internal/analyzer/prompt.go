package analyzer

import (
	"fmt"

	"github.com/mathmate/mathmate/internal/taxonomy"
)

const jsonSystemPrompt = "You are a JSON generator. You MUST double-escape all backslashes " +
	"in LaTeX strings (e.g., output '\\\\frac' instead of '\\frac')."

const analysisRules = `Analyze these student math works.

**CONTEXT - MATH SKILL TAXONOMY**:
Use ONLY the IDs from this list for 'id' and 'skillId' fields:
%s

**ANALYSIS RULES**:
1. **Logical Transcription**: Read the calculation as a logical flow.
2. **Merging Logic (Paper Width Fix)**:
   - **CRITICAL**: If a line ends with an operator (+, -, *) or continues onto the next physical line WITHOUT an equality sign, **MERGE IT**.
   - **Example**:
     Image: "2x + \n 5 = 10"
     Transcription: "2x + 5 = 10" (One line)
3. **Equality Separator**:
   - ONLY separate steps with ' \\ ' if there is an equality sign (=) or it is a distinct new equation.
   - Everything between two equality signs belongs on one line.
4. **Correctness Check**:
   - If the user's calculation is MATHEMATICALLY CORRECT, classify the skill as a **Strength**.
   - **CRITICAL**: Do NOT list correct calculations in 'mistakeExamples'.
5. **Incorrect Work**:
   - If a calculation has an error, classify the skill as a **Weakness** and ADD it to 'mistakeExamples'.

**MISTAKE ANALYSIS (Only for errors)**:
1. **problem**: Write the initial expression/equation.
2. **studentWork**: Transcribe the **ENTIRE** calculation steps as written by the user.
   - **CRITICAL**: Preserve ALL equality signs (=).
   - **Logical Grouping**: If the user split a single expression across multiple lines (without an =), MERGE them into one line.
   - **Logical Splitting**: Use ' \\ ' (double backslash) to break lines **ONLY** after an equality sign (=).
   - Example: "A + B \n + C = D" -> "A + B + C = \\ D"
   - NOTE: In the JSON response string, you must escape the backslashes, so it looks like "A = \\\\ B = \\\\ C".
3. Highlight the specific error part within studentWork if possible, but prioritize full transcription.

**STRENGTHS & WEAKNESSES**:
Return structured objects. 'id' MUST be a valid Taxonomy ID.

**FORMATTING RULES**:
- Equations for 'problem' and 'correction' fields: Use raw LaTeX (e.g. \frac{1}{2}).
- Explanations (mistakeExplanation, explanation, recommendations): Use mixed text. **YOU MUST WRAP ALL MATH EXPRESSIONS IN SINGLE DOLLAR SIGNS ($)**.
  - Incorrect: "Multiplying 2 by x gives 2x"
  - Correct: "Multiplying $2$ by $x$ gives $2x$"

OUTPUT JSON.`

func buildAnalysisPrompt() string {
	return fmt.Sprintf(analysisRules, taxonomy.PromptContext())
}

const correctionPromptFormat = `You are an expert Math Tutor.
The user has manually edited a math problem and their work to fix a previous mistake (or transcription error).

PROBLEM:
%s

STUDENT WORK:
%s

TASK:
1. Verify if the "STUDENT WORK" is mathematically correct for the "PROBLEM".
2. If CORRECT: set isCorrect=true.
3. If INCORRECT: set isCorrect=false, provide the correct derivation (correction) and explain the error.

OUTPUT JSON:
- isCorrect: boolean
- correction: string (LaTeX of the correct steps)
- explanation: string (Why it is wrong, or "Correct" if correct)
- skillId: string (Taxonomy ID of the math skill involved)`

func buildCorrectionPrompt(problem, studentWork string) string {
	return fmt.Sprintf(correctionPromptFormat, problem, studentWork)
}
