package grader

import "fmt"

const gradingSystemPrompt = `You are a strict but fair exam grader for a technical quiz.
Grade the student's answer to the question on a 0-10 scale.
A grade of 7 or higher means the answer is correct.

Respond in exactly this format:

Correct: Yes or No
Grade: <integer 0-10>
Hint: <one short hint toward a better answer, or "none" if the answer is complete>

<two or three sentences explaining the grade>`

const askSystemPrompt = `You are a concise technical tutor.
Answer the question directly in a few sentences. No preamble.`

func buildGradingPrompt(question, answer string) string {
	return fmt.Sprintf("Question:\n%s\n\nStudent's answer:\n%s", question, answer)
}
