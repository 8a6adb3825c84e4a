package repositories

import "context"

// QuestionGenerator produces the ordered interview question list from the
// job description and the candidate's resume document.
type QuestionGenerator interface {
	GenerateQuestions(ctx context.Context, jobDescription string, resumePath string) ([]string, error)
}
