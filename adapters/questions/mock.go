package questions

import (
	"context"

	"go.uber.org/zap"

	"github.com/saptohadi/wicara/domain/repositories"
)

// MockGenerator returns a fixed question list so interviews can be
// exercised without network access.
type MockGenerator struct {
	logger *zap.Logger
}

// NewMockGenerator creates the deterministic question generator.
func NewMockGenerator(logger *zap.Logger) repositories.QuestionGenerator {
	return &MockGenerator{logger: logger}
}

// GenerateQuestions implements repositories.QuestionGenerator.
func (m *MockGenerator) GenerateQuestions(ctx context.Context, jobDescription string, resumePath string) ([]string, error) {
	m.logger.Info("Producing mock interview questions",
		zap.Int("jobDescriptionLength", len(jobDescription)))

	return []string{
		"Tell me about yourself and your background in software development.",
		"Can you describe a challenging project you worked on and how you overcame obstacles?",
		"How do you approach learning new technologies?",
		"Describe your experience with version control and team collaboration.",
		"Where do you see yourself in 5 years?",
	}, nil
}
