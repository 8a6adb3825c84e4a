package feedback

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/saptohadi/wicara/domain/entities"
	"github.com/saptohadi/wicara/domain/repositories"
)

// MockGenerator produces fixed, fully populated feedback derived from the
// metrics alone for deterministic testing without network access.
type MockGenerator struct {
	logger *zap.Logger
}

// NewMockGenerator creates the deterministic feedback generator.
func NewMockGenerator(logger *zap.Logger) repositories.FeedbackGenerator {
	return &MockGenerator{logger: logger}
}

// Generate implements repositories.FeedbackGenerator.
func (m *MockGenerator) Generate(ctx context.Context, question, transcript string, metrics entities.Metrics, tone entities.ToneResult, vision entities.VisionResult) *entities.Feedback {
	m.logger.Info("Producing mock feedback",
		zap.Int("wordCount", metrics.WordCount),
		zap.Int("paceWPM", metrics.PaceWPM))

	result := &entities.Feedback{
		Score:     75,
		Strengths: []string{"Answered the question directly", "Kept a steady speaking pace"},
		Improvements: []string{
			fmt.Sprintf("Reduce filler words (%d counted)", metrics.TotalFillers),
			"Add a concrete outcome to your example",
		},
		ContentFeedback:          "The answer addressed the question with a relevant example.",
		DeliveryFeedback:         fmt.Sprintf("Spoke at %d words per minute with %d pauses.", metrics.PaceWPM, metrics.PauseCount),
		ImprovedAnswerSuggestion: "Lead with the outcome, then explain how you achieved it.",
		FollowUpQuestion:         "What would you do differently next time?",
	}
	fillDefaults(result)
	return result
}
