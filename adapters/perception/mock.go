package perception

import (
	"context"

	"go.uber.org/zap"

	"github.com/saptohadi/wicara/domain/entities"
	"github.com/saptohadi/wicara/domain/repositories"
)

// MockToneAnalyzer returns fixed vocal observations for deterministic
// testing without network access.
type MockToneAnalyzer struct {
	logger *zap.Logger
}

// NewMockToneAnalyzer creates the deterministic tone analyzer.
func NewMockToneAnalyzer(logger *zap.Logger) repositories.ToneAnalyzer {
	return &MockToneAnalyzer{logger: logger}
}

// AnalyzeTone implements repositories.ToneAnalyzer.
func (m *MockToneAnalyzer) AnalyzeTone(ctx context.Context, media repositories.Media) (*entities.ToneResult, error) {
	m.logger.Info("Producing mock tone analysis", zap.String("path", media.Path))

	return &entities.ToneResult{
		ConfidenceLevel: "medium",
		Tone:            "professional",
		Energy:          "moderate",
		Clarity:         "clear",
		Emotion:         "calm",
	}, nil
}

// MockVisionAnalyzer returns fixed visual observations for deterministic
// testing without network access.
type MockVisionAnalyzer struct {
	logger *zap.Logger
}

// NewMockVisionAnalyzer creates the deterministic vision analyzer.
func NewMockVisionAnalyzer(logger *zap.Logger) repositories.VisionAnalyzer {
	return &MockVisionAnalyzer{logger: logger}
}

// AnalyzeVision implements repositories.VisionAnalyzer.
func (m *MockVisionAnalyzer) AnalyzeVision(ctx context.Context, media repositories.Media) (*entities.VisionResult, error) {
	m.logger.Info("Producing mock vision analysis", zap.String("path", media.Path))

	return &entities.VisionResult{
		EyeContact:           "Maintained steady eye contact with camera",
		LookingAwayFrequency: "rarely",
		FacialExpressions:    "Appeared engaged",
		ConfidenceVisual:     "medium",
		BodyLanguage:         "Upright and still",
		Fidgeting:            "minimal",
		InterestLevel:        "engaged",
		OverallImpression:    "A composed, attentive presentation.",
	}, nil
}
