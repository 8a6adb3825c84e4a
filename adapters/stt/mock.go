package stt

import (
	"context"

	"go.uber.org/zap"

	"github.com/saptohadi/wicara/domain/entities"
	"github.com/saptohadi/wicara/domain/repositories"
)

// MockTranscriber is the deterministic transcription strategy. It is a
// permanently supported backend that keeps the rest of the pipeline fully
// testable without network access, not a stopgap.
type MockTranscriber struct {
	logger *zap.Logger
}

// NewMockTranscriber creates the deterministic transcription backend.
func NewMockTranscriber(logger *zap.Logger) repositories.Transcriber {
	return &MockTranscriber{logger: logger}
}

// Transcribe returns a fixed transcript and fixed segments. The segment
// gap between the second and third segment exceeds the pause threshold so
// downstream pause derivation is exercised.
func (m *MockTranscriber) Transcribe(ctx context.Context, media repositories.Media) (*entities.TranscriptionResult, error) {
	m.logger.Info("Producing mock transcription",
		zap.String("path", media.Path))

	return &entities.TranscriptionResult{
		Text: "I led a project under pressure when our deadline changed. Um, like, we had to reorganize fast.",
		Segments: []entities.Segment{
			{Start: 0.0, End: 2.5, Text: "I led a project under pressure"},
			{Start: 2.8, End: 5.4, Text: "when our deadline changed."},
			{Start: 6.1, End: 8.9, Text: "Um, like, we had to reorganize fast."},
		},
	}, nil
}
