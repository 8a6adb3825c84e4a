package tts

import (
	"context"

	"go.uber.org/zap"

	"github.com/saptohadi/wicara/domain/repositories"
)

// MockTTS returns a short silent clip for deterministic testing without
// network access.
type MockTTS struct {
	logger *zap.Logger
}

// NewMockTTS creates the deterministic text-to-speech adapter.
func NewMockTTS(logger *zap.Logger) repositories.TextToSpeech {
	return &MockTTS{logger: logger}
}

// Synthesize implements repositories.TextToSpeech.
func (m *MockTTS) Synthesize(ctx context.Context, text string) ([]byte, error) {
	m.logger.Info("Producing mock question audio", zap.Int("textLength", len(text)))

	// Half a second of silence.
	silence := make([]byte, pcmSampleRate*pcmChannels*pcmBitDepth/8/2)
	return WrapWAV(silence, pcmSampleRate, pcmChannels, pcmBitDepth), nil
}
