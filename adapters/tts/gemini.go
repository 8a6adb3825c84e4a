package tts

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/genai"

	geminiclient "github.com/saptohadi/wicara/adapters/gemini"
	"github.com/saptohadi/wicara/domain"
	"github.com/saptohadi/wicara/domain/repositories"
)

const (
	defaultTTSModel = "gemini-2.5-flash-preview-tts"
	defaultVoice    = "Erinome"

	// Gemini TTS output is 16-bit mono PCM at 24 kHz.
	pcmSampleRate = 24000
	pcmChannels   = 1
	pcmBitDepth   = 16
)

// GeminiTTS renders a question prompt to spoken audio so it can be played
// to the candidate before recording starts.
type GeminiTTS struct {
	client *geminiclient.Client
	logger *zap.Logger
	model  string
	voice  string
}

// NewGeminiTTS creates the Gemini text-to-speech adapter.
func NewGeminiTTS(client *geminiclient.Client, logger *zap.Logger) repositories.TextToSpeech {
	return &GeminiTTS{
		client: client,
		logger: logger,
		model:  defaultTTSModel,
		voice:  defaultVoice,
	}
}

// Synthesize renders the question with a style prompt and wraps the raw
// PCM reply in a WAV container.
func (g *GeminiTTS) Synthesize(ctx context.Context, text string) ([]byte, error) {
	stylePrompt := fmt.Sprintf("In a professional, clear, and slightly inquisitive tone, ask: %s", text)

	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: g.voice},
			},
		},
	}

	response, err := g.client.GenerateRaw(ctx, g.model, config, genai.NewPartFromText(stylePrompt))
	if err != nil {
		return nil, err
	}

	if len(response.Candidates) == 0 || response.Candidates[0].Content == nil {
		return nil, fmt.Errorf("%w: empty audio response", domain.ErrProvider)
	}
	for _, part := range response.Candidates[0].Content.Parts {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			g.logger.Info("Question audio synthesized",
				zap.Int("pcmBytes", len(part.InlineData.Data)))
			return WrapWAV(part.InlineData.Data, pcmSampleRate, pcmChannels, pcmBitDepth), nil
		}
	}

	return nil, fmt.Errorf("%w: no audio data in response", domain.ErrProvider)
}
