package stt

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	geminiclient "github.com/saptohadi/wicara/adapters/gemini"
	"github.com/saptohadi/wicara/domain/entities"
	"github.com/saptohadi/wicara/domain/repositories"
)

const transcribePrompt = `Listen to this recording carefully and provide:

1. TRANSCRIPT: Transcribe EXACTLY what the person says, word for word. Include all filler words like "um", "uh", "like", etc.

2. PAUSE_COUNT: Count the number of significant pauses (silence or hesitation of 2+ seconds) during the response. This includes:
   - Long gaps before starting to speak
   - Pauses mid-sentence where the speaker hesitates
   - Moments of silence between thoughts

Return your response in this exact format:
TRANSCRIPT: [the transcript here]
PAUSE_COUNT: [number]`

// GeminiTranscriber is the remote transcription strategy backed by Gemini.
// It uses the two-phase upload-then-reference flow: the recording is
// uploaded, polled until ready, referenced in the prompt, and released
// afterwards regardless of outcome.
type GeminiTranscriber struct {
	client *geminiclient.Client
	logger *zap.Logger
}

// NewGeminiTranscriber creates the Gemini transcription backend.
func NewGeminiTranscriber(client *geminiclient.Client, logger *zap.Logger) repositories.Transcriber {
	return &GeminiTranscriber{client: client, logger: logger}
}

// Transcribe uploads the recording and asks for a verbatim transcript plus
// a pause count. Gemini does not return time-aligned segments, so the
// provider-detected pause count is authoritative here.
func (g *GeminiTranscriber) Transcribe(ctx context.Context, media repositories.Media) (*entities.TranscriptionResult, error) {
	file, err := g.client.UploadFile(ctx, media)
	if err != nil {
		return nil, err
	}
	defer g.client.DeleteFile(ctx, file)

	reply, err := g.client.Generate(ctx, nil,
		genai.NewPartFromText(transcribePrompt),
		genai.NewPartFromURI(file.URI, file.MIMEType),
	)
	if err != nil {
		return nil, err
	}

	transcript, pauseCount := parseTranscriptReply(reply)

	g.logger.Info("Transcription completed",
		zap.Int("transcriptLength", len(transcript)),
		zap.Bool("pauseCountDetected", pauseCount != nil))

	return &entities.TranscriptionResult{
		Text:       transcript,
		Segments:   nil,
		PauseCount: pauseCount,
	}, nil
}

// parseTranscriptReply splits the TRANSCRIPT/PAUSE_COUNT sections of the
// model reply. When the reply carries no section markers the whole text is
// treated as the transcript and no pause count is reported.
func parseTranscriptReply(text string) (string, *int) {
	text = strings.TrimSpace(text)
	if !strings.Contains(text, "TRANSCRIPT:") {
		return text, nil
	}

	transcriptPart := text
	var pause *int
	if idx := strings.Index(text, "PAUSE_COUNT:"); idx >= 0 {
		transcriptPart = text[:idx]
		count := 0
		fields := strings.Fields(text[idx+len("PAUSE_COUNT:"):])
		if len(fields) > 0 {
			if n, err := strconv.Atoi(fields[0]); err == nil {
				count = n
			}
		}
		pause = &count
	}

	transcript := strings.TrimSpace(strings.Replace(transcriptPart, "TRANSCRIPT:", "", 1))
	return transcript, pause
}
