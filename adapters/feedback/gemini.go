package feedback

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/genai"

	geminiclient "github.com/saptohadi/wicara/adapters/gemini"
	"github.com/saptohadi/wicara/domain/entities"
	"github.com/saptohadi/wicara/domain/repositories"
)

// GeminiGenerator synthesizes coaching feedback from the transcript,
// metrics, and perception output with a single evaluation prompt.
type GeminiGenerator struct {
	client *geminiclient.Client
	logger *zap.Logger
}

// NewGeminiGenerator creates the Gemini feedback synthesizer.
func NewGeminiGenerator(client *geminiclient.Client, logger *zap.Logger) repositories.FeedbackGenerator {
	return &GeminiGenerator{client: client, logger: logger}
}

// Generate builds one evaluation request and post-processes the reply so
// the returned Feedback is always fully populated. Provider failure yields
// the documented degraded defaults with an error marker; this method never
// fails.
func (g *GeminiGenerator) Generate(ctx context.Context, question, transcript string, metrics entities.Metrics, tone entities.ToneResult, vision entities.VisionResult) *entities.Feedback {
	prompt := buildPrompt(question, transcript, metrics, tone, vision)

	reply, err := g.client.Generate(ctx, nil, genai.NewPartFromText(prompt))
	if err != nil {
		g.logger.Error("Feedback generation failed", zap.Error(err))
		return ProviderFailureFeedback(err.Error())
	}

	result := parseReply(reply)
	g.logger.Info("Feedback generated",
		zap.Int("score", result.Score),
		zap.Bool("degraded", result.Error != ""))
	return result
}

func buildPrompt(question, transcript string, metrics entities.Metrics, tone entities.ToneResult, vision entities.VisionResult) string {
	fillers, _ := json.Marshal(metrics.FillerWords)

	return fmt.Sprintf(`You are an expert interview coach analyzing a candidate's response.

INTERVIEW QUESTION:
%q

CANDIDATE'S RESPONSE (transcript):
%q

VOICE METRICS:
- Words per minute: %d
- Total filler words used: %d
- Specific fillers: %s
- Number of pauses: %d
- Response duration: %.1f seconds
- Vocal tone: %s, confidence %s, energy %s

VISUAL OBSERVATIONS:
- Eye contact: %s
- Confidence (visual): %s
- Body language: %s

Provide detailed, specific feedback. Return a JSON object with:
- score: integer 0-100 based on overall performance
- strengths: array of 2-3 specific things they did well (reference actual content from their answer)
- improvements: array of 2-3 specific, actionable improvements (be specific about WHAT to change)
- content_feedback: how well did they answer the question? What was missing?
- delivery_feedback: how was their speaking pace, clarity, confidence?
- improved_answer_suggestion: one specific sentence or phrase they could have said better, with the improved version
- follow_up_question: a likely follow-up question an interviewer would ask based on their answer

Return ONLY valid JSON, no markdown.`,
		question,
		transcript,
		metrics.PaceWPM,
		metrics.TotalFillers,
		fillers,
		metrics.PauseCount,
		metrics.DurationSeconds,
		tone.Tone, tone.ConfidenceLevel, tone.Energy,
		vision.EyeContact,
		vision.ConfidenceVisual,
		vision.BodyLanguage,
	)
}
