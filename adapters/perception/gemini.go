package perception

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/genai"

	geminiclient "github.com/saptohadi/wicara/adapters/gemini"
	"github.com/saptohadi/wicara/domain/entities"
	"github.com/saptohadi/wicara/domain/repositories"
)

const tonePrompt = `Analyze the speaker's voice in this recording. Return a JSON object with:
- confidence_level: "high", "medium", or "low"
- tone: one of "professional", "casual", "nervous", "enthusiastic", "hesitant"
- energy: "high", "moderate", or "low"
- clarity: "clear", "somewhat clear", or "unclear"
- emotion: main detected emotion
Return ONLY valid JSON.`

const visionPrompt = `Watch this video and analyze the person's visual presentation. Return a JSON object:
- eye_contact: description of eye contact (e.g., "Maintained good eye contact with camera", "Frequently looked away")
- looking_away_frequency: "rarely", "sometimes", or "frequently"
- facial_expressions: what you observe (e.g., "Appeared confident and engaged", "Seemed nervous")
- confidence_visual: "high", "medium", or "low"
- body_language: brief description
- fidgeting: "none", "minimal", "noticeable", or "excessive"
- interest_level: "very engaged", "engaged", "neutral", or "disengaged"
- overall_impression: 1-2 sentence summary

Return ONLY valid JSON, no markdown.`

// GeminiToneAnalyzer observes vocal delivery through Gemini audio
// understanding, with the same upload/poll/cleanup discipline as the
// transcriber.
type GeminiToneAnalyzer struct {
	client *geminiclient.Client
	logger *zap.Logger
}

// NewGeminiToneAnalyzer creates the Gemini vocal-delivery analyzer.
func NewGeminiToneAnalyzer(client *geminiclient.Client, logger *zap.Logger) repositories.ToneAnalyzer {
	return &GeminiToneAnalyzer{client: client, logger: logger}
}

// AnalyzeTone uploads the recording and requests the fixed categorical
// field set. A malformed reply degrades to the neutral tone defaults with
// an error marker; it never aborts the pipeline.
func (g *GeminiToneAnalyzer) AnalyzeTone(ctx context.Context, media repositories.Media) (*entities.ToneResult, error) {
	file, err := g.client.UploadFile(ctx, media)
	if err != nil {
		return nil, err
	}
	defer g.client.DeleteFile(ctx, file)

	reply, err := g.client.Generate(ctx, nil,
		genai.NewPartFromText(tonePrompt),
		genai.NewPartFromURI(file.URI, file.MIMEType),
	)
	if err != nil {
		return nil, err
	}

	result := parseToneReply(reply)
	g.logger.Info("Tone analysis completed",
		zap.String("tone", result.Tone),
		zap.String("confidence", result.ConfidenceLevel),
		zap.Bool("degraded", result.Error != ""))
	return result, nil
}

// GeminiVisionAnalyzer observes visual presentation through Gemini video
// understanding.
type GeminiVisionAnalyzer struct {
	client *geminiclient.Client
	logger *zap.Logger
}

// NewGeminiVisionAnalyzer creates the Gemini visual-presentation analyzer.
func NewGeminiVisionAnalyzer(client *geminiclient.Client, logger *zap.Logger) repositories.VisionAnalyzer {
	return &GeminiVisionAnalyzer{client: client, logger: logger}
}

// AnalyzeVision uploads the recording and requests the fixed categorical
// field set. A malformed reply degrades to the neutral vision defaults
// with an error marker; it never aborts the pipeline.
func (g *GeminiVisionAnalyzer) AnalyzeVision(ctx context.Context, media repositories.Media) (*entities.VisionResult, error) {
	file, err := g.client.UploadFile(ctx, media)
	if err != nil {
		return nil, err
	}
	defer g.client.DeleteFile(ctx, file)

	reply, err := g.client.Generate(ctx, nil,
		genai.NewPartFromText(visionPrompt),
		genai.NewPartFromURI(file.URI, file.MIMEType),
	)
	if err != nil {
		return nil, err
	}

	result := parseVisionReply(reply)
	g.logger.Info("Vision analysis completed",
		zap.String("confidenceVisual", result.ConfidenceVisual),
		zap.Bool("degraded", result.Error != ""))
	return result, nil
}
