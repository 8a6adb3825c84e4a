package questions

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/genai"

	geminiclient "github.com/saptohadi/wicara/adapters/gemini"
	"github.com/saptohadi/wicara/domain"
	"github.com/saptohadi/wicara/domain/repositories"
)

const questionPrompt = `You are preparing a mock interview. Based on the job description below and the attached resume, write 5 interview questions tailored to this candidate. Mix behavioral and role-specific questions.

JOB DESCRIPTION:
%s

Return a JSON object: {"questions": ["...", "...", "...", "...", "..."]}
Return ONLY valid JSON, no markdown.`

// GeminiGenerator derives tailored interview questions from the job
// description and the candidate's resume document.
type GeminiGenerator struct {
	client *geminiclient.Client
	logger *zap.Logger
}

// NewGeminiGenerator creates the Gemini question generator.
func NewGeminiGenerator(client *geminiclient.Client, logger *zap.Logger) repositories.QuestionGenerator {
	return &GeminiGenerator{client: client, logger: logger}
}

// GenerateQuestions uploads the resume through the same upload-then-
// reference flow as response media and asks for a tailored question list.
func (g *GeminiGenerator) GenerateQuestions(ctx context.Context, jobDescription string, resumePath string) ([]string, error) {
	file, err := g.client.UploadFile(ctx, repositories.Media{
		Path:     resumePath,
		MIMEType: "application/pdf",
	})
	if err != nil {
		return nil, err
	}
	defer g.client.DeleteFile(ctx, file)

	reply, err := g.client.Generate(ctx, nil,
		genai.NewPartFromText(fmt.Sprintf(questionPrompt, jobDescription)),
		genai.NewPartFromURI(file.URI, file.MIMEType),
	)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Questions []string `json:"questions"`
	}
	if err := json.Unmarshal([]byte(geminiclient.StripFences(reply)), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrParseFailure, err)
	}
	if len(parsed.Questions) == 0 {
		return nil, fmt.Errorf("%w: empty question list", domain.ErrParseFailure)
	}

	g.logger.Info("Generated interview questions", zap.Int("count", len(parsed.Questions)))
	return parsed.Questions, nil
}
