package gemini

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/saptohadi/wicara/domain"
	"github.com/saptohadi/wicara/domain/repositories"
)

const (
	defaultModel        = "gemini-2.0-flash"
	defaultPollInterval = 2 * time.Second
	defaultPollTimeout  = 60 * time.Second
)

// Config holds configuration shared by every Gemini-backed adapter.
type Config struct {
	APIKey       string
	Model        string
	PollInterval time.Duration
	PollTimeout  time.Duration
}

// Client wraps the genai client with the upload/poll/cleanup protocol used
// by transcription, perception, and question generation.
type Client struct {
	genai  *genai.Client
	logger *zap.Logger
	model  string
	waiter Waiter
}

// NewClient creates a Gemini client. A missing API key is a configuration
// fault reported as domain.ErrMissingCredential; it never degrades to the
// mock adapters silently.
func NewClient(ctx context.Context, config Config, logger *zap.Logger) (*Client, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY: %w", domain.ErrMissingCredential)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := config.Model
	if model == "" {
		model = defaultModel
		logger.Info("Using default model", zap.String("model", model))
	}

	interval := config.PollInterval
	if interval == 0 {
		interval = defaultPollInterval
	}
	timeout := config.PollTimeout
	if timeout == 0 {
		timeout = defaultPollTimeout
	}

	return &Client{
		genai:  client,
		logger: logger,
		model:  model,
		waiter: Waiter{Interval: interval, Timeout: timeout},
	}, nil
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}

// UploadFile uploads media and blocks until the artifact is ready. The
// returned file must be released with DeleteFile after use regardless of
// outcome.
func (c *Client) UploadFile(ctx context.Context, media repositories.Media) (*genai.File, error) {
	c.logger.Info("Uploading media for analysis",
		zap.String("path", media.Path),
		zap.String("mimeType", media.MIMEType))

	file, err := c.genai.Files.UploadFromPath(ctx, media.Path, &genai.UploadFileConfig{
		MIMEType: media.MIMEType,
	})
	if err != nil {
		return nil, fmt.Errorf("file upload failed: %w: %v", domain.ErrProvider, err)
	}

	err = c.waiter.WaitActive(ctx, func(ctx context.Context) (genai.FileState, error) {
		current, err := c.genai.Files.Get(ctx, file.Name, nil)
		if err != nil {
			return genai.FileStateUnspecified, err
		}
		return current.State, nil
	})
	if err != nil {
		c.DeleteFile(ctx, file)
		return nil, err
	}

	return file, nil
}

// DeleteFile releases an uploaded artifact. Failures are logged and
// ignored; cleanup is best-effort by contract.
func (c *Client) DeleteFile(ctx context.Context, file *genai.File) {
	if file == nil {
		return
	}
	if _, err := c.genai.Files.Delete(ctx, file.Name, nil); err != nil {
		c.logger.Warn("Failed to delete uploaded file",
			zap.String("file", file.Name),
			zap.Error(err))
	}
}

// Generate sends one user turn built from parts and returns the
// concatenated text of the first candidate.
func (c *Client) Generate(ctx context.Context, config *genai.GenerateContentConfig, parts ...*genai.Part) (string, error) {
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	response, err := c.genai.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrProvider, err)
	}

	if len(response.Candidates) == 0 || response.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: empty response", domain.ErrProvider)
	}

	var text string
	for _, part := range response.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}
	if text == "" {
		return "", fmt.Errorf("%w: no text in response", domain.ErrProvider)
	}

	return text, nil
}

// GenerateRaw sends one user turn and returns the full response, for
// callers that need non-text modalities.
func (c *Client) GenerateRaw(ctx context.Context, model string, config *genai.GenerateContentConfig, parts ...*genai.Part) (*genai.GenerateContentResponse, error) {
	if model == "" {
		model = c.model
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	response, err := c.genai.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProvider, err)
	}
	return response, nil
}
