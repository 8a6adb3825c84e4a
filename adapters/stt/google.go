package stt

import (
	"context"
	"fmt"
	"os"
	"strings"

	speech "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
	"go.uber.org/zap"

	"github.com/saptohadi/wicara/domain"
	"github.com/saptohadi/wicara/domain/entities"
	"github.com/saptohadi/wicara/domain/repositories"
)

// GoogleTranscriber is the remote transcription strategy backed by Google
// Cloud Speech-to-Text. Unlike Gemini it returns word time offsets, which
// become transcript segments so pauses can be derived from gaps.
type GoogleTranscriber struct {
	client   *speech.Client
	logger   *zap.Logger
	language string
}

// NewGoogleTranscriber creates the Google Speech transcription backend.
// Application default credentials are required; their absence is reported
// as domain.ErrMissingCredential at startup, never a silent mock fallback.
func NewGoogleTranscriber(ctx context.Context, logger *zap.Logger) (repositories.Transcriber, error) {
	if os.Getenv("GOOGLE_APPLICATION_CREDENTIALS") == "" {
		return nil, fmt.Errorf("GOOGLE_APPLICATION_CREDENTIALS: %w", domain.ErrMissingCredential)
	}

	client, err := speech.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create speech client: %w", err)
	}

	language := os.Getenv("SPEECH_LANGUAGE")
	if language == "" {
		language = "en-US"
	}

	return &GoogleTranscriber{client: client, logger: logger, language: language}, nil
}

// Transcribe runs a batch recognition over the full recording with word
// time offsets enabled. Each timed word becomes a segment; no provider
// pause count is reported, so it is derived downstream from segment gaps.
func (g *GoogleTranscriber) Transcribe(ctx context.Context, media repositories.Media) (*entities.TranscriptionResult, error) {
	audio, err := os.ReadFile(media.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read media: %w", err)
	}

	encoding, err := audioEncoding(media.MIMEType)
	if err != nil {
		return nil, err
	}

	resp, err := g.client.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:                   encoding,
			SampleRateHertz:            48000,
			LanguageCode:               g.language,
			EnableWordTimeOffsets:      true,
			EnableAutomaticPunctuation: true,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audio},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProvider, err)
	}

	var transcript strings.Builder
	var segments []entities.Segment
	for _, result := range resp.Results {
		if len(result.Alternatives) == 0 {
			continue
		}
		best := result.Alternatives[0]
		if best.Transcript != "" {
			if transcript.Len() > 0 {
				transcript.WriteString(" ")
			}
			transcript.WriteString(best.Transcript)
		}
		for _, word := range best.Words {
			segments = append(segments, entities.Segment{
				Start: word.StartTime.AsDuration().Seconds(),
				End:   word.EndTime.AsDuration().Seconds(),
				Text:  word.Word,
			})
		}
	}

	g.logger.Info("Transcription completed",
		zap.Int("segments", len(segments)),
		zap.Int("transcriptLength", transcript.Len()))

	return &entities.TranscriptionResult{
		Text:     transcript.String(),
		Segments: segments,
	}, nil
}

// audioEncoding maps upload content types to Speech API encodings.
func audioEncoding(mimeType string) (speechpb.RecognitionConfig_AudioEncoding, error) {
	switch {
	case strings.Contains(mimeType, "webm"):
		return speechpb.RecognitionConfig_WEBM_OPUS, nil
	case strings.Contains(mimeType, "ogg"):
		return speechpb.RecognitionConfig_OGG_OPUS, nil
	case strings.Contains(mimeType, "wav"), strings.Contains(mimeType, "x-wav"):
		return speechpb.RecognitionConfig_LINEAR16, nil
	case strings.Contains(mimeType, "flac"):
		return speechpb.RecognitionConfig_FLAC, nil
	default:
		return speechpb.RecognitionConfig_ENCODING_UNSPECIFIED, fmt.Errorf("unsupported media type: %s", mimeType)
	}
}
