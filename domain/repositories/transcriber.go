package repositories

import (
	"context"

	"github.com/saptohadi/wicara/domain/entities"
)

// Media is a reference to a recorded response on local storage together
// with the content type the providers need for upload.
type Media struct {
	Path     string `json:"path"`
	MIMEType string `json:"mime_type"`
}

// Transcriber abstracts speech recognition backends. The strategy is picked
// once at startup; the mock strategy is a permanently supported
// implementation for deterministic testing, not a stopgap.
type Transcriber interface {
	// Transcribe produces a verbatim transcript with optional time-aligned
	// segments and an optional provider-detected pause count.
	Transcribe(ctx context.Context, media Media) (*entities.TranscriptionResult, error)
}
