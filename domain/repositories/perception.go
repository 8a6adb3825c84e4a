package repositories

import (
	"context"

	"github.com/saptohadi/wicara/domain/entities"
)

// ToneAnalyzer observes vocal delivery. Implementations return a degraded
// neutral result rather than a parse error; only transport-level faults
// surface as errors, and the caller contains those too.
type ToneAnalyzer interface {
	AnalyzeTone(ctx context.Context, media Media) (*entities.ToneResult, error)
}

// VisionAnalyzer observes visual presentation under the same contract.
type VisionAnalyzer interface {
	AnalyzeVision(ctx context.Context, media Media) (*entities.VisionResult, error)
}
