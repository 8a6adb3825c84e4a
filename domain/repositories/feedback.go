package repositories

import (
	"context"

	"github.com/saptohadi/wicara/domain/entities"
)

// FeedbackGenerator merges the transcript, metrics, and perception output
// into a scored feedback artifact. The returned Feedback is always fully
// populated; under provider failure it carries degraded defaults and an
// error marker instead of failing.
type FeedbackGenerator interface {
	Generate(ctx context.Context, question, transcript string, metrics entities.Metrics, tone entities.ToneResult, vision entities.VisionResult) *entities.Feedback
}
