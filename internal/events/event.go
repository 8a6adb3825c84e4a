package events

import "time"

// Stage names for analysis progress events, in pipeline order.
const (
	StageUploaded            = "uploaded"
	StageTranscribing        = "transcribing"
	StageMetricsComputed     = "metrics_computed"
	StagePerceptionAnalyzed  = "perception_analyzed"
	StageFeedbackSynthesized = "feedback_synthesized"
	StageComplete            = "complete"
)

// Event is one progress notification pushed to clients watching a session.
type Event struct {
	Type          string `json:"type"`
	SessionID     string `json:"session_id"`
	QuestionIndex int    `json:"question_index"`
	Stage         string `json:"stage"`
	Timestamp     int64  `json:"timestamp"`
	Error         string `json:"error,omitempty"`
}

// NewProgress builds a progress event for a pipeline stage.
func NewProgress(sessionID string, questionIndex int, stage string) Event {
	return Event{
		Type:          "analysis_progress",
		SessionID:     sessionID,
		QuestionIndex: questionIndex,
		Stage:         stage,
		Timestamp:     time.Now().Unix(),
	}
}
