package api

import (
	"time"

	"github.com/saptohadi/wicara/domain/entities"
)

// CreateInterviewResponse is returned when a new interview session opens.
type CreateInterviewResponse struct {
	SessionID string    `json:"session_id"`
	Questions []string  `json:"questions"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionResponse is the public view of a session: questions plus response
// status per question.
type SessionResponse struct {
	SessionID string           `json:"session_id"`
	Questions []string         `json:"questions"`
	Responses map[int]Response `json:"responses"`
	CreatedAt time.Time        `json:"created_at"`
}

// Response is the public view of one uploaded answer.
type Response struct {
	DurationSeconds float64                  `json:"duration_seconds"`
	Analyzed        bool                     `json:"analyzed"`
	Analysis        *entities.AnalysisResult `json:"analysis,omitempty"`
	UploadedAt      time.Time                `json:"uploaded_at"`
}

// UploadResponseResult acknowledges a stored recording.
type UploadResponseResult struct {
	SessionID     string `json:"session_id"`
	QuestionIndex int    `json:"question_index"`
	Status        string `json:"status"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func newSessionResponse(session *entities.Session) SessionResponse {
	out := SessionResponse{
		SessionID: session.ID,
		Questions: session.Questions,
		Responses: make(map[int]Response, len(session.Responses)),
		CreatedAt: session.CreatedAt,
	}
	for i, r := range session.Responses {
		out.Responses[i] = Response{
			DurationSeconds: r.DurationSeconds,
			Analyzed:        r.Analyzed,
			Analysis:        r.Analysis,
			UploadedAt:      r.UploadedAt,
		}
	}
	return out
}
