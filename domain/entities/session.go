package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Session represents one candidate's practice-interview instance: the
// ordered question list plus per-question responses and their analyses.
// Sessions live in process memory for the process lifetime; there is no
// expiry in scope.
type Session struct {
	ID        string            `json:"id"`
	Questions []string          `json:"questions"`
	Responses map[int]*Response `json:"responses"`
	CreatedAt time.Time         `json:"created_at"`
}

// Response is one recorded answer to one question. DurationSeconds is the
// candidate-reported duration and is authoritative over anything inferred
// from the media itself.
type Response struct {
	MediaPath       string          `json:"media_path"`
	MIMEType        string          `json:"mime_type"`
	DurationSeconds float64         `json:"duration_seconds"`
	Analyzed        bool            `json:"analyzed"`
	Analysis        *AnalysisResult `json:"analysis,omitempty"`
	UploadedAt      time.Time       `json:"uploaded_at"`
}

// NewSession creates a session with a collision-resistant identifier.
func NewSession(questions []string) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Questions: append([]string(nil), questions...),
		Responses: make(map[int]*Response),
		CreatedAt: time.Now(),
	}
}

// Question returns the question text at index.
func (s *Session) Question(index int) (string, error) {
	if index < 0 || index >= len(s.Questions) {
		return "", errors.New("question index out of range")
	}
	return s.Questions[index], nil
}

// SetResponse stores or replaces the response for a question index.
func (s *Session) SetResponse(index int, resp *Response) error {
	if index < 0 || index >= len(s.Questions) {
		return errors.New("question index out of range")
	}
	if s.Responses == nil {
		s.Responses = make(map[int]*Response)
	}
	s.Responses[index] = resp
	return nil
}

// AttachAnalysis records an analysis result on an uploaded response.
// Re-analysis overwrites the previous result; no history is retained.
// The analyzed flag is true iff a result is present.
func (s *Session) AttachAnalysis(index int, result *AnalysisResult) error {
	resp, ok := s.Responses[index]
	if !ok {
		return errors.New("no response uploaded for question")
	}
	resp.Analysis = result
	resp.Analyzed = result != nil
	return nil
}

// Clone returns a deep copy so callers never observe concurrent mutation
// of the live session held by the store.
func (s *Session) Clone() *Session {
	out := &Session{
		ID:        s.ID,
		Questions: append([]string(nil), s.Questions...),
		Responses: make(map[int]*Response, len(s.Responses)),
		CreatedAt: s.CreatedAt,
	}
	for i, r := range s.Responses {
		rc := *r
		if r.Analysis != nil {
			ac := *r.Analysis
			rc.Analysis = &ac
		}
		out.Responses[i] = &rc
	}
	return out
}

// Validate validates the session data.
func (s *Session) Validate() error {
	if s.ID == "" {
		return errors.New("session id is required")
	}
	if len(s.Questions) == 0 {
		return errors.New("at least one question is required")
	}
	return nil
}
