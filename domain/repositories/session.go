package repositories

import "github.com/saptohadi/wicara/domain/entities"

// SessionRepository owns the process-wide session table. Implementations
// must serialize read-then-write access per session so concurrent uploads
// never lose updates. Sessions are never deleted within scope; garbage
// collection of stale sessions is a named limitation.
type SessionRepository interface {
	// Create stores a new session built from the ordered question list.
	Create(questions []string) (*entities.Session, error)
	// Get returns a deep snapshot of the session or domain.ErrNotFound.
	Get(id string) (*entities.Session, error)
	// PutResponse stores or replaces the response at a question index.
	// Returns domain.ErrNotFound for unknown sessions and
	// domain.ErrQuestionIndex for an out-of-range index.
	PutResponse(id string, index int, resp *entities.Response) error
	// PutAnalysis attaches an analysis result to an uploaded response,
	// flipping its analyzed flag atomically. Re-analysis overwrites.
	PutAnalysis(id string, index int, result *entities.AnalysisResult) error
}
