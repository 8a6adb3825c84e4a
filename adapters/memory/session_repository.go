package memory

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/saptohadi/wicara/domain"
	"github.com/saptohadi/wicara/domain/entities"
	"github.com/saptohadi/wicara/domain/repositories"
)

// SessionRepository is the in-memory session store. Session state is
// ephemeral by design: everything lives for the process lifetime and
// there is no expiry, a named limitation of this scope rather than a bug.
//
// The table lock guards the map; each entry carries its own lock so
// read-then-write sequences against one session's response map are
// atomic without serializing unrelated sessions.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*sessionEntry
	logger   *zap.Logger
}

type sessionEntry struct {
	mu      sync.Mutex
	session *entities.Session
}

// NewSessionRepository creates an empty in-memory session store.
func NewSessionRepository(logger *zap.Logger) *SessionRepository {
	return &SessionRepository{
		sessions: make(map[string]*sessionEntry),
		logger:   logger,
	}
}

var _ repositories.SessionRepository = (*SessionRepository)(nil)

// Create stores a new session built from the ordered question list.
func (r *SessionRepository) Create(questions []string) (*entities.Session, error) {
	session := entities.NewSession(questions)
	if err := session.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.sessions[session.ID] = &sessionEntry{session: session}
	r.mu.Unlock()

	r.logger.Info("Session created",
		zap.String("sessionID", session.ID),
		zap.Int("questions", len(questions)))

	return session.Clone(), nil
}

// Get returns a deep snapshot of the session.
func (r *SessionRepository) Get(id string) (*entities.Session, error) {
	entry, err := r.entry(id)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return entry.session.Clone(), nil
}

// PutResponse stores or replaces the response at a question index.
func (r *SessionRepository) PutResponse(id string, index int, resp *entities.Response) error {
	entry, err := r.entry(id)
	if err != nil {
		return err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if index < 0 || index >= len(entry.session.Questions) {
		return fmt.Errorf("session %s index %d: %w", id, index, domain.ErrQuestionIndex)
	}
	return entry.session.SetResponse(index, resp)
}

// PutAnalysis attaches an analysis result to an uploaded response. The
// result replaces any previous one and the analyzed flag flips in the
// same critical section, so callers never observe a half-analyzed state.
func (r *SessionRepository) PutAnalysis(id string, index int, result *entities.AnalysisResult) error {
	entry, err := r.entry(id)
	if err != nil {
		return err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if index < 0 || index >= len(entry.session.Questions) {
		return fmt.Errorf("session %s index %d: %w", id, index, domain.ErrQuestionIndex)
	}
	if _, ok := entry.session.Responses[index]; !ok {
		return fmt.Errorf("session %s has no response for question %d: %w", id, index, domain.ErrNotFound)
	}
	return entry.session.AttachAnalysis(index, result)
}

func (r *SessionRepository) entry(id string) (*sessionEntry, error) {
	r.mu.RLock()
	entry, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}
	return entry, nil
}
