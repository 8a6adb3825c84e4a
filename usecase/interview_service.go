package usecase

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/saptohadi/wicara/domain"
	"github.com/saptohadi/wicara/domain/entities"
	"github.com/saptohadi/wicara/domain/repositories"
	"github.com/saptohadi/wicara/internal/events"
)

// InterviewService owns the session lifecycle around the analysis
// pipeline: creating interviews from a job description and resume, storing
// response recordings, and rendering question audio.
type InterviewService struct {
	sessions  repositories.SessionRepository
	questions repositories.QuestionGenerator
	media     repositories.MediaStore
	tts       repositories.TextToSpeech
	publisher Publisher
	logger    *zap.Logger

	// Synthesized question audio cached per session and index; question
	// text never changes after creation.
	audioMu    sync.Mutex
	audioCache map[analysisKey][]byte
}

// NewInterviewService creates the interview lifecycle service.
func NewInterviewService(
	sessions repositories.SessionRepository,
	questions repositories.QuestionGenerator,
	media repositories.MediaStore,
	tts repositories.TextToSpeech,
	publisher Publisher,
	logger *zap.Logger,
) *InterviewService {
	if publisher == nil {
		publisher = noopPublisher{}
	}
	return &InterviewService{
		sessions:   sessions,
		questions:  questions,
		media:      media,
		tts:        tts,
		publisher:  publisher,
		logger:     logger,
		audioCache: make(map[analysisKey][]byte),
	}
}

// CreateInterview generates the question list from the job description and
// resume, then opens a session around it.
func (s *InterviewService) CreateInterview(ctx context.Context, jobDescription, resumePath string) (*entities.Session, error) {
	questions, err := s.questions.GenerateQuestions(ctx, jobDescription, resumePath)
	if err != nil {
		return nil, fmt.Errorf("generate questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("generate questions: empty question list: %w", domain.ErrProvider)
	}

	session, err := s.sessions.Create(questions)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Interview created",
		zap.String("sessionID", session.ID),
		zap.Int("questions", len(questions)))

	return session, nil
}

// GetSession returns a snapshot of a session.
func (s *InterviewService) GetSession(sessionID string) (*entities.Session, error) {
	return s.sessions.Get(sessionID)
}

// SaveResponse stores a recorded answer for a question. A re-upload
// replaces the previous recording and clears the old analysis.
func (s *InterviewService) SaveResponse(ctx context.Context, sessionID string, questionIndex int, filename string, r io.Reader, durationSeconds float64) error {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return err
	}
	if questionIndex < 0 || questionIndex >= len(session.Questions) {
		return fmt.Errorf("session %s index %d: %w", sessionID, questionIndex, domain.ErrQuestionIndex)
	}

	media, err := s.media.SaveResponse(sessionID, questionIndex, filename, r)
	if err != nil {
		return fmt.Errorf("store media: %w", err)
	}

	resp := &entities.Response{
		MediaPath:       media.Path,
		MIMEType:        media.MIMEType,
		DurationSeconds: durationSeconds,
		UploadedAt:      time.Now(),
	}
	if err := s.sessions.PutResponse(sessionID, questionIndex, resp); err != nil {
		return err
	}

	s.publisher.Publish(events.NewProgress(sessionID, questionIndex, events.StageUploaded))
	return nil
}

// QuestionAudio renders a question prompt to WAV, caching per question.
func (s *InterviewService) QuestionAudio(ctx context.Context, sessionID string, questionIndex int) ([]byte, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	question, err := session.Question(questionIndex)
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", sessionID, domain.ErrQuestionIndex)
	}

	key := analysisKey{sessionID: sessionID, questionIndex: questionIndex}
	s.audioMu.Lock()
	cached, ok := s.audioCache[key]
	s.audioMu.Unlock()
	if ok {
		return cached, nil
	}

	audio, err := s.tts.Synthesize(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("synthesize question audio: %w", err)
	}

	s.audioMu.Lock()
	s.audioCache[key] = audio
	s.audioMu.Unlock()

	return audio, nil
}
