package usecase

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/saptohadi/wicara/adapters/memory"
	"github.com/saptohadi/wicara/domain"
	"github.com/saptohadi/wicara/domain/repositories"
	"github.com/saptohadi/wicara/internal/media"
)

type stubQuestions struct {
	questions []string
	err       error
}

func (s *stubQuestions) GenerateQuestions(ctx context.Context, jobDescription, resumePath string) ([]string, error) {
	return s.questions, s.err
}

type stubTTS struct {
	mu    sync.Mutex
	calls int
}

func (s *stubTTS) Synthesize(ctx context.Context, text string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return []byte("RIFF" + text), nil
}

func (s *stubTTS) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func newInterviewService(t *testing.T, questions repositories.QuestionGenerator, tts repositories.TextToSpeech) (*InterviewService, *memory.SessionRepository) {
	t.Helper()
	logger := zaptest.NewLogger(t)
	repo := memory.NewSessionRepository(logger)
	store, err := media.NewDiskStore(t.TempDir(), logger)
	if err != nil {
		t.Fatalf("NewDiskStore() error = %v", err)
	}
	return NewInterviewService(repo, questions, store, tts, nil, logger), repo
}

func TestCreateInterview(t *testing.T) {
	svc, _ := newInterviewService(t,
		&stubQuestions{questions: []string{"q0", "q1", "q2"}}, &stubTTS{})

	session, err := svc.CreateInterview(context.Background(), "Backend engineer", "/tmp/resume.pdf")
	if err != nil {
		t.Fatalf("CreateInterview() error = %v", err)
	}
	if len(session.Questions) != 3 {
		t.Errorf("questions = %d, want 3", len(session.Questions))
	}

	got, err := svc.GetSession(session.ID)
	if err != nil {
		t.Fatalf("GetSession() error = %v", err)
	}
	if got.ID != session.ID {
		t.Errorf("GetSession() ID = %q, want %q", got.ID, session.ID)
	}
}

func TestCreateInterviewGeneratorFailure(t *testing.T) {
	svc, _ := newInterviewService(t,
		&stubQuestions{err: domain.ErrProvider}, &stubTTS{})

	if _, err := svc.CreateInterview(context.Background(), "jd", "resume.pdf"); !errors.Is(err, domain.ErrProvider) {
		t.Errorf("CreateInterview() error = %v, want ErrProvider", err)
	}
}

func TestCreateInterviewEmptyQuestionList(t *testing.T) {
	svc, _ := newInterviewService(t, &stubQuestions{questions: nil}, &stubTTS{})

	if _, err := svc.CreateInterview(context.Background(), "jd", "resume.pdf"); !errors.Is(err, domain.ErrProvider) {
		t.Errorf("CreateInterview() with empty list error = %v, want ErrProvider", err)
	}
}

func TestSaveResponse(t *testing.T) {
	svc, repo := newInterviewService(t,
		&stubQuestions{questions: []string{"q0", "q1"}}, &stubTTS{})

	session, err := svc.CreateInterview(context.Background(), "jd", "resume.pdf")
	if err != nil {
		t.Fatalf("CreateInterview() error = %v", err)
	}

	err = svc.SaveResponse(context.Background(), session.ID, 1, "answer.webm",
		bytes.NewReader([]byte("media")), 42.5)
	if err != nil {
		t.Fatalf("SaveResponse() error = %v", err)
	}

	stored, err := repo.Get(session.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	resp := stored.Responses[1]
	if resp == nil {
		t.Fatal("response not stored")
	}
	if resp.DurationSeconds != 42.5 {
		t.Errorf("DurationSeconds = %v, want 42.5", resp.DurationSeconds)
	}
	if resp.MIMEType != "video/webm" {
		t.Errorf("MIMEType = %q, want video/webm", resp.MIMEType)
	}
	if resp.Analyzed {
		t.Error("fresh upload must not be marked analyzed")
	}
}

func TestSaveResponseValidation(t *testing.T) {
	svc, _ := newInterviewService(t,
		&stubQuestions{questions: []string{"q0"}}, &stubTTS{})

	session, err := svc.CreateInterview(context.Background(), "jd", "resume.pdf")
	if err != nil {
		t.Fatalf("CreateInterview() error = %v", err)
	}

	err = svc.SaveResponse(context.Background(), "unknown", 0, "a.webm", strings.NewReader("x"), 1)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("unknown session error = %v, want ErrNotFound", err)
	}

	err = svc.SaveResponse(context.Background(), session.ID, 5, "a.webm", strings.NewReader("x"), 1)
	if !errors.Is(err, domain.ErrQuestionIndex) {
		t.Errorf("bad index error = %v, want ErrQuestionIndex", err)
	}
}

func TestQuestionAudioCaches(t *testing.T) {
	tts := &stubTTS{}
	svc, _ := newInterviewService(t,
		&stubQuestions{questions: []string{"Tell me about yourself."}}, tts)

	session, err := svc.CreateInterview(context.Background(), "jd", "resume.pdf")
	if err != nil {
		t.Fatalf("CreateInterview() error = %v", err)
	}

	first, err := svc.QuestionAudio(context.Background(), session.ID, 0)
	if err != nil {
		t.Fatalf("QuestionAudio() error = %v", err)
	}
	second, err := svc.QuestionAudio(context.Background(), session.ID, 0)
	if err != nil {
		t.Fatalf("QuestionAudio() error = %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Error("cached audio differs from first synthesis")
	}
	if tts.callCount() != 1 {
		t.Errorf("Synthesize called %d times, want 1", tts.callCount())
	}

	if _, err := svc.QuestionAudio(context.Background(), session.ID, 9); !errors.Is(err, domain.ErrQuestionIndex) {
		t.Errorf("out-of-range index error = %v, want ErrQuestionIndex", err)
	}
	if _, err := svc.QuestionAudio(context.Background(), "unknown", 0); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("unknown session error = %v, want ErrNotFound", err)
	}
}
