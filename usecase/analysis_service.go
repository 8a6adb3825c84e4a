package usecase

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/saptohadi/wicara/adapters/perception"
	"github.com/saptohadi/wicara/domain"
	"github.com/saptohadi/wicara/domain/entities"
	"github.com/saptohadi/wicara/domain/repositories"
	"github.com/saptohadi/wicara/internal/events"
	"github.com/saptohadi/wicara/internal/metrics"
)

// Publisher receives pipeline progress events. The websocket hub implements
// it; tests pass a recorder or nil-equivalent.
type Publisher interface {
	Publish(event events.Event)
}

// noopPublisher is used when no hub is wired.
type noopPublisher struct{}

func (noopPublisher) Publish(events.Event) {}

// AnalysisService runs the response analysis pipeline: transcription,
// delivery metrics, tone and vision perception, then feedback synthesis.
// The pipeline tolerates partial provider failure: a failed stage degrades
// to neutral defaults and the run still produces a stored result. Only a
// missing session or response aborts.
type AnalysisService struct {
	sessions    repositories.SessionRepository
	transcriber repositories.Transcriber
	tone        repositories.ToneAnalyzer
	vision      repositories.VisionAnalyzer
	feedback    repositories.FeedbackGenerator
	publisher   Publisher
	logger      *zap.Logger

	// One analysis per (session, question) at a time; a concurrent caller
	// joins the in-flight run instead of starting another.
	mu       sync.Mutex
	inflight map[analysisKey]*inflightRun
}

type analysisKey struct {
	sessionID     string
	questionIndex int
}

type inflightRun struct {
	done   chan struct{}
	result *entities.AnalysisResult
	err    error
}

// NewAnalysisService creates the pipeline orchestrator. publisher may be
// nil when no progress streaming is wanted.
func NewAnalysisService(
	sessions repositories.SessionRepository,
	transcriber repositories.Transcriber,
	tone repositories.ToneAnalyzer,
	vision repositories.VisionAnalyzer,
	feedback repositories.FeedbackGenerator,
	publisher Publisher,
	logger *zap.Logger,
) *AnalysisService {
	if publisher == nil {
		publisher = noopPublisher{}
	}
	return &AnalysisService{
		sessions:    sessions,
		transcriber: transcriber,
		tone:        tone,
		vision:      vision,
		feedback:    feedback,
		publisher:   publisher,
		logger:      logger,
		inflight:    make(map[analysisKey]*inflightRun),
	}
}

// Analyze runs the full pipeline for one uploaded response and stores the
// result on the session. Re-analysis overwrites the previous result.
func (s *AnalysisService) Analyze(ctx context.Context, sessionID string, questionIndex int) (*entities.AnalysisResult, error) {
	key := analysisKey{sessionID: sessionID, questionIndex: questionIndex}

	s.mu.Lock()
	if run, ok := s.inflight[key]; ok {
		s.mu.Unlock()
		select {
		case <-run.done:
			return run.result, run.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	run := &inflightRun{done: make(chan struct{})}
	s.inflight[key] = run
	s.mu.Unlock()

	run.result, run.err = s.analyze(ctx, sessionID, questionIndex)

	s.mu.Lock()
	delete(s.inflight, key)
	s.mu.Unlock()
	close(run.done)

	return run.result, run.err
}

func (s *AnalysisService) analyze(ctx context.Context, sessionID string, questionIndex int) (*entities.AnalysisResult, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	resp, ok := session.Responses[questionIndex]
	if !ok {
		return nil, fmt.Errorf("no response uploaded for session %s question %d: %w",
			sessionID, questionIndex, domain.ErrNotFound)
	}
	question, err := session.Question(questionIndex)
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", sessionID, domain.ErrQuestionIndex)
	}

	media := repositories.Media{Path: resp.MediaPath, MIMEType: resp.MIMEType}

	s.logger.Info("Analysis started",
		zap.String("sessionID", sessionID),
		zap.Int("questionIndex", questionIndex),
		zap.String("media", media.Path))

	// Stage 1: transcription. A provider failure degrades to an empty
	// transcript so the candidate still gets metrics and feedback.
	s.publish(sessionID, questionIndex, events.StageTranscribing)
	transcription, err := s.transcriber.Transcribe(ctx, media)
	if err != nil {
		s.logger.Warn("Transcription failed, continuing with empty transcript",
			zap.String("sessionID", sessionID),
			zap.Int("questionIndex", questionIndex),
			zap.Error(err))
		transcription = &entities.TranscriptionResult{}
	}

	// Stage 2: deterministic delivery metrics.
	duration := effectiveDuration(resp.DurationSeconds, transcription.Segments)
	m := metrics.Extract(transcription.Text, transcription.Segments, transcription.PauseCount, duration)
	s.publish(sessionID, questionIndex, events.StageMetricsComputed)

	// Stage 3: tone and vision run concurrently; each degrades alone.
	toneResult, visionResult := s.perceive(ctx, sessionID, questionIndex, media)
	s.publish(sessionID, questionIndex, events.StagePerceptionAnalyzed)

	// Stage 4: feedback synthesis never fails.
	fb := s.feedback.Generate(ctx, question, transcription.Text, m, *toneResult, *visionResult)
	s.publish(sessionID, questionIndex, events.StageFeedbackSynthesized)

	result := &entities.AnalysisResult{
		Transcript: transcription.Text,
		Segments:   transcription.Segments,
		Metrics:    m,
		Tone:       *toneResult,
		Vision:     *visionResult,
		Feedback:   *fb,
	}

	if err := s.sessions.PutAnalysis(sessionID, questionIndex, result); err != nil {
		return nil, fmt.Errorf("store analysis: %w", err)
	}
	s.publish(sessionID, questionIndex, events.StageComplete)

	s.logger.Info("Analysis completed",
		zap.String("sessionID", sessionID),
		zap.Int("questionIndex", questionIndex),
		zap.Int("score", fb.Score),
		zap.Int("wordCount", m.WordCount))

	return result, nil
}

// perceive runs tone and vision analysis in parallel. Provider errors turn
// into degraded neutral results with an error marker.
func (s *AnalysisService) perceive(ctx context.Context, sessionID string, questionIndex int, media repositories.Media) (*entities.ToneResult, *entities.VisionResult) {
	var (
		wg           sync.WaitGroup
		toneResult   *entities.ToneResult
		visionResult *entities.VisionResult
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		var err error
		toneResult, err = s.tone.AnalyzeTone(ctx, media)
		if err != nil || toneResult == nil {
			s.logger.Warn("Tone analysis failed",
				zap.String("sessionID", sessionID),
				zap.Int("questionIndex", questionIndex),
				zap.Error(err))
			toneResult = perception.DefaultTone(fmt.Sprintf("Audio analysis failed: %v", err))
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		visionResult, err = s.vision.AnalyzeVision(ctx, media)
		if err != nil || visionResult == nil {
			s.logger.Warn("Vision analysis failed",
				zap.String("sessionID", sessionID),
				zap.Int("questionIndex", questionIndex),
				zap.Error(err))
			visionResult = perception.DefaultVision(fmt.Sprintf("Video analysis failed: %v", err))
		}
	}()
	wg.Wait()

	return toneResult, visionResult
}

func (s *AnalysisService) publish(sessionID string, questionIndex int, stage string) {
	s.publisher.Publish(events.NewProgress(sessionID, questionIndex, stage))
}

// effectiveDuration prefers the candidate-reported duration; when absent it
// falls back to the end timestamp of the last transcript segment.
func effectiveDuration(reported float64, segments []entities.Segment) float64 {
	if reported > 0 {
		return reported
	}
	if len(segments) > 0 {
		return segments[len(segments)-1].End
	}
	return 0
}
