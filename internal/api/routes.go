package api

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/saptohadi/wicara/domain"
	"github.com/saptohadi/wicara/internal/auth"
	"github.com/saptohadi/wicara/internal/events"
	"github.com/saptohadi/wicara/usecase"
)

// Handler carries the services behind the HTTP surface.
type Handler struct {
	interviews *usecase.InterviewService
	analysis   *usecase.AnalysisService
	hub        *events.Hub
	issuer     *auth.TokenIssuer
	logger     *zap.Logger
}

// NewHandler creates the HTTP handler set.
func NewHandler(
	interviews *usecase.InterviewService,
	analysis *usecase.AnalysisService,
	hub *events.Hub,
	issuer *auth.TokenIssuer,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		interviews: interviews,
		analysis:   analysis,
		hub:        hub,
		issuer:     issuer,
		logger:     logger,
	}
}

// InitRoutes initializes all API routes
func InitRoutes(e *echo.Echo, h *Handler) {
	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"service": "wicara-server",
		})
	})

	v1 := e.Group("/api/v1")

	// Opening an interview is the unauthenticated entry point; it hands
	// back the session-bound token everything else requires.
	v1.POST("/interviews", h.createInterview)

	session := v1.Group("/interviews/:id", h.sessionAuth)
	session.GET("", h.getSession)
	session.GET("/questions/:index/audio", h.questionAudio)
	session.POST("/responses/:index", h.uploadResponse)
	session.POST("/responses/:index/analysis", h.analyzeResponse)

	// WebSocket endpoint for analysis progress events.
	e.GET("/ws", h.progressSocket)
}

// sessionAuth validates the bearer token and ties it to the session in the
// path, so a token for one interview cannot read another.
func (h *Handler) sessionAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := bearerToken(c)
		if token == "" {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{
				Error:   "missing_token",
				Message: "Bearer token is required",
			})
		}

		claims, err := h.issuer.ValidateToken(token)
		if err != nil {
			h.logger.Warn("Rejected invalid session token", zap.Error(err))
			return c.JSON(http.StatusUnauthorized, ErrorResponse{
				Error:   "invalid_token",
				Message: "Invalid or expired token",
			})
		}
		if claims.SessionID != c.Param("id") {
			return c.JSON(http.StatusForbidden, ErrorResponse{
				Error:   "session_mismatch",
				Message: "Token is not valid for this session",
			})
		}

		return next(c)
	}
}

func (h *Handler) createInterview(c echo.Context) error {
	jobDescription := c.FormValue("job_description")
	if strings.TrimSpace(jobDescription) == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "missing_fields",
			Message: "job_description is required",
		})
	}

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "missing_fields",
			Message: "resume file is required",
		})
	}

	resumePath, cleanup, err := h.spoolResume(fileHeader)
	if err != nil {
		h.logger.Error("Failed to spool resume upload", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "Could not store resume",
		})
	}
	defer cleanup()

	session, err := h.interviews.CreateInterview(c.Request().Context(), jobDescription, resumePath)
	if err != nil {
		h.logger.Error("Failed to create interview", zap.Error(err))
		return h.errorJSON(c, err)
	}

	token, err := h.issuer.GenerateSessionToken(session.ID)
	if err != nil {
		h.logger.Error("Failed to generate session token",
			zap.String("sessionID", session.ID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "token_generation_failed",
			Message: "Failed to generate session token",
		})
	}

	return c.JSON(http.StatusCreated, CreateInterviewResponse{
		SessionID: session.ID,
		Questions: session.Questions,
		Token:     token,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	})
}

func (h *Handler) getSession(c echo.Context) error {
	session, err := h.interviews.GetSession(c.Param("id"))
	if err != nil {
		return h.errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, newSessionResponse(session))
}

func (h *Handler) questionAudio(c echo.Context) error {
	index, err := questionIndex(c)
	if err != nil {
		return h.errorJSON(c, err)
	}

	audio, err := h.interviews.QuestionAudio(c.Request().Context(), c.Param("id"), index)
	if err != nil {
		h.logger.Error("Failed to render question audio",
			zap.String("sessionID", c.Param("id")),
			zap.Int("questionIndex", index),
			zap.Error(err))
		return h.errorJSON(c, err)
	}

	return c.Blob(http.StatusOK, "audio/wav", audio)
}

func (h *Handler) uploadResponse(c echo.Context) error {
	index, err := questionIndex(c)
	if err != nil {
		return h.errorJSON(c, err)
	}

	duration, err := strconv.ParseFloat(c.FormValue("duration_seconds"), 64)
	if err != nil || duration < 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_duration",
			Message: "duration_seconds must be a non-negative number",
		})
	}

	fileHeader, err := c.FormFile("video")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "missing_fields",
			Message: "video file is required",
		})
	}
	src, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_upload",
			Message: "Could not read video upload",
		})
	}
	defer src.Close()

	err = h.interviews.SaveResponse(c.Request().Context(), c.Param("id"), index,
		fileHeader.Filename, src, duration)
	if err != nil {
		return h.errorJSON(c, err)
	}

	return c.JSON(http.StatusCreated, UploadResponseResult{
		SessionID:     c.Param("id"),
		QuestionIndex: index,
		Status:        "uploaded",
	})
}

func (h *Handler) analyzeResponse(c echo.Context) error {
	index, err := questionIndex(c)
	if err != nil {
		return h.errorJSON(c, err)
	}

	result, err := h.analysis.Analyze(c.Request().Context(), c.Param("id"), index)
	if err != nil {
		h.logger.Error("Analysis failed",
			zap.String("sessionID", c.Param("id")),
			zap.Int("questionIndex", index),
			zap.Error(err))
		return h.errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// progressSocket authenticates via the token query parameter; browsers
// cannot set headers on websocket dials.
func (h *Handler) progressSocket(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		token = bearerToken(c)
	}
	if token == "" {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "missing_token",
			Message: "Session token is required",
		})
	}

	claims, err := h.issuer.ValidateToken(token)
	if err != nil {
		h.logger.Warn("WebSocket connection rejected: invalid token", zap.Error(err))
		return c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "invalid_token",
			Message: "Invalid or expired token",
		})
	}

	return events.HandleWebSocket(h.hub, c, claims.SessionID, h.logger)
}

// spoolResume writes the uploaded resume to a temp file so the question
// generator can upload it to the provider by path.
func (h *Handler) spoolResume(fileHeader *multipart.FileHeader) (string, func(), error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", nil, err
	}
	defer src.Close()

	ext := filepath.Ext(fileHeader.Filename)
	if ext == "" {
		ext = ".pdf"
	}
	dst, err := os.CreateTemp("", "resume-*"+ext)
	if err != nil {
		return "", nil, err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return "", nil, err
	}
	if err := dst.Close(); err != nil {
		os.Remove(dst.Name())
		return "", nil, err
	}

	path := dst.Name()
	return path, func() { os.Remove(path) }, nil
}

func questionIndex(c echo.Context) (int, error) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		return 0, domain.ErrQuestionIndex
	}
	return index, nil
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get("Authorization")
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return header[7:]
	}
	return ""
}

// errorJSON maps domain errors onto HTTP statuses.
func (h *Handler) errorJSON(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
	case errors.Is(err, domain.ErrQuestionIndex):
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "question_index_out_of_range",
			Message: err.Error(),
		})
	case errors.Is(err, domain.ErrUploadTimeout):
		return c.JSON(http.StatusGatewayTimeout, ErrorResponse{
			Error:   "upload_timeout",
			Message: err.Error(),
		})
	case errors.Is(err, domain.ErrUploadRejected), errors.Is(err, domain.ErrProvider):
		return c.JSON(http.StatusBadGateway, ErrorResponse{
			Error:   "provider_error",
			Message: err.Error(),
		})
	case errors.Is(err, domain.ErrParseFailure):
		return c.JSON(http.StatusBadGateway, ErrorResponse{
			Error:   "parse_failure",
			Message: err.Error(),
		})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "Unexpected server error",
		})
	}
}
