package domain

import "errors"

// Error kinds shared across the analysis pipeline. Callers discriminate
// with errors.Is; adapters wrap these with context via fmt.Errorf and %w.
var (
	// ErrNotFound covers unknown sessions, missing responses, and
	// out-of-range question indexes. It is the only error kind that is
	// surfaced by AnalysisService.Analyze.
	ErrNotFound = errors.New("not found")

	// ErrQuestionIndex marks a question index outside the session's
	// ordered question list. Wraps ErrNotFound semantics for HTTP mapping.
	ErrQuestionIndex = errors.New("question index out of range")

	// ErrMissingCredential is returned at construction time when a remote
	// provider is selected but its credentials are absent. This is a
	// configuration fault and never silently degrades to the mock.
	ErrMissingCredential = errors.New("missing provider credential")

	// ErrUploadTimeout means an uploaded artifact never reached the ready
	// state within the configured polling window.
	ErrUploadTimeout = errors.New("media upload timed out")

	// ErrUploadRejected means the remote service reported the uploaded
	// artifact as failed.
	ErrUploadRejected = errors.New("media upload rejected")

	// ErrParseFailure means a provider reply could not be interpreted as
	// the expected structured data.
	ErrParseFailure = errors.New("provider response parse failure")

	// ErrProvider is the generic remote backend failure.
	ErrProvider = errors.New("provider failure")
)
