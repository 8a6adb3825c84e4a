package entities

// Segment is a time-bounded slice of a transcript with start and end
// timestamps in seconds, used to infer pauses between utterances.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// TranscriptionResult is the output of a transcription provider. Text is
// verbatim and includes disfluencies. Segments may be empty. PauseCount is
// provider-detected when non-nil; when nil, the pause count is derived
// locally from segment gaps.
type TranscriptionResult struct {
	Text       string    `json:"text"`
	Segments   []Segment `json:"segments"`
	PauseCount *int      `json:"pause_count,omitempty"`
}

// Metrics are the quantitative speech-delivery measurements derived
// deterministically from (transcript, segments, duration). TotalFillers
// always equals the sum of FillerWords values; DurationSeconds reflects the
// candidate-reported duration actually used, rounded to one decimal.
type Metrics struct {
	WordCount       int            `json:"word_count"`
	SentenceCount   int            `json:"sentence_count"`
	PaceWPM         int            `json:"pace_wpm"`
	FillerWords     map[string]int `json:"filler_words"`
	TotalFillers    int            `json:"total_fillers"`
	PauseCount      int            `json:"pause_count"`
	DurationSeconds float64        `json:"duration_seconds"`
}

// ToneResult holds categorical observations about vocal delivery. Error is
// set instead of aborting the pipeline when analysis fails.
type ToneResult struct {
	ConfidenceLevel string `json:"confidence_level"`
	Tone            string `json:"tone"`
	Energy          string `json:"energy"`
	Clarity         string `json:"clarity"`
	Emotion         string `json:"emotion"`
	Error           string `json:"error,omitempty"`
}

// VisionResult holds categorical observations about visual presentation.
// Error is set instead of aborting the pipeline when analysis fails.
type VisionResult struct {
	EyeContact           string `json:"eye_contact"`
	LookingAwayFrequency string `json:"looking_away_frequency"`
	FacialExpressions    string `json:"facial_expressions"`
	ConfidenceVisual     string `json:"confidence_visual"`
	BodyLanguage         string `json:"body_language"`
	Fidgeting            string `json:"fidgeting"`
	InterestLevel        string `json:"interest_level"`
	OverallImpression    string `json:"overall_impression"`
	Error                string `json:"error,omitempty"`
}

// Feedback is the synthesized coaching artifact. Every field is always
// populated on return, substituting degraded defaults under partial or
// full upstream failure.
type Feedback struct {
	Score                    int      `json:"score"`
	Strengths                []string `json:"strengths"`
	Improvements             []string `json:"improvements"`
	ContentFeedback          string   `json:"content_feedback"`
	DeliveryFeedback         string   `json:"delivery_feedback"`
	ImprovedAnswerSuggestion string   `json:"improved_answer_suggestion"`
	FollowUpQuestion         string   `json:"follow_up_question"`
	Error                    string   `json:"error,omitempty"`
}

// AnalysisResult aggregates everything the pipeline produced for one
// response. It is the unit stored back on a Response; re-analysis replaces
// it wholesale.
type AnalysisResult struct {
	Transcript string       `json:"transcript"`
	Segments   []Segment    `json:"segments"`
	Metrics    Metrics      `json:"metrics"`
	Tone       ToneResult   `json:"tone"`
	Vision     VisionResult `json:"vision"`
	Feedback   Feedback     `json:"feedback"`
}
