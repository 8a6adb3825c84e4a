package feedback

import (
	"encoding/json"

	geminiclient "github.com/saptohadi/wicara/adapters/gemini"
	"github.com/saptohadi/wicara/domain/entities"
)

// Default scores per failure class.
const (
	scoreMissingDefault = 70
	scoreParseFailure   = 65
	scoreFullFailure    = 50
)

// feedbackReply mirrors the provider's JSON. Score is a pointer so an
// absent score can be told apart from a genuine zero.
type feedbackReply struct {
	Score                    *int     `json:"score"`
	Strengths                []string `json:"strengths"`
	Improvements             []string `json:"improvements"`
	ContentFeedback          string   `json:"content_feedback"`
	DeliveryFeedback         string   `json:"delivery_feedback"`
	ImprovedAnswerSuggestion string   `json:"improved_answer_suggestion"`
	FollowUpQuestion         string   `json:"follow_up_question"`
}

// parseReply decodes a provider reply into Feedback, substituting the
// parse-failure defaults when it is not valid JSON.
func parseReply(reply string) *entities.Feedback {
	var parsed feedbackReply
	if err := json.Unmarshal([]byte(geminiclient.StripFences(reply)), &parsed); err != nil {
		return ParseFailureFeedback()
	}

	result := &entities.Feedback{
		Strengths:                parsed.Strengths,
		Improvements:             parsed.Improvements,
		ContentFeedback:          parsed.ContentFeedback,
		DeliveryFeedback:         parsed.DeliveryFeedback,
		ImprovedAnswerSuggestion: parsed.ImprovedAnswerSuggestion,
		FollowUpQuestion:         parsed.FollowUpQuestion,
	}
	if parsed.Score != nil {
		result.Score = *parsed.Score
	} else {
		result.Score = scoreMissingDefault
	}

	fillDefaults(result)
	return result
}

// ParseFailureFeedback is the degraded artifact for an uninterpretable
// provider reply.
func ParseFailureFeedback() *entities.Feedback {
	result := &entities.Feedback{
		Score:        scoreParseFailure,
		Strengths:    []string{"Completed the response"},
		Improvements: []string{"Could not fully analyze - try again"},
		Error:        "could not parse feedback response",
	}
	fillDefaults(result)
	return result
}

// ProviderFailureFeedback is the degraded artifact for a failed provider
// call. Strengths and improvements stay empty by contract; the error
// marker preserves observability.
func ProviderFailureFeedback(errMarker string) *entities.Feedback {
	result := &entities.Feedback{
		Score:        scoreFullFailure,
		Strengths:    []string{},
		Improvements: []string{},
		Error:        errMarker,
	}
	fillDefaults(result)
	return result
}

// fillDefaults is the single place that enforces the invariant that
// Feedback is never partially absent. Nil slices get a generic bullet;
// empty non-nil slices are an intentional degraded state and stay empty.
func fillDefaults(f *entities.Feedback) {
	if f.Score < 0 {
		f.Score = 0
	}
	if f.Score > 100 {
		f.Score = 100
	}
	if f.Strengths == nil {
		f.Strengths = []string{"Response provided"}
	}
	if f.Improvements == nil {
		f.Improvements = []string{"Continue practicing"}
	}
	if f.ContentFeedback == "" {
		f.ContentFeedback = "No content assessment available."
	}
	if f.DeliveryFeedback == "" {
		f.DeliveryFeedback = "No delivery assessment available."
	}
	if f.ImprovedAnswerSuggestion == "" {
		f.ImprovedAnswerSuggestion = "Practice restating your main point in one concise sentence."
	}
	if f.FollowUpQuestion == "" {
		f.FollowUpQuestion = "Can you tell me more about that experience?"
	}
}
