package perception

import (
	"encoding/json"

	geminiclient "github.com/saptohadi/wicara/adapters/gemini"
	"github.com/saptohadi/wicara/domain/entities"
)

const parseFailureMarker = "could not parse analysis response"

// DefaultTone is the documented neutral fallback when vocal analysis
// produces no usable structured data.
func DefaultTone(errMarker string) *entities.ToneResult {
	return &entities.ToneResult{
		ConfidenceLevel: "medium",
		Tone:            "professional",
		Energy:          "moderate",
		Clarity:         "somewhat clear",
		Emotion:         "neutral",
		Error:           errMarker,
	}
}

// DefaultVision is the documented neutral fallback when visual analysis
// produces no usable structured data.
func DefaultVision(errMarker string) *entities.VisionResult {
	return &entities.VisionResult{
		EyeContact:           "Could not analyze",
		LookingAwayFrequency: "unknown",
		FacialExpressions:    "unknown",
		ConfidenceVisual:     "medium",
		BodyLanguage:         "unknown",
		Fidgeting:            "unknown",
		InterestLevel:        "neutral",
		OverallImpression:    "Analysis incomplete",
		Error:                errMarker,
	}
}

// parseToneReply decodes the categorical tone fields, substituting the
// neutral defaults on parse failure.
func parseToneReply(reply string) *entities.ToneResult {
	var result entities.ToneResult
	if err := json.Unmarshal([]byte(geminiclient.StripFences(reply)), &result); err != nil {
		return DefaultTone(parseFailureMarker)
	}
	return &result
}

// parseVisionReply decodes the categorical vision fields, substituting the
// neutral defaults on parse failure.
func parseVisionReply(reply string) *entities.VisionResult {
	var result entities.VisionResult
	if err := json.Unmarshal([]byte(geminiclient.StripFences(reply)), &result); err != nil {
		return DefaultVision(parseFailureMarker)
	}
	return &result
}
