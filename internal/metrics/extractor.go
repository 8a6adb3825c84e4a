package metrics

import (
	"math"
	"regexp"
	"strings"

	"github.com/saptohadi/wicara/domain/entities"
)

// FillerPhrases is the fixed list of filler words and short phrases counted
// as speech-delivery weaknesses.
var FillerPhrases = []string{
	"um", "uh", "like", "you know", "basically", "actually", "literally",
	"sort of", "kind of", "i mean", "right",
}

// pauseThresholdSeconds is the minimum gap between consecutive segments
// counted as a pause.
const pauseThresholdSeconds = 0.5

var (
	wordPattern     = regexp.MustCompile(`\b[\w']+\b`)
	sentencePattern = regexp.MustCompile(`[.!?]+`)
	fillerPatterns  = compileFillerPatterns()
)

func compileFillerPatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(FillerPhrases))
	for _, phrase := range FillerPhrases {
		patterns[phrase] = regexp.MustCompile(`\b` + regexp.QuoteMeta(phrase) + `\b`)
	}
	return patterns
}

// Extract derives speech metrics deterministically from the transcript,
// the optional time-aligned segments, and the authoritative duration. It
// performs no I/O and identical inputs always yield identical output.
//
// providerPauseCount, when non-nil, is used verbatim; otherwise the pause
// count is derived from segment gaps above the 0.5s threshold.
func Extract(transcript string, segments []entities.Segment, providerPauseCount *int, durationSeconds float64) entities.Metrics {
	clean := strings.TrimSpace(transcript)

	words := wordPattern.FindAllString(clean, -1)
	wordCount := len(words)

	fillerWords := make(map[string]int)
	totalFillers := 0
	lower := strings.ToLower(clean)
	for _, phrase := range FillerPhrases {
		count := len(fillerPatterns[phrase].FindAllStringIndex(lower, -1))
		if count > 0 {
			fillerWords[phrase] = count
			totalFillers += count
		}
	}

	sentenceCount := 0
	for _, fragment := range sentencePattern.Split(clean, -1) {
		if strings.TrimSpace(fragment) != "" {
			sentenceCount++
		}
	}

	// Floor the duration before division so a zero or negative duration
	// can never divide by zero.
	if durationSeconds < 1.0 {
		durationSeconds = 1.0
	}
	paceWPM := 0
	if wordCount > 0 {
		paceWPM = int(math.Round(float64(wordCount) / (durationSeconds / 60.0)))
	}

	pauseCount := 0
	if providerPauseCount != nil {
		pauseCount = *providerPauseCount
	} else {
		pauseCount = pausesFromSegments(segments)
	}

	return entities.Metrics{
		WordCount:       wordCount,
		SentenceCount:   sentenceCount,
		PaceWPM:         paceWPM,
		FillerWords:     fillerWords,
		TotalFillers:    totalFillers,
		PauseCount:      pauseCount,
		DurationSeconds: math.Round(durationSeconds*10) / 10,
	}
}

// pausesFromSegments counts gaps between consecutive segments that exceed
// the pause threshold.
func pausesFromSegments(segments []entities.Segment) int {
	pauses := 0
	for i := 1; i < len(segments); i++ {
		gap := segments[i].Start - segments[i-1].End
		if gap > pauseThresholdSeconds {
			pauses++
		}
	}
	return pauses
}
