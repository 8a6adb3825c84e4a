package metrics

import (
	"reflect"
	"testing"

	"github.com/saptohadi/wicara/domain/entities"
)

func TestExtractEndToEnd(t *testing.T) {
	transcript := "I led a project under pressure when our deadline changed. Um, like, we had to reorganize fast."

	m := Extract(transcript, nil, nil, 30.0)

	if m.WordCount != 17 {
		t.Errorf("word count = %d, want 17", m.WordCount)
	}
	if m.SentenceCount != 2 {
		t.Errorf("sentence count = %d, want 2", m.SentenceCount)
	}
	wantFillers := map[string]int{"um": 1, "like": 1}
	if !reflect.DeepEqual(m.FillerWords, wantFillers) {
		t.Errorf("filler words = %v, want %v", m.FillerWords, wantFillers)
	}
	if m.TotalFillers != 2 {
		t.Errorf("total fillers = %d, want 2", m.TotalFillers)
	}
	// 17 words over half a minute.
	if m.PaceWPM != 34 {
		t.Errorf("pace = %d, want 34", m.PaceWPM)
	}
	if m.DurationSeconds != 30.0 {
		t.Errorf("duration = %v, want 30.0", m.DurationSeconds)
	}
}

func TestExtractEmptyTranscript(t *testing.T) {
	for _, duration := range []float64{0, 1, 30, 120} {
		m := Extract("", nil, nil, duration)

		if m.WordCount != 0 {
			t.Errorf("duration %v: word count = %d, want 0", duration, m.WordCount)
		}
		if m.SentenceCount != 0 {
			t.Errorf("duration %v: sentence count = %d, want 0", duration, m.SentenceCount)
		}
		if m.PaceWPM != 0 {
			t.Errorf("duration %v: pace = %d, want 0", duration, m.PaceWPM)
		}
		if len(m.FillerWords) != 0 {
			t.Errorf("duration %v: filler words = %v, want empty", duration, m.FillerWords)
		}
		if m.PauseCount != 0 {
			t.Errorf("duration %v: pause count = %d, want 0", duration, m.PauseCount)
		}
	}
}

func TestExtractDurationRounding(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{30.0, 30.0},
		{42.0, 42.0},
		{12.34, 12.3},
		{12.35, 12.4},
		// Zero and negative durations clamp to the one-second floor.
		{0, 1.0},
		{-5, 1.0},
		{0.4, 1.0},
	}
	for _, tc := range cases {
		m := Extract("hello world", nil, nil, tc.in)
		if m.DurationSeconds != tc.want {
			t.Errorf("Extract(_, _, _, %v).DurationSeconds = %v, want %v", tc.in, m.DurationSeconds, tc.want)
		}
	}
}

func TestExtractFillerBoundaries(t *testing.T) {
	// "Umbrella" must not count as "um"; a comma after "Um" must.
	m := Extract("Umbrella weather today. Um, yeah.", nil, nil, 10)

	if got := m.FillerWords["um"]; got != 1 {
		t.Errorf(`count of "um" = %d, want 1`, got)
	}

	// Case-insensitive matching.
	m = Extract("UM um Um", nil, nil, 10)
	if got := m.FillerWords["um"]; got != 3 {
		t.Errorf(`count of "um" = %d, want 3`, got)
	}

	// Multi-word phrases anchor on both sides.
	m = Extract("You know, I was thinking, you know?", nil, nil, 10)
	if got := m.FillerWords["you know"]; got != 2 {
		t.Errorf(`count of "you know" = %d, want 2`, got)
	}
}

func TestExtractTotalFillersIsSum(t *testing.T) {
	m := Extract("Um, like, you know, I basically sort of actually did it, right? Um.", nil, nil, 20)

	sum := 0
	for _, count := range m.FillerWords {
		if count <= 0 {
			t.Errorf("filler count %d must be positive", count)
		}
		sum += count
	}
	if m.TotalFillers != sum {
		t.Errorf("total fillers = %d, want sum %d", m.TotalFillers, sum)
	}
}

func TestExtractApostropheWords(t *testing.T) {
	m := Extract("Don't stop, we can't quit.", nil, nil, 10)

	// don't / stop / we / can't / quit
	if m.WordCount != 5 {
		t.Errorf("word count = %d, want 5", m.WordCount)
	}
}

func TestExtractPausesFromSegments(t *testing.T) {
	cases := []struct {
		name     string
		segments []entities.Segment
		want     int
	}{
		{
			name:     "gap over threshold",
			segments: []entities.Segment{{Start: 0.0, End: 2.5}, {Start: 3.2, End: 6.0}},
			want:     1,
		},
		{
			name:     "gap under threshold",
			segments: []entities.Segment{{Start: 0.0, End: 2.5}, {Start: 2.8, End: 6.0}},
			want:     0,
		},
		{
			name: "mixed gaps",
			segments: []entities.Segment{
				{Start: 0.0, End: 1.0},
				{Start: 1.2, End: 2.0},
				{Start: 3.0, End: 4.0},
				{Start: 5.5, End: 6.0},
			},
			want: 2,
		},
		{
			name:     "single segment",
			segments: []entities.Segment{{Start: 0.0, End: 2.5}},
			want:     0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := Extract("a few words here", tc.segments, nil, 10)
			if m.PauseCount != tc.want {
				t.Errorf("pause count = %d, want %d", m.PauseCount, tc.want)
			}
		})
	}
}

func TestExtractProviderPauseCountWins(t *testing.T) {
	segments := []entities.Segment{{Start: 0.0, End: 2.5}, {Start: 3.2, End: 6.0}}
	provided := 7

	m := Extract("some words", segments, &provided, 10)
	if m.PauseCount != 7 {
		t.Errorf("pause count = %d, want provider value 7", m.PauseCount)
	}

	zero := 0
	m = Extract("some words", segments, &zero, 10)
	if m.PauseCount != 0 {
		t.Errorf("pause count = %d, want provider value 0 over derived 1", m.PauseCount)
	}
}

func TestExtractIdempotent(t *testing.T) {
	transcript := "Um, I led the migration. It shipped on time!"
	segments := []entities.Segment{{Start: 0, End: 2}, {Start: 2.8, End: 5}}

	first := Extract(transcript, segments, nil, 42.0)
	second := Extract(transcript, segments, nil, 42.0)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated extraction differs: %+v vs %+v", first, second)
	}
	if first.DurationSeconds != 42.0 {
		t.Errorf("duration = %v, want 42.0", first.DurationSeconds)
	}
}
