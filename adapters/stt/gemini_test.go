package stt

import "testing"

func TestParseTranscriptReply(t *testing.T) {
	cases := []struct {
		name      string
		in        string
		wantText  string
		wantPause *int
	}{
		{
			name:      "well formed",
			in:        "TRANSCRIPT: Um, I think teamwork matters.\nPAUSE_COUNT: 3",
			wantText:  "Um, I think teamwork matters.",
			wantPause: intPtr(3),
		},
		{
			name:      "pause with trailing words",
			in:        "TRANSCRIPT: hello there\nPAUSE_COUNT: 2 significant pauses",
			wantText:  "hello there",
			wantPause: intPtr(2),
		},
		{
			name:      "unparseable pause defaults to zero",
			in:        "TRANSCRIPT: hello\nPAUSE_COUNT: several",
			wantText:  "hello",
			wantPause: intPtr(0),
		},
		{
			name:     "no markers is raw transcript",
			in:       "I just spoke freely without markers.",
			wantText: "I just spoke freely without markers.",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			text, pause := parseTranscriptReply(tc.in)
			if text != tc.wantText {
				t.Errorf("transcript = %q, want %q", text, tc.wantText)
			}
			switch {
			case tc.wantPause == nil && pause != nil:
				t.Errorf("expected nil pause count, got %d", *pause)
			case tc.wantPause != nil && pause == nil:
				t.Errorf("expected pause count %d, got nil", *tc.wantPause)
			case tc.wantPause != nil && pause != nil && *pause != *tc.wantPause:
				t.Errorf("pause count = %d, want %d", *pause, *tc.wantPause)
			}
		})
	}
}

func intPtr(n int) *int { return &n }
