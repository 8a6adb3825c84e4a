package entities

import "testing"

func TestNewSession(t *testing.T) {
	s := NewSession([]string{"q0", "q1"})
	if s.ID == "" {
		t.Error("NewSession() did not assign an ID")
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}

	other := NewSession([]string{"q0"})
	if s.ID == other.ID {
		t.Error("two sessions share an ID")
	}
}

func TestSessionValidate(t *testing.T) {
	tests := []struct {
		name    string
		session Session
		wantErr bool
	}{
		{name: "valid", session: Session{ID: "a", Questions: []string{"q"}}, wantErr: false},
		{name: "missing id", session: Session{Questions: []string{"q"}}, wantErr: true},
		{name: "no questions", session: Session{ID: "a"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.session.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestQuestionBounds(t *testing.T) {
	s := NewSession([]string{"q0", "q1"})

	if q, err := s.Question(1); err != nil || q != "q1" {
		t.Errorf("Question(1) = %q, %v", q, err)
	}
	if _, err := s.Question(-1); err == nil {
		t.Error("Question(-1) expected error")
	}
	if _, err := s.Question(2); err == nil {
		t.Error("Question(2) expected error")
	}
}

func TestAttachAnalysis(t *testing.T) {
	s := NewSession([]string{"q0"})

	if err := s.AttachAnalysis(0, &AnalysisResult{}); err == nil {
		t.Error("AttachAnalysis() before upload expected error")
	}

	if err := s.SetResponse(0, &Response{MediaPath: "r.webm"}); err != nil {
		t.Fatalf("SetResponse() error = %v", err)
	}
	if err := s.AttachAnalysis(0, &AnalysisResult{Transcript: "t"}); err != nil {
		t.Fatalf("AttachAnalysis() error = %v", err)
	}
	if !s.Responses[0].Analyzed {
		t.Error("Analyzed flag not set with result present")
	}

	// Clearing the result clears the flag too.
	if err := s.AttachAnalysis(0, nil); err != nil {
		t.Fatalf("AttachAnalysis(nil) error = %v", err)
	}
	if s.Responses[0].Analyzed {
		t.Error("Analyzed flag should follow the result")
	}
}

func TestCloneIsDeep(t *testing.T) {
	s := NewSession([]string{"q0"})
	if err := s.SetResponse(0, &Response{MediaPath: "orig.webm"}); err != nil {
		t.Fatalf("SetResponse() error = %v", err)
	}
	if err := s.AttachAnalysis(0, &AnalysisResult{Transcript: "orig"}); err != nil {
		t.Fatalf("AttachAnalysis() error = %v", err)
	}

	clone := s.Clone()
	clone.Questions[0] = "mutated"
	clone.Responses[0].MediaPath = "mutated.webm"
	clone.Responses[0].Analysis.Transcript = "mutated"

	if s.Questions[0] != "q0" {
		t.Error("clone shares question slice with original")
	}
	if s.Responses[0].MediaPath != "orig.webm" {
		t.Error("clone shares response with original")
	}
	if s.Responses[0].Analysis.Transcript != "orig" {
		t.Error("clone shares analysis with original")
	}
}
