package repositories

import "context"

// TextToSpeech renders a question prompt to playable audio for the
// candidate. Synthesize returns a complete WAV clip.
type TextToSpeech interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}
