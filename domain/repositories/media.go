package repositories

import "io"

// MediaStore persists uploaded response recordings for the lifetime of the
// process and resolves them back into Media references for the providers.
type MediaStore interface {
	// SaveResponse writes the recording for (sessionID, questionIndex) and
	// returns its media reference. A re-upload overwrites the previous
	// recording.
	SaveResponse(sessionID string, questionIndex int, filename string, r io.Reader) (Media, error)
	// Open returns a reader over stored media.
	Open(media Media) (io.ReadCloser, error)
}
