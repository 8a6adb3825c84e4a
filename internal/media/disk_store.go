package media

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/saptohadi/wicara/domain"
	"github.com/saptohadi/wicara/domain/repositories"
)

// DiskStore keeps uploaded recordings under a data directory, one file per
// (session, question) pair. Re-uploads overwrite in place so stale media
// never accumulates for a question.
type DiskStore struct {
	root   string
	logger *zap.Logger
}

var _ repositories.MediaStore = (*DiskStore)(nil)

// NewDiskStore creates the data directory if needed.
func NewDiskStore(root string, logger *zap.Logger) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create media root %s: %w", root, err)
	}
	return &DiskStore{root: root, logger: logger}, nil
}

// SaveResponse writes the recording and returns its media reference.
func (s *DiskStore) SaveResponse(sessionID string, questionIndex int, filename string, r io.Reader) (repositories.Media, error) {
	dir := filepath.Join(s.root, sessionID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return repositories.Media{}, fmt.Errorf("create session dir: %w", err)
	}

	ext := safeExt(filename)
	path := filepath.Join(dir, fmt.Sprintf("response_%d%s", questionIndex, ext))

	f, err := os.Create(path)
	if err != nil {
		return repositories.Media{}, fmt.Errorf("create media file: %w", err)
	}
	written, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return repositories.Media{}, fmt.Errorf("write media file: %w", err)
	}

	s.logger.Info("Response media stored",
		zap.String("sessionID", sessionID),
		zap.Int("questionIndex", questionIndex),
		zap.String("path", path),
		zap.Int64("bytes", written))

	return repositories.Media{Path: path, MIMEType: MIMETypeFor(filename)}, nil
}

// Open returns a reader over stored media.
func (s *DiskStore) Open(m repositories.Media) (io.ReadCloser, error) {
	f, err := os.Open(m.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("media %s: %w", m.Path, domain.ErrNotFound)
		}
		return nil, err
	}
	return f, nil
}

var mimeByExt = map[string]string{
	".webm": "video/webm",
	".mp4":  "video/mp4",
	".mov":  "video/quicktime",
	".ogg":  "audio/ogg",
	".wav":  "audio/wav",
	".flac": "audio/flac",
	".mp3":  "audio/mpeg",
}

// MIMETypeFor resolves a content type from the uploaded filename,
// defaulting to webm since that is what browser recorders produce.
func MIMETypeFor(filename string) string {
	if t, ok := mimeByExt[safeExt(filename)]; ok {
		return t
	}
	return "video/webm"
}

// safeExt extracts a filesystem-safe extension from an untrusted upload
// filename.
func safeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	for _, r := range ext {
		if r != '.' && (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ".webm"
		}
	}
	if ext == "" || ext == "." {
		return ".webm"
	}
	return ext
}
