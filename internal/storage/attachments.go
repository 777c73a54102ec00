package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// AttachmentStore persists uploaded lead attachments as files under a single
// directory. Stored names are generated, never caller-controlled; the
// original filename only contributes its extension.
type AttachmentStore struct {
	dir string
}

// NewAttachmentStore creates the attachment directory if absent and returns
// a store rooted there.
func NewAttachmentStore(dir string) (*AttachmentStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}
	return &AttachmentStore{dir: dir}, nil
}

// Dir returns the directory attachments are stored in.
func (s *AttachmentStore) Dir() string {
	return s.dir
}

// Save writes the attachment content under a generated name and returns that
// name.
func (s *AttachmentStore) Save(src io.Reader, originalName string) (string, error) {
	name := uuid.New().String() + sanitizeExt(originalName)

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create attachment file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to write attachment: %w", err)
	}

	return name, nil
}

// Path returns the on-disk path for a stored attachment name. Names
// containing path separators are rejected.
func (s *AttachmentStore) Path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) {
		return "", fmt.Errorf("invalid attachment name %q", name)
	}
	return filepath.Join(s.dir, name), nil
}

// sanitizeExt extracts a safe lowercase extension from an uploaded filename.
func sanitizeExt(originalName string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(originalName)))
	if len(ext) > 10 {
		return ""
	}
	for _, r := range ext {
		if r != '.' && !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9') {
			return ""
		}
	}
	return ext
}
