package storage

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"inventory_app/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// URLPrefix is the public path stored images are served from.
const URLPrefix = "/uploads"

// DiskStore writes uploaded images into a single directory and returns URL
// references under URLPrefix. Identical sanitized filenames overwrite each
// other (last-writer-wins).
type DiskStore struct {
	dir string
	log *logrus.Logger
}

func NewDiskStore(dir string, logger *logrus.Logger) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create upload directory %s: %w", dir, err)
	}
	return &DiskStore{dir: dir, log: logger}, nil
}

var _ domain.ImageStore = (*DiskStore)(nil)

func (s *DiskStore) Store(data []byte, suggestedName string) (string, error) {
	name := sanitizeFilename(suggestedName)
	if name == "" {
		name = "upload-" + uuid.NewString()
	}

	target := filepath.Join(s.dir, name)
	if err := os.WriteFile(target, data, 0o644); err != nil {
		s.log.Errorf("Failed to store image %s: %v", name, err)
		return "", fmt.Errorf("could not store image %s: %w", name, err)
	}

	s.log.Infof("Stored image %s (%d bytes)", name, len(data))
	return path.Join(URLPrefix, name), nil
}

// sanitizeFilename strips any path components from the client-supplied name
// and reduces it to a conservative character set. May return the empty
// string, in which case the caller assigns a generated name.
func sanitizeFilename(name string) string {
	name = filepath.Base(strings.TrimSpace(name))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}
	return strings.Trim(b.String(), "._")
}
