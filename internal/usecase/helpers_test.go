package usecase_test

import (
	"io"
	"path"

	"inventory_app/internal/domain"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// fakeImageStore records stored names and returns deterministic references.
type fakeImageStore struct {
	refs []string
}

func (f *fakeImageStore) Store(data []byte, suggestedName string) (string, error) {
	ref := path.Join("/uploads", suggestedName)
	f.refs = append(f.refs, ref)
	return ref, nil
}

var _ domain.ImageStore = (*fakeImageStore)(nil)
