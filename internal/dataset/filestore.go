package dataset

import (
	"context"
	"os"
	"path/filepath"

	"github.com/ahmedalsadeqhr/HR-Dashboard/internal/shared/apperror"
)

// Store abstracts the durable home of the raw table so the session
// layer can be tested against an in-memory fake.
type Store interface {
	Read(ctx context.Context) (*RawTable, error)
	Write(ctx context.Context, t *RawTable) error
	// Source identifies the backing location, used as the memoization key.
	Source() string
}

// FileStore persists the table as a CSV file. Writes go through a
// temp file in the same directory followed by a rename, so a failed
// save leaves the previous file untouched.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Source() string { return s.path }

func (s *FileStore) Read(_ context.Context) (*RawTable, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, apperror.Persistence(err, "load")
	}
	defer f.Close()

	t, err := ReadTable(f)
	if err != nil {
		return nil, apperror.Persistence(err, "load")
	}
	return t, nil
}

func (s *FileStore) Write(_ context.Context, t *RawTable) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".hrdata-*.csv")
	if err != nil {
		return apperror.Persistence(err, "save")
	}
	tmpName := tmp.Name()

	if err := WriteTable(tmp, t); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return apperror.Persistence(err, "save")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return apperror.Persistence(err, "save")
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return apperror.Persistence(err, "save")
	}
	return nil
}
