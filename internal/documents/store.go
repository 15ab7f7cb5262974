package documents

import (
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Store persists validated uploads and resolves references back to bytes.
type Store interface {
	Save(filename string, r io.Reader) (string, error)
	Open(ref string) (io.ReadCloser, error)
}

// DiskStore writes uploads under a single directory. Stored names carry a
// uuid prefix so two uploads of "invoice.pdf" never collide.
type DiskStore struct {
	Dir string
}

func NewDiskStore(dir string) *DiskStore {
	return &DiskStore{Dir: dir}
}

func (s *DiskStore) Save(filename string, r io.Reader) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", err
	}

	ref := uuid.NewString() + "_" + filepath.Base(filename)

	f, err := os.Create(filepath.Join(s.Dir, ref))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}
	return ref, nil
}

func (s *DiskStore) Open(ref string) (io.ReadCloser, error) {
	// refs are bare filenames; strip any path a caller smuggled in
	return os.Open(filepath.Join(s.Dir, filepath.Base(ref)))
}
