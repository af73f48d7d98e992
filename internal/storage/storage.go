package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileRef locates an uploaded recording's bytes: always a local path, plus a
// remote URL and public id when the file was mirrored to cloud storage.
// The rest of the system treats it as opaque.
type FileRef struct {
	Path           string
	RemoteURL      *string
	RemotePublicID *string
}

// ObjectStore is the file transport collaborator. Implementations store the
// raw bytes and hand back a FileRef; everything else in the system only ever
// sees the reference.
type ObjectStore interface {
	Save(ctx context.Context, name, contentType string, data []byte) (FileRef, error)
	Remove(ctx context.Context, ref FileRef) error
	Mode() string
}

// Local stores files on the local disk under a single upload directory.
type Local struct {
	Dir string
}

// NewLocal creates the upload directory if needed.
func NewLocal(dir string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
	}
	return &Local{Dir: dir}, nil
}

func (l *Local) Save(ctx context.Context, name, contentType string, data []byte) (FileRef, error) {
	path := filepath.Join(l.Dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return FileRef{}, fmt.Errorf("write %s: %w", path, err)
	}
	return FileRef{Path: path}, nil
}

func (l *Local) Remove(ctx context.Context, ref FileRef) error {
	if ref.Path == "" {
		return nil
	}
	if err := os.Remove(ref.Path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (l *Local) Mode() string {
	return "local"
}
