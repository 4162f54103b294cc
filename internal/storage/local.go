package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/sbilibin2017/gw-media-channels/internal/logger"
)

// Local stores blobs as flat files under a base directory.
type Local struct {
	basePath string
}

// NewLocal creates the base directory if needed.
func NewLocal(basePath string) (*Local, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, err
	}
	return &Local{basePath: basePath}, nil
}

// Save writes the upload to a new uniquely named file under dir and returns
// its slash separated name relative to the base path.
func (s *Local) Save(ctx context.Context, dir, prefix string, up Upload) (string, error) {
	name := objectName(dir, prefix, up.Ext)
	path := filepath.Join(s.basePath, filepath.FromSlash(name))

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", err
	}

	_, err = io.Copy(f, up.Reader)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return "", err
	}

	logger.Log.Infow("blob saved", "name", name, "size", up.Size, "content_type", up.ContentType)
	return name, nil
}

// Delete removes the blob. Deleting a missing blob is not an error.
func (s *Local) Delete(ctx context.Context, name string) error {
	clean, err := cleanName(name)
	if err != nil {
		return nil
	}
	err = os.Remove(filepath.Join(s.basePath, filepath.FromSlash(clean)))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	logger.Log.Infow("blob deleted", "name", clean)
	return nil
}

func (s *Local) Exists(ctx context.Context, name string) (bool, error) {
	clean, err := cleanName(name)
	if err != nil {
		return false, nil
	}
	_, err = os.Stat(filepath.Join(s.basePath, filepath.FromSlash(clean)))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Open returns a reader for the blob or ErrNotFound.
func (s *Local) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	clean, err := cleanName(name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(filepath.Join(s.basePath, filepath.FromSlash(clean)))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}
