package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// fileBlob stores each key as a JSON file under a base directory. This is
// the default backend; it needs no external services.
type fileBlob struct {
	dir string
}

func NewFileBlob(dir string) (Blob, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &fileBlob{dir: dir}, nil
}

func (b *fileBlob) path(key string) string {
	return filepath.Join(b.dir, key+".json")
}

func (b *fileBlob) Get(_ context.Context, key string) ([]byte, bool, error) {
	data, err := os.ReadFile(b.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", key, err)
	}
	return data, true, nil
}

// Put writes to a temp file in the same directory and renames it over the
// target, so a crash mid-write leaves the previous value intact.
func (b *fileBlob) Put(_ context.Context, key string, data []byte) error {
	tmp, err := os.CreateTemp(b.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", key, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), b.path(key)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename %s: %w", key, err)
	}
	return nil
}
