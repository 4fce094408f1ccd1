package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/cccteam/logger"
	"github.com/go-playground/errors/v5"
	"gopkg.in/yaml.v3"
)

var _ KV = (*File)(nil)

// File is a single-client snapshot stored as a YAML document on disk.
//
// Writes replace the whole document through a temporary file and a rename,
// so a reader never observes half of a Put.
type File struct {
	mu   sync.Mutex
	path string
}

// NewFile returns a File snapshot at path. The file is created on the first write.
func NewFile(path string) *File {
	return &File{path: path}
}

// Get returns the stored values for keys. A missing or unreadable document reads as empty.
func (f *File) Get(ctx context.Context, keys ...Key) (Values, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.read(ctx).pick(keys...), nil
}

// Put stores values, keeping any other keys already present.
func (f *File) Put(ctx context.Context, values Values) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored := f.read(ctx)
	for k, v := range values {
		stored[k] = v
	}

	return f.write(stored)
}

// Remove deletes keys. The document is removed once it is empty.
func (f *File) Remove(ctx context.Context, keys ...Key) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored := f.read(ctx)
	for _, k := range keys {
		delete(stored, k)
	}

	if len(stored) == 0 {
		if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return errors.Wrap(err, "os.Remove()")
		}

		return nil
	}

	return f.write(stored)
}

func (f *File) read(ctx context.Context) Values {
	b, err := os.ReadFile(f.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.FromCtx(ctx).Errorf("snapshot.File: reading %s: %s", f.path, err)
		}

		return Values{}
	}

	doc := make(map[string]string)
	if err := yaml.Unmarshal(b, &doc); err != nil {
		logger.FromCtx(ctx).Infof("snapshot.File: ignoring malformed document %s: %s", f.path, err)

		return Values{}
	}

	return fromEntries(doc)
}

func (f *File) write(v Values) error {
	b, err := yaml.Marshal(toEntries(v))
	if err != nil {
		return errors.Wrap(err, "yaml.Marshal()")
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return errors.Wrap(err, "os.MkdirAll()")
	}

	tmp, err := os.CreateTemp(dir, ".snapshot-*")
	if err != nil {
		return errors.Wrap(err, "os.CreateTemp()")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()

		return errors.Wrap(err, "os.File.Write()")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "os.File.Close()")
	}

	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return errors.Wrap(err, "os.Rename()")
	}

	return nil
}
