package tokenstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/magabrotheeeer/loyalty-userapp/internal/lib/sl"
)

// File хранит пары ключ-значение в JSON-файле на диске и переживает перезапуск процесса.
// Запись идет через временный файл и rename, поэтому слот обновляется атомарно.
type File struct {
	mu   sync.Mutex
	path string
	key  string
	log  *slog.Logger
}

func NewFile(path, key string, log *slog.Logger) *File {
	return &File{
		path: path,
		key:  key,
		log:  log.With(sl.Op("tokenstore.File"), slog.String("path", path)),
	}
}

func (f *File) Save(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.read()
	if err != nil {
		f.log.Warn("stored entries are unreadable, overwriting", sl.Err(err))
		entries = map[string]string{}
	}
	entries[f.key] = token

	if err := f.write(entries); err != nil {
		f.log.Error("failed to save token", sl.Err(err))
	}
}

func (f *File) Load() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.read()
	if err != nil {
		f.log.Error("failed to load token", sl.Err(err))
		return "", false
	}
	token, ok := entries[f.key]
	return token, ok
}

func (f *File) read() (map[string]string, error) {
	const op = "tokenstore.File.read"
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	entries := map[string]string{}
	if len(data) == 0 {
		return entries, nil
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return entries, nil
}

func (f *File) write(entries map[string]string) error {
	const op = "tokenstore.File.write"
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	tmp, err := os.CreateTemp(dir, ".storage-*.tmp")
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
