package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/culturahub/portal/internal/core/ports"
)

// File is the local-storage analogue: a small JSON object file mapping keys
// to values, of which this store owns exactly one key. An empty path means no
// persistent slot is available and every operation is a no-op.
type File struct {
	path string
	key  string
	log  zerolog.Logger
	mu   *sync.Mutex
}

// fileLocks serialises every File sharing a path, so slots of different
// clients never overwrite each other's read-modify-write.
var fileLocks sync.Map

func pathLock(path string) *sync.Mutex {
	mu, _ := fileLocks.LoadOrStore(filepath.Clean(path), &sync.Mutex{})
	return mu.(*sync.Mutex)
}

var _ ports.SessionStore = (*File)(nil)

// NewFile returns a store for key inside the JSON file at path.
func NewFile(path, key string, log zerolog.Logger) *File {
	return &File{
		path: path,
		key:  key,
		log:  log.With().Str("component", "sessionstore").Str("backend", "file").Logger(),
		mu:   pathLock(path),
	}
}

func (f *File) Get(_ context.Context) (string, bool) {
	if f.path == "" {
		return "", false
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	slots, err := f.read()
	if err != nil {
		f.log.Warn().Err(err).Str("path", f.path).Msg("session file unreadable")
		return "", false
	}
	token, ok := slots[f.key]
	return token, ok
}

func (f *File) Set(_ context.Context, token string) {
	f.update(func(slots map[string]string) { slots[f.key] = token })
}

func (f *File) Clear(_ context.Context) {
	f.update(func(slots map[string]string) { delete(slots, f.key) })
}

func (f *File) update(mutate func(map[string]string)) {
	if f.path == "" {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	slots, err := f.read()
	if err != nil {
		// A corrupt file is replaced rather than blocking the session.
		f.log.Warn().Err(err).Str("path", f.path).Msg("session file unreadable, rewriting")
		slots = map[string]string{}
	}
	mutate(slots)
	if err := f.write(slots); err != nil {
		f.log.Warn().Err(err).Str("path", f.path).Msg("session file not written")
	}
}

func (f *File) read() (map[string]string, error) {
	slots := map[string]string{}
	raw, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return slots, nil
	}
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return slots, nil
	}
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// write replaces the file atomically so readers never see a partial token.
func (f *File) write(slots map[string]string) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	raw, err := json.Marshal(slots)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o600); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), f.path)
}
