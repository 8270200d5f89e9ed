package history

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// FileName is the name of the history file in the user's home directory.
const FileName = ".msh_history"

// Store persists a History.
type Store interface {
	// Path is a human readable location of the store.
	Path() string
	// Load reads the full history. If nothing was persisted yet the error
	// wraps fs.ErrNotExist and the returned history is empty.
	Load() (*History, error)
	// Save replaces the persisted history.
	Save(h *History) error
	// Append adds entries to the end of the persisted history.
	Append(entries ...string) error
}

// DefaultPath returns the history file under the user's home directory, or
// the current directory if it can't be resolved.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		home = "."
	}
	return filepath.Join(home, FileName)
}

// FileStore keeps one entry per line in a file.
type FileStore struct {
	fs    afero.Fs
	path  string
	limit int
}

var _ Store = (*FileStore)(nil)

// NewFileStore creates a store at path. If limit is positive, the file is
// trimmed to the newest limit entries whenever it's written.
func NewFileStore(fs afero.Fs, path string, limit int) *FileStore {
	return &FileStore{fs: fs, path: path, limit: limit}
}

// Path implements Store.Path.
func (s *FileStore) Path() string {
	return s.path
}

// Load implements Store.Load.
func (s *FileStore) Load() (*History, error) {
	fd, err := s.fs.Open(s.path)
	if err != nil {
		return New(), err
	}
	defer fd.Close()

	out := New()
	scanner := bufio.NewScanner(fd)
	for scanner.Scan() {
		out.Append(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return New(), fmt.Errorf("reading %s: %w", s.path, err)
	}
	return out, nil
}

// Save implements Store.Save.
func (s *FileStore) Save(h *History) error {
	trimmed := FromEntries(h.Entries())
	trimmed.Trim(s.limit)

	var sb strings.Builder
	for _, entry := range trimmed.entries {
		sb.WriteString(entry)
		sb.WriteByte('\n')
	}

	return afero.WriteFile(s.fs, s.path, []byte(sb.String()), 0600)
}

// Append implements Store.Append.
func (s *FileStore) Append(entries ...string) error {
	if len(entries) == 0 {
		return nil
	}

	fd, err := s.fs.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(fd)
	for _, entry := range entries {
		fmt.Fprintln(w, entry)
	}
	if err := w.Flush(); err != nil {
		fd.Close()
		return err
	}
	if err := fd.Close(); err != nil {
		return err
	}

	if s.limit <= 0 {
		return nil
	}
	h, err := s.Load()
	if err != nil {
		return err
	}
	if h.Len() <= s.limit {
		return nil
	}
	return s.Save(h)
}
