// Package store persists export artifacts in the application data directory.
package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	triageerrors "github.com/rileyhilliard/triage/internal/errors"
	"github.com/rileyhilliard/triage/internal/logger"
	"github.com/spf13/afero"
)

// AppName names the per-user data directory.
const AppName = "triage"

// Scope identifies a storage location. Only the application data directory exists today.
type Scope string

// ScopeAppData is the per-user application data directory.
const ScopeAppData Scope = "appdata"

const (
	dirMode  os.FileMode = 0o755
	fileMode os.FileMode = 0o644
)

// DefaultDir returns $XDG_DATA_HOME/triage, or ~/.local/share/triage.
func DefaultDir() (string, error) {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", triageerrors.WrapWithCode(err, triageerrors.ErrPersist,
			"Couldn't find your home directory",
			"Set XDG_DATA_HOME or store.dir in the config")
	}
	return filepath.Join(home, ".local", "share", AppName), nil
}

// FileStore writes files under a single directory of an afero filesystem.
type FileStore struct {
	fs  afero.Fs
	dir string
	log logger.Logger
}

// New creates a store rooted at dir on fs.
func New(fs afero.Fs, dir string) *FileStore {
	return &FileStore{fs: fs, dir: dir, log: logger.Noop()}
}

// NewOS creates a store on the real filesystem. An empty dir means DefaultDir.
func NewOS(dir string) (*FileStore, error) {
	if dir == "" {
		var err error
		if dir, err = DefaultDir(); err != nil {
			return nil, err
		}
	}
	return New(afero.NewOsFs(), dir), nil
}

// WithLogger sets the logger used for write diagnostics.
func (s *FileStore) WithLogger(l logger.Logger) *FileStore {
	if l != nil {
		s.log = l
	}
	return s
}

// Dir returns the directory files are written to.
func (s *FileStore) Dir() string {
	return s.dir
}

// Write stores data as name within scope and returns the full path.
// The file is written to a temp file and renamed into place, so readers
// never see a partial file. An existing file is replaced.
func (s *FileStore) Write(ctx context.Context, name string, data []byte, scope Scope) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", triageerrors.WrapWithCode(err, triageerrors.ErrPersist,
			"Export was cancelled", "")
	}

	target, err := s.resolve(name, scope)
	if err != nil {
		return "", err
	}

	if err := s.fs.MkdirAll(s.dir, dirMode); err != nil {
		return "", s.writeErr(name, fmt.Errorf("mkdir %s: %w", s.dir, err))
	}

	tmp := target + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, fileMode); err != nil {
		_ = s.fs.Remove(tmp)
		return "", s.writeErr(name, fmt.Errorf("write tmp: %w", err))
	}

	if err := s.fs.Rename(tmp, target); err != nil {
		_ = s.fs.Remove(tmp)
		return "", s.writeErr(name, fmt.Errorf("rename: %w", err))
	}

	s.log.Debug("wrote %d bytes to %s", len(data), target)
	return target, nil
}

// Read returns the contents of name within scope.
func (s *FileStore) Read(name string, scope Scope) ([]byte, error) {
	target, err := s.resolve(name, scope)
	if err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(s.fs, target)
	if err != nil {
		return nil, triageerrors.WrapWithCode(err, triageerrors.ErrPersist,
			fmt.Sprintf("Couldn't read %s", name), "")
	}
	return data, nil
}

// resolve validates scope and name and returns the target path.
func (s *FileStore) resolve(name string, scope Scope) (string, error) {
	if scope != ScopeAppData {
		return "", triageerrors.New(triageerrors.ErrPersist,
			fmt.Sprintf("Unknown storage scope %q", scope),
			fmt.Sprintf("Use %q", ScopeAppData))
	}
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", triageerrors.New(triageerrors.ErrPersist,
			fmt.Sprintf("Invalid file name %q", name),
			"File names can't contain path separators")
	}
	if s.dir == "" {
		return "", triageerrors.New(triageerrors.ErrPersist,
			"No data directory configured",
			"Set store.dir in the config")
	}
	return filepath.Join(s.dir, name), nil
}

func (s *FileStore) writeErr(name string, err error) error {
	return triageerrors.WrapWithCode(err, triageerrors.ErrPersist,
		fmt.Sprintf("Couldn't write %s", name),
		fmt.Sprintf("Check that %s is writable", s.dir))
}
