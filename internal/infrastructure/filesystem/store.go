package filesystem

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	domain "clipd/internal/domain/convert"
)

// DownloadURLPrefix is where the HTTP layer serves finished artifacts.
const DownloadURLPrefix = "/downloads/"

// Store owns the downloads directory where conversion artifacts live.
// Artifact lifetime is decoupled from job-record lifetime: the
// retention sweep removes old files whether or not a registry entry
// still references them.
type Store struct {
	dir    string
	logger *zap.Logger
}

// NewStore creates the filesystem adapter rooted at dir.
func NewStore(dir string, logger *zap.Logger) *Store {
	return &Store{dir: dir, logger: logger}
}

// EnsureDir creates the downloads root used by the service.
func (s *Store) EnsureDir() error {
	return os.MkdirAll(s.dir, 0o755)
}

// OutputPath returns the artifact path for a sanitized output name.
func (s *Store) OutputPath(name string) string {
	return filepath.Join(s.dir, name)
}

// Finalize verifies the engine actually produced a usable file: a
// missing or zero-byte output fails the job even when the engine
// reported success.
func (s *Store) Finalize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, domain.ErrEmptyOutput
	}
	if info.Size() == 0 {
		return 0, domain.ErrEmptyOutput
	}
	return info.Size(), nil
}

// Describe builds the download descriptor served to polling clients.
func (s *Store) Describe(path string, size int64) domain.Download {
	name := filepath.Base(path)
	return domain.Download{Filename: name, URL: DownloadURLPrefix + name, Size: size}
}

// Delete removes one artifact by bare filename. Names carrying path
// separators or parent-directory tokens are rejected before any
// filesystem call happens.
func (s *Store) Delete(name string) error {
	if !ValidName(name) {
		return domain.ErrInvalidName
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return domain.ErrNotFound
	}
	return err
}

// ValidName reports whether a caller-supplied artifact name is safe
// to resolve inside the downloads directory.
func ValidName(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return false
	}
	return true
}

// Sweep unconditionally removes artifacts older than maxAge,
// irrespective of job-record state. Racing with an explicit delete on
// the same file is fine; already-gone counts as swept.
func (s *Store) Sweep(maxAge time.Duration) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		s.logger.Warn("retention sweep failed", zap.Error(err))
		return
	}

	cutoff := time.Now().Add(-maxAge)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		path := filepath.Join(s.dir, entry.Name())
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("retention sweep: remove failed", zap.String("path", path), zap.Error(err))
			continue
		}
		s.logger.Info("retention sweep: removed artifact", zap.String("file", entry.Name()))
	}
}

// StartSweeper arms the periodic retention sweep; called once at
// startup so retention resumes after a restart.
func (s *Store) StartSweeper(ctx context.Context, interval, maxAge time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Sweep(maxAge)
			}
		}
	}()
}
