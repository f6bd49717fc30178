package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog"
)

// Store persists the ledger document as a JSON file.
//
// Load fails open: a missing or corrupt file yields a default document
// rather than an error, so commands always have a ledger to work with.
// Save overwrites the whole document (last writer wins). A lockfile
// serializes concurrent CLI invocations against the same file.
type Store struct {
	filePath string
	logger   zerolog.Logger
}

// NewStore creates a Store backed by filePath.
func NewStore(filePath string, logger zerolog.Logger) (*Store, error) {
	if filePath == "" {
		return nil, errors.New("ledger store requires a file path")
	}
	return &Store{filePath: filePath, logger: logger}, nil
}

// FilePath returns the backing file path.
func (s *Store) FilePath() string {
	return s.filePath
}

// Load reads the ledger document. A missing file yields the default
// document; a corrupt one does too, logged at error level. Load never
// returns an error to the caller.
func (s *Store) Load() UserProgress {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Debug().Err(err).Str("path", s.filePath).Msg("ledger unreadable, using defaults")
		}
		return DefaultProgress()
	}

	var progress UserProgress
	if err := json.Unmarshal(data, &progress); err != nil {
		s.logger.Error().Err(err).Str("path", s.filePath).Msg("ledger corrupt, using defaults")
		return DefaultProgress()
	}

	progress.Normalize()
	return progress
}

// Save serializes progress and overwrites the backing file. The write goes
// through a temp file and rename so a crash cannot leave a half-written
// document.
func (s *Store) Save(progress UserProgress) error {
	unlock, err := s.acquireFileLock()
	if err != nil {
		return fmt.Errorf("acquiring ledger lock: %w", err)
	}
	defer unlock()

	data, err := json.MarshalIndent(progress, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling ledger: %w", err)
	}

	dir := filepath.Dir(s.filePath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating ledger directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".ledger-*.json")
	if err != nil {
		return fmt.Errorf("creating temp ledger file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing ledger: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("closing temp ledger file: %w", err)
	}
	if err := os.Rename(tmpName, s.filePath); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replacing ledger file: %w", err)
	}
	return nil
}

// Reset deletes the persisted document. The next Load returns defaults.
func (s *Store) Reset() error {
	unlock, err := s.acquireFileLock()
	if err != nil {
		return fmt.Errorf("acquiring ledger lock: %w", err)
	}
	defer unlock()

	if err := os.Remove(s.filePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing ledger file: %w", err)
	}
	return nil
}

func (s *Store) lockFilePath() string {
	return s.filePath + ".lock"
}

// acquireFileLock acquires a cross-process advisory lockfile.
// Returns a cleanup function that releases the lock.
func (s *Store) acquireFileLock() (func(), error) {
	lockPath := s.lockFilePath()

	if err := os.MkdirAll(filepath.Dir(lockPath), 0o750); err != nil {
		return nil, fmt.Errorf("creating lock directory: %w", err)
	}

	// Try to create the lockfile exclusively; retry with stale lock detection.
	const maxRetries = 10
	const retryDelay = 100 * time.Millisecond
	const staleLockAge = 30 * time.Second

	for range maxRetries {
		f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
		if err == nil {
			// Write PID for stale lock detection.
			_, _ = fmt.Fprintf(f, "%d", os.Getpid())
			_ = f.Close()
			return func() { _ = os.Remove(lockPath) }, nil
		}

		if removeStaleLock(lockPath, staleLockAge) {
			continue
		}
		time.Sleep(retryDelay)
	}

	return nil, fmt.Errorf("could not acquire lock on %s after retries", lockPath)
}

// removeStaleLock checks if a lock file is stale and removes it if so.
// Returns true if the lock was removed (caller should retry).
func removeStaleLock(lockPath string, staleLockAge time.Duration) bool {
	info, statErr := os.Stat(lockPath)
	if statErr != nil || time.Since(info.ModTime()) <= staleLockAge {
		return false
	}

	if isLockHeldByLiveProcess(lockPath) {
		return false
	}

	// PID not readable, not parseable, or process dead.
	_ = os.Remove(lockPath)
	return true
}

// isLockHeldByLiveProcess reads the PID from a lock file and checks if that
// process is still alive.
func isLockHeldByLiveProcess(lockPath string) bool {
	pidData, readErr := os.ReadFile(lockPath)
	if readErr != nil || len(pidData) == 0 {
		return false
	}
	var pid int
	if _, scanErr := fmt.Sscanf(string(pidData), "%d", &pid); scanErr != nil || pid <= 0 {
		return false
	}
	return processExists(pid) == nil
}

// processExists checks whether a process with the given PID is still alive.
func processExists(pid int) error {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return err
	}
	// Signal 0 tests process existence without actually sending a signal.
	return proc.Signal(syscall.Signal(0))
}
