package icons

import (
	"errors"
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

var ErrOutputBusy = errors.New("another icon generation run holds the export directory")

// OutputLock serializes runs that target the same export directory.
type OutputLock struct {
	lock *flock.Flock
}

func (l *OutputLock) Path() string {
	if l == nil || l.lock == nil {
		return ""
	}
	return l.lock.Path()
}

func (l *OutputLock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	if !l.lock.Locked() {
		return nil
	}
	if err := l.lock.Unlock(); err != nil {
		return fmt.Errorf("unlock export directory: %w", err)
	}
	return nil
}

// AcquireLock takes a non-blocking exclusive lock keyed by the absolute
// export directory. The lock file lives in the user cache directory so the
// generated tree stays free of tool state.
func AcquireLock(exportDir string) (*OutputLock, error) {
	lockPath, err := lockPathFor(exportDir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(lockPath), 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}
	f := flock.New(lockPath)
	locked, err := f.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire export directory lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("%w: %s", ErrOutputBusy, exportDir)
	}
	return &OutputLock{lock: f}, nil
}

func lockPathFor(exportDir string) (string, error) {
	abs, err := filepath.Abs(exportDir)
	if err != nil {
		return "", fmt.Errorf("resolve export directory: %w", err)
	}
	root, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("resolve cache directory: %w", err)
	}
	h := fnv.New64a()
	_, _ = h.Write([]byte(filepath.Clean(abs)))
	return filepath.Join(root, "appicon", "locks", fmt.Sprintf("%016x.lock", h.Sum64())), nil
}
