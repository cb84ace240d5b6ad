package store

import (
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

// LockDataDir takes an exclusive, non-blocking lock on <dir>/jobboard.lock so
// two processes never share one cache database.
func LockDataDir(dir string) (*flock.Flock, error) {
	fl := flock.New(filepath.Join(dir, "jobboard.lock"))
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock data dir: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("data dir %s is in use by another process", dir)
	}
	return fl, nil
}
