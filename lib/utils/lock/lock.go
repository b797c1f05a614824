package lock

import (
	"context"
	"sync"
	"time"
)

var (
	lockMap sync.Map
)

const pollInterval = 50 * time.Millisecond

// WithDelay runs safeCode while holding the in-process lock for key. It waits
// up to wait for a concurrent holder to finish and reports false, without
// running safeCode, when the lock could not be taken in time.
func WithDelay(ctx context.Context, key string, wait time.Duration, safeCode func() error) (success bool, err error) {
	timeout := time.NewTimer(wait)
	defer timeout.Stop()
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for {
		if _, loaded := lockMap.LoadOrStore(key, true); !loaded {
			break
		}
		select {
		case <-timeout.C:
			return false, nil
		case <-ctx.Done():
			return false, nil
		case <-ticker.C:
		}
	}
	defer lockMap.Delete(key)
	return true, safeCode()
}
