package naming

import (
	"fmt"
	"sync"
)

// CollisionGuard tracks artifact paths claimed during one run. Index and
// ordinal embedding make duplicates unreachable for a single input file, so
// a collision here means two different inputs want the same artifact name
// (e.g. a.fits and a.fit in one batch with a shared output dir). That is
// surfaced as an error rather than silently overwritten.
type CollisionGuard struct {
	mu     sync.Mutex
	owners map[string]string // artifact path → input path that owns it
}

// NewCollisionGuard creates a ready-to-use guard.
func NewCollisionGuard() *CollisionGuard {
	return &CollisionGuard{owners: make(map[string]string)}
}

// Claim registers path for input. Claiming the same path twice for the same
// input is a no-op (re-runs overwrite their own artifacts); claiming it for
// a different input returns an error naming the current owner.
func (cg *CollisionGuard) Claim(input, path string) error {
	cg.mu.Lock()
	defer cg.mu.Unlock()

	owner, exists := cg.owners[path]
	if exists && owner != input {
		return fmt.Errorf("artifact %s already produced from %s", path, owner)
	}
	cg.owners[path] = input
	return nil
}
