package catalog_cache

import (
	"sync"
	"time"

	"github.com/Arvelo-Commerce/arvelo-storefront-backend/engine"
)

const TTL = 5 * time.Minute

// ── Catalog snapshot cache ───────────────────────────────────────────────────
// Stores the active product + category snapshot the filter engine runs over.
// Every storefront read goes through this; catalog mutations call Invalidate.

type snapshotEntry struct {
	snapshot  engine.Snapshot
	fetchedAt time.Time
}

var (
	snapMu    sync.RWMutex
	snapCache *snapshotEntry
)

func GetSnapshot() (engine.Snapshot, bool) {
	snapMu.RLock()
	defer snapMu.RUnlock()
	if snapCache != nil && time.Since(snapCache.fetchedAt) < TTL {
		return snapCache.snapshot, true
	}
	return engine.Snapshot{}, false
}

func SetSnapshot(snapshot engine.Snapshot) {
	snapMu.Lock()
	defer snapMu.Unlock()
	snapCache = &snapshotEntry{snapshot: snapshot, fetchedAt: time.Now()}
}

// ── Invalidate (call on any product/category create/update/delete) ───────────

func Invalidate() {
	snapMu.Lock()
	snapCache = nil
	snapMu.Unlock()
}
