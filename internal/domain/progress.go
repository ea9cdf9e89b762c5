package domain

// ProgressFunc reports download progress to the TUI.
// Called once per page: (20, 45), (40, 45), (45, 45).
type ProgressFunc func(loaded, total int)

// SnapshotSource says where a returned snapshot came from.
type SnapshotSource string

const (
	SourceCache    SnapshotSource = "cache"    // fresh persisted snapshot
	SourceNetwork  SnapshotSource = "network"  // full fetch succeeded
	SourceFallback SnapshotSource = "fallback" // fetch failed, stale snapshot served
	SourceEmpty    SnapshotSource = "empty"    // fetch failed, nothing persisted
)

// SyncResult summarizes what happened during a catalog load.
type SyncResult struct {
	Source SnapshotSource
	Count  int   // records in the returned snapshot
	Err    error // swallowed failure, informational only
}

// Degraded returns true when the caller should show a passive
// "couldn't load, try later" message.
func (r SyncResult) Degraded() bool {
	return r.Source == SourceFallback || r.Source == SourceEmpty
}
