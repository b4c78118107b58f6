// Package prof collects ad-hoc timing measurements for the sweep and demo
// tooling. It is a process-global recorder: callers Track durations under a
// label and drain them with SnapshotAndReset.
package prof

import (
	"sync"
	"time"
)

// Entry represents a single timing measurement.
type Entry struct {
	Label string
	Dur   time.Duration
}

var (
	mu     sync.Mutex
	record []Entry
)

// Track logs the duration since start with the given name.
func Track(start time.Time, name string) {
	elapsed := time.Since(start)
	mu.Lock()
	record = append(record, Entry{Label: name, Dur: elapsed})
	mu.Unlock()
}

// SnapshotAndReset returns the collected timing entries and clears them.
func SnapshotAndReset() []Entry {
	mu.Lock()
	defer mu.Unlock()
	out := make([]Entry, len(record))
	copy(out, record)
	record = nil
	return out
}

// Totals sums the drained entries per label.
func Totals(entries []Entry) map[string]time.Duration {
	totals := make(map[string]time.Duration)
	for _, e := range entries {
		totals[e.Label] += e.Dur
	}
	return totals
}
