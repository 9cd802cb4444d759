package metric

import (
	"sync/atomic"
)

// Kind names the iterator that produced a ScanStats.
type Kind string

const (
	// KindBitmap is the word-at-a-time bitmap iterator.
	KindBitmap Kind = "bitmap"
	// KindBatched is the grouped 64-bit bitmap iterator.
	KindBatched Kind = "batched"
)

// ScanStats describes the work done by one iterator.
type ScanStats struct {
	Kind Kind
	// Words is the number of words pulled from the source.
	Words uint64
	// GroupsScanned counts groups that were drained word by word.
	GroupsScanned uint64
	// GroupsSkipped counts all-zero groups skipped with one comparison.
	GroupsSkipped uint64
	// Positions is the number of set-bit positions yielded.
	Positions uint64
}

// SkipRatio returns the fraction of groups skipped without a per-word scan.
func (s ScanStats) SkipRatio() float64 {
	total := s.GroupsScanned + s.GroupsSkipped
	if total == 0 {
		return 0
	}
	return float64(s.GroupsSkipped) / float64(total)
}

// Collector defines an interface for collecting scan metrics.
type Collector interface {
	// RecordScan is called once per iterator when it terminates.
	// err is nil if the source was exhausted normally.
	RecordScan(stats ScanStats, err error)
}

// NoopCollector is a no-op implementation of Collector.
type NoopCollector struct{}

// RecordScan implements Collector.
func (NoopCollector) RecordScan(ScanStats, error) {}

// BasicCollector provides simple in-memory metrics collection.
// Safe for concurrent use by many iterators.
type BasicCollector struct {
	Scans         atomic.Int64
	ScanErrors    atomic.Int64
	Words         atomic.Uint64
	GroupsScanned atomic.Uint64
	GroupsSkipped atomic.Uint64
	Positions     atomic.Uint64
}

// RecordScan implements Collector.
func (b *BasicCollector) RecordScan(stats ScanStats, err error) {
	b.Scans.Add(1)
	if err != nil {
		b.ScanErrors.Add(1)
	}
	b.Words.Add(stats.Words)
	b.GroupsScanned.Add(stats.GroupsScanned)
	b.GroupsSkipped.Add(stats.GroupsSkipped)
	b.Positions.Add(stats.Positions)
}

// Snapshot returns the accumulated totals as a ScanStats.
func (b *BasicCollector) Snapshot() ScanStats {
	return ScanStats{
		Words:         b.Words.Load(),
		GroupsScanned: b.GroupsScanned.Load(),
		GroupsSkipped: b.GroupsSkipped.Load(),
		Positions:     b.Positions.Load(),
	}
}
