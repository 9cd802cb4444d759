package metric

import (
	"github.com/spacemonkeygo/monkit/v3"
)

var mon = monkit.Package()

// MonkitCollector forwards scan statistics to the package monkit scope.
type MonkitCollector struct {
	scope *monkit.Scope
}

// NewMonkitCollector returns a collector reporting into scope.
// If scope is nil, the package scope is used.
func NewMonkitCollector(scope *monkit.Scope) *MonkitCollector {
	if scope == nil {
		scope = mon
	}
	return &MonkitCollector{scope: scope}
}

// RecordScan implements Collector.
func (m *MonkitCollector) RecordScan(stats ScanStats, err error) {
	kind := monkit.NewSeriesTag("kind", string(stats.Kind))

	m.scope.Counter("bitmap_scans", kind).Inc(1)
	m.scope.Counter("bitmap_words", kind).Inc(int64(stats.Words))
	m.scope.Counter("bitmap_positions", kind).Inc(int64(stats.Positions))
	if stats.Kind == KindBatched {
		m.scope.Counter("bitmap_groups_skipped").Inc(int64(stats.GroupsSkipped))
		m.scope.Counter("bitmap_groups_scanned").Inc(int64(stats.GroupsScanned))
		m.scope.FloatVal("bitmap_skip_ratio").Observe(stats.SkipRatio())
	}
	if err != nil {
		m.scope.Event("bitmap_scan_error", kind)
	}
}
