package metric

import (
	"errors"
	"sync"
	"testing"

	"github.com/spacemonkeygo/monkit/v3"
	"github.com/stretchr/testify/assert"
)

func TestSkipRatio(t *testing.T) {
	assert.Equal(t, 0.0, ScanStats{}.SkipRatio())
	assert.Equal(t, 0.75, ScanStats{GroupsSkipped: 3, GroupsScanned: 1}.SkipRatio())
}

func TestBasicCollector(t *testing.T) {
	var c BasicCollector

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.RecordScan(ScanStats{Kind: KindBatched, Words: 16, GroupsSkipped: 1, GroupsScanned: 1, Positions: 3}, nil)
		}()
	}
	wg.Wait()
	c.RecordScan(ScanStats{Kind: KindBitmap, Words: 2}, errors.New("boom"))

	assert.Equal(t, int64(9), c.Scans.Load())
	assert.Equal(t, int64(1), c.ScanErrors.Load())

	snap := c.Snapshot()
	assert.Equal(t, uint64(130), snap.Words)
	assert.Equal(t, uint64(8), snap.GroupsSkipped)
	assert.Equal(t, uint64(8), snap.GroupsScanned)
	assert.Equal(t, uint64(24), snap.Positions)
}

func TestNoopCollector(t *testing.T) {
	var c Collector = NoopCollector{}
	assert.NotPanics(t, func() { c.RecordScan(ScanStats{Words: 1}, errors.New("ignored")) })
}

func TestMonkitCollector(t *testing.T) {
	registry := monkit.NewRegistry()
	scope := registry.ScopeNamed("bitpos_test")
	c := NewMonkitCollector(scope)

	c.RecordScan(ScanStats{Kind: KindBatched, Words: 64, GroupsSkipped: 7, GroupsScanned: 1, Positions: 5}, nil)
	c.RecordScan(ScanStats{Kind: KindBitmap, Words: 3, Positions: 2}, errors.New("overflow"))

	var names []string
	registry.Stats(func(key monkit.SeriesKey, field string, val float64) {
		names = append(names, key.Measurement)
	})
	assert.Contains(t, names, "bitmap_words")
	assert.Contains(t, names, "bitmap_groups_skipped")
	assert.Contains(t, names, "bitmap_scan_error")

	assert.NotNil(t, NewMonkitCollector(nil).scope)
}
