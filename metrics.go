package bitpos

import "github.com/hupe1980/bitpos/metric"

// Stats is the scan statistics snapshot returned by iterators.
type Stats = metric.ScanStats

// report hands the final statistics of an iterator to its collector and
// logger. It runs once per iterator.
func (o *options) report(stats Stats, err error) {
	o.metrics.RecordScan(stats, err)
	o.logger.LogScan(stats, err)
}
