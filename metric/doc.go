// Package metric collects scan statistics from bitmap iterators.
//
// Iterators report once, when they reach a terminal state (source exhausted
// or an error). Implement Collector to forward the numbers to a monitoring
// system; MonkitCollector does this for monkit.
package metric
