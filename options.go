package bitpos

import (
	"fmt"

	"github.com/hupe1980/bitpos/internal/simd"
	"github.com/hupe1980/bitpos/metric"
)

const (
	// DefaultGroupSize is the number of words BatchedIter tests per zero
	// comparison: 8 x 64 bits, one cache line.
	DefaultGroupSize = 8

	// MaxGroupSize bounds the group buffer.
	MaxGroupSize = simd.MaxGroupWords
)

// PartialGroupPolicy decides what BatchedIter does with a final group that
// is shorter than the group size.
type PartialGroupPolicy uint8

const (
	// PartialGroupPad scans the real words of a short final group as if the
	// group were padded with zero words. Any source length is accepted.
	PartialGroupPad PartialGroupPolicy = iota

	// PartialGroupStrict requires the source length to be a multiple of the
	// group size. A short final group stops iteration with ErrShortGroup.
	PartialGroupStrict
)

// String returns the string representation of a PartialGroupPolicy.
func (p PartialGroupPolicy) String() string {
	switch p {
	case PartialGroupPad:
		return "pad"
	case PartialGroupStrict:
		return "strict"
	default:
		return fmt.Sprintf("PartialGroupPolicy(%d)", uint8(p))
	}
}

type options struct {
	groupSize     int
	partialPolicy PartialGroupPolicy
	logger        *Logger
	metrics       metric.Collector
}

// Option configures an iterator.
//
// Group options only affect BatchedIter; BitmapIter ignores them.
type Option func(*options)

func applyOptions(opts []Option) options {
	o := options{
		groupSize:     DefaultGroupSize,
		partialPolicy: PartialGroupPad,
		logger:        NoopLogger(),
		metrics:       metric.NoopCollector{},
	}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// WithGroupSize sets how many words BatchedIter tests for zero at once.
// n must be in [1, MaxGroupSize]; NewBatchedIter panics otherwise.
func WithGroupSize(n int) Option {
	return func(o *options) {
		o.groupSize = n
	}
}

// WithAutoGroupSize sizes groups to the vector register width of the CPU
// (see simd.PreferredGroupWords). BITPOS_SIMD overrides the detection.
func WithAutoGroupSize() Option {
	return func(o *options) {
		o.groupSize = simd.PreferredGroupWords()
	}
}

// WithPartialGroupPolicy selects how a short final group is handled.
// The default is PartialGroupPad.
func WithPartialGroupPolicy(p PartialGroupPolicy) Option {
	return func(o *options) {
		o.partialPolicy = p
	}
}

// WithLogger sets the logger used for terminal events.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetrics sets the collector that receives the scan statistics when the
// iterator terminates. Iterators abandoned before exhaustion report nothing.
//
// If nil is passed, metrics are discarded.
func WithMetrics(c metric.Collector) Option {
	return func(o *options) {
		if c == nil {
			c = metric.NoopCollector{}
		}
		o.metrics = c
	}
}
